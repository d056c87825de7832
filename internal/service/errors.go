package service

import "github.com/go-faster/errors"

// 通用错误
var (
	ErrNotFound              = errors.New("not found")
	ErrEmptyCart             = errors.New("cart is empty")
	ErrInvalidQuantity       = errors.New("invalid quantity")
	ErrInvalidTransition     = errors.New("invalid order status transition")
	ErrBusinessRuleViolation = errors.New("business rule violation")
	ErrUnauthorized          = errors.New("unauthorized")
)

// 未找到类错误，均可通过 errors.Is(err, ErrNotFound) 识别
var (
	ErrOrderNotFound    = errors.Wrap(ErrNotFound, "order")
	ErrVariantNotFound  = errors.Wrap(ErrNotFound, "shoes variant")
	ErrAddressNotFound  = errors.Wrap(ErrNotFound, "address")
	ErrCartItemNotFound = errors.Wrap(ErrNotFound, "cart item")
	ErrCartNotFound     = errors.Wrap(ErrNotFound, "cart")
	ErrShoesNotFound    = errors.Wrap(ErrNotFound, "shoes")
	ErrCategoryNotFound = errors.Wrap(ErrNotFound, "category")
	ErrUserNotFound     = errors.Wrap(ErrNotFound, "user")
	ErrCampaignNotFound = errors.Wrap(ErrNotFound, "campaign")
	ErrVoucherNotFound  = errors.Wrap(ErrNotFound, "voucher")
	ErrAdminNotFound    = errors.Wrap(ErrNotFound, "admin")
)

// 业务规则类错误，均可通过 errors.Is(err, ErrBusinessRuleViolation) 识别
var (
	ErrStockExceeded          = errors.Wrap(ErrBusinessRuleViolation, "quantity exceeds stock")
	ErrInsufficientStock      = errors.Wrap(ErrBusinessRuleViolation, "insufficient stock")
	ErrInvalidOrderType       = errors.Wrap(ErrBusinessRuleViolation, "unsupported order type")
	ErrForeignCartItem        = errors.Wrap(ErrBusinessRuleViolation, "cart item does not belong to caller")
	ErrRecipientRequired      = errors.Wrap(ErrBusinessRuleViolation, "recipient name, phone and address are required")
	ErrPaymentMethodInvalid   = errors.Wrap(ErrBusinessRuleViolation, "unsupported payment method")
	ErrVariantRequired        = errors.Wrap(ErrBusinessRuleViolation, "variant is required")
	ErrReviewExists           = errors.Wrap(ErrBusinessRuleViolation, "order item already reviewed")
	ErrReviewNotAllowed       = errors.Wrap(ErrBusinessRuleViolation, "order is not reviewable")
	ErrRatingInvalid          = errors.Wrap(ErrBusinessRuleViolation, "rating out of range")
	ErrInvalidDateRange       = errors.Wrap(ErrBusinessRuleViolation, "end date before start date")
	ErrDiscountTypeInvalid    = errors.Wrap(ErrBusinessRuleViolation, "unsupported discount type")
	ErrVoucherCodeExists      = errors.Wrap(ErrBusinessRuleViolation, "voucher code exists")
	ErrCampaignHasVouchers    = errors.Wrap(ErrBusinessRuleViolation, "campaign has vouchers")
	ErrVoucherInUse           = errors.Wrap(ErrBusinessRuleViolation, "voucher used by orders")
	ErrInventoryTypeInvalid   = errors.Wrap(ErrBusinessRuleViolation, "unsupported inventory change type")
	ErrCategoryNameExists     = errors.Wrap(ErrBusinessRuleViolation, "category name exists")
	ErrShoesNameRequired      = errors.Wrap(ErrBusinessRuleViolation, "shoes name is required")
	ErrShoesPriceInvalid      = errors.Wrap(ErrBusinessRuleViolation, "shoes price is invalid")
	ErrShoesTypeInvalid       = errors.Wrap(ErrBusinessRuleViolation, "shoes type is invalid")
	ErrCampaignNameRequired   = errors.Wrap(ErrBusinessRuleViolation, "campaign name is required")
	ErrVoucherCodeRequired    = errors.Wrap(ErrBusinessRuleViolation, "voucher code is required")
	ErrDiscountValueInvalid   = errors.Wrap(ErrBusinessRuleViolation, "discount value is invalid")
	ErrPromotionTargetInvalid = errors.Wrap(ErrBusinessRuleViolation, "promotion target is invalid")
)

// 账号类错误
var (
	ErrEmailInvalid       = errors.New("invalid email")
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserDisabled       = errors.New("user disabled")
	ErrEmailNotVerified   = errors.New("email not verified")
	ErrAlreadyVerified    = errors.New("email already verified")
	ErrVerifyCodeInvalid  = errors.New("verify code invalid")
	ErrVerifyCodeExpired  = errors.New("verify code expired")
	ErrVerifyCodeAttempts = errors.New("verify code attempts exceeded")
	ErrWeakPassword       = errors.New("weak password")
	ErrTokenInvalid       = errors.New("token invalid")
	ErrTokenExpired       = errors.New("token expired")
)

// 基础设施类错误
var (
	ErrOrderCreateFailed = errors.New("order create failed")
	ErrOrderUpdateFailed = errors.New("order update failed")
	ErrEmailDisabled     = errors.New("email service disabled")
	ErrEmailSendFailed   = errors.New("email send failed")
)
