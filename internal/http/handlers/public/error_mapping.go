package public

import (
	"errors"

	"github.com/shoestore/internal/constants"
	"github.com/shoestore/internal/http/response"
	"github.com/shoestore/internal/i18n"
	"github.com/shoestore/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	key    string
}

func matchMappedError(err error, rules []mappedHandlerError) (mappedHandlerError, bool) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			return rule, true
		}
	}
	return mappedHandlerError{}, false
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackKey string) {
	if rule, ok := matchMappedError(err, rules); ok {
		respondError(c, rule.code, rule.key, nil)
		return
	}
	respondError(c, fallbackCode, fallbackKey, err)
}

// flashKeyForError 返回页面跳转场景下的提示 key，未命中时记录原始错误
func flashKeyForError(c *gin.Context, err error, rules []mappedHandlerError, fallbackKey string) string {
	if rule, ok := matchMappedError(err, rules); ok {
		return rule.key
	}
	requestLog(c).Errorw("storefront_handler_error", "path", c.FullPath(), "error", err)
	return fallbackKey
}

func concatMappedHandlerErrors(groups ...[]mappedHandlerError) []mappedHandlerError {
	total := 0
	for _, group := range groups {
		total += len(group)
	}
	result := make([]mappedHandlerError, 0, total)
	for _, group := range groups {
		result = append(result, group...)
	}
	return result
}

// 具体错误必须排在其父类错误之前
var catalogErrorRules = []mappedHandlerError{
	{target: service.ErrShoesNotFound, code: response.CodeNotFound, key: "error.shoes_not_found"},
	{target: service.ErrCategoryNotFound, code: response.CodeNotFound, key: "error.category_not_found"},
	{target: service.ErrNotFound, code: response.CodeNotFound, key: "error.not_found"},
}

var cartErrorRules = []mappedHandlerError{
	{target: service.ErrVariantRequired, code: response.CodeBadRequest, key: "error.variant_required"},
	{target: service.ErrVariantNotFound, code: response.CodeNotFound, key: "error.variant_not_found"},
	{target: service.ErrCartItemNotFound, code: response.CodeNotFound, key: "error.cart_item_not_found"},
	{target: service.ErrCartNotFound, code: response.CodeNotFound, key: "error.empty_cart"},
	{target: service.ErrInvalidQuantity, code: response.CodeBadRequest, key: "error.invalid_quantity"},
	{target: service.ErrStockExceeded, code: response.CodeConflict, key: "error.stock_exceeded"},
	{target: service.ErrForeignCartItem, code: response.CodeNotFound, key: "error.cart_item_not_found"},
	{target: service.ErrEmptyCart, code: response.CodeBadRequest, key: "error.empty_cart"},
	{target: service.ErrUnauthorized, code: response.CodeUnauthorized, key: "error.login_required"},
}

var orderCommonErrorRules = []mappedHandlerError{
	{target: service.ErrEmptyCart, code: response.CodeBadRequest, key: "error.empty_cart"},
	{target: service.ErrInvalidQuantity, code: response.CodeBadRequest, key: "error.invalid_quantity"},
	{target: service.ErrVariantNotFound, code: response.CodeNotFound, key: "error.variant_not_found"},
	{target: service.ErrAddressNotFound, code: response.CodeNotFound, key: "error.address_not_found"},
	{target: service.ErrOrderNotFound, code: response.CodeNotFound, key: "error.order_not_found"},
	{target: service.ErrInvalidOrderType, code: response.CodeBadRequest, key: "error.order_type_invalid"},
	{target: service.ErrRecipientRequired, code: response.CodeBadRequest, key: "error.recipient_required"},
	{target: service.ErrPaymentMethodInvalid, code: response.CodeBadRequest, key: "error.payment_method_invalid"},
	{target: service.ErrForeignCartItem, code: response.CodeBadRequest, key: "error.cart_item_not_found"},
	{target: service.ErrInvalidTransition, code: response.CodeConflict, key: "error.invalid_transition"},
	{target: service.ErrUnauthorized, code: response.CodeUnauthorized, key: "error.login_required"},
	{target: service.ErrNotFound, code: response.CodeNotFound, key: "error.not_found"},
	{target: service.ErrBusinessRuleViolation, code: response.CodeBadRequest, key: "error.business_rule"},
}

var accountErrorRules = []mappedHandlerError{
	{target: service.ErrEmailInvalid, code: response.CodeBadRequest, key: "error.email_invalid"},
	{target: service.ErrEmailExists, code: response.CodeConflict, key: "error.email_exists"},
	{target: service.ErrInvalidCredentials, code: response.CodeUnauthorized, key: "error.invalid_credentials"},
	{target: service.ErrUserDisabled, code: response.CodeForbidden, key: "error.user_disabled"},
	{target: service.ErrEmailNotVerified, code: response.CodeForbidden, key: "error.email_not_verified"},
	{target: service.ErrAlreadyVerified, code: response.CodeConflict, key: "error.already_verified"},
	{target: service.ErrVerifyCodeInvalid, code: response.CodeBadRequest, key: "error.verify_code_invalid"},
	{target: service.ErrVerifyCodeExpired, code: response.CodeBadRequest, key: "error.verify_code_expired"},
	{target: service.ErrVerifyCodeAttempts, code: response.CodeTooManyRequests, key: "error.verify_code_attempts"},
	{target: service.ErrUserNotFound, code: response.CodeNotFound, key: "error.user_not_found"},
	{target: service.ErrAddressNotFound, code: response.CodeNotFound, key: "error.address_not_found"},
	{target: service.ErrRecipientRequired, code: response.CodeBadRequest, key: "error.recipient_required"},
	{target: service.ErrUnauthorized, code: response.CodeUnauthorized, key: "error.login_required"},
}

var reviewErrorRules = []mappedHandlerError{
	{target: service.ErrOrderNotFound, code: response.CodeNotFound, key: "error.order_not_found"},
	{target: service.ErrReviewExists, code: response.CodeConflict, key: "error.review_exists"},
	{target: service.ErrReviewNotAllowed, code: response.CodeBadRequest, key: "error.review_not_allowed"},
	{target: service.ErrRatingInvalid, code: response.CodeBadRequest, key: "error.rating_invalid"},
	{target: service.ErrShoesNotFound, code: response.CodeNotFound, key: "error.shoes_not_found"},
	{target: service.ErrUnauthorized, code: response.CodeUnauthorized, key: "error.login_required"},
	{target: service.ErrNotFound, code: response.CodeNotFound, key: "error.not_found"},
	{target: service.ErrBusinessRuleViolation, code: response.CodeBadRequest, key: "error.business_rule"},
}

func respondCatalogError(c *gin.Context, err error) {
	respondWithMappedError(c, err, catalogErrorRules, response.CodeInternal, "error.shoes_fetch_failed")
}

func respondCartError(c *gin.Context, err error) {
	respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "error.cart_update_failed")
}

func respondOrderError(c *gin.Context, err error) {
	respondWithMappedError(c, err, orderCommonErrorRules, response.CodeInternal, "error.order_fetch_failed")
}

// respondAccountError 密码策略错误带参数，单独取文案
func respondAccountError(c *gin.Context, err error) {
	var policyErr interface {
		Key() string
		Args() []interface{}
	}
	if errors.As(err, &policyErr) {
		msg := i18n.Sprintf(i18n.ResolveLocale(c), policyErr.Key(), policyErr.Args()...)
		respondErrorWithMsg(c, response.CodeBadRequest, msg, nil)
		return
	}
	respondWithMappedError(c, err, accountErrorRules, response.CodeInternal, "error.internal")
}

func respondReviewError(c *gin.Context, err error) {
	respondWithMappedError(c, err, reviewErrorRules, response.CodeInternal, "error.save_failed")
}

// flashErrorAndRedirect 写入错误提示后跳转
func (h *Handler) flashErrorAndRedirect(c *gin.Context, status int, key, target string) {
	h.flash(c, constants.SessionFlashError, key)
	c.Redirect(status, target)
}

// flashSuccessAndRedirect 写入成功提示后跳转
func (h *Handler) flashSuccessAndRedirect(c *gin.Context, status int, key, target string) {
	h.flash(c, constants.SessionFlashSuccess, key)
	c.Redirect(status, target)
}

func (h *Handler) flash(c *gin.Context, kind, key string) {
	if h.Sessions == nil {
		return
	}
	_ = h.Sessions.AddFlash(c, kind, i18n.T(i18n.ResolveLocale(c), key))
}
