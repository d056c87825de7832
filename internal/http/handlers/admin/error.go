package admin

import (
	"errors"

	handlershared "github.com/shoestore/internal/http/handlers/shared"
	"github.com/shoestore/internal/http/response"
	"github.com/shoestore/internal/i18n"
	"github.com/shoestore/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func requestLog(c *gin.Context) *zap.SugaredLogger {
	return handlershared.RequestLog(c)
}

func respondError(c *gin.Context, code int, key string, err error) {
	handlershared.RespondError(c, code, key, err)
}

func respondErrorWithMsg(c *gin.Context, code int, msg string, err error) {
	handlershared.RespondErrorWithMsg(c, code, msg, err)
}

type adminErrorRule struct {
	target error
	code   int
	key    string
}

// 具体错误必须排在其父类错误之前
var adminErrorRules = []adminErrorRule{
	{target: service.ErrOrderNotFound, code: response.CodeNotFound, key: "error.order_not_found"},
	{target: service.ErrVariantNotFound, code: response.CodeNotFound, key: "error.variant_not_found"},
	{target: service.ErrShoesNotFound, code: response.CodeNotFound, key: "error.shoes_not_found"},
	{target: service.ErrCategoryNotFound, code: response.CodeNotFound, key: "error.category_not_found"},
	{target: service.ErrCampaignNotFound, code: response.CodeNotFound, key: "error.campaign_not_found"},
	{target: service.ErrVoucherNotFound, code: response.CodeNotFound, key: "error.voucher_not_found"},
	{target: service.ErrAdminNotFound, code: response.CodeNotFound, key: "error.user_not_found"},
	{target: service.ErrNotFound, code: response.CodeNotFound, key: "error.not_found"},
	{target: service.ErrInvalidTransition, code: response.CodeConflict, key: "error.invalid_transition"},
	{target: service.ErrInvalidQuantity, code: response.CodeBadRequest, key: "error.invalid_quantity"},
	{target: service.ErrInsufficientStock, code: response.CodeConflict, key: "error.insufficient_stock"},
	{target: service.ErrInventoryTypeInvalid, code: response.CodeBadRequest, key: "error.inventory_type_invalid"},
	{target: service.ErrInvalidDateRange, code: response.CodeBadRequest, key: "error.invalid_date_range"},
	{target: service.ErrDiscountTypeInvalid, code: response.CodeBadRequest, key: "error.discount_type_invalid"},
	{target: service.ErrDiscountValueInvalid, code: response.CodeBadRequest, key: "error.discount_value_invalid"},
	{target: service.ErrPromotionTargetInvalid, code: response.CodeBadRequest, key: "error.promotion_target_invalid"},
	{target: service.ErrCampaignNameRequired, code: response.CodeBadRequest, key: "error.campaign_name_required"},
	{target: service.ErrVoucherCodeRequired, code: response.CodeBadRequest, key: "error.voucher_code_required"},
	{target: service.ErrVoucherCodeExists, code: response.CodeConflict, key: "error.voucher_code_exists"},
	{target: service.ErrCampaignHasVouchers, code: response.CodeConflict, key: "error.campaign_has_vouchers"},
	{target: service.ErrVoucherInUse, code: response.CodeConflict, key: "error.voucher_in_use"},
	{target: service.ErrCategoryNameExists, code: response.CodeConflict, key: "error.category_name_exists"},
	{target: service.ErrShoesNameRequired, code: response.CodeBadRequest, key: "error.shoes_name_required"},
	{target: service.ErrShoesPriceInvalid, code: response.CodeBadRequest, key: "error.shoes_price_invalid"},
	{target: service.ErrShoesTypeInvalid, code: response.CodeBadRequest, key: "error.shoes_type_invalid"},
	{target: service.ErrBusinessRuleViolation, code: response.CodeBadRequest, key: "error.business_rule"},
	{target: service.ErrInvalidCredentials, code: response.CodeUnauthorized, key: "error.admin_login_invalid"},
}

// respondServiceError 按规则表映射服务层错误，未命中返回 fallbackKey
func respondServiceError(c *gin.Context, err error, fallbackKey string) {
	var policyErr interface {
		Key() string
		Args() []interface{}
	}
	if errors.As(err, &policyErr) {
		msg := i18n.Sprintf(i18n.ResolveLocale(c), policyErr.Key(), policyErr.Args()...)
		respondErrorWithMsg(c, response.CodeBadRequest, msg, nil)
		return
	}
	for _, rule := range adminErrorRules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.key, nil)
			return
		}
	}
	respondError(c, response.CodeInternal, fallbackKey, err)
}
