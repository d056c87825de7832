package admin

import (
	"strings"
	"time"

	"github.com/shoestore/internal/http/response"
	"github.com/shoestore/internal/repository"
	"github.com/shoestore/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// PromotionTargetRequest 活动适用范围
type PromotionTargetRequest struct {
	TargetType string `json:"target_type" binding:"required"`
	ShoesID    *uint  `json:"shoes_id"`
	CategoryID *uint  `json:"category_id"`
}

// CampaignRequest 创建/更新活动请求
type CampaignRequest struct {
	Name              string                   `json:"name" binding:"required"`
	Description       string                   `json:"description"`
	StartDate         string                   `json:"start_date" binding:"required"`
	EndDate           string                   `json:"end_date" binding:"required"`
	DiscountType      string                   `json:"discount_type" binding:"required"`
	DiscountValue     decimal.Decimal          `json:"discount_value"`
	MaxDiscountAmount decimal.Decimal          `json:"max_discount_amount"`
	MinOrderValue     decimal.Decimal          `json:"min_order_value"`
	Enabled           *bool                    `json:"enabled"`
	Targets           []PromotionTargetRequest `json:"targets"`
}

// VoucherRequest 创建/更新优惠码请求
type VoucherRequest struct {
	CampaignID           uint            `json:"campaign_id" binding:"required"`
	Code                 string          `json:"code" binding:"required"`
	Title                string          `json:"title"`
	Description          string          `json:"description"`
	DiscountType         string          `json:"discount_type" binding:"required"`
	DiscountValue        decimal.Decimal `json:"discount_value"`
	MaxDiscountValue     decimal.Decimal `json:"max_discount_value"`
	MinOrderValue        decimal.Decimal `json:"min_order_value"`
	StartDate            string          `json:"start_date" binding:"required"`
	EndDate              string          `json:"end_date" binding:"required"`
	MaxRedeemPerCustomer int             `json:"max_redeem_per_customer"`
	Enabled              *bool           `json:"enabled"`
}

func parseDateWindow(startRaw, endRaw string) (time.Time, time.Time, error) {
	start, err := parseDateValue(startRaw)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := parseDateValue(endRaw)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

func enabledOrDefault(value *bool) bool {
	if value == nil {
		return true
	}
	return *value
}

func (req CampaignRequest) toInput() (service.CampaignInput, error) {
	start, end, err := parseDateWindow(req.StartDate, req.EndDate)
	if err != nil {
		return service.CampaignInput{}, err
	}
	input := service.CampaignInput{
		Name:              req.Name,
		Description:       req.Description,
		StartDate:         start,
		EndDate:           end,
		DiscountType:      req.DiscountType,
		DiscountValue:     req.DiscountValue,
		MaxDiscountAmount: req.MaxDiscountAmount,
		MinOrderValue:     req.MinOrderValue,
		Enabled:           enabledOrDefault(req.Enabled),
	}
	for _, target := range req.Targets {
		input.Targets = append(input.Targets, service.PromotionTargetInput{
			TargetType: target.TargetType,
			ShoesID:    target.ShoesID,
			CategoryID: target.CategoryID,
		})
	}
	return input, nil
}

func (req VoucherRequest) toInput() (service.VoucherInput, error) {
	start, end, err := parseDateWindow(req.StartDate, req.EndDate)
	if err != nil {
		return service.VoucherInput{}, err
	}
	return service.VoucherInput{
		CampaignID:           req.CampaignID,
		Code:                 req.Code,
		Title:                req.Title,
		Description:          req.Description,
		DiscountType:         req.DiscountType,
		DiscountValue:        req.DiscountValue,
		MaxDiscountValue:     req.MaxDiscountValue,
		MinOrderValue:        req.MinOrderValue,
		StartDate:            start,
		EndDate:              end,
		MaxRedeemPerCustomer: req.MaxRedeemPerCustomer,
		Enabled:              enabledOrDefault(req.Enabled),
	}, nil
}

// ListCampaigns 活动列表
func (h *Handler) ListCampaigns(c *gin.Context) {
	page, pageSize := parsePageQuery(c)
	campaigns, total, err := h.PromotionAdminService.ListCampaigns(repository.CampaignListFilter{
		Page:         page,
		PageSize:     pageSize,
		Keyword:      strings.TrimSpace(c.Query("keyword")),
		DiscountType: strings.ToUpper(strings.TrimSpace(c.Query("discount_type"))),
		Status:       strings.ToUpper(strings.TrimSpace(c.Query("status"))),
		Enabled:      parseBoolQuery(c, "enabled"),
	})
	if err != nil {
		respondServiceError(c, err, "error.promotion_fetch_failed")
		return
	}
	response.SuccessWithPage(c, campaigns, response.BuildPagination(page, pageSize, total))
}

// GetCampaign 活动详情
func (h *Handler) GetCampaign(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	campaign, err := h.PromotionAdminService.GetCampaign(id)
	if err != nil {
		respondServiceError(c, err, "error.promotion_fetch_failed")
		return
	}
	response.Success(c, campaign)
}

// CreateCampaign 创建活动
func (h *Handler) CreateCampaign(c *gin.Context) {
	var req CampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	campaign, err := h.PromotionAdminService.CreateCampaign(input)
	if err != nil {
		respondServiceError(c, err, "error.save_failed")
		return
	}
	response.Success(c, campaign)
}

// UpdateCampaign 更新活动
func (h *Handler) UpdateCampaign(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	var req CampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	campaign, err := h.PromotionAdminService.UpdateCampaign(id, input)
	if err != nil {
		respondServiceError(c, err, "error.save_failed")
		return
	}
	response.Success(c, campaign)
}

// ToggleCampaign 启用/停用活动
func (h *Handler) ToggleCampaign(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	campaign, err := h.PromotionAdminService.ToggleCampaign(id)
	if err != nil {
		respondServiceError(c, err, "error.save_failed")
		return
	}
	response.Success(c, campaign)
}

// DeleteCampaign 删除活动，存在优惠码时拒绝
func (h *Handler) DeleteCampaign(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	if err := h.PromotionAdminService.DeleteCampaign(id); err != nil {
		respondServiceError(c, err, "error.delete_failed")
		return
	}
	response.Success(c, nil)
}

// ListVouchers 优惠码列表
func (h *Handler) ListVouchers(c *gin.Context) {
	page, pageSize := parsePageQuery(c)
	vouchers, total, err := h.PromotionAdminService.ListVouchers(repository.VoucherListFilter{
		Page:       page,
		PageSize:   pageSize,
		CampaignID: parseUintQuery(c, "campaign_id"),
		Keyword:    strings.TrimSpace(c.Query("keyword")),
		Enabled:    parseBoolQuery(c, "enabled"),
	})
	if err != nil {
		respondServiceError(c, err, "error.promotion_fetch_failed")
		return
	}
	response.SuccessWithPage(c, vouchers, response.BuildPagination(page, pageSize, total))
}

// GetVoucher 优惠码详情
func (h *Handler) GetVoucher(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	voucher, err := h.PromotionAdminService.GetVoucher(id)
	if err != nil {
		respondServiceError(c, err, "error.promotion_fetch_failed")
		return
	}
	response.Success(c, voucher)
}

// CreateVoucher 创建优惠码
func (h *Handler) CreateVoucher(c *gin.Context) {
	var req VoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	voucher, err := h.PromotionAdminService.CreateVoucher(input)
	if err != nil {
		respondServiceError(c, err, "error.save_failed")
		return
	}
	response.Success(c, voucher)
}

// UpdateVoucher 更新优惠码
func (h *Handler) UpdateVoucher(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	var req VoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	voucher, err := h.PromotionAdminService.UpdateVoucher(id, input)
	if err != nil {
		respondServiceError(c, err, "error.save_failed")
		return
	}
	response.Success(c, voucher)
}

// ToggleVoucher 启用/停用优惠码
func (h *Handler) ToggleVoucher(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	voucher, err := h.PromotionAdminService.ToggleVoucher(id)
	if err != nil {
		respondServiceError(c, err, "error.save_failed")
		return
	}
	response.Success(c, voucher)
}

// DeleteVoucher 删除优惠码，已被订单使用时拒绝
func (h *Handler) DeleteVoucher(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	if err := h.PromotionAdminService.DeleteVoucher(id); err != nil {
		respondServiceError(c, err, "error.delete_failed")
		return
	}
	response.Success(c, nil)
}
