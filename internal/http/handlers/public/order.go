package public

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/shoestore/internal/constants"
	"github.com/shoestore/internal/http/handlers/shared"
	"github.com/shoestore/internal/http/response"
	"github.com/shoestore/internal/models"
	"github.com/shoestore/internal/repository"
	"github.com/shoestore/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"
)

const confirmationQRCodeSize = 256

// CheckoutQuery 结算页查询参数
type CheckoutQuery struct {
	Type      string `form:"type"`
	VariantID uint   `form:"variantId"`
	Quantity  int    `form:"quantity"`
}

// CreateOrderForm 下单表单
type CreateOrderForm struct {
	Type             string `form:"type"`
	VariantID        uint   `form:"variantId"`
	Quantity         int    `form:"quantity"`
	AddressID        uint   `form:"addressId"`
	RecipientName    string `form:"recipientName"`
	RecipientPhone   string `form:"recipientPhone"`
	RecipientEmail   string `form:"recipientEmail"`
	RecipientAddress string `form:"recipientAddress"`
	PaymentMethod    string `form:"paymentMethod"`
	Note             string `form:"note"`
	VoucherCode      string `form:"voucherCode"`
}

// OrderActionRequest 顾客订单操作请求
type OrderActionRequest struct {
	Reason string `json:"reason" form:"reason"`
}

// OrderDetailResponse 订单详情与流转记录
type OrderDetailResponse struct {
	Order   *models.Order             `json:"order"`
	History []models.OrderTrackingLog `json:"history"`
}

// CheckoutResponse 结算页视图
type CheckoutResponse struct {
	*service.CheckoutSummary
	Flashes map[string][]string `json:"flashes,omitempty"`
}

// checkoutRedirectTarget 登录后回到结算页的地址
func checkoutRedirectTarget(query CheckoutQuery, itemIDs []uint) string {
	switch strings.ToUpper(strings.TrimSpace(query.Type)) {
	case constants.OrderTypeBuyNow:
		return fmt.Sprintf("%s?type=%s&variantId=%d&quantity=%d", constants.PathCheckout, constants.OrderTypeBuyNow, query.VariantID, query.Quantity)
	case constants.OrderTypeSelectedItems:
		if len(itemIDs) > 0 {
			parts := make([]string, 0, len(itemIDs))
			for _, id := range itemIDs {
				parts = append(parts, strconv.FormatUint(uint64(id), 10))
			}
			return fmt.Sprintf("%s?type=%s&itemIds=%s", constants.PathCheckout, constants.OrderTypeSelectedItems, strings.Join(parts, ","))
		}
	}
	return fmt.Sprintf("%s?type=%s", constants.PathCheckout, constants.OrderTypeCart)
}

// Checkout 结算页
func (h *Handler) Checkout(c *gin.Context) {
	var query CheckoutQuery
	_ = c.ShouldBindQuery(&query)
	itemIDs := parseUintList(c.QueryArray("itemIds"))

	identity := currentIdentity(c)
	if !identity.Authenticated() {
		if h.Sessions != nil {
			_ = h.Sessions.RememberRedirect(c, checkoutRedirectTarget(query, itemIDs))
		}
		h.flashErrorAndRedirect(c, http.StatusFound, "error.login_required", constants.PathLogin)
		return
	}

	summary, err := h.OrderService.CheckoutSummary(c.Request.Context(), identity, service.LineSource{
		Type:                query.Type,
		VariantID:           query.VariantID,
		Quantity:            query.Quantity,
		SelectedCartItemIDs: itemIDs,
	})
	if err != nil {
		key := flashKeyForError(c, err, orderCommonErrorRules, "error.order_fetch_failed")
		h.flashErrorAndRedirect(c, http.StatusFound, key, constants.PathCart)
		return
	}

	resp := CheckoutResponse{CheckoutSummary: summary}
	if h.Sessions != nil {
		resp.Flashes = h.Sessions.Flashes(c)
	}
	response.Success(c, resp)
}

// CreateOrder 提交订单
func (h *Handler) CreateOrder(c *gin.Context) {
	identity := currentIdentity(c)
	if !identity.Authenticated() {
		c.Redirect(http.StatusFound, constants.PathLogin)
		return
	}

	var form CreateOrderForm
	if err := c.ShouldBind(&form); err != nil {
		h.flashErrorAndRedirect(c, http.StatusSeeOther, "error.bad_request", constants.PathCart)
		return
	}

	req := service.OrderRequest{
		Type:                form.Type,
		VariantID:           form.VariantID,
		Quantity:            form.Quantity,
		SelectedCartItemIDs: parseUintList(c.PostFormArray("selectedCartItemIds")),
		RecipientName:       form.RecipientName,
		RecipientPhone:      form.RecipientPhone,
		RecipientEmail:      form.RecipientEmail,
		RecipientAddress:    form.RecipientAddress,
		PaymentMethod:       form.PaymentMethod,
		Note:                form.Note,
		VoucherCode:         form.VoucherCode,
	}
	if form.AddressID > 0 {
		addressID := form.AddressID
		req.AddressID = &addressID
	}

	order, err := h.OrderService.CreateOrder(c.Request.Context(), identity, req)
	if err != nil {
		key := flashKeyForError(c, err, orderCommonErrorRules, "error.order_create_failed")
		h.flashErrorAndRedirect(c, http.StatusSeeOther, key, constants.PathCart)
		return
	}

	h.flashSuccessAndRedirect(c, http.StatusSeeOther, "success.order_created", fmt.Sprintf("%s/%d", constants.PathConfirmation, order.ID))
}

// OrderConfirmation 下单成功页
func (h *Handler) OrderConfirmation(c *gin.Context) {
	order, ok := h.loadConfirmationOrder(c)
	if !ok {
		return
	}
	data := gin.H{"order": order}
	if h.Sessions != nil {
		data["flashes"] = h.Sessions.Flashes(c)
	}
	response.Success(c, data)
}

// OrderConfirmationQRCode 订单号二维码
func (h *Handler) OrderConfirmationQRCode(c *gin.Context) {
	order, ok := h.loadConfirmationOrder(c)
	if !ok {
		return
	}
	png, err := qrcode.Encode(order.OrderNo, qrcode.Medium, confirmationQRCodeSize)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	c.Header("Cache-Control", "private, max-age=300")
	c.Data(http.StatusOK, "image/png", png)
}

func (h *Handler) loadConfirmationOrder(c *gin.Context) (*models.Order, bool) {
	identity := currentIdentity(c)
	if !identity.Authenticated() {
		c.Redirect(http.StatusFound, constants.PathLogin)
		return nil, false
	}
	orderID, ok := parseUintParam(c, "id")
	if !ok {
		h.flashErrorAndRedirect(c, http.StatusFound, "error.order_not_found", constants.PathHome)
		return nil, false
	}
	order, err := h.OrderService.GetConfirmation(c.Request.Context(), identity, orderID)
	if err != nil {
		key := flashKeyForError(c, err, orderCommonErrorRules, "error.order_fetch_failed")
		h.flashErrorAndRedirect(c, http.StatusFound, key, constants.PathHome)
		return nil, false
	}
	return order, true
}

// ListMyOrders 我的订单列表
func (h *Handler) ListMyOrders(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	page, pageSize = shared.NormalizePagination(page, pageSize)

	orders, total, err := h.OrderService.ListByUser(c.Request.Context(), identity, repository.OrderListFilter{
		Page:     page,
		PageSize: pageSize,
		Status:   c.Query("status"),
	})
	if err != nil {
		respondOrderError(c, err)
		return
	}
	response.SuccessWithPage(c, orders, response.BuildPagination(page, pageSize, total))
}

// GetMyOrder 我的订单详情（含流转记录）
func (h *Handler) GetMyOrder(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	orderID, ok := parseUintParam(c, "id")
	if !ok {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	order, err := h.OrderService.GetConfirmation(c.Request.Context(), identity, orderID)
	if err != nil {
		respondOrderError(c, err)
		return
	}
	history, err := h.OrderService.History(c.Request.Context(), order.ID)
	if err != nil {
		respondOrderError(c, err)
		return
	}
	response.Success(c, OrderDetailResponse{Order: order, History: history})
}

// CancelMyOrder 取消订单
func (h *Handler) CancelMyOrder(c *gin.Context) {
	h.handleMyOrderAction(c, "success.order_cancelled", h.OrderService.CancelByUser)
}

// RequestMyOrderRefund 申请退款
func (h *Handler) RequestMyOrderRefund(c *gin.Context) {
	h.handleMyOrderAction(c, "success.refund_requested", h.OrderService.RequestRefund)
}

type orderAction func(ctx context.Context, identity service.Identity, orderID uint, reason string) (*models.Order, error)

func (h *Handler) handleMyOrderAction(c *gin.Context, successKey string, action orderAction) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	orderID, ok := parseUintParam(c, "id")
	if !ok {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	var req OrderActionRequest
	_ = c.ShouldBind(&req)

	order, err := action(c.Request.Context(), identity, orderID, req.Reason)
	if err != nil {
		respondWithMappedError(c, err, orderCommonErrorRules, response.CodeInternal, "error.order_update_failed")
		return
	}
	response.SuccessWithMsg(c, i18nMessage(c, successKey), order)
}
