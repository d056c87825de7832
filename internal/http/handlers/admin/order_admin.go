package admin

import (
	"strings"

	"github.com/shoestore/internal/http/response"
	"github.com/shoestore/internal/models"
	"github.com/shoestore/internal/repository"
	"github.com/shoestore/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminOrderListItem 管理端订单列表返回
type AdminOrderListItem struct {
	models.Order
	UserEmail    string `json:"user_email,omitempty"`
	UserFullName string `json:"user_full_name,omitempty"`
}

// AdminOrderDetail 管理端订单详情返回
type AdminOrderDetail struct {
	models.Order
	UserEmail    string                    `json:"user_email,omitempty"`
	UserFullName string                    `json:"user_full_name,omitempty"`
	NextStatuses []string                  `json:"next_statuses"`
	History      []models.OrderTrackingLog `json:"history"`
}

// AdminListOrders 管理端订单列表
func (h *Handler) AdminListOrders(c *gin.Context) {
	page, pageSize := parsePageQuery(c)

	createdFrom, err := parseTimeNullable(strings.TrimSpace(c.Query("created_from")))
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	createdTo, err := parseTimeNullable(strings.TrimSpace(c.Query("created_to")))
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	orders, total, err := h.OrderService.ListForAdmin(c.Request.Context(), repository.OrderListFilter{
		Page:        page,
		PageSize:    pageSize,
		UserID:      parseUintQuery(c, "user_id"),
		Status:      strings.ToUpper(strings.TrimSpace(c.Query("status"))),
		OrderNo:     strings.TrimSpace(c.Query("order_no")),
		Keyword:     strings.TrimSpace(c.Query("keyword")),
		CreatedFrom: createdFrom,
		CreatedTo:   createdTo,
	})
	if err != nil {
		respondServiceError(c, err, "error.order_fetch_failed")
		return
	}

	userIDs := make([]uint, 0, len(orders))
	seen := map[uint]struct{}{}
	for _, order := range orders {
		if _, ok := seen[order.UserID]; ok || order.UserID == 0 {
			continue
		}
		seen[order.UserID] = struct{}{}
		userIDs = append(userIDs, order.UserID)
	}
	users, err := h.UserRepo.ListByIDs(userIDs)
	if err != nil {
		respondError(c, response.CodeInternal, "error.order_fetch_failed", err)
		return
	}
	userMap := make(map[uint]models.User, len(users))
	for _, user := range users {
		userMap[user.ID] = user
	}

	items := make([]AdminOrderListItem, 0, len(orders))
	for _, order := range orders {
		user := userMap[order.UserID]
		items = append(items, AdminOrderListItem{
			Order:        order,
			UserEmail:    user.Email,
			UserFullName: user.FullName,
		})
	}

	response.SuccessWithPage(c, items, response.BuildPagination(page, pageSize, total))
}

// AdminGetOrder 管理端订单详情（含流转记录与可选下一状态）
func (h *Handler) AdminGetOrder(c *gin.Context) {
	orderID, ok := parseUintParam(c, "id")
	if !ok {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	order, err := h.OrderService.GetForAdmin(c.Request.Context(), orderID)
	if err != nil {
		respondServiceError(c, err, "error.order_fetch_failed")
		return
	}
	history, err := h.OrderService.History(c.Request.Context(), order.ID)
	if err != nil {
		respondServiceError(c, err, "error.order_fetch_failed")
		return
	}

	detail := AdminOrderDetail{
		Order:        *order,
		NextStatuses: service.NextOrderStatuses(order.Status),
		History:      history,
	}
	user, err := h.UserRepo.GetByID(order.UserID)
	if err != nil {
		respondError(c, response.CodeInternal, "error.order_fetch_failed", err)
		return
	}
	if user != nil {
		detail.UserEmail = user.Email
		detail.UserFullName = user.FullName
	}

	response.Success(c, detail)
}

// AdminUpdateOrderStatusRequest 管理端更新订单状态请求
type AdminUpdateOrderStatusRequest struct {
	Status  string `json:"status" binding:"required"`
	Comment string `json:"comment"`
}

// AdminUpdateOrderStatus 管理端推进订单状态
func (h *Handler) AdminUpdateOrderStatus(c *gin.Context) {
	orderID, ok := parseUintParam(c, "id")
	if !ok {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	var req AdminUpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	status := strings.ToUpper(strings.TrimSpace(req.Status))
	if !service.IsKnownOrderStatus(status) {
		respondError(c, response.CodeBadRequest, "error.order_status_invalid", nil)
		return
	}

	order, err := h.OrderService.Transition(c.Request.Context(), orderID, status, service.AdminActor(currentAdminID(c)), req.Comment)
	if err != nil {
		respondServiceError(c, err, "error.order_update_failed")
		return
	}

	requestLog(c).Infow("admin_order_status_updated",
		"admin_id", currentAdminID(c),
		"order_id", order.ID,
		"status", order.Status,
	)
	response.Success(c, order)
}
