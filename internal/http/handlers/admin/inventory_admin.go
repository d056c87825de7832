package admin

import (
	"strings"

	"github.com/shoestore/internal/http/response"
	"github.com/shoestore/internal/repository"
	"github.com/shoestore/internal/service"

	"github.com/gin-gonic/gin"
)

// AdjustStockRequest 库存调整请求
type AdjustStockRequest struct {
	VariantID uint   `json:"variant_id" binding:"required"`
	Amount    int    `json:"amount"`
	Type      string `json:"type" binding:"required"`
	Note      string `json:"note"`
}

// ListInventory 库存列表（一个规格一行）
func (h *Handler) ListInventory(c *gin.Context) {
	page, pageSize := parsePageQuery(c)
	items, total, err := h.InventoryService.ListInventory(repository.InventoryListFilter{
		Page:     page,
		PageSize: pageSize,
		Keyword:  strings.TrimSpace(c.Query("keyword")),
		Status:   c.Query("status"),
	})
	if err != nil {
		respondServiceError(c, err, "error.inventory_fetch_failed")
		return
	}
	response.SuccessWithPage(c, items, response.BuildPagination(page, pageSize, total))
}

// InventoryAlerts 低库存与缺货预警
func (h *Handler) InventoryAlerts(c *gin.Context) {
	items, err := h.InventoryService.Alerts()
	if err != nil {
		respondServiceError(c, err, "error.inventory_fetch_failed")
		return
	}
	response.Success(c, gin.H{
		"threshold": h.InventoryService.Threshold(),
		"items":     items,
	})
}

// AdjustStock 入库/出库/盘点
func (h *Handler) AdjustStock(c *gin.Context) {
	var req AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	entry, err := h.InventoryService.AdjustStock(c.Request.Context(), service.AdjustStockInput{
		VariantID: req.VariantID,
		Amount:    req.Amount,
		Type:      req.Type,
		Note:      req.Note,
		Actor:     service.AdminActor(currentAdminID(c)),
	})
	if err != nil {
		respondServiceError(c, err, "error.inventory_update_failed")
		return
	}
	response.Success(c, entry)
}

// InventoryHistory 规格库存流水
func (h *Handler) InventoryHistory(c *gin.Context) {
	variantID, ok := parseUintParam(c, "variant_id")
	if !ok {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	page, pageSize := parsePageQuery(c)
	logs, total, err := h.InventoryService.History(variantID, page, pageSize)
	if err != nil {
		respondServiceError(c, err, "error.inventory_fetch_failed")
		return
	}
	response.SuccessWithPage(c, logs, response.BuildPagination(page, pageSize, total))
}

// ShoesVariants 鞋款规格下拉
func (h *Handler) ShoesVariants(c *gin.Context) {
	shoesID, ok := parseUintParam(c, "id")
	if !ok {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	variants, err := h.InventoryService.VariantsForShoe(shoesID)
	if err != nil {
		respondServiceError(c, err, "error.inventory_fetch_failed")
		return
	}
	response.Success(c, variants)
}
