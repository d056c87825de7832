package admin

import (
	"strings"

	"github.com/shoestore/internal/http/response"
	"github.com/shoestore/internal/repository"
	"github.com/shoestore/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ShoesImageRequest 图片
type ShoesImageRequest struct {
	URL         string `json:"url" binding:"required"`
	IsThumbnail bool   `json:"is_thumbnail"`
}

// ShoesVariantRequest 规格
type ShoesVariantRequest struct {
	Size  string `json:"size" binding:"required"`
	Color string `json:"color" binding:"required"`
	Stock int    `json:"stock"`
}

// ShoesRequest 创建/更新鞋款请求
type ShoesRequest struct {
	Name        string                `json:"name" binding:"required"`
	Brand       string                `json:"brand"`
	Type        string                `json:"type"`
	BasePrice   decimal.Decimal       `json:"base_price"`
	Description string                `json:"description"`
	Collection  string                `json:"collection"`
	CategoryID  *uint                 `json:"category_id"`
	Images      []ShoesImageRequest   `json:"images"`
	Variants    []ShoesVariantRequest `json:"variants"`
}

// CreateCategoryRequest 创建分类请求
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	DisplayName string `json:"display_name"`
}

func (req ShoesRequest) toInput() service.ShoesInput {
	input := service.ShoesInput{
		Name:        req.Name,
		Brand:       req.Brand,
		Type:        strings.ToUpper(strings.TrimSpace(req.Type)),
		BasePrice:   req.BasePrice,
		Description: req.Description,
		Collection:  req.Collection,
		CategoryID:  req.CategoryID,
	}
	for _, image := range req.Images {
		input.Images = append(input.Images, service.ShoesImageInput{URL: image.URL, IsThumbnail: image.IsThumbnail})
	}
	for _, variant := range req.Variants {
		input.Variants = append(input.Variants, service.ShoesVariantInput{Size: variant.Size, Color: variant.Color, Stock: variant.Stock})
	}
	return input
}

// AdminListShoes 后台鞋款列表
func (h *Handler) AdminListShoes(c *gin.Context) {
	page, pageSize := parsePageQuery(c)
	result, err := h.ShoesService.SearchShoes(repository.ShoesListFilter{
		Page:       page,
		PageSize:   pageSize,
		Keyword:    strings.TrimSpace(c.Query("keyword")),
		CategoryID: parseUintQuery(c, "category_id"),
		Brand:      strings.TrimSpace(c.Query("brand")),
		Type:       strings.ToUpper(strings.TrimSpace(c.Query("type"))),
		Sort:       c.DefaultQuery("sort", "newest"),
	})
	if err != nil {
		respondServiceError(c, err, "error.shoes_fetch_failed")
		return
	}
	response.SuccessWithPage(c, result.Items, response.BuildPagination(result.Page, result.PageSize, result.Total))
}

// AdminGetShoes 后台鞋款详情
func (h *Handler) AdminGetShoes(c *gin.Context) {
	shoesID, ok := parseUintParam(c, "id")
	if !ok {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	detail, err := h.ShoesService.GetShoesDetail(c.Request.Context(), shoesID)
	if err != nil {
		respondServiceError(c, err, "error.shoes_fetch_failed")
		return
	}
	response.Success(c, detail)
}

// CreateShoes 创建鞋款（含图片与规格）
func (h *Handler) CreateShoes(c *gin.Context) {
	var req ShoesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	shoes, err := h.ShoesService.CreateShoes(req.toInput())
	if err != nil {
		respondServiceError(c, err, "error.save_failed")
		return
	}
	response.Success(c, shoes)
}

// UpdateShoes 更新鞋款，图片整体替换，缺失的规格补建
func (h *Handler) UpdateShoes(c *gin.Context) {
	shoesID, ok := parseUintParam(c, "id")
	if !ok {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	var req ShoesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	shoes, err := h.ShoesService.UpdateShoes(c.Request.Context(), shoesID, req.toInput())
	if err != nil {
		respondServiceError(c, err, "error.save_failed")
		return
	}
	response.Success(c, shoes)
}

// DeleteShoes 删除鞋款及其图片、规格
func (h *Handler) DeleteShoes(c *gin.Context) {
	shoesID, ok := parseUintParam(c, "id")
	if !ok {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	if err := h.ShoesService.DeleteShoes(c.Request.Context(), shoesID); err != nil {
		respondServiceError(c, err, "error.delete_failed")
		return
	}
	requestLog(c).Infow("admin_shoes_deleted", "admin_id", currentAdminID(c), "shoes_id", shoesID)
	response.Success(c, nil)
}

// AdminListCategories 分类列表
func (h *Handler) AdminListCategories(c *gin.Context) {
	categories, err := h.CategoryService.List()
	if err != nil {
		respondServiceError(c, err, "error.category_fetch_failed")
		return
	}
	response.Success(c, categories)
}

// CreateCategory 创建分类
func (h *Handler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	category, err := h.CategoryService.Create(service.CreateCategoryInput{
		Name:        req.Name,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		respondServiceError(c, err, "error.save_failed")
		return
	}
	response.Success(c, category)
}
