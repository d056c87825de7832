package public

import (
	"strconv"
	"strings"

	"github.com/shoestore/internal/http/response"
	"github.com/shoestore/internal/repository"
	"github.com/shoestore/internal/service"

	"github.com/gin-gonic/gin"
)

// ReviewItemRequest 单个订单项评价
type ReviewItemRequest struct {
	OrderItemID uint   `json:"order_item_id"`
	Rating      int    `json:"rating"`
	Comment     string `json:"comment"`
}

// SubmitReviewRequest 提交评价请求
type SubmitReviewRequest struct {
	OrderID uint                `json:"order_id" binding:"required"`
	Items   []ReviewItemRequest `json:"items" binding:"required"`
}

// ListShoes 鞋款搜索与筛选
func (h *Handler) ListShoes(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(service.DefaultShoesPageSize)))

	result, err := h.ShoesService.SearchShoes(repository.ShoesListFilter{
		Page:       page,
		PageSize:   pageSize,
		Keyword:    strings.TrimSpace(c.Query("keyword")),
		CategoryID: parseUintValue(c.Query("category_id")),
		Brand:      strings.TrimSpace(c.Query("brand")),
		Type:       strings.ToUpper(strings.TrimSpace(c.Query("type"))),
		MinPrice:   parsePriceQuery(c.Query("min_price")),
		MaxPrice:   parsePriceQuery(c.Query("max_price")),
		Sort:       strings.TrimSpace(c.Query("sort")),
	})
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.SuccessWithPage(c, result.Items, response.BuildPagination(result.Page, result.PageSize, result.Total))
}

// ShoesSuggestions 搜索联想
func (h *Handler) ShoesSuggestions(c *gin.Context) {
	names, err := h.ShoesService.Suggestions(c.Query("keyword"))
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, names)
}

// ShoesBrands 品牌筛选项
func (h *Handler) ShoesBrands(c *gin.Context) {
	brands, err := h.ShoesService.Brands(c.Query("type"))
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, brands)
}

// GetShoesDetail 鞋款详情
func (h *Handler) GetShoesDetail(c *gin.Context) {
	shoesID, ok := parseUintParam(c, "id")
	if !ok {
		respondError(c, response.CodeNotFound, "error.shoes_not_found", nil)
		return
	}
	detail, err := h.ShoesService.GetShoesDetail(c.Request.Context(), shoesID)
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, detail)
}

// ListCategories 分类列表
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.CategoryService.List()
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, categories)
}

// ListShoesReviews 鞋款评价
func (h *Handler) ListShoesReviews(c *gin.Context) {
	shoesID, ok := parseUintParam(c, "id")
	if !ok {
		respondError(c, response.CodeNotFound, "error.shoes_not_found", nil)
		return
	}
	reviews, err := h.ReviewService.ListReviews(shoesID)
	if err != nil {
		respondReviewError(c, err)
		return
	}
	response.Success(c, reviews)
}

// SubmitReview 提交订单评价
func (h *Handler) SubmitReview(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	var req SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	form := service.ReviewForm{OrderID: req.OrderID}
	for _, item := range req.Items {
		form.Items = append(form.Items, service.ReviewItemInput{
			OrderItemID: item.OrderItemID,
			Rating:      item.Rating,
			Comment:     item.Comment,
		})
	}
	reviews, err := h.ReviewService.SubmitReview(c.Request.Context(), identity, form)
	if err != nil {
		respondReviewError(c, err)
		return
	}
	response.SuccessWithMsg(c, i18nMessage(c, "success.review_submitted"), reviews)
}

// parsePriceQuery 价格筛选，非法值视为不限
func parsePriceQuery(raw string) float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || value < 0 {
		return 0
	}
	return value
}
