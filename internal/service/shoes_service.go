package service

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shoestore/internal/cache"
	"github.com/shoestore/internal/constants"
	"github.com/shoestore/internal/logger"
	"github.com/shoestore/internal/models"
	"github.com/shoestore/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// 默认分页大小
const (
	DefaultShoesPageSize = 12
	MaxPageSize          = 100
)

// ShoesSummary 列表卡片
type ShoesSummary struct {
	ID         uint         `json:"id"`
	Name       string       `json:"name"`
	Brand      string       `json:"brand"`
	Type       string       `json:"type"`
	Price      models.Money `json:"price"`
	Thumbnail  string       `json:"thumbnail"`
	OutOfStock bool         `json:"out_of_stock"`
	IsNew      bool         `json:"is_new"`
}

// ShoesPage 分页结果，Page 为实际返回的页码
type ShoesPage struct {
	Items    []ShoesSummary `json:"items"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// VariantView 详情页规格
type VariantView struct {
	ID    uint   `json:"id"`
	Size  string `json:"size"`
	Color string `json:"color"`
	Stock int    `json:"stock"`
}

// ShoesDetail 详情视图
type ShoesDetail struct {
	ID           uint           `json:"id"`
	Name         string         `json:"name"`
	Brand        string         `json:"brand"`
	Type         string         `json:"type"`
	Price        models.Money   `json:"price"`
	Description  string         `json:"description"`
	Collection   string         `json:"collection"`
	CategoryID   uint           `json:"category_id"`
	CategoryName string         `json:"category_name"`
	Images       []string       `json:"images"`
	Sizes        []string       `json:"sizes"`
	Colors       []string       `json:"colors"`
	Variants     []VariantView  `json:"variants"`
	TotalStock   int            `json:"total_stock"`
	Related      []ShoesSummary `json:"related"`
}

// ShoesImageInput 图片输入
type ShoesImageInput struct {
	URL         string
	IsThumbnail bool
}

// ShoesVariantInput 规格输入
type ShoesVariantInput struct {
	Size  string
	Color string
	Stock int
}

// ShoesInput 后台创建/更新鞋款输入
type ShoesInput struct {
	Name        string
	Brand       string
	Type        string
	BasePrice   decimal.Decimal
	Description string
	Collection  string
	CategoryID  *uint
	Images      []ShoesImageInput
	Variants    []ShoesVariantInput
}

// ShoesService 鞋款目录服务
type ShoesService struct {
	shoesRepo    repository.ShoesRepository
	variantRepo  repository.ShoesVariantRepository
	cartRepo     repository.CartRepository
	categoryRepo repository.CategoryRepository
}

// NewShoesService 创建鞋款服务
func NewShoesService(shoesRepo repository.ShoesRepository, variantRepo repository.ShoesVariantRepository, cartRepo repository.CartRepository, categoryRepo repository.CategoryRepository) *ShoesService {
	return &ShoesService{
		shoesRepo:    shoesRepo,
		variantRepo:  variantRepo,
		cartRepo:     cartRepo,
		categoryRepo: categoryRepo,
	}
}

// SearchShoes 搜索鞋款，页码超过末页时返回末页
func (s *ShoesService) SearchShoes(filter repository.ShoesListFilter) (*ShoesPage, error) {
	filter.Page, filter.PageSize = normalizePage(filter.Page, filter.PageSize, DefaultShoesPageSize)
	if filter.MinPrice < 0 {
		filter.MinPrice = 0
	}
	if filter.MaxPrice < 0 {
		filter.MaxPrice = 0
	}
	rows, total, err := s.shoesRepo.List(filter)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	items := make([]ShoesSummary, 0, len(rows))
	for i := range rows {
		items = append(items, buildShoesSummary(&rows[i], now))
	}
	return &ShoesPage{
		Items:    items,
		Total:    total,
		Page:     repository.ClampPage(filter.Page, filter.PageSize, total),
		PageSize: filter.PageSize,
	}, nil
}

// Suggestions 名称联想，少于两个字符返回空
func (s *ShoesService) Suggestions(keyword string) ([]string, error) {
	keyword = strings.TrimSpace(keyword)
	if utf8.RuneCountInString(keyword) < constants.SuggestionMinRunes {
		return []string{}, nil
	}
	return s.shoesRepo.SuggestNames(keyword, constants.SuggestionLimit)
}

// Brands 品牌列表
func (s *ShoesService) Brands(shoesType string) ([]string, error) {
	return s.shoesRepo.ListBrands(strings.ToUpper(strings.TrimSpace(shoesType)))
}

// GetShoesDetail 鞋款详情（Redis 缓存）
func (s *ShoesService) GetShoesDetail(ctx context.Context, id uint) (*ShoesDetail, error) {
	if id == 0 {
		return nil, ErrShoesNotFound
	}
	var cached ShoesDetail
	if hit, err := cache.GetShoesDetail(ctx, id, &cached); err == nil && hit {
		return &cached, nil
	} else if err != nil {
		logger.Warnw("shoes_detail_cache_get_failed", "shoes_id", id, "error", err)
	}

	shoes, err := s.shoesRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if shoes == nil {
		return nil, ErrShoesNotFound
	}
	detail := buildShoesDetail(shoes)

	if shoes.CategoryID != nil {
		related, err := s.shoesRepo.ListRelated(*shoes.CategoryID, shoes.ID, constants.RelatedShoesLimit)
		if err != nil {
			return nil, err
		}
		now := time.Now()
		for i := range related {
			detail.Related = append(detail.Related, buildShoesSummary(&related[i], now))
		}
	}

	if err := cache.SetShoesDetail(ctx, id, detail); err != nil {
		logger.Warnw("shoes_detail_cache_set_failed", "shoes_id", id, "error", err)
	}
	return detail, nil
}

// CreateShoes 后台创建鞋款（含图片与规格）
func (s *ShoesService) CreateShoes(input ShoesInput) (*models.Shoes, error) {
	if err := s.validateShoesInput(input); err != nil {
		return nil, err
	}
	shoes := &models.Shoes{}
	applyShoesInput(shoes, input)
	err := models.DB.Transaction(func(tx *gorm.DB) error {
		shoesRepo := s.shoesRepo.WithTx(tx)
		if err := shoesRepo.Create(shoes); err != nil {
			return err
		}
		if err := shoesRepo.ReplaceImages(shoes.ID, buildShoesImages(input.Images)); err != nil {
			return err
		}
		return s.createMissingVariants(tx, shoes.ID, input.Variants)
	})
	if err != nil {
		return nil, err
	}
	return s.shoesRepo.GetByID(shoes.ID)
}

// UpdateShoes 后台更新鞋款；图片整体覆盖，规格只补充新的尺码/颜色组合
func (s *ShoesService) UpdateShoes(ctx context.Context, id uint, input ShoesInput) (*models.Shoes, error) {
	if err := s.validateShoesInput(input); err != nil {
		return nil, err
	}
	shoes, err := s.shoesRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if shoes == nil {
		return nil, ErrShoesNotFound
	}
	applyShoesInput(shoes, input)
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		shoesRepo := s.shoesRepo.WithTx(tx)
		if err := shoesRepo.Update(shoes); err != nil {
			return err
		}
		if input.Images != nil {
			if err := shoesRepo.ReplaceImages(shoes.ID, buildShoesImages(input.Images)); err != nil {
				return err
			}
		}
		return s.createMissingVariants(tx, shoes.ID, input.Variants)
	})
	if err != nil {
		return nil, err
	}
	s.invalidateDetail(ctx, id)
	return s.shoesRepo.GetByID(id)
}

// DeleteShoes 删除鞋款，依次删除购物车项、图片、规格与鞋款行
func (s *ShoesService) DeleteShoes(ctx context.Context, id uint) error {
	shoes, err := s.shoesRepo.GetByID(id)
	if err != nil {
		return err
	}
	if shoes == nil {
		return ErrShoesNotFound
	}
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		variantRepo := s.variantRepo.WithTx(tx)
		variantIDs, err := variantRepo.ListIDsByShoes(id)
		if err != nil {
			return err
		}
		if err := s.cartRepo.WithTx(tx).DeleteItemsByVariantIDs(variantIDs); err != nil {
			return err
		}
		shoesRepo := s.shoesRepo.WithTx(tx)
		if err := shoesRepo.DeleteImages(id); err != nil {
			return err
		}
		if err := variantRepo.DeleteByShoes(id); err != nil {
			return err
		}
		return shoesRepo.Delete(id)
	})
	if err != nil {
		return err
	}
	s.invalidateDetail(ctx, id)
	return nil
}

func (s *ShoesService) invalidateDetail(ctx context.Context, id uint) {
	if err := cache.DelShoesDetail(ctx, id); err != nil {
		logger.Warnw("shoes_detail_cache_del_failed", "shoes_id", id, "error", err)
	}
}

func (s *ShoesService) validateShoesInput(input ShoesInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return ErrShoesNameRequired
	}
	if input.BasePrice.LessThan(decimal.Zero) {
		return ErrShoesPriceInvalid
	}
	switch strings.ToUpper(strings.TrimSpace(input.Type)) {
	case "", constants.ShoesTypeMale, constants.ShoesTypeFemale, constants.ShoesTypeUnisex:
	default:
		return ErrShoesTypeInvalid
	}
	if input.CategoryID != nil && *input.CategoryID > 0 {
		category, err := s.categoryRepo.GetByID(*input.CategoryID)
		if err != nil {
			return err
		}
		if category == nil {
			return ErrCategoryNotFound
		}
	}
	for _, v := range input.Variants {
		if strings.TrimSpace(v.Size) == "" || strings.TrimSpace(v.Color) == "" || v.Stock < 0 {
			return ErrInvalidQuantity
		}
	}
	return nil
}

func (s *ShoesService) createMissingVariants(tx *gorm.DB, shoesID uint, inputs []ShoesVariantInput) error {
	variantRepo := s.variantRepo.WithTx(tx)
	existing, err := variantRepo.ListByShoes(shoesID)
	if err != nil {
		return err
	}
	seen := make(map[string]struct{}, len(existing))
	for _, v := range existing {
		seen[variantKey(v.Size, v.Color)] = struct{}{}
	}
	for _, input := range inputs {
		key := variantKey(input.Size, input.Color)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		if err := variantRepo.Create(&models.ShoesVariant{
			ShoesID: shoesID,
			Size:    strings.TrimSpace(input.Size),
			Color:   strings.TrimSpace(input.Color),
			Stock:   input.Stock,
		}); err != nil {
			return err
		}
	}
	return nil
}

func variantKey(size, color string) string {
	return strings.ToLower(strings.TrimSpace(size)) + "|" + strings.ToLower(strings.TrimSpace(color))
}

func applyShoesInput(shoes *models.Shoes, input ShoesInput) {
	shoes.Name = strings.TrimSpace(input.Name)
	shoes.Brand = strings.TrimSpace(input.Brand)
	shoes.Type = strings.ToUpper(strings.TrimSpace(input.Type))
	if shoes.Type == "" {
		shoes.Type = constants.ShoesTypeUnisex
	}
	shoes.BasePrice = models.NewMoneyFromDecimal(input.BasePrice)
	shoes.Description = strings.TrimSpace(input.Description)
	shoes.Collection = strings.TrimSpace(input.Collection)
	shoes.CategoryID = nil
	if input.CategoryID != nil && *input.CategoryID > 0 {
		categoryID := *input.CategoryID
		shoes.CategoryID = &categoryID
	}
}

func buildShoesImages(inputs []ShoesImageInput) []models.ShoesImage {
	images := make([]models.ShoesImage, 0, len(inputs))
	for i, input := range inputs {
		url := strings.TrimSpace(input.URL)
		if url == "" {
			continue
		}
		images = append(images, models.ShoesImage{URL: url, IsThumbnail: input.IsThumbnail, SortOrder: i})
	}
	return images
}

func buildShoesSummary(shoes *models.Shoes, now time.Time) ShoesSummary {
	return ShoesSummary{
		ID:         shoes.ID,
		Name:       shoes.Name,
		Brand:      shoes.Brand,
		Type:       shoes.Type,
		Price:      shoes.BasePrice,
		Thumbnail:  thumbnailURL(shoes.Images),
		OutOfStock: totalStock(shoes.Variants) <= 0,
		IsNew:      !shoes.CreatedAt.IsZero() && now.Sub(shoes.CreatedAt) <= constants.NewArrivalDays*24*time.Hour,
	}
}

func buildShoesDetail(shoes *models.Shoes) *ShoesDetail {
	detail := &ShoesDetail{
		ID:           shoes.ID,
		Name:         shoes.Name,
		Brand:        shoes.Brand,
		Type:         shoes.Type,
		Price:        shoes.BasePrice,
		Description:  shoes.Description,
		Collection:   shoes.Collection,
		CategoryName: constants.DefaultCategoryName,
		Images:       make([]string, 0, len(shoes.Images)),
		Sizes:        make([]string, 0),
		Colors:       make([]string, 0),
		Variants:     make([]VariantView, 0, len(shoes.Variants)),
		TotalStock:   totalStock(shoes.Variants),
		Related:      make([]ShoesSummary, 0),
	}
	if shoes.CategoryID != nil {
		detail.CategoryID = *shoes.CategoryID
	}
	if shoes.Category != nil {
		detail.CategoryName = shoes.Category.Label()
	}
	for _, img := range shoes.Images {
		if url := strings.TrimSpace(img.URL); url != "" {
			detail.Images = append(detail.Images, url)
		}
	}
	if len(detail.Images) == 0 {
		detail.Images = append(detail.Images, constants.PlaceholderImageURL)
	}
	sizes := make(map[string]struct{})
	colors := make(map[string]struct{})
	for _, v := range shoes.Variants {
		detail.Variants = append(detail.Variants, VariantView{ID: v.ID, Size: v.Size, Color: v.Color, Stock: v.Stock})
		if _, ok := sizes[v.Size]; !ok {
			sizes[v.Size] = struct{}{}
			detail.Sizes = append(detail.Sizes, v.Size)
		}
		if _, ok := colors[v.Color]; !ok {
			colors[v.Color] = struct{}{}
			detail.Colors = append(detail.Colors, v.Color)
		}
	}
	return detail
}

// normalizePage 规范分页参数
func normalizePage(page, pageSize, defaultSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = defaultSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}
