package repository

import (
	"errors"
	"strings"

	"github.com/shoestore/internal/constants"
	"github.com/shoestore/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ShoesRepository 鞋款数据访问接口
type ShoesRepository interface {
	List(filter ShoesListFilter) ([]models.Shoes, int64, error)
	GetByID(id uint) (*models.Shoes, error)
	ListRelated(categoryID, excludeID uint, limit int) ([]models.Shoes, error)
	SuggestNames(keyword string, limit int) ([]string, error)
	ListBrands(shoesType string) ([]string, error)
	Create(shoes *models.Shoes) error
	Update(shoes *models.Shoes) error
	Delete(id uint) error
	ReplaceImages(shoesID uint, images []models.ShoesImage) error
	DeleteImages(shoesID uint) error
	WithTx(tx *gorm.DB) *GormShoesRepository
}

// GormShoesRepository GORM 实现
type GormShoesRepository struct {
	db *gorm.DB
}

// NewShoesRepository 创建鞋款仓库
func NewShoesRepository(db *gorm.DB) *GormShoesRepository {
	return &GormShoesRepository{db: db}
}

// WithTx 绑定事务
func (r *GormShoesRepository) WithTx(tx *gorm.DB) *GormShoesRepository {
	if tx == nil {
		return r
	}
	return &GormShoesRepository{db: tx}
}

func preloadImages(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order ASC, id ASC")
}

func preloadVariants(db *gorm.DB) *gorm.DB {
	return db.Order("size ASC, color ASC, id ASC")
}

// List 鞋款列表，页码超过末页时返回末页
func (r *GormShoesRepository) List(filter ShoesListFilter) ([]models.Shoes, int64, error) {
	query := r.applyFilter(r.db.Model(&models.Shoes{}), filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	shoes := make([]models.Shoes, 0)
	if total == 0 {
		return shoes, 0, nil
	}

	page := ClampPage(filter.Page, filter.PageSize, total)
	listQuery := r.applySort(r.applyFilter(r.db.Model(&models.Shoes{}), filter), filter.Sort)
	listQuery = applyPagination(listQuery, page, filter.PageSize)
	if err := listQuery.
		Preload("Images", preloadImages).
		Preload("Variants", preloadVariants).
		Find(&shoes).Error; err != nil {
		return nil, 0, err
	}
	return shoes, total, nil
}

func (r *GormShoesRepository) applyFilter(query *gorm.DB, filter ShoesListFilter) *gorm.DB {
	if keyword := strings.TrimSpace(filter.Keyword); keyword != "" {
		condition, argCount := buildLikeCondition(r.db, []string{"shoes.name", "shoes.brand"})
		query = query.Where("("+condition+")", repeatLikeArgs(likePattern(keyword), argCount)...)
	}
	if filter.CategoryID > 0 {
		query = query.Where("shoes.category_id = ?", filter.CategoryID)
	}
	if brand := strings.TrimSpace(filter.Brand); brand != "" {
		query = query.Where("LOWER(shoes.brand) = ?", strings.ToLower(brand))
	}
	if shoesType := strings.TrimSpace(filter.Type); shoesType != "" {
		query = query.Where("shoes.type = ?", shoesType)
	}
	if filter.MinPrice > 0 {
		query = query.Where("shoes.base_price >= ?", filter.MinPrice)
	}
	if filter.MaxPrice > 0 {
		query = query.Where("shoes.base_price <= ?", filter.MaxPrice)
	}
	return query
}

func (r *GormShoesRepository) applySort(query *gorm.DB, sort string) *gorm.DB {
	switch strings.TrimSpace(sort) {
	case constants.ShoesSortNewest:
		return query.Order("shoes.created_at DESC").Order("shoes.id DESC")
	case constants.ShoesSortPriceAsc:
		return query.Order("shoes.base_price ASC").Order("shoes.id ASC")
	case constants.ShoesSortPriceDesc:
		return query.Order("shoes.base_price DESC").Order("shoes.id ASC")
	case constants.ShoesSortNameDesc:
		return query.Order("shoes.name DESC").Order("shoes.id ASC")
	case constants.ShoesSortSold:
		return query.
			Select("shoes.*").
			Joins("LEFT JOIN (SELECT shoes_id, SUM(quantity) AS sold FROM order_items GROUP BY shoes_id) sold_stats ON sold_stats.shoes_id = shoes.id").
			Order("COALESCE(sold_stats.sold, 0) DESC").
			Order("shoes.id ASC")
	default:
		return query.Order("shoes.name ASC").Order("shoes.id ASC")
	}
}

// GetByID 获取鞋款详情（含分类、图片、规格）
func (r *GormShoesRepository) GetByID(id uint) (*models.Shoes, error) {
	var shoes models.Shoes
	if err := r.db.
		Preload("Category").
		Preload("Images", preloadImages).
		Preload("Variants", preloadVariants).
		First(&shoes, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &shoes, nil
}

// ListRelated 同分类的其他鞋款
func (r *GormShoesRepository) ListRelated(categoryID, excludeID uint, limit int) ([]models.Shoes, error) {
	shoes := make([]models.Shoes, 0)
	if categoryID == 0 || limit <= 0 {
		return shoes, nil
	}
	if err := r.db.
		Preload("Images", preloadImages).
		Preload("Variants", preloadVariants).
		Where("category_id = ? AND id <> ?", categoryID, excludeID).
		Order("created_at DESC").Order("id DESC").
		Limit(limit).
		Find(&shoes).Error; err != nil {
		return nil, err
	}
	return shoes, nil
}

// SuggestNames 名称联想（去重）
func (r *GormShoesRepository) SuggestNames(keyword string, limit int) ([]string, error) {
	names := make([]string, 0)
	condition, _ := buildLikeCondition(r.db, []string{"name"})
	if err := r.db.Model(&models.Shoes{}).
		Distinct("name").
		Where(condition, likePattern(keyword)).
		Order("name ASC").
		Limit(limit).
		Pluck("name", &names).Error; err != nil {
		return nil, err
	}
	return names, nil
}

// ListBrands 品牌列表（去重），可按类型过滤
func (r *GormShoesRepository) ListBrands(shoesType string) ([]string, error) {
	brands := make([]string, 0)
	query := r.db.Model(&models.Shoes{}).Distinct("brand").Where("brand <> ''")
	if shoesType = strings.TrimSpace(shoesType); shoesType != "" {
		query = query.Where("type = ?", shoesType)
	}
	if err := query.Order("brand ASC").Pluck("brand", &brands).Error; err != nil {
		return nil, err
	}
	return brands, nil
}

// Create 创建鞋款，图片与规格单独写入
func (r *GormShoesRepository) Create(shoes *models.Shoes) error {
	return r.db.Omit(clause.Associations).Create(shoes).Error
}

// Update 更新鞋款基础信息
func (r *GormShoesRepository) Update(shoes *models.Shoes) error {
	return r.db.Omit(clause.Associations).Save(shoes).Error
}

// Delete 删除鞋款行（关联数据需调用方先行删除）
func (r *GormShoesRepository) Delete(id uint) error {
	return r.db.Delete(&models.Shoes{}, id).Error
}

// ReplaceImages 覆盖鞋款图片
func (r *GormShoesRepository) ReplaceImages(shoesID uint, images []models.ShoesImage) error {
	if err := r.DeleteImages(shoesID); err != nil {
		return err
	}
	if len(images) == 0 {
		return nil
	}
	for i := range images {
		images[i].ID = 0
		images[i].ShoesID = shoesID
	}
	return r.db.Create(&images).Error
}

// DeleteImages 删除鞋款全部图片
func (r *GormShoesRepository) DeleteImages(shoesID uint) error {
	return r.db.Where("shoes_id = ?", shoesID).Delete(&models.ShoesImage{}).Error
}
