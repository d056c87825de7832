package repository

import (
	"errors"
	"strings"

	"github.com/shoestore/internal/constants"
	"github.com/shoestore/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ShoesVariantRepository 鞋款规格数据访问接口
type ShoesVariantRepository interface {
	GetByID(id uint) (*models.ShoesVariant, error)
	GetWithShoes(id uint) (*models.ShoesVariant, error)
	GetForUpdate(id uint) (*models.ShoesVariant, error)
	ListByShoes(shoesID uint) ([]models.ShoesVariant, error)
	ListIDsByShoes(shoesID uint) ([]uint, error)
	Create(variant *models.ShoesVariant) error
	UpdateStock(id uint, stock int) error
	DeleteByShoes(shoesID uint) error
	ListInventory(filter InventoryListFilter) ([]InventoryRow, int64, error)
	ListAlerts(threshold int) ([]InventoryRow, error)
	WithTx(tx *gorm.DB) *GormShoesVariantRepository
}

// GormShoesVariantRepository GORM 实现
type GormShoesVariantRepository struct {
	db *gorm.DB
}

// NewShoesVariantRepository 创建规格仓库
func NewShoesVariantRepository(db *gorm.DB) *GormShoesVariantRepository {
	return &GormShoesVariantRepository{db: db}
}

// WithTx 绑定事务
func (r *GormShoesVariantRepository) WithTx(tx *gorm.DB) *GormShoesVariantRepository {
	if tx == nil {
		return r
	}
	return &GormShoesVariantRepository{db: tx}
}

// GetByID 根据 ID 获取规格
func (r *GormShoesVariantRepository) GetByID(id uint) (*models.ShoesVariant, error) {
	var variant models.ShoesVariant
	if err := r.db.First(&variant, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &variant, nil
}

// GetWithShoes 获取规格并带出所属鞋款与图片
func (r *GormShoesVariantRepository) GetWithShoes(id uint) (*models.ShoesVariant, error) {
	var variant models.ShoesVariant
	if err := r.db.
		Preload("Shoes").
		Preload("Shoes.Images", preloadImages).
		First(&variant, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &variant, nil
}

// GetForUpdate 加行锁读取规格
func (r *GormShoesVariantRepository) GetForUpdate(id uint) (*models.ShoesVariant, error) {
	var variant models.ShoesVariant
	if err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&variant, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &variant, nil
}

// ListByShoes 鞋款全部规格
func (r *GormShoesVariantRepository) ListByShoes(shoesID uint) ([]models.ShoesVariant, error) {
	variants := make([]models.ShoesVariant, 0)
	if err := preloadVariants(r.db.Where("shoes_id = ?", shoesID)).Find(&variants).Error; err != nil {
		return nil, err
	}
	return variants, nil
}

// ListIDsByShoes 鞋款全部规格 ID
func (r *GormShoesVariantRepository) ListIDsByShoes(shoesID uint) ([]uint, error) {
	ids := make([]uint, 0)
	if err := r.db.Model(&models.ShoesVariant{}).Where("shoes_id = ?", shoesID).Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// Create 创建规格
func (r *GormShoesVariantRepository) Create(variant *models.ShoesVariant) error {
	return r.db.Omit(clause.Associations).Create(variant).Error
}

// UpdateStock 覆盖库存
func (r *GormShoesVariantRepository) UpdateStock(id uint, stock int) error {
	return r.db.Model(&models.ShoesVariant{}).Where("id = ?", id).Update("stock", stock).Error
}

// DeleteByShoes 删除鞋款全部规格
func (r *GormShoesVariantRepository) DeleteByShoes(shoesID uint) error {
	return r.db.Where("shoes_id = ?", shoesID).Delete(&models.ShoesVariant{}).Error
}

const inventoryColumns = "shoes_variants.id AS variant_id, shoes.id AS shoes_id, shoes.name AS shoes_name, shoes.brand AS brand, " +
	"shoes_variants.size AS size, shoes_variants.color AS color, shoes_variants.stock AS stock"

func (r *GormShoesVariantRepository) inventoryQuery() *gorm.DB {
	return r.db.Table("shoes_variants").Joins("JOIN shoes ON shoes.id = shoes_variants.shoes_id")
}

// ListInventory 库存列表，按库存升序
func (r *GormShoesVariantRepository) ListInventory(filter InventoryListFilter) ([]InventoryRow, int64, error) {
	query := r.inventoryQuery()
	if keyword := strings.TrimSpace(filter.Keyword); keyword != "" {
		condition, argCount := buildLikeCondition(r.db, []string{"shoes.name", "shoes.brand", "shoes_variants.color"})
		query = query.Where("("+condition+")", repeatLikeArgs(likePattern(keyword), argCount)...)
	}
	switch strings.TrimSpace(filter.Status) {
	case constants.InventoryStatusOutOfStock:
		query = query.Where("shoes_variants.stock <= 0")
	case constants.InventoryStatusLowStock:
		query = query.Where("shoes_variants.stock > 0 AND shoes_variants.stock <= ?", filter.LowStockThreshold)
	case constants.InventoryStatusInStock:
		query = query.Where("shoes_variants.stock > ?", filter.LowStockThreshold)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	rows := make([]InventoryRow, 0)
	query = applyPagination(query, ClampPage(filter.Page, filter.PageSize, total), filter.PageSize)
	if err := query.Select(inventoryColumns).Order("shoes_variants.stock ASC, shoes_variants.id ASC").Scan(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// ListAlerts 低库存与缺货规格
func (r *GormShoesVariantRepository) ListAlerts(threshold int) ([]InventoryRow, error) {
	rows := make([]InventoryRow, 0)
	if err := r.inventoryQuery().
		Select(inventoryColumns).
		Where("shoes_variants.stock <= ?", threshold).
		Order("shoes_variants.stock ASC, shoes_variants.id ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
