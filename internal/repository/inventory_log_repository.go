package repository

import (
	"github.com/shoestore/internal/models"

	"gorm.io/gorm"
)

// InventoryLogRepository 库存流水数据访问接口
type InventoryLogRepository interface {
	Create(log *models.InventoryLog) error
	ListByVariant(variantID uint, page, pageSize int) ([]models.InventoryLog, int64, error)
	WithTx(tx *gorm.DB) *GormInventoryLogRepository
}

// GormInventoryLogRepository GORM 实现
type GormInventoryLogRepository struct {
	db *gorm.DB
}

// NewInventoryLogRepository 创建库存流水仓库
func NewInventoryLogRepository(db *gorm.DB) *GormInventoryLogRepository {
	return &GormInventoryLogRepository{db: db}
}

// WithTx 绑定事务
func (r *GormInventoryLogRepository) WithTx(tx *gorm.DB) *GormInventoryLogRepository {
	if tx == nil {
		return r
	}
	return &GormInventoryLogRepository{db: tx}
}

// Create 写入库存流水
func (r *GormInventoryLogRepository) Create(log *models.InventoryLog) error {
	return r.db.Create(log).Error
}

// ListByVariant 规格库存流水，最新在前
func (r *GormInventoryLogRepository) ListByVariant(variantID uint, page, pageSize int) ([]models.InventoryLog, int64, error) {
	logs := make([]models.InventoryLog, 0)
	query := r.db.Model(&models.InventoryLog{}).Where("variant_id = ?", variantID)
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	query = applyPagination(query, page, pageSize)
	if err := query.Order("created_at DESC, id DESC").Find(&logs).Error; err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}
