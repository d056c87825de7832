package repository

import (
	"github.com/shoestore/internal/models"

	"gorm.io/gorm"
)

// OrderTrackingLogRepository 订单流转记录数据访问接口
type OrderTrackingLogRepository interface {
	Create(log *models.OrderTrackingLog) error
	ListByOrder(orderID uint) ([]models.OrderTrackingLog, error)
	WithTx(tx *gorm.DB) *GormOrderTrackingLogRepository
}

// GormOrderTrackingLogRepository GORM 实现
type GormOrderTrackingLogRepository struct {
	db *gorm.DB
}

// NewOrderTrackingLogRepository 创建流转记录仓库
func NewOrderTrackingLogRepository(db *gorm.DB) *GormOrderTrackingLogRepository {
	return &GormOrderTrackingLogRepository{db: db}
}

// WithTx 绑定事务
func (r *GormOrderTrackingLogRepository) WithTx(tx *gorm.DB) *GormOrderTrackingLogRepository {
	if tx == nil {
		return r
	}
	return &GormOrderTrackingLogRepository{db: tx}
}

// Create 追加流转记录
func (r *GormOrderTrackingLogRepository) Create(log *models.OrderTrackingLog) error {
	return r.db.Create(log).Error
}

// ListByOrder 按时间正序返回订单流转记录
func (r *GormOrderTrackingLogRepository) ListByOrder(orderID uint) ([]models.OrderTrackingLog, error) {
	logs := make([]models.OrderTrackingLog, 0)
	if err := r.db.Where("order_id = ?", orderID).Order("changed_at ASC, id ASC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
