package repository

import (
	"github.com/shoestore/internal/models"

	"gorm.io/gorm"
)

// ReviewRepository 评价数据访问接口
type ReviewRepository interface {
	ExistsByOrderItem(orderItemID uint) (bool, error)
	Create(review *models.Review) error
	ListByShoes(shoesID uint) ([]models.Review, error)
	AverageByShoes(shoesID uint) (float64, int64, error)
	WithTx(tx *gorm.DB) *GormReviewRepository
}

// GormReviewRepository GORM 实现
type GormReviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository 创建评价仓库
func NewReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

// WithTx 绑定事务
func (r *GormReviewRepository) WithTx(tx *gorm.DB) *GormReviewRepository {
	if tx == nil {
		return r
	}
	return &GormReviewRepository{db: tx}
}

// ExistsByOrderItem 订单项是否已评价
func (r *GormReviewRepository) ExistsByOrderItem(orderItemID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Review{}).Where("order_item_id = ?", orderItemID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create 创建评价
func (r *GormReviewRepository) Create(review *models.Review) error {
	return r.db.Omit("User").Create(review).Error
}

// ListByShoes 鞋款评价，最新在前
func (r *GormReviewRepository) ListByShoes(shoesID uint) ([]models.Review, error) {
	reviews := make([]models.Review, 0)
	if err := r.db.Preload("User").
		Where("shoes_id = ?", shoesID).
		Order("created_at DESC, id DESC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

type reviewStats struct {
	Average float64
	Total   int64
}

// AverageByShoes 平均评分与评价数
func (r *GormReviewRepository) AverageByShoes(shoesID uint) (float64, int64, error) {
	var stats reviewStats
	if err := r.db.Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) AS average, COUNT(*) AS total").
		Where("shoes_id = ?", shoesID).
		Scan(&stats).Error; err != nil {
		return 0, 0, err
	}
	return stats.Average, stats.Total, nil
}
