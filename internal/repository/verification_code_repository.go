package repository

import (
	"errors"
	"time"

	"github.com/shoestore/internal/models"

	"gorm.io/gorm"
)

// VerificationCodeRepository 验证码数据访问接口
type VerificationCodeRepository interface {
	Create(code *models.VerificationCode) error
	GetLatest(email, purpose string) (*models.VerificationCode, error)
	MarkConsumed(id uint, consumedAt time.Time) error
	IncrementAttempt(id uint) error
	ConsumeActive(email, purpose string, consumedAt time.Time) error
	WithTx(tx *gorm.DB) *GormVerificationCodeRepository
}

// GormVerificationCodeRepository GORM 实现
type GormVerificationCodeRepository struct {
	db *gorm.DB
}

// NewVerificationCodeRepository 创建验证码仓库
func NewVerificationCodeRepository(db *gorm.DB) *GormVerificationCodeRepository {
	return &GormVerificationCodeRepository{db: db}
}

// WithTx 绑定事务
func (r *GormVerificationCodeRepository) WithTx(tx *gorm.DB) *GormVerificationCodeRepository {
	if tx == nil {
		return r
	}
	return &GormVerificationCodeRepository{db: tx}
}

// Create 创建验证码记录
func (r *GormVerificationCodeRepository) Create(code *models.VerificationCode) error {
	return r.db.Create(code).Error
}

// GetLatest 获取最新一条未使用的验证码
func (r *GormVerificationCodeRepository) GetLatest(email, purpose string) (*models.VerificationCode, error) {
	var record models.VerificationCode
	if err := r.db.Where("email = ? AND purpose = ? AND consumed_at IS NULL", email, purpose).
		Order("created_at desc, id desc").
		First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

// MarkConsumed 标记验证码已使用
func (r *GormVerificationCodeRepository) MarkConsumed(id uint, consumedAt time.Time) error {
	return r.db.Model(&models.VerificationCode{}).
		Where("id = ?", id).
		Update("consumed_at", consumedAt).Error
}

// IncrementAttempt 增加验证次数
func (r *GormVerificationCodeRepository) IncrementAttempt(id uint) error {
	return r.db.Model(&models.VerificationCode{}).
		Where("id = ?", id).
		UpdateColumn("attempt_count", gorm.Expr("attempt_count + 1")).Error
}

// ConsumeActive 作废同用途下尚未使用的旧验证码
func (r *GormVerificationCodeRepository) ConsumeActive(email, purpose string, consumedAt time.Time) error {
	return r.db.Model(&models.VerificationCode{}).
		Where("email = ? AND purpose = ? AND consumed_at IS NULL", email, purpose).
		Update("consumed_at", consumedAt).Error
}
