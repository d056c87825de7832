package repository

import (
	"errors"
	"strings"

	"github.com/shoestore/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CampaignRepository 促销活动数据访问接口
type CampaignRepository interface {
	GetByID(id uint) (*models.Campaign, error)
	List(filter CampaignListFilter) ([]models.Campaign, int64, error)
	Create(campaign *models.Campaign) error
	Update(campaign *models.Campaign) error
	Delete(id uint) error
	ReplaceTargets(campaignID uint, targets []models.PromotionTarget) error
	DeleteTargets(campaignID uint) error
	WithTx(tx *gorm.DB) *GormCampaignRepository
}

// GormCampaignRepository GORM 实现
type GormCampaignRepository struct {
	db *gorm.DB
}

// NewCampaignRepository 创建活动仓库
func NewCampaignRepository(db *gorm.DB) *GormCampaignRepository {
	return &GormCampaignRepository{db: db}
}

// WithTx 绑定事务
func (r *GormCampaignRepository) WithTx(tx *gorm.DB) *GormCampaignRepository {
	if tx == nil {
		return r
	}
	return &GormCampaignRepository{db: tx}
}

// GetByID 根据ID获取活动（含适用范围）
func (r *GormCampaignRepository) GetByID(id uint) (*models.Campaign, error) {
	var campaign models.Campaign
	if err := r.db.Preload("Targets").First(&campaign, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &campaign, nil
}

// List 活动列表
func (r *GormCampaignRepository) List(filter CampaignListFilter) ([]models.Campaign, int64, error) {
	campaigns := make([]models.Campaign, 0)
	query := r.db.Model(&models.Campaign{})
	if keyword := strings.TrimSpace(filter.Keyword); keyword != "" {
		condition, argCount := buildLikeCondition(r.db, []string{"name", "description"})
		query = query.Where("("+condition+")", repeatLikeArgs(likePattern(keyword), argCount)...)
	}
	if discountType := strings.TrimSpace(filter.DiscountType); discountType != "" {
		query = query.Where("discount_type = ?", discountType)
	}
	if status := strings.TrimSpace(filter.Status); status != "" {
		query = query.Where("status = ?", status)
	}
	if filter.Enabled != nil {
		query = query.Where("enabled = ?", *filter.Enabled)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	query = applyPagination(query, filter.Page, filter.PageSize)
	if err := query.Preload("Targets").Order("start_date DESC, id DESC").Find(&campaigns).Error; err != nil {
		return nil, 0, err
	}
	return campaigns, total, nil
}

// Create 创建活动
func (r *GormCampaignRepository) Create(campaign *models.Campaign) error {
	return r.db.Omit(clause.Associations).Create(campaign).Error
}

// Update 更新活动
func (r *GormCampaignRepository) Update(campaign *models.Campaign) error {
	return r.db.Omit(clause.Associations).Save(campaign).Error
}

// Delete 删除活动
func (r *GormCampaignRepository) Delete(id uint) error {
	return r.db.Delete(&models.Campaign{}, id).Error
}

// ReplaceTargets 覆盖活动适用范围
func (r *GormCampaignRepository) ReplaceTargets(campaignID uint, targets []models.PromotionTarget) error {
	if err := r.DeleteTargets(campaignID); err != nil {
		return err
	}
	if len(targets) == 0 {
		return nil
	}
	for i := range targets {
		targets[i].ID = 0
		targets[i].CampaignID = campaignID
	}
	return r.db.Create(&targets).Error
}

// DeleteTargets 删除活动适用范围
func (r *GormCampaignRepository) DeleteTargets(campaignID uint) error {
	return r.db.Where("campaign_id = ?", campaignID).Delete(&models.PromotionTarget{}).Error
}
