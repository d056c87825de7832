package service

import (
	"strings"
	"time"

	"github.com/shoestore/internal/constants"
	"github.com/shoestore/internal/models"
	"github.com/shoestore/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PromotionAdminService 活动与优惠码管理服务
type PromotionAdminService struct {
	campaignRepo repository.CampaignRepository
	voucherRepo  repository.VoucherRepository
	orderRepo    repository.OrderRepository
}

// NewPromotionAdminService 创建活动管理服务
func NewPromotionAdminService(campaignRepo repository.CampaignRepository, voucherRepo repository.VoucherRepository, orderRepo repository.OrderRepository) *PromotionAdminService {
	return &PromotionAdminService{
		campaignRepo: campaignRepo,
		voucherRepo:  voucherRepo,
		orderRepo:    orderRepo,
	}
}

// PromotionTargetInput 适用范围输入
type PromotionTargetInput struct {
	TargetType string
	ShoesID    *uint
	CategoryID *uint
}

// CampaignInput 创建/更新活动输入
type CampaignInput struct {
	Name              string
	Description       string
	StartDate         time.Time
	EndDate           time.Time
	DiscountType      string
	DiscountValue     decimal.Decimal
	MaxDiscountAmount decimal.Decimal
	MinOrderValue     decimal.Decimal
	Enabled           bool
	Targets           []PromotionTargetInput
}

// VoucherInput 创建/更新优惠码输入
type VoucherInput struct {
	CampaignID           uint
	Code                 string
	Title                string
	Description          string
	DiscountType         string
	DiscountValue        decimal.Decimal
	MaxDiscountValue     decimal.Decimal
	MinOrderValue        decimal.Decimal
	StartDate            time.Time
	EndDate              time.Time
	MaxRedeemPerCustomer int
	Enabled              bool
}

// ResolveCampaignStatus 根据启用状态与时间窗口计算活动状态
func ResolveCampaignStatus(enabled bool, start, end, now time.Time) string {
	if !enabled {
		return constants.CampaignStatusCancelled
	}
	if !start.IsZero() && now.Before(start) {
		return constants.CampaignStatusDraft
	}
	if !end.IsZero() && now.After(end) {
		return constants.CampaignStatusEnded
	}
	return constants.CampaignStatusActive
}

// ListCampaigns 活动列表
func (s *PromotionAdminService) ListCampaigns(filter repository.CampaignListFilter) ([]models.Campaign, int64, error) {
	filter.Page, filter.PageSize = normalizePage(filter.Page, filter.PageSize, 20)
	filter.DiscountType = strings.ToUpper(strings.TrimSpace(filter.DiscountType))
	filter.Status = strings.ToUpper(strings.TrimSpace(filter.Status))
	return s.campaignRepo.List(filter)
}

// GetCampaign 活动详情
func (s *PromotionAdminService) GetCampaign(id uint) (*models.Campaign, error) {
	campaign, err := s.campaignRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}
	return campaign, nil
}

// CreateCampaign 创建活动
func (s *PromotionAdminService) CreateCampaign(input CampaignInput) (*models.Campaign, error) {
	targets, err := normalizeCampaignInput(&input)
	if err != nil {
		return nil, err
	}
	campaign := &models.Campaign{}
	applyCampaignInput(campaign, input)
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		repo := s.campaignRepo.WithTx(tx)
		if err := repo.Create(campaign); err != nil {
			return err
		}
		return repo.ReplaceTargets(campaign.ID, targets)
	})
	if err != nil {
		return nil, err
	}
	return s.GetCampaign(campaign.ID)
}

// UpdateCampaign 更新活动（覆盖适用范围）
func (s *PromotionAdminService) UpdateCampaign(id uint, input CampaignInput) (*models.Campaign, error) {
	campaign, err := s.GetCampaign(id)
	if err != nil {
		return nil, err
	}
	targets, err := normalizeCampaignInput(&input)
	if err != nil {
		return nil, err
	}
	applyCampaignInput(campaign, input)
	campaign.Targets = nil
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		repo := s.campaignRepo.WithTx(tx)
		if err := repo.Update(campaign); err != nil {
			return err
		}
		return repo.ReplaceTargets(campaign.ID, targets)
	})
	if err != nil {
		return nil, err
	}
	return s.GetCampaign(id)
}

// ToggleCampaign 切换活动启用状态并重算状态
func (s *PromotionAdminService) ToggleCampaign(id uint) (*models.Campaign, error) {
	campaign, err := s.GetCampaign(id)
	if err != nil {
		return nil, err
	}
	campaign.Enabled = !campaign.Enabled
	campaign.Status = ResolveCampaignStatus(campaign.Enabled, campaign.StartDate, campaign.EndDate, time.Now())
	campaign.Targets = nil
	if err := s.campaignRepo.Update(campaign); err != nil {
		return nil, err
	}
	return s.GetCampaign(id)
}

// DeleteCampaign 删除活动，存在优惠码时拒绝
func (s *PromotionAdminService) DeleteCampaign(id uint) error {
	if _, err := s.GetCampaign(id); err != nil {
		return err
	}
	count, err := s.voucherRepo.CountByCampaign(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCampaignHasVouchers
	}
	return models.DB.Transaction(func(tx *gorm.DB) error {
		repo := s.campaignRepo.WithTx(tx)
		if err := repo.DeleteTargets(id); err != nil {
			return err
		}
		return repo.Delete(id)
	})
}

// ListVouchers 优惠码列表
func (s *PromotionAdminService) ListVouchers(filter repository.VoucherListFilter) ([]models.Voucher, int64, error) {
	filter.Page, filter.PageSize = normalizePage(filter.Page, filter.PageSize, 20)
	return s.voucherRepo.List(filter)
}

// GetVoucher 优惠码详情
func (s *PromotionAdminService) GetVoucher(id uint) (*models.Voucher, error) {
	voucher, err := s.voucherRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if voucher == nil {
		return nil, ErrVoucherNotFound
	}
	return voucher, nil
}

// CreateVoucher 创建优惠码
func (s *PromotionAdminService) CreateVoucher(input VoucherInput) (*models.Voucher, error) {
	if err := s.validateVoucherInput(&input, 0); err != nil {
		return nil, err
	}
	voucher := &models.Voucher{}
	applyVoucherInput(voucher, input)
	if err := s.voucherRepo.Create(voucher); err != nil {
		return nil, err
	}
	return s.GetVoucher(voucher.ID)
}

// UpdateVoucher 更新优惠码
func (s *PromotionAdminService) UpdateVoucher(id uint, input VoucherInput) (*models.Voucher, error) {
	voucher, err := s.GetVoucher(id)
	if err != nil {
		return nil, err
	}
	if err := s.validateVoucherInput(&input, id); err != nil {
		return nil, err
	}
	applyVoucherInput(voucher, input)
	voucher.Campaign = nil
	if err := s.voucherRepo.Update(voucher); err != nil {
		return nil, err
	}
	return s.GetVoucher(id)
}

// ToggleVoucher 切换优惠码启用状态
func (s *PromotionAdminService) ToggleVoucher(id uint) (*models.Voucher, error) {
	voucher, err := s.GetVoucher(id)
	if err != nil {
		return nil, err
	}
	voucher.Enabled = !voucher.Enabled
	voucher.Campaign = nil
	if err := s.voucherRepo.Update(voucher); err != nil {
		return nil, err
	}
	return voucher, nil
}

// DeleteVoucher 删除优惠码，已被订单使用时拒绝
func (s *PromotionAdminService) DeleteVoucher(id uint) error {
	voucher, err := s.GetVoucher(id)
	if err != nil {
		return err
	}
	used, err := s.orderRepo.CountByVoucherCode(voucher.Code)
	if err != nil {
		return err
	}
	if used > 0 {
		return ErrVoucherInUse
	}
	return s.voucherRepo.Delete(id)
}

func normalizeCampaignInput(input *CampaignInput) ([]models.PromotionTarget, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return nil, ErrCampaignNameRequired
	}
	if !input.StartDate.IsZero() && !input.EndDate.IsZero() && input.EndDate.Before(input.StartDate) {
		return nil, ErrInvalidDateRange
	}
	discountType, err := normalizeDiscount(input.DiscountType, input.DiscountValue)
	if err != nil {
		return nil, err
	}
	input.DiscountType = discountType
	if input.MaxDiscountAmount.LessThan(decimal.Zero) || input.MinOrderValue.LessThan(decimal.Zero) {
		return nil, ErrDiscountValueInvalid
	}

	targets := make([]models.PromotionTarget, 0, len(input.Targets))
	for _, target := range input.Targets {
		targetType := strings.ToUpper(strings.TrimSpace(target.TargetType))
		row := models.PromotionTarget{TargetType: targetType}
		switch targetType {
		case constants.PromotionTargetAll:
		case constants.PromotionTargetShoes:
			if target.ShoesID == nil || *target.ShoesID == 0 {
				return nil, ErrPromotionTargetInvalid
			}
			row.ShoesID = target.ShoesID
		case constants.PromotionTargetCategory:
			if target.CategoryID == nil || *target.CategoryID == 0 {
				return nil, ErrPromotionTargetInvalid
			}
			row.CategoryID = target.CategoryID
		default:
			return nil, ErrPromotionTargetInvalid
		}
		targets = append(targets, row)
	}
	if len(targets) == 0 {
		targets = append(targets, models.PromotionTarget{TargetType: constants.PromotionTargetAll})
	}
	return targets, nil
}

// normalizeDiscount 校验优惠类型与数值，百分比不得超过 100
func normalizeDiscount(rawType string, value decimal.Decimal) (string, error) {
	discountType := strings.ToUpper(strings.TrimSpace(rawType))
	switch discountType {
	case constants.DiscountTypePercent:
		if value.LessThanOrEqual(decimal.Zero) || value.GreaterThan(decimal.NewFromInt(100)) {
			return "", ErrDiscountValueInvalid
		}
	case constants.DiscountTypeFixed:
		if value.LessThanOrEqual(decimal.Zero) {
			return "", ErrDiscountValueInvalid
		}
	default:
		return "", ErrDiscountTypeInvalid
	}
	return discountType, nil
}

func applyCampaignInput(campaign *models.Campaign, input CampaignInput) {
	campaign.Name = input.Name
	campaign.Description = strings.TrimSpace(input.Description)
	campaign.StartDate = input.StartDate
	campaign.EndDate = input.EndDate
	campaign.DiscountType = input.DiscountType
	campaign.DiscountValue = models.NewMoneyFromDecimal(input.DiscountValue)
	campaign.MaxDiscountAmount = models.NewMoneyFromDecimal(input.MaxDiscountAmount)
	campaign.MinOrderValue = models.NewMoneyFromDecimal(input.MinOrderValue)
	campaign.Enabled = input.Enabled
	campaign.Status = ResolveCampaignStatus(input.Enabled, input.StartDate, input.EndDate, time.Now())
}

func (s *PromotionAdminService) validateVoucherInput(input *VoucherInput, excludeID uint) error {
	input.Code = strings.ToUpper(strings.TrimSpace(input.Code))
	if input.Code == "" {
		return ErrVoucherCodeRequired
	}
	if input.CampaignID == 0 {
		return ErrCampaignNotFound
	}
	campaign, err := s.campaignRepo.GetByID(input.CampaignID)
	if err != nil {
		return err
	}
	if campaign == nil {
		return ErrCampaignNotFound
	}
	if !input.StartDate.IsZero() && !input.EndDate.IsZero() && input.EndDate.Before(input.StartDate) {
		return ErrInvalidDateRange
	}
	discountType, err := normalizeDiscount(input.DiscountType, input.DiscountValue)
	if err != nil {
		return err
	}
	input.DiscountType = discountType
	if input.MaxRedeemPerCustomer < 0 || input.MaxDiscountValue.LessThan(decimal.Zero) || input.MinOrderValue.LessThan(decimal.Zero) {
		return ErrDiscountValueInvalid
	}
	count, err := s.voucherRepo.CountByCode(input.Code, excludeID)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrVoucherCodeExists
	}
	return nil
}

func applyVoucherInput(voucher *models.Voucher, input VoucherInput) {
	voucher.CampaignID = input.CampaignID
	voucher.Code = input.Code
	voucher.Title = strings.TrimSpace(input.Title)
	voucher.Description = strings.TrimSpace(input.Description)
	voucher.DiscountType = input.DiscountType
	voucher.DiscountValue = models.NewMoneyFromDecimal(input.DiscountValue)
	voucher.MaxDiscountValue = models.NewMoneyFromDecimal(input.MaxDiscountValue)
	voucher.MinOrderValue = models.NewMoneyFromDecimal(input.MinOrderValue)
	voucher.StartDate = input.StartDate
	voucher.EndDate = input.EndDate
	voucher.MaxRedeemPerCustomer = input.MaxRedeemPerCustomer
	voucher.Enabled = input.Enabled
}
