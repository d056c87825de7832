package service

import (
	"context"
	"strings"
	"time"

	"github.com/shoestore/internal/cache"
	"github.com/shoestore/internal/constants"
	"github.com/shoestore/internal/logger"
	"github.com/shoestore/internal/models"
	"github.com/shoestore/internal/repository"

	"gorm.io/gorm"
)

// InventoryItem 库存行及状态
type InventoryItem struct {
	repository.InventoryRow
	Status string `json:"status"`
}

// AdjustStockInput 库存调整输入
type AdjustStockInput struct {
	VariantID uint
	Amount    int
	Type      string
	Note      string
	Actor     string
}

// InventoryService 库存管理服务
type InventoryService struct {
	variantRepo repository.ShoesVariantRepository
	logRepo     repository.InventoryLogRepository
	threshold   int
}

// NewInventoryService 创建库存服务
func NewInventoryService(variantRepo repository.ShoesVariantRepository, logRepo repository.InventoryLogRepository, lowStockThreshold int) *InventoryService {
	if lowStockThreshold <= 0 {
		lowStockThreshold = constants.DefaultLowStockThreshold
	}
	return &InventoryService{
		variantRepo: variantRepo,
		logRepo:     logRepo,
		threshold:   lowStockThreshold,
	}
}

// Threshold 低库存阈值
func (s *InventoryService) Threshold() int {
	return s.threshold
}

// StockStatus 根据库存计算状态
func StockStatus(stock, threshold int) string {
	if stock <= 0 {
		return constants.InventoryStatusOutOfStock
	}
	if stock <= threshold {
		return constants.InventoryStatusLowStock
	}
	return constants.InventoryStatusInStock
}

// ListInventory 库存列表
func (s *InventoryService) ListInventory(filter repository.InventoryListFilter) ([]InventoryItem, int64, error) {
	filter.Page, filter.PageSize = normalizePage(filter.Page, filter.PageSize, 20)
	filter.Status = strings.ToUpper(strings.TrimSpace(filter.Status))
	filter.LowStockThreshold = s.threshold
	rows, total, err := s.variantRepo.ListInventory(filter)
	if err != nil {
		return nil, 0, err
	}
	return s.decorate(rows), total, nil
}

// Alerts 低库存与缺货规格
func (s *InventoryService) Alerts() ([]InventoryItem, error) {
	rows, err := s.variantRepo.ListAlerts(s.threshold)
	if err != nil {
		return nil, err
	}
	return s.decorate(rows), nil
}

func (s *InventoryService) decorate(rows []repository.InventoryRow) []InventoryItem {
	items := make([]InventoryItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, InventoryItem{InventoryRow: row, Status: StockStatus(row.Stock, s.threshold)})
	}
	return items
}

// AdjustStock 入库/出库/盘点，写入库存流水
func (s *InventoryService) AdjustStock(ctx context.Context, input AdjustStockInput) (*models.InventoryLog, error) {
	changeType := strings.ToUpper(strings.TrimSpace(input.Type))
	switch changeType {
	case constants.InventoryChangeImport, constants.InventoryChangeExport:
		if input.Amount <= 0 {
			return nil, ErrInvalidQuantity
		}
	case constants.InventoryChangeSet:
		if input.Amount < 0 {
			return nil, ErrInvalidQuantity
		}
	default:
		return nil, ErrInventoryTypeInvalid
	}
	actor := strings.TrimSpace(input.Actor)
	if actor == "" {
		actor = constants.ActorSystem
	}

	var entry *models.InventoryLog
	var shoesID uint
	err := dbWithContext(ctx).Transaction(func(tx *gorm.DB) error {
		variantRepo := s.variantRepo.WithTx(tx)
		variant, err := variantRepo.GetForUpdate(input.VariantID)
		if err != nil {
			return err
		}
		if variant == nil {
			return ErrVariantNotFound
		}
		shoesID = variant.ShoesID
		before := variant.Stock
		after := before
		switch changeType {
		case constants.InventoryChangeImport:
			after = before + input.Amount
		case constants.InventoryChangeExport:
			if before < input.Amount {
				return ErrInsufficientStock
			}
			after = before - input.Amount
		case constants.InventoryChangeSet:
			after = input.Amount
		}
		if err := variantRepo.UpdateStock(variant.ID, after); err != nil {
			return err
		}
		entry = &models.InventoryLog{
			VariantID:   variant.ID,
			ChangeType:  changeType,
			Amount:      after - before,
			StockBefore: before,
			StockAfter:  after,
			Note:        strings.TrimSpace(input.Note),
			Actor:       actor,
			CreatedAt:   time.Now(),
		}
		return s.logRepo.WithTx(tx).Create(entry)
	})
	if err != nil {
		return nil, err
	}
	if err := cache.DelShoesDetail(ctx, shoesID); err != nil {
		logger.Warnw("shoes_detail_cache_del_failed", "shoes_id", shoesID, "error", err)
	}
	logger.Infow("inventory_adjusted",
		"variant_id", entry.VariantID,
		"change_type", entry.ChangeType,
		"stock_before", entry.StockBefore,
		"stock_after", entry.StockAfter,
		"actor", entry.Actor,
	)
	return entry, nil
}

// VariantsForShoe 鞋款规格下拉数据
func (s *InventoryService) VariantsForShoe(shoesID uint) ([]models.ShoesVariant, error) {
	return s.variantRepo.ListByShoes(shoesID)
}

// History 规格库存流水
func (s *InventoryService) History(variantID uint, page, pageSize int) ([]models.InventoryLog, int64, error) {
	page, pageSize = normalizePage(page, pageSize, 20)
	return s.logRepo.ListByVariant(variantID, page, pageSize)
}
