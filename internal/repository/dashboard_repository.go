package repository

import (
	"fmt"
	"time"

	"github.com/shoestore/internal/constants"
	"github.com/shoestore/internal/models"

	"gorm.io/gorm"
)

// DashboardRepository 仪表盘聚合查询接口
// 说明：仅聚合统计数据，不承载业务规则。
type DashboardRepository interface {
	GetOverview(startAt, endAt time.Time) (DashboardOverviewRow, error)
	GetOrderTrends(startAt, endAt time.Time) ([]DashboardOrderTrendRow, error)
	GetStockStats(lowStockThreshold int) (DashboardStockStatsRow, error)
	GetTopShoes(startAt, endAt time.Time, limit int) ([]DashboardShoesRankingRow, error)
}

// DashboardOverviewRow 仪表盘总览原始统计结果
type DashboardOverviewRow struct {
	OrdersTotal      int64
	PendingOrders    int64
	ProcessingOrders int64
	CompletedOrders  int64
	CancelledOrders  int64
	RefundRequests   int64
	Revenue          float64
	NewUsers         int64
	ShoesTotal       int64
}

// DashboardOrderTrendRow 订单趋势统计
type DashboardOrderTrendRow struct {
	Day             string
	OrdersTotal     int64
	OrdersCompleted int64
	Revenue         float64
}

// DashboardStockStatsRow 库存统计
type DashboardStockStatsRow struct {
	OutOfStockVariants int64
	LowStockVariants   int64
	TotalUnits         int64
}

// DashboardShoesRankingRow 鞋款销量排行
type DashboardShoesRankingRow struct {
	ShoesID     uint
	ProductName string
	Orders      int64
	Quantity    int64
	Amount      float64
}

// GormDashboardRepository GORM 实现
type GormDashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository 创建仪表盘仓库
func NewDashboardRepository(db *gorm.DB) *GormDashboardRepository {
	return &GormDashboardRepository{db: db}
}

func processingOrderStatuses() []string {
	return []string{
		constants.OrderStatusConfirmed,
		constants.OrderStatusPacking,
		constants.OrderStatusShipping,
	}
}

// soldOrderStatuses 计入销量的订单状态（排除取消与退款）
func soldOrderStatuses() []string {
	return []string{
		constants.OrderStatusPending,
		constants.OrderStatusConfirmed,
		constants.OrderStatusPacking,
		constants.OrderStatusShipping,
		constants.OrderStatusCompleted,
	}
}

// GetOverview 获取总览统计
func (r *GormDashboardRepository) GetOverview(startAt, endAt time.Time) (DashboardOverviewRow, error) {
	result := DashboardOverviewRow{}

	orderBase := func() *gorm.DB {
		return r.db.Model(&models.Order{}).Where("created_at >= ? AND created_at < ?", startAt, endAt)
	}

	if err := orderBase().Count(&result.OrdersTotal).Error; err != nil {
		return result, err
	}
	if err := orderBase().Where("status = ?", constants.OrderStatusPending).Count(&result.PendingOrders).Error; err != nil {
		return result, err
	}
	if err := orderBase().Where("status IN ?", processingOrderStatuses()).Count(&result.ProcessingOrders).Error; err != nil {
		return result, err
	}
	if err := orderBase().Where("status = ?", constants.OrderStatusCompleted).Count(&result.CompletedOrders).Error; err != nil {
		return result, err
	}
	if err := orderBase().Where("status = ?", constants.OrderStatusCancelled).Count(&result.CancelledOrders).Error; err != nil {
		return result, err
	}
	if err := orderBase().Where("status = ?", constants.OrderStatusRequestRefund).Count(&result.RefundRequests).Error; err != nil {
		return result, err
	}
	if err := orderBase().
		Where("status = ?", constants.OrderStatusCompleted).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&result.Revenue).Error; err != nil {
		return result, err
	}

	if err := r.db.Model(&models.User{}).
		Where("created_at >= ? AND created_at < ?", startAt, endAt).
		Count(&result.NewUsers).Error; err != nil {
		return result, err
	}
	if err := r.db.Model(&models.Shoes{}).Count(&result.ShoesTotal).Error; err != nil {
		return result, err
	}
	return result, nil
}

// GetOrderTrends 获取按日订单趋势
func (r *GormDashboardRepository) GetOrderTrends(startAt, endAt time.Time) ([]DashboardOrderTrendRow, error) {
	type totalRow struct {
		Day   string
		Total int64
	}
	type completedRow struct {
		Day       string
		Completed int64
		Revenue   float64
	}

	var totals []totalRow
	dayExpr := "CAST(date(created_at) AS TEXT)"
	if err := r.db.Model(&models.Order{}).
		Select(fmt.Sprintf("%s as day, COUNT(*) as total", dayExpr)).
		Where("created_at >= ? AND created_at < ?", startAt, endAt).
		Group(dayExpr).
		Order("day asc").
		Scan(&totals).Error; err != nil {
		return nil, err
	}

	var completed []completedRow
	if err := r.db.Model(&models.Order{}).
		Select(fmt.Sprintf("%s as day, COUNT(*) as completed, COALESCE(SUM(total_amount), 0) as revenue", dayExpr)).
		Where("created_at >= ? AND created_at < ? AND status = ?", startAt, endAt, constants.OrderStatusCompleted).
		Group(dayExpr).
		Order("day asc").
		Scan(&completed).Error; err != nil {
		return nil, err
	}

	completedMap := make(map[string]completedRow, len(completed))
	for _, item := range completed {
		completedMap[item.Day] = item
	}

	result := make([]DashboardOrderTrendRow, 0, len(totals))
	for _, item := range totals {
		row := completedMap[item.Day]
		result = append(result, DashboardOrderTrendRow{
			Day:             item.Day,
			OrdersTotal:     item.Total,
			OrdersCompleted: row.Completed,
			Revenue:         row.Revenue,
		})
	}
	return result, nil
}

// GetStockStats 获取规格库存统计
func (r *GormDashboardRepository) GetStockStats(lowStockThreshold int) (DashboardStockStatsRow, error) {
	result := DashboardStockStatsRow{}
	if err := r.db.Model(&models.ShoesVariant{}).Where("stock <= 0").Count(&result.OutOfStockVariants).Error; err != nil {
		return result, err
	}
	if err := r.db.Model(&models.ShoesVariant{}).
		Where("stock > 0 AND stock <= ?", lowStockThreshold).
		Count(&result.LowStockVariants).Error; err != nil {
		return result, err
	}
	if err := r.db.Model(&models.ShoesVariant{}).
		Select("COALESCE(SUM(CASE WHEN stock > 0 THEN stock ELSE 0 END), 0)").
		Scan(&result.TotalUnits).Error; err != nil {
		return result, err
	}
	return result, nil
}

// GetTopShoes 获取鞋款销量排行榜
func (r *GormDashboardRepository) GetTopShoes(startAt, endAt time.Time, limit int) ([]DashboardShoesRankingRow, error) {
	if limit <= 0 {
		limit = 5
	}
	rows := make([]DashboardShoesRankingRow, 0)
	if err := r.db.Model(&models.OrderItem{}).
		Select(`
			order_items.shoes_id as shoes_id,
			MAX(order_items.product_name) as product_name,
			COUNT(DISTINCT order_items.order_id) as orders,
			COALESCE(SUM(order_items.quantity), 0) as quantity,
			COALESCE(SUM(order_items.item_total), 0) as amount
		`).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.created_at >= ? AND orders.created_at < ? AND orders.status IN ? AND orders.deleted_at IS NULL", startAt, endAt, soldOrderStatuses()).
		Group("order_items.shoes_id").
		Order("quantity DESC, amount DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
