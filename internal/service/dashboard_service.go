package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shoestore/internal/cache"
	"github.com/shoestore/internal/constants"
	"github.com/shoestore/internal/repository"
)

const (
	dashboardCacheTTL      = 45 * time.Second
	dashboardCustomMaxDays = 90
	dashboardTopShoesLimit = 5
)

// DashboardService 仪表盘服务
// 说明：聚合后台首页核心经营数据。
type DashboardService struct {
	repo              repository.DashboardRepository
	lowStockThreshold int
}

// NewDashboardService 创建仪表盘服务
func NewDashboardService(repo repository.DashboardRepository, lowStockThreshold int) *DashboardService {
	if lowStockThreshold <= 0 {
		lowStockThreshold = constants.DefaultLowStockThreshold
	}
	return &DashboardService{repo: repo, lowStockThreshold: lowStockThreshold}
}

// DashboardQueryInput 仪表盘查询输入
type DashboardQueryInput struct {
	Range        string
	From         *time.Time
	To           *time.Time
	Timezone     string
	ForceRefresh bool
}

// DashboardOverviewResponse 仪表盘总览响应
type DashboardOverviewResponse struct {
	Range    string               `json:"range"`
	From     string               `json:"from"`
	To       string               `json:"to"`
	Timezone string               `json:"timezone"`
	Currency string               `json:"currency"`
	KPI      DashboardKPI         `json:"kpi"`
	Alerts   []DashboardAlertItem `json:"alerts"`
}

// DashboardKPI 仪表盘核心指标
type DashboardKPI struct {
	OrdersTotal        int64  `json:"orders_total"`
	PendingOrders      int64  `json:"pending_orders"`
	ProcessingOrders   int64  `json:"processing_orders"`
	CompletedOrders    int64  `json:"completed_orders"`
	CancelledOrders    int64  `json:"cancelled_orders"`
	RefundRequests     int64  `json:"refund_requests"`
	Revenue            string `json:"revenue"`
	CompletionRate     string `json:"completion_rate"`
	NewUsers           int64  `json:"new_users"`
	ShoesTotal         int64  `json:"shoes_total"`
	OutOfStockVariants int64  `json:"out_of_stock_variants"`
	LowStockVariants   int64  `json:"low_stock_variants"`
	TotalUnits         int64  `json:"total_units"`
}

// DashboardAlertItem 仪表盘告警项
type DashboardAlertItem struct {
	Type  string `json:"type"`
	Level string `json:"level"`
	Value int64  `json:"value"`
}

// DashboardTrendResponse 仪表盘趋势响应
type DashboardTrendResponse struct {
	Range    string                `json:"range"`
	From     string                `json:"from"`
	To       string                `json:"to"`
	Timezone string                `json:"timezone"`
	Points   []DashboardTrendPoint `json:"points"`
}

// DashboardTrendPoint 趋势点
type DashboardTrendPoint struct {
	Date            string `json:"date"`
	OrdersTotal     int64  `json:"orders_total"`
	OrdersCompleted int64  `json:"orders_completed"`
	Revenue         string `json:"revenue"`
}

// DashboardRankingsResponse 仪表盘排行榜响应
type DashboardRankingsResponse struct {
	Range    string                  `json:"range"`
	From     string                  `json:"from"`
	To       string                  `json:"to"`
	Timezone string                  `json:"timezone"`
	TopShoes []DashboardShoesRanking `json:"top_shoes"`
}

// DashboardShoesRanking 鞋款排行项
type DashboardShoesRanking struct {
	ShoesID  uint   `json:"shoes_id"`
	Name     string `json:"name"`
	Orders   int64  `json:"orders"`
	Quantity int64  `json:"quantity"`
	Amount   string `json:"amount"`
}

type dashboardWindow struct {
	rangeKey string
	startAt  time.Time
	endAt    time.Time
	timezone string
}

// GetOverview 获取仪表盘总览
func (s *DashboardService) GetOverview(ctx context.Context, input DashboardQueryInput) (*DashboardOverviewResponse, error) {
	if s == nil || s.repo == nil {
		return &DashboardOverviewResponse{}, nil
	}

	window, err := resolveDashboardWindow(input, time.Now())
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("dashboard:overview:%s:%d:%d:%s:%d",
		window.rangeKey,
		window.startAt.Unix(),
		window.endAt.Unix(),
		window.timezone,
		s.lowStockThreshold,
	)
	if !input.ForceRefresh {
		var cached DashboardOverviewResponse
		hit, cacheErr := cache.GetJSON(ctx, cacheKey, &cached)
		if cacheErr == nil && hit {
			return &cached, nil
		}
	}

	overview, err := s.repo.GetOverview(window.startAt, window.endAt)
	if err != nil {
		return nil, err
	}
	stockStats, err := s.repo.GetStockStats(s.lowStockThreshold)
	if err != nil {
		return nil, err
	}

	completionRate := 0.0
	if overview.OrdersTotal > 0 {
		completionRate = float64(overview.CompletedOrders) / float64(overview.OrdersTotal) * 100
	}

	response := &DashboardOverviewResponse{
		Range:    window.rangeKey,
		From:     window.startAt.Format(time.RFC3339),
		To:       window.endAt.Add(-time.Second).Format(time.RFC3339),
		Timezone: window.timezone,
		Currency: constants.SiteCurrencyDefault,
		KPI: DashboardKPI{
			OrdersTotal:        overview.OrdersTotal,
			PendingOrders:      overview.PendingOrders,
			ProcessingOrders:   overview.ProcessingOrders,
			CompletedOrders:    overview.CompletedOrders,
			CancelledOrders:    overview.CancelledOrders,
			RefundRequests:     overview.RefundRequests,
			Revenue:            formatMoneyValue(overview.Revenue),
			CompletionRate:     formatPercentValue(completionRate),
			NewUsers:           overview.NewUsers,
			ShoesTotal:         overview.ShoesTotal,
			OutOfStockVariants: stockStats.OutOfStockVariants,
			LowStockVariants:   stockStats.LowStockVariants,
			TotalUnits:         stockStats.TotalUnits,
		},
		Alerts: buildDashboardAlerts(overview, stockStats),
	}

	_ = cache.SetJSON(ctx, cacheKey, response, dashboardCacheTTL)
	return response, nil
}

// GetTrends 获取仪表盘趋势
func (s *DashboardService) GetTrends(ctx context.Context, input DashboardQueryInput) (*DashboardTrendResponse, error) {
	if s == nil || s.repo == nil {
		return &DashboardTrendResponse{}, nil
	}

	window, err := resolveDashboardWindow(input, time.Now())
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("dashboard:trends:%s:%d:%d:%s", window.rangeKey, window.startAt.Unix(), window.endAt.Unix(), window.timezone)
	if !input.ForceRefresh {
		var cached DashboardTrendResponse
		hit, cacheErr := cache.GetJSON(ctx, cacheKey, &cached)
		if cacheErr == nil && hit {
			return &cached, nil
		}
	}

	rows, err := s.repo.GetOrderTrends(window.startAt, window.endAt)
	if err != nil {
		return nil, err
	}
	byDay := make(map[string]repository.DashboardOrderTrendRow, len(rows))
	for _, item := range rows {
		byDay[item.Day] = item
	}

	points := make([]DashboardTrendPoint, 0)
	for cursor := time.Date(window.startAt.Year(), window.startAt.Month(), window.startAt.Day(), 0, 0, 0, 0, window.startAt.Location()); cursor.Before(window.endAt); cursor = cursor.AddDate(0, 0, 1) {
		day := cursor.Format("2006-01-02")
		item := byDay[day]
		points = append(points, DashboardTrendPoint{
			Date:            day,
			OrdersTotal:     item.OrdersTotal,
			OrdersCompleted: item.OrdersCompleted,
			Revenue:         formatMoneyValue(item.Revenue),
		})
	}

	response := &DashboardTrendResponse{
		Range:    window.rangeKey,
		From:     window.startAt.Format(time.RFC3339),
		To:       window.endAt.Add(-time.Second).Format(time.RFC3339),
		Timezone: window.timezone,
		Points:   points,
	}

	_ = cache.SetJSON(ctx, cacheKey, response, dashboardCacheTTL)
	return response, nil
}

// GetRankings 获取鞋款销量排行
func (s *DashboardService) GetRankings(ctx context.Context, input DashboardQueryInput) (*DashboardRankingsResponse, error) {
	if s == nil || s.repo == nil {
		return &DashboardRankingsResponse{}, nil
	}

	window, err := resolveDashboardWindow(input, time.Now())
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("dashboard:rankings:%s:%d:%d:%s", window.rangeKey, window.startAt.Unix(), window.endAt.Unix(), window.timezone)
	if !input.ForceRefresh {
		var cached DashboardRankingsResponse
		hit, cacheErr := cache.GetJSON(ctx, cacheKey, &cached)
		if cacheErr == nil && hit {
			return &cached, nil
		}
	}

	rows, err := s.repo.GetTopShoes(window.startAt, window.endAt, dashboardTopShoesLimit)
	if err != nil {
		return nil, err
	}
	shoes := make([]DashboardShoesRanking, 0, len(rows))
	for _, item := range rows {
		name := strings.TrimSpace(item.ProductName)
		if name == "" {
			name = "-"
		}
		shoes = append(shoes, DashboardShoesRanking{
			ShoesID:  item.ShoesID,
			Name:     name,
			Orders:   item.Orders,
			Quantity: item.Quantity,
			Amount:   formatMoneyValue(item.Amount),
		})
	}

	response := &DashboardRankingsResponse{
		Range:    window.rangeKey,
		From:     window.startAt.Format(time.RFC3339),
		To:       window.endAt.Add(-time.Second).Format(time.RFC3339),
		Timezone: window.timezone,
		TopShoes: shoes,
	}

	_ = cache.SetJSON(ctx, cacheKey, response, dashboardCacheTTL)
	return response, nil
}

func resolveDashboardWindow(input DashboardQueryInput, now time.Time) (dashboardWindow, error) {
	rangeKey := strings.ToLower(strings.TrimSpace(input.Range))
	if rangeKey == "" {
		rangeKey = "7d"
	}

	timezone := strings.TrimSpace(input.Timezone)
	location := time.Local
	if timezone != "" {
		if parsed, err := time.LoadLocation(timezone); err == nil {
			location = parsed
		} else {
			timezone = ""
		}
	}
	if timezone == "" {
		timezone = location.String()
	}

	localNow := now.In(location)
	todayStart := time.Date(localNow.Year(), localNow.Month(), localNow.Day(), 0, 0, 0, 0, location)
	window := dashboardWindow{rangeKey: rangeKey, timezone: timezone}

	switch rangeKey {
	case "today":
		window.startAt = todayStart
		window.endAt = todayStart.AddDate(0, 0, 1)
	case "7d":
		window.startAt = todayStart.AddDate(0, 0, -6)
		window.endAt = todayStart.AddDate(0, 0, 1)
	case "30d":
		window.startAt = todayStart.AddDate(0, 0, -29)
		window.endAt = todayStart.AddDate(0, 0, 1)
	case "custom":
		if input.From == nil || input.To == nil {
			return dashboardWindow{}, ErrInvalidDateRange
		}
		startAt := input.From.In(location)
		endAt := input.To.In(location)
		if endAt.Before(startAt) {
			return dashboardWindow{}, ErrInvalidDateRange
		}
		if endAt.Sub(startAt) > time.Hour*24*dashboardCustomMaxDays {
			return dashboardWindow{}, ErrInvalidDateRange
		}
		window.startAt = startAt
		window.endAt = endAt.Add(time.Second)
	default:
		return dashboardWindow{}, ErrInvalidDateRange
	}

	if !window.endAt.After(window.startAt) {
		return dashboardWindow{}, ErrInvalidDateRange
	}
	return window, nil
}

func formatMoneyValue(value float64) string {
	return fmt.Sprintf("%.2f", value)
}

func formatPercentValue(value float64) string {
	return fmt.Sprintf("%.2f", value)
}

func buildDashboardAlerts(overview repository.DashboardOverviewRow, stockStats repository.DashboardStockStatsRow) []DashboardAlertItem {
	alerts := make([]DashboardAlertItem, 0, 3)
	if stockStats.OutOfStockVariants > 0 {
		alerts = append(alerts, DashboardAlertItem{Type: "out_of_stock_variants", Level: "error", Value: stockStats.OutOfStockVariants})
	}
	if stockStats.LowStockVariants > 0 {
		alerts = append(alerts, DashboardAlertItem{Type: "low_stock_variants", Level: "warning", Value: stockStats.LowStockVariants})
	}
	if overview.RefundRequests > 0 {
		alerts = append(alerts, DashboardAlertItem{Type: "refund_requests", Level: "warning", Value: overview.RefundRequests})
	}
	return alerts
}
