package repository

import "time"

// ShoesListFilter 查询鞋款列表的过滤条件
type ShoesListFilter struct {
	Page       int
	PageSize   int
	Keyword    string
	CategoryID uint
	Brand      string
	Type       string
	MinPrice   float64
	MaxPrice   float64
	Sort       string
}

// OrderListFilter 查询订单列表的过滤条件
type OrderListFilter struct {
	Page        int
	PageSize    int
	UserID      uint
	Status      string
	OrderNo     string
	Keyword     string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// UserListFilter 查询顾客列表的过滤条件
type UserListFilter struct {
	Page     int
	PageSize int
	Keyword  string
	Status   string
}

// CampaignListFilter 查询促销活动列表的过滤条件
type CampaignListFilter struct {
	Page         int
	PageSize     int
	Keyword      string
	DiscountType string
	Status       string
	Enabled      *bool
}

// VoucherListFilter 查询优惠码列表的过滤条件
type VoucherListFilter struct {
	Page       int
	PageSize   int
	CampaignID uint
	Keyword    string
	Enabled    *bool
}

// InventoryListFilter 查询库存列表的过滤条件
type InventoryListFilter struct {
	Page              int
	PageSize          int
	Keyword           string
	Status            string
	LowStockThreshold int
}

// InventoryRow 库存列表行（一个规格一行）
type InventoryRow struct {
	VariantID uint   `json:"variant_id"`
	ShoesID   uint   `json:"shoes_id"`
	ShoesName string `json:"shoes_name"`
	Brand     string `json:"brand"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Stock     int    `json:"stock"`
}
