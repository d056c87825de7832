package models

import "time"

// InventoryLog 库存变动流水
type InventoryLog struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	VariantID   uint      `gorm:"index;not null" json:"variant_id"`
	ChangeType  string    `gorm:"type:varchar(20);not null" json:"change_type"`
	Amount      int       `gorm:"not null" json:"amount"`
	StockBefore int       `gorm:"not null" json:"stock_before"`
	StockAfter  int       `gorm:"not null" json:"stock_after"`
	Note        string    `gorm:"type:varchar(500)" json:"note"`
	Actor       string    `gorm:"type:varchar(120)" json:"actor"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
}

// TableName 指定表名
func (InventoryLog) TableName() string {
	return "inventory_logs"
}
