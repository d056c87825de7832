package models

import "time"

// OrderTrackingLog 订单状态流转记录（只追加）
type OrderTrackingLog struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	OrderID   uint      `gorm:"index;not null" json:"order_id"`
	OldStatus string    `gorm:"type:varchar(30)" json:"old_status"`
	NewStatus string    `gorm:"type:varchar(30);not null" json:"new_status"`
	ChangedAt time.Time `gorm:"index;not null" json:"changed_at"`
	ChangedBy string    `gorm:"type:varchar(120)" json:"changed_by"`
	Comment   string    `gorm:"type:varchar(500)" json:"comment"`
}

// TableName 指定表名
func (OrderTrackingLog) TableName() string {
	return "order_tracking_logs"
}
