package models

import (
	"strings"
	"time"
)

// Address 顾客收货地址
type Address struct {
	ID            uint      `gorm:"primarykey" json:"id"`                             // 主键
	UserID        uint      `gorm:"index;not null" json:"user_id"`                    // 用户ID
	RecipientName string    `gorm:"type:varchar(120);not null" json:"recipient_name"` // 收件人
	Phone         string    `gorm:"type:varchar(30);not null" json:"phone"`           // 联系电话
	Street        string    `gorm:"type:varchar(255);not null" json:"street"`         // 街道门牌
	Ward          string    `gorm:"type:varchar(120)" json:"ward"`                    // 坊/社
	District      string    `gorm:"type:varchar(120)" json:"district"`                // 郡/县
	City          string    `gorm:"type:varchar(120)" json:"city"`                    // 省/市
	IsDefault     bool      `gorm:"not null;default:false" json:"is_default"`         // 是否默认地址
	CreatedAt     time.Time `json:"created_at"`                                       // 创建时间
	UpdatedAt     time.Time `json:"updated_at"`                                       // 更新时间
}

// TableName 指定表名
func (Address) TableName() string {
	return "addresses"
}

// FullAddress 拼接完整地址文本
func (a Address) FullAddress() string {
	parts := make([]string, 0, 4)
	for _, part := range []string{a.Street, a.Ward, a.District, a.City} {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return strings.Join(parts, ", ")
}
