package models

import "time"

// CartItem 购物车项，单价为加入购物车时的快照价
type CartItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`                                       // 主键
	CartID    uint      `gorm:"not null;index;uniqueIndex:idx_cart_variant" json:"cart_id"` // 购物车ID
	VariantID uint      `gorm:"not null;uniqueIndex:idx_cart_variant" json:"variant_id"`    // 规格ID
	Quantity  int       `gorm:"not null" json:"quantity"`                                   // 数量
	UnitPrice Money     `gorm:"type:decimal(20,2);not null;default:0" json:"unit_price"`    // 快照单价
	CreatedAt time.Time `gorm:"index" json:"created_at"`                                    // 创建时间
	UpdatedAt time.Time `json:"updated_at"`                                                 // 更新时间

	Variant *ShoesVariant `gorm:"foreignKey:VariantID" json:"variant,omitempty"`
}

// TableName 指定表名
func (CartItem) TableName() string {
	return "cart_items"
}
