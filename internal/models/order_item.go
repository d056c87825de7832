package models

import "time"

// OrderItem 订单项快照，下单后不随商品信息变化
type OrderItem struct {
	ID           uint      `gorm:"primarykey" json:"id"`                                       // 主键
	OrderID      uint      `gorm:"index;not null" json:"order_id"`                             // 订单ID
	ShoesID      uint      `gorm:"index;not null" json:"shoes_id"`                             // 鞋款ID
	VariantID    uint      `gorm:"index;not null" json:"variant_id"`                           // 规格ID
	ProductName  string    `gorm:"type:varchar(200);not null" json:"product_name"`             // 商品名快照
	VariantInfo  string    `gorm:"type:varchar(200)" json:"variant_info"`                      // 规格描述快照
	Quantity     int       `gorm:"not null" json:"quantity"`                                   // 数量
	UnitPrice    Money     `gorm:"type:decimal(20,2);not null;default:0" json:"unit_price"`    // 单价快照
	ShopDiscount Money     `gorm:"type:decimal(20,2);not null;default:0" json:"shop_discount"` // 单项优惠
	ItemTotal    Money     `gorm:"type:decimal(20,2);not null;default:0" json:"item_total"`    // 行合计
	CreatedAt    time.Time `gorm:"index" json:"created_at"`                                    // 创建时间
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}
