package models

import "time"

// Review 商品评价（每个订单项至多一条）
type Review struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	UserID      uint      `gorm:"index;not null" json:"user_id"`
	OrderID     uint      `gorm:"index;not null" json:"order_id"`
	OrderItemID uint      `gorm:"uniqueIndex;not null" json:"order_item_id"`
	ShoesID     uint      `gorm:"index;not null" json:"shoes_id"`
	Rating      int       `gorm:"not null" json:"rating"`
	Comment     string    `gorm:"type:text" json:"comment"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName 指定表名
func (Review) TableName() string {
	return "reviews"
}
