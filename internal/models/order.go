package models

import (
	"time"

	"gorm.io/gorm"
)

// Order 订单
type Order struct {
	ID               uint           `gorm:"primarykey" json:"id"`                                         // 主键
	OrderNo          string         `gorm:"uniqueIndex;not null" json:"order_no"`                         // 订单编号
	UserID           uint           `gorm:"index;not null" json:"user_id"`                                // 用户ID
	SourceType       string         `gorm:"type:varchar(20);not null" json:"source_type"`                 // 下单来源（CART/SELECTED_ITEMS/BUY_NOW）
	AddressID        *uint          `gorm:"index" json:"address_id,omitempty"`                            // 引用的收货地址
	RecipientName    string         `gorm:"type:varchar(120);not null" json:"recipient_name"`             // 收件人
	RecipientPhone   string         `gorm:"type:varchar(30);not null" json:"recipient_phone"`             // 联系电话
	RecipientEmail   string         `gorm:"type:varchar(200)" json:"recipient_email"`                     // 联系邮箱
	RecipientAddress string         `gorm:"type:varchar(500);not null" json:"recipient_address"`          // 收货地址
	Subtotal         Money          `gorm:"type:decimal(20,2);not null;default:0" json:"subtotal"`        // 商品小计
	ShippingFee      Money          `gorm:"type:decimal(20,2);not null;default:0" json:"shipping_fee"`    // 运费
	DiscountAmount   Money          `gorm:"type:decimal(20,2);not null;default:0" json:"discount_amount"` // 优惠金额
	TotalAmount      Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_amount"`    // 应付金额
	PaymentMethod    string         `gorm:"type:varchar(40);not null" json:"payment_method"`              // 支付方式标签
	VoucherCode      string         `gorm:"type:varchar(64);index" json:"voucher_code,omitempty"`         // 提交的优惠码
	Note             string         `gorm:"type:text" json:"note"`                                        // 备注
	Status           string         `gorm:"type:varchar(30);index;not null" json:"status"`                // 订单状态
	CreatedAt        time.Time      `gorm:"index" json:"created_at"`                                      // 创建时间
	UpdatedAt        time.Time      `json:"updated_at"`                                                   // 更新时间
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`                                               // 软删除时间

	Items        []OrderItem        `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	TrackingLogs []OrderTrackingLog `gorm:"foreignKey:OrderID" json:"tracking_logs,omitempty"`
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
