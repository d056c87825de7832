package models

import "time"

// Campaign 促销活动
type Campaign struct {
	ID                uint      `gorm:"primarykey" json:"id"`                                             // 主键
	Name              string    `gorm:"type:varchar(200);not null" json:"name"`                           // 活动名称
	Description       string    `gorm:"type:text" json:"description"`                                     // 描述
	StartDate         time.Time `gorm:"index" json:"start_date"`                                          // 开始日期
	EndDate           time.Time `gorm:"index" json:"end_date"`                                            // 结束日期
	DiscountType      string    `gorm:"type:varchar(20);not null" json:"discount_type"`                   // PERCENT / FIXED
	DiscountValue     Money     `gorm:"type:decimal(20,2);not null;default:0" json:"discount_value"`      // 优惠值
	MaxDiscountAmount Money     `gorm:"type:decimal(20,2);not null;default:0" json:"max_discount_amount"` // 封顶优惠
	MinOrderValue     Money     `gorm:"type:decimal(20,2);not null;default:0" json:"min_order_value"`     // 最低订单金额
	Enabled           bool      `gorm:"not null" json:"enabled"`                                          // 是否启用
	Status            string    `gorm:"type:varchar(20);index;not null" json:"status"`                    // 计算得出的活动状态
	CreatedAt         time.Time `json:"created_at"`                                                       // 创建时间
	UpdatedAt         time.Time `json:"updated_at"`                                                       // 更新时间

	Targets []PromotionTarget `gorm:"foreignKey:CampaignID" json:"targets,omitempty"`
}

// TableName 指定表名
func (Campaign) TableName() string {
	return "campaigns"
}

// PromotionTarget 活动适用范围
type PromotionTarget struct {
	ID         uint   `gorm:"primarykey" json:"id"`
	CampaignID uint   `gorm:"index;not null" json:"campaign_id"`
	TargetType string `gorm:"type:varchar(20);not null" json:"target_type"`
	ShoesID    *uint  `gorm:"index" json:"shoes_id,omitempty"`
	CategoryID *uint  `gorm:"index" json:"category_id,omitempty"`
}

// TableName 指定表名
func (PromotionTarget) TableName() string {
	return "promotion_targets"
}

// Voucher 优惠码
type Voucher struct {
	ID                   uint      `gorm:"primarykey" json:"id"`                                            // 主键
	CampaignID           uint      `gorm:"index;not null" json:"campaign_id"`                               // 所属活动
	Code                 string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"code"`               // 优惠码
	Title                string    `gorm:"type:varchar(200)" json:"title"`                                  // 标题
	Description          string    `gorm:"type:text" json:"description"`                                    // 描述
	DiscountType         string    `gorm:"type:varchar(20);not null" json:"discount_type"`                  // PERCENT / FIXED
	DiscountValue        Money     `gorm:"type:decimal(20,2);not null;default:0" json:"discount_value"`     // 优惠值
	MaxDiscountValue     Money     `gorm:"type:decimal(20,2);not null;default:0" json:"max_discount_value"` // 封顶优惠
	MinOrderValue        Money     `gorm:"type:decimal(20,2);not null;default:0" json:"min_order_value"`    // 最低订单金额
	StartDate            time.Time `json:"start_date"`                                                      // 开始日期
	EndDate              time.Time `json:"end_date"`                                                        // 结束日期
	MaxRedeemPerCustomer int       `gorm:"not null;default:0" json:"max_redeem_per_customer"`               // 每人可用次数（0 不限）
	Enabled              bool      `gorm:"not null" json:"enabled"`                                         // 是否启用
	CreatedAt            time.Time `json:"created_at"`                                                      // 创建时间
	UpdatedAt            time.Time `json:"updated_at"`                                                      // 更新时间

	Campaign *Campaign `gorm:"foreignKey:CampaignID" json:"campaign,omitempty"`
}

// TableName 指定表名
func (Voucher) TableName() string {
	return "vouchers"
}
