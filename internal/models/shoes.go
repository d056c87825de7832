package models

import (
	"fmt"
	"time"
)

// Shoes 鞋款（商品主体）
type Shoes struct {
	ID          uint      `gorm:"primarykey" json:"id"`                                    // 主键
	CategoryID  *uint     `gorm:"index" json:"category_id"`                                // 分类ID
	Name        string    `gorm:"type:varchar(200);index;not null" json:"name"`            // 名称
	Brand       string    `gorm:"type:varchar(100);index" json:"brand"`                    // 品牌
	Type        string    `gorm:"type:varchar(20);index" json:"type"`                      // FOR_MALE / FOR_FEMALE / UNISEX
	BasePrice   Money     `gorm:"type:decimal(20,2);not null;default:0" json:"base_price"` // 基础售价
	Description string    `gorm:"type:text" json:"description"`                            // 描述
	Collection  string    `gorm:"type:varchar(100)" json:"collection"`                     // 系列
	CreatedAt   time.Time `gorm:"index" json:"created_at"`                                 // 创建时间
	UpdatedAt   time.Time `json:"updated_at"`                                              // 更新时间

	Category *Category      `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Images   []ShoesImage   `gorm:"foreignKey:ShoesID" json:"images,omitempty"`
	Variants []ShoesVariant `gorm:"foreignKey:ShoesID" json:"variants,omitempty"`
}

// TableName 指定表名
func (Shoes) TableName() string {
	return "shoes"
}

// ShoesImage 鞋款图片
type ShoesImage struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	ShoesID     uint   `gorm:"index;not null" json:"shoes_id"`
	URL         string `gorm:"type:varchar(500);not null" json:"url"`
	IsThumbnail bool   `gorm:"not null;default:false" json:"is_thumbnail"`
	SortOrder   int    `gorm:"not null;default:0" json:"sort_order"`
}

// TableName 指定表名
func (ShoesImage) TableName() string {
	return "shoes_images"
}

// ShoesVariant 可购买规格（尺码 × 颜色）
type ShoesVariant struct {
	ID        uint      `gorm:"primarykey" json:"id"`                                                      // 主键
	ShoesID   uint      `gorm:"not null;index;uniqueIndex:idx_variant_size_color" json:"shoes_id"`         // 鞋款ID
	Size      string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_variant_size_color" json:"size"`  // 尺码
	Color     string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_variant_size_color" json:"color"` // 颜色
	Stock     int       `gorm:"not null;default:0" json:"stock"`                                           // 库存
	CreatedAt time.Time `json:"created_at"`                                                                // 创建时间
	UpdatedAt time.Time `json:"updated_at"`                                                                // 更新时间

	Shoes *Shoes `gorm:"foreignKey:ShoesID" json:"shoes,omitempty"`
}

// TableName 指定表名
func (ShoesVariant) TableName() string {
	return "shoes_variants"
}

// Descriptor 订单项展示用规格描述
func (v ShoesVariant) Descriptor() string {
	return fmt.Sprintf("Size: %s, Color: %s", v.Size, v.Color)
}
