package models

import (
	"time"

	"gorm.io/gorm"
)

// User 顾客账号
type User struct {
	ID              uint           `gorm:"primarykey" json:"id"`                           // 主键
	Email           string         `gorm:"uniqueIndex;not null" json:"email"`              // 邮箱
	PasswordHash    string         `gorm:"not null" json:"-"`                              // 密码哈希
	FullName        string         `gorm:"type:varchar(120)" json:"full_name"`             // 姓名
	Phone           string         `gorm:"type:varchar(30)" json:"phone"`                  // 手机号
	Locale          string         `gorm:"type:varchar(20);default:'vi-VN'" json:"locale"` // 语言偏好
	Status          string         `gorm:"type:varchar(20);index;not null" json:"status"`  // 账号状态（pending/active/disabled）
	EmailVerifiedAt *time.Time     `json:"email_verified_at"`                              // 邮箱验证时间
	LastLoginAt     *time.Time     `json:"last_login_at"`                                  // 最后登录时间
	CreatedAt       time.Time      `gorm:"index" json:"created_at"`                        // 创建时间
	UpdatedAt       time.Time      `json:"updated_at"`                                     // 更新时间
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`                                 // 软删除时间
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}
