package models

import "time"

// VerificationCode 邮箱验证码（注册激活 / 找回密码）
type VerificationCode struct {
	ID           uint       `gorm:"primarykey" json:"id"`
	Email        string     `gorm:"index;not null" json:"email"`
	Purpose      string     `gorm:"type:varchar(20);index;not null" json:"purpose"`
	Code         string     `gorm:"type:varchar(12);not null" json:"-"`
	ExpiresAt    time.Time  `gorm:"index" json:"expires_at"`
	ConsumedAt   *time.Time `json:"consumed_at"`
	AttemptCount int        `gorm:"not null;default:0" json:"attempt_count"`
	CreatedAt    time.Time  `gorm:"index" json:"created_at"`
}

// TableName 指定表名
func (VerificationCode) TableName() string {
	return "verification_codes"
}

// Expired 判断验证码是否过期
func (c VerificationCode) Expired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}
