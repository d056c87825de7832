package service

import (
	"context"
	"fmt"

	"github.com/shoestore/internal/constants"
	"github.com/shoestore/internal/models"

	"gorm.io/gorm"
)

// Identity 由会话中间件解析出的当前顾客身份
type Identity struct {
	UserID uint
	Email  string
}

// Authenticated 是否已登录
func (i Identity) Authenticated() bool {
	return i.UserID > 0
}

// Actor 流转记录中的操作人标识
func (i Identity) Actor() string {
	if !i.Authenticated() {
		return constants.ActorSystem
	}
	return fmt.Sprintf("%s%d", constants.ActorUserPrefix, i.UserID)
}

// AdminActor 管理员操作人标识
func AdminActor(adminID uint) string {
	if adminID == 0 {
		return constants.ActorSystem
	}
	return fmt.Sprintf("%s%d", constants.ActorAdminPrefix, adminID)
}

// dbWithContext 返回绑定 ctx 的全局连接，未初始化时返回 nil
func dbWithContext(ctx context.Context) *gorm.DB {
	if models.DB == nil {
		return nil
	}
	if ctx == nil {
		return models.DB
	}
	return models.DB.WithContext(ctx)
}
