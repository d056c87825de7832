package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/shoestore/internal/constants"
)

const shoesDetailCacheTTL = constants.ShoesDetailCacheSeconds * time.Second

func shoesDetailKey(shoesID uint) string {
	return fmt.Sprintf("shoes:detail:%d", shoesID)
}

// GetShoesDetail 读取鞋款详情缓存
func GetShoesDetail(ctx context.Context, shoesID uint, dest interface{}) (bool, error) {
	if shoesID == 0 {
		return false, nil
	}
	return GetJSON(ctx, shoesDetailKey(shoesID), dest)
}

// SetShoesDetail 写入鞋款详情缓存
func SetShoesDetail(ctx context.Context, shoesID uint, detail interface{}) error {
	if shoesID == 0 || detail == nil {
		return nil
	}
	return SetJSON(ctx, shoesDetailKey(shoesID), detail, shoesDetailCacheTTL)
}

// DelShoesDetail 删除鞋款详情缓存（商品或库存变更后调用）
func DelShoesDetail(ctx context.Context, shoesID uint) error {
	if shoesID == 0 {
		return nil
	}
	return Del(ctx, shoesDetailKey(shoesID))
}
