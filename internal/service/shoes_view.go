package service

import (
	"strings"

	"github.com/shoestore/internal/constants"
	"github.com/shoestore/internal/models"
)

// thumbnailURL 优先缩略图标记，其次第一张图，否则占位图
func thumbnailURL(images []models.ShoesImage) string {
	for _, img := range images {
		if img.IsThumbnail && strings.TrimSpace(img.URL) != "" {
			return img.URL
		}
	}
	for _, img := range images {
		if strings.TrimSpace(img.URL) != "" {
			return img.URL
		}
	}
	return constants.PlaceholderThumbnailURL
}

func shoesThumbnail(shoes *models.Shoes) string {
	if shoes == nil {
		return constants.PlaceholderThumbnailURL
	}
	return thumbnailURL(shoes.Images)
}

func totalStock(variants []models.ShoesVariant) int {
	total := 0
	for _, v := range variants {
		total += v.Stock
	}
	return total
}
