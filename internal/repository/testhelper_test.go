package repository

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shoestore/internal/constants"
	"github.com/shoestore/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := models.MigrateWith(db); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return db
}

func createTestShoes(t *testing.T, db *gorm.DB, name, brand string, price int64, categoryID *uint, createdAt time.Time) *models.Shoes {
	t.Helper()
	shoes := &models.Shoes{
		CategoryID: categoryID,
		Name:       name,
		Brand:      brand,
		Type:       constants.ShoesTypeUnisex,
		BasePrice:  models.NewMoneyFromInt(price),
		CreatedAt:  createdAt,
	}
	if err := db.Create(shoes).Error; err != nil {
		t.Fatalf("create shoes failed: %v", err)
	}
	return shoes
}

func createTestVariant(t *testing.T, db *gorm.DB, shoesID uint, size, color string, stock int) *models.ShoesVariant {
	t.Helper()
	variant := &models.ShoesVariant{ShoesID: shoesID, Size: size, Color: color, Stock: stock}
	if err := db.Create(variant).Error; err != nil {
		t.Fatalf("create variant failed: %v", err)
	}
	return variant
}
