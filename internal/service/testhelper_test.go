package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shoestore/internal/constants"
	"github.com/shoestore/internal/models"
	"github.com/shoestore/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// setupServiceDB 打开独立的内存库并替换全局连接
func setupServiceDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:svc_%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := models.MigrateWith(db); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	prev := models.DB
	models.DB = db
	t.Cleanup(func() {
		models.DB = prev
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

type orderFixture struct {
	db      *gorm.DB
	carts   *CartService
	orders  *OrderService
	user    *models.User
	ctx     context.Context
	shipFee decimal.Decimal
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()
	db := setupServiceDB(t)
	pricing := NewPricingCalculator(decimal.NewFromInt(constants.DefaultShippingFee))
	cartRepo := repository.NewCartRepository(db)
	variantRepo := repository.NewShoesVariantRepository(db)
	return &orderFixture{
		db:    db,
		carts: NewCartService(cartRepo, variantRepo, pricing),
		orders: NewOrderService(
			repository.NewOrderRepository(db),
			repository.NewOrderTrackingLogRepository(db),
			cartRepo,
			variantRepo,
			repository.NewAddressRepository(db),
			nil,
			pricing,
		),
		user:    createTestUser(t, db, "buyer@example.com"),
		ctx:     context.Background(),
		shipFee: decimal.NewFromInt(constants.DefaultShippingFee),
	}
}

func (f *orderFixture) identity() Identity {
	return Identity{UserID: f.user.ID, Email: f.user.Email}
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	now := time.Now()
	user := &models.User{
		Email:           email,
		PasswordHash:    "hash",
		FullName:        "Test Buyer",
		Status:          constants.UserStatusActive,
		EmailVerifiedAt: &now,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	return user
}

func createTestShoesWithVariant(t *testing.T, db *gorm.DB, name string, price int64, size, color string, stock int) (*models.Shoes, *models.ShoesVariant) {
	t.Helper()
	shoes := &models.Shoes{
		Name:      name,
		Brand:     "Biti's",
		Type:      constants.ShoesTypeUnisex,
		BasePrice: models.NewMoneyFromInt(price),
	}
	if err := db.Create(shoes).Error; err != nil {
		t.Fatalf("create shoes failed: %v", err)
	}
	variant := &models.ShoesVariant{ShoesID: shoes.ID, Size: size, Color: color, Stock: stock}
	if err := db.Create(variant).Error; err != nil {
		t.Fatalf("create variant failed: %v", err)
	}
	return shoes, variant
}

func createTestCartItem(t *testing.T, db *gorm.DB, userID, variantID uint, quantity int, unitPrice int64) *models.CartItem {
	t.Helper()
	var cart models.Cart
	if err := db.Where("user_id = ?", userID).FirstOrCreate(&cart, models.Cart{UserID: userID}).Error; err != nil {
		t.Fatalf("create cart failed: %v", err)
	}
	item := &models.CartItem{
		CartID:    cart.ID,
		VariantID: variantID,
		Quantity:  quantity,
		UnitPrice: models.NewMoneyFromInt(unitPrice),
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("create cart item failed: %v", err)
	}
	return item
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var total int64
	if err := db.Model(model).Count(&total).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	return total
}

func freeformRequest(orderType string) OrderRequest {
	return OrderRequest{
		Type:             orderType,
		RecipientName:    "Nguyen Van A",
		RecipientPhone:   "0901234567",
		RecipientAddress: "1 Le Loi, District 1, Ho Chi Minh City",
	}
}
