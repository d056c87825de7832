package repository

import (
	"testing"
	"time"

	"github.com/shoestore/internal/constants"
	"github.com/shoestore/internal/models"

	"gorm.io/gorm"
)

func createDashboardOrder(t *testing.T, db *gorm.DB, orderNo, status string, total int64, createdAt time.Time) *models.Order {
	t.Helper()
	order := &models.Order{
		OrderNo:          orderNo,
		UserID:           1,
		SourceType:       constants.OrderTypeBuyNow,
		RecipientName:    "A",
		RecipientPhone:   "0900000000",
		RecipientAddress: "HCM",
		TotalAmount:      models.NewMoneyFromInt(total),
		PaymentMethod:    constants.PaymentMethodCOD,
		Status:           status,
		CreatedAt:        createdAt,
	}
	if err := db.Create(order).Error; err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	return order
}

func TestDashboardOverviewAndTopShoes(t *testing.T) {
	db := openTestDB(t)
	repo := NewDashboardRepository(db)
	now := time.Now()

	shoes := createTestShoes(t, db, "Ranked", "Brand", 100, nil, now)
	completed := createDashboardOrder(t, db, "SS-1", constants.OrderStatusCompleted, 1330000, now)
	createDashboardOrder(t, db, "SS-2", constants.OrderStatusPending, 530000, now)
	cancelled := createDashboardOrder(t, db, "SS-3", constants.OrderStatusCancelled, 330000, now)

	items := []models.OrderItem{
		{OrderID: completed.ID, ShoesID: shoes.ID, VariantID: 1, ProductName: "Ranked", Quantity: 2, ItemTotal: models.NewMoneyFromInt(1000000)},
		{OrderID: cancelled.ID, ShoesID: shoes.ID, VariantID: 1, ProductName: "Ranked", Quantity: 7, ItemTotal: models.NewMoneyFromInt(100)},
	}
	if err := db.Create(&items).Error; err != nil {
		t.Fatalf("create order items failed: %v", err)
	}

	startAt := now.Add(-time.Hour)
	endAt := now.Add(time.Hour)
	overview, err := repo.GetOverview(startAt, endAt)
	if err != nil {
		t.Fatalf("overview failed: %v", err)
	}
	if overview.OrdersTotal != 3 || overview.CompletedOrders != 1 || overview.PendingOrders != 1 || overview.CancelledOrders != 1 {
		t.Fatalf("unexpected overview counts: %+v", overview)
	}
	if overview.Revenue != 1330000 {
		t.Fatalf("revenue want 1330000 got %v", overview.Revenue)
	}

	top, err := repo.GetTopShoes(startAt, endAt, 5)
	if err != nil {
		t.Fatalf("top shoes failed: %v", err)
	}
	if len(top) != 1 || top[0].Quantity != 2 {
		t.Fatalf("cancelled orders should not count toward sales: %+v", top)
	}
}

func TestDashboardStockStats(t *testing.T) {
	db := openTestDB(t)
	repo := NewDashboardRepository(db)
	shoes := createTestShoes(t, db, "Stock", "Brand", 100, nil, time.Now())
	createTestVariant(t, db, shoes.ID, "40", "Blue", 0)
	createTestVariant(t, db, shoes.ID, "41", "Blue", 3)
	createTestVariant(t, db, shoes.ID, "42", "Blue", 30)

	stats, err := repo.GetStockStats(10)
	if err != nil {
		t.Fatalf("stock stats failed: %v", err)
	}
	if stats.OutOfStockVariants != 1 || stats.LowStockVariants != 1 || stats.TotalUnits != 33 {
		t.Fatalf("unexpected stock stats: %+v", stats)
	}
}
