//go:build integration
// +build integration

package repository

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/shoestore/internal/constants"
	"github.com/shoestore/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// setupPostgresIntegrationDB 初始化 PostgreSQL 集成测试数据库。
func setupPostgresIntegrationDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := strings.TrimSpace(os.Getenv("TEST_POSTGRES_DSN"))
	if dsn == "" {
		t.Skip("skip postgres integration test: TEST_POSTGRES_DSN is empty")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open postgres failed: %v", err)
	}

	cleanupModels := models.AllModels()
	_ = db.Migrator().DropTable(cleanupModels...)

	if err := models.MigrateWith(db); err != nil {
		t.Fatalf("migrate postgres models failed: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Migrator().DropTable(cleanupModels...)
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func TestPostgresShoesSearchIsCaseInsensitive(t *testing.T) {
	db := setupPostgresIntegrationDB(t)
	repo := NewShoesRepository(db)

	shoes := &models.Shoes{
		Name:      "Pegasus Trail",
		Brand:     "Nike",
		Type:      constants.ShoesTypeMale,
		BasePrice: models.NewMoneyFromInt(2500000),
	}
	if err := repo.Create(shoes); err != nil {
		t.Fatalf("create shoes failed: %v", err)
	}

	rows, total, err := repo.List(ShoesListFilter{Page: 1, PageSize: 10, Keyword: "pegasus"})
	if err != nil {
		t.Fatalf("shoes search failed: %v", err)
	}
	if total != 1 || len(rows) != 1 {
		t.Fatalf("ILIKE search want 1 got total=%d len=%d", total, len(rows))
	}

	names, err := repo.SuggestNames("PEG", 10)
	if err != nil {
		t.Fatalf("suggest failed: %v", err)
	}
	if len(names) != 1 {
		t.Fatalf("suggestions want 1 got %v", names)
	}

	rows, _, err = repo.List(ShoesListFilter{Page: 1, PageSize: 10, Sort: constants.ShoesSortSold})
	if err != nil {
		t.Fatalf("sold sort failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("sold sort want 1 got %d", len(rows))
	}
}

func TestPostgresDashboardQueries(t *testing.T) {
	db := setupPostgresIntegrationDB(t)
	repo := NewDashboardRepository(db)
	now := time.Now().UTC().Truncate(time.Second)

	order := &models.Order{
		OrderNo:          "SS-PG-001",
		UserID:           1,
		SourceType:       constants.OrderTypeCart,
		RecipientName:    "PG",
		RecipientPhone:   "0900000000",
		RecipientAddress: "Ha Noi",
		Subtotal:         models.NewMoneyFromInt(1000000),
		ShippingFee:      models.NewMoneyFromInt(30000),
		TotalAmount:      models.NewMoneyFromInt(1030000),
		PaymentMethod:    constants.PaymentMethodCOD,
		Status:           constants.OrderStatusCompleted,
		CreatedAt:        now,
	}
	if err := db.Create(order).Error; err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	item := &models.OrderItem{
		OrderID:     order.ID,
		ShoesID:     1,
		VariantID:   1,
		ProductName: "PG Shoes",
		Quantity:    2,
		UnitPrice:   models.NewMoneyFromInt(500000),
		ItemTotal:   models.NewMoneyFromInt(1000000),
		CreatedAt:   now,
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("create order item failed: %v", err)
	}

	startAt := now.Add(-time.Hour)
	endAt := now.Add(time.Hour)

	top, err := repo.GetTopShoes(startAt, endAt, 5)
	if err != nil {
		t.Fatalf("get top shoes failed: %v", err)
	}
	if len(top) != 1 || top[0].ProductName != "PG Shoes" {
		t.Fatalf("top shoes unexpected: %+v", top)
	}

	trends, err := repo.GetOrderTrends(startAt, endAt)
	if err != nil {
		t.Fatalf("get order trends failed: %v", err)
	}
	if len(trends) == 0 || strings.TrimSpace(trends[0].Day) == "" {
		t.Fatalf("order trends should not be empty")
	}
}
