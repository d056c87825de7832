package repository

import (
	"testing"
	"time"

	"github.com/shoestore/internal/constants"
)

func TestInventoryListStatusFilter(t *testing.T) {
	db := openTestDB(t)
	repo := NewShoesVariantRepository(db)
	shoes := createTestShoes(t, db, "Stock Shoes", "Brand", 100, nil, time.Now())
	createTestVariant(t, db, shoes.ID, "40", "Red", 0)
	createTestVariant(t, db, shoes.ID, "41", "Red", 5)
	createTestVariant(t, db, shoes.ID, "42", "Red", 50)

	cases := map[string]int64{
		"":                                  3,
		constants.InventoryStatusOutOfStock: 1,
		constants.InventoryStatusLowStock:   1,
		constants.InventoryStatusInStock:    1,
	}
	for status, want := range cases {
		rows, total, err := repo.ListInventory(InventoryListFilter{Page: 1, PageSize: 10, Status: status, LowStockThreshold: 10})
		if err != nil {
			t.Fatalf("list inventory (%s) failed: %v", status, err)
		}
		if total != want || int64(len(rows)) != want {
			t.Fatalf("status %q want %d got total=%d len=%d", status, want, total, len(rows))
		}
	}

	alerts, err := repo.ListAlerts(10)
	if err != nil {
		t.Fatalf("alerts failed: %v", err)
	}
	if len(alerts) != 2 || alerts[0].Stock != 0 || alerts[0].ShoesName != "Stock Shoes" {
		t.Fatalf("unexpected alerts: %+v", alerts)
	}
}
