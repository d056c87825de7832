package repository

import (
	"testing"
	"time"

	"github.com/shoestore/internal/models"
)

func TestCartRepositoryItemsScopedToCart(t *testing.T) {
	db := openTestDB(t)
	repo := NewCartRepository(db)
	shoes := createTestShoes(t, db, "Cart Shoes", "Brand", 500000, nil, time.Now())
	variant := createTestVariant(t, db, shoes.ID, "41", "White", 10)

	mine, err := repo.GetOrCreateByUser(1)
	if err != nil {
		t.Fatalf("create cart failed: %v", err)
	}
	again, err := repo.GetOrCreateByUser(1)
	if err != nil || again.ID != mine.ID {
		t.Fatalf("cart should be created lazily once")
	}
	other, err := repo.GetOrCreateByUser(2)
	if err != nil {
		t.Fatalf("create other cart failed: %v", err)
	}

	own := &models.CartItem{CartID: mine.ID, VariantID: variant.ID, Quantity: 2, UnitPrice: models.NewMoneyFromInt(500000)}
	foreign := &models.CartItem{CartID: other.ID, VariantID: variant.ID, Quantity: 1, UnitPrice: models.NewMoneyFromInt(500000)}
	if err := repo.CreateItem(own); err != nil {
		t.Fatalf("create item failed: %v", err)
	}
	if err := repo.CreateItem(foreign); err != nil {
		t.Fatalf("create foreign item failed: %v", err)
	}

	items, err := repo.ListItemsByIDs(mine.ID, []uint{own.ID, foreign.ID})
	if err != nil {
		t.Fatalf("list items failed: %v", err)
	}
	if len(items) != 1 || items[0].ID != own.ID {
		t.Fatalf("foreign cart item must not be returned")
	}
	if items[0].Variant == nil || items[0].Variant.Shoes == nil {
		t.Fatalf("variant and shoes should be preloaded")
	}

	count, err := repo.CountItems(1)
	if err != nil || count != 2 {
		t.Fatalf("count want 2 got %d (%v)", count, err)
	}

	cart, err := repo.GetByUserWithItems(1)
	if err != nil || cart == nil || len(cart.Items) != 1 {
		t.Fatalf("cart with items failed: %v", err)
	}

	if err := repo.DeleteItemsByCart(mine.ID); err != nil {
		t.Fatalf("delete items failed: %v", err)
	}
	if err := repo.DeleteCart(mine.ID); err != nil {
		t.Fatalf("delete cart failed: %v", err)
	}
	gone, err := repo.GetByUser(1)
	if err != nil || gone != nil {
		t.Fatalf("cart should be gone")
	}
}
