package service

import (
	"testing"

	"github.com/shoestore/internal/constants"
	"github.com/shoestore/internal/models"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartSnapshotWithoutCart(t *testing.T) {
	f := newOrderFixture(t)
	_, err := f.carts.Snapshot(f.ctx, f.identity())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if !IsCartMissing(err) {
		t.Fatalf("expected cart missing, got %v", err)
	}
}

func TestCartSnapshotTotals(t *testing.T) {
	f := newOrderFixture(t)
	_, v1 := createTestShoesWithVariant(t, f.db, "Hunter", 500000, "42", "Black", 10)
	_, v2 := createTestShoesWithVariant(t, f.db, "Runner", 300000, "40", "White", 5)
	createTestCartItem(t, f.db, f.user.ID, v1.ID, 2, 500000)
	createTestCartItem(t, f.db, f.user.ID, v2.ID, 1, 300000)

	snapshot, err := f.carts.Snapshot(f.ctx, f.identity())
	require.NoError(t, err)
	require.Len(t, snapshot.Items, 2)
	assert.Equal(t, "1300000.00", snapshot.Subtotal.StringFixed(2))
	assert.Equal(t, "30000.00", snapshot.ShippingFee.StringFixed(2))
	assert.True(t, snapshot.Discount.IsZero())
	assert.Equal(t, "1330000.00", snapshot.Total.StringFixed(2))
	assert.Equal(t, 3, snapshot.ItemCount)
	assert.Equal(t, constants.PlaceholderThumbnailURL, snapshot.Items[0].Thumbnail)
	assert.Equal(t, "Hunter", snapshot.Items[0].ProductName)
	assert.Equal(t, 10, snapshot.Items[0].Stock)
}

func TestCartAddItemMergesAndChecksStock(t *testing.T) {
	f := newOrderFixture(t)
	_, variant := createTestShoesWithVariant(t, f.db, "Hunter", 500000, "42", "Black", 3)

	item, err := f.carts.AddItem(f.ctx, f.identity(), variant.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, "500000.00", item.UnitPrice.StringFixed(2))

	item, err = f.carts.AddItem(f.ctx, f.identity(), variant.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, item.Quantity)
	assert.Equal(t, int64(1), countRows(t, f.db, &models.CartItem{}))

	_, err = f.carts.AddItem(f.ctx, f.identity(), variant.ID, 1)
	assert.ErrorIs(t, err, ErrStockExceeded)
	assert.ErrorIs(t, err, ErrBusinessRuleViolation)

	count, err := f.carts.CountItems(f.ctx, f.identity())
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestCartAddItemValidation(t *testing.T) {
	f := newOrderFixture(t)
	_, variant := createTestShoesWithVariant(t, f.db, "Hunter", 500000, "42", "Black", 3)

	_, err := f.carts.AddItem(f.ctx, f.identity(), variant.ID, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
	_, err = f.carts.AddItem(f.ctx, f.identity(), 9999, 1)
	assert.ErrorIs(t, err, ErrVariantNotFound)
	_, err = f.carts.AddItem(f.ctx, Identity{}, variant.ID, 1)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestCartUpdateQuantity(t *testing.T) {
	f := newOrderFixture(t)
	_, variant := createTestShoesWithVariant(t, f.db, "Hunter", 500000, "42", "Black", 2)
	item := createTestCartItem(t, f.db, f.user.ID, variant.ID, 1, 500000)

	updated, err := f.carts.UpdateQuantity(f.ctx, f.identity(), item.ID, constants.CartActionIncrease)
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Quantity)

	_, err = f.carts.UpdateQuantity(f.ctx, f.identity(), item.ID, constants.CartActionIncrease)
	assert.ErrorIs(t, err, ErrStockExceeded)

	_, err = f.carts.UpdateQuantity(f.ctx, f.identity(), item.ID, constants.CartActionDecrease)
	require.NoError(t, err)
	removed, err := f.carts.UpdateQuantity(f.ctx, f.identity(), item.ID, constants.CartActionDecrease)
	require.NoError(t, err)
	assert.Nil(t, removed)
	assert.Equal(t, int64(0), countRows(t, f.db, &models.CartItem{}))
}

func TestCartRemoveItemOwnership(t *testing.T) {
	f := newOrderFixture(t)
	other := createTestUser(t, f.db, "other@example.com")
	_, variant := createTestShoesWithVariant(t, f.db, "Hunter", 500000, "42", "Black", 2)
	foreign := createTestCartItem(t, f.db, other.ID, variant.ID, 1, 500000)

	err := f.carts.RemoveItem(f.ctx, f.identity(), foreign.ID)
	assert.ErrorIs(t, err, ErrCartItemNotFound)
	assert.Equal(t, int64(1), countRows(t, f.db, &models.CartItem{}))

	require.NoError(t, f.carts.RemoveItem(f.ctx, Identity{UserID: other.ID}, foreign.ID))
	assert.Equal(t, int64(0), countRows(t, f.db, &models.CartItem{}))
}
