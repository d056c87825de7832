package service

import (
	"testing"

	"github.com/shoestore/internal/constants"
	"github.com/shoestore/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createPendingOrder(t *testing.T, f *orderFixture) *models.Order {
	t.Helper()
	_, variant := createTestShoesWithVariant(t, f.db, "Hunter", 500000, "42", "Black", 10)
	req := freeformRequest(constants.OrderTypeBuyNow)
	req.VariantID = variant.ID
	req.Quantity = 1
	order, err := f.orders.CreateOrder(f.ctx, f.identity(), req)
	require.NoError(t, err)
	return order
}

func TestCanTransitOrderStatus(t *testing.T) {
	tests := []struct {
		from string
		to   string
		want bool
	}{
		{constants.OrderStatusPending, constants.OrderStatusConfirmed, true},
		{constants.OrderStatusPending, constants.OrderStatusCancelled, true},
		{constants.OrderStatusPending, constants.OrderStatusShipping, false},
		{constants.OrderStatusConfirmed, constants.OrderStatusPacking, true},
		{constants.OrderStatusPacking, constants.OrderStatusCancelled, false},
		{constants.OrderStatusShipping, constants.OrderStatusRequestRefund, true},
		{constants.OrderStatusRequestRefund, constants.OrderStatusRefunded, true},
		{constants.OrderStatusCompleted, constants.OrderStatusRequestRefund, false},
		{constants.OrderStatusRefunded, constants.OrderStatusPending, false},
	}
	for _, tt := range tests {
		if got := CanTransitOrderStatus(tt.from, tt.to); got != tt.want {
			t.Fatalf("%s -> %s: want %v got %v", tt.from, tt.to, tt.want, got)
		}
	}
}

func TestTransitionWritesHistory(t *testing.T) {
	f := newOrderFixture(t)
	order := createPendingOrder(t, f)

	steps := []string{
		constants.OrderStatusConfirmed,
		constants.OrderStatusPacking,
		constants.OrderStatusShipping,
		constants.OrderStatusCompleted,
	}
	for _, status := range steps {
		updated, err := f.orders.Transition(f.ctx, order.ID, status, AdminActor(1), "ok")
		require.NoError(t, err)
		assert.Equal(t, status, updated.Status)
	}

	history, err := f.orders.History(f.ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, history, 5)
	assert.Equal(t, constants.OrderStatusShipping, history[4].OldStatus)
	assert.Equal(t, constants.OrderStatusCompleted, history[4].NewStatus)
	assert.Equal(t, "admin:1", history[4].ChangedBy)
	assert.Equal(t, "ok", history[4].Comment)
}

func TestTransitionRejectsTerminalAndInvalid(t *testing.T) {
	f := newOrderFixture(t)
	order := createPendingOrder(t, f)

	_, err := f.orders.Transition(f.ctx, order.ID, "LOST", "", "")
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = f.orders.Transition(f.ctx, order.ID, constants.OrderStatusShipping, "", "")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = f.orders.Transition(f.ctx, order.ID, constants.OrderStatusCancelled, "", "")
	require.NoError(t, err)
	_, err = f.orders.Transition(f.ctx, order.ID, constants.OrderStatusConfirmed, "", "")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	history, err := f.orders.History(f.ctx, order.ID)
	require.NoError(t, err)
	assert.Len(t, history, 2)
	assert.Equal(t, constants.ActorSystem, history[1].ChangedBy)
}

func TestTransitionMissingOrder(t *testing.T) {
	f := newOrderFixture(t)
	_, err := f.orders.Transition(f.ctx, 4242, constants.OrderStatusConfirmed, "", "")
	assert.ErrorIs(t, err, ErrOrderNotFound)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCancelByUserAndRequestRefund(t *testing.T) {
	f := newOrderFixture(t)
	order := createPendingOrder(t, f)

	_, err := f.orders.RequestRefund(f.ctx, f.identity(), order.ID, "")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	cancelled, err := f.orders.CancelByUser(f.ctx, f.identity(), order.ID, "changed mind")
	require.NoError(t, err)
	assert.Equal(t, constants.OrderStatusCancelled, cancelled.Status)

	shipping := createPendingOrder(t, f)
	for _, status := range []string{constants.OrderStatusConfirmed, constants.OrderStatusPacking, constants.OrderStatusShipping} {
		_, err := f.orders.Transition(f.ctx, shipping.ID, status, "", "")
		require.NoError(t, err)
	}
	refund, err := f.orders.RequestRefund(f.ctx, f.identity(), shipping.ID, "wrong size")
	require.NoError(t, err)
	assert.Equal(t, constants.OrderStatusRequestRefund, refund.Status)

	other := createTestUser(t, f.db, "other@example.com")
	_, err = f.orders.CancelByUser(f.ctx, Identity{UserID: other.ID}, shipping.ID, "")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestTransitionFromTerminalStatusLeavesOrderUnchanged(t *testing.T) {
	paths := map[string][]string{
		constants.OrderStatusCompleted: {
			constants.OrderStatusConfirmed,
			constants.OrderStatusPacking,
			constants.OrderStatusShipping,
			constants.OrderStatusCompleted,
		},
		constants.OrderStatusRefunded: {
			constants.OrderStatusConfirmed,
			constants.OrderStatusPacking,
			constants.OrderStatusShipping,
			constants.OrderStatusRequestRefund,
			constants.OrderStatusRefunded,
		},
	}
	for terminal, steps := range paths {
		t.Run(terminal, func(t *testing.T) {
			f := newOrderFixture(t)
			order := createPendingOrder(t, f)
			for _, status := range steps {
				_, err := f.orders.Transition(f.ctx, order.ID, status, AdminActor(1), "")
				require.NoError(t, err)
			}
			before, err := f.orders.History(f.ctx, order.ID)
			require.NoError(t, err)

			for _, next := range []string{
				constants.OrderStatusPending,
				constants.OrderStatusCancelled,
				constants.OrderStatusRequestRefund,
				constants.OrderStatusShipping,
			} {
				_, err := f.orders.Transition(f.ctx, order.ID, next, AdminActor(1), "retry")
				assert.ErrorIs(t, err, ErrInvalidTransition, "%s -> %s", terminal, next)
			}

			var reloaded models.Order
			require.NoError(t, f.db.First(&reloaded, order.ID).Error)
			assert.Equal(t, terminal, reloaded.Status)
			after, err := f.orders.History(f.ctx, order.ID)
			require.NoError(t, err)
			assert.Len(t, after, len(before))
			assert.Equal(t, terminal, after[len(after)-1].NewStatus)
		})
	}
}
