package service

import (
	"strings"
	"testing"

	"github.com/shoestore/internal/constants"
	"github.com/shoestore/internal/models"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreateOrderFromCart(t *testing.T) {
	f := newOrderFixture(t)
	_, v1 := createTestShoesWithVariant(t, f.db, "Hunter", 500000, "42", "Black", 10)
	_, v2 := createTestShoesWithVariant(t, f.db, "Runner", 300000, "40", "White", 5)
	createTestCartItem(t, f.db, f.user.ID, v1.ID, 2, 500000)
	createTestCartItem(t, f.db, f.user.ID, v2.ID, 1, 300000)

	order, err := f.orders.CreateOrder(f.ctx, f.identity(), freeformRequest(constants.OrderTypeCart))
	require.NoError(t, err)

	assert.Equal(t, constants.OrderStatusPending, order.Status)
	assert.True(t, strings.HasPrefix(order.OrderNo, constants.OrderNoPrefix))
	assert.Len(t, order.OrderNo, len(constants.OrderNoPrefix)+14+6)
	assert.Equal(t, "1300000.00", order.Subtotal.StringFixed(2))
	assert.Equal(t, "30000.00", order.ShippingFee.StringFixed(2))
	assert.Equal(t, "0.00", order.DiscountAmount.StringFixed(2))
	assert.Equal(t, "1330000.00", order.TotalAmount.StringFixed(2))
	assert.Equal(t, constants.PaymentMethodCOD, order.PaymentMethod)
	assert.Equal(t, f.user.Email, order.RecipientEmail)
	require.Len(t, order.Items, 2)
	assert.Equal(t, "Size: 42, Color: Black", order.Items[0].VariantInfo)
	assert.Equal(t, "1000000.00", order.Items[0].ItemTotal.StringFixed(2))
	assert.True(t, order.Items[0].ShopDiscount.IsZero())

	assert.Equal(t, int64(0), countRows(t, f.db, &models.CartItem{}))
	assert.Equal(t, int64(0), countRows(t, f.db, &models.Cart{}))

	history, err := f.orders.History(f.ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "", history[0].OldStatus)
	assert.Equal(t, constants.OrderStatusPending, history[0].NewStatus)
	assert.Equal(t, f.identity().Actor(), history[0].ChangedBy)
}

func TestCreateOrderUsesCartSnapshotPrice(t *testing.T) {
	f := newOrderFixture(t)
	_, variant := createTestShoesWithVariant(t, f.db, "Hunter", 650000, "42", "Black", 10)
	createTestCartItem(t, f.db, f.user.ID, variant.ID, 1, 500000)

	order, err := f.orders.CreateOrder(f.ctx, f.identity(), freeformRequest(constants.OrderTypeCart))
	require.NoError(t, err)
	assert.Equal(t, "500000.00", order.Items[0].UnitPrice.StringFixed(2))
}

func TestCreateOrderEmptyCart(t *testing.T) {
	f := newOrderFixture(t)
	_, err := f.orders.CreateOrder(f.ctx, f.identity(), freeformRequest(constants.OrderTypeCart))
	assert.ErrorIs(t, err, ErrEmptyCart)

	req := freeformRequest(constants.OrderTypeSelectedItems)
	_, err = f.orders.CreateOrder(f.ctx, f.identity(), req)
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Equal(t, int64(0), countRows(t, f.db, &models.Order{}))
}

func TestCreateOrderSelectedItems(t *testing.T) {
	f := newOrderFixture(t)
	_, v1 := createTestShoesWithVariant(t, f.db, "Hunter", 500000, "42", "Black", 10)
	_, v2 := createTestShoesWithVariant(t, f.db, "Runner", 300000, "40", "White", 5)
	picked := createTestCartItem(t, f.db, f.user.ID, v1.ID, 2, 500000)
	kept := createTestCartItem(t, f.db, f.user.ID, v2.ID, 1, 300000)

	req := freeformRequest(constants.OrderTypeSelectedItems)
	req.SelectedCartItemIDs = []uint{picked.ID}
	order, err := f.orders.CreateOrder(f.ctx, f.identity(), req)
	require.NoError(t, err)
	assert.Equal(t, "1000000.00", order.Subtotal.StringFixed(2))

	var remaining []models.CartItem
	require.NoError(t, f.db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, kept.ID, remaining[0].ID)
	assert.Equal(t, int64(1), countRows(t, f.db, &models.Cart{}))
}

func TestCreateOrderSelectedItemsRejectsForeignIDs(t *testing.T) {
	f := newOrderFixture(t)
	other := createTestUser(t, f.db, "other@example.com")
	_, variant := createTestShoesWithVariant(t, f.db, "Hunter", 500000, "42", "Black", 10)
	own := createTestCartItem(t, f.db, f.user.ID, variant.ID, 1, 500000)
	foreign := createTestCartItem(t, f.db, other.ID, variant.ID, 1, 500000)

	req := freeformRequest(constants.OrderTypeSelectedItems)
	req.SelectedCartItemIDs = []uint{own.ID, foreign.ID}
	_, err := f.orders.CreateOrder(f.ctx, f.identity(), req)
	assert.ErrorIs(t, err, ErrForeignCartItem)
	assert.ErrorIs(t, err, ErrBusinessRuleViolation)
	assert.Equal(t, int64(0), countRows(t, f.db, &models.Order{}))
	assert.Equal(t, int64(2), countRows(t, f.db, &models.CartItem{}))
}

func TestCreateOrderBuyNow(t *testing.T) {
	f := newOrderFixture(t)
	_, variant := createTestShoesWithVariant(t, f.db, "Hunter", 500000, "42", "Black", 10)
	_, other := createTestShoesWithVariant(t, f.db, "Runner", 300000, "40", "White", 5)
	createTestCartItem(t, f.db, f.user.ID, other.ID, 1, 300000)

	req := freeformRequest(constants.OrderTypeBuyNow)
	req.VariantID = variant.ID
	req.Quantity = 3
	req.PaymentMethod = "bank_transfer"
	order, err := f.orders.CreateOrder(f.ctx, f.identity(), req)
	require.NoError(t, err)
	assert.Equal(t, "1500000.00", order.Subtotal.StringFixed(2))
	assert.Equal(t, "1530000.00", order.TotalAmount.StringFixed(2))
	assert.Equal(t, constants.PaymentMethodBankTransfer, order.PaymentMethod)
	assert.Equal(t, int64(1), countRows(t, f.db, &models.CartItem{}))

	var stored models.ShoesVariant
	require.NoError(t, f.db.First(&stored, variant.ID).Error)
	assert.Equal(t, 10, stored.Stock)
}

func TestCreateOrderBuyNowValidation(t *testing.T) {
	f := newOrderFixture(t)
	req := freeformRequest(constants.OrderTypeBuyNow)
	req.VariantID = 1
	req.Quantity = 0
	_, err := f.orders.CreateOrder(f.ctx, f.identity(), req)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	req.VariantID = 9999
	req.Quantity = 1
	_, err = f.orders.CreateOrder(f.ctx, f.identity(), req)
	assert.ErrorIs(t, err, ErrVariantNotFound)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestCreateOrderRejectsUnknownType(t *testing.T) {
	f := newOrderFixture(t)
	_, err := f.orders.CreateOrder(f.ctx, f.identity(), freeformRequest("WISHLIST"))
	assert.ErrorIs(t, err, ErrBusinessRuleViolation)
}

func TestCreateOrderDestinationRules(t *testing.T) {
	f := newOrderFixture(t)
	_, variant := createTestShoesWithVariant(t, f.db, "Hunter", 500000, "42", "Black", 10)

	req := OrderRequest{Type: constants.OrderTypeBuyNow, VariantID: variant.ID, Quantity: 1, RecipientName: "A"}
	_, err := f.orders.CreateOrder(f.ctx, f.identity(), req)
	assert.ErrorIs(t, err, ErrRecipientRequired)
	assert.ErrorIs(t, err, ErrBusinessRuleViolation)

	other := createTestUser(t, f.db, "other@example.com")
	foreignAddress := &models.Address{UserID: other.ID, RecipientName: "B", Phone: "1", Street: "2 Hai Ba Trung"}
	require.NoError(t, f.db.Create(foreignAddress).Error)
	req = OrderRequest{Type: constants.OrderTypeBuyNow, VariantID: variant.ID, Quantity: 1, AddressID: &foreignAddress.ID, PaymentMethod: constants.PaymentMethodCOD}
	_, err = f.orders.CreateOrder(f.ctx, f.identity(), req)
	assert.ErrorIs(t, err, ErrAddressNotFound)
	assert.ErrorIs(t, err, ErrNotFound)

	ownAddress := &models.Address{UserID: f.user.ID, RecipientName: "C", Phone: "0909", Street: "3 Nguyen Hue", District: "District 1", City: "HCMC"}
	require.NoError(t, f.db.Create(ownAddress).Error)
	req.AddressID = &ownAddress.ID
	req.PaymentMethod = "CRYPTO"
	_, err = f.orders.CreateOrder(f.ctx, f.identity(), req)
	assert.ErrorIs(t, err, ErrPaymentMethodInvalid)

	req.PaymentMethod = constants.PaymentMethodEWallet
	order, err := f.orders.CreateOrder(f.ctx, f.identity(), req)
	require.NoError(t, err)
	assert.Equal(t, "C", order.RecipientName)
	assert.Equal(t, "3 Nguyen Hue, District 1, HCMC", order.RecipientAddress)
	require.NotNil(t, order.AddressID)
	assert.Equal(t, ownAddress.ID, *order.AddressID)
}

func TestCreateOrderFreeformAcceptsAnyPaymentLabel(t *testing.T) {
	f := newOrderFixture(t)
	_, variant := createTestShoesWithVariant(t, f.db, "Hunter", 500000, "42", "Black", 10)
	req := freeformRequest(constants.OrderTypeBuyNow)
	req.VariantID = variant.ID
	req.Quantity = 1
	req.PaymentMethod = "momo"
	req.VoucherCode = " summer10 "
	order, err := f.orders.CreateOrder(f.ctx, f.identity(), req)
	require.NoError(t, err)
	assert.Equal(t, "MOMO", order.PaymentMethod)
	assert.Equal(t, "SUMMER10", order.VoucherCode)
	assert.True(t, order.DiscountAmount.IsZero())
}

func TestCheckoutSummaryDoesNotMutate(t *testing.T) {
	f := newOrderFixture(t)
	_, variant := createTestShoesWithVariant(t, f.db, "Hunter", 500000, "42", "Black", 10)
	createTestCartItem(t, f.db, f.user.ID, variant.ID, 2, 500000)

	summary, err := f.orders.CheckoutSummary(f.ctx, f.identity(), LineSource{})
	require.NoError(t, err)
	assert.Equal(t, constants.OrderTypeCart, summary.Type)
	assert.Equal(t, "1030000.00", summary.Total.StringFixed(2))
	assert.Equal(t, constants.SupportedPaymentMethods, summary.PaymentMethods)
	assert.Equal(t, int64(1), countRows(t, f.db, &models.CartItem{}))
	assert.Equal(t, int64(0), countRows(t, f.db, &models.Order{}))
}

func TestGetConfirmationHidesOtherUsersOrders(t *testing.T) {
	f := newOrderFixture(t)
	_, variant := createTestShoesWithVariant(t, f.db, "Hunter", 500000, "42", "Black", 10)
	req := freeformRequest(constants.OrderTypeBuyNow)
	req.VariantID = variant.ID
	req.Quantity = 1
	order, err := f.orders.CreateOrder(f.ctx, f.identity(), req)
	require.NoError(t, err)

	got, err := f.orders.GetConfirmation(f.ctx, f.identity(), order.ID)
	require.NoError(t, err)
	assert.Len(t, got.Items, 1)

	other := createTestUser(t, f.db, "other@example.com")
	_, err = f.orders.GetConfirmation(f.ctx, Identity{UserID: other.ID}, order.ID)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestCreateOrderRollsBackWhenTrackingLogFails(t *testing.T) {
	f := newOrderFixture(t)
	_, v1 := createTestShoesWithVariant(t, f.db, "Hunter", 500000, "42", "Black", 10)
	_, v2 := createTestShoesWithVariant(t, f.db, "Runner", 300000, "40", "White", 5)
	createTestCartItem(t, f.db, f.user.ID, v1.ID, 2, 500000)
	createTestCartItem(t, f.db, f.user.ID, v2.ID, 1, 300000)

	err := f.db.Callback().Create().Before("gorm:create").Register("test:fail_tracking_log", func(tx *gorm.DB) {
		if tx.Statement.Table == "order_tracking_logs" {
			_ = tx.AddError(errors.New("tracking log unavailable"))
		}
	})
	require.NoError(t, err)

	order, err := f.orders.CreateOrder(f.ctx, f.identity(), freeformRequest(constants.OrderTypeCart))
	assert.Nil(t, order)
	assert.ErrorIs(t, err, ErrOrderCreateFailed)

	assert.Equal(t, int64(0), countRows(t, f.db, &models.Order{}))
	assert.Equal(t, int64(0), countRows(t, f.db, &models.OrderItem{}))
	assert.Equal(t, int64(0), countRows(t, f.db, &models.OrderTrackingLog{}))
	assert.Equal(t, int64(1), countRows(t, f.db, &models.Cart{}))
	assert.Equal(t, int64(2), countRows(t, f.db, &models.CartItem{}))
}
