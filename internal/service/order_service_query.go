package service

import (
	"context"

	"github.com/shoestore/internal/constants"
	"github.com/shoestore/internal/models"
	"github.com/shoestore/internal/repository"
)

// CheckoutSummary 结算页视图
type CheckoutSummary struct {
	Type           string           `json:"type"`
	VariantID      uint             `json:"variant_id,omitempty"`
	Quantity       int              `json:"quantity,omitempty"`
	ItemIDs        []uint           `json:"item_ids,omitempty"`
	Lines          []OrderLine      `json:"lines"`
	Subtotal       models.Money     `json:"subtotal"`
	ShippingFee    models.Money     `json:"shipping_fee"`
	Discount       models.Money     `json:"discount"`
	Total          models.Money     `json:"total"`
	Addresses      []models.Address `json:"addresses"`
	PaymentMethods []string         `json:"payment_methods"`
}

// CheckoutSummary 按来源预览结算行与金额，不写库
func (s *OrderService) CheckoutSummary(ctx context.Context, identity Identity, source LineSource) (*CheckoutSummary, error) {
	if !identity.Authenticated() {
		return nil, ErrUnauthorized
	}
	source.Type = normalizeOrderType(source.Type)
	if source.Type == "" {
		source.Type = constants.OrderTypeCart
	}
	if !isSupportedOrderType(source.Type) {
		return nil, ErrInvalidOrderType
	}
	db := dbWithContext(ctx)
	resolved, err := s.resolveLines(db, identity, source)
	if err != nil {
		return nil, err
	}
	addresses, err := s.addressRepo.WithTx(db).ListByUser(identity.UserID)
	if err != nil {
		return nil, err
	}
	priceLines := make([]PriceLine, 0, len(resolved.lines))
	for _, line := range resolved.lines {
		priceLines = append(priceLines, PriceLine{UnitPrice: line.UnitPrice.Decimal, Quantity: line.Quantity})
	}
	quote := s.pricing.Quote(priceLines)
	return &CheckoutSummary{
		Type:           source.Type,
		VariantID:      source.VariantID,
		Quantity:       source.Quantity,
		ItemIDs:        resolved.cartItemIDs,
		Lines:          resolved.lines,
		Subtotal:       models.NewMoneyFromDecimal(quote.Subtotal),
		ShippingFee:    models.NewMoneyFromDecimal(quote.ShippingFee),
		Discount:       models.NewMoneyFromDecimal(quote.Discount),
		Total:          models.NewMoneyFromDecimal(quote.Total),
		Addresses:      addresses,
		PaymentMethods: append([]string(nil), constants.SupportedPaymentMethods...),
	}, nil
}

// GetConfirmation 获取当前用户自己的订单，其他用户的订单视为不存在
func (s *OrderService) GetConfirmation(ctx context.Context, identity Identity, orderID uint) (*models.Order, error) {
	if !identity.Authenticated() {
		return nil, ErrUnauthorized
	}
	if orderID == 0 {
		return nil, ErrOrderNotFound
	}
	order, err := s.orderRepo.WithTx(dbWithContext(ctx)).GetByIDAndUser(orderID, identity.UserID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// ListByUser 当前用户订单列表
func (s *OrderService) ListByUser(ctx context.Context, identity Identity, filter repository.OrderListFilter) ([]models.Order, int64, error) {
	if !identity.Authenticated() {
		return nil, 0, ErrUnauthorized
	}
	filter.UserID = identity.UserID
	return s.orderRepo.WithTx(dbWithContext(ctx)).ListByUser(filter)
}

// ListForAdmin 后台订单列表
func (s *OrderService) ListForAdmin(ctx context.Context, filter repository.OrderListFilter) ([]models.Order, int64, error) {
	return s.orderRepo.WithTx(dbWithContext(ctx)).ListAdmin(filter)
}

// GetForAdmin 后台订单详情
func (s *OrderService) GetForAdmin(ctx context.Context, orderID uint) (*models.Order, error) {
	if orderID == 0 {
		return nil, ErrOrderNotFound
	}
	order, err := s.orderRepo.WithTx(dbWithContext(ctx)).GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}
