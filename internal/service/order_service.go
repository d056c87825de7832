package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/shoestore/internal/constants"
	"github.com/shoestore/internal/logger"
	"github.com/shoestore/internal/models"
	"github.com/shoestore/internal/queue"
	"github.com/shoestore/internal/repository"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderService 订单服务
type OrderService struct {
	orderRepo    repository.OrderRepository
	trackingRepo repository.OrderTrackingLogRepository
	cartRepo     repository.CartRepository
	variantRepo  repository.ShoesVariantRepository
	addressRepo  repository.AddressRepository
	queueClient  *queue.Client
	pricing      *PricingCalculator
}

// NewOrderService 创建订单服务
func NewOrderService(orderRepo repository.OrderRepository, trackingRepo repository.OrderTrackingLogRepository, cartRepo repository.CartRepository, variantRepo repository.ShoesVariantRepository, addressRepo repository.AddressRepository, queueClient *queue.Client, pricing *PricingCalculator) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		trackingRepo: trackingRepo,
		cartRepo:     cartRepo,
		variantRepo:  variantRepo,
		addressRepo:  addressRepo,
		queueClient:  queueClient,
		pricing:      pricing,
	}
}

// OrderRequest 下单请求
type OrderRequest struct {
	Type                string
	VariantID           uint
	Quantity            int
	SelectedCartItemIDs []uint
	AddressID           *uint
	RecipientName       string
	RecipientPhone      string
	RecipientEmail      string
	RecipientAddress    string
	PaymentMethod       string
	Note                string
	VoucherCode         string
}

// LineSource 下单来源选择（结算页与下单共用）
type LineSource struct {
	Type                string
	VariantID           uint
	Quantity            int
	SelectedCartItemIDs []uint
}

// Source 提取下单来源
func (r OrderRequest) Source() LineSource {
	return LineSource{
		Type:                r.Type,
		VariantID:           r.VariantID,
		Quantity:            r.Quantity,
		SelectedCartItemIDs: r.SelectedCartItemIDs,
	}
}

// OrderLine 解析后的下单行
type OrderLine struct {
	ShoesID     uint         `json:"shoes_id"`
	VariantID   uint         `json:"variant_id"`
	ProductName string       `json:"product_name"`
	VariantInfo string       `json:"variant_info"`
	Thumbnail   string       `json:"thumbnail"`
	Quantity    int          `json:"quantity"`
	UnitPrice   models.Money `json:"unit_price"`
	LineTotal   models.Money `json:"line_total"`
}

// resolvedLines 行解析结果，附带需要消费的购物车信息
type resolvedLines struct {
	lines       []OrderLine
	cartID      uint
	cartItemIDs []uint
}

type orderDestination struct {
	addressID     *uint
	name          string
	phone         string
	email         string
	address       string
	paymentMethod string
}

// CreateOrder 在单个事务内完成下单：解析行、计价、写订单与订单项、消费购物车、写首条流转记录
func (s *OrderService) CreateOrder(ctx context.Context, identity Identity, req OrderRequest) (*models.Order, error) {
	if !identity.Authenticated() {
		return nil, ErrUnauthorized
	}
	source := req.Source()
	source.Type = normalizeOrderType(source.Type)
	if !isSupportedOrderType(source.Type) {
		return nil, ErrInvalidOrderType
	}
	if source.Type == constants.OrderTypeBuyNow && source.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if source.Type == constants.OrderTypeSelectedItems && len(source.SelectedCartItemIDs) == 0 {
		return nil, ErrEmptyCart
	}

	var order *models.Order
	err := dbWithContext(ctx).Transaction(func(tx *gorm.DB) error {
		resolved, err := s.resolveLines(tx, identity, source)
		if err != nil {
			return err
		}
		dest, err := s.resolveDestination(tx, identity, req)
		if err != nil {
			return err
		}

		priceLines := make([]PriceLine, 0, len(resolved.lines))
		for _, line := range resolved.lines {
			priceLines = append(priceLines, PriceLine{UnitPrice: line.UnitPrice.Decimal, Quantity: line.Quantity})
		}
		quote := s.pricing.Quote(priceLines)

		now := time.Now()
		order = &models.Order{
			OrderNo:          generateOrderNo(),
			UserID:           identity.UserID,
			SourceType:       source.Type,
			AddressID:        dest.addressID,
			RecipientName:    dest.name,
			RecipientPhone:   dest.phone,
			RecipientEmail:   dest.email,
			RecipientAddress: dest.address,
			Subtotal:         models.NewMoneyFromDecimal(quote.Subtotal),
			ShippingFee:      models.NewMoneyFromDecimal(quote.ShippingFee),
			DiscountAmount:   models.NewMoneyFromDecimal(quote.Discount),
			TotalAmount:      models.NewMoneyFromDecimal(quote.Total),
			PaymentMethod:    dest.paymentMethod,
			VoucherCode:      strings.ToUpper(strings.TrimSpace(req.VoucherCode)),
			Note:             strings.TrimSpace(req.Note),
			Status:           constants.OrderStatusPending,
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		items := make([]models.OrderItem, 0, len(resolved.lines))
		for _, line := range resolved.lines {
			items = append(items, models.OrderItem{
				ShoesID:      line.ShoesID,
				VariantID:    line.VariantID,
				ProductName:  line.ProductName,
				VariantInfo:  line.VariantInfo,
				Quantity:     line.Quantity,
				UnitPrice:    line.UnitPrice,
				ShopDiscount: models.NewMoneyFromDecimal(decimal.Zero),
				ItemTotal:    line.LineTotal,
				CreatedAt:    now,
			})
		}
		if err := s.orderRepo.WithTx(tx).Create(order, items); err != nil {
			return err
		}

		cartRepo := s.cartRepo.WithTx(tx)
		switch source.Type {
		case constants.OrderTypeCart:
			if err := cartRepo.DeleteItemsByCart(resolved.cartID); err != nil {
				return err
			}
			if err := cartRepo.DeleteCart(resolved.cartID); err != nil {
				return err
			}
		case constants.OrderTypeSelectedItems:
			if err := cartRepo.BatchDeleteItems(resolved.cartItemIDs); err != nil {
				return err
			}
		}

		trackingLog := &models.OrderTrackingLog{
			OrderID:   order.ID,
			OldStatus: "",
			NewStatus: constants.OrderStatusPending,
			ChangedAt: now,
			ChangedBy: identity.Actor(),
		}
		if err := s.trackingRepo.WithTx(tx).Create(trackingLog); err != nil {
			return err
		}
		order.TrackingLogs = []models.OrderTrackingLog{*trackingLog}
		return nil
	})
	if err != nil {
		if isOrderRuleError(err) {
			return nil, err
		}
		logger.Errorw("order_create_failed",
			"user_id", identity.UserID,
			"order_type", source.Type,
			"error", err,
		)
		return nil, ErrOrderCreateFailed
	}

	if err := s.queueClient.EnqueueOrderCreatedEmail(queue.OrderCreatedEmailPayload{OrderID: order.ID}); err != nil {
		logger.Errorw("order_enqueue_created_email_failed",
			"order_id", order.ID,
			"order_no", order.OrderNo,
			"error", err,
		)
	}
	return order, nil
}

// isOrderRuleError 业务错误原样返回，其余视为持久化失败
func isOrderRuleError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrEmptyCart) ||
		errors.Is(err, ErrInvalidQuantity) ||
		errors.Is(err, ErrInvalidTransition) ||
		errors.Is(err, ErrBusinessRuleViolation) ||
		errors.Is(err, ErrUnauthorized)
}

// resolveLines 按来源解析下单行
func (s *OrderService) resolveLines(db *gorm.DB, identity Identity, source LineSource) (*resolvedLines, error) {
	cartRepo := s.cartRepo.WithTx(db)
	switch source.Type {
	case constants.OrderTypeCart:
		cart, err := cartRepo.GetByUserWithItems(identity.UserID)
		if err != nil {
			return nil, err
		}
		if cart == nil || len(cart.Items) == 0 {
			return nil, ErrEmptyCart
		}
		return &resolvedLines{lines: linesFromCartItems(cart.Items), cartID: cart.ID}, nil
	case constants.OrderTypeSelectedItems:
		ids := uniqueIDs(source.SelectedCartItemIDs)
		if len(ids) == 0 {
			return nil, ErrEmptyCart
		}
		cart, err := cartRepo.GetByUser(identity.UserID)
		if err != nil {
			return nil, err
		}
		if cart == nil {
			return nil, ErrForeignCartItem
		}
		items, err := cartRepo.ListItemsByIDs(cart.ID, ids)
		if err != nil {
			return nil, err
		}
		if len(items) != len(ids) {
			return nil, ErrForeignCartItem
		}
		return &resolvedLines{lines: linesFromCartItems(items), cartID: cart.ID, cartItemIDs: ids}, nil
	case constants.OrderTypeBuyNow:
		if source.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		if source.VariantID == 0 {
			return nil, ErrVariantNotFound
		}
		variant, err := s.variantRepo.WithTx(db).GetWithShoes(source.VariantID)
		if err != nil {
			return nil, err
		}
		if variant == nil || variant.Shoes == nil {
			return nil, ErrVariantNotFound
		}
		price := variant.Shoes.BasePrice
		line := OrderLine{
			ShoesID:     variant.ShoesID,
			VariantID:   variant.ID,
			ProductName: variant.Shoes.Name,
			VariantInfo: variant.Descriptor(),
			Thumbnail:   shoesThumbnail(variant.Shoes),
			Quantity:    source.Quantity,
			UnitPrice:   price,
			LineTotal:   models.NewMoneyFromDecimal(LineTotal(price.Decimal, source.Quantity)),
		}
		return &resolvedLines{lines: []OrderLine{line}}, nil
	default:
		return nil, ErrInvalidOrderType
	}
}

// linesFromCartItems 购物车项按快照单价转为下单行
func linesFromCartItems(items []models.CartItem) []OrderLine {
	lines := make([]OrderLine, 0, len(items))
	for _, item := range items {
		line := OrderLine{
			VariantID: item.VariantID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: models.NewMoneyFromDecimal(LineTotal(item.UnitPrice.Decimal, item.Quantity)),
			Thumbnail: constants.PlaceholderThumbnailURL,
		}
		if item.Variant != nil {
			line.ShoesID = item.Variant.ShoesID
			line.VariantInfo = item.Variant.Descriptor()
			if item.Variant.Shoes != nil {
				line.ProductName = item.Variant.Shoes.Name
				line.Thumbnail = shoesThumbnail(item.Variant.Shoes)
			}
		}
		lines = append(lines, line)
	}
	return lines
}

// resolveDestination 解析收货信息与支付方式
func (s *OrderService) resolveDestination(db *gorm.DB, identity Identity, req OrderRequest) (*orderDestination, error) {
	email := strings.TrimSpace(req.RecipientEmail)
	if email == "" {
		email = identity.Email
	}
	method := strings.ToUpper(strings.TrimSpace(req.PaymentMethod))

	if req.AddressID != nil && *req.AddressID > 0 {
		address, err := s.addressRepo.WithTx(db).GetByIDAndUser(*req.AddressID, identity.UserID)
		if err != nil {
			return nil, err
		}
		if address == nil {
			return nil, ErrAddressNotFound
		}
		if !isSupportedPaymentMethod(method) {
			return nil, ErrPaymentMethodInvalid
		}
		addressID := address.ID
		return &orderDestination{
			addressID:     &addressID,
			name:          address.RecipientName,
			phone:         address.Phone,
			email:         email,
			address:       address.FullAddress(),
			paymentMethod: method,
		}, nil
	}

	name := strings.TrimSpace(req.RecipientName)
	phone := strings.TrimSpace(req.RecipientPhone)
	address := strings.TrimSpace(req.RecipientAddress)
	if name == "" || phone == "" || address == "" {
		return nil, ErrRecipientRequired
	}
	if method == "" {
		method = constants.PaymentMethodCOD
	}
	return &orderDestination{
		name:          name,
		phone:         phone,
		email:         email,
		address:       address,
		paymentMethod: method,
	}, nil
}

func normalizeOrderType(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

func isSupportedOrderType(orderType string) bool {
	switch orderType {
	case constants.OrderTypeCart, constants.OrderTypeSelectedItems, constants.OrderTypeBuyNow:
		return true
	}
	return false
}

func isSupportedPaymentMethod(method string) bool {
	for _, supported := range constants.SupportedPaymentMethods {
		if method == supported {
			return true
		}
	}
	return false
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	result := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id == 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}

func generateOrderNo() string {
	now := time.Now().Format("20060102150405")
	randPart := randNumeric(6)
	return fmt.Sprintf("%s%s%s", constants.OrderNoPrefix, now, randPart)
}

func randNumeric(length int) string {
	var b strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			b.WriteString("0")
			continue
		}
		b.WriteString(fmt.Sprintf("%d", n.Int64()))
	}
	return b.String()
}
