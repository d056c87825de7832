package service

import (
	"context"

	"github.com/shoestore/internal/constants"
	"github.com/shoestore/internal/models"
	"github.com/shoestore/internal/repository"

	"github.com/go-faster/errors"
	"gorm.io/gorm"
)

// CartSnapshotItem 购物车快照行
type CartSnapshotItem struct {
	CartItemID  uint         `json:"cart_item_id"`
	VariantID   uint         `json:"variant_id"`
	ShoesID     uint         `json:"shoes_id"`
	ProductName string       `json:"product_name"`
	Size        string       `json:"size"`
	Color       string       `json:"color"`
	Thumbnail   string       `json:"thumbnail"`
	UnitPrice   models.Money `json:"unit_price"`
	Quantity    int          `json:"quantity"`
	LineTotal   models.Money `json:"line_total"`
	Stock       int          `json:"stock"`
}

// CartSnapshot 购物车只读视图
type CartSnapshot struct {
	CartID      uint               `json:"cart_id"`
	Items       []CartSnapshotItem `json:"items"`
	Subtotal    models.Money       `json:"subtotal"`
	ShippingFee models.Money       `json:"shipping_fee"`
	Discount    models.Money       `json:"discount"`
	Total       models.Money       `json:"total"`
	ItemCount   int                `json:"item_count"`
}

// CartService 购物车服务
type CartService struct {
	cartRepo    repository.CartRepository
	variantRepo repository.ShoesVariantRepository
	pricing     *PricingCalculator
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository, variantRepo repository.ShoesVariantRepository, pricing *PricingCalculator) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		variantRepo: variantRepo,
		pricing:     pricing,
	}
}

// Snapshot 构建购物车快照，用户没有购物车时返回 ErrCartNotFound
func (s *CartService) Snapshot(ctx context.Context, identity Identity) (*CartSnapshot, error) {
	if !identity.Authenticated() {
		return nil, ErrUnauthorized
	}
	cart, err := s.cartRepo.WithTx(dbWithContext(ctx)).GetByUserWithItems(identity.UserID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, ErrCartNotFound
	}
	return buildCartSnapshot(cart, s.pricing), nil
}

func buildCartSnapshot(cart *models.Cart, pricing *PricingCalculator) *CartSnapshot {
	items := make([]CartSnapshotItem, 0, len(cart.Items))
	lines := make([]PriceLine, 0, len(cart.Items))
	count := 0
	for _, item := range cart.Items {
		row := CartSnapshotItem{
			CartItemID: item.ID,
			VariantID:  item.VariantID,
			UnitPrice:  item.UnitPrice,
			Quantity:   item.Quantity,
			LineTotal:  models.NewMoneyFromDecimal(LineTotal(item.UnitPrice.Decimal, item.Quantity)),
			Thumbnail:  constants.PlaceholderThumbnailURL,
		}
		if item.Variant != nil {
			row.Size = item.Variant.Size
			row.Color = item.Variant.Color
			row.Stock = item.Variant.Stock
			row.ShoesID = item.Variant.ShoesID
			if item.Variant.Shoes != nil {
				row.ProductName = item.Variant.Shoes.Name
				row.Thumbnail = shoesThumbnail(item.Variant.Shoes)
			}
		}
		items = append(items, row)
		lines = append(lines, PriceLine{UnitPrice: item.UnitPrice.Decimal, Quantity: item.Quantity})
		count += item.Quantity
	}
	quote := pricing.Quote(lines)
	return &CartSnapshot{
		CartID:      cart.ID,
		Items:       items,
		Subtotal:    models.NewMoneyFromDecimal(quote.Subtotal),
		ShippingFee: models.NewMoneyFromDecimal(quote.ShippingFee),
		Discount:    models.NewMoneyFromDecimal(quote.Discount),
		Total:       models.NewMoneyFromDecimal(quote.Total),
		ItemCount:   count,
	}
}

// AddItem 加入购物车，同规格合并数量，单价取当前基础售价
func (s *CartService) AddItem(ctx context.Context, identity Identity, variantID uint, quantity int) (*models.CartItem, error) {
	if !identity.Authenticated() {
		return nil, ErrUnauthorized
	}
	if variantID == 0 {
		return nil, ErrVariantNotFound
	}
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	var result *models.CartItem
	err := dbWithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cartRepo := s.cartRepo.WithTx(tx)
		variant, err := s.variantRepo.WithTx(tx).GetWithShoes(variantID)
		if err != nil {
			return err
		}
		if variant == nil || variant.Shoes == nil {
			return ErrVariantNotFound
		}
		cart, err := cartRepo.GetOrCreateByUser(identity.UserID)
		if err != nil {
			return err
		}
		existing, err := cartRepo.GetItemByVariant(cart.ID, variantID)
		if err != nil {
			return err
		}
		if existing != nil {
			next := existing.Quantity + quantity
			if next > variant.Stock {
				return ErrStockExceeded
			}
			if err := cartRepo.UpdateItemQuantity(existing.ID, next); err != nil {
				return err
			}
			existing.Quantity = next
			result = existing
			return nil
		}
		if quantity > variant.Stock {
			return ErrStockExceeded
		}
		item := &models.CartItem{
			CartID:    cart.ID,
			VariantID: variantID,
			Quantity:  quantity,
			UnitPrice: variant.Shoes.BasePrice,
		}
		if err := cartRepo.CreateItem(item); err != nil {
			return err
		}
		result = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateQuantity 按 increase/decrease 调整数量，减到 0 时删除该行
// 返回 nil 表示该行已删除。
func (s *CartService) UpdateQuantity(ctx context.Context, identity Identity, cartItemID uint, action string) (*models.CartItem, error) {
	if !identity.Authenticated() {
		return nil, ErrUnauthorized
	}
	if action != constants.CartActionIncrease && action != constants.CartActionDecrease {
		return nil, ErrInvalidQuantity
	}
	var result *models.CartItem
	err := dbWithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cartRepo := s.cartRepo.WithTx(tx)
		item, err := s.ownedItem(cartRepo, identity, cartItemID)
		if err != nil {
			return err
		}
		next := item.Quantity + 1
		if action == constants.CartActionDecrease {
			next = item.Quantity - 1
		}
		if next <= 0 {
			return cartRepo.DeleteItem(item.ID)
		}
		if action == constants.CartActionIncrease {
			variant, err := s.variantRepo.WithTx(tx).GetByID(item.VariantID)
			if err != nil {
				return err
			}
			if variant == nil {
				return ErrVariantNotFound
			}
			if next > variant.Stock {
				return ErrStockExceeded
			}
		}
		if err := cartRepo.UpdateItemQuantity(item.ID, next); err != nil {
			return err
		}
		item.Quantity = next
		result = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// RemoveItem 删除购物车项
func (s *CartService) RemoveItem(ctx context.Context, identity Identity, cartItemID uint) error {
	if !identity.Authenticated() {
		return ErrUnauthorized
	}
	cartRepo := s.cartRepo.WithTx(dbWithContext(ctx))
	item, err := s.ownedItem(cartRepo, identity, cartItemID)
	if err != nil {
		return err
	}
	return cartRepo.DeleteItem(item.ID)
}

// CountItems 购物车商品总件数，未登录返回 0
func (s *CartService) CountItems(ctx context.Context, identity Identity) (int64, error) {
	if !identity.Authenticated() {
		return 0, nil
	}
	return s.cartRepo.WithTx(dbWithContext(ctx)).CountItems(identity.UserID)
}

// ownedItem 读取属于当前用户购物车的项
func (s *CartService) ownedItem(cartRepo repository.CartRepository, identity Identity, cartItemID uint) (*models.CartItem, error) {
	if cartItemID == 0 {
		return nil, ErrCartItemNotFound
	}
	cart, err := cartRepo.GetByUser(identity.UserID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, ErrCartItemNotFound
	}
	item, err := cartRepo.GetItemByID(cartItemID)
	if err != nil {
		return nil, err
	}
	if item == nil || item.CartID != cart.ID {
		return nil, ErrCartItemNotFound
	}
	return item, nil
}

// IsCartMissing 是否为购物车不存在
func IsCartMissing(err error) bool {
	return errors.Is(err, ErrCartNotFound)
}
