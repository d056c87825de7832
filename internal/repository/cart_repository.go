package repository

import (
	"errors"

	"github.com/shoestore/internal/models"

	"gorm.io/gorm"
)

// CartRepository 购物车数据访问接口
type CartRepository interface {
	GetByUser(userID uint) (*models.Cart, error)
	GetByUserWithItems(userID uint) (*models.Cart, error)
	GetOrCreateByUser(userID uint) (*models.Cart, error)
	GetItemByID(id uint) (*models.CartItem, error)
	GetItemByVariant(cartID, variantID uint) (*models.CartItem, error)
	ListItemsByIDs(cartID uint, ids []uint) ([]models.CartItem, error)
	CreateItem(item *models.CartItem) error
	UpdateItemQuantity(id uint, quantity int) error
	DeleteItem(id uint) error
	BatchDeleteItems(ids []uint) error
	DeleteItemsByCart(cartID uint) error
	DeleteItemsByVariantIDs(variantIDs []uint) error
	DeleteCart(cartID uint) error
	CountItems(userID uint) (int64, error)
	WithTx(tx *gorm.DB) *GormCartRepository
}

// GormCartRepository GORM 实现
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓库
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// WithTx 绑定事务
func (r *GormCartRepository) WithTx(tx *gorm.DB) *GormCartRepository {
	if tx == nil {
		return r
	}
	return &GormCartRepository{db: tx}
}

func preloadCartItems(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC, id ASC")
}

// GetByUser 获取用户购物车（不含明细）
func (r *GormCartRepository) GetByUser(userID uint) (*models.Cart, error) {
	var cart models.Cart
	if err := r.db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}

// GetByUserWithItems 获取用户购物车及明细、规格、鞋款、图片
func (r *GormCartRepository) GetByUserWithItems(userID uint) (*models.Cart, error) {
	var cart models.Cart
	if err := r.db.
		Preload("Items", preloadCartItems).
		Preload("Items.Variant").
		Preload("Items.Variant.Shoes").
		Preload("Items.Variant.Shoes.Images", preloadImages).
		Where("user_id = ?", userID).
		First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}

// GetOrCreateByUser 获取或懒创建购物车
func (r *GormCartRepository) GetOrCreateByUser(userID uint) (*models.Cart, error) {
	cart, err := r.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	if cart != nil {
		return cart, nil
	}
	cart = &models.Cart{UserID: userID}
	if err := r.db.Create(cart).Error; err != nil {
		return nil, err
	}
	return cart, nil
}

// GetItemByID 获取购物车项
func (r *GormCartRepository) GetItemByID(id uint) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.db.Preload("Variant").First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// GetItemByVariant 获取购物车中同规格的明细
func (r *GormCartRepository) GetItemByVariant(cartID, variantID uint) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.db.Where("cart_id = ? AND variant_id = ?", cartID, variantID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// ListItemsByIDs 获取购物车内指定 ID 的明细，不属于该购物车的 ID 不返回
func (r *GormCartRepository) ListItemsByIDs(cartID uint, ids []uint) ([]models.CartItem, error) {
	items := make([]models.CartItem, 0)
	if len(ids) == 0 {
		return items, nil
	}
	if err := preloadCartItems(r.db).
		Preload("Variant").
		Preload("Variant.Shoes").
		Where("cart_id = ? AND id IN ?", cartID, ids).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// CreateItem 创建购物车项
func (r *GormCartRepository) CreateItem(item *models.CartItem) error {
	return r.db.Omit("Variant").Create(item).Error
}

// UpdateItemQuantity 更新数量
func (r *GormCartRepository) UpdateItemQuantity(id uint, quantity int) error {
	return r.db.Model(&models.CartItem{}).Where("id = ?", id).Update("quantity", quantity).Error
}

// DeleteItem 删除单个购物车项
func (r *GormCartRepository) DeleteItem(id uint) error {
	return r.db.Delete(&models.CartItem{}, id).Error
}

// BatchDeleteItems 按 ID 批量删除购物车项
func (r *GormCartRepository) BatchDeleteItems(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Where("id IN ?", ids).Delete(&models.CartItem{}).Error
}

// DeleteItemsByCart 清空购物车明细
func (r *GormCartRepository) DeleteItemsByCart(cartID uint) error {
	return r.db.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error
}

// DeleteItemsByVariantIDs 删除引用指定规格的购物车项
func (r *GormCartRepository) DeleteItemsByVariantIDs(variantIDs []uint) error {
	if len(variantIDs) == 0 {
		return nil
	}
	return r.db.Where("variant_id IN ?", variantIDs).Delete(&models.CartItem{}).Error
}

// DeleteCart 删除购物车行
func (r *GormCartRepository) DeleteCart(cartID uint) error {
	return r.db.Delete(&models.Cart{}, cartID).Error
}

// CountItems 统计购物车商品件数
func (r *GormCartRepository) CountItems(userID uint) (int64, error) {
	var total int64
	err := r.db.Model(&models.CartItem{}).
		Select("COALESCE(SUM(cart_items.quantity), 0)").
		Joins("JOIN carts ON carts.id = cart_items.cart_id").
		Where("carts.user_id = ?", userID).
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}
