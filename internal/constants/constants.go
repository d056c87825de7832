package constants

// 订单状态常量
const (
	OrderStatusPending       = "PENDING"
	OrderStatusConfirmed     = "CONFIRMED"
	OrderStatusPacking       = "PACKING"
	OrderStatusShipping      = "SHIPPING"
	OrderStatusCompleted     = "COMPLETED"
	OrderStatusCancelled     = "CANCELLED"
	OrderStatusRequestRefund = "REQUEST_REFUND"
	OrderStatusRefunded      = "REFUNDED"
)

// 下单来源常量
const (
	OrderTypeCart          = "CART"
	OrderTypeSelectedItems = "SELECTED_ITEMS"
	OrderTypeBuyNow        = "BUY_NOW"
)

// 支付方式常量（仅作为标签存储）
const (
	PaymentMethodCOD          = "COD"
	PaymentMethodBankTransfer = "BANK_TRANSFER"
	PaymentMethodEWallet      = "E_WALLET"
)

// SupportedPaymentMethods 地址下单路径允许的支付方式
var SupportedPaymentMethods = []string{PaymentMethodCOD, PaymentMethodBankTransfer, PaymentMethodEWallet}

// 订单金额常量
const (
	DefaultShippingFee = 30000
	OrderNoPrefix      = "SS"
)

// 商品类型常量
const (
	ShoesTypeMale   = "FOR_MALE"
	ShoesTypeFemale = "FOR_FEMALE"
	ShoesTypeUnisex = "UNISEX"
)

// 商品展示常量
const (
	PlaceholderThumbnailURL = "https://placehold.co/400x400?text=No+Image"
	PlaceholderImageURL     = "https://placehold.co/600x600?text=No+Image"
	DefaultCategoryName     = "General"
	NewArrivalDays          = 14
	RelatedShoesLimit       = 5
	SuggestionLimit         = 10
	SuggestionMinRunes      = 2
)

// 商品排序常量
const (
	ShoesSortNewest    = "newest"
	ShoesSortPriceAsc  = "price_asc"
	ShoesSortPriceDesc = "price_desc"
	ShoesSortNameAsc   = "name_asc"
	ShoesSortNameDesc  = "name_desc"
	ShoesSortSold      = "sold"
)

// 购物车数量操作常量
const (
	CartActionIncrease = "increase"
	CartActionDecrease = "decrease"
)

// 活动状态常量
const (
	CampaignStatusDraft     = "DRAFT"
	CampaignStatusActive    = "ACTIVE"
	CampaignStatusEnded     = "ENDED"
	CampaignStatusCancelled = "CANCELLED"
)

// 优惠类型常量
const (
	DiscountTypePercent = "PERCENT"
	DiscountTypeFixed   = "FIXED"
)

// 活动适用范围常量
const (
	PromotionTargetAll      = "ALL"
	PromotionTargetShoes    = "SHOE"
	PromotionTargetCategory = "CATEGORY"
)

// 库存状态常量
const (
	InventoryStatusInStock    = "IN_STOCK"
	InventoryStatusLowStock   = "LOW_STOCK"
	InventoryStatusOutOfStock = "OUT_OF_STOCK"
)

// 库存变动类型常量
const (
	InventoryChangeImport = "IMPORT"
	InventoryChangeExport = "EXPORT"
	InventoryChangeSet    = "SET"
)

// DefaultLowStockThreshold 低库存告警阈值
const DefaultLowStockThreshold = 10

// 评价常量
const (
	ReviewRatingMin = 1
	ReviewRatingMax = 5
)

// 用户状态常量
const (
	UserStatusActive   = "active"
	UserStatusPending  = "pending"
	UserStatusDisabled = "disabled"
)

// 验证码用途常量
const (
	VerifyPurposeRegister = "register"
	VerifyPurposeReset    = "reset"
)

// 验证码有效期（秒）
const (
	VerifyCodeRegisterTTLSeconds = 60
	VerifyCodeResetTTLSeconds    = 120
	VerifyCodeLength             = 6
	VerifyCodeMaxAttempts        = 5
)

// 操作人常量
const (
	ActorSystem      = "system"
	ActorUserPrefix  = "user:"
	ActorAdminPrefix = "admin:"
)

// 会话键常量
const (
	SessionKeyUserID             = "user_id"
	SessionKeyUserEmail          = "user_email"
	SessionKeyRedirectAfterLogin = "redirect_after_login"
	SessionFlashSuccess          = "flash_success"
	SessionFlashError            = "flash_error"
)

// 页面路径常量
const (
	PathLogin        = "/login"
	PathCart         = "/cart"
	PathHome         = "/"
	PathCheckout     = "/order/checkout"
	PathConfirmation = "/order/confirmation"
)

// 队列常量
const (
	QueueDefault          = "default"
	TaskOrderStatusEmail  = "order:status_email"
	TaskOrderCreatedEmail = "order:created_email"
	TaskVerifyCodeEmail   = "user:verify_code_email"
)

// 缓存常量
const (
	RedisPrefixDefault      = "ss"
	ShoesDetailCacheSeconds = 300
)

// 站点语言常量
const (
	LocaleViVN = "vi-VN"
	LocaleEnUS = "en-US"
)

// SupportedLocales 支持的站点语言（含回退顺序）
var SupportedLocales = []string{LocaleViVN, LocaleEnUS}

// 币种常量
const (
	SiteCurrencyDefault = "VND"
)
