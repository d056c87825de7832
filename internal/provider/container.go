package provider

import (
	"github.com/shoestore/internal/authz"
	"github.com/shoestore/internal/cache"
	"github.com/shoestore/internal/config"
	"github.com/shoestore/internal/logger"
	"github.com/shoestore/internal/models"
	"github.com/shoestore/internal/queue"
	"github.com/shoestore/internal/repository"
	"github.com/shoestore/internal/service"
	"github.com/shoestore/internal/session"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client
	Sessions    *session.Manager

	// Repositories
	AdminRepo            repository.AdminRepository
	UserRepo             repository.UserRepository
	VerificationCodeRepo repository.VerificationCodeRepository
	AddressRepo          repository.AddressRepository
	CategoryRepo         repository.CategoryRepository
	ShoesRepo            repository.ShoesRepository
	VariantRepo          repository.ShoesVariantRepository
	CartRepo             repository.CartRepository
	OrderRepo            repository.OrderRepository
	TrackingRepo         repository.OrderTrackingLogRepository
	ReviewRepo           repository.ReviewRepository
	CampaignRepo         repository.CampaignRepository
	VoucherRepo          repository.VoucherRepository
	InventoryLogRepo     repository.InventoryLogRepository
	DashboardRepo        repository.DashboardRepository

	// Services
	AuthzService          *authz.Service
	AuthService           *service.AuthService
	UserAuthService       *service.UserAuthService
	EmailService          *service.EmailService
	Pricing               *service.PricingCalculator
	AddressService        *service.AddressService
	CategoryService       *service.CategoryService
	ShoesService          *service.ShoesService
	CartService           *service.CartService
	OrderService          *service.OrderService
	ReviewService         *service.ReviewService
	PromotionAdminService *service.PromotionAdminService
	InventoryService      *service.InventoryService
	DashboardService      *service.DashboardService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
		Sessions:    session.NewManager(cfg.Session),
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.AdminRepo = repository.NewAdminRepository(db)
	c.UserRepo = repository.NewUserRepository(db)
	c.VerificationCodeRepo = repository.NewVerificationCodeRepository(db)
	c.AddressRepo = repository.NewAddressRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.ShoesRepo = repository.NewShoesRepository(db)
	c.VariantRepo = repository.NewShoesVariantRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.TrackingRepo = repository.NewOrderTrackingLogRepository(db)
	c.ReviewRepo = repository.NewReviewRepository(db)
	c.CampaignRepo = repository.NewCampaignRepository(db)
	c.VoucherRepo = repository.NewVoucherRepository(db)
	c.InventoryLogRepo = repository.NewInventoryLogRepository(db)
	c.DashboardRepo = repository.NewDashboardRepository(db)
}

func (c *Container) initServices() {
	authzService, err := authz.NewService(models.DB)
	if err != nil {
		logger.Errorw("provider_init_authz_failed", "error", err)
		panic(err)
	}
	c.AuthzService = authzService
	if err := c.AuthzService.BootstrapBuiltinRoles(); err != nil {
		logger.Errorw("provider_bootstrap_builtin_roles_failed", "error", err)
		panic(err)
	}

	threshold := c.Config.Inventory.LowStockThreshold
	c.Pricing = service.NewPricingCalculator(c.Config.Order.ShippingFeeDecimal())
	c.EmailService = service.NewEmailService(&c.Config.Email)
	c.AuthService = service.NewAuthService(c.Config, c.AdminRepo)
	c.UserAuthService = service.NewUserAuthService(c.Config, c.UserRepo, c.VerificationCodeRepo, c.QueueClient, c.EmailService)
	c.AddressService = service.NewAddressService(c.AddressRepo)
	c.CategoryService = service.NewCategoryService(c.CategoryRepo)
	c.ShoesService = service.NewShoesService(c.ShoesRepo, c.VariantRepo, c.CartRepo, c.CategoryRepo)
	c.CartService = service.NewCartService(c.CartRepo, c.VariantRepo, c.Pricing)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.TrackingRepo, c.CartRepo, c.VariantRepo, c.AddressRepo, c.QueueClient, c.Pricing)
	c.ReviewService = service.NewReviewService(c.ReviewRepo, c.OrderRepo)
	c.PromotionAdminService = service.NewPromotionAdminService(c.CampaignRepo, c.VoucherRepo, c.OrderRepo)
	c.InventoryService = service.NewInventoryService(c.VariantRepo, c.InventoryLogRepo, threshold)
	c.DashboardService = service.NewDashboardService(c.DashboardRepo, threshold)
}
