package router

import (
	"sort"
	"strings"

	"github.com/shoestore/internal/authz"
	"github.com/shoestore/internal/cache"
	"github.com/shoestore/internal/config"
	adminhandlers "github.com/shoestore/internal/http/handlers/admin"
	publichandlers "github.com/shoestore/internal/http/handlers/public"
	"github.com/shoestore/internal/http/response"
	"github.com/shoestore/internal/logger"
	"github.com/shoestore/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	// 初始化 Handler（按前台/后台分组）
	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)
	redisClient := cache.Client()
	authRule := NewRateLimitRule(cache.Key("rate", "auth"), cfg.Security.AuthRateLimit, "error.rate_limited")
	loginRule := NewRateLimitRule(cache.Key("rate", "login"), cfg.Security.AuthRateLimit, "error.login_too_many")
	adminLoginRule := NewRateLimitRule(cache.Key("rate", "admin_login"), cfg.Security.AuthRateLimit, "error.login_too_many")

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// 前台（会话）
	storefront := r.Group("")
	storefront.Use(c.Sessions.Middleware())
	{
		storefront.GET("/login", publicHandler.LoginPage)

		// 目录
		storefront.GET("/shoes", publicHandler.ListShoes)
		storefront.GET("/shoes/suggestions", publicHandler.ShoesSuggestions)
		storefront.GET("/shoes/brands", publicHandler.ShoesBrands)
		storefront.GET("/shoes/:id", publicHandler.GetShoesDetail)
		storefront.GET("/shoes/:id/reviews", publicHandler.ListShoesReviews)
		storefront.GET("/categories", publicHandler.ListCategories)

		// 账号认证
		auth := storefront.Group("/auth")
		auth.Use(RateLimitMiddleware(redisClient, authRule, KeyByIP))
		{
			auth.POST("/register", publicHandler.Register)
			auth.POST("/verify", publicHandler.VerifyEmail)
			auth.POST("/resend-code", publicHandler.ResendVerifyCode)
			auth.POST("/forgot-password", publicHandler.ForgotPassword)
			auth.POST("/reset-password", publicHandler.ResetPassword)
			auth.POST("/logout", publicHandler.Logout)
		}
		storefront.POST("/auth/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndFormField("email")), publicHandler.Login)

		// 购物车
		storefront.GET("/cart", publicHandler.GetCart)
		storefront.GET("/cart/count", publicHandler.CartCount)
		storefront.POST("/cart/add", publicHandler.AddToCart)
		storefront.POST("/cart/update", publicHandler.UpdateCartItem)
		storefront.POST("/cart/remove", publicHandler.RemoveCartItem)

		// 结算与下单
		storefront.GET("/order/checkout", publicHandler.Checkout)
		storefront.POST("/order/create", publicHandler.CreateOrder)
		storefront.GET("/order/confirmation/:id", publicHandler.OrderConfirmation)
		storefront.GET("/order/confirmation/:id/qrcode", publicHandler.OrderConfirmationQRCode)

		// 个人中心
		account := storefront.Group("/account")
		{
			account.GET("/profile", publicHandler.GetProfile)
			account.PUT("/profile", publicHandler.UpdateProfile)
			account.GET("/addresses", publicHandler.ListAddresses)
			account.POST("/addresses", publicHandler.CreateAddress)
			account.POST("/addresses/:id/default", publicHandler.SetDefaultAddress)
			account.DELETE("/addresses/:id", publicHandler.DeleteAddress)
			account.GET("/orders", publicHandler.ListMyOrders)
			account.GET("/orders/:id", publicHandler.GetMyOrder)
			account.POST("/orders/:id/cancel", publicHandler.CancelMyOrder)
			account.POST("/orders/:id/refund", publicHandler.RequestMyOrderRefund)
		}

		storefront.POST("/reviews", publicHandler.SubmitReview)
	}

	// 管理员接口
	admin := r.Group("/api/v1/admin")
	{
		// 登录接口（无需鉴权）
		admin.POST("/login", RateLimitMiddleware(redisClient, adminLoginRule, KeyByIPAndJSONField("username")), adminHandler.AdminLogin)

		adminJWT := JWTAuthMiddleware(c.AuthService)

		// 仅需登录的个人接口
		self := admin.Group("")
		self.Use(adminJWT)
		{
			self.PUT("/password", adminHandler.UpdateAdminPassword)
			self.GET("/authz/me", adminHandler.GetAuthzMe)
		}

		// 需要鉴权的接口
		authorized := admin.Group("")
		authorized.Use(adminJWT, AdminRBACMiddleware(c.AuthzService))
		{

			// 仪表盘
			authorized.GET("/dashboard/overview", adminHandler.GetDashboardOverview)
			authorized.GET("/dashboard/trends", adminHandler.GetDashboardTrends)
			authorized.GET("/dashboard/rankings", adminHandler.GetDashboardRankings)

			// 订单
			authorized.GET("/orders", adminHandler.AdminListOrders)
			authorized.GET("/orders/:id", adminHandler.AdminGetOrder)
			authorized.PATCH("/orders/:id/status", adminHandler.AdminUpdateOrderStatus)

			// 库存
			authorized.GET("/inventory", adminHandler.ListInventory)
			authorized.GET("/inventory/alerts", adminHandler.InventoryAlerts)
			authorized.POST("/inventory/adjust", adminHandler.AdjustStock)
			authorized.GET("/inventory/variants/:variant_id/history", adminHandler.InventoryHistory)

			// 鞋款与分类
			authorized.GET("/shoes", adminHandler.AdminListShoes)
			authorized.POST("/shoes", adminHandler.CreateShoes)
			authorized.GET("/shoes/:id", adminHandler.AdminGetShoes)
			authorized.PUT("/shoes/:id", adminHandler.UpdateShoes)
			authorized.DELETE("/shoes/:id", adminHandler.DeleteShoes)
			authorized.GET("/shoes/:id/variants", adminHandler.ShoesVariants)
			authorized.GET("/categories", adminHandler.AdminListCategories)
			authorized.POST("/categories", adminHandler.CreateCategory)

			// 促销活动与优惠码
			authorized.GET("/campaigns", adminHandler.ListCampaigns)
			authorized.POST("/campaigns", adminHandler.CreateCampaign)
			authorized.GET("/campaigns/:id", adminHandler.GetCampaign)
			authorized.PUT("/campaigns/:id", adminHandler.UpdateCampaign)
			authorized.DELETE("/campaigns/:id", adminHandler.DeleteCampaign)
			authorized.POST("/campaigns/:id/toggle", adminHandler.ToggleCampaign)
			authorized.GET("/vouchers", adminHandler.ListVouchers)
			authorized.POST("/vouchers", adminHandler.CreateVoucher)
			authorized.GET("/vouchers/:id", adminHandler.GetVoucher)
			authorized.PUT("/vouchers/:id", adminHandler.UpdateVoucher)
			authorized.DELETE("/vouchers/:id", adminHandler.DeleteVoucher)
			authorized.POST("/vouchers/:id/toggle", adminHandler.ToggleVoucher)

			// 顾客
			authorized.GET("/users", adminHandler.GetAdminUsers)
			authorized.GET("/users/:id", adminHandler.GetAdminUser)
			authorized.PUT("/users/:id/status", adminHandler.UpdateAdminUserStatus)

			// 权限管理
			authorized.GET("/authz/roles", adminHandler.ListAuthzRoles)
			authorized.POST("/authz/roles", adminHandler.CreateAuthzRole)
			authorized.GET("/authz/roles/:role/policies", adminHandler.GetAuthzRolePolicies)
			authorized.POST("/authz/policies", adminHandler.GrantAuthzPolicy)
			authorized.DELETE("/authz/policies", adminHandler.RevokeAuthzPolicy)
			authorized.GET("/authz/admins", adminHandler.ListAuthzAdmins)
			authorized.GET("/authz/admins/:id/roles", adminHandler.GetAuthzAdminRoles)
			authorized.PUT("/authz/admins/:id/roles", adminHandler.SetAuthzAdminRoles)
			authorized.GET("/authz/permissions/catalog", func(ctx *gin.Context) {
				response.Success(ctx, buildAdminPermissionCatalog(r))
			})
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "redis": cache.HealthStatus(c.Request.Context())})
	})

	return r
}

type adminPermissionCatalogItem struct {
	Module     string `json:"module"`
	Method     string `json:"method"`
	Object     string `json:"object"`
	Permission string `json:"permission"`
}

func buildAdminPermissionCatalog(engine *gin.Engine) []adminPermissionCatalogItem {
	if engine == nil {
		return []adminPermissionCatalogItem{}
	}

	routes := engine.Routes()
	seen := make(map[string]struct{}, len(routes))
	items := make([]adminPermissionCatalogItem, 0, len(routes))

	for _, item := range routes {
		method := strings.ToUpper(strings.TrimSpace(item.Method))
		if method == "" || method == "OPTIONS" || method == "HEAD" {
			continue
		}
		if !strings.HasPrefix(item.Path, "/api/v1/admin/") {
			continue
		}
		if item.Path == "/api/v1/admin/login" {
			continue
		}
		object := authz.NormalizeObject(item.Path)
		permission := method + ":" + object
		if _, exists := seen[permission]; exists {
			continue
		}
		seen[permission] = struct{}{}
		items = append(items, adminPermissionCatalogItem{
			Module:     deriveAdminPermissionModule(object),
			Method:     method,
			Object:     object,
			Permission: permission,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Module == items[j].Module {
			if items[i].Object == items[j].Object {
				return items[i].Method < items[j].Method
			}
			return items[i].Object < items[j].Object
		}
		return items[i].Module < items[j].Module
	})

	return items
}

func deriveAdminPermissionModule(object string) string {
	normalized := strings.TrimPrefix(strings.TrimSpace(object), "/")
	if normalized == "" {
		return "system"
	}
	segments := strings.Split(normalized, "/")
	if len(segments) <= 1 {
		return segments[0]
	}
	if segments[0] != "admin" {
		return segments[0]
	}
	if segments[1] == "authz" {
		return "authz"
	}
	return segments[1]
}
