package main

import (
	"time"

	"github.com/shoestore/internal/authz"
	"github.com/shoestore/internal/config"
	"github.com/shoestore/internal/constants"
	"github.com/shoestore/internal/logger"
	"github.com/shoestore/internal/models"
	"github.com/shoestore/internal/repository"
	"github.com/shoestore/internal/service"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

type seedShoes struct {
	Name       string
	Brand      string
	Type       string
	Category   string
	Price      string
	Collection string
	Images     []string
	Sizes      []string
	Colors     []string
	Stock      int
}

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, cfg.Database.Debug, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 添加分类
	categories := []models.Category{
		{Name: "sneakers", DisplayName: "Giày sneaker"},
		{Name: "running", DisplayName: "Giày chạy bộ"},
		{Name: "boots", DisplayName: "Giày boot"},
		{Name: "sandals", DisplayName: "Sandal"},
	}
	categoryIDs := map[string]uint{}
	for _, cat := range categories {
		var existing models.Category
		if err := models.DB.Where("name = ?", cat.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&cat).Error; err != nil {
				stdLog.Printf("Failed to create category %s: %v", cat.Name, err)
				continue
			}
			stdLog.Printf("Created category: %s", cat.Name)
			categoryIDs[cat.Name] = cat.ID
			continue
		}
		stdLog.Printf("Category already exists: %s", cat.Name)
		categoryIDs[cat.Name] = existing.ID
	}

	// 添加鞋款及规格
	catalog := []seedShoes{
		{
			Name: "Air Zoom Pegasus 40", Brand: "Nike", Type: constants.ShoesTypeMale, Category: "running",
			Price: "2890000", Collection: "Pegasus",
			Images: []string{"https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=800"},
			Sizes:  []string{"40", "41", "42", "43"}, Colors: []string{"Black", "White"}, Stock: 12,
		},
		{
			Name: "Ultraboost Light", Brand: "Adidas", Type: constants.ShoesTypeUnisex, Category: "running",
			Price: "4200000", Collection: "Ultraboost",
			Images: []string{"https://images.unsplash.com/photo-1608231387042-66d1773070a5?w=800"},
			Sizes:  []string{"38", "39", "40", "41", "42"}, Colors: []string{"Core Black"}, Stock: 8,
		},
		{
			Name: "Chuck Taylor All Star", Brand: "Converse", Type: constants.ShoesTypeUnisex, Category: "sneakers",
			Price: "1500000", Collection: "Classic",
			Images: []string{"https://images.unsplash.com/photo-1607522370275-f14206abe5d3?w=800"},
			Sizes:  []string{"36", "37", "38", "39", "40", "41"}, Colors: []string{"Red", "Navy", "White"}, Stock: 20,
		},
		{
			Name: "Old Skool", Brand: "Vans", Type: constants.ShoesTypeFemale, Category: "sneakers",
			Price: "1750000", Collection: "Classic",
			Images: []string{"https://images.unsplash.com/photo-1525966222134-fcfa99b8ae77?w=800"},
			Sizes:  []string{"35", "36", "37", "38"}, Colors: []string{"Black/White"}, Stock: 3,
		},
		{
			Name: "Original 6-Inch Boot", Brand: "Timberland", Type: constants.ShoesTypeMale, Category: "boots",
			Price: "5200000", Collection: "Heritage",
			Images: []string{"https://images.unsplash.com/photo-1520639888713-7851133b1ed0?w=800"},
			Sizes:  []string{"41", "42", "43", "44"}, Colors: []string{"Wheat"}, Stock: 5,
		},
		{
			Name: "Arizona Soft Footbed", Brand: "Birkenstock", Type: constants.ShoesTypeFemale, Category: "sandals",
			Price: "2600000", Collection: "Arizona",
			Images: []string{"https://images.unsplash.com/photo-1603487742131-4160ec999306?w=800"},
			Sizes:  []string{"36", "37", "38", "39"}, Colors: []string{"Taupe", "Black"}, Stock: 0,
		},
	}

	for _, item := range catalog {
		var existing models.Shoes
		if err := models.DB.Where("name = ? AND brand = ?", item.Name, item.Brand).First(&existing).Error; err == nil {
			stdLog.Printf("Shoes already exists: %s", item.Name)
			continue
		}
		price, err := decimal.NewFromString(item.Price)
		if err != nil {
			stdLog.Printf("Invalid price for %s: %v", item.Name, err)
			continue
		}
		shoes := models.Shoes{
			Name:        item.Name,
			Brand:       item.Brand,
			Type:        item.Type,
			BasePrice:   models.NewMoneyFromDecimal(price),
			Description: item.Brand + " " + item.Name,
			Collection:  item.Collection,
		}
		if id, ok := categoryIDs[item.Category]; ok {
			categoryID := id
			shoes.CategoryID = &categoryID
		}
		for i, url := range item.Images {
			shoes.Images = append(shoes.Images, models.ShoesImage{URL: url, IsThumbnail: i == 0, SortOrder: i})
		}
		for _, size := range item.Sizes {
			for _, color := range item.Colors {
				shoes.Variants = append(shoes.Variants, models.ShoesVariant{Size: size, Color: color, Stock: item.Stock})
			}
		}
		if err := models.DB.Create(&shoes).Error; err != nil {
			stdLog.Printf("Failed to create shoes %s: %v", item.Name, err)
			continue
		}
		stdLog.Printf("Created shoes: %s (%d variants)", item.Name, len(shoes.Variants))
	}

	// 添加促销活动与优惠码
	now := time.Now()
	campaign := models.Campaign{
		Name:              "Mùa tựu trường",
		Description:       "Giảm 10% cho mọi đơn hàng",
		StartDate:         now.AddDate(0, 0, -1),
		EndDate:           now.AddDate(0, 1, 0),
		DiscountType:      constants.DiscountTypePercent,
		DiscountValue:     models.NewMoneyFromInt(10),
		MaxDiscountAmount: models.NewMoneyFromInt(300000),
		MinOrderValue:     models.NewMoneyFromInt(1000000),
		Enabled:           true,
		Targets:           []models.PromotionTarget{{TargetType: constants.PromotionTargetAll}},
	}
	campaign.Status = service.ResolveCampaignStatus(campaign.Enabled, campaign.StartDate, campaign.EndDate, now)
	var existingCampaign models.Campaign
	if err := models.DB.Where("name = ?", campaign.Name).First(&existingCampaign).Error; err != nil {
		if err := models.DB.Create(&campaign).Error; err != nil {
			stdLog.Printf("Failed to create campaign: %v", err)
		} else {
			stdLog.Printf("Created campaign: %s", campaign.Name)
			existingCampaign = campaign
		}
	} else {
		stdLog.Printf("Campaign already exists: %s", campaign.Name)
	}

	if existingCampaign.ID > 0 {
		voucher := models.Voucher{
			CampaignID:           existingCampaign.ID,
			Code:                 "WELCOME50",
			Title:                "Giảm 50.000đ cho đơn đầu tiên",
			DiscountType:         constants.DiscountTypeFixed,
			DiscountValue:        models.NewMoneyFromInt(50000),
			MinOrderValue:        models.NewMoneyFromInt(500000),
			StartDate:            existingCampaign.StartDate,
			EndDate:              existingCampaign.EndDate,
			MaxRedeemPerCustomer: 1,
			Enabled:              true,
		}
		var existingVoucher models.Voucher
		if err := models.DB.Where("code = ?", voucher.Code).First(&existingVoucher).Error; err != nil {
			if err := models.DB.Create(&voucher).Error; err != nil {
				stdLog.Printf("Failed to create voucher: %v", err)
			} else {
				stdLog.Printf("Created voucher: %s", voucher.Code)
			}
		} else {
			stdLog.Printf("Voucher already exists: %s", voucher.Code)
		}
	}

	// 添加示例顾客
	demoEmail := "demo@shoestore.local"
	var demoUser models.User
	if err := models.DB.Where("email = ?", demoEmail).First(&demoUser).Error; err != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte("Demo12345"), bcrypt.DefaultCost)
		if err != nil {
			stdLog.Fatalf("Failed to hash demo password: %v", err)
		}
		verifiedAt := now
		demoUser = models.User{
			Email:           demoEmail,
			PasswordHash:    string(hash),
			FullName:        "Khách hàng Demo",
			Phone:           "0900000000",
			Locale:          "vi-VN",
			Status:          constants.UserStatusActive,
			EmailVerifiedAt: &verifiedAt,
		}
		if err := models.DB.Create(&demoUser).Error; err != nil {
			stdLog.Printf("Failed to create demo user: %v", err)
		} else {
			stdLog.Printf("Created demo user: %s / Demo12345", demoEmail)
			address := models.Address{
				UserID:        demoUser.ID,
				RecipientName: demoUser.FullName,
				Phone:         demoUser.Phone,
				Street:        "12 Nguyễn Huệ",
				Ward:          "Bến Nghé",
				District:      "Quận 1",
				City:          "TP. Hồ Chí Minh",
				IsDefault:     true,
			}
			if err := models.DB.Create(&address).Error; err != nil {
				stdLog.Printf("Failed to create demo address: %v", err)
			}
		}
	} else {
		stdLog.Printf("Demo user already exists: %s", demoEmail)
	}

	// 添加运营与客服管理员
	authService := service.NewAuthService(cfg, repository.NewAdminRepository(models.DB))
	authzService, err := authz.NewService(models.DB)
	if err != nil {
		stdLog.Fatalf("Failed to init authz: %v", err)
	}
	if err := authzService.BootstrapBuiltinRoles(); err != nil {
		stdLog.Fatalf("Failed to bootstrap roles: %v", err)
	}
	staff := []struct {
		Username string
		Display  string
		Role     string
	}{
		{Username: "operator", Display: "Vận hành", Role: authz.RoleOperations},
		{Username: "support", Display: "Chăm sóc khách hàng", Role: authz.RoleSupport},
	}
	for _, member := range staff {
		admin, created, err := authService.EnsureAdmin(member.Username, "Staff12345", member.Display, false)
		if err != nil {
			stdLog.Printf("Failed to create admin %s: %v", member.Username, err)
			continue
		}
		if err := authzService.SetAdminRoles(admin.ID, []string{member.Role}); err != nil {
			stdLog.Printf("Failed to assign role %s to %s: %v", member.Role, member.Username, err)
			continue
		}
		if created {
			stdLog.Printf("Created admin: %s / Staff12345 (%s)", member.Username, member.Role)
		} else {
			stdLog.Printf("Admin already exists: %s", member.Username)
		}
	}

	stdLog.Println("Seed completed")
}
