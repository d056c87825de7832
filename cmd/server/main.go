package main

import (
	"flag"
	"os"
	"strings"
	"syscall"

	"github.com/shoestore/internal/app"
	"github.com/shoestore/internal/config"
	"github.com/shoestore/internal/logger"
	"github.com/shoestore/internal/models"
	"github.com/shoestore/internal/repository"
	"github.com/shoestore/internal/service"

	"github.com/gin-gonic/gin"
)

const devAdminPassword = "admin123"

func main() {
	// 解析命令行参数
	var mode string
	flag.StringVar(&mode, "mode", app.ModeAll, "启动模式: all (默认), api, worker")
	flag.Parse()

	// 加载配置
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	release := cfg.Server.Mode == "release"

	for name, secret := range map[string]string{"jwt.secret": cfg.JWT.SecretKey, "session.secret": cfg.Session.Secret} {
		if !isWeakSecret(secret) {
			continue
		}
		if release {
			stdLog.Fatalf("%s 过弱或仍为默认值，请在生产环境中配置强随机密钥", name)
		}
		logger.Warnw("weak_secret_configured", "key", name)
	}

	// 初始化数据库
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, cfg.Database.Debug, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("数据库初始化失败: %v", err)
	}
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("数据库迁移失败: %v", err)
	}

	// 初始化默认管理员账号
	ensureDefaultAdmin(cfg, release)

	if release {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := app.Run(app.Options{
		Config:  cfg,
		Logger:  logger.S(),
		Signals: []os.Signal{syscall.SIGINT, syscall.SIGTERM},
		Mode:    mode,
	}); err != nil {
		stdLog.Fatalf("服务运行失败: %v", err)
	}
}

func ensureDefaultAdmin(cfg *config.Config, release bool) {
	password := cfg.Admin.Password
	if password == "" {
		if release {
			logger.Warnw("default_admin_skipped", "reason", "admin.password not set")
			return
		}
		password = devAdminPassword
	}
	authService := service.NewAuthService(cfg, repository.NewAdminRepository(models.DB))
	admin, created, err := authService.EnsureAdmin(cfg.Admin.Username, password, cfg.Admin.Username, true)
	if err != nil {
		logger.Warnw("default_admin_init_failed", "error", err)
		return
	}
	if created {
		logger.Infow("default_admin_created", "username", admin.Username, "default_password", password == devAdminPassword)
	}
}

func isWeakSecret(secret string) bool {
	if len(secret) < 32 {
		return true
	}
	normalized := strings.ToLower(secret)
	return strings.Contains(normalized, "change-me") ||
		strings.Contains(normalized, "change-in-production") ||
		strings.Contains(normalized, "your-secret-key")
}
