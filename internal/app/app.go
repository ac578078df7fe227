package app

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/hyagosilvaxds/backend-erp-sub001/internal/middleware"
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/rbac"
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/shared/config"
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Infrastructure is the set of process-wide clients shared by every module.
type Infrastructure struct {
	Config config.Config
	GormDB *gorm.DB
	DB     *sql.DB
	Redis  *redis.Client
	Logger *zap.Logger
}

// Connect opens Postgres and Redis, retrying with backoff.
func Connect(ctx context.Context, cfg config.Config, logger *zap.Logger) (*Infrastructure, error) {
	if logger == nil {
		logger = zap.L()
	}

	gormDB, err := connectDatabase(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}

	rdb, err := connection.ConnectRedisWithRetry(ctx, cfg.RedisAddr, cfg.ConnectMaxRetries, logger)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	return &Infrastructure{
		Config: cfg,
		GormDB: gormDB,
		DB:     sqlDB,
		Redis:  rdb,
		Logger: logger,
	}, nil
}

func connectDatabase(ctx context.Context, cfg config.Config, logger *zap.Logger) (*gorm.DB, error) {
	return connection.ConnectGORMWithRetry(ctx, connection.PostgresConfig{
		Host:         cfg.DBHost,
		Port:         cfg.DBPort,
		User:         cfg.DBUser,
		Password:     cfg.DBPassword,
		Name:         cfg.DBName,
		SSLMode:      cfg.DBSSLMode,
		MaxOpenConns: cfg.DBMaxOpenConns,
		MaxIdleConns: cfg.DBMaxIdleConns,
	}, cfg.ConnectMaxRetries, logger)
}

func (i *Infrastructure) Close() {
	if i.Redis != nil {
		if err := i.Redis.Close(); err != nil {
			i.Logger.Warn("closing redis", zap.Error(err))
		}
	}
	if i.DB != nil {
		if err := i.DB.Close(); err != nil {
			i.Logger.Warn("closing database", zap.Error(err))
		}
	}
}

// BuildApp migrates (when enabled), seeds the permission catalog and mounts
// every module on router.
func BuildApp(router *gin.Engine, infra *Infrastructure) error {
	log := infra.Logger.Named("app")

	if infra.Config.DBAutoMigrate {
		if err := AutoMigrate(infra.GormDB); err != nil {
			return err
		}
		log.Info("database schema migrated")
	}

	if err := rbac.SeedPermissions(rbac.NewRepository(infra.GormDB)); err != nil {
		return err
	}

	middleware.SetJWTSecret(infra.Config.JWTSecret)

	router.Use(
		middleware.RequestID(),
		middleware.ContextLogger(infra.Logger),
	)

	router.GET("/health", func(c *gin.Context) {
		if err := infra.DB.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return registerModules(router, infra)
}
