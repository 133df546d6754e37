package di

import (
	"context"
	"fmt"

	"user-directory-service/cmd/api/infrastructure"
	"user-directory-service/internal/adapter/db/postgres"
	ginhandler "user-directory-service/internal/adapter/gin/handler"
	"user-directory-service/internal/adapter/gin/middleware"
	"user-directory-service/internal/adapter/gin/router"
	"user-directory-service/internal/config"
	"user-directory-service/internal/usecase/user"
	redisclient "user-directory-service/pkg/redis"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Container holds all application dependencies
type Container struct {
	Config        *config.Config
	Logger        *zap.Logger
	DB            *gorm.DB
	RedisClient   *redisclient.Client // nil unless rate limiting is enabled
	UserUC        user.UserUsecase
	UserHandler   *ginhandler.UserHandler
	StaticHandler *ginhandler.StaticHandler
	RateLimiter   *middleware.RateLimiter
	Metrics       *middleware.Metrics
	Router        *gin.Engine
}

// NewContainer creates and initializes all application dependencies.
// The configuration must already be validated.
func NewContainer(ctx context.Context, cfg *config.Config, l *zap.Logger) (*Container, error) {
	db, err := infrastructure.NewDatabase(ctx, cfg, l)
	if err != nil {
		return nil, err
	}

	rdb, err := infrastructure.NewRedisClient(ctx, cfg, l)
	if err != nil {
		_ = infrastructure.CloseDatabase(db)
		return nil, err
	}

	return build(cfg, l, db, rdb), nil
}

// build wires everything above the connections
func build(cfg *config.Config, l *zap.Logger, db *gorm.DB, rdb *redisclient.Client) *Container {
	repo := postgres.NewUserRepoPG(db, l)
	userUC := user.New(repo, l)

	userHandler := ginhandler.NewUserHandler(userUC, l)
	staticHandler := ginhandler.NewStaticHandler(cfg.App.StaticDir, l)

	var rateLimiter *middleware.RateLimiter
	if rdb != nil {
		rateLimiter = middleware.NewRateLimiter(
			rdb.Client,
			middleware.RateLimiterConfig{
				RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
				BurstCapacity:     cfg.RateLimit.BurstCapacity,
			},
			l,
		)
	}

	var metrics *middleware.Metrics
	if cfg.App.MetricsEnabled {
		metrics = middleware.NewMetrics()
	}

	r := router.SetupRouter(userHandler, staticHandler, router.Options{
		SwaggerEnabled: cfg.App.SwaggerEnabled,
		Metrics:        metrics,
		RateLimiter:    rateLimiter,
	}, l)

	return &Container{
		Config:        cfg,
		Logger:        l,
		DB:            db,
		RedisClient:   rdb,
		UserUC:        userUC,
		UserHandler:   userHandler,
		StaticHandler: staticHandler,
		RateLimiter:   rateLimiter,
		Metrics:       metrics,
		Router:        r,
	}
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	var errs []error

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close Redis: %w", err))
		}
	}

	if c.DB != nil {
		if err := infrastructure.CloseDatabase(c.DB); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("container close errors: %v", errs)
	}

	return nil
}
