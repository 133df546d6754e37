package infrastructure

import (
	"context"

	"user-directory-service/internal/config"
	apperrors "user-directory-service/pkg/errors"
	redisclient "user-directory-service/pkg/redis"

	"go.uber.org/zap"
)

// NewRedisClient connects to the Redis that backs the rate limiter.
// It returns nil without dialing when rate limiting is off.
func NewRedisClient(ctx context.Context, cfg *config.Config, l *zap.Logger) (*redisclient.Client, error) {
	if !cfg.RateLimit.Enabled {
		return nil, nil
	}

	rdb, err := redisclient.NewClient(ctx, redisclient.Config{
		Addr:        cfg.Redis.Addr(),
		Password:    cfg.Redis.Password,
		DB:          cfg.Redis.DB,
		MaxRetries:  cfg.Redis.MaxRetries,
		PoolSize:    cfg.Redis.PoolSize,
		MinIdleConn: cfg.Redis.MinIdleConn,
	}, l)
	if err != nil {
		return nil, apperrors.NewStartupError("failed to connect to Redis", err)
	}

	return rdb, nil
}
