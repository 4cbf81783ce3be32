package redisclient

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"sitedesk/internal/config"
	"sitedesk/internal/retry"
)

// New connects to redis and verifies the connection. Redis is optional
// infrastructure (dashboard cache and refresh lock); callers may run
// with a nil client when no address is configured.
func New(cfg config.RedisConfig) (*redis.Client, error) {
	if cfg.Addr == "" {
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ping := retry.Policy{MaxAttempts: 5, Delay: time.Second, Retryable: retry.IsTransient}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := ping.Do(ctx, func() error {
		return rdb.Ping(ctx).Err()
	}); err != nil {
		_ = rdb.Close()
		return nil, err
	}
	return rdb, nil
}
