package database

import (
	"context"
	"fmt"
	"net"

	"catalog-orders/internal/config"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to the Redis instance backing the rate limiter
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}
