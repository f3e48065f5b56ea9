package redis

import (
	"context"
	"fmt"
	"net"

	"wirpackens-service/config"

	"github.com/redis/go-redis/v9"
)

// SetupClient connects to Redis. It returns nil, nil when no host is
// configured so callers can fall back to in-process coordination.
func SetupClient(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	if !cfg.Enabled() {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}
