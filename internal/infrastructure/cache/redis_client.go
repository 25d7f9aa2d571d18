package cache

import (
	"context"
	"fmt"
	"log"
	"time"

	"budget_tracker/internal/config"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis returns a client for cfg.RedisAddr, or nil when Redis is not
// configured.
func ConnectRedis(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	if cfg.RedisAddr == "" {
		log.Printf("[cache][redis] REDIS_ADDR not set, sessions are revoked in memory")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.RedisAddr, err)
	}

	log.Printf("[cache][redis] connected addr=%s", cfg.RedisAddr)
	return client, nil
}
