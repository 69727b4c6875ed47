package redis

import (
	"context"
	"fmt"
	"strings"
	"time"
	"vestiaKiosk/pkg/config"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects using REDIS_URL when set, otherwise host, port,
// password and db. The connection is checked with PING before returning.
func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	opts, err := clientOptions(cfg.Redis)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", opts.Addr, err)
	}

	return client, nil
}

func clientOptions(rc config.RedisConfig) (*redis.Options, error) {
	var opts *redis.Options
	if strings.HasPrefix(rc.RedisURL, "redis://") || strings.HasPrefix(rc.RedisURL, "rediss://") {
		parsed, err := redis.ParseURL(rc.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		opts = parsed
	} else {
		opts = &redis.Options{
			Addr:     fmt.Sprintf("%s:%s", rc.RedisHost, rc.RedisPort),
			Password: rc.RedisPassword,
			DB:       rc.RedisDB,
		}
	}

	opts.ClientName = "vestia-kiosk"
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second
	opts.PoolSize = 10
	opts.MinIdleConns = 2
	return opts, nil
}

// CloseRedisClient closes the Redis connection
func CloseRedisClient(client *redis.Client) error {
	if client != nil {
		return client.Close()
	}

	return nil
}
