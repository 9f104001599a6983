package database

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"stratoview-taxonomy-api/internal/config"
)

var redisClient *redis.Client

// InitRedis establishes the Redis connection used as a read-through cache
// for taxonomy listings. The service degrades to DB-only when Redis is
// unavailable, so a failed init is not fatal to the process.
func InitRedis(cfg config.RedisConfig, log *zap.Logger) error {
	var client *redis.Client

	if cfg.URL != "" {
		opts, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return err
		}
		client = redis.NewClient(opts)
	} else {
		client = redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
			Password: cfg.Password,
			DB:       cfg.DB,
		})
	}

	if err := client.Ping(context.Background()).Err(); err != nil {
		return err
	}

	redisClient = client
	log.Info("Redis connection established",
		zap.String("addr", fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)),
		zap.Int("db", cfg.DB),
	)
	return nil
}

// GetRedis returns the Redis client, or nil when Redis was never
// connected. Callers must treat nil as cache-disabled.
func GetRedis() *redis.Client {
	return redisClient
}
