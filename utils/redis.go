package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Shree2124/ngostream-backend/config"
)

var (
	RedisClient *redis.Client
	Ctx         = context.Background()
)

// InitRedis connects the shared Redis client used for the JWT denylist
// and FCM device token cache.
func InitRedis(cfg *config.Config) error {
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := RedisClient.Ping(Ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func denylistKey(token string) string {
	return "denylist:" + token
}

// DenylistToken marks a JWT as revoked until it would have expired anyway.
func DenylistToken(token string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return RedisClient.Set(Ctx, denylistKey(token), "revoked", ttl).Err()
}

// IsTokenDenylisted reports whether a JWT has been revoked by logout.
func IsTokenDenylisted(token string) bool {
	n, err := RedisClient.Exists(Ctx, denylistKey(token)).Result()
	return err == nil && n > 0
}
