package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/bemove/bemove-backend/config"
	"github.com/bemove/bemove-backend/pkg/logger"
	"github.com/redis/go-redis/v9"
)

var client *redis.Client

// Init initializes Redis connection
func Init(cfg *config.RedisConfig) error {
	logger.Info("Initializing Redis connection", map[string]interface{}{
		"host": cfg.Host,
		"port": cfg.Port,
		"db":   cfg.DB,
	})

	client = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("Failed to connect to Redis", err, map[string]interface{}{
			"host": cfg.Host,
			"port": cfg.Port,
		})
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("Redis connection established successfully", nil)
	return nil
}

// GetClient returns the Redis client instance
func GetClient() *redis.Client {
	return client
}

// Close closes the Redis connection
func Close() error {
	if client != nil {
		logger.Info("Closing Redis connection", nil)
		return client.Close()
	}
	return nil
}

// BlacklistToken adds a token to the blacklist
func BlacklistToken(ctx context.Context, token string, expiry time.Duration) error {
	if client == nil {
		return fmt.Errorf("redis client is not initialized")
	}
	key := fmt.Sprintf("blacklist:%s", token)
	if err := client.Set(ctx, key, "revoked", expiry).Err(); err != nil {
		logger.Error("Failed to blacklist token", err, nil)
		return err
	}
	return nil
}

// IsTokenBlacklisted checks if a token is in the blacklist
func IsTokenBlacklisted(ctx context.Context, token string) (bool, error) {
	// Redis가 연결되지 않은 환경에서는 차단 없이 통과시킨다
	if client == nil {
		return false, nil
	}
	key := fmt.Sprintf("blacklist:%s", token)
	val, err := client.Get(ctx, key).Result()

	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		logger.Error("Failed to check token blacklist", err, nil)
		return false, err
	}

	return val == "revoked", nil
}

// 대시보드 요약 캐시 키
const dashboardSummaryKey = "dashboard:org_summary"

// CacheDashboardSummary stores the serialized org dashboard summary
func CacheDashboardSummary(ctx context.Context, payload []byte, ttl time.Duration) error {
	if client == nil {
		return fmt.Errorf("redis client is not initialized")
	}
	if err := client.Set(ctx, dashboardSummaryKey, payload, ttl).Err(); err != nil {
		logger.Error("Failed to cache dashboard summary", err, nil)
		return err
	}
	return nil
}

// GetDashboardSummary returns the cached org dashboard summary, or nil on miss
func GetDashboardSummary(ctx context.Context) ([]byte, error) {
	if client == nil {
		return nil, nil
	}
	val, err := client.Get(ctx, dashboardSummaryKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}
