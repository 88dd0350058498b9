package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/osse101/ReelCasino_Go/internal/logger"
)

// Limiter decides whether another action under key is allowed right now
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RedisLimiter is a fixed-window counter: the first hit in a window sets its expiry
type RedisLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

// NewRedisLimiter allows limit actions per key in every window
func NewRedisLimiter(client *redis.Client, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{client: client, limit: limit, window: window}
}

// Connect dials redis at addr and verifies the connection
func Connect(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	logger.FromContext(ctx).Info(LogMsgRedisConnected, "addr", addr)
	return client, nil
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	key = KeyPrefix + key

	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check rate limit: %w", err)
	}

	if count == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return false, fmt.Errorf("failed to set rate limit window: %w", err)
		}
	}

	if count > int64(l.limit) {
		logger.FromContext(ctx).Debug(LogMsgLimitExceeded, "key", key, "count", count)
		return false, nil
	}
	return true, nil
}

// Noop allows everything
type Noop struct{}

func (Noop) Allow(context.Context, string) (bool, error) {
	return true, nil
}
