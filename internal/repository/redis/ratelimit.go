package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const rateLimitPrefix = "ratelimit:"

// RateLimiter throttles chat requests per user with a fixed window in Redis.
type RateLimiter struct {
	client            *Client
	requestsPerMinute int
	burst             int
}

// NewRateLimiter creates a new rate limiter
func NewRateLimiter(client *Client, requestsPerMinute, burst int) *RateLimiter {
	return &RateLimiter{
		client:            client,
		requestsPerMinute: requestsPerMinute,
		burst:             burst,
	}
}

// Allow checks if a request should be allowed based on rate limits
// Returns (allowed, remaining, resetTime, error)
func (r *RateLimiter) Allow(ctx context.Context, key string) (bool, int, time.Time, error) {
	fullKey := fmt.Sprintf("%s%s", rateLimitPrefix, key)
	windowEnd := time.Now().Truncate(time.Minute).Add(time.Minute)

	pipe := r.client.rdb.Pipeline()
	incrCmd := pipe.Incr(ctx, fullKey)
	pipe.ExpireNX(ctx, fullKey, time.Minute)

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return false, 0, time.Time{}, fmt.Errorf("failed to execute rate limit check: %w", err)
	}

	count := incrCmd.Val()
	limit := int64(r.requestsPerMinute + r.burst)
	remaining := int(limit - count)
	if remaining < 0 {
		remaining = 0
	}

	return count <= limit, remaining, windowEnd, nil
}

// Reset resets the rate limit counter for a key
func (r *RateLimiter) Reset(ctx context.Context, key string) error {
	fullKey := fmt.Sprintf("%s%s", rateLimitPrefix, key)
	return r.client.rdb.Del(ctx, fullKey).Err()
}
