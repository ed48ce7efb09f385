package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"
	goredis "github.com/redis/go-redis/v9"

	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/pkg/logger"
)

// RateLimitConfig holds configuration for rate limiting
type RateLimitConfig struct {
	// Requests per window
	Limit int
	// Time window duration
	Window time.Duration
	// Key prefix for the counter store
	KeyPrefix string
	// Whether to reject requests when Redis is unavailable
	FailClosed bool
}

// DefaultRateLimitConfig covers general API traffic.
func DefaultRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{
		Limit:     limit,
		Window:    window,
		KeyPrefix: "rl:ip:",
	}
}

// LoginRateLimitConfig is the strict variant for credential endpoints.
func LoginRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{
		Limit:      limit,
		Window:     window,
		KeyPrefix:  "rl:login:",
		FailClosed: true,
	}
}

// Lua script for atomic increment with TTL on first set.
// Returns: [current_count, ttl_remaining]
const rateLimitLuaScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('TTL', KEYS[1])
return {count, ttl}
`

type memCounter struct {
	count   int
	resetAt time.Time
	mu      sync.Mutex
}

// RateLimit counts requests per client IP. Counters live in Redis when a
// client is available and in a local expiring cache otherwise, so a single
// instance still limits without Redis.
func RateLimit(rdb *goredis.Client, cfg RateLimitConfig) gin.HandlerFunc {
	fallback := gocache.New(cfg.Window, 2*cfg.Window)

	return func(c *gin.Context) {
		key := cfg.KeyPrefix + c.ClientIP()

		var count int
		var resetAt time.Time
		var err error

		if rdb != nil {
			count, resetAt, err = incrRedis(c.Request.Context(), rdb, key, cfg.Window)
			if err != nil {
				if cfg.FailClosed {
					logger.Log.Error("rate limit store unavailable", "error", err)
					response.Error(c, http.StatusServiceUnavailable, "Service temporarily unavailable. Please try again.", nil, "")
					c.Abort()
					return
				}
				count, resetAt = incrMemory(fallback, key, cfg.Window)
			}
		} else {
			count, resetAt = incrMemory(fallback, key, cfg.Window)
		}

		if count > cfg.Limit {
			retryAfter := int(time.Until(resetAt).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.Limit))
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			response.Error(c, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.", nil, "")
			c.Abort()
			return
		}

		remaining := cfg.Limit - count
		c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		c.Next()
	}
}

func incrRedis(ctx context.Context, rdb *goredis.Client, key string, window time.Duration) (int, time.Time, error) {
	result, err := rdb.Eval(ctx, rateLimitLuaScript, []string{key}, int(window.Seconds())).Result()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("rate limit eval failed: %w", err)
	}

	arr, ok := result.([]interface{})
	if !ok || len(arr) < 2 {
		return 0, time.Time{}, fmt.Errorf("unexpected eval result")
	}
	count, _ := arr[0].(int64)
	ttl, _ := arr[1].(int64)

	return int(count), time.Now().Add(time.Duration(ttl) * time.Second), nil
}

func incrMemory(store *gocache.Cache, key string, window time.Duration) (int, time.Time) {
	now := time.Now()

	entry, found := store.Get(key)
	if !found {
		counter := &memCounter{count: 1, resetAt: now.Add(window)}
		store.Set(key, counter, window)
		return 1, counter.resetAt
	}

	counter := entry.(*memCounter)
	counter.mu.Lock()
	defer counter.mu.Unlock()

	if now.After(counter.resetAt) {
		counter.count = 0
		counter.resetAt = now.Add(window)
	}
	counter.count++
	return counter.count, counter.resetAt
}
