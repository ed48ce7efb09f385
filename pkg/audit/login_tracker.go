package audit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// LoginTracker counts failed login attempts per email+IP and blocks further
// attempts once the threshold is reached. Backed by Redis when available,
// otherwise an in-memory map (single instance only).
type LoginTracker struct {
	rdb         *redis.Client
	maxAttempts int
	blockFor    time.Duration

	mu       sync.Mutex
	fallback map[string]*attemptEntry
}

type attemptEntry struct {
	count   int
	resetAt time.Time
}

func NewLoginTracker(rdb *redis.Client, maxAttempts, blockMinutes int) *LoginTracker {
	if maxAttempts < 1 {
		maxAttempts = 5
	}
	if blockMinutes < 1 {
		blockMinutes = 15
	}
	return &LoginTracker{
		rdb:         rdb,
		maxAttempts: maxAttempts,
		blockFor:    time.Duration(blockMinutes) * time.Minute,
		fallback:    make(map[string]*attemptEntry),
	}
}

func (t *LoginTracker) key(email, ip string) string {
	return fmt.Sprintf("login:fail:%s:%s", email, ip)
}

// IsBlocked reports whether this email+IP is currently locked out.
func (t *LoginTracker) IsBlocked(ctx context.Context, email, ip string) bool {
	key := t.key(email, ip)

	if t.rdb != nil {
		count, err := t.rdb.Get(ctx, key).Int()
		if err == nil && count >= t.maxAttempts {
			return true
		}
		if err == nil || err == redis.Nil {
			return false
		}
		// Redis errored; fall through to memory
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	entry, ok := t.fallback[key]
	if !ok || time.Now().After(entry.resetAt) {
		return false
	}
	return entry.count >= t.maxAttempts
}

// RecordFailure increments the failed-attempt counter. The counter expires
// after the block window, so a lockout always clears itself.
func (t *LoginTracker) RecordFailure(ctx context.Context, email, ip string) {
	key := t.key(email, ip)

	if t.rdb != nil {
		pipe := t.rdb.TxPipeline()
		incr := pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, t.blockFor)
		if _, err := pipe.Exec(ctx); err == nil {
			_ = incr
			return
		}
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	entry, ok := t.fallback[key]
	if !ok || time.Now().After(entry.resetAt) {
		t.fallback[key] = &attemptEntry{count: 1, resetAt: time.Now().Add(t.blockFor)}
		return
	}
	entry.count++
}

// Reset clears the counter after a successful login.
func (t *LoginTracker) Reset(ctx context.Context, email, ip string) {
	key := t.key(email, ip)
	if t.rdb != nil {
		_ = t.rdb.Del(ctx, key).Err()
	}
	t.mu.Lock()
	delete(t.fallback, key)
	t.mu.Unlock()
}
