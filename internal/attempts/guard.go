// Package attempts counts failed transfer-code confirmations and locks a
// (package, courier) pair out once the limit is reached within a window.
package attempts

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisGuard keeps failure counters in Redis so every instance sees the same lockout.
type RedisGuard struct {
	client      redis.Cmdable
	prefix      string
	maxFailures int64
	window      time.Duration
}

// NewRedisGuard creates a RedisGuard.
func NewRedisGuard(client redis.Cmdable, prefix string, maxFailures int, window time.Duration) *RedisGuard {
	if maxFailures <= 0 {
		maxFailures = 5
	}
	if window <= 0 {
		window = 15 * time.Minute
	}
	return &RedisGuard{
		client:      client,
		prefix:      strings.TrimSpace(prefix),
		maxFailures: int64(maxFailures),
		window:      window,
	}
}

// Locked reports whether the key reached the failure limit.
func (g *RedisGuard) Locked(ctx context.Context, key string) (bool, error) {
	n, err := g.client.Get(ctx, g.key(key)).Int64()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read attempts: %w", err)
	}
	return n >= g.maxFailures, nil
}

// Fail records one failure and returns the count within the current window.
// The window starts at the first failure.
func (g *RedisGuard) Fail(ctx context.Context, key string) (int64, error) {
	k := g.key(key)
	n, err := g.client.Incr(ctx, k).Result()
	if err != nil {
		return 0, fmt.Errorf("record attempt: %w", err)
	}
	if n == 1 {
		if err := g.client.Expire(ctx, k, g.window).Err(); err != nil {
			return n, fmt.Errorf("set attempt window: %w", err)
		}
	}
	return n, nil
}

// Reset clears the counter after a successful confirmation.
func (g *RedisGuard) Reset(ctx context.Context, key string) error {
	if err := g.client.Del(ctx, g.key(key)).Err(); err != nil {
		return fmt.Errorf("reset attempts: %w", err)
	}
	return nil
}

func (g *RedisGuard) key(key string) string {
	if g.prefix == "" {
		return "transfer-attempts:" + key
	}
	return g.prefix + ":transfer-attempts:" + key
}

// NopGuard never locks.
type NopGuard struct{}

// Locked implements the guard contract.
func (NopGuard) Locked(context.Context, string) (bool, error) { return false, nil }

// Fail implements the guard contract.
func (NopGuard) Fail(context.Context, string) (int64, error) { return 0, nil }

// Reset implements the guard contract.
func (NopGuard) Reset(context.Context, string) error { return nil }
