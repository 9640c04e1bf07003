package ratelimit

import "time"

// Limiter admits or rejects a request for a bucket key such as "courier:42" or "ip:10.0.0.1".
type Limiter interface {
	Allow(key string) bool
}

// Clock lets tests drive bucket refill.
type Clock interface {
	Now() time.Time
}

// RealClock reads the wall clock.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// NopLimiter admits everything; used when RATE_LIMIT_ENABLED is false.
type NopLimiter struct{}

func (NopLimiter) Allow(string) bool { return true }
