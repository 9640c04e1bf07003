package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"ecodeli-delivery/internal/config"
	"ecodeli-delivery/internal/http/middleware/ratelimit"
	"ecodeli-delivery/internal/logx"
)

func newRateLimiter(cfg *config.Config, clock ratelimit.Clock, logger logx.Logger) ratelimit.Limiter {
	rl := cfg.RateLimit
	if !rl.Enabled {
		logger.Info("rate limiting disabled")
		return ratelimit.NopLimiter{}
	}
	logger.Info("rate limiting enabled",
		logx.Any("rate", rl.Rate),
		logx.Int("burst", rl.Burst),
		logx.Int("max_buckets", rl.MaxBuckets),
	)
	return ratelimit.NewTokenBucketLimiter(clock, ratelimit.Config{
		Rate:       rl.Rate,
		Burst:      rl.Burst,
		TTL:        rl.TTL,
		MaxBuckets: rl.MaxBuckets,
	})
}

type rateLimitIn struct {
	dig.In
	Logger  logx.Logger
	Counter prometheus.Counter `name:"rate_limit_exceeded_total"`
	Limiter ratelimit.Limiter
}

// Buckets are keyed per courier once the bearer token is verified, per IP otherwise.
func newRateLimitMiddleware(in rateLimitIn) *ratelimit.Middleware {
	return ratelimit.New(in.Logger, in.Counter, in.Limiter).WithKeyFunc(ratelimit.CourierOrIP)
}
