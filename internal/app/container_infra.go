package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.uber.org/dig"

	"ecodeli-delivery/internal/attempts"
	"ecodeli-delivery/internal/config"
	"ecodeli-delivery/internal/gateway/events"
	"ecodeli-delivery/internal/logx"
	"ecodeli-delivery/internal/prometrics"
	"ecodeli-delivery/internal/service/transfer"
	"ecodeli-delivery/internal/transport/kafka"
)

type metricsOut struct {
	dig.Out

	RateLimitExceededTotal   prometheus.Counter `name:"rate_limit_exceeded_total"`
	EventPublishRetriesTotal prometheus.Counter `name:"event_publish_retries_total"`
	Transfer                 *prometrics.TransferMetrics
}

func registerCounter(name string, c prometheus.Counter) (prometheus.Counter, error) {
	if err := prometheus.DefaultRegisterer.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
		}
		return nil, fmt.Errorf("register %s: %w", name, err)
	}
	return c, nil
}

func provideMetrics() (metricsOut, error) {
	var out metricsOut
	counters := []struct {
		name string
		dst  *prometheus.Counter
		make func() prometheus.Counter
	}{
		{"rate_limit_exceeded_total", &out.RateLimitExceededTotal, prometrics.NewRateLimitExceededTotal},
		{"event_publish_retries_total", &out.EventPublishRetriesTotal, prometrics.NewEventPublishRetriesTotal},
	}
	for _, c := range counters {
		registered, err := registerCounter(c.name, c.make())
		if err != nil {
			return metricsOut{}, err
		}
		*c.dst = registered
	}

	initiated, err := registerCounter("transfer_initiated_total", prometrics.NewTransferInitiatedTotal())
	if err != nil {
		return metricsOut{}, err
	}
	confirmed, err := registerCounter("transfer_confirmed_total", prometrics.NewTransferConfirmedTotal())
	if err != nil {
		return metricsOut{}, err
	}
	mismatch, err := registerCounter("transfer_code_mismatch_total", prometrics.NewTransferCodeMismatchTotal())
	if err != nil {
		return metricsOut{}, err
	}
	out.Transfer = prometrics.NewTransferMetrics(initiated, confirmed, mismatch)
	return out, nil
}

// newRedisClient returns nil when Redis is not configured.
func newRedisClient(ctx context.Context, cfg *config.Config, logger logx.Logger) *redis.Client {
	if cfg.Redis.Addr == "" {
		logger.Info("redis not configured, transfer attempt lockout disabled")
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Warn("redis ping failed, guard will fail open until it recovers",
			logx.String("addr", cfg.Redis.Addr),
			logx.Err(err),
		)
	}
	return client
}

func newAttemptGuard(client *redis.Client, cfg *config.Config) transfer.Guard {
	if client == nil {
		return attempts.NopGuard{}
	}
	return attempts.NewRedisGuard(client, cfg.Redis.Prefix, cfg.Transfer.MaxFailedAttempts, cfg.Transfer.AttemptWindow)
}

// newEventProducer returns nil when Kafka is not configured.
func newEventProducer(cfg *config.Config) (*kafka.Producer, error) {
	if !cfg.Kafka.Enabled() {
		return nil, nil
	}
	return kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.EventsTopic)
}

type publisherIn struct {
	dig.In
	Producer *kafka.Producer
	Logger   logx.Logger
	Retries  prometheus.Counter `name:"event_publish_retries_total"`
	Cfg      *config.Config
}

func newEventPublisher(in publisherIn) transfer.Publisher {
	if in.Producer == nil {
		in.Logger.Info("kafka not configured, delivery events are dropped")
		return events.NopPublisher{}
	}
	return events.NewRetryingPublisher(in.Producer, in.Logger, in.Retries, events.RetryConfig{
		MaxAttempts: in.Cfg.Publisher.MaxAttempts,
		BaseDelay:   in.Cfg.Publisher.BaseDelay,
		MaxDelay:    in.Cfg.Publisher.MaxDelay,
	})
}

func registerInfra(container *dig.Container) error {
	return provideAll(container,
		provideMetrics,
		func(m *prometrics.TransferMetrics) transfer.Metrics { return m },
		newRedisClient,
		newAttemptGuard,
		newEventProducer,
		newEventPublisher,
	)
}
