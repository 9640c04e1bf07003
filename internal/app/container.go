package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"ecodeli-delivery/internal/auth"
	"ecodeli-delivery/internal/config"
	"ecodeli-delivery/internal/http/handlers"
	"ecodeli-delivery/internal/http/middleware/ratelimit"
	"ecodeli-delivery/internal/http/pprofserver"
	"ecodeli-delivery/internal/http/router"
	"ecodeli-delivery/internal/logx"
	"ecodeli-delivery/internal/repository"
	"ecodeli-delivery/internal/service/courier"
	"ecodeli-delivery/internal/service/delivery"
	"ecodeli-delivery/internal/service/transfer"
)

type dbConnectFunc func(ctx context.Context, logger logx.Logger, dsn string, retries int, delay time.Duration) (*pgxpool.Pool, error)

type migrateFunc func(ctx context.Context, pool *pgxpool.Pool) error

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	dbConnect dbConnectFunc
	migrate   migrateFunc
	logFatalf func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		dbConnect: connectDbWithRetry,
		migrate:   repository.ApplySchema,
		logFatalf: log.Fatalf,
	}
}

// WithDBConnect sets the database connection function
func (b *ContainerBuilder) WithDBConnect(fn dbConnectFunc) *ContainerBuilder {
	if fn != nil {
		b.dbConnect = fn
	}
	return b
}

// WithMigrate sets the schema migration function
func (b *ContainerBuilder) WithMigrate(fn migrateFunc) *ContainerBuilder {
	if fn != nil {
		b.migrate = fn
	}
	return b
}

// WithLogFatalf sets the log.Fatalf function
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds the HTTP service container
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

// MustBuildWorker builds the intake worker container
func (b *ContainerBuilder) MustBuildWorker(ctx context.Context) *dig.Container {
	container, err := b.buildWorker(ctx)
	if err != nil {
		b.logFatalf("failed to build worker container: %v", err)
	}
	return container
}

func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, b.dbConnect, b.migrate); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerInfra(container); err != nil {
		return nil, fmt.Errorf("infra: %w", err)
	}
	if err := registerDomainServices(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	return container, nil
}

func (b *ContainerBuilder) buildWorker(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, b.dbConnect, b.migrate); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerWorker(container); err != nil {
		return nil, fmt.Errorf("worker: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds the HTTP service container with defaults
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

// MustBuildWorkerContainer builds the worker container with defaults
func MustBuildWorkerContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuildWorker(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func registerCore(container *dig.Container, ctx context.Context) error {
	return provideAll(container,
		func() context.Context { return ctx },
		config.Load,
		NewLogger,
	)
}

func registerDb(container *dig.Container, dbConnect dbConnectFunc, migrate migrateFunc) error {
	providerDB := func(ctx context.Context, cfg *config.Config, logger logx.Logger) (*pgxpool.Pool, error) {
		pool, err := dbConnect(ctx, logger, cfg.DB.DSN(), 10, time.Second)
		if err != nil {
			return nil, err
		}
		if err := migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("apply schema: %w", err)
		}
		return pool, nil
	}
	return provideAll(container,
		providerDB,
		repository.NewPackageRepo,
		repository.NewCourierRepo,
	)
}

func registerDomainServices(container *dig.Container) error {
	return provideAll(container,
		func(cfg *config.Config) transfer.CodeGenerator {
			return transfer.NewRandomCodes(cfg.Transfer.CodeLength)
		},
		func(
			repo *repository.PackageRepo,
			codes transfer.CodeGenerator,
			guard transfer.Guard,
			pub transfer.Publisher,
			metrics transfer.Metrics,
			cfg *config.Config,
			logger logx.Logger,
		) *transfer.Service {
			return transfer.NewService(repo, codes, transfer.DistanceProgress{}, guard, pub, metrics, transfer.Config{
				OperationTimeout: cfg.Transfer.OperationTimeout,
				Expiry:           cfg.Transfer.Expiry,
				PublishTimeout:   cfg.Publisher.Timeout,
			}, logger)
		},
		func(
			repo *repository.PackageRepo,
			transfers *transfer.Service,
			pub transfer.Publisher,
			cfg *config.Config,
			logger logx.Logger,
		) *delivery.Service {
			return delivery.NewDeliveryService(repo, transfers, pub, cfg.Transfer.OperationTimeout, logger).
				WithPublishTimeout(cfg.Publisher.Timeout)
		},
		func(s *transfer.Service) expirer { return s },
		func(repo *repository.CourierRepo, cfg *config.Config) *courier.Service {
			return courier.NewService(repo, cfg.Transfer.OperationTimeout)
		},
	)
}

type pprofOut struct {
	dig.Out
	Server *http.Server `name:"pprof_server"`
}

func registerHTTP(container *dig.Container) error {
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}
	pprofProvider := func(cfg *config.Config) pprofOut {
		return pprofOut{Server: pprofserver.New(cfg.Pprof)}
	}
	verifierProvider := func(cfg *config.Config) *auth.Verifier {
		return auth.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.Issuer)
	}
	return provideAll(container,
		handlers.New,
		handlers.NewCourierUsecase,
		handlers.NewCourierHandler,
		handlers.NewDeliveryUsecase,
		handlers.NewTransferUsecase,
		handlers.NewPackageHandler,
		verifierProvider,
		func() ratelimit.Clock { return ratelimit.RealClock{} },
		newRateLimiter,
		newRateLimitMiddleware,
		router.New,
		serverProvider,
		pprofProvider,
	)
}
