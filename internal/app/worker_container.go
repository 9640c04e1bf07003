package app

import (
	"time"

	"go.uber.org/dig"

	"ecodeli-delivery/internal/config"
	"ecodeli-delivery/internal/logx"
	"ecodeli-delivery/internal/repository"
	"ecodeli-delivery/internal/service/intake"
	"ecodeli-delivery/internal/transport/kafka"
)

func registerWorker(container *dig.Container) error {
	return provideAll(container,
		func(repo *repository.PackageRepo, couriers *repository.CourierRepo, cfg *config.Config, logger logx.Logger) *intake.Processor {
			return intake.NewProcessor(repo, couriers, cfg.Transfer.OperationTimeout, logger)
		},
		func(p *intake.Processor) kafka.HandleFunc { return makeIntakeKafka(p) },
		newIntakeConsumer,
	)
}

// newIntakeConsumer returns nil when Kafka is not configured; workerRun rejects that.
func newIntakeConsumer(cfg *config.Config, logger logx.Logger, h kafka.HandleFunc) (*kafka.Consumer, error) {
	c, err := kafka.NewConsumer(logger, cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.PackagesTopic, h)
	if err != nil {
		return nil, err
	}
	if c != nil {
		logger.Info("kafka consumer configured",
			logx.String("topic", cfg.Kafka.PackagesTopic),
			logx.String("group", cfg.Kafka.GroupID),
			logx.Duration("operation_timeout", cfg.Transfer.OperationTimeout.Round(time.Millisecond)),
		)
	}
	return c, nil
}
