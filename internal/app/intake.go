package app

import (
	"context"
	"errors"

	"ecodeli-delivery/internal/apperr"
	"ecodeli-delivery/internal/domain"
	"ecodeli-delivery/internal/transport/kafka"
)

type intakeHandler interface {
	Handle(ctx context.Context, e domain.IntakeEvent) error
}

// makeIntakeKafka adapts the processor to the consumer. Events that can never
// succeed are marked permanent so the partition is not blocked on them.
func makeIntakeKafka(p intakeHandler) kafka.HandleFunc {
	return func(ctx context.Context, e domain.IntakeEvent) error {
		err := p.Handle(ctx, e)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, apperr.ErrInvalidInput), errors.Is(err, apperr.ErrNotFound):
			return kafka.Permanent(err)
		default:
			return err
		}
	}
}
