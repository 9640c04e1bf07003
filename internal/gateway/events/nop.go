package events

import (
	"context"

	"ecodeli-delivery/internal/domain"
)

// NopPublisher drops events. Used when Kafka is not configured.
type NopPublisher struct{}

// Publish implements the publisher contract.
func (NopPublisher) Publish(context.Context, domain.Event) error { return nil }
