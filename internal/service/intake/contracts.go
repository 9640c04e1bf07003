//go:generate mockgen -source=contracts.go -destination=intake_mocks_test.go -package=intake_test

package intake

import (
	"context"

	"ecodeli-delivery/internal/domain"
)

// CourierPort is the part of the courier directory used on registration events.
type CourierPort interface {
	Create(ctx context.Context, c *domain.Courier) error
}
