//go:generate mockgen -source=contracts.go -destination=delivery_mocks_test.go -package=delivery_test

package delivery

import (
	"context"

	"ecodeli-delivery/internal/domain"
	"ecodeli-delivery/internal/ports/transfertx"
	"ecodeli-delivery/internal/service/transfer"
)

type packageRepository interface {
	transfertx.Runner
	ListAssignedTo(ctx context.Context, courierID int64) ([]domain.Package, error)
	ListPendingTransfersFor(ctx context.Context, courierID int64) ([]domain.Package, error)
}

// Initiator opens transfers on behalf of the status controller.
type Initiator interface {
	Initiate(ctx context.Context, cmd transfer.InitiateCommand) (domain.TransferRecord, error)
}

// Publisher delivers domain events to downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, e domain.Event) error
}
