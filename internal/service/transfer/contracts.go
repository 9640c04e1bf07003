//go:generate mockgen -source=contracts.go -destination=transfer_mocks_test.go -package=transfer_test

package transfer

import (
	"context"

	"ecodeli-delivery/internal/domain"
	"ecodeli-delivery/internal/ports/transfertx"
)

type store interface {
	transfertx.Runner
	LatestTransfer(ctx context.Context, packageID int64) (*domain.TransferRecord, error)
}

// CodeGenerator issues transfer codes.
type CodeGenerator interface {
	Generate() (string, error)
}

// ProgressPolicy computes per-leg progress when a transfer is confirmed.
type ProgressPolicy interface {
	Compute(pkg *domain.Package, rec *domain.TransferRecord) domain.Progress
}

// Publisher delivers domain events to downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, e domain.Event) error
}

// Guard tracks failed confirmation attempts per package and courier.
type Guard interface {
	Locked(ctx context.Context, key string) (bool, error)
	Fail(ctx context.Context, key string) (int64, error)
	Reset(ctx context.Context, key string) error
}

// Metrics counts transfer outcomes.
type Metrics interface {
	Initiated()
	Confirmed()
	CodeMismatch()
}
