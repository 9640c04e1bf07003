package transfertx

import (
	"context"
	"time"

	"ecodeli-delivery/internal/domain"
)

// Repository is the set of storage operations available inside one transaction.
type Repository interface {
	// LockPackage loads the package and holds a row lock until the transaction ends.
	// Returns nil, nil when the package does not exist.
	LockPackage(ctx context.Context, id int64) (*domain.Package, error)
	GetCourier(ctx context.Context, id int64) (*domain.Courier, error)
	OpenTransferForUpdate(ctx context.Context, packageID int64) (*domain.TransferRecord, error)
	LatestTransfer(ctx context.Context, packageID int64) (*domain.TransferRecord, error)
	TransferCodeInUse(ctx context.Context, code string) (bool, error)
	InsertTransfer(ctx context.Context, rec *domain.TransferRecord) error
	// CloseTransfer moves an open record to status; false means it was no longer open.
	CloseTransfer(ctx context.Context, id int64, status domain.TransferStatus, progress *domain.Progress, at time.Time) (bool, error)
	SetStatus(ctx context.Context, packageID int64, status domain.DeliveryStatus) error
	ReplaceCourier(ctx context.Context, packageID, fromCourierID, toCourierID int64) error
	AssignCourier(ctx context.Context, packageID, courierID int64) error
	UpsertPackage(ctx context.Context, snap domain.PackageSnapshot) error
	SetPaid(ctx context.Context, packageID int64, paid bool) (bool, error)
	ExpiredOpenTransfers(ctx context.Context, before time.Time, limit int) ([]domain.TransferRecord, error)
}

// Runner runs fn within a single transaction.
type Runner interface {
	WithTx(ctx context.Context, fn func(tx Repository) error) error
}
