package delivery

import (
	"context"
	"fmt"
	"time"

	"ecodeli-delivery/internal/apperr"
	"ecodeli-delivery/internal/domain"
	"ecodeli-delivery/internal/logx"
	"ecodeli-delivery/internal/ports/transfertx"
	"ecodeli-delivery/internal/service/transfer"
)

// TransferTarget is required when a status update hands the package over.
type TransferTarget struct {
	ToCourierID int64
	Drop        domain.DropAddress
}

// UpdateStatusCommand is a courier's request to move a package forward.
type UpdateStatusCommand struct {
	PackageID int64
	CourierID int64
	Status    domain.DeliveryStatus
	Transfer  *TransferTarget
}

// UpdateStatusResult carries the new status and, for handoffs, the opened transfer.
type UpdateStatusResult struct {
	PackageID int64
	Status    domain.DeliveryStatus
	Transfer  *domain.TransferRecord
}

// Service is the delivery status controller used by courier clients.
type Service struct {
	repo             packageRepository
	transfers        Initiator
	pub              Publisher
	operationTimeout time.Duration
	publishTimeout   time.Duration
	logger           logx.Logger
	now              func() time.Time
}

// NewDeliveryService - creates a new delivery Service.
func NewDeliveryService(r packageRepository, transfers Initiator, pub Publisher, timeout time.Duration, logger logx.Logger) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{
		repo:             r,
		transfers:        transfers,
		pub:              pub,
		operationTimeout: timeout,
		publishTimeout:   transfer.DefaultPublishTimeout,
		logger:           logger,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

// WithPublishTimeout caps the post-commit wait for status events.
func (s *Service) WithPublishTimeout(d time.Duration) *Service {
	if d > 0 {
		s.publishTimeout = d
	}
	return s
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// UpdateStatus writes a courier-requested status. "transféré" opens a transfer instead.
func (s *Service) UpdateStatus(ctx context.Context, cmd UpdateStatusCommand) (UpdateStatusResult, error) {
	if cmd.PackageID <= 0 || cmd.CourierID <= 0 || !cmd.Status.CourierSettable() {
		return UpdateStatusResult{}, apperr.ErrInvalidInput
	}

	if cmd.Status == domain.StatusTransferred {
		return s.handOver(ctx, cmd)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	changed := false
	err := s.repo.WithTx(ctx, func(tx transfertx.Repository) error {
		pkg, err := tx.LockPackage(ctx, cmd.PackageID)
		if err != nil {
			return err
		}
		if pkg == nil {
			return fmt.Errorf("package %d: %w", cmd.PackageID, apperr.ErrNotFound)
		}
		if !pkg.HasCourier(cmd.CourierID) {
			return fmt.Errorf("courier %d is not assigned to package %d: %w", cmd.CourierID, cmd.PackageID, apperr.ErrForbidden)
		}
		switch {
		case pkg.DeliveryStatus == cmd.Status:
			return nil
		case pkg.DeliveryStatus == domain.StatusTransferred:
			return fmt.Errorf("package %d awaits transfer confirmation: %w", cmd.PackageID, apperr.ErrInvalidState)
		case pkg.DeliveryStatus.Terminal():
			return fmt.Errorf("package %d is delivered: %w", cmd.PackageID, apperr.ErrInvalidState)
		}
		changed = true
		return tx.SetStatus(ctx, cmd.PackageID, cmd.Status)
	})
	if err != nil {
		return UpdateStatusResult{}, err
	}

	if changed {
		s.logger.Info("package status changed",
			logx.String("event", "package_status_changed"),
			logx.Int64("package_id", cmd.PackageID),
			logx.Int64("courier_id", cmd.CourierID),
			logx.String("status", string(cmd.Status)),
		)
		s.publish(ctx, domain.Event{
			Kind:       domain.EventStatusChanged,
			PackageID:  cmd.PackageID,
			CourierID:  cmd.CourierID,
			Status:     cmd.Status,
			OccurredAt: s.now(),
		})
	}
	return UpdateStatusResult{PackageID: cmd.PackageID, Status: cmd.Status}, nil
}

func (s *Service) handOver(ctx context.Context, cmd UpdateStatusCommand) (UpdateStatusResult, error) {
	if cmd.Transfer == nil {
		return UpdateStatusResult{}, fmt.Errorf("transfer target is required: %w", apperr.ErrInvalidInput)
	}
	rec, err := s.transfers.Initiate(ctx, transfer.InitiateCommand{
		PackageID:     cmd.PackageID,
		FromCourierID: cmd.CourierID,
		ToCourierID:   cmd.Transfer.ToCourierID,
		Drop:          cmd.Transfer.Drop,
	})
	if err != nil {
		return UpdateStatusResult{}, err
	}
	return UpdateStatusResult{PackageID: cmd.PackageID, Status: domain.StatusTransferred, Transfer: &rec}, nil
}

// MyDeliveries lists packages currently assigned to the courier.
func (s *Service) MyDeliveries(ctx context.Context, courierID int64) ([]domain.Package, error) {
	if courierID <= 0 {
		return nil, apperr.ErrInvalidInput
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.ListAssignedTo(ctx, courierID)
}

// PendingTransfers lists packages with an open transfer addressed to the courier.
func (s *Service) PendingTransfers(ctx context.Context, courierID int64) ([]domain.Package, error) {
	if courierID <= 0 {
		return nil, apperr.ErrInvalidInput
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.ListPendingTransfersFor(ctx, courierID)
}

func (s *Service) publish(ctx context.Context, e domain.Event) {
	if s.pub == nil {
		return
	}
	if err := transfer.PublishDetached(ctx, s.pub, e, s.publishTimeout); err != nil {
		s.logger.Error("event publish failed",
			logx.String("kind", string(e.Kind)),
			logx.Int64("package_id", e.PackageID),
			logx.Err(err),
		)
	}
}
