package intake

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ecodeli-delivery/internal/apperr"
	"ecodeli-delivery/internal/domain"
	"ecodeli-delivery/internal/logx"
	"ecodeli-delivery/internal/ports/transfertx"
)

// Processor applies package lifecycle events from the advertisement and payment services.
type Processor struct {
	repo     transfertx.Runner
	couriers CourierPort
	factory  *actionFactory
	timeout  time.Duration
	logger   logx.Logger
}

// NewProcessor creates a new Processor.
func NewProcessor(repo transfertx.Runner, couriers CourierPort, timeout time.Duration, logger logx.Logger) *Processor {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if logger == nil {
		logger = logx.Nop()
	}
	p := &Processor{repo: repo, couriers: couriers, timeout: timeout, logger: logger}
	p.factory = newActionFactory(p.onPackageCreated, p.onPackageAssigned, p.onPackagePaid, p.onCourierRegistered)
	return p
}

// Handle processes a single event. Unknown kinds are ignored.
func (p *Processor) Handle(ctx context.Context, e domain.IntakeEvent) error {
	fn, ok := p.factory.get(e.Kind)
	if !ok {
		p.logger.Debug("intake event ignored", logx.String("kind", string(e.Kind)))
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	return fn(ctx, e)
}

func (p *Processor) onPackageCreated(ctx context.Context, e domain.IntakeEvent) error {
	if e.Package == nil || e.Package.ID <= 0 {
		return fmt.Errorf("package.created without package: %w", apperr.ErrInvalidInput)
	}
	snap := *e.Package
	if snap.Quantity <= 0 {
		snap.Quantity = 1
	}
	return p.repo.WithTx(ctx, func(tx transfertx.Repository) error {
		return tx.UpsertPackage(ctx, snap)
	})
}

// onPackageAssigned adds the first courier. A package already past pickup keeps its status.
func (p *Processor) onPackageAssigned(ctx context.Context, e domain.IntakeEvent) error {
	if e.PackageID <= 0 || e.CourierID <= 0 {
		return fmt.Errorf("package.assigned without ids: %w", apperr.ErrInvalidInput)
	}
	return p.repo.WithTx(ctx, func(tx transfertx.Repository) error {
		pkg, err := tx.LockPackage(ctx, e.PackageID)
		if err != nil {
			return err
		}
		if pkg == nil {
			return fmt.Errorf("package %d: %w", e.PackageID, apperr.ErrNotFound)
		}
		if err := tx.AssignCourier(ctx, e.PackageID, e.CourierID); err != nil {
			return err
		}
		if pkg.DeliveryStatus != domain.StatusPending {
			return nil
		}
		return tx.SetStatus(ctx, e.PackageID, domain.StatusPickedUp)
	})
}

func (p *Processor) onPackagePaid(ctx context.Context, e domain.IntakeEvent) error {
	if e.PackageID <= 0 {
		return fmt.Errorf("package.paid without id: %w", apperr.ErrInvalidInput)
	}
	return p.repo.WithTx(ctx, func(tx transfertx.Repository) error {
		ok, err := tx.SetPaid(ctx, e.PackageID, e.Paid)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("package %d: %w", e.PackageID, apperr.ErrNotFound)
		}
		return nil
	})
}

func (p *Processor) onCourierRegistered(ctx context.Context, e domain.IntakeEvent) error {
	if e.Courier == nil {
		return fmt.Errorf("courier.registered without courier: %w", apperr.ErrInvalidInput)
	}
	err := p.couriers.Create(ctx, e.Courier)
	if errors.Is(err, apperr.ErrConflict) {
		return nil
	}
	return err
}
