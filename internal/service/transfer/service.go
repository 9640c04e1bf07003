package transfer

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"ecodeli-delivery/internal/apperr"
	"ecodeli-delivery/internal/domain"
	"ecodeli-delivery/internal/logx"
	"ecodeli-delivery/internal/ports/transfertx"
)

const (
	maxCodeAttempts    = 5
	defaultExpiryBatch = 100
)

// Config tunes the transfer service.
type Config struct {
	OperationTimeout time.Duration
	// Expiry closes open transfers older than this. Zero keeps them open forever.
	Expiry      time.Duration
	ExpiryBatch int
	// PublishTimeout caps the post-commit wait for event delivery.
	PublishTimeout time.Duration
}

// InitiateCommand asks to hand a package from one courier to another.
type InitiateCommand struct {
	PackageID     int64
	FromCourierID int64
	ToCourierID   int64
	Drop          domain.DropAddress
}

// ConfirmCommand is the receiving courier's proof of handoff.
type ConfirmCommand struct {
	PackageID   int64
	ToCourierID int64
	Code        string
}

// Service runs the courier-to-courier handoff protocol.
type Service struct {
	repo    store
	codes   CodeGenerator
	policy  ProgressPolicy
	guard   Guard
	pub     Publisher
	metrics Metrics
	cfg     Config
	logger  logx.Logger
	now     func() time.Time
}

// NewService creates a new transfer Service. Nil collaborators fall back to no-ops.
func NewService(
	repo store,
	codes CodeGenerator,
	policy ProgressPolicy,
	guard Guard,
	pub Publisher,
	metrics Metrics,
	cfg Config,
	logger logx.Logger,
) *Service {
	if cfg.OperationTimeout <= 0 {
		cfg.OperationTimeout = 3 * time.Second
	}
	if cfg.ExpiryBatch <= 0 {
		cfg.ExpiryBatch = defaultExpiryBatch
	}
	if cfg.PublishTimeout <= 0 {
		cfg.PublishTimeout = DefaultPublishTimeout
	}
	if codes == nil {
		codes = NewRandomCodes(6)
	}
	if policy == nil {
		policy = DistanceProgress{}
	}
	if guard == nil {
		guard = openGuard{}
	}
	if pub == nil {
		pub = dropPublisher{}
	}
	if metrics == nil {
		metrics = nopMetrics{}
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{
		repo:    repo,
		codes:   codes,
		policy:  policy,
		guard:   guard,
		pub:     pub,
		metrics: metrics,
		cfg:     cfg,
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.cfg.OperationTimeout)
}

// Initiate opens a transfer and returns the record with its plaintext code.
func (s *Service) Initiate(ctx context.Context, cmd InitiateCommand) (domain.TransferRecord, error) {
	cmd.Drop = normalizeDrop(cmd.Drop)
	if err := validateInitiate(cmd); err != nil {
		return domain.TransferRecord{}, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var rec domain.TransferRecord
	err := s.repo.WithTx(ctx, func(tx transfertx.Repository) error {
		pkg, err := tx.LockPackage(ctx, cmd.PackageID)
		if err != nil {
			return err
		}
		if pkg == nil {
			return fmt.Errorf("package %d: %w", cmd.PackageID, apperr.ErrNotFound)
		}
		if !pkg.HasCourier(cmd.FromCourierID) {
			return fmt.Errorf("package %d is not assigned to courier %d: %w",
				cmd.PackageID, cmd.FromCourierID, apperr.ErrInvalidState)
		}
		switch pkg.DeliveryStatus {
		case domain.StatusTransferred:
			return fmt.Errorf("package %d is already being transferred: %w", cmd.PackageID, apperr.ErrInvalidState)
		case domain.StatusDelivered:
			return fmt.Errorf("package %d is delivered: %w", cmd.PackageID, apperr.ErrInvalidState)
		}

		target, err := tx.GetCourier(ctx, cmd.ToCourierID)
		if err != nil {
			return err
		}
		if target == nil || !target.Active() {
			return fmt.Errorf("courier %d cannot receive packages: %w", cmd.ToCourierID, apperr.ErrInvalidInput)
		}

		code, err := s.freshCode(ctx, tx)
		if err != nil {
			return err
		}

		rec = domain.TransferRecord{
			PackageID:     cmd.PackageID,
			FromCourierID: cmd.FromCourierID,
			ToCourierID:   cmd.ToCourierID,
			Drop:          cmd.Drop,
			TransferCode:  code,
		}
		if err := tx.InsertTransfer(ctx, &rec); err != nil {
			return err
		}
		return tx.SetStatus(ctx, cmd.PackageID, domain.StatusTransferred)
	})
	if err != nil {
		return domain.TransferRecord{}, err
	}

	s.metrics.Initiated()
	s.logger.Info("transfer initiated",
		logx.String("event", "transfer_initiated"),
		logx.Int64("package_id", rec.PackageID),
		logx.Int64("transfer_id", rec.ID),
		logx.Int64("from_courier_id", rec.FromCourierID),
		logx.Int64("to_courier_id", rec.ToCourierID),
	)
	s.publish(ctx, domain.Event{
		Kind:        domain.EventTransferInitiated,
		PackageID:   rec.PackageID,
		CourierID:   rec.FromCourierID,
		ToCourierID: rec.ToCourierID,
		Status:      domain.StatusTransferred,
		OccurredAt:  s.now(),
	})
	return rec, nil
}

func (s *Service) freshCode(ctx context.Context, tx transfertx.Repository) (string, error) {
	for i := 0; i < maxCodeAttempts; i++ {
		code, err := s.codes.Generate()
		if err != nil {
			return "", err
		}
		inUse, err := tx.TransferCodeInUse(ctx, code)
		if err != nil {
			return "", err
		}
		if !inUse {
			return code, nil
		}
	}
	return "", fmt.Errorf("no free transfer code after %d attempts: %w", maxCodeAttempts, apperr.ErrConflict)
}

// Confirm closes the open transfer of a package when the supplied code matches.
func (s *Service) Confirm(ctx context.Context, cmd ConfirmCommand) (domain.TransferRecord, error) {
	cmd.Code = strings.TrimSpace(cmd.Code)
	if cmd.PackageID <= 0 || cmd.ToCourierID <= 0 || cmd.Code == "" {
		return domain.TransferRecord{}, apperr.ErrInvalidInput
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	key := guardKey(cmd.PackageID, cmd.ToCourierID)
	locked, err := s.guard.Locked(ctx, key)
	if err != nil {
		s.logger.Warn("attempt guard unavailable", logx.String("key", key), logx.Err(err))
	}
	if locked {
		return domain.TransferRecord{}, apperr.ErrTooManyAttempts
	}

	var (
		rec        domain.TransferRecord
		routeShare *float64
	)
	err = s.repo.WithTx(ctx, func(tx transfertx.Repository) error {
		pkg, err := tx.LockPackage(ctx, cmd.PackageID)
		if err != nil {
			return err
		}
		if pkg == nil {
			return fmt.Errorf("package %d: %w", cmd.PackageID, apperr.ErrNotFound)
		}

		open, err := tx.OpenTransferForUpdate(ctx, cmd.PackageID)
		if err != nil {
			return err
		}
		if open == nil {
			last, err := tx.LatestTransfer(ctx, cmd.PackageID)
			if err != nil {
				return err
			}
			if last != nil {
				return fmt.Errorf("transfer %d is %s: %w", last.ID, last.Status, apperr.ErrInvalidState)
			}
			return fmt.Errorf("no transfer for package %d: %w", cmd.PackageID, apperr.ErrNotFound)
		}

		if open.ToCourierID != cmd.ToCourierID {
			return fmt.Errorf("transfer %d is addressed to another courier: %w", open.ID, apperr.ErrInvalidState)
		}
		if subtle.ConstantTimeCompare([]byte(open.TransferCode), []byte(cmd.Code)) != 1 {
			return apperr.ErrCodeMismatch
		}

		progress := s.policy.Compute(pkg, open)
		now := s.now()
		closed, err := tx.CloseTransfer(ctx, open.ID, domain.TransferConfirmed, &progress, now)
		if err != nil {
			return err
		}
		if !closed {
			return fmt.Errorf("transfer %d already closed: %w", open.ID, apperr.ErrInvalidState)
		}
		if err := tx.ReplaceCourier(ctx, cmd.PackageID, open.FromCourierID, open.ToCourierID); err != nil {
			return err
		}
		if err := tx.SetStatus(ctx, cmd.PackageID, domain.StatusInTransit); err != nil {
			return err
		}

		rec = *open
		rec.Status = domain.TransferConfirmed
		rec.ClosedAt = &now
		rec.Livreur1Progress = &progress.Livreur1
		rec.Livreur2Progress = &progress.Livreur2
		routeShare = progress.RouteShare
		return nil
	})
	if err != nil {
		if errors.Is(err, apperr.ErrCodeMismatch) {
			s.codeMismatch(ctx, key, cmd)
		}
		return domain.TransferRecord{}, err
	}

	if err := s.guard.Reset(ctx, key); err != nil {
		s.logger.Warn("attempt guard reset failed", logx.String("key", key), logx.Err(err))
	}
	s.metrics.Confirmed()
	fields := []logx.Field{
		logx.String("event", "transfer_confirmed"),
		logx.Int64("package_id", rec.PackageID),
		logx.Int64("transfer_id", rec.ID),
		logx.Int64("from_courier_id", rec.FromCourierID),
		logx.Int64("to_courier_id", rec.ToCourierID),
	}
	if routeShare != nil {
		fields = append(fields, logx.Any("route_share_pct", *routeShare))
	}
	s.logger.Info("transfer confirmed", fields...)
	s.publish(ctx, domain.Event{
		Kind:        domain.EventTransferConfirmed,
		PackageID:   rec.PackageID,
		CourierID:   rec.FromCourierID,
		ToCourierID: rec.ToCourierID,
		Status:      domain.StatusInTransit,
		OccurredAt:  *rec.ClosedAt,
	})
	return rec, nil
}

func (s *Service) codeMismatch(ctx context.Context, key string, cmd ConfirmCommand) {
	s.metrics.CodeMismatch()
	failures, err := s.guard.Fail(ctx, key)
	if err != nil {
		s.logger.Warn("attempt guard unavailable", logx.String("key", key), logx.Err(err))
	}
	s.logger.Warn("transfer code mismatch",
		logx.String("event", "transfer_code_mismatch"),
		logx.Int64("package_id", cmd.PackageID),
		logx.Int64("to_courier_id", cmd.ToCourierID),
		logx.Int64("failures", failures),
	)
}

// Progress returns the most recent transfer record of a package.
func (s *Service) Progress(ctx context.Context, packageID int64) (domain.TransferRecord, error) {
	if packageID <= 0 {
		return domain.TransferRecord{}, apperr.ErrInvalidInput
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rec, err := s.repo.LatestTransfer(ctx, packageID)
	if err != nil {
		return domain.TransferRecord{}, err
	}
	if rec == nil {
		return domain.TransferRecord{}, fmt.Errorf("no transfer for package %d: %w", packageID, apperr.ErrNotFound)
	}
	return *rec, nil
}

// ExpireStale closes open transfers older than the configured expiry and
// hands the package back to its original courier. Returns the number expired.
func (s *Service) ExpireStale(ctx context.Context) (int, error) {
	if s.cfg.Expiry <= 0 {
		return 0, nil
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	now := s.now()
	cutoff := now.Add(-s.cfg.Expiry)

	var stale []domain.TransferRecord
	err := s.repo.WithTx(ctx, func(tx transfertx.Repository) error {
		var err error
		stale, err = tx.ExpiredOpenTransfers(ctx, cutoff, s.cfg.ExpiryBatch)
		return err
	})
	if err != nil {
		return 0, err
	}

	expired := 0
	for _, candidate := range stale {
		ok, err := s.expireOne(ctx, candidate, cutoff, now)
		if err != nil {
			return expired, err
		}
		if !ok {
			continue
		}
		expired++
		s.logger.Info("transfer expired",
			logx.String("event", "transfer_expired"),
			logx.Int64("package_id", candidate.PackageID),
			logx.Int64("transfer_id", candidate.ID),
		)
		s.publish(ctx, domain.Event{
			Kind:        domain.EventTransferExpired,
			PackageID:   candidate.PackageID,
			CourierID:   candidate.FromCourierID,
			ToCourierID: candidate.ToCourierID,
			Status:      domain.StatusInTransit,
			OccurredAt:  now,
		})
	}
	return expired, nil
}

// expireOne re-checks the candidate under the package lock so a concurrent confirmation wins.
func (s *Service) expireOne(ctx context.Context, candidate domain.TransferRecord, cutoff, now time.Time) (bool, error) {
	expired := false
	err := s.repo.WithTx(ctx, func(tx transfertx.Repository) error {
		pkg, err := tx.LockPackage(ctx, candidate.PackageID)
		if err != nil || pkg == nil {
			return err
		}
		open, err := tx.OpenTransferForUpdate(ctx, candidate.PackageID)
		if err != nil {
			return err
		}
		if open == nil || open.ID != candidate.ID || !open.CreatedAt.Before(cutoff) {
			return nil
		}
		closed, err := tx.CloseTransfer(ctx, open.ID, domain.TransferExpired, nil, now)
		if err != nil || !closed {
			return err
		}
		if err := tx.SetStatus(ctx, open.PackageID, domain.StatusInTransit); err != nil {
			return err
		}
		expired = true
		return nil
	})
	return expired, err
}

func (s *Service) publish(ctx context.Context, e domain.Event) {
	if err := PublishDetached(ctx, s.pub, e, s.cfg.PublishTimeout); err != nil {
		s.logger.Error("event publish failed",
			logx.String("kind", string(e.Kind)),
			logx.Int64("package_id", e.PackageID),
			logx.Err(err),
		)
	}
}

func guardKey(packageID, courierID int64) string {
	return fmt.Sprintf("%d:%d", packageID, courierID)
}

func normalizeDrop(d domain.DropAddress) domain.DropAddress {
	d.Street = strings.TrimSpace(d.Street)
	d.PostalCode = strings.TrimSpace(d.PostalCode)
	d.City = strings.TrimSpace(d.City)
	return d
}

func validateInitiate(cmd InitiateCommand) error {
	switch {
	case cmd.PackageID <= 0, cmd.FromCourierID <= 0, cmd.ToCourierID <= 0:
		return apperr.ErrInvalidInput
	case cmd.FromCourierID == cmd.ToCourierID:
		return fmt.Errorf("cannot transfer to the same courier: %w", apperr.ErrInvalidInput)
	case cmd.Drop.Street == "" || cmd.Drop.PostalCode == "" || cmd.Drop.City == "":
		return fmt.Errorf("drop address is incomplete: %w", apperr.ErrInvalidInput)
	case cmd.Drop.Point != nil && !cmd.Drop.Point.Valid():
		return fmt.Errorf("drop coordinates out of range: %w", apperr.ErrInvalidInput)
	}
	return nil
}

type openGuard struct{}

func (openGuard) Locked(context.Context, string) (bool, error) { return false, nil }
func (openGuard) Fail(context.Context, string) (int64, error)  { return 0, nil }
func (openGuard) Reset(context.Context, string) error          { return nil }

type dropPublisher struct{}

func (dropPublisher) Publish(context.Context, domain.Event) error { return nil }

type nopMetrics struct{}

func (nopMetrics) Initiated()    {}
func (nopMetrics) Confirmed()    {}
func (nopMetrics) CodeMismatch() {}
