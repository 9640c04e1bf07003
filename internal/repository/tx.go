package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"ecodeli-delivery/internal/apperr"
	"ecodeli-delivery/internal/domain"
	"ecodeli-delivery/internal/ports/transfertx"
)

// TxRepo represents transaction repository.
type TxRepo struct {
	tx pgx.Tx
}

var _ transfertx.Repository = (*TxRepo)(nil)

// LockPackage - select the package row for update together with its couriers.
func (r *TxRepo) LockPackage(ctx context.Context, id int64) (*domain.Package, error) {
	row := r.tx.QueryRow(ctx, `SELECT `+packageColumns+` FROM packages p WHERE p.id = $1 FOR UPDATE`, id)
	p, err := scanPackage(row)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("lock package %d: %w", id, err)
	}

	rows, err := r.tx.Query(ctx, `
        SELECT courier_id FROM package_couriers
        WHERE package_id = $1
        ORDER BY assigned_at, courier_id`, id)
	if err != nil {
		return nil, fmt.Errorf("load couriers of package %d: %w", id, err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("load couriers of package %d: %w", id, err)
	}
	p.CourierIDs = ids
	return p, nil
}

// GetCourier - get courier by id, nil when absent.
func (r *TxRepo) GetCourier(ctx context.Context, id int64) (*domain.Courier, error) {
	return getCourier(ctx, r.tx, id)
}

// OpenTransferForUpdate - the open record of a package, locked.
func (r *TxRepo) OpenTransferForUpdate(ctx context.Context, packageID int64) (*domain.TransferRecord, error) {
	row := r.tx.QueryRow(ctx, `SELECT `+transferColumns+`
        FROM transfer_records t
        WHERE t.package_id = $1 AND t.status = 'open'
        FOR UPDATE`, packageID)
	t, err := scanTransfer(row)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open transfer of package %d: %w", packageID, err)
	}
	return t, nil
}

// LatestTransfer - most recent record of a package.
func (r *TxRepo) LatestTransfer(ctx context.Context, packageID int64) (*domain.TransferRecord, error) {
	return latestTransfer(ctx, r.tx, packageID)
}

// TransferCodeInUse - whether an open record already carries the code.
func (r *TxRepo) TransferCodeInUse(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.tx.QueryRow(ctx, `
        SELECT EXISTS (SELECT 1 FROM transfer_records WHERE transfer_code = $1 AND status = 'open')`,
		code).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check transfer code: %w", err)
	}
	return exists, nil
}

// InsertTransfer - insert an open transfer record.
func (r *TxRepo) InsertTransfer(ctx context.Context, t *domain.TransferRecord) error {
	lat, lon := latLon(t.Drop.Point)
	err := r.tx.QueryRow(ctx, `
        INSERT INTO transfer_records
            (package_id, from_courier_id, to_courier_id, address, postal_code, city,
             drop_lat, drop_lon, transfer_code, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 'open')
        RETURNING id, created_at`,
		t.PackageID, t.FromCourierID, t.ToCourierID, t.Drop.Street, t.Drop.PostalCode, t.Drop.City,
		lat, lon, t.TransferCode,
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		switch violatedConstraint(err) {
		case openPackageIndex:
			return fmt.Errorf("package %d already has an open transfer: %w", t.PackageID, apperr.ErrInvalidState)
		case openCodeIndex:
			return fmt.Errorf("transfer code collision: %w", apperr.ErrConflict)
		}
		return fmt.Errorf("insert transfer: %w", err)
	}
	t.Status = domain.TransferOpen
	return nil
}

// CloseTransfer - compare-and-set an open record to a closed status.
func (r *TxRepo) CloseTransfer(
	ctx context.Context,
	id int64,
	status domain.TransferStatus,
	progress *domain.Progress,
	at time.Time,
) (bool, error) {
	var l1, l2 *float64
	if progress != nil {
		l1, l2 = &progress.Livreur1, &progress.Livreur2
	}
	ct, err := r.tx.Exec(ctx, `
        UPDATE transfer_records
        SET status = $2, closed_at = $3, livreur1_progress = $4, livreur2_progress = $5
        WHERE id = $1 AND status = 'open'`,
		id, string(status), at, l1, l2)
	if err != nil {
		return false, fmt.Errorf("close transfer %d: %w", id, err)
	}
	return ct.RowsAffected() > 0, nil
}

// SetStatus - update the package delivery status.
func (r *TxRepo) SetStatus(ctx context.Context, packageID int64, status domain.DeliveryStatus) error {
	ct, err := r.tx.Exec(ctx, `
        UPDATE packages SET delivery_status = $2, updated_at = now() WHERE id = $1`,
		packageID, string(status))
	if err != nil {
		return fmt.Errorf("update package status %d: %w", packageID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("package %d: %w", packageID, apperr.ErrNotFound)
	}
	return nil
}

// ReplaceCourier - hand the package from one courier to another.
func (r *TxRepo) ReplaceCourier(ctx context.Context, packageID, fromCourierID, toCourierID int64) error {
	if _, err := r.tx.Exec(ctx, `
        DELETE FROM package_couriers WHERE package_id = $1 AND courier_id = $2`,
		packageID, fromCourierID); err != nil {
		return fmt.Errorf("remove courier %d from package %d: %w", fromCourierID, packageID, err)
	}
	return r.AssignCourier(ctx, packageID, toCourierID)
}

// AssignCourier - add a courier to the package, idempotent.
func (r *TxRepo) AssignCourier(ctx context.Context, packageID, courierID int64) error {
	_, err := r.tx.Exec(ctx, `
        INSERT INTO package_couriers (package_id, courier_id) VALUES ($1, $2)
        ON CONFLICT (package_id, courier_id) DO NOTHING`,
		packageID, courierID)
	if err != nil {
		if IsForeignKey(err) {
			return fmt.Errorf("assign courier %d to package %d: %w", courierID, packageID, apperr.ErrNotFound)
		}
		return fmt.Errorf("assign courier %d to package %d: %w", courierID, packageID, err)
	}
	return nil
}

// UpsertPackage - create a package or refresh its descriptive attributes. Status is left untouched.
func (r *TxRepo) UpsertPackage(ctx context.Context, s domain.PackageSnapshot) error {
	oLat, oLon := latLon(s.Origin)
	dLat, dLon := latLon(s.Destination)
	_, err := r.tx.Exec(ctx, `
        INSERT INTO packages
            (id, name, weight, length, width, height, quantity, prioritaire, advertisement_id,
             origin_lat, origin_lon, dest_lat, dest_lon, delivery_status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
        ON CONFLICT (id) DO UPDATE SET
            name = EXCLUDED.name,
            weight = EXCLUDED.weight,
            length = EXCLUDED.length,
            width = EXCLUDED.width,
            height = EXCLUDED.height,
            quantity = EXCLUDED.quantity,
            prioritaire = EXCLUDED.prioritaire,
            advertisement_id = EXCLUDED.advertisement_id,
            origin_lat = EXCLUDED.origin_lat,
            origin_lon = EXCLUDED.origin_lon,
            dest_lat = EXCLUDED.dest_lat,
            dest_lon = EXCLUDED.dest_lon,
            updated_at = now()`,
		s.ID, s.Name, s.Weight, s.Length, s.Width, s.Height, s.Quantity, s.Prioritaire, s.AdvertisementID,
		oLat, oLon, dLat, dLon, string(domain.StatusPending))
	if err != nil {
		return fmt.Errorf("upsert package %d: %w", s.ID, err)
	}
	return nil
}

// SetPaid - update the payment flag; false when the package is unknown.
func (r *TxRepo) SetPaid(ctx context.Context, packageID int64, paid bool) (bool, error) {
	ct, err := r.tx.Exec(ctx, `
        UPDATE packages SET is_paid = $2, updated_at = now() WHERE id = $1`, packageID, paid)
	if err != nil {
		return false, fmt.Errorf("set paid on package %d: %w", packageID, err)
	}
	return ct.RowsAffected() > 0, nil
}

// ExpiredOpenTransfers - open records created before the cutoff, locked and skipping rows held elsewhere.
func (r *TxRepo) ExpiredOpenTransfers(ctx context.Context, before time.Time, limit int) ([]domain.TransferRecord, error) {
	rows, err := r.tx.Query(ctx, `SELECT `+transferColumns+`
        FROM transfer_records t
        WHERE t.status = 'open' AND t.created_at < $1
        ORDER BY t.id
        LIMIT $2
        FOR UPDATE SKIP LOCKED`, before, limit)
	if err != nil {
		return nil, fmt.Errorf("expired transfers: %w", err)
	}
	defer rows.Close()

	var out []domain.TransferRecord
	for rows.Next() {
		t, err := scanTransfer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transfer: %w", err)
		}
		out = append(out, *t)
	}
	return out, rows.Err()
}
