package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ecodeli-delivery/internal/domain"
	"ecodeli-delivery/internal/ports/transfertx"
)

// PackageRepo represents the package and transfer record store.
type PackageRepo struct {
	db *pgxpool.Pool
}

// NewPackageRepo creates a new PackageRepo.
func NewPackageRepo(db *pgxpool.Pool) *PackageRepo {
	return &PackageRepo{db: db}
}

// WithTx opens a transaction and executes fn within it.
func (r *PackageRepo) WithTx(ctx context.Context, fn func(tx transfertx.Repository) error) (err error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	// rollback on panic, then re-panic
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
	}()

	if err := fn(&TxRepo{tx: tx}); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback tx: %w (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// Get returns the package with its courier set, or nil when absent.
func (r *PackageRepo) Get(ctx context.Context, id int64) (*domain.Package, error) {
	row := r.db.QueryRow(ctx, `SELECT `+packageColumns+`, `+courierIDsColumn+`
        FROM packages p WHERE p.id = $1`, id)
	p, err := scanPackageWithCouriers(row)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get package %d: %w", id, err)
	}
	return p, nil
}

// ListAssignedTo returns packages whose courier set contains courierID.
func (r *PackageRepo) ListAssignedTo(ctx context.Context, courierID int64) ([]domain.Package, error) {
	return r.list(ctx, `SELECT `+packageColumns+`, `+courierIDsColumn+`
        FROM packages p
        WHERE EXISTS (SELECT 1 FROM package_couriers pc WHERE pc.package_id = p.id AND pc.courier_id = $1)
        ORDER BY p.prioritaire DESC, p.id`, courierID)
}

// ListPendingTransfersFor returns packages with an open transfer addressed to courierID.
func (r *PackageRepo) ListPendingTransfersFor(ctx context.Context, courierID int64) ([]domain.Package, error) {
	return r.list(ctx, `SELECT `+packageColumns+`, `+courierIDsColumn+`
        FROM packages p
        JOIN transfer_records t ON t.package_id = p.id AND t.status = 'open'
        WHERE t.to_courier_id = $1
        ORDER BY t.created_at, p.id`, courierID)
}

// LatestTransfer returns the most recent transfer record of a package, or nil.
func (r *PackageRepo) LatestTransfer(ctx context.Context, packageID int64) (*domain.TransferRecord, error) {
	return latestTransfer(ctx, r.db, packageID)
}

func (r *PackageRepo) list(ctx context.Context, q string, args ...any) ([]domain.Package, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list packages: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Package, 0)
	for rows.Next() {
		p, err := scanPackageWithCouriers(rows)
		if err != nil {
			return nil, fmt.Errorf("scan package: %w", err)
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list packages: %w", err)
	}
	return out, nil
}

type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func latestTransfer(ctx context.Context, q querier, packageID int64) (*domain.TransferRecord, error) {
	row := q.QueryRow(ctx, `SELECT `+transferColumns+`
        FROM transfer_records t WHERE t.package_id = $1
        ORDER BY t.id DESC LIMIT 1`, packageID)
	t, err := scanTransfer(row)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("latest transfer of package %d: %w", packageID, err)
	}
	return t, nil
}
