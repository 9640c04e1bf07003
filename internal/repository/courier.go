package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"ecodeli-delivery/internal/apperr"
	"ecodeli-delivery/internal/domain"
)

// CourierRepo represents courier repository.
type CourierRepo struct{ db *pgxpool.Pool }

// NewCourierRepo creates a new CourierRepo.
func NewCourierRepo(db *pgxpool.Pool) *CourierRepo { return &CourierRepo{db: db} }

// Get - returns courier by its ID.
func (r *CourierRepo) Get(ctx context.Context, id int64) (*domain.Courier, error) {
	return getCourier(ctx, r.db, id)
}

func getCourier(ctx context.Context, q querier, id int64) (*domain.Courier, error) {
	var (
		c      domain.Courier
		status string
	)
	err := q.QueryRow(ctx,
		`SELECT id, name, phone, status FROM couriers WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.Phone, &status)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get courier %d: %w", id, err)
	}
	c.Status = domain.CourierStatus(status)
	return &c, nil
}

// List returns couriers ordered by id. If limit/offset are nil, returns the full list.
func (r *CourierRepo) List(ctx context.Context, limit, offset *int) ([]domain.Courier, error) {
	q := `SELECT id, name, phone, status FROM couriers ORDER BY id`
	args := make([]any, 0, 2)
	if limit != nil {
		q += fmt.Sprintf(" LIMIT $%d", len(args)+1)
		args = append(args, *limit)
	}
	if offset != nil {
		q += fmt.Sprintf(" OFFSET $%d", len(args)+1)
		args = append(args, *offset)
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list couriers: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Courier, 0)
	for rows.Next() {
		var (
			c      domain.Courier
			status string
		)
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &status); err != nil {
			return nil, fmt.Errorf("scan courier: %w", err)
		}
		c.Status = domain.CourierStatus(status)
		out = append(out, c)
	}
	return out, rows.Err()
}

// Create - creates a courier with an explicit id; an existing id is left untouched.
func (r *CourierRepo) Create(ctx context.Context, c *domain.Courier) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO couriers (id, name, phone, status) VALUES ($1, $2, $3, $4)
        ON CONFLICT (id) DO NOTHING`,
		c.ID, c.Name, c.Phone, string(c.Status))
	if err != nil {
		if IsDuplicate(err) {
			return apperr.ErrConflict
		}
		return fmt.Errorf("create courier %d: %w", c.ID, err)
	}
	return nil
}
