package courier

import (
	"context"
	"strings"
	"time"

	"ecodeli-delivery/internal/apperr"
	"ecodeli-delivery/internal/domain"
)

// Service is the read-mostly courier directory. Couriers are registered by the account service.
type Service struct {
	repo             courierRepository
	operationTimeout time.Duration
}

// NewService creates and configures a courier Service.
func NewService(r courierRepository, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{repo: r, operationTimeout: timeout}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// validateCreate normalizes and validates a courier for creation.
func validateCreate(c *domain.Courier) error {
	if c == nil || c.ID <= 0 {
		return apperr.ErrInvalidInput
	}
	c.Name = strings.TrimSpace(c.Name)
	c.Phone = strings.TrimSpace(c.Phone)
	if c.Name == "" || !domain.ValidatePhone(c.Phone) {
		return apperr.ErrInvalidInput
	}
	if c.Status == "" {
		c.Status = domain.CourierActive
	}
	if !c.Status.Valid() {
		return apperr.ErrInvalidInput
	}
	return nil
}

// Get retrieves a courier by its ID.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Courier, error) {
	if id <= 0 {
		return nil, apperr.ErrInvalidInput
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperr.ErrNotFound
	}
	return c, nil
}

// List returns couriers with optional pagination
func (s *Service) List(ctx context.Context, limit, offset *int) ([]domain.Courier, error) {
	if (limit != nil && *limit < 0) || (offset != nil && *offset < 0) {
		return nil, apperr.ErrInvalidInput
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.List(ctx, limit, offset)
}

// Create registers a courier under the id issued by the account service.
func (s *Service) Create(ctx context.Context, c *domain.Courier) error {
	if err := validateCreate(c); err != nil {
		return err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.Create(ctx, c)
}
