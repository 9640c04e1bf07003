package memstore

import (
	"context"
	"fmt"
	"sort"

	"ecodeli-delivery/internal/apperr"
	"ecodeli-delivery/internal/domain"
)

// Couriers is the courier directory backed by the same store.
type Couriers struct {
	s *Store
}

// Couriers returns the directory view.
func (s *Store) Couriers() *Couriers { return &Couriers{s: s} }

// Get returns nil when the courier does not exist.
func (c *Couriers) Get(_ context.Context, id int64) (*domain.Courier, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	v, ok := c.s.st.couriers[id]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

// List returns couriers ordered by id.
func (c *Couriers) List(_ context.Context, limit, offset *int) ([]domain.Courier, error) {
	c.s.mu.Lock()
	out := make([]domain.Courier, 0, len(c.s.st.couriers))
	for _, v := range c.s.st.couriers {
		out = append(out, v)
	}
	c.s.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if offset != nil {
		out = out[min(*offset, len(out)):]
	}
	if limit != nil {
		out = out[:min(*limit, len(out))]
	}
	return out, nil
}

// Create inserts a courier with an explicit id.
func (c *Couriers) Create(_ context.Context, v *domain.Courier) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	if _, ok := c.s.st.couriers[v.ID]; ok {
		return fmt.Errorf("courier %d: %w", v.ID, apperr.ErrConflict)
	}
	c.s.st.couriers[v.ID] = *v
	return nil
}
