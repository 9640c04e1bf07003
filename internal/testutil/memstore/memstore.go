// Package memstore is an in-memory transactional store for service tests.
package memstore

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"sync"
	"time"

	"ecodeli-delivery/internal/apperr"
	"ecodeli-delivery/internal/domain"
	"ecodeli-delivery/internal/ports/transfertx"
)

type state struct {
	packages  map[int64]domain.Package
	couriers  map[int64]domain.Courier
	transfers []domain.TransferRecord
	nextID    int64
}

func (s state) clone() state {
	out := state{
		packages:  make(map[int64]domain.Package, len(s.packages)),
		couriers:  make(map[int64]domain.Courier, len(s.couriers)),
		transfers: make([]domain.TransferRecord, len(s.transfers)),
		nextID:    s.nextID,
	}
	for id, p := range s.packages {
		p.CourierIDs = slices.Clone(p.CourierIDs)
		out.packages[id] = p
	}
	for id, c := range s.couriers {
		out.couriers[id] = c
	}
	copy(out.transfers, s.transfers)
	return out
}

// Store serializes transactions with one mutex, which stands in for row locks.
type Store struct {
	mu  sync.Mutex
	st  state
	Now func() time.Time
}

// New returns an empty store.
func New() *Store {
	return &Store{
		st: state{
			packages: map[int64]domain.Package{},
			couriers: map[int64]domain.Courier{},
		},
		Now: func() time.Time { return time.Now().UTC() },
	}
}

// AddCourier seeds an active courier.
func (s *Store) AddCourier(id int64) {
	s.PutCourier(domain.Courier{ID: id, Name: fmt.Sprintf("courier-%d", id), Phone: fmt.Sprintf("+3360000%04d", id), Status: domain.CourierActive})
}

// PutCourier seeds a courier.
func (s *Store) PutCourier(c domain.Courier) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.couriers[c.ID] = c
}

// PutPackage seeds a package.
func (s *Store) PutPackage(p domain.Package) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.CourierIDs = slices.Clone(p.CourierIDs)
	s.st.packages[p.ID] = p
}

// PutTransfer seeds a transfer record and returns its id.
func (s *Store) PutTransfer(t domain.TransferRecord) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.nextID++
	t.ID = s.st.nextID
	s.st.transfers = append(s.st.transfers, t)
	return t.ID
}

// Package returns a committed package.
func (s *Store) Package(id int64) (domain.Package, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.st.packages[id]
	p.CourierIDs = slices.Clone(p.CourierIDs)
	return p, ok
}

// Transfers returns committed transfer records of a package, oldest first.
func (s *Store) Transfers(packageID int64) []domain.TransferRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.TransferRecord
	for _, t := range s.st.transfers {
		if t.PackageID == packageID {
			out = append(out, t)
		}
	}
	return out
}

// Get implements the package read side.
func (s *Store) Get(_ context.Context, id int64) (*domain.Package, error) {
	p, ok := s.Package(id)
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// ListAssignedTo implements the package read side.
func (s *Store) ListAssignedTo(_ context.Context, courierID int64) ([]domain.Package, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Package, 0)
	for _, p := range s.st.packages {
		if p.HasCourier(courierID) {
			p.CourierIDs = slices.Clone(p.CourierIDs)
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ListPendingTransfersFor implements the package read side.
func (s *Store) ListPendingTransfersFor(_ context.Context, courierID int64) ([]domain.Package, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Package, 0)
	for _, t := range s.st.transfers {
		if t.Open() && t.ToCourierID == courierID {
			p := s.st.packages[t.PackageID]
			p.CourierIDs = slices.Clone(p.CourierIDs)
			out = append(out, p)
		}
	}
	return out, nil
}

// LatestTransfer implements the package read side.
func (s *Store) LatestTransfer(_ context.Context, packageID int64) (*domain.TransferRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return latest(s.st, packageID), nil
}

// WithTx runs fn against a copy of the state and commits it when fn succeeds.
func (s *Store) WithTx(ctx context.Context, fn func(tx transfertx.Repository) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	tx := &txView{st: s.st.clone(), now: s.Now}
	if err := fn(tx); err != nil {
		return err
	}
	s.st = tx.st
	return nil
}

func latest(st state, packageID int64) *domain.TransferRecord {
	for i := len(st.transfers) - 1; i >= 0; i-- {
		if st.transfers[i].PackageID == packageID {
			t := st.transfers[i]
			return &t
		}
	}
	return nil
}

type txView struct {
	st  state
	now func() time.Time
}

var _ transfertx.Repository = (*txView)(nil)

func (t *txView) LockPackage(_ context.Context, id int64) (*domain.Package, error) {
	p, ok := t.st.packages[id]
	if !ok {
		return nil, nil
	}
	p.CourierIDs = slices.Clone(p.CourierIDs)
	return &p, nil
}

func (t *txView) GetCourier(_ context.Context, id int64) (*domain.Courier, error) {
	c, ok := t.st.couriers[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (t *txView) OpenTransferForUpdate(_ context.Context, packageID int64) (*domain.TransferRecord, error) {
	for _, r := range t.st.transfers {
		if r.PackageID == packageID && r.Open() {
			return &r, nil
		}
	}
	return nil, nil
}

func (t *txView) LatestTransfer(_ context.Context, packageID int64) (*domain.TransferRecord, error) {
	return latest(t.st, packageID), nil
}

func (t *txView) TransferCodeInUse(_ context.Context, code string) (bool, error) {
	for _, r := range t.st.transfers {
		if r.Open() && r.TransferCode == code {
			return true, nil
		}
	}
	return false, nil
}

func (t *txView) InsertTransfer(_ context.Context, rec *domain.TransferRecord) error {
	for _, r := range t.st.transfers {
		if !r.Open() {
			continue
		}
		if r.PackageID == rec.PackageID {
			return fmt.Errorf("package %d already has an open transfer: %w", rec.PackageID, apperr.ErrInvalidState)
		}
		if r.TransferCode == rec.TransferCode {
			return fmt.Errorf("transfer code collision: %w", apperr.ErrConflict)
		}
	}
	t.st.nextID++
	rec.ID = t.st.nextID
	rec.Status = domain.TransferOpen
	rec.CreatedAt = t.now()
	t.st.transfers = append(t.st.transfers, *rec)
	return nil
}

func (t *txView) CloseTransfer(_ context.Context, id int64, status domain.TransferStatus, progress *domain.Progress, at time.Time) (bool, error) {
	for i := range t.st.transfers {
		r := &t.st.transfers[i]
		if r.ID != id {
			continue
		}
		if !r.Open() {
			return false, nil
		}
		r.Status = status
		closedAt := at
		r.ClosedAt = &closedAt
		if progress != nil {
			l1, l2 := progress.Livreur1, progress.Livreur2
			r.Livreur1Progress, r.Livreur2Progress = &l1, &l2
		}
		return true, nil
	}
	return false, nil
}

func (t *txView) SetStatus(_ context.Context, packageID int64, status domain.DeliveryStatus) error {
	p, ok := t.st.packages[packageID]
	if !ok {
		return fmt.Errorf("package %d: %w", packageID, apperr.ErrNotFound)
	}
	p.DeliveryStatus = status
	t.st.packages[packageID] = p
	return nil
}

func (t *txView) ReplaceCourier(ctx context.Context, packageID, fromCourierID, toCourierID int64) error {
	p, ok := t.st.packages[packageID]
	if !ok {
		return fmt.Errorf("package %d: %w", packageID, apperr.ErrNotFound)
	}
	p.CourierIDs = slices.DeleteFunc(p.CourierIDs, func(id int64) bool { return id == fromCourierID })
	t.st.packages[packageID] = p
	return t.AssignCourier(ctx, packageID, toCourierID)
}

func (t *txView) AssignCourier(_ context.Context, packageID, courierID int64) error {
	p, ok := t.st.packages[packageID]
	if !ok {
		return fmt.Errorf("package %d: %w", packageID, apperr.ErrNotFound)
	}
	if _, ok := t.st.couriers[courierID]; !ok {
		return fmt.Errorf("courier %d: %w", courierID, apperr.ErrNotFound)
	}
	if !p.HasCourier(courierID) {
		p.CourierIDs = append(p.CourierIDs, courierID)
	}
	t.st.packages[packageID] = p
	return nil
}

func (t *txView) UpsertPackage(_ context.Context, snap domain.PackageSnapshot) error {
	p, ok := t.st.packages[snap.ID]
	if !ok {
		p = domain.Package{ID: snap.ID, DeliveryStatus: domain.StatusPending, CreatedAt: t.now()}
	}
	p.Name = snap.Name
	p.Weight, p.Length, p.Width, p.Height = snap.Weight, snap.Length, snap.Width, snap.Height
	p.Quantity = snap.Quantity
	p.Prioritaire = snap.Prioritaire
	p.AdvertisementID = snap.AdvertisementID
	p.Origin, p.Destination = snap.Origin, snap.Destination
	p.UpdatedAt = t.now()
	t.st.packages[snap.ID] = p
	return nil
}

func (t *txView) SetPaid(_ context.Context, packageID int64, paid bool) (bool, error) {
	p, ok := t.st.packages[packageID]
	if !ok {
		return false, nil
	}
	p.IsPaid = paid
	t.st.packages[packageID] = p
	return true, nil
}

func (t *txView) ExpiredOpenTransfers(_ context.Context, before time.Time, limit int) ([]domain.TransferRecord, error) {
	var out []domain.TransferRecord
	for _, r := range t.st.transfers {
		if len(out) >= limit {
			break
		}
		if r.Open() && r.CreatedAt.Before(before) {
			out = append(out, r)
		}
	}
	return out, nil
}
