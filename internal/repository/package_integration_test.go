//go:build integration

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"ecodeli-delivery/internal/apperr"
	"ecodeli-delivery/internal/domain"
	"ecodeli-delivery/internal/ports/transfertx"
	"ecodeli-delivery/internal/repository"
)

type PackageRepoSuite struct {
	suite.Suite
	ctx      context.Context
	packages *repository.PackageRepo
	couriers *repository.CourierRepo
}

func TestPackageRepoSuite(t *testing.T) {
	suite.Run(t, new(PackageRepoSuite))
}

func (s *PackageRepoSuite) SetupTest() {
	truncateAll(s.T())
	s.ctx = context.Background()
	s.packages = repository.NewPackageRepo(tcPool)
	s.couriers = repository.NewCourierRepo(tcPool)

	for _, c := range []domain.Courier{
		{ID: 1, Name: "Alice", Phone: "+33600000001", Status: domain.CourierActive},
		{ID: 2, Name: "Bob", Phone: "+33600000002", Status: domain.CourierActive},
		{ID: 3, Name: "Carl", Phone: "+33600000003", Status: domain.CourierSuspended},
	} {
		c := c
		s.Require().NoError(s.couriers.Create(s.ctx, &c))
	}

	s.Require().NoError(s.packages.WithTx(s.ctx, func(tx transfertx.Repository) error {
		if err := tx.UpsertPackage(s.ctx, domain.PackageSnapshot{
			ID:          10,
			Name:        "box",
			Weight:      2.5,
			Quantity:    1,
			Origin:      &domain.GeoPoint{Lat: 48.85, Lon: 2.35},
			Destination: &domain.GeoPoint{Lat: 45.76, Lon: 4.83},
		}); err != nil {
			return err
		}
		return tx.AssignCourier(s.ctx, 10, 1)
	}))
}

func (s *PackageRepoSuite) openTransfer(code string) *domain.TransferRecord {
	rec := &domain.TransferRecord{
		PackageID:     10,
		FromCourierID: 1,
		ToCourierID:   2,
		Drop:          domain.DropAddress{Street: "1 rue A", PostalCode: "75001", City: "Paris"},
		TransferCode:  code,
	}
	s.Require().NoError(s.packages.WithTx(s.ctx, func(tx transfertx.Repository) error {
		return tx.InsertTransfer(s.ctx, rec)
	}))
	return rec
}

func (s *PackageRepoSuite) TestGetAndAssigned() {
	p, err := s.packages.Get(s.ctx, 10)
	s.Require().NoError(err)
	s.Require().NotNil(p)
	s.Equal(domain.StatusPending, p.DeliveryStatus)
	s.Equal([]int64{1}, p.CourierIDs)
	s.Require().NotNil(p.Destination)
	s.InDelta(45.76, p.Destination.Lat, 1e-9)

	missing, err := s.packages.Get(s.ctx, 999)
	s.Require().NoError(err)
	s.Nil(missing)

	list, err := s.packages.ListAssignedTo(s.ctx, 1)
	s.Require().NoError(err)
	s.Len(list, 1)

	list, err = s.packages.ListAssignedTo(s.ctx, 2)
	s.Require().NoError(err)
	s.Empty(list)
}

func (s *PackageRepoSuite) TestUpsertKeepsStatus() {
	s.Require().NoError(s.packages.WithTx(s.ctx, func(tx transfertx.Repository) error {
		if err := tx.SetStatus(s.ctx, 10, domain.StatusInTransit); err != nil {
			return err
		}
		return tx.UpsertPackage(s.ctx, domain.PackageSnapshot{ID: 10, Name: "renamed", Quantity: 2})
	}))

	p, err := s.packages.Get(s.ctx, 10)
	s.Require().NoError(err)
	s.Equal("renamed", p.Name)
	s.Equal(domain.StatusInTransit, p.DeliveryStatus)
	s.Nil(p.Origin)
}

func (s *PackageRepoSuite) TestOpenTransferUniquePerPackage() {
	rec := s.openTransfer("ABC123")
	s.NotZero(rec.ID)
	s.Equal(domain.TransferOpen, rec.Status)

	err := s.packages.WithTx(s.ctx, func(tx transfertx.Repository) error {
		return tx.InsertTransfer(s.ctx, &domain.TransferRecord{
			PackageID: 10, FromCourierID: 1, ToCourierID: 2,
			Drop:         domain.DropAddress{Street: "x", PostalCode: "1", City: "y"},
			TransferCode: "XYZ789",
		})
	})
	s.Require().Error(err)
	s.True(errors.Is(err, apperr.ErrInvalidState))

	pending, err := s.packages.ListPendingTransfersFor(s.ctx, 2)
	s.Require().NoError(err)
	s.Require().Len(pending, 1)
	s.Equal(int64(10), pending[0].ID)
}

func (s *PackageRepoSuite) TestCloseTransferIsCompareAndSet() {
	rec := s.openTransfer("ABC123")

	var first, second bool
	s.Require().NoError(s.packages.WithTx(s.ctx, func(tx transfertx.Repository) error {
		open, err := tx.OpenTransferForUpdate(s.ctx, 10)
		if err != nil {
			return err
		}
		s.Require().NotNil(open)
		s.Equal(rec.ID, open.ID)

		first, err = tx.CloseTransfer(s.ctx, rec.ID, domain.TransferConfirmed,
			&domain.Progress{Livreur1: 40, Livreur2: 60}, time.Now())
		if err != nil {
			return err
		}
		second, err = tx.CloseTransfer(s.ctx, rec.ID, domain.TransferConfirmed, nil, time.Now())
		if err != nil {
			return err
		}
		return tx.ReplaceCourier(s.ctx, 10, 1, 2)
	}))
	s.True(first)
	s.False(second)

	latest, err := s.packages.LatestTransfer(s.ctx, 10)
	s.Require().NoError(err)
	s.Require().NotNil(latest)
	s.Equal(domain.TransferConfirmed, latest.Status)
	s.Require().NotNil(latest.Livreur1Progress)
	s.InDelta(40, *latest.Livreur1Progress, 1e-9)
	s.NotNil(latest.ClosedAt)

	p, err := s.packages.Get(s.ctx, 10)
	s.Require().NoError(err)
	s.Equal([]int64{2}, p.CourierIDs)

	// code may be reused once the record is closed
	s.openTransfer("ABC123")
}

func (s *PackageRepoSuite) TestWithTxRollsBack() {
	boom := errors.New("boom")
	err := s.packages.WithTx(s.ctx, func(tx transfertx.Repository) error {
		if err := tx.SetStatus(s.ctx, 10, domain.StatusDelivered); err != nil {
			return err
		}
		return boom
	})
	s.Require().ErrorIs(err, boom)

	p, err := s.packages.Get(s.ctx, 10)
	s.Require().NoError(err)
	s.Equal(domain.StatusPending, p.DeliveryStatus)
}

func (s *PackageRepoSuite) TestExpiredOpenTransfers() {
	s.openTransfer("ABC123")

	var got []domain.TransferRecord
	s.Require().NoError(s.packages.WithTx(s.ctx, func(tx transfertx.Repository) error {
		var err error
		got, err = tx.ExpiredOpenTransfers(s.ctx, time.Now().Add(time.Minute), 10)
		return err
	}))
	s.Len(got, 1)

	s.Require().NoError(s.packages.WithTx(s.ctx, func(tx transfertx.Repository) error {
		var err error
		got, err = tx.ExpiredOpenTransfers(s.ctx, time.Now().Add(-time.Hour), 10)
		return err
	}))
	s.Empty(got)
}

func TestPackageRepo_AssignUnknownCourier(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	repo := repository.NewPackageRepo(tcPool)

	err := repo.WithTx(ctx, func(tx transfertx.Repository) error {
		if err := tx.UpsertPackage(ctx, domain.PackageSnapshot{ID: 1, Name: "p", Quantity: 1}); err != nil {
			return err
		}
		return tx.AssignCourier(ctx, 1, 42)
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	paid := false
	err = repo.WithTx(ctx, func(tx transfertx.Repository) error {
		var err error
		paid, err = tx.SetPaid(ctx, 404, true)
		return err
	})
	require.NoError(t, err)
	assert.False(t, paid)
}
