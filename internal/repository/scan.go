package repository

import (
	"ecodeli-delivery/internal/domain"
)

type scanner interface {
	Scan(dest ...any) error
}

const packageColumns = `p.id, p.name, p.weight, p.length, p.width, p.height, p.quantity,
       p.delivery_status, p.is_paid, p.prioritaire, p.advertisement_id,
       p.origin_lat, p.origin_lon, p.dest_lat, p.dest_lon, p.created_at, p.updated_at`

const courierIDsColumn = `COALESCE((SELECT array_agg(pc.courier_id ORDER BY pc.assigned_at, pc.courier_id)
                 FROM package_couriers pc WHERE pc.package_id = p.id), '{}')`

const transferColumns = `t.id, t.package_id, t.from_courier_id, t.to_courier_id, t.address, t.postal_code, t.city,
       t.drop_lat, t.drop_lon, t.transfer_code, t.livreur1_progress, t.livreur2_progress,
       t.status, t.created_at, t.closed_at`

func scanPackage(row scanner, extra ...any) (*domain.Package, error) {
	var p domain.Package
	var status string
	var oLat, oLon, dLat, dLon *float64
	dest := []any{
		&p.ID, &p.Name, &p.Weight, &p.Length, &p.Width, &p.Height, &p.Quantity,
		&status, &p.IsPaid, &p.Prioritaire, &p.AdvertisementID,
		&oLat, &oLon, &dLat, &dLon, &p.CreatedAt, &p.UpdatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	p.DeliveryStatus = domain.DeliveryStatus(status)
	p.Origin = point(oLat, oLon)
	p.Destination = point(dLat, dLon)
	return &p, nil
}

func scanPackageWithCouriers(row scanner) (*domain.Package, error) {
	var ids []int64
	p, err := scanPackage(row, &ids)
	if err != nil {
		return nil, err
	}
	p.CourierIDs = ids
	return p, nil
}

func scanTransfer(row scanner) (*domain.TransferRecord, error) {
	var (
		t        domain.TransferRecord
		status   string
		lat, lon *float64
	)
	err := row.Scan(
		&t.ID, &t.PackageID, &t.FromCourierID, &t.ToCourierID,
		&t.Drop.Street, &t.Drop.PostalCode, &t.Drop.City, &lat, &lon,
		&t.TransferCode, &t.Livreur1Progress, &t.Livreur2Progress,
		&status, &t.CreatedAt, &t.ClosedAt,
	)
	if err != nil {
		return nil, err
	}
	t.Status = domain.TransferStatus(status)
	t.Drop.Point = point(lat, lon)
	return &t, nil
}

func point(lat, lon *float64) *domain.GeoPoint {
	if lat == nil || lon == nil {
		return nil
	}
	return &domain.GeoPoint{Lat: *lat, Lon: *lon}
}

func latLon(p *domain.GeoPoint) (*float64, *float64) {
	if p == nil {
		return nil, nil
	}
	lat, lon := p.Lat, p.Lon
	return &lat, &lon
}
