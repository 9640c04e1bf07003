package handlers

import (
	"fmt"

	"ecodeli-delivery/internal/apperr"
	"ecodeli-delivery/internal/domain"
)

func (f dropFields) toDomain() (domain.DropAddress, error) {
	drop := domain.DropAddress{
		Street:     f.Address,
		PostalCode: f.PostalCode,
		City:       f.City,
	}
	switch {
	case f.Latitude == nil && f.Longitude == nil:
		return drop, nil
	case f.Latitude == nil || f.Longitude == nil:
		return drop, fmt.Errorf("latitude and longitude go together: %w", apperr.ErrInvalidInput)
	}
	p := domain.GeoPoint{Lat: *f.Latitude, Lon: *f.Longitude}
	if !p.Valid() {
		return drop, fmt.Errorf("coordinates out of range: %w", apperr.ErrInvalidInput)
	}
	drop.Point = &p
	return drop, nil
}

func pointToDTO(p *domain.GeoPoint) *pointDTO {
	if p == nil {
		return nil
	}
	return &pointDTO{Latitude: p.Lat, Longitude: p.Lon}
}

func courierToDTO(c domain.Courier) courierDTO {
	return courierDTO{
		ID:     c.ID,
		Name:   c.Name,
		Phone:  c.Phone,
		Status: string(c.Status),
	}
}

func couriersToDTO(list []domain.Courier) []courierDTO {
	out := make([]courierDTO, 0, len(list))
	for _, c := range list {
		out = append(out, courierToDTO(c))
	}
	return out
}

func packageToDTO(p domain.Package) packageDTO {
	ids := p.CourierIDs
	if ids == nil {
		ids = []int64{}
	}
	return packageDTO{
		ID:              p.ID,
		Name:            p.Name,
		Weight:          p.Weight,
		Length:          p.Length,
		Width:           p.Width,
		Height:          p.Height,
		Quantity:        p.Quantity,
		DeliveryStatus:  string(p.DeliveryStatus),
		IsPaid:          p.IsPaid,
		Prioritaire:     p.Prioritaire,
		CourierIDs:      ids,
		AdvertisementID: p.AdvertisementID,
		Origin:          pointToDTO(p.Origin),
		Destination:     pointToDTO(p.Destination),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func packagesToDTO(list []domain.Package) []packageDTO {
	out := make([]packageDTO, 0, len(list))
	for _, p := range list {
		out = append(out, packageToDTO(p))
	}
	return out
}

// transferToDTO hides the code unless withCode is set; only the initiator sees it.
func transferToDTO(t domain.TransferRecord, withCode bool) transferDTO {
	dto := transferDTO{
		ID:               t.ID,
		PackageID:        t.PackageID,
		FromCourierID:    t.FromCourierID,
		ToCourierID:      t.ToCourierID,
		Address:          t.Drop.Street,
		PostalCode:       t.Drop.PostalCode,
		City:             t.Drop.City,
		Drop:             pointToDTO(t.Drop.Point),
		Livreur1Progress: t.Livreur1Progress,
		Livreur2Progress: t.Livreur2Progress,
		Status:           string(t.Status),
		CreatedAt:        t.CreatedAt,
		ClosedAt:         t.ClosedAt,
	}
	if withCode {
		dto.TransferCode = t.TransferCode
	}
	return dto
}

func progressToDTO(t domain.TransferRecord) progressDTO {
	return progressDTO{
		PackageID:        t.PackageID,
		TransferID:       t.ID,
		Status:           string(t.Status),
		Livreur1Progress: t.Livreur1Progress,
		Livreur2Progress: t.Livreur2Progress,
	}
}
