package kafka

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"ecodeli-delivery/internal/domain"
)

// PointDTO is a coordinate on the wire.
type PointDTO struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// PackageDTO is the package snapshot published by the advertisement service.
type PackageDTO struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Weight          float64   `json:"weight"`
	Length          float64   `json:"length"`
	Width           float64   `json:"width"`
	Height          float64   `json:"height"`
	Quantity        int       `json:"quantity"`
	Prioritaire     bool      `json:"prioritaire"`
	AdvertisementID *int64    `json:"advertisement_id,omitempty"`
	Origin          *PointDTO `json:"origin,omitempty"`
	Destination     *PointDTO `json:"destination,omitempty"`
}

// CourierDTO is a courier account published on registration.
type CourierDTO struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Status string `json:"status"`
}

// IntakeDTO is an inbound package lifecycle message.
type IntakeDTO struct {
	Kind       string      `json:"kind"`
	PackageID  int64       `json:"package_id,omitempty"`
	CourierID  int64       `json:"courier_id,omitempty"`
	Paid       bool        `json:"paid,omitempty"`
	Package    *PackageDTO `json:"package,omitempty"`
	Courier    *CourierDTO `json:"courier,omitempty"`
	OccurredAt time.Time   `json:"occurred_at"`
}

// ToDomain converts IntakeDTO to domain.IntakeEvent
func ToDomain(dto IntakeDTO) domain.IntakeEvent {
	ev := domain.IntakeEvent{
		Kind:       domain.IntakeKind(strings.ToLower(strings.TrimSpace(dto.Kind))),
		PackageID:  dto.PackageID,
		CourierID:  dto.CourierID,
		Paid:       dto.Paid,
		OccurredAt: dto.OccurredAt,
	}
	if p := dto.Package; p != nil {
		ev.Package = &domain.PackageSnapshot{
			ID:              p.ID,
			Name:            strings.TrimSpace(p.Name),
			Weight:          p.Weight,
			Length:          p.Length,
			Width:           p.Width,
			Height:          p.Height,
			Quantity:        p.Quantity,
			Prioritaire:     p.Prioritaire,
			AdvertisementID: p.AdvertisementID,
			Origin:          toPoint(p.Origin),
			Destination:     toPoint(p.Destination),
		}
		if ev.PackageID == 0 {
			ev.PackageID = p.ID
		}
	}
	if c := dto.Courier; c != nil {
		ev.Courier = &domain.Courier{
			ID:     c.ID,
			Name:   strings.TrimSpace(c.Name),
			Phone:  strings.TrimSpace(c.Phone),
			Status: domain.CourierStatus(strings.TrimSpace(c.Status)),
		}
		if ev.CourierID == 0 {
			ev.CourierID = c.ID
		}
	}
	return ev
}

func toPoint(p *PointDTO) *domain.GeoPoint {
	if p == nil {
		return nil
	}
	return &domain.GeoPoint{Lat: p.Lat, Lon: p.Lon}
}

// EventDTO is an outbound delivery event.
type EventDTO struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"`
	PackageID   int64     `json:"package_id"`
	CourierID   int64     `json:"courier_id,omitempty"`
	ToCourierID int64     `json:"to_courier_id,omitempty"`
	Status      string    `json:"status,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// FromDomain converts domain.Event to EventDTO with a fresh event id.
func FromDomain(e domain.Event) EventDTO {
	return EventDTO{
		ID:          uuid.NewString(),
		Kind:        string(e.Kind),
		PackageID:   e.PackageID,
		CourierID:   e.CourierID,
		ToCourierID: e.ToCourierID,
		Status:      string(e.Status),
		OccurredAt:  e.OccurredAt.UTC(),
	}
}

func packageKey(id int64) string {
	return strconv.FormatInt(id, 10)
}
