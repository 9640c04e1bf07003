package domain

import (
	"math"
	"time"
)

// GeoPoint is a WGS84 coordinate.
type GeoPoint struct {
	Lat float64
	Lon float64
}

// Valid reports whether the point lies within coordinate bounds.
func (p GeoPoint) Valid() bool {
	return !math.IsNaN(p.Lat) && !math.IsNaN(p.Lon) &&
		p.Lat >= -90 && p.Lat <= 90 && p.Lon >= -180 && p.Lon <= 180
}

// Package is a shippable parcel handled by one or more couriers.
type Package struct {
	ID              int64
	Name            string
	Weight          float64
	Length          float64
	Width           float64
	Height          float64
	Quantity        int
	DeliveryStatus  DeliveryStatus
	IsPaid          bool
	Prioritaire     bool
	CourierIDs      []int64
	AdvertisementID *int64
	Origin          *GeoPoint
	Destination     *GeoPoint
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// HasCourier reports whether the courier is assigned to the package.
func (p *Package) HasCourier(courierID int64) bool {
	for _, id := range p.CourierIDs {
		if id == courierID {
			return true
		}
	}
	return false
}
