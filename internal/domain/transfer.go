package domain

import "time"

// DropAddress is where the first courier leaves the package for the second one.
type DropAddress struct {
	Street     string
	PostalCode string
	City       string
	Point      *GeoPoint
}

// TransferRecord is a courier-to-courier handoff of a package.
type TransferRecord struct {
	ID               int64
	PackageID        int64
	FromCourierID    int64
	ToCourierID      int64
	Drop             DropAddress
	TransferCode     string
	Livreur1Progress *float64
	Livreur2Progress *float64
	Status           TransferStatus
	CreatedAt        time.Time
	ClosedAt         *time.Time
}

// Open reports whether the record still awaits confirmation.
func (t *TransferRecord) Open() bool {
	return t.Status == TransferOpen
}

// Progress is the per-leg completion snapshot computed at confirmation.
// Livreur1 is the completed share of the origin to drop leg, Livreur2 of the
// drop to destination leg, both in percent.
type Progress struct {
	Livreur1 float64
	Livreur2 float64
	// RouteShare is the origin to drop leg as a percentage of the whole route.
	// Nil when coordinates are missing.
	RouteShare *float64
}

// PackageSnapshot carries package attributes published by the advertisement service.
type PackageSnapshot struct {
	ID              int64
	Name            string
	Weight          float64
	Length          float64
	Width           float64
	Height          float64
	Quantity        int
	Prioritaire     bool
	AdvertisementID *int64
	Origin          *GeoPoint
	Destination     *GeoPoint
}
