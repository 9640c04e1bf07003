package transfer

import (
	"math"

	"ecodeli-delivery/internal/domain"
)

const earthRadiusKm = 6371.0

// DistanceProgress reports the first leg done and the second not started, which is
// where both couriers stand at the moment of handoff. With coordinates it also
// records how much of the route the first leg covered.
type DistanceProgress struct{}

// Compute implements ProgressPolicy.
func (DistanceProgress) Compute(pkg *domain.Package, rec *domain.TransferRecord) domain.Progress {
	progress := domain.Progress{Livreur1: 100, Livreur2: 0}
	if pkg == nil || rec == nil || pkg.Origin == nil || pkg.Destination == nil || rec.Drop.Point == nil {
		return progress
	}

	leg1 := haversineKm(*pkg.Origin, *rec.Drop.Point)
	leg2 := haversineKm(*rec.Drop.Point, *pkg.Destination)
	total := leg1 + leg2
	if total <= 0 || math.IsNaN(total) {
		return progress
	}

	share := clampPercent(math.Round(leg1/total*10000) / 100)
	progress.RouteShare = &share
	return progress
}

func haversineKm(a, b domain.GeoPoint) float64 {
	lat1, lat2 := rad(a.Lat), rad(b.Lat)
	dLat := lat2 - lat1
	dLon := rad(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Min(1, math.Sqrt(h)))
}

func rad(deg float64) float64 { return deg * math.Pi / 180 }

func clampPercent(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	}
	return v
}
