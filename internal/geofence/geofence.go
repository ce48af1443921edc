package geofence

import (
	"math"

	"github.com/dinepay/escrow-service/internal/domain"
)

const earthRadiusMeters = 6371000.0

// DefaultRadiusMeters is the proximity threshold used when none is configured.
const DefaultRadiusMeters = 50.0

// Distance returns the haversine great-circle distance between two
// coordinates in meters. Pure and symmetric.
func Distance(a, b domain.Coordinate) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLng := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMeters * c
}

// WithinRadius reports whether the customer is inside the provider's
// geofence of thresholdMeters.
func WithinRadius(customer, provider domain.Coordinate, thresholdMeters float64) bool {
	return Distance(customer, provider) <= thresholdMeters
}
