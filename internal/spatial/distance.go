package spatial

import (
	"math"

	"github.com/golang/geo/s2"

	"github.com/metamorph/greenspace-backend-go/internal/models"
)

// EarthRadiusMeters is Earth's mean radius
const EarthRadiusMeters = 6371000.0

// HaversineDistance calculates the great-circle distance between two
// points in meters
func HaversineDistance(a, b models.Coordinate) float64 {
	p1 := s2.LatLngFromDegrees(a.Lat, a.Lng)
	p2 := s2.LatLngFromDegrees(b.Lat, b.Lng)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// PlanarDistance is the Euclidean distance between two points in
// coordinate degrees
func PlanarDistance(a, b models.Coordinate) float64 {
	dLat := a.Lat - b.Lat
	dLng := a.Lng - b.Lng
	return math.Sqrt(dLat*dLat + dLng*dLng)
}

// PlanarDistanceMeters converts the planar degree distance to an
// approximate meter distance using the fixed conversion factor
func PlanarDistanceMeters(a, b models.Coordinate) float64 {
	return PlanarDistance(a, b) * MetersPerDegree
}
