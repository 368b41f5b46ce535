package spatial

import (
	"math"

	"github.com/metamorph/greenspace-backend-go/internal/models"
)

// MetersPerDegree is the fixed planar degrees-to-meters conversion
// factor used throughout the pipeline. The regions involved are small
// urban areas, so the flat-earth approximation is acceptable.
const MetersPerDegree = 111000.0

// Polygon is a simple ring of coordinates. The ring is open: the first
// point is not repeated at the end.
type Polygon []models.Coordinate

// BuildPolygon validates a coordinate ring and returns it as a Polygon.
// Fails with models.ErrInvalidGeometry for fewer than 3 points or
// out-of-range coordinates.
func BuildPolygon(coords []models.Coordinate) (Polygon, error) {
	if err := models.ValidateRing(coords); err != nil {
		return nil, err
	}
	ring := make(Polygon, len(coords))
	copy(ring, coords)
	return ring, nil
}

// Area returns the planar area of the polygon in square meters using
// the shoelace formula scaled by MetersPerDegree squared. Returns 0 for
// rings with fewer than 3 points.
func (p Polygon) Area() float64 {
	if len(p) < 3 {
		return 0
	}

	var sum float64
	for i := 0; i < len(p); i++ {
		j := (i + 1) % len(p)
		sum += p[i].Lng*p[j].Lat - p[j].Lng*p[i].Lat
	}

	return math.Abs(sum) / 2.0 * MetersPerDegree * MetersPerDegree
}

// Contains checks whether a point lies inside the polygon using ray
// casting. Boundary points are excluded; the strict comparison keeps
// grid generation and clustering consistent at region edges.
func (p Polygon) Contains(point models.Coordinate) bool {
	if len(p) < 3 {
		return false
	}

	inside := false
	j := len(p) - 1

	for i := 0; i < len(p); i++ {
		if ((p[i].Lat > point.Lat) != (p[j].Lat > point.Lat)) &&
			(point.Lng < (p[j].Lng-p[i].Lng)*(point.Lat-p[i].Lat)/(p[j].Lat-p[i].Lat)+p[i].Lng) {
			inside = !inside
		}
		j = i
	}

	return inside
}

// BoundingBox returns (minLat, minLng, maxLat, maxLng) of the ring
func (p Polygon) BoundingBox() (float64, float64, float64, float64) {
	if len(p) == 0 {
		return 0, 0, 0, 0
	}

	minLat, maxLat := p[0].Lat, p[0].Lat
	minLng, maxLng := p[0].Lng, p[0].Lng

	for _, c := range p[1:] {
		if c.Lat < minLat {
			minLat = c.Lat
		}
		if c.Lat > maxLat {
			maxLat = c.Lat
		}
		if c.Lng < minLng {
			minLng = c.Lng
		}
		if c.Lng > maxLng {
			maxLng = c.Lng
		}
	}

	return minLat, minLng, maxLat, maxLng
}

// Centroid returns the mean of a coordinate sequence
func Centroid(coords []models.Coordinate) models.Coordinate {
	if len(coords) == 0 {
		return models.Coordinate{}
	}

	var sumLat, sumLng float64
	for _, c := range coords {
		sumLat += c.Lat
		sumLng += c.Lng
	}

	n := float64(len(coords))
	return models.Coordinate{Lat: sumLat / n, Lng: sumLng / n}
}

// Simplify reduces the vertex count of a ring using the
// Ramer-Douglas-Peucker algorithm with a tolerance in coordinate
// degrees. Rings with 4 or fewer points are returned unchanged.
func Simplify(coords []models.Coordinate, tolerance float64) []models.Coordinate {
	if len(coords) <= 4 {
		return coords
	}
	return rdp(coords, tolerance)
}

func rdp(coords []models.Coordinate, epsilon float64) []models.Coordinate {
	if len(coords) < 3 {
		return coords
	}

	// Find the point with maximum distance from the chord
	maxDist := 0.0
	maxIndex := 0

	for i := 1; i < len(coords)-1; i++ {
		dist := perpendicularDistance(coords[i], coords[0], coords[len(coords)-1])
		if dist > maxDist {
			maxDist = dist
			maxIndex = i
		}
	}

	if maxDist > epsilon {
		left := rdp(coords[:maxIndex+1], epsilon)
		right := rdp(coords[maxIndex:], epsilon)

		// Combine, dropping the duplicated middle point
		result := make([]models.Coordinate, len(left)+len(right)-1)
		copy(result, left)
		copy(result[len(left):], right[1:])
		return result
	}

	return []models.Coordinate{coords[0], coords[len(coords)-1]}
}

// perpendicularDistance is the distance in degrees from a point to the
// line through lineStart and lineEnd
func perpendicularDistance(point, lineStart, lineEnd models.Coordinate) float64 {
	x0, y0 := point.Lat, point.Lng
	x1, y1 := lineStart.Lat, lineStart.Lng
	x2, y2 := lineEnd.Lat, lineEnd.Lng

	num := math.Abs((y2-y1)*x0 - (x2-x1)*y0 + x2*y1 - y2*x1)
	den := math.Sqrt((y2-y1)*(y2-y1) + (x2-x1)*(x2-x1))

	if den == 0 {
		return PlanarDistance(point, lineStart)
	}

	return num / den
}
