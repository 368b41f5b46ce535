package spatial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metamorph/greenspace-backend-go/internal/models"
)

func squareRing(side float64) []models.Coordinate {
	// side in degrees, anchored at the origin
	return []models.Coordinate{
		{Lat: 0, Lng: 0},
		{Lat: 0, Lng: side},
		{Lat: side, Lng: side},
		{Lat: side, Lng: 0},
	}
}

func TestBuildPolygonRejectsShortRing(t *testing.T) {
	_, err := BuildPolygon([]models.Coordinate{
		{Lat: 0, Lng: 0},
		{Lat: 1, Lng: 1},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrInvalidGeometry)
}

func TestBuildPolygonRejectsOutOfRange(t *testing.T) {
	_, err := BuildPolygon([]models.Coordinate{
		{Lat: 95, Lng: 0},
		{Lat: 0, Lng: 1},
		{Lat: 1, Lng: 1},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrInvalidGeometry)
}

func TestBuildPolygonCopiesInput(t *testing.T) {
	coords := squareRing(1)
	ring, err := BuildPolygon(coords)
	require.NoError(t, err)

	coords[0].Lat = 50
	assert.Equal(t, 0.0, ring[0].Lat)
}

func TestAreaOfKnownSquare(t *testing.T) {
	// A square with 1000 m sides should measure one million square
	// meters under the fixed degree-to-meter conversion
	side := 1000.0 / MetersPerDegree
	ring := Polygon(squareRing(side))

	assert.InDelta(t, 1_000_000, ring.Area(), 1e-3)
}

func TestAreaDegenerateRing(t *testing.T) {
	assert.Equal(t, 0.0, Polygon{{Lat: 0, Lng: 0}, {Lat: 1, Lng: 1}}.Area())
	assert.Equal(t, 0.0, Polygon{}.Area())
}

func TestContains(t *testing.T) {
	ring := Polygon(squareRing(1))

	assert.True(t, ring.Contains(models.Coordinate{Lat: 0.5, Lng: 0.5}))
	assert.False(t, ring.Contains(models.Coordinate{Lat: 1.5, Lng: 0.5}))
	assert.False(t, ring.Contains(models.Coordinate{Lat: 0.5, Lng: -0.1}))
	assert.False(t, Polygon{}.Contains(models.Coordinate{Lat: 0.5, Lng: 0.5}))
}

func TestBoundingBox(t *testing.T) {
	ring := Polygon{
		{Lat: 2, Lng: -3},
		{Lat: -1, Lng: 4},
		{Lat: 0.5, Lng: 0},
	}

	minLat, minLng, maxLat, maxLng := ring.BoundingBox()
	assert.Equal(t, -1.0, minLat)
	assert.Equal(t, -3.0, minLng)
	assert.Equal(t, 2.0, maxLat)
	assert.Equal(t, 4.0, maxLng)
}

func TestCentroid(t *testing.T) {
	c := Centroid(squareRing(1))
	assert.InDelta(t, 0.5, c.Lat, 1e-9)
	assert.InDelta(t, 0.5, c.Lng, 1e-9)

	assert.Equal(t, models.Coordinate{}, Centroid(nil))
}

func TestSimplifyKeepsSmallRings(t *testing.T) {
	ring := squareRing(1)
	assert.Equal(t, ring, Simplify(ring, 0.01))
}

func TestSimplifyCollapsesCollinearPoints(t *testing.T) {
	line := []models.Coordinate{
		{Lat: 0, Lng: 0},
		{Lat: 0.1, Lng: 0.1},
		{Lat: 0.2, Lng: 0.2},
		{Lat: 0.3, Lng: 0.3},
		{Lat: 0.4, Lng: 0.4},
		{Lat: 0.5, Lng: 0.5},
	}

	simplified := Simplify(line, 0.01)
	require.Len(t, simplified, 2)
	assert.Equal(t, line[0], simplified[0])
	assert.Equal(t, line[len(line)-1], simplified[1])
}

func TestSimplifyKeepsSignificantVertices(t *testing.T) {
	// A sharp peak well above the tolerance must survive
	shape := []models.Coordinate{
		{Lat: 0, Lng: 0},
		{Lat: 0.25, Lng: 0.05},
		{Lat: 0.5, Lng: 0.4},
		{Lat: 0.75, Lng: 0.05},
		{Lat: 1, Lng: 0},
	}

	simplified := Simplify(shape, 0.01)
	assert.Contains(t, simplified, models.Coordinate{Lat: 0.5, Lng: 0.4})
}
