package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metamorph/greenspace-backend-go/internal/models"
	"github.com/metamorph/greenspace-backend-go/internal/spatial"
)

func testRegion() spatial.Polygon {
	return spatial.Polygon{
		{Lat: 0, Lng: 0},
		{Lat: 0, Lng: 0.01},
		{Lat: 0.01, Lng: 0.01},
		{Lat: 0.01, Lng: 0},
	}
}

func TestAssembleFeaturesLayout(t *testing.T) {
	point := models.Coordinate{Lat: 0.005, Lng: 0.006}
	sample := models.TerrainSample{
		Elevation:     50,
		Slope:         9,
		SoilType:      models.SoilLoam,
		WaterPresence: true,
	}

	features := AssembleFeatures(point, sample, nil)

	require.Len(t, features, models.FeatureDim)
	assert.Equal(t, point.Lat, features[0])
	assert.Equal(t, point.Lng, features[1])
	assert.InDelta(t, 0.5, features[2], 1e-9)  // elevation/100
	assert.InDelta(t, 0.2, features[3], 1e-9)  // slope/45
	assert.InDelta(t, 0.75, features[4], 1e-9) // loam encoding
	assert.Equal(t, 1.0, features[5])          // water flag

	// No existing zones: all proximity components are zero
	for i := 6; i < models.FeatureDim; i++ {
		assert.Equal(t, 0.0, features[i])
	}
}

func TestAssembleFeaturesUnknownSoil(t *testing.T) {
	features := AssembleFeatures(models.Coordinate{}, models.TerrainSample{SoilType: models.SoilUnknown}, nil)

	require.Len(t, features, models.FeatureDim)
	assert.Equal(t, 0.5, features[4])
	assert.Equal(t, 0.0, features[5])
}

func TestZoneProximity(t *testing.T) {
	zone := models.GreenZone{
		Type: models.ZonePark,
		Coordinates: []models.Coordinate{
			{Lat: 0, Lng: 0},
			{Lat: 0, Lng: 0.0002},
			{Lat: 0.0002, Lng: 0.0002},
			{Lat: 0.0002, Lng: 0},
		},
	}

	// At the zone centroid the park signal is maximal
	atCentroid := ZoneProximity(zone.Centroid(), []models.GreenZone{zone})
	assert.InDelta(t, 1.0, atCentroid[models.ZonePark], 1e-9)
	assert.Equal(t, 0.0, atCentroid[models.ZoneForest])

	// Far away the signal decays to zero
	far := ZoneProximity(models.Coordinate{Lat: 1, Lng: 1}, []models.GreenZone{zone})
	assert.Equal(t, 0.0, far[models.ZonePark])
}

func TestBuildEdgesSymmetricNoSelfLoops(t *testing.T) {
	points := []models.Coordinate{
		{Lat: 0, Lng: 0},
		{Lat: 0, Lng: 0.0005}, // ~55 m from the first
		{Lat: 0.5, Lng: 0.5},  // far from both
	}

	edges := BuildEdges(points, 100)

	require.Len(t, edges, 2)
	assert.Contains(t, edges, models.Edge{0, 1})
	assert.Contains(t, edges, models.Edge{1, 0})

	for _, e := range edges {
		assert.NotEqual(t, e[0], e[1])
	}
}

func TestBuildEdgesRespectsThreshold(t *testing.T) {
	points := []models.Coordinate{
		{Lat: 0, Lng: 0},
		{Lat: 0, Lng: 0.002}, // ~222 m
	}

	assert.Empty(t, BuildEdges(points, 100))
	assert.Len(t, BuildEdges(points, 300), 2)
}

func TestBuildGraph(t *testing.T) {
	g := Build(testRegion(), 8, nil, nil, 200)

	require.NotZero(t, g.NodeCount())
	require.Len(t, g.Features, g.NodeCount())
	require.Len(t, g.Positions, g.NodeCount())

	for _, f := range g.Features {
		assert.Len(t, f, models.FeatureDim)
	}

	for _, e := range g.Edges {
		assert.GreaterOrEqual(t, e[0], 0)
		assert.Less(t, e[0], g.NodeCount())
		assert.GreaterOrEqual(t, e[1], 0)
		assert.Less(t, e[1], g.NodeCount())
	}
}

func TestBuildGraphDeterministic(t *testing.T) {
	samples := []models.TerrainSample{
		{Coordinates: models.Coordinate{Lat: 0.005, Lng: 0.005}, Elevation: 25, SoilType: models.SoilLoam},
	}

	first := Build(testRegion(), 8, samples, nil, 200)
	second := Build(testRegion(), 8, samples, nil, 200)

	assert.Equal(t, first, second)
}
