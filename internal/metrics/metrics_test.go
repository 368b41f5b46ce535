package metrics

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

func zoneAt(zt models.ZoneType, lat, lng, side float64) models.GreenZone {
	coords := []models.Coordinate{
		{Lat: lat, Lng: lng},
		{Lat: lat, Lng: lng + side},
		{Lat: lat + side, Lng: lng + side},
		{Lat: lat + side, Lng: lng},
	}
	return models.GreenZone{
		Type:        zt,
		Coordinates: coords,
		Area:        spatial.Polygon(coords).Area(),
	}
}

func TestCoverageEmptyZones(t *testing.T) {
	assert.Equal(t, 0.0, Coverage(nil, testRegion()))
}

func TestCoverageZeroAreaRegion(t *testing.T) {
	assert.Equal(t, 0.0, Coverage([]models.GreenZone{zoneAt(models.ZonePark, 0, 0, 0.001)}, spatial.Polygon{}))
}

func TestCoverageFullRegion(t *testing.T) {
	region := testRegion()
	zone := models.GreenZone{Type: models.ZonePark, Coordinates: region}

	assert.InDelta(t, 100.0, Coverage([]models.GreenZone{zone}, region), 1e-6)
}

func TestCoverageRecomputesAreaFromRing(t *testing.T) {
	region := testRegion()
	zone := models.GreenZone{
		Type:        models.ZonePark,
		Coordinates: region,
		Area:        1, // stale declared area must be ignored
	}

	assert.InDelta(t, 100.0, Coverage([]models.GreenZone{zone}, region), 1e-6)
}

func TestAccessibilityNoZones(t *testing.T) {
	centers := []models.PopulationCenter{{Lat: 0, Lng: 0, Population: 1000}}
	assert.Equal(t, 0.0, Accessibility(nil, centers))
}

func TestAccessibilityCenterOnZone(t *testing.T) {
	zone := zoneAt(models.ZonePark, 0, 0, 0.001)
	centroid := zone.Centroid()
	centers := []models.PopulationCenter{{Lat: centroid.Lat, Lng: centroid.Lng, Population: 2000}}

	assert.InDelta(t, 100.0, Accessibility([]models.GreenZone{zone}, centers), 1e-6)
}

func TestAccessibilityDecaysWithDistance(t *testing.T) {
	zone := zoneAt(models.ZonePark, 0, 0, 0.001)

	near := []models.PopulationCenter{{Lat: 0.002, Lng: 0.0005, Population: 1000}}
	far := []models.PopulationCenter{{Lat: 0.05, Lng: 0.0005, Population: 1000}}

	assert.Greater(t,
		Accessibility([]models.GreenZone{zone}, near),
		Accessibility([]models.GreenZone{zone}, far))
}

func TestAccessibilityZeroPopulationCarriesNoWeight(t *testing.T) {
	zone := zoneAt(models.ZonePark, 0, 0, 0.001)
	centroid := zone.Centroid()

	// The distant empty center must not drag the weighted average down
	centers := []models.PopulationCenter{
		{Lat: centroid.Lat, Lng: centroid.Lng, Population: 1000},
		{Lat: 0.5, Lng: 0.5, Population: 0},
	}
	assert.InDelta(t, 100.0, Accessibility([]models.GreenZone{zone}, centers), 1e-6)

	onlyEmpty := []models.PopulationCenter{{Lat: centroid.Lat, Lng: centroid.Lng, Population: 0}}
	assert.Equal(t, 0.0, Accessibility([]models.GreenZone{zone}, onlyEmpty))
}

func TestAccessibilitySyntheticCentersDeterministic(t *testing.T) {
	zones := []models.GreenZone{zoneAt(models.ZonePark, 0, 0, 0.005)}

	first := Accessibility(zones, nil)
	second := Accessibility(zones, nil)
	assert.Equal(t, first, second)
}

func TestConnectivityNeedsTwoZones(t *testing.T) {
	assert.Equal(t, 0.0, Connectivity(nil))
	assert.Equal(t, 0.0, Connectivity([]models.GreenZone{zoneAt(models.ZonePark, 0, 0, 0.001)}))
}

func TestConnectivityAdjacentZones(t *testing.T) {
	zones := []models.GreenZone{
		zoneAt(models.ZonePark, 0, 0, 0.001),
		zoneAt(models.ZoneGarden, 0, 0.001, 0.001),
	}

	// Centroids ~111 m apart: 100 - 111/20 ≈ 94.4
	assert.InDelta(t, 94.4, Connectivity(zones), 0.2)
}

func TestSustainabilityWeights(t *testing.T) {
	// No terrain: pure weighted sum
	assert.InDelta(t, 0.4*50+0.3*60+0.3*70, Sustainability(50, 60, 70, nil), 1e-9)
}

func TestSustainabilityTerrainBonusCapped(t *testing.T) {
	samples := []models.TerrainSample{
		{WaterPresence: true, Slope: 5, SoilType: models.SoilLoam},
	}

	// Full per-sample bonus is 10, below the cap
	assert.InDelta(t, 10.0, Sustainability(0, 0, 0, samples), 1e-9)

	assert.LessOrEqual(t, Sustainability(100, 100, 100, samples), 100.0)
}

func TestDiversity(t *testing.T) {
	assert.Equal(t, 0.0, Diversity(nil))

	uniform := []models.GreenZone{
		{Type: models.ZonePark}, {Type: models.ZonePark},
	}
	assert.InDelta(t, 0.0, Diversity(uniform), 1e-9)

	allTypes := []models.GreenZone{
		{Type: models.ZonePark},
		{Type: models.ZoneGarden},
		{Type: models.ZoneForest},
		{Type: models.ZoneWetland},
	}
	assert.InDelta(t, 100.0, Diversity(allTypes), 1e-9)
}

func TestPopulationServed(t *testing.T) {
	zones := []models.GreenZone{{Type: models.ZonePark, Area: 1000}}

	assert.Equal(t, 50, PopulationServed(zones, 0))
	assert.Equal(t, 75, PopulationServed(zones, 50))
	assert.Equal(t, 0, PopulationServed(nil, 100))
}

func TestComputeAssemblesAllMetrics(t *testing.T) {
	region := testRegion()
	zones := []models.GreenZone{
		zoneAt(models.ZonePark, 0.001, 0.001, 0.002),
		zoneAt(models.ZoneWetland, 0.005, 0.005, 0.002),
	}

	m := Compute(zones, region, nil, nil)

	assert.Positive(t, m.Coverage)
	assert.Positive(t, m.ConnectivityScore)
	assert.Positive(t, m.ZoneDiversity)
	assert.Positive(t, m.PopulationServed)
	assert.LessOrEqual(t, m.SustainabilityScore, 100.0)
}

func TestSyntheticPopulationCentersDeterministic(t *testing.T) {
	zones := []models.GreenZone{zoneAt(models.ZonePark, 0.001, 0.001, 0.003)}

	first := SyntheticPopulationCenters(zones)
	second := SyntheticPopulationCenters(zones)

	require.Len(t, first, 5)
	assert.Equal(t, first, second)

	for _, c := range first {
		assert.GreaterOrEqual(t, c.Population, 500)
		assert.Less(t, c.Population, 5000)
		assert.GreaterOrEqual(t, c.Lat, 0.001)
		assert.LessOrEqual(t, c.Lat, 0.004)
	}
}

func TestSyntheticPopulationCentersEmptyZones(t *testing.T) {
	assert.Nil(t, SyntheticPopulationCenters(nil))
}
