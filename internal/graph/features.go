// Package graph builds the spatial graph a scoring engine consumes:
// node features assembled from position, terrain and zone proximity,
// and edges connecting grid points within a distance threshold.
package graph

import (
	"github.com/metamorph/greenspace-backend-go/internal/models"
	"github.com/metamorph/greenspace-backend-go/internal/spatial"
)

// proximityScale converts a planar degree distance to a proximity
// signal via max(0, 1 - distance*proximityScale)
const proximityScale = 1000.0

// ZoneProximity computes, per zone type, the strongest proximity
// signal from the point to any existing zone of that type. Distance is
// measured to the zone centroid. Returns an all-zero map when no zones
// exist.
func ZoneProximity(point models.Coordinate, zones []models.GreenZone) map[models.ZoneType]float64 {
	proximities := map[models.ZoneType]float64{
		models.ZonePark:    0,
		models.ZoneGarden:  0,
		models.ZoneForest:  0,
		models.ZoneWetland: 0,
	}

	for _, zone := range zones {
		if _, ok := proximities[zone.Type]; !ok {
			continue
		}
		if len(zone.Coordinates) == 0 {
			continue
		}

		dist := spatial.PlanarDistance(point, zone.Centroid())
		proximity := 1 - dist*proximityScale
		if proximity < 0 {
			proximity = 0
		}
		if proximity > proximities[zone.Type] {
			proximities[zone.Type] = proximity
		}
	}

	return proximities
}

// AssembleFeatures composes the fixed-length node feature vector:
// [lat, lng, elevation, slope, soil, water, park, garden, forest,
// wetland]. Terrain values are normalized to roughly [0, 1]. The
// result always has exactly models.FeatureDim components.
func AssembleFeatures(point models.Coordinate, sample models.TerrainSample, zones []models.GreenZone) []float64 {
	features := make([]float64, 0, models.FeatureDim)

	features = append(features, point.Lat, point.Lng)

	water := 0.0
	if sample.WaterPresence {
		water = 1.0
	}
	features = append(features,
		sample.Elevation/100.0,
		sample.Slope/45.0,
		models.SoilEncoding(sample.SoilType),
		water,
	)

	proximities := ZoneProximity(point, zones)
	for _, zt := range models.ZoneTypes() {
		features = append(features, proximities[zt])
	}

	// Guard the fixed dimension: zero-pad or truncate
	for len(features) < models.FeatureDim {
		features = append(features, 0)
	}
	return features[:models.FeatureDim]
}
