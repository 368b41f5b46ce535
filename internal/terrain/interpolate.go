// Package terrain provides terrain attributes for arbitrary points,
// either by nearest-sample interpolation over measured data or by a
// deterministic synthetic generator for regions without measurements.
package terrain

import (
	"github.com/metamorph/greenspace-backend-go/internal/models"
	"github.com/metamorph/greenspace-backend-go/internal/spatial"
)

// Interpolate returns the terrain attributes for a point using a
// nearest-sample policy over Euclidean distance in (lat,lng) space.
// The first sample wins ties. An empty sample set yields a zero-valued
// sample with soil "unknown"; this is an expected case, not an error.
func Interpolate(point models.Coordinate, samples []models.TerrainSample) models.TerrainSample {
	if len(samples) == 0 {
		return models.TerrainSample{
			Coordinates: point,
			SoilType:    models.SoilUnknown,
		}
	}

	nearest := samples[0]
	minDist := spatial.PlanarDistance(point, samples[0].Coordinates)

	for _, s := range samples[1:] {
		dist := spatial.PlanarDistance(point, s.Coordinates)
		if dist < minDist {
			minDist = dist
			nearest = s
		}
	}

	return nearest
}
