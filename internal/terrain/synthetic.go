package terrain

import (
	"math"
	"math/rand"

	"github.com/metamorph/greenspace-backend-go/internal/models"
	"github.com/metamorph/greenspace-backend-go/internal/spatial"
)

// Synthesize generates plausible terrain attributes for a point as a
// pure function of its coordinates: the PRNG is seeded from the
// coordinate pair, so repeated calls for the same point return the
// same sample.
func Synthesize(point models.Coordinate) models.TerrainSample {
	rng := rand.New(rand.NewSource(coordinateSeed(point)))

	// Simulated hills: bounded trigonometric base plus noise
	base := math.Abs(math.Sin(point.Lat*10)*math.Cos(point.Lng*10)) * 100
	elevation := base + rng.NormFloat64()*10

	slope := math.Abs(rng.NormFloat64()*5 + elevation/10)
	if slope > 45 {
		slope = 45
	}

	soil := pickSoil(elevation, rng)

	// Water is more likely at low elevation
	waterProbability := math.Max(0.1, 0.8-elevation/100)
	water := rng.Float64() < waterProbability

	return models.TerrainSample{
		Coordinates:   point,
		Elevation:     elevation,
		Slope:         slope,
		SoilType:      soil,
		WaterPresence: water,
	}
}

// GenerateGrid produces synthetic terrain samples for every interior
// grid point of a region
func GenerateGrid(region spatial.Polygon, gridSize int) []models.TerrainSample {
	points := spatial.GenerateGrid(region, gridSize)
	samples := make([]models.TerrainSample, 0, len(points))
	for _, p := range points {
		samples = append(samples, Synthesize(p))
	}
	return samples
}

// coordinateSeed hashes a coordinate pair into a reproducible PRNG
// seed, reduced modulo 2^32 with a non-negative result
func coordinateSeed(point models.Coordinate) int64 {
	s := int64((point.Lat + point.Lng) * 10000)
	const mod = int64(1) << 32
	return ((s % mod) + mod) % mod
}

// pickSoil chooses a soil category from elevation-banded candidates
func pickSoil(elevation float64, rng *rand.Rand) string {
	var candidates []string
	switch {
	case elevation < 20:
		candidates = []string{models.SoilClay, models.SoilLoam}
	case elevation < 60:
		candidates = []string{models.SoilLoam, models.SoilSand}
	default:
		candidates = []string{models.SoilRocky, models.SoilSand}
	}
	return candidates[rng.Intn(len(candidates))]
}
