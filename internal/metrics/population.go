package metrics

import (
	"math/rand"

	"github.com/metamorph/greenspace-backend-go/internal/models"
)

// syntheticCenterCount is how many population centers are generated
// when the caller supplies none
const syntheticCenterCount = 5

// SyntheticPopulationCenters generates population centers inside the
// bounding box of all zone coordinates, each with a population in
// [500, 5000). The PRNG is seeded from the bounding box itself, so
// identical zone input always yields the same centers and the
// accessibility metric stays reproducible.
func SyntheticPopulationCenters(zones []models.GreenZone) []models.PopulationCenter {
	var all []models.Coordinate
	for _, z := range zones {
		all = append(all, z.Coordinates...)
	}
	if len(all) == 0 {
		return nil
	}

	minLat, maxLat := all[0].Lat, all[0].Lat
	minLng, maxLng := all[0].Lng, all[0].Lng
	for _, c := range all[1:] {
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

	seed := int64((minLat + maxLat + minLng + maxLng) * 10000)
	rng := rand.New(rand.NewSource(seed))

	centers := make([]models.PopulationCenter, 0, syntheticCenterCount)
	for i := 0; i < syntheticCenterCount; i++ {
		centers = append(centers, models.PopulationCenter{
			Lat:        minLat + rng.Float64()*(maxLat-minLat),
			Lng:        minLng + rng.Float64()*(maxLng-minLng),
			Population: 500 + rng.Intn(4500),
		})
	}

	return centers
}
