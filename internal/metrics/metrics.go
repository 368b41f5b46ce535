// Package metrics computes the derived quality scores used to compare
// planning scenarios: coverage, accessibility, connectivity,
// sustainability, diversity and the environmental/social proxies.
// Every function tolerates sparse input (no zones, no terrain, no
// population centers) by returning a defined value rather than failing.
package metrics

import (
	"math"

	"github.com/metamorph/greenspace-backend-go/internal/models"
	"github.com/metamorph/greenspace-backend-go/internal/spatial"
	"github.com/metamorph/greenspace-backend-go/internal/stats"
)

// Coverage is the total zone area as a percentage of the region area.
// Zone areas are recomputed from their rings so user-drawn and
// synthesized zones measure identically. Returns 0 for a zero-area
// region.
func Coverage(zones []models.GreenZone, region spatial.Polygon) float64 {
	regionArea := region.Area()
	if regionArea == 0 {
		return 0
	}

	var total float64
	for _, z := range zones {
		if len(z.Coordinates) >= 3 {
			total += spatial.Polygon(z.Coordinates).Area()
		}
	}

	return total / regionArea * 100
}

// Accessibility is the population-weighted average of
// max(0, 100 - distance/50) from each population center to its
// nearest zone centroid, distance in meters. When no centers are
// supplied, a deterministic synthetic set is generated from the zone
// bounding box. Centers with a non-positive population carry zero
// weight. Returns 0 when no zones exist or no center has population.
func Accessibility(zones []models.GreenZone, centers []models.PopulationCenter) float64 {
	if len(zones) == 0 {
		return 0
	}

	if len(centers) == 0 {
		centers = SyntheticPopulationCenters(zones)
	}
	if len(centers) == 0 {
		return 0
	}

	var totalAccessibility, totalPopulation float64

	for _, pc := range centers {
		population := float64(pc.Population)
		if population <= 0 {
			continue
		}

		minDist := math.Inf(1)
		for _, z := range zones {
			if len(z.Coordinates) == 0 {
				continue
			}
			dist := spatial.HaversineDistance(
				models.Coordinate{Lat: pc.Lat, Lng: pc.Lng}, z.Centroid())
			if dist < minDist {
				minDist = dist
			}
		}

		if !math.IsInf(minDist, 1) {
			accessibility := math.Max(0, 100-minDist/50)
			totalAccessibility += accessibility * population
		}
		totalPopulation += population
	}

	if totalPopulation == 0 {
		return 0
	}
	return totalAccessibility / totalPopulation
}

// Connectivity averages max(0, 100 - centroidDistance/20) over all
// zone pairs, distance in meters. Returns 0 for fewer than 2 zones.
func Connectivity(zones []models.GreenZone) float64 {
	if len(zones) < 2 {
		return 0
	}

	var total float64
	pairs := 0

	for i := 0; i < len(zones); i++ {
		for j := i + 1; j < len(zones); j++ {
			if len(zones[i].Coordinates) == 0 || len(zones[j].Coordinates) == 0 {
				continue
			}
			dist := spatial.HaversineDistance(zones[i].Centroid(), zones[j].Centroid())
			total += math.Max(0, 100-dist/20)
			pairs++
		}
	}

	if pairs == 0 {
		return 0
	}
	return total / float64(pairs)
}

// Sustainability is the weighted sum of coverage, accessibility and
// connectivity plus a terrain bonus capped at 20, clamped to [0, 100].
// Per-sample bonus: +5 for water presence, +3 for gentle slope, +2 for
// loam or clay soil, averaged over the sample set.
func Sustainability(coverage, accessibility, connectivity float64, samples []models.TerrainSample) float64 {
	score := coverage*0.4 + accessibility*0.3 + connectivity*0.3

	if len(samples) > 0 {
		var bonus float64
		for _, s := range samples {
			if s.WaterPresence {
				bonus += 5
			}
			if s.Slope < 15 {
				bonus += 3
			}
			if s.SoilType == models.SoilLoam || s.SoilType == models.SoilClay {
				bonus += 2
			}
		}
		score += math.Min(20, bonus/float64(len(samples)))
	}

	if score < 0 {
		return 0
	}
	return math.Min(100, score)
}

// Diversity is the Shannon entropy of the zone-type distribution
// normalized by ln(4) and scaled to [0, 100]
func Diversity(zones []models.GreenZone) float64 {
	if len(zones) == 0 {
		return 0
	}

	counts := make([]float64, len(models.ZoneTypes()))
	for _, z := range zones {
		for i, zt := range models.ZoneTypes() {
			if z.Type == zt {
				counts[i]++
				break
			}
		}
	}

	maxEntropy := math.Log(float64(len(models.ZoneTypes())))
	return stats.ShannonEntropyNats(counts) / maxEntropy * 100
}

// PopulationServed estimates how many people the zone set serves,
// assuming 50 people per 1000 square meters of green space scaled up
// by the coverage share
func PopulationServed(zones []models.GreenZone, coverage float64) int {
	var totalArea float64
	for _, z := range zones {
		totalArea += z.Area
	}

	base := totalArea / 1000 * 50
	return int(base * (1 + coverage/100))
}

// Compute assembles the full scenario metrics record
func Compute(zones []models.GreenZone, region spatial.Polygon, samples []models.TerrainSample, centers []models.PopulationCenter) models.ScenarioMetrics {
	coverage := Coverage(zones, region)
	accessibility := Accessibility(zones, centers)
	connectivity := Connectivity(zones)

	return models.ScenarioMetrics{
		Coverage:            coverage,
		SustainabilityScore: Sustainability(coverage, accessibility, connectivity, samples),
		AccessibilityScore:  accessibility,
		ConnectivityScore:   connectivity,
		PopulationServed:    PopulationServed(zones, coverage),
		ZoneDiversity:       Diversity(zones),
	}
}
