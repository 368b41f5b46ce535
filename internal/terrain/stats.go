package terrain

import (
	"github.com/metamorph/greenspace-backend-go/internal/models"
	"github.com/metamorph/greenspace-backend-go/internal/stats"
)

// RangeStats summarizes a terrain attribute across a sample set
type RangeStats struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Mean float64 `json:"mean"`
	Std  float64 `json:"std"`
}

// Statistics summarizes a terrain sample set
type Statistics struct {
	Elevation        RangeStats         `json:"elevation"`
	Slope            RangeStats         `json:"slope"`
	SoilDistribution map[string]float64 `json:"soil_distribution"` // percentage per soil type
	WaterCoverage    float64            `json:"water_coverage"`    // percentage of samples with water
}

// Summarize computes attribute statistics over a terrain sample set.
// Empty input yields zero statistics.
func Summarize(samples []models.TerrainSample) Statistics {
	elevations := make([]float64, 0, len(samples))
	slopes := make([]float64, 0, len(samples))
	for _, s := range samples {
		elevations = append(elevations, s.Elevation)
		slopes = append(slopes, s.Slope)
	}

	return Statistics{
		Elevation: RangeStats{
			Min:  stats.Min(elevations),
			Max:  stats.Max(elevations),
			Mean: stats.Mean(elevations),
			Std:  stats.StdDev(elevations),
		},
		Slope: RangeStats{
			Min:  stats.Min(slopes),
			Max:  stats.Max(slopes),
			Mean: stats.Mean(slopes),
			Std:  stats.StdDev(slopes),
		},
		SoilDistribution: soilDistribution(samples),
		WaterCoverage:    waterCoverage(samples),
	}
}

func soilDistribution(samples []models.TerrainSample) map[string]float64 {
	dist := make(map[string]float64)
	if len(samples) == 0 {
		return dist
	}

	counts := make(map[string]int)
	for _, s := range samples {
		soil := s.SoilType
		if soil == "" {
			soil = models.SoilUnknown
		}
		counts[soil]++
	}

	total := float64(len(samples))
	for soil, count := range counts {
		dist[soil] = float64(count) / total * 100
	}
	return dist
}

func waterCoverage(samples []models.TerrainSample) float64 {
	if len(samples) == 0 {
		return 0
	}
	water := 0
	for _, s := range samples {
		if s.WaterPresence {
			water++
		}
	}
	return float64(water) / float64(len(samples)) * 100
}

// TypeSuitability holds the share of sampled terrain suited to one
// zone type
type TypeSuitability struct {
	SuitablePoints int     `json:"suitable_points"`
	Percentage     float64 `json:"percentage"`
}

// Suitability classifies each sample against per-type terrain rules
// and returns the suitable share for every zone type
func Suitability(samples []models.TerrainSample) map[models.ZoneType]TypeSuitability {
	result := make(map[models.ZoneType]TypeSuitability, 4)
	for _, zt := range models.ZoneTypes() {
		result[zt] = TypeSuitability{}
	}
	if len(samples) == 0 {
		return result
	}

	for _, s := range samples {
		if SuitsZoneType(s, models.ZonePark) {
			result[models.ZonePark] = TypeSuitability{SuitablePoints: result[models.ZonePark].SuitablePoints + 1}
		}
		if SuitsZoneType(s, models.ZoneGarden) {
			result[models.ZoneGarden] = TypeSuitability{SuitablePoints: result[models.ZoneGarden].SuitablePoints + 1}
		}
		if SuitsZoneType(s, models.ZoneForest) {
			result[models.ZoneForest] = TypeSuitability{SuitablePoints: result[models.ZoneForest].SuitablePoints + 1}
		}
		if SuitsZoneType(s, models.ZoneWetland) {
			result[models.ZoneWetland] = TypeSuitability{SuitablePoints: result[models.ZoneWetland].SuitablePoints + 1}
		}
	}

	total := float64(len(samples))
	for zt, suit := range result {
		suit.Percentage = float64(suit.SuitablePoints) / total * 100
		result[zt] = suit
	}
	return result
}

// SuitsZoneType applies the terrain rule for a single zone type:
// parks want gentle slopes and drainage, gardens flat good soil,
// forests elevated retentive soil, wetlands low wet ground.
func SuitsZoneType(s models.TerrainSample, zt models.ZoneType) bool {
	switch zt {
	case models.ZonePark:
		return s.Slope < 10 && (s.SoilType == models.SoilLoam || s.SoilType == models.SoilSand)
	case models.ZoneGarden:
		return s.Slope < 5 && (s.SoilType == models.SoilLoam || s.SoilType == models.SoilClay)
	case models.ZoneForest:
		return s.Elevation > 20 && (s.SoilType == models.SoilLoam || s.SoilType == models.SoilClay)
	case models.ZoneWetland:
		return s.Elevation < 30 && s.WaterPresence
	}
	return false
}
