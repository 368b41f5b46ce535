package metrics

import (
	"math"

	"github.com/metamorph/greenspace-backend-go/internal/models"
	"github.com/metamorph/greenspace-backend-go/internal/spatial"
	"github.com/metamorph/greenspace-backend-go/internal/stats"
)

// Per-zone-type constant tables. These values are calibration
// constants and must not be changed without re-validating downstream
// consumers.
var (
	// SequestrationRates in tons CO2 per hectare per year
	SequestrationRates = map[models.ZoneType]float64{
		models.ZonePark:    2.5,
		models.ZoneGarden:  1.5,
		models.ZoneForest:  4.0,
		models.ZoneWetland: 3.0,
	}

	// BiodiversityScores on a 0-100 habitat quality scale
	BiodiversityScores = map[models.ZoneType]float64{
		models.ZonePark:    60,
		models.ZoneGarden:  40,
		models.ZoneForest:  90,
		models.ZoneWetland: 85,
	}

	// CoolingEffects in degrees Celsius of local reduction
	CoolingEffects = map[models.ZoneType]float64{
		models.ZonePark:    3.0,
		models.ZoneGarden:  2.0,
		models.ZoneForest:  4.0,
		models.ZoneWetland: 3.5,
	}

	// NoiseReduction in decibels
	NoiseReduction = map[models.ZoneType]float64{
		models.ZonePark:    5,
		models.ZoneGarden:  3,
		models.ZoneForest:  8,
		models.ZoneWetland: 4,
	}

	// RecreationalValues on a 0-100 scale
	RecreationalValues = map[models.ZoneType]float64{
		models.ZonePark:    80,
		models.ZoneGarden:  60,
		models.ZoneForest:  70,
		models.ZoneWetland: 50,
	}
)

// Table defaults for an unrecognized zone type
const (
	defaultSequestration = 2.0
	defaultBiodiversity  = 50.0
	defaultCooling       = 2.5
	defaultNoise         = 4.0
	defaultRecreation    = 60.0
)

// EnvironmentalImpact holds the environmental proxy scores, each on a
// 0-100 scale
type EnvironmentalImpact struct {
	AirQualityImprovement float64 `json:"air_quality_improvement"`
	CarbonSequestration   float64 `json:"carbon_sequestration"`
	BiodiversityIndex     float64 `json:"biodiversity_index"`
	WaterManagement       float64 `json:"water_management"`
	HeatIslandReduction   float64 `json:"heat_island_reduction"`
	NoiseReductionScore   float64 `json:"noise_reduction"`
	OverallScore          float64 `json:"overall_score"`
}

// SocialImpact holds the social proxy scores, each on a 0-100 scale
type SocialImpact struct {
	CommunityAccess     float64 `json:"community_access"`
	Recreational        float64 `json:"recreational_opportunities"`
	HealthBenefits      float64 `json:"health_benefits"`
	SocialCohesion      float64 `json:"social_cohesion"`
	PropertyValueImpact float64 `json:"property_value_impact"`
	EquityDistribution  float64 `json:"equity_distribution"`
	OverallScore        float64 `json:"overall_score"`
}

// AssessEnvironmental computes the environmental proxy scores for a
// zone set
func AssessEnvironmental(zones []models.GreenZone) EnvironmentalImpact {
	impact := EnvironmentalImpact{
		AirQualityImprovement: AirQualityImprovement(zones),
		CarbonSequestration:   CarbonSequestration(zones),
		BiodiversityIndex:     BiodiversityIndex(zones),
		WaterManagement:       WaterManagement(zones),
		HeatIslandReduction:   HeatIslandReduction(zones),
		NoiseReductionScore:   NoiseReductionScore(zones),
	}
	impact.OverallScore = stats.Mean([]float64{
		impact.AirQualityImprovement,
		impact.CarbonSequestration,
		impact.BiodiversityIndex,
		impact.WaterManagement,
		impact.HeatIslandReduction,
		impact.NoiseReductionScore,
	})
	return impact
}

// AssessSocial computes the social proxy scores for a zone set within
// a region. communityAccess is the accessibility metric, reused here
// as the access component.
func AssessSocial(zones []models.GreenZone, region []models.Coordinate, communityAccess float64) SocialImpact {
	impact := SocialImpact{
		CommunityAccess:     communityAccess,
		Recreational:        RecreationalScore(zones),
		HealthBenefits:      HealthBenefits(zones),
		SocialCohesion:      SocialCohesion(zones),
		PropertyValueImpact: PropertyValueImpact(zones),
		EquityDistribution:  EquityDistribution(zones, region),
	}
	impact.OverallScore = stats.Mean([]float64{
		impact.CommunityAccess,
		impact.Recreational,
		impact.HealthBenefits,
		impact.SocialCohesion,
		impact.PropertyValueImpact,
		impact.EquityDistribution,
	})
	return impact
}

// AirQualityImprovement estimates CO2 filtering from total green area
// (27 kg per year per 100 square meters)
func AirQualityImprovement(zones []models.GreenZone) float64 {
	co2Reduction := totalArea(zones) / 100 * 27
	return math.Min(100, co2Reduction/1000*10)
}

// CarbonSequestration sums per-type sequestration over all zones
func CarbonSequestration(zones []models.GreenZone) float64 {
	var total float64
	for _, z := range zones {
		rate, ok := SequestrationRates[z.Type]
		if !ok {
			rate = defaultSequestration
		}
		total += z.Area * rate / 1000
	}
	return math.Min(100, total*5)
}

// BiodiversityIndex is the area-weighted mean of per-type biodiversity
// scores
func BiodiversityIndex(zones []models.GreenZone) float64 {
	return areaWeightedScore(zones, BiodiversityScores, defaultBiodiversity)
}

// WaterManagement scores stormwater handling: a base from total area
// plus a wetland bonus
func WaterManagement(zones []models.GreenZone) float64 {
	base := math.Min(80, totalArea(zones)/10000*50)

	var wetlandArea float64
	for _, z := range zones {
		if z.Type == models.ZoneWetland {
			wetlandArea += z.Area
		}
	}

	return base + math.Min(20, wetlandArea/1000*10)
}

// HeatIslandReduction sums per-type cooling effects over all zones
func HeatIslandReduction(zones []models.GreenZone) float64 {
	var total float64
	for _, z := range zones {
		effect, ok := CoolingEffects[z.Type]
		if !ok {
			effect = defaultCooling
		}
		total += effect * z.Area / 1000
	}
	return math.Min(100, total*2)
}

// NoiseReductionScore sums per-type noise damping over all zones
func NoiseReductionScore(zones []models.GreenZone) float64 {
	var total float64
	for _, z := range zones {
		db, ok := NoiseReduction[z.Type]
		if !ok {
			db = defaultNoise
		}
		total += db * z.Area / 1000
	}
	return math.Min(100, total*3)
}

// RecreationalScore is the area-weighted mean of per-type recreational
// values
func RecreationalScore(zones []models.GreenZone) float64 {
	return areaWeightedScore(zones, RecreationalValues, defaultRecreation)
}

// HealthBenefits scores total green area against the WHO guideline of
// 9 square meters per person at an assumed density of 100 people per
// hectare
func HealthBenefits(zones []models.GreenZone) float64 {
	const recommendedArea = 9 * 100
	return math.Min(100, totalArea(zones)/recommendedArea*100)
}

// SocialCohesion scores the area of socially interactive zone types
// (parks and gardens)
func SocialCohesion(zones []models.GreenZone) float64 {
	var socialArea float64
	for _, z := range zones {
		if z.Type == models.ZonePark || z.Type == models.ZoneGarden {
			socialArea += z.Area
		}
	}
	return math.Min(100, socialArea/5000*80)
}

// PropertyValueImpact estimates nearby property value lift from area
// and zone-type diversity
func PropertyValueImpact(zones []models.GreenZone) float64 {
	types := make(map[models.ZoneType]bool)
	for _, z := range zones {
		types[z.Type] = true
	}

	areaImpact := math.Min(70, totalArea(zones)/10000*50)
	diversityBonus := float64(len(types)) * 5

	return math.Min(100, areaImpact+diversityBonus)
}

// EquityDistribution scores how evenly zones spread around the region
// center; a lower spread of centroid distances means a more equitable
// distribution. Returns 0 for empty input.
func EquityDistribution(zones []models.GreenZone, region []models.Coordinate) float64 {
	if len(zones) == 0 || len(region) == 0 {
		return 0
	}

	center := spatial.Centroid(region)

	var distances []float64
	for _, z := range zones {
		if len(z.Coordinates) == 0 {
			continue
		}
		distances = append(distances, spatial.PlanarDistance(z.Centroid(), center))
	}
	if len(distances) == 0 {
		return 0
	}

	return math.Max(0, 100-stats.StdDev(distances)*10000)
}

func totalArea(zones []models.GreenZone) float64 {
	var total float64
	for _, z := range zones {
		total += z.Area
	}
	return total
}

func areaWeightedScore(zones []models.GreenZone, table map[models.ZoneType]float64, fallback float64) float64 {
	if len(zones) == 0 {
		return 0
	}

	values := make([]float64, 0, len(zones))
	weights := make([]float64, 0, len(zones))
	for _, z := range zones {
		score, ok := table[z.Type]
		if !ok {
			score = fallback
		}
		values = append(values, score)
		weights = append(weights, z.Area)
	}

	// All-zero areas mean no meaningful weighting, not a plain mean
	if stats.Sum(weights) == 0 {
		return 0
	}
	return stats.WeightedMean(values, weights)
}
