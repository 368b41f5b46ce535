package service

import (
	"github.com/metamorph/greenspace-backend-go/internal/metrics"
	"github.com/metamorph/greenspace-backend-go/internal/models"
)

// analysisRecommendations maps metric shortfalls to actionable advice.
// The trailing suggestions are always included.
func analysisRecommendations(coverage, sustainability, accessibility, connectivity float64) []string {
	var recs []string

	if coverage < 20 {
		recs = append(recs, "Increase green space coverage to meet WHO recommendations (9 sq m per person)")
	}
	if sustainability < 70 {
		recs = append(recs, "Incorporate native plant species to improve ecosystem sustainability")
	}
	if accessibility < 60 {
		recs = append(recs, "Add pedestrian pathways and public transport connections to green spaces")
	}
	if connectivity < 50 {
		recs = append(recs, "Create green corridors to connect isolated green spaces")
	}

	recs = append(recs,
		"Consider adding water features for biodiversity and cooling effects",
		"Implement smart irrigation systems for water conservation",
		"Add community gardens to increase social engagement",
	)

	return recs
}

func environmentalRecommendations(impact metrics.EnvironmentalImpact) []string {
	var recs []string

	if impact.AirQualityImprovement < 50 {
		recs = append(recs, "Increase tree density to improve air quality")
	}
	if impact.CarbonSequestration < 60 {
		recs = append(recs, "Add more forest areas for better carbon sequestration")
	}
	if impact.BiodiversityIndex < 70 {
		recs = append(recs, "Create diverse habitats to support local wildlife")
	}
	if impact.WaterManagement < 65 {
		recs = append(recs, "Implement rain gardens and bioswales for stormwater management")
	}

	return recs
}

func communityBenefits(impact metrics.SocialImpact) []string {
	var benefits []string

	if impact.CommunityAccess > 70 {
		benefits = append(benefits, "Improved access to recreational facilities")
	}
	if impact.HealthBenefits > 60 {
		benefits = append(benefits, "Enhanced physical and mental health opportunities")
	}
	if impact.SocialCohesion > 50 {
		benefits = append(benefits, "Increased community interaction and social cohesion")
	}
	if impact.PropertyValueImpact > 60 {
		benefits = append(benefits, "Positive impact on local property values")
	}

	benefits = append(benefits,
		"Reduced healthcare costs through improved air quality",
		"Enhanced quality of life for residents",
		"Increased tourism and economic activity",
	)

	return benefits
}

// Optimization goal names accepted in requests
const (
	GoalSustainability = "sustainability"
	GoalAccessibility  = "accessibility"
	GoalConnectivity   = "connectivity"
)

// goalRecommendations maps optimization goals to planning advice. An
// empty goal list means all goals; the trailing suggestions are always
// included.
func goalRecommendations(goals []string) []string {
	if len(goals) == 0 {
		goals = []string{GoalSustainability, GoalAccessibility, GoalConnectivity}
	}

	var recs []string
	if hasGoal(goals, GoalSustainability) {
		recs = append(recs, "Prioritize native species selection for long-term sustainability")
	}
	if hasGoal(goals, GoalAccessibility) {
		recs = append(recs, "Ensure pedestrian pathways connect all green zones")
	}
	if hasGoal(goals, GoalConnectivity) {
		recs = append(recs, "Implement green corridors for wildlife movement")
	}

	recs = append(recs,
		"Consider micro-climate effects in zone placement",
		"Optimize for seasonal usage patterns",
		"Integrate smart city sensors for adaptive management",
	)

	return recs
}

// adaptiveRecommendations flags shortfalls in a real-time result: too
// few zones, too little type diversity, or less than a hectare of
// total green area
func adaptiveRecommendations(zones []models.GreenZone) []string {
	var recs []string

	if len(zones) < 3 {
		recs = append(recs, "Consider adding more green zones for better coverage")
	}

	types := make(map[models.ZoneType]bool)
	var totalArea float64
	for _, z := range zones {
		types[z.Type] = true
		totalArea += z.Area
	}
	if len(types) < 3 {
		recs = append(recs, "Increase diversity by adding different zone types")
	}
	if totalArea < 10000 {
		recs = append(recs, "Increase total green space area for greater impact")
	}

	recs = append(recs,
		"Monitor real-time usage patterns for adaptive management",
		"Implement IoT sensors for environmental monitoring",
	)

	return recs
}

func hasGoal(goals []string, goal string) bool {
	for _, g := range goals {
		if g == goal {
			return true
		}
	}
	return false
}

// optimizationInsights summarizes a pipeline run in reviewer-friendly
// terms, keyed off confidence and predicted sustainability
func optimizationInsights(confidence, sustainability float64) []string {
	var insights []string

	switch {
	case confidence > 0.8:
		insights = append(insights, "High confidence in optimal zone placement")
	case confidence > 0.6:
		insights = append(insights, "Moderate confidence - consider additional constraints")
	default:
		insights = append(insights, "Low confidence - more data needed for better optimization")
	}

	if sustainability > 0.8 {
		insights = append(insights, "Excellent sustainability potential identified")
	} else if sustainability > 0.6 {
		insights = append(insights, "Good sustainability with room for improvement")
	}

	insights = append(insights, "Scoring identified optimal spatial relationships between zones")

	return insights
}
