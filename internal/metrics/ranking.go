package metrics

import (
	"sort"

	"github.com/metamorph/greenspace-backend-go/internal/models"
)

// Composite score weights for scenario ranking
const (
	rankWeightSustainability = 0.4
	rankWeightAccessibility  = 0.3
	rankWeightConnectivity   = 0.2
	rankWeightConfidence     = 0.1
)

// CompositeScore combines a scenario's scores into the single ranking
// value. Confidence is on a 0-1 scale and is lifted to 0-100 before
// weighting.
func CompositeScore(s models.ScenarioScore) float64 {
	return s.SustainabilityScore*rankWeightSustainability +
		s.AccessibilityScore*rankWeightAccessibility +
		s.ConnectivityScore*rankWeightConnectivity +
		s.Confidence*100*rankWeightConfidence
}

// RankScenarios orders scenarios best-first by composite score. The
// sort is stable: ties preserve input order. The input slice is not
// modified.
func RankScenarios(scenarios []models.ScenarioScore) []models.ScenarioScore {
	ranked := make([]models.ScenarioScore, len(scenarios))
	copy(ranked, scenarios)

	for i := range ranked {
		ranked[i].CompositeScore = CompositeScore(ranked[i])
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].CompositeScore > ranked[j].CompositeScore
	})

	return ranked
}
