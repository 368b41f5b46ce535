package scoring

import (
	"fmt"

	"github.com/metamorph/greenspace-backend-go/internal/models"
)

// Feature vector layout, mirrored from graph.AssembleFeatures
const (
	featElevation = 2
	featSlope     = 3
	featSoil      = 4
	featWater     = 5
	featProximity = 6 // first of 4 per-type proximity components
)

// HeuristicScorer is the default in-process scoring engine. It derives
// per-node zone-type probabilities from terrain suitability rules and
// the proximity of existing same-type zones, and pools node results
// into graph-level scalars. Deterministic for a given graph.
type HeuristicScorer struct {
	// Confidence is reported verbatim in every score output
	Confidence float64
}

// NewHeuristicScorer creates a heuristic scorer with the default
// confidence level
func NewHeuristicScorer() *HeuristicScorer {
	return &HeuristicScorer{Confidence: 0.85}
}

// Score implements Scorer
func (s *HeuristicScorer) Score(g *models.SpatialGraph) (*models.ScoreOutput, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: nil graph", ErrScoringUnavailable)
	}

	n := g.NodeCount()
	probs := make([][]float64, n)
	var bestSum float64

	for i := 0; i < n; i++ {
		features := g.Features[i]
		if len(features) != models.FeatureDim {
			return nil, fmt.Errorf("%w: node %d has %d features, want %d",
				ErrScoringUnavailable, i, len(features), models.FeatureDim)
		}

		row := make([]float64, len(models.ZoneTypes()))
		best := 0.0
		for z := range row {
			p := nodeProbability(features, z)
			row[z] = p
			if p > best {
				best = p
			}
		}
		probs[i] = row
		bestSum += best
	}

	out := &models.ScoreOutput{
		ZoneProbabilities: probs,
		Confidence:        s.Confidence,
	}

	if n > 0 {
		out.Sustainability = clamp01(bestSum / float64(n))
		out.Accessibility = clamp01(connectedFraction(g))
		out.Connectivity = clamp01(averageDegree(g) / 8.0)
	}

	return out, nil
}

// nodeProbability scores one zone type for one node: a small base,
// a large term when the terrain suits the type, and a pull toward
// existing zones of the same type.
func nodeProbability(features []float64, zoneIndex int) float64 {
	elevation := features[featElevation] * 100
	slope := features[featSlope] * 45
	soil := features[featSoil]
	water := features[featWater] >= 0.5
	proximity := features[featProximity+zoneIndex]

	suitable := false
	switch models.ZoneTypes()[zoneIndex] {
	case models.ZonePark:
		suitable = slope < 10 && (soil == 0.75 || soil == 0.5)
	case models.ZoneGarden:
		suitable = slope < 5 && (soil == 0.75 || soil == 0.25)
	case models.ZoneForest:
		suitable = elevation > 20 && (soil == 0.75 || soil == 0.25)
	case models.ZoneWetland:
		suitable = elevation < 30 && water
	}

	p := 0.2
	if suitable {
		p += 0.6
	}
	p += 0.2 * proximity

	return clamp01(p)
}

// connectedFraction is the share of nodes with at least one edge
func connectedFraction(g *models.SpatialGraph) float64 {
	n := g.NodeCount()
	if n == 0 {
		return 0
	}

	connected := make([]bool, n)
	for _, e := range g.Edges {
		if e[0] >= 0 && e[0] < n {
			connected[e[0]] = true
		}
	}

	count := 0
	for _, c := range connected {
		if c {
			count++
		}
	}
	return float64(count) / float64(n)
}

// averageDegree counts directed edges per node
func averageDegree(g *models.SpatialGraph) float64 {
	n := g.NodeCount()
	if n == 0 {
		return 0
	}
	return float64(len(g.Edges)) / float64(n)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
