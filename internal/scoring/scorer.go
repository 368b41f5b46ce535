// Package scoring defines the boundary to the predictive scoring
// capability. The pipeline only depends on the Scorer interface; the
// backing engine (in-process heuristic, remote model service) is an
// injection decision made at construction time.
package scoring

import (
	"errors"

	"github.com/metamorph/greenspace-backend-go/internal/models"
)

// ErrScoringUnavailable is returned when the scoring capability cannot
// be reached or fails. A request that hits this error aborts without
// partial zone output.
var ErrScoringUnavailable = errors.New("scoring capability unavailable")

// Scorer maps a spatial graph to per-node zone-type probabilities and
// graph-level scalar scores. Implementations must be side-effect free
// and safe for concurrent use.
type Scorer interface {
	Score(g *models.SpatialGraph) (*models.ScoreOutput, error)
}
