package graph

import (
	"github.com/metamorph/greenspace-backend-go/internal/models"
	"github.com/metamorph/greenspace-backend-go/internal/spatial"
)

// BuildEdges connects every pair of points whose approximate meter
// distance is within maxDistanceMeters. Each qualifying pair yields
// both directed edges, giving undirected semantics; self loops are
// never produced. The pair scan is O(n^2), which bounds practical grid
// sizes to a few thousand points.
func BuildEdges(points []models.Coordinate, maxDistanceMeters float64) []models.Edge {
	var edges []models.Edge

	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			meters := spatial.PlanarDistanceMeters(points[i], points[j])
			if meters <= maxDistanceMeters {
				edges = append(edges, models.Edge{i, j}, models.Edge{j, i})
			}
		}
	}

	return edges
}
