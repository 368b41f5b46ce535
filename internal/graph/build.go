package graph

import (
	"github.com/metamorph/greenspace-backend-go/internal/models"
	"github.com/metamorph/greenspace-backend-go/internal/spatial"
	"github.com/metamorph/greenspace-backend-go/internal/terrain"
)

// Build discretizes a region into a spatial graph: interior grid
// points become nodes with assembled feature vectors, and nodes within
// maxDistanceMeters of each other are connected. Terrain samples and
// existing zones may be empty; a sparse-input graph is still valid.
func Build(region spatial.Polygon, gridSize int, samples []models.TerrainSample, zones []models.GreenZone, maxDistanceMeters float64) *models.SpatialGraph {
	points := spatial.GenerateGrid(region, gridSize)

	features := make([][]float64, len(points))
	for i, p := range points {
		sample := terrain.Interpolate(p, samples)
		features[i] = AssembleFeatures(p, sample, zones)
	}

	return &models.SpatialGraph{
		Features:  features,
		Edges:     BuildEdges(points, maxDistanceMeters),
		Positions: points,
	}
}
