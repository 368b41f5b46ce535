package models

// FeatureDim is the fixed length of a node feature vector:
// [lat, lng, elevation, slope, soil, water, park, garden, forest, wetland]
const FeatureDim = 10

// Edge is an ordered pair of node indices. Undirected edges appear
// twice, once in each direction.
type Edge [2]int

// SpatialGraph is the discretized representation of a planning region:
// one node per interior grid point, edges between nodes within a fixed
// spatial distance
type SpatialGraph struct {
	Features  [][]float64  `json:"features"`  // node id -> feature vector of length FeatureDim
	Edges     []Edge       `json:"edges"`     // symmetric, no self loops
	Positions []Coordinate `json:"positions"` // node id -> grid point location
}

// NodeCount returns the number of nodes in the graph
func (g *SpatialGraph) NodeCount() int {
	return len(g.Positions)
}

// ScoreOutput is what the scoring capability returns for a graph
type ScoreOutput struct {
	// ZoneProbabilities holds one row per node; columns follow
	// ZoneTypes() order. No normalization is assumed beyond what the
	// backing engine produces.
	ZoneProbabilities [][]float64 `json:"zone_probabilities"`

	// Graph-level scalars in [0, 1]
	Sustainability float64 `json:"sustainability"`
	Accessibility  float64 `json:"accessibility"`
	Connectivity   float64 `json:"connectivity"`
	Confidence     float64 `json:"confidence"`
}
