// Package cluster turns per-node zone-type probabilities into candidate
// zone polygons by grouping high-probability grid points.
package cluster

import (
	"fmt"

	"github.com/metamorph/greenspace-backend-go/internal/models"
	"github.com/metamorph/greenspace-backend-go/internal/spatial"
)

const (
	// ProbabilityThreshold qualifies a node for a zone type
	ProbabilityThreshold = 0.7
	// MinQualifyingNodes is the minimum qualifying-node count needed
	// to attempt clustering for a zone type
	MinQualifyingNodes = 6
	// MinClusterSize is the minimum cluster membership that can form a
	// polygon, matching the polygon ring minimum
	MinClusterSize = 3
	// MaxZones caps total output across all zone types
	MaxZones = 6
	// ClusterDistance is the planar membership threshold in coordinate
	// degrees for greedy single-link clustering
	ClusterDistance = 0.001
)

// Synthesize groups high-probability nodes per zone type into spatial
// clusters and emits candidate zone polygons, capped at MaxZones in
// insertion order. The returned satisfaction score measures how well
// the emitted zones meet the supplied constraints.
//
// probabilities holds one row per position; columns follow
// models.ZoneTypes() order.
func Synthesize(positions []models.Coordinate, probabilities [][]float64, constraints models.Constraints) ([]models.GreenZone, float64) {
	var zones []models.GreenZone

	for zoneIdx, zoneType := range models.ZoneTypes() {
		qualifying, probSum := qualifyingNodes(positions, probabilities, zoneIdx)
		if len(qualifying) < MinQualifyingNodes {
			continue
		}

		meanProb := probSum / float64(len(qualifying))

		for clusterIdx, members := range clusterPoints(qualifying) {
			if len(zones) >= MaxZones {
				break
			}

			ring := spatial.Polygon(members)
			zones = append(zones, models.GreenZone{
				ID:          fmt.Sprintf("zone-%s-%d", zoneType, clusterIdx),
				Name:        fmt.Sprintf("Proposed %s %d", capitalize(string(zoneType)), clusterIdx+1),
				Type:        zoneType,
				Coordinates: members,
				Area:        ring.Area(),
				Confidence:  meanProb,
			})
		}

		if len(zones) >= MaxZones {
			break
		}
	}

	return zones, Satisfaction(zones, constraints)
}

// qualifyingNodes selects positions whose probability for the given
// zone type exceeds the threshold, returning them with the probability
// sum for the confidence tag
func qualifyingNodes(positions []models.Coordinate, probabilities [][]float64, zoneIdx int) ([]models.Coordinate, float64) {
	var qualifying []models.Coordinate
	var probSum float64

	for i, pos := range positions {
		if i >= len(probabilities) || zoneIdx >= len(probabilities[i]) {
			continue
		}
		if p := probabilities[i][zoneIdx]; p > ProbabilityThreshold {
			qualifying = append(qualifying, pos)
			probSum += p
		}
	}

	return qualifying, probSum
}

// clusterPoints performs greedy single-link clustering: each unvisited
// point seeds a cluster that absorbs every unvisited point within
// ClusterDistance of the seed. Clusters smaller than MinClusterSize
// are discarded.
func clusterPoints(points []models.Coordinate) [][]models.Coordinate {
	var clusters [][]models.Coordinate
	visited := make([]bool, len(points))

	for i := range points {
		if visited[i] {
			continue
		}

		cluster := []models.Coordinate{points[i]}
		visited[i] = true

		for j := range points {
			if visited[j] {
				continue
			}
			if spatial.PlanarDistance(points[i], points[j]) <= ClusterDistance {
				cluster = append(cluster, points[j])
				visited[j] = true
			}
		}

		if len(cluster) >= MinClusterSize {
			clusters = append(clusters, cluster)
		}
	}

	return clusters
}

// Satisfaction scores how well a zone set meets the constraints:
// start at 100, subtract 20 if total area falls short of
// min_total_area, subtract 15 per missing required zone type, floor 0.
func Satisfaction(zones []models.GreenZone, constraints models.Constraints) float64 {
	score := 100.0

	if constraints.MinTotalArea > 0 {
		var total float64
		for _, z := range zones {
			total += z.Area
		}
		if total < constraints.MinTotalArea {
			score -= 20
		}
	}

	if len(constraints.RequiredZoneTypes) > 0 {
		present := make(map[string]bool, len(zones))
		for _, z := range zones {
			present[string(z.Type)] = true
		}
		for _, required := range constraints.RequiredZoneTypes {
			if !present[required] {
				score -= 15
			}
		}
	}

	if score < 0 {
		score = 0
	}
	return score
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
