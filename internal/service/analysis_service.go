package service

import (
	"fmt"
	"time"

	"github.com/metamorph/greenspace-backend-go/internal/metrics"
	"github.com/metamorph/greenspace-backend-go/internal/models"
	"github.com/metamorph/greenspace-backend-go/internal/spatial"
	"github.com/metamorph/greenspace-backend-go/internal/terrain"
)

// terrainAnalysisGridSize is the resolution used for standalone
// terrain analysis; coarser than optimization runs because the full
// sample set is returned to the client
const terrainAnalysisGridSize = 20

// AnalysisService computes scenario metrics and impact assessments
// over user-supplied zones
type AnalysisService struct{}

// NewAnalysisService creates a new analysis service
func NewAnalysisService() *AnalysisService {
	return &AnalysisService{}
}

// AnalysisResult is the full output of a scenario analysis run
type AnalysisResult struct {
	Coverage            float64       `json:"coverage"`
	SustainabilityScore float64       `json:"sustainability_score"`
	AccessibilityScore  float64       `json:"accessibility_score"`
	ConnectivityScore   float64       `json:"connectivity_score"`
	PopulationServed    int           `json:"population_served"`
	Recommendations     []string      `json:"recommendations"`
	AnalysisTimestamp   time.Time     `json:"analysis_timestamp"`
	Metrics             AnalysisExtra `json:"metrics"`
}

// AnalysisExtra carries the secondary aggregates of an analysis run
type AnalysisExtra struct {
	TotalGreenArea float64 `json:"total_green_area"`
	ZoneCount      int     `json:"zone_count"`
	ZoneDiversity  float64 `json:"zone_diversity"`
}

// Run validates the region and computes the scenario metrics for the
// supplied zones
func (s *AnalysisService) Run(region []models.Coordinate, zones []models.GreenZone, samples []models.TerrainSample, centers []models.PopulationCenter) (*AnalysisResult, error) {
	ring, err := spatial.BuildPolygon(region)
	if err != nil {
		return nil, fmt.Errorf("invalid region: %w", err)
	}

	m := metrics.Compute(zones, ring, samples, centers)

	var totalArea float64
	for _, z := range zones {
		totalArea += z.Area
	}

	return &AnalysisResult{
		Coverage:            m.Coverage,
		SustainabilityScore: m.SustainabilityScore,
		AccessibilityScore:  m.AccessibilityScore,
		ConnectivityScore:   m.ConnectivityScore,
		PopulationServed:    m.PopulationServed,
		Recommendations: analysisRecommendations(
			m.Coverage, m.SustainabilityScore, m.AccessibilityScore, m.ConnectivityScore),
		AnalysisTimestamp: time.Now(),
		Metrics: AnalysisExtra{
			TotalGreenArea: totalArea,
			ZoneCount:      len(zones),
			ZoneDiversity:  m.ZoneDiversity,
		},
	}, nil
}

// TerrainAnalysisResult bundles a synthetic terrain grid with its
// statistics and suitability classification
type TerrainAnalysisResult struct {
	TerrainData []models.TerrainSample                      `json:"terrain_data"`
	Statistics  terrain.Statistics                          `json:"statistics"`
	Suitability map[models.ZoneType]terrain.TypeSuitability `json:"suitability_analysis"`
}

// TerrainAnalysis generates a synthetic terrain grid for a region and
// summarizes it
func (s *AnalysisService) TerrainAnalysis(region []models.Coordinate) (*TerrainAnalysisResult, error) {
	ring, err := spatial.BuildPolygon(region)
	if err != nil {
		return nil, fmt.Errorf("invalid region: %w", err)
	}

	samples := terrain.GenerateGrid(ring, terrainAnalysisGridSize)

	return &TerrainAnalysisResult{
		TerrainData: samples,
		Statistics:  terrain.Summarize(samples),
		Suitability: terrain.Suitability(samples),
	}, nil
}

// EnvironmentalResult is the environmental impact assessment output
type EnvironmentalResult struct {
	EnvironmentalScore float64                     `json:"environmental_score"`
	ImpactMetrics      metrics.EnvironmentalImpact `json:"impact_metrics"`
	Recommendations    []string                    `json:"recommendations"`
	AnalysisTimestamp  time.Time                   `json:"analysis_timestamp"`
}

// EnvironmentalImpact assesses the environmental proxies for a zone set
func (s *AnalysisService) EnvironmentalImpact(zones []models.GreenZone) *EnvironmentalResult {
	impact := metrics.AssessEnvironmental(zones)
	return &EnvironmentalResult{
		EnvironmentalScore: impact.OverallScore,
		ImpactMetrics:      impact,
		Recommendations:    environmentalRecommendations(impact),
		AnalysisTimestamp:  time.Now(),
	}
}

// SocialResult is the social impact assessment output
type SocialResult struct {
	SocialScore       float64              `json:"social_score"`
	SocialMetrics     metrics.SocialImpact `json:"social_metrics"`
	CommunityBenefits []string             `json:"community_benefits"`
	AnalysisTimestamp time.Time            `json:"analysis_timestamp"`
}

// SocialImpact assesses the social proxies for a zone set within a
// region
func (s *AnalysisService) SocialImpact(zones []models.GreenZone, region []models.Coordinate, centers []models.PopulationCenter) *SocialResult {
	access := metrics.Accessibility(zones, centers)
	impact := metrics.AssessSocial(zones, region, access)
	return &SocialResult{
		SocialScore:       impact.OverallScore,
		SocialMetrics:     impact,
		CommunityBenefits: communityBenefits(impact),
		AnalysisTimestamp: time.Now(),
	}
}
