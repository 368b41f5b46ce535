package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metamorph/greenspace-backend-go/internal/cluster"
	"github.com/metamorph/greenspace-backend-go/internal/jobs"
	"github.com/metamorph/greenspace-backend-go/internal/models"
	"github.com/metamorph/greenspace-backend-go/internal/scoring"
)

// stubScorer returns fixed graph scalars and a uniform park
// probability for every node
type stubScorer struct {
	parkProbability float64
}

func (s *stubScorer) Score(g *models.SpatialGraph) (*models.ScoreOutput, error) {
	probs := make([][]float64, g.NodeCount())
	for i := range probs {
		probs[i] = []float64{s.parkProbability, 0.1, 0.1, 0.1}
	}
	return &models.ScoreOutput{
		ZoneProbabilities: probs,
		Sustainability:    0.8,
		Accessibility:     0.7,
		Connectivity:      0.6,
		Confidence:        0.85,
	}, nil
}

// wetlandScorer favors the wetland column for every node
type wetlandScorer struct{}

func (wetlandScorer) Score(g *models.SpatialGraph) (*models.ScoreOutput, error) {
	probs := make([][]float64, g.NodeCount())
	for i := range probs {
		probs[i] = []float64{0.1, 0.1, 0.1, 0.9}
	}
	return &models.ScoreOutput{
		ZoneProbabilities: probs,
		Sustainability:    0.8,
		Accessibility:     0.7,
		Connectivity:      0.6,
		Confidence:        0.85,
	}, nil
}

// failingScorer simulates an unreachable scoring engine
type failingScorer struct{}

func (failingScorer) Score(g *models.SpatialGraph) (*models.ScoreOutput, error) {
	return nil, errors.New("connection refused")
}

func smallRegion() []models.Coordinate {
	return []models.Coordinate{
		{Lat: 0, Lng: 0},
		{Lat: 0, Lng: 0.005},
		{Lat: 0.005, Lng: 0.005},
		{Lat: 0.005, Lng: 0},
	}
}

func newTestOptimizer(scorer scoring.Scorer) *OptimizerService {
	return NewOptimizerService(scorer, jobs.NewStore(), 8, 200)
}

func TestOptimizeProducesZonesAndScores(t *testing.T) {
	svc := newTestOptimizer(&stubScorer{parkProbability: 0.9})

	result, err := svc.Optimize(ScenarioInput{Region: smallRegion()})
	require.NoError(t, err)

	assert.InDelta(t, 80.0, result.Predictions.SustainabilityScore, 1e-9)
	assert.InDelta(t, 70.0, result.Predictions.AccessibilityScore, 1e-9)
	assert.InDelta(t, 60.0, result.Predictions.ConnectivityScore, 1e-9)
	assert.Equal(t, 0.85, result.Predictions.Confidence)

	require.NotEmpty(t, result.OptimalZones)
	assert.LessOrEqual(t, len(result.OptimalZones), cluster.MaxZones)
	for _, z := range result.OptimalZones {
		assert.Equal(t, models.ZonePark, z.Type)
		assert.GreaterOrEqual(t, len(z.Coordinates), cluster.MinClusterSize)
	}

	assert.Equal(t, 100.0, result.ConstraintSatisfaction)
	assert.NotEmpty(t, result.Insights)
	assert.False(t, result.AnalysisTimestamp.IsZero())
}

func TestOptimizeNoQualifyingNodes(t *testing.T) {
	svc := newTestOptimizer(&stubScorer{parkProbability: 0.3})

	result, err := svc.Optimize(ScenarioInput{Region: smallRegion()})
	require.NoError(t, err)
	assert.Empty(t, result.OptimalZones)
}

func TestOptimizeInvalidRegion(t *testing.T) {
	svc := newTestOptimizer(&stubScorer{parkProbability: 0.9})

	_, err := svc.Optimize(ScenarioInput{
		Region: []models.Coordinate{{Lat: 0, Lng: 0}},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrInvalidGeometry)
}

func TestOptimizeScoringFailure(t *testing.T) {
	svc := newTestOptimizer(failingScorer{})

	_, err := svc.Optimize(ScenarioInput{Region: smallRegion()})
	require.Error(t, err)
	assert.ErrorIs(t, err, scoring.ErrScoringUnavailable)
}

func TestOptimizeConstraintSatisfaction(t *testing.T) {
	svc := newTestOptimizer(&stubScorer{parkProbability: 0.9})

	result, err := svc.Optimize(ScenarioInput{
		Region: smallRegion(),
		Constraints: models.Constraints{
			RequiredZoneTypes: []string{"wetland"},
		},
	})
	require.NoError(t, err)

	// Only park zones form, so the wetland requirement costs 15
	assert.Equal(t, 85.0, result.ConstraintSatisfaction)
}

func TestOptimizeGoalRecommendations(t *testing.T) {
	svc := newTestOptimizer(&stubScorer{parkProbability: 0.9})

	result, err := svc.Optimize(ScenarioInput{
		Region:            smallRegion(),
		OptimizationGoals: []string{"sustainability"},
	})
	require.NoError(t, err)

	assert.Contains(t, result.Recommendations, "Prioritize native species selection for long-term sustainability")
	assert.NotContains(t, result.Recommendations, "Ensure pedestrian pathways connect all green zones")
	assert.Contains(t, result.Recommendations, "Consider micro-climate effects in zone placement")
}

func TestOptimizeDefaultsToAllGoals(t *testing.T) {
	svc := newTestOptimizer(&stubScorer{parkProbability: 0.9})

	result, err := svc.Optimize(ScenarioInput{Region: smallRegion()})
	require.NoError(t, err)

	assert.Contains(t, result.Recommendations, "Prioritize native species selection for long-term sustainability")
	assert.Contains(t, result.Recommendations, "Ensure pedestrian pathways connect all green zones")
	assert.Contains(t, result.Recommendations, "Implement green corridors for wildlife movement")
}

func TestRealTimeOptimize(t *testing.T) {
	svc := newTestOptimizer(&stubScorer{parkProbability: 0.9})

	result, err := svc.RealTimeOptimize(smallRegion(), models.Constraints{}, nil)
	require.NoError(t, err)
	assert.InDelta(t, 80.0, result.Predictions.SustainabilityScore, 1e-9)
}

func TestRealTimeOptimizeGoalAdjustments(t *testing.T) {
	svc := newTestOptimizer(wetlandScorer{})

	goals := []string{"sustainability", "accessibility", "connectivity"}
	result, err := svc.RealTimeOptimize(smallRegion(), models.Constraints{}, goals)
	require.NoError(t, err)

	require.NotEmpty(t, result.OptimalZones)
	for _, z := range result.OptimalZones {
		assert.Equal(t, models.ZoneWetland, z.Type)
		assert.Equal(t, "high", z.Priority)
		assert.Equal(t, []string{"pathways", "public_transport_access"}, z.AccessibilityFeatures)
		assert.Equal(t, []string{"wildlife_corridors", "green_pathways"}, z.ConnectivityFeatures)
	}
}

func TestRealTimeOptimizeNoGoalsNoAdjustments(t *testing.T) {
	svc := newTestOptimizer(&stubScorer{parkProbability: 0.9})

	result, err := svc.RealTimeOptimize(smallRegion(), models.Constraints{}, nil)
	require.NoError(t, err)

	require.NotEmpty(t, result.OptimalZones)
	for _, z := range result.OptimalZones {
		assert.Empty(t, z.Priority)
		assert.Empty(t, z.AccessibilityFeatures)
		assert.Empty(t, z.ConnectivityFeatures)
	}
}

func TestRealTimeOptimizeAdaptiveRecommendations(t *testing.T) {
	svc := newTestOptimizer(&stubScorer{parkProbability: 0.9})

	result, err := svc.RealTimeOptimize(smallRegion(), models.Constraints{}, nil)
	require.NoError(t, err)

	// A single park zone trips both the zone-count and diversity checks
	assert.Contains(t, result.Recommendations, "Consider adding more green zones for better coverage")
	assert.Contains(t, result.Recommendations, "Increase diversity by adding different zone types")
	assert.Contains(t, result.Recommendations, "Monitor real-time usage patterns for adaptive management")
	assert.NotContains(t, result.Recommendations, "Prioritize native species selection for long-term sustainability")
}

func TestCompareScenariosRanksResults(t *testing.T) {
	svc := newTestOptimizer(&stubScorer{parkProbability: 0.9})

	inputs := []ScenarioInput{
		{Region: smallRegion()},
		{Region: smallRegion()},
	}

	result, err := svc.CompareScenarios(inputs)
	require.NoError(t, err)

	require.Len(t, result.Scenarios, 2)
	require.Len(t, result.Ranking, 2)
	require.NotNil(t, result.Best)
	assert.Equal(t, result.Ranking[0], *result.Best)
	assert.Equal(t, 2, result.Insights.ScenariosAnalyzed)
	assert.InDelta(t, 0.85, result.Insights.AverageConfidence, 1e-9)
}

func TestCompareScenariosRejectsEmpty(t *testing.T) {
	svc := newTestOptimizer(&stubScorer{parkProbability: 0.9})

	_, err := svc.CompareScenarios(nil)
	assert.Error(t, err)
}

func TestCompareScenariosRejectsTooMany(t *testing.T) {
	svc := newTestOptimizer(&stubScorer{parkProbability: 0.9})

	inputs := make([]ScenarioInput, MaxScenarios+1)
	for i := range inputs {
		inputs[i] = ScenarioInput{Region: smallRegion()}
	}

	_, err := svc.CompareScenarios(inputs)
	assert.Error(t, err)
}

func TestCompareScenariosAbortsOnScoringFailure(t *testing.T) {
	svc := newTestOptimizer(failingScorer{})

	_, err := svc.CompareScenarios([]ScenarioInput{{Region: smallRegion()}})
	require.Error(t, err)
	assert.ErrorIs(t, err, scoring.ErrScoringUnavailable)
}

func TestStartTrainingRegistersJob(t *testing.T) {
	svc := newTestOptimizer(&stubScorer{parkProbability: 0.9})

	job := svc.StartTraining()
	require.NotEmpty(t, job.ID)

	got, ok := svc.TrainingStatus(job.ID)
	require.True(t, ok)
	assert.Equal(t, job.ID, got.ID)
	assert.Contains(t, []string{jobs.StatusPending, jobs.StatusRunning}, got.Status)
}

func TestTrainingStatusUnknownJob(t *testing.T) {
	svc := newTestOptimizer(&stubScorer{parkProbability: 0.9})

	_, ok := svc.TrainingStatus("missing")
	assert.False(t, ok)
}
