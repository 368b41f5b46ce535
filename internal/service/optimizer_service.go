package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/metamorph/greenspace-backend-go/internal/cluster"
	"github.com/metamorph/greenspace-backend-go/internal/graph"
	"github.com/metamorph/greenspace-backend-go/internal/jobs"
	"github.com/metamorph/greenspace-backend-go/internal/metrics"
	"github.com/metamorph/greenspace-backend-go/internal/models"
	"github.com/metamorph/greenspace-backend-go/internal/scoring"
	"github.com/metamorph/greenspace-backend-go/internal/spatial"
	"github.com/metamorph/greenspace-backend-go/internal/stats"
	"github.com/metamorph/greenspace-backend-go/internal/terrain"
)

// MaxScenarios bounds a single comparison request
const MaxScenarios = 5

// trainStepInterval paces the synthetic training progress updates
const trainStepInterval = 2 * time.Second

// OptimizerService runs the full prediction pipeline: region
// discretization, feature assembly, proximity graph, scoring, cluster
// synthesis and metric computation. Each run owns its inputs and
// outputs; the service itself is stateless apart from the injected
// collaborators, so runs can execute concurrently.
type OptimizerService struct {
	scorer          scoring.Scorer
	jobStore        *jobs.Store
	gridSize        int
	edgeMaxDistance float64
}

// NewOptimizerService creates an optimizer service with the given
// scoring capability and job store
func NewOptimizerService(scorer scoring.Scorer, jobStore *jobs.Store, gridSize int, edgeMaxDistance float64) *OptimizerService {
	return &OptimizerService{
		scorer:          scorer,
		jobStore:        jobStore,
		gridSize:        gridSize,
		edgeMaxDistance: edgeMaxDistance,
	}
}

// ScenarioInput bundles the inputs for one pipeline run
type ScenarioInput struct {
	Region            []models.Coordinate
	ExistingZones     []models.GreenZone
	TerrainData       []models.TerrainSample
	Constraints       models.Constraints
	OptimizationGoals []string
}

// Predictions carries the graph-level scores on the 0-100 scale
type Predictions struct {
	SustainabilityScore float64 `json:"sustainability_score"`
	AccessibilityScore  float64 `json:"accessibility_score"`
	ConnectivityScore   float64 `json:"connectivity_score"`
	Confidence          float64 `json:"confidence"`
}

// PerformanceMetrics summarizes the combined zone set of a run
type PerformanceMetrics struct {
	Coverage   float64 `json:"coverage"`
	Efficiency float64 `json:"efficiency"`
	Diversity  float64 `json:"diversity"`
}

// OptimizationResult is the output of a full pipeline run
type OptimizationResult struct {
	OptimalZones           []models.GreenZone `json:"optimal_zones"`
	Predictions            Predictions        `json:"predictions"`
	PerformanceMetrics     PerformanceMetrics `json:"performance_metrics"`
	ConstraintSatisfaction float64            `json:"constraint_satisfaction"`
	Insights               []string           `json:"optimization_insights"`
	Recommendations        []string           `json:"recommendations"`
	AnalysisTimestamp      time.Time          `json:"analysis_timestamp"`
}

// Optimize runs the full pipeline for one scenario. A scoring failure
// aborts the run with scoring.ErrScoringUnavailable and no partial
// zone output.
func (s *OptimizerService) Optimize(input ScenarioInput) (*OptimizationResult, error) {
	ring, err := spatial.BuildPolygon(input.Region)
	if err != nil {
		return nil, fmt.Errorf("invalid region: %w", err)
	}

	g := graph.Build(ring, s.gridSize, input.TerrainData, input.ExistingZones, s.edgeMaxDistance)

	out, err := s.scorer.Score(g)
	if err != nil {
		if errors.Is(err, scoring.ErrScoringUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", scoring.ErrScoringUnavailable, err)
	}

	zones, satisfaction := cluster.Synthesize(g.Positions, out.ZoneProbabilities, input.Constraints)

	allZones := append(append([]models.GreenZone{}, input.ExistingZones...), zones...)

	return &OptimizationResult{
		OptimalZones: zones,
		Predictions: Predictions{
			SustainabilityScore: out.Sustainability * 100,
			AccessibilityScore:  out.Accessibility * 100,
			ConnectivityScore:   out.Connectivity * 100,
			Confidence:          out.Confidence,
		},
		PerformanceMetrics:     s.performanceMetrics(allZones, ring),
		ConstraintSatisfaction: satisfaction,
		Insights:               optimizationInsights(out.Confidence, out.Sustainability),
		Recommendations:        goalRecommendations(input.OptimizationGoals),
		AnalysisTimestamp:      time.Now(),
	}, nil
}

// RealTimeOptimize runs the pipeline over a freshly synthesized
// terrain grid, for requests that carry no terrain data of their own.
// The synthesized zones are annotated per the requested goals and the
// recommendations adapt to the result instead of the goal list.
func (s *OptimizerService) RealTimeOptimize(region []models.Coordinate, constraints models.Constraints, goals []string) (*OptimizationResult, error) {
	ring, err := spatial.BuildPolygon(region)
	if err != nil {
		return nil, fmt.Errorf("invalid region: %w", err)
	}

	samples := terrain.GenerateGrid(ring, 30)

	result, err := s.Optimize(ScenarioInput{
		Region:            region,
		TerrainData:       samples,
		Constraints:       constraints,
		OptimizationGoals: goals,
	})
	if err != nil {
		return nil, err
	}

	applyGoalAdjustments(result.OptimalZones, goals)
	result.Recommendations = adaptiveRecommendations(result.OptimalZones)

	return result, nil
}

// applyGoalAdjustments annotates zones according to the optimization
// goals: sustainability marks forest and wetland zones high priority,
// accessibility and connectivity attach their feature sets to every
// zone.
func applyGoalAdjustments(zones []models.GreenZone, goals []string) {
	if hasGoal(goals, GoalSustainability) {
		for i := range zones {
			if zones[i].Type == models.ZoneForest || zones[i].Type == models.ZoneWetland {
				zones[i].Priority = "high"
			}
		}
	}
	if hasGoal(goals, GoalAccessibility) {
		for i := range zones {
			zones[i].AccessibilityFeatures = []string{"pathways", "public_transport_access"}
		}
	}
	if hasGoal(goals, GoalConnectivity) {
		for i := range zones {
			zones[i].ConnectivityFeatures = []string{"wildlife_corridors", "green_pathways"}
		}
	}
}

// ComparisonResult bundles the per-scenario scores with their ranking
type ComparisonResult struct {
	Scenarios []models.ScenarioScore `json:"scenario_comparison"`
	Ranking   []models.ScenarioScore `json:"ranking"`
	Best      *models.ScenarioScore  `json:"best_scenario,omitempty"`
	Insights  ComparisonInsights     `json:"comparison_metrics"`
}

// ComparisonInsights carries the aggregate view over a comparison
type ComparisonInsights struct {
	BestSustainability float64 `json:"best_sustainability"`
	BestAccessibility  float64 `json:"best_accessibility"`
	AverageConfidence  float64 `json:"average_confidence"`
	ScenariosAnalyzed  int     `json:"total_scenarios_analyzed"`
}

// CompareScenarios runs the pipeline for every scenario and ranks the
// outcomes best-first. A scoring failure for any scenario aborts the
// whole comparison.
func (s *OptimizerService) CompareScenarios(inputs []ScenarioInput) (*ComparisonResult, error) {
	if len(inputs) == 0 {
		return nil, fmt.Errorf("no scenarios supplied")
	}
	if len(inputs) > MaxScenarios {
		return nil, fmt.Errorf("maximum %d scenarios can be compared, got %d", MaxScenarios, len(inputs))
	}

	scores := make([]models.ScenarioScore, 0, len(inputs))
	for i, input := range inputs {
		result, err := s.Optimize(input)
		if err != nil {
			return nil, fmt.Errorf("scenario %d: %w", i+1, err)
		}

		var totalArea float64
		for _, z := range result.OptimalZones {
			totalArea += z.Area
		}

		scores = append(scores, models.ScenarioScore{
			ScenarioID:          i + 1,
			SustainabilityScore: result.Predictions.SustainabilityScore,
			AccessibilityScore:  result.Predictions.AccessibilityScore,
			ConnectivityScore:   result.Predictions.ConnectivityScore,
			Confidence:          result.Predictions.Confidence,
			OptimalZonesCount:   len(result.OptimalZones),
			TotalGreenArea:      totalArea,
		})
	}

	ranked := metrics.RankScenarios(scores)

	result := &ComparisonResult{
		Scenarios: scores,
		Ranking:   ranked,
		Insights:  comparisonInsights(scores),
	}
	if len(ranked) > 0 {
		result.Best = &ranked[0]
	}

	return result, nil
}

// StartTraining registers a background training job and returns its
// id. The job advances synthetically; real weight learning happens in
// a separate system.
func (s *OptimizerService) StartTraining() jobs.Job {
	id := uuid.NewString()
	job := s.jobStore.Create(id)

	go s.runTraining(id)

	return job
}

// TrainingStatus returns a snapshot of a training job
func (s *OptimizerService) TrainingStatus(id string) (jobs.Job, bool) {
	return s.jobStore.Get(id)
}

func (s *OptimizerService) runTraining(id string) {
	log.Printf("Training job %s started", id)

	s.jobStore.Update(id, func(j *jobs.Job) {
		j.Status = jobs.StatusRunning
	})

	for progress := 10; progress <= 90; progress += 10 {
		time.Sleep(trainStepInterval)
		s.jobStore.Update(id, func(j *jobs.Job) {
			j.ProgressPercent = progress
		})
	}

	time.Sleep(trainStepInterval)
	s.jobStore.MarkCompleted(id)
	log.Printf("Training job %s completed", id)
}

func (s *OptimizerService) performanceMetrics(zones []models.GreenZone, ring spatial.Polygon) PerformanceMetrics {
	if len(zones) == 0 {
		return PerformanceMetrics{}
	}

	var totalArea float64
	types := make(map[models.ZoneType]bool)
	for _, z := range zones {
		totalArea += z.Area
		types[z.Type] = true
	}

	coverage := 0.0
	if regionArea := ring.Area(); regionArea > 0 {
		coverage = totalArea / regionArea * 100
		if coverage > 100 {
			coverage = 100
		}
	}

	efficiency := totalArea / float64(len(zones)) / 1000
	if efficiency > 100 {
		efficiency = 100
	}

	return PerformanceMetrics{
		Coverage:   coverage,
		Efficiency: efficiency,
		Diversity:  float64(len(types)) / float64(len(models.ZoneTypes())) * 100,
	}
}

func comparisonInsights(scores []models.ScenarioScore) ComparisonInsights {
	sustainability := make([]float64, 0, len(scores))
	accessibility := make([]float64, 0, len(scores))
	confidence := make([]float64, 0, len(scores))
	for _, s := range scores {
		sustainability = append(sustainability, s.SustainabilityScore)
		accessibility = append(accessibility, s.AccessibilityScore)
		confidence = append(confidence, s.Confidence)
	}

	return ComparisonInsights{
		BestSustainability: stats.Max(sustainability),
		BestAccessibility:  stats.Max(accessibility),
		AverageConfidence:  stats.Mean(confidence),
		ScenariosAnalyzed:  len(scores),
	}
}
