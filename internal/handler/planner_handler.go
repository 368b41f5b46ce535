package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/metamorph/greenspace-backend-go/internal/models"
	"github.com/metamorph/greenspace-backend-go/internal/scoring"
	"github.com/metamorph/greenspace-backend-go/internal/service"
	"github.com/metamorph/greenspace-backend-go/pkg/response"
)

// PlannerHandler handles HTTP requests for zone optimization, scenario
// comparison and training jobs
type PlannerHandler struct {
	service *service.OptimizerService
}

// NewPlannerHandler creates a new planner handler
func NewPlannerHandler(service *service.OptimizerService) *PlannerHandler {
	return &PlannerHandler{service: service}
}

// ScenarioRequest is the payload for one optimization scenario
type ScenarioRequest struct {
	Region            []models.Coordinate    `json:"region" binding:"required"`
	ExistingZones     []models.GreenZone     `json:"existing_zones"`
	TerrainData       []models.TerrainSample `json:"terrain_data"`
	Constraints       models.Constraints     `json:"constraints"`
	OptimizationGoals []string               `json:"optimization_goals"`
}

func (r ScenarioRequest) toInput() service.ScenarioInput {
	return service.ScenarioInput{
		Region:            r.Region,
		ExistingZones:     r.ExistingZones,
		TerrainData:       r.TerrainData,
		Constraints:       r.Constraints,
		OptimizationGoals: r.OptimizationGoals,
	}
}

// Status handles GET /api/v1/planner/status
func (h *PlannerHandler) Status(c *gin.Context) {
	response.Success(c, gin.H{
		"engine_available": true,
		"capabilities": []string{
			"zone_optimization",
			"real_time_optimization",
			"scenario_comparison",
			"terrain_analysis",
			"impact_assessment",
		},
		"max_scenarios": service.MaxScenarios,
	})
}

// Optimize handles POST /api/v1/planner/optimize
func (h *PlannerHandler) Optimize(c *gin.Context) {
	var req ScenarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.Optimize(req.toInput())
	if err != nil {
		h.writeOptimizeError(c, err)
		return
	}

	response.Success(c, result)
}

// RealTimeOptimizeRequest is the payload for a run over synthesized
// terrain
type RealTimeOptimizeRequest struct {
	Region            []models.Coordinate `json:"region" binding:"required"`
	Constraints       models.Constraints  `json:"constraints"`
	OptimizationGoals []string            `json:"optimization_goals"`
}

// RealTimeOptimize handles POST /api/v1/planner/real-time-optimization
func (h *PlannerHandler) RealTimeOptimize(c *gin.Context) {
	var req RealTimeOptimizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.RealTimeOptimize(req.Region, req.Constraints, req.OptimizationGoals)
	if err != nil {
		h.writeOptimizeError(c, err)
		return
	}

	response.Success(c, result)
}

// ComparisonRequest is the payload for a scenario comparison
type ComparisonRequest struct {
	Scenarios []ScenarioRequest `json:"scenarios" binding:"required"`
}

// CompareScenarios handles POST /api/v1/planner/scenario-comparison
func (h *PlannerHandler) CompareScenarios(c *gin.Context) {
	var req ComparisonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.Scenarios) == 0 {
		response.BadRequest(c, "At least one scenario is required")
		return
	}
	if len(req.Scenarios) > service.MaxScenarios {
		response.BadRequest(c, fmt.Sprintf("Maximum %d scenarios can be compared", service.MaxScenarios))
		return
	}

	inputs := make([]service.ScenarioInput, 0, len(req.Scenarios))
	for _, s := range req.Scenarios {
		inputs = append(inputs, s.toInput())
	}

	result, err := h.service.CompareScenarios(inputs)
	if err != nil {
		h.writeOptimizeError(c, err)
		return
	}

	response.Success(c, result)
}

// StartTraining handles POST /api/v1/planner/train
func (h *PlannerHandler) StartTraining(c *gin.Context) {
	job := h.service.StartTraining()
	response.Success(c, job)
}

// JobStatus handles GET /api/v1/planner/jobs/:id
func (h *PlannerHandler) JobStatus(c *gin.Context) {
	id := c.Param("id")
	job, ok := h.service.TrainingStatus(id)
	if !ok {
		response.NotFound(c, "Training job not found")
		return
	}
	response.Success(c, job)
}

func (h *PlannerHandler) writeOptimizeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidGeometry):
		response.BadRequest(c, err.Error())
	case errors.Is(err, scoring.ErrScoringUnavailable):
		response.ServiceUnavailable(c, "Scoring engine unavailable")
	default:
		response.InternalError(c, "Optimization failed")
	}
}
