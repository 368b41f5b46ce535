package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/metamorph/greenspace-backend-go/internal/models"
	"github.com/metamorph/greenspace-backend-go/internal/service"
	"github.com/metamorph/greenspace-backend-go/pkg/response"
)

// AnalysisHandler handles HTTP requests for scenario analysis and
// impact assessment
type AnalysisHandler struct {
	service *service.AnalysisService
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(service *service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{service: service}
}

// AnalysisRequest is the payload for a scenario analysis run
type AnalysisRequest struct {
	Region            []models.Coordinate       `json:"region" binding:"required"`
	Zones             []models.GreenZone        `json:"zones"`
	TerrainData       []models.TerrainSample    `json:"terrain_data"`
	PopulationCenters []models.PopulationCenter `json:"population_centers"`
}

// RunAnalysis handles POST /api/v1/analysis/run
func (h *AnalysisHandler) RunAnalysis(c *gin.Context) {
	var req AnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.Run(req.Region, req.Zones, req.TerrainData, req.PopulationCenters)
	if err != nil {
		if errors.Is(err, models.ErrInvalidGeometry) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, "Analysis failed")
		return
	}

	response.Success(c, result)
}

// TerrainRequest is the payload for a terrain analysis run
type TerrainRequest struct {
	Region []models.Coordinate `json:"region" binding:"required"`
}

// AnalyzeTerrain handles POST /api/v1/analysis/terrain
func (h *AnalysisHandler) AnalyzeTerrain(c *gin.Context) {
	var req TerrainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.TerrainAnalysis(req.Region)
	if err != nil {
		if errors.Is(err, models.ErrInvalidGeometry) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, "Terrain analysis failed")
		return
	}

	response.Success(c, result)
}

// ImpactRequest is the payload for the impact assessment endpoints
type ImpactRequest struct {
	Zones             []models.GreenZone        `json:"zones"`
	Region            []models.Coordinate       `json:"region"`
	PopulationCenters []models.PopulationCenter `json:"population_centers"`
}

// EnvironmentalImpact handles POST /api/v1/analysis/environmental-impact
func (h *AnalysisHandler) EnvironmentalImpact(c *gin.Context) {
	var req ImpactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	response.Success(c, h.service.EnvironmentalImpact(req.Zones))
}

// SocialImpact handles POST /api/v1/analysis/social-impact
func (h *AnalysisHandler) SocialImpact(c *gin.Context) {
	var req ImpactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	response.Success(c, h.service.SocialImpact(req.Zones, req.Region, req.PopulationCenters))
}
