package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/metamorph/greenspace-backend-go/internal/repository"
	"github.com/metamorph/greenspace-backend-go/internal/service"
	"github.com/metamorph/greenspace-backend-go/pkg/response"
)

// ProjectHandler handles HTTP requests for saved planning projects
type ProjectHandler struct {
	service *service.ProjectService
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(service *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// ProjectRequest is the payload for creating or updating a project
type ProjectRequest struct {
	Name     string          `json:"name"`
	Region   string          `json:"region"`
	Status   string          `json:"status"`
	Scenario json.RawMessage `json:"scenario"`
}

// ListProjects handles GET /api/v1/projects
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.service.List()
	if err != nil {
		response.InternalError(c, "Failed to list projects")
		return
	}
	response.Success(c, projects)
}

// GetProject handles GET /api/v1/projects/:id
func (h *ProjectHandler) GetProject(c *gin.Context) {
	project, err := h.service.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(c, "Project not found")
			return
		}
		response.InternalError(c, "Failed to get project")
		return
	}
	response.Success(c, project)
}

// CreateProject handles POST /api/v1/projects
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" {
		response.BadRequest(c, "Project name is required")
		return
	}

	project, err := h.service.Create(req.Name, req.Region, req.Status, req.Scenario)
	if err != nil {
		response.InternalError(c, "Failed to create project")
		return
	}
	response.Success(c, project)
}

// UpdateProject handles PUT /api/v1/projects/:id
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	project, err := h.service.Update(c.Param("id"), req.Name, req.Region, req.Status, req.Scenario)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(c, "Project not found")
			return
		}
		response.InternalError(c, "Failed to update project")
		return
	}
	response.Success(c, project)
}

// DeleteProject handles DELETE /api/v1/projects/:id
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	if err := h.service.Delete(c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(c, "Project not found")
			return
		}
		response.InternalError(c, "Failed to delete project")
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
