package service

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/metamorph/greenspace-backend-go/internal/models"
	"github.com/metamorph/greenspace-backend-go/internal/repository"
)

// ProjectService handles project persistence business logic
type ProjectService struct {
	repo *repository.ProjectRepository
}

// NewProjectService creates a new project service
func NewProjectService(repo *repository.ProjectRepository) *ProjectService {
	return &ProjectService{repo: repo}
}

// ProjectView is the API shape of a project, with the scenario
// embedded as decoded JSON
type ProjectView struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Region   string          `json:"region"`
	Status   string          `json:"status"`
	Date     string          `json:"date"`
	Scenario json.RawMessage `json:"scenario"`
}

// List returns all projects, newest first
func (s *ProjectService) List() ([]ProjectView, error) {
	projects, err := s.repo.List()
	if err != nil {
		return nil, err
	}

	views := make([]ProjectView, 0, len(projects))
	for _, p := range projects {
		views = append(views, toView(p))
	}
	return views, nil
}

// Get returns a single project by id
func (s *ProjectService) Get(id string) (*ProjectView, error) {
	p, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	view := toView(*p)
	return &view, nil
}

// Create stores a new project. The scenario payload is kept as opaque
// JSON; an id is assigned when missing.
func (s *ProjectService) Create(name, region, status string, scenario json.RawMessage) (*ProjectView, error) {
	if name == "" {
		return nil, fmt.Errorf("project name is required")
	}
	if status == "" {
		status = models.ProjectStatusDraft
	}
	if len(scenario) == 0 {
		scenario = json.RawMessage("{}")
	}

	p := &models.Project{
		ID:           uuid.NewString(),
		Name:         name,
		Region:       region,
		Status:       status,
		ScenarioJSON: string(scenario),
	}

	if err := s.repo.Create(p); err != nil {
		return nil, err
	}

	return s.Get(p.ID)
}

// Update modifies an existing project; empty fields keep their current
// values. The read-modify-write runs in one transaction.
func (s *ProjectService) Update(id, name, region, status string, scenario json.RawMessage) (*ProjectView, error) {
	err := s.repo.UpdateWith(id, func(p *models.Project) {
		if name != "" {
			p.Name = name
		}
		if region != "" {
			p.Region = region
		}
		if status != "" {
			p.Status = status
		}
		if len(scenario) > 0 {
			p.ScenarioJSON = string(scenario)
		}
	})
	if err != nil {
		return nil, err
	}

	return s.Get(id)
}

// Delete removes a project
func (s *ProjectService) Delete(id string) error {
	return s.repo.Delete(id)
}

func toView(p models.Project) ProjectView {
	scenario := json.RawMessage(p.ScenarioJSON)
	if !json.Valid(scenario) {
		scenario = json.RawMessage("{}")
	}

	return ProjectView{
		ID:       p.ID,
		Name:     p.Name,
		Region:   p.Region,
		Status:   p.Status,
		Date:     p.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		Scenario: scenario,
	}
}
