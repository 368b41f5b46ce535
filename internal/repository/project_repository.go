package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/metamorph/greenspace-backend-go/internal/database"
	"github.com/metamorph/greenspace-backend-go/internal/models"
)

// ErrNotFound is returned when a requested record does not exist
var ErrNotFound = errors.New("record not found")

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	db *sql.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create inserts a new project
func (r *ProjectRepository) Create(p *models.Project) error {
	query := `
		INSERT INTO projects (id, name, region, status, scenario_json)
		VALUES (?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(query, p.ID, p.Name, p.Region, p.Status, p.ScenarioJSON)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

// GetByID retrieves a project by its id
func (r *ProjectRepository) GetByID(id string) (*models.Project, error) {
	query := `
		SELECT id, name, region, status, scenario_json, created_at, updated_at
		FROM projects WHERE id = ?
	`

	var p models.Project
	err := r.db.QueryRow(query, id).Scan(
		&p.ID, &p.Name, &p.Region, &p.Status, &p.ScenarioJSON, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return &p, nil
}

// List retrieves all projects, newest first
func (r *ProjectRepository) List() ([]models.Project, error) {
	query := `
		SELECT id, name, region, status, scenario_json, created_at, updated_at
		FROM projects ORDER BY created_at DESC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Region, &p.Status, &p.ScenarioJSON, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}

	return projects, rows.Err()
}

// UpdateWith loads a project, applies mutate to it and writes the
// result back, all inside one transaction so concurrent partial
// updates cannot drop each other's fields
func (r *ProjectRepository) UpdateWith(id string, mutate func(*models.Project)) error {
	return database.Transaction(r.db, func(tx *sql.Tx) error {
		query := `
			SELECT id, name, region, status, scenario_json, created_at, updated_at
			FROM projects WHERE id = ?
		`

		var p models.Project
		err := tx.QueryRow(query, id).Scan(
			&p.ID, &p.Name, &p.Region, &p.Status, &p.ScenarioJSON, &p.CreatedAt, &p.UpdatedAt)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to load project: %w", err)
		}

		mutate(&p)

		_, err = tx.Exec(`
			UPDATE projects
			SET name = ?, region = ?, status = ?, scenario_json = ?,
			    updated_at = CURRENT_TIMESTAMP
			WHERE id = ?
		`, p.Name, p.Region, p.Status, p.ScenarioJSON, p.ID)
		if err != nil {
			return fmt.Errorf("failed to update project: %w", err)
		}

		return nil
	})
}

// Delete removes a project by id
func (r *ProjectRepository) Delete(id string) error {
	result, err := r.db.Exec("DELETE FROM projects WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
