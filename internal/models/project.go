package models

import "time"

// Project status constants
const (
	ProjectStatusDraft     = "draft"
	ProjectStatusCompleted = "completed"
	ProjectStatusShared    = "shared"
)

// Project represents a saved planning project. The scenario payload is
// stored as opaque JSON; its shape is owned by the frontend.
type Project struct {
	ID           string    `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Region       string    `json:"region" db:"region"`
	Status       string    `json:"status" db:"status"`
	ScenarioJSON string    `json:"-" db:"scenario_json"`
	CreatedAt    time.Time `json:"date" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
