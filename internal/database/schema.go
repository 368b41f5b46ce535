package database

import (
	"database/sql"
	"fmt"
)

// schema is applied at startup. Tables are created idempotently; there
// is no versioned migration history because the only persisted entity
// is the project record.
const schema = `
CREATE TABLE IF NOT EXISTS projects (
	id            TEXT PRIMARY KEY,
	name          TEXT NOT NULL,
	region        TEXT NOT NULL,
	status        TEXT NOT NULL DEFAULT 'draft',
	scenario_json TEXT NOT NULL DEFAULT '{}',
	created_at    TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at    TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_projects_status ON projects(status);
CREATE INDEX IF NOT EXISTS idx_projects_created_at ON projects(created_at);
`

// ApplySchema creates the tables and indexes if they do not exist
func ApplySchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
