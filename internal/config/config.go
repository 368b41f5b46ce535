package config

import (
	"os"
	"strconv"
)

// Config holds application configuration
type Config struct {
	Port            string
	DBPath          string
	GridSize        int     // default grid resolution for optimization runs
	EdgeMaxDistance float64 // proximity graph edge threshold in meters
}

// Load reads configuration from the environment, falling back to
// defaults suitable for local development
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/greenspace.db"
	}

	gridSize := 50
	if v := os.Getenv("GRID_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			gridSize = n
		}
	}

	edgeMaxDistance := 100.0
	if v := os.Getenv("EDGE_MAX_DISTANCE_M"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			edgeMaxDistance = f
		}
	}

	return &Config{
		Port:            port,
		DBPath:          dbPath,
		GridSize:        gridSize,
		EdgeMaxDistance: edgeMaxDistance,
	}
}
