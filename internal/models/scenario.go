package models

// PopulationCenter represents a weighted demand point for the
// accessibility metric
type PopulationCenter struct {
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	Population int     `json:"population"`
}

// Constraints carries the recognized optimization constraints. Both
// fields are optional.
type Constraints struct {
	MinTotalArea      float64  `json:"min_total_area,omitempty"`
	RequiredZoneTypes []string `json:"required_zone_types,omitempty"`
}

// ScenarioMetrics is the derived quality summary for one planning
// scenario. All score fields are on a 0-100 scale.
type ScenarioMetrics struct {
	Coverage            float64 `json:"coverage"`
	SustainabilityScore float64 `json:"sustainability_score"`
	AccessibilityScore  float64 `json:"accessibility_score"`
	ConnectivityScore   float64 `json:"connectivity_score"`
	PopulationServed    int     `json:"population_served"`
	ZoneDiversity       float64 `json:"zone_diversity"`
}

// ScenarioScore is one scenario's scores plus the confidence of the
// scoring engine, as fed to the ranker
type ScenarioScore struct {
	ScenarioID          int     `json:"scenario_id"`
	SustainabilityScore float64 `json:"sustainability_score"`
	AccessibilityScore  float64 `json:"accessibility_score"`
	ConnectivityScore   float64 `json:"connectivity_score"`
	Confidence          float64 `json:"confidence"`
	OptimalZonesCount   int     `json:"optimal_zones_count"`
	TotalGreenArea      float64 `json:"total_green_area"`
	CompositeScore      float64 `json:"composite_score"`
}
