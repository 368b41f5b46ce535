package models

// ZoneType classifies a green-space polygon
type ZoneType string

// Zone type constants
const (
	ZonePark    ZoneType = "park"
	ZoneGarden  ZoneType = "garden"
	ZoneForest  ZoneType = "forest"
	ZoneWetland ZoneType = "wetland"
)

// ZoneTypes lists all zone types in their canonical order. The order
// matters: it matches the columns of the per-node probability matrix.
func ZoneTypes() []ZoneType {
	return []ZoneType{ZonePark, ZoneGarden, ZoneForest, ZoneWetland}
}

// IsValidZoneType reports whether s names one of the four zone types
func IsValidZoneType(s string) bool {
	switch ZoneType(s) {
	case ZonePark, ZoneGarden, ZoneForest, ZoneWetland:
		return true
	}
	return false
}

// GreenZone represents a green-space polygon, either user-supplied or
// synthesized by the cluster stage
type GreenZone struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Type        ZoneType     `json:"type"`
	Coordinates []Coordinate `json:"coordinates"`
	Area        float64      `json:"area"`       // square meters, planar approximation
	Confidence  float64      `json:"confidence"` // set for synthesized zones only

	// Goal-based annotations, set by real-time optimization only
	Priority              string   `json:"priority,omitempty"`
	AccessibilityFeatures []string `json:"accessibility_features,omitempty"`
	ConnectivityFeatures  []string `json:"connectivity_features,omitempty"`
}

// Centroid returns the mean of the zone's ring coordinates
func (z GreenZone) Centroid() Coordinate {
	if len(z.Coordinates) == 0 {
		return Coordinate{}
	}
	var sumLat, sumLng float64
	for _, c := range z.Coordinates {
		sumLat += c.Lat
		sumLng += c.Lng
	}
	n := float64(len(z.Coordinates))
	return Coordinate{Lat: sumLat / n, Lng: sumLng / n}
}
