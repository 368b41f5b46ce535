package models

// Soil type constants. "unknown" is the placeholder used when no
// terrain sample exists for a point.
const (
	SoilClay    = "clay"
	SoilSand    = "sand"
	SoilLoam    = "loam"
	SoilRocky   = "rocky"
	SoilUnknown = "unknown"
)

// TerrainSample represents terrain attributes at a single location,
// either measured or synthesized
type TerrainSample struct {
	Coordinates   Coordinate `json:"coordinates"`
	Elevation     float64    `json:"elevation"` // meters
	Slope         float64    `json:"slope"`     // degrees, 0-45
	SoilType      string     `json:"soil_type"`
	WaterPresence bool       `json:"water_presence"`
}

// SoilEncoding maps a soil type to its fixed feature encoding
func SoilEncoding(soil string) float64 {
	switch soil {
	case SoilClay:
		return 0.25
	case SoilSand:
		return 0.5
	case SoilLoam:
		return 0.75
	case SoilRocky:
		return 1.0
	default:
		return 0.5
	}
}
