package models

import (
	"errors"
	"fmt"
)

// ErrInvalidGeometry is returned when a coordinate ring is too short or
// contains out-of-range values
var ErrInvalidGeometry = errors.New("invalid geometry")

// Coordinate represents a WGS84 latitude/longitude pair
type Coordinate struct {
	Lat float64 `json:"lat" binding:"gte=-90,lte=90"`
	Lng float64 `json:"lng" binding:"gte=-180,lte=180"`
}

// Validate checks that the coordinate is within valid WGS84 ranges
func (c Coordinate) Validate() error {
	if c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("%w: latitude %f out of range [-90, 90]", ErrInvalidGeometry, c.Lat)
	}
	if c.Lng < -180 || c.Lng > 180 {
		return fmt.Errorf("%w: longitude %f out of range [-180, 180]", ErrInvalidGeometry, c.Lng)
	}
	return nil
}

// ValidateRing checks that a coordinate sequence can form a polygon ring:
// at least 3 points, all within valid ranges
func ValidateRing(coords []Coordinate) error {
	if len(coords) < 3 {
		return fmt.Errorf("%w: need at least 3 coordinates to form a polygon, got %d", ErrInvalidGeometry, len(coords))
	}
	for i, c := range coords {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("coordinate %d: %w", i, err)
		}
	}
	return nil
}
