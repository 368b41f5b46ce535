package spatial

import "github.com/metamorph/greenspace-backend-go/internal/models"

// GenerateGrid discretizes a region into interior sample points. The
// region's bounding box is divided into gridSize x gridSize cells and
// each cell corner is kept only if it lies inside the ring. Iteration
// is row-major (latitude outer, longitude inner), so output order is
// deterministic for a given region and gridSize.
func GenerateGrid(region Polygon, gridSize int) []models.Coordinate {
	if len(region) < 3 || gridSize <= 0 {
		return nil
	}

	minLat, minLng, maxLat, maxLng := region.BoundingBox()

	latStep := (maxLat - minLat) / float64(gridSize)
	lngStep := (maxLng - minLng) / float64(gridSize)

	var points []models.Coordinate
	for i := 0; i < gridSize; i++ {
		lat := minLat + float64(i)*latStep
		for j := 0; j < gridSize; j++ {
			lng := minLng + float64(j)*lngStep
			p := models.Coordinate{Lat: lat, Lng: lng}
			if region.Contains(p) {
				points = append(points, p)
			}
		}
	}

	return points
}
