package geo

import (
	"github.com/twpayne/go-polyline"
)

// PolylineFromCoords encodes coords with the Google polyline algorithm (precision 5).
func PolylineFromCoords(coords []Coordinate) string {
	if len(coords) == 0 {
		return ""
	}
	points := make([][]float64, 0, len(coords))
	for _, c := range coords {
		points = append(points, []float64{c.Lat, c.Lon})
	}
	return string(polyline.EncodeCoords(points))
}
