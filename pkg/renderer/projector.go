package renderer

import (
	"math"

	"github.com/lintang-b-s/transitx/pkg"
	"github.com/lintang-b-s/transitx/pkg/geo"
)

// SphereProjector maps lat/lon linearly into a width x height canvas: the west-most point lands
// on x = padding, the north-most on y = padding, and one zoom factor is shared by both axes.
type SphereProjector struct {
	padding float64
	minLon  float64
	maxLat  float64
	zoom    float64
}

func isZero(v float64) bool {
	return math.Abs(v) < pkg.EPSILON
}

func NewSphereProjector(points []geo.Coordinate, maxWidth, maxHeight, padding float64) SphereProjector {
	sp := SphereProjector{padding: padding}
	if len(points) == 0 {
		return sp
	}

	minLon, maxLon := points[0].GetLon(), points[0].GetLon()
	minLat, maxLat := points[0].GetLat(), points[0].GetLat()
	for _, p := range points[1:] {
		minLon = math.Min(minLon, p.GetLon())
		maxLon = math.Max(maxLon, p.GetLon())
		minLat = math.Min(minLat, p.GetLat())
		maxLat = math.Max(maxLat, p.GetLat())
	}
	sp.minLon = minLon
	sp.maxLat = maxLat

	var widthZoom, heightZoom *float64
	if !isZero(maxLon - minLon) {
		z := (maxWidth - 2*padding) / (maxLon - minLon)
		widthZoom = &z
	}
	if !isZero(maxLat - minLat) {
		z := (maxHeight - 2*padding) / (maxLat - minLat)
		heightZoom = &z
	}

	switch {
	case widthZoom != nil && heightZoom != nil:
		sp.zoom = math.Min(*widthZoom, *heightZoom)
	case widthZoom != nil:
		sp.zoom = *widthZoom
	case heightZoom != nil:
		sp.zoom = *heightZoom
	}
	return sp
}

func (sp SphereProjector) Project(c geo.Coordinate) Point {
	return Point{
		X: (c.GetLon()-sp.minLon)*sp.zoom + sp.padding,
		Y: (sp.maxLat-c.GetLat())*sp.zoom + sp.padding,
	}
}
