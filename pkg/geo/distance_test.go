package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeDistance(t *testing.T) {
	testCases := []struct {
		name     string
		from, to Coordinate
		want     float64
		eps      float64
	}{
		{
			name: "same point",
			from: NewCoordinate(55.611087, 37.20829),
			to:   NewCoordinate(55.611087, 37.20829),
			want: 0,
			eps:  1e-9,
		},
		{
			name: "0.01 degree along the equator",
			from: NewCoordinate(0, 0),
			to:   NewCoordinate(0, 0.01),
			want: 1111.95,
			eps:  0.05,
		},
		{
			name: "quarter of the meridian",
			from: NewCoordinate(0, 0),
			to:   NewCoordinate(90, 0),
			want: math.Pi / 2 * 6371000.0,
			eps:  1e-3,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeDistance(tt.from, tt.to)
			assert.InDelta(t, tt.want, got, tt.eps)
			assert.InDelta(t, got, ComputeDistance(tt.to, tt.from), 1e-6)
		})
	}
}

func TestHaversineAgreesWithGreatCircle(t *testing.T) {
	a := NewCoordinate(55.595884, 37.209755)
	b := NewCoordinate(55.632761, 37.333324)

	meters := ComputeDistance(a, b)
	km := CalculateHaversineDistance(a.Lat, a.Lon, b.Lat, b.Lon)
	assert.InDelta(t, meters/1000.0, km, 1e-6)
}

func TestGetDestinationPoint(t *testing.T) {
	lat, lon := GetDestinationPoint(0, 0, 90, 1.0)
	assert.InDelta(t, 0.0, lat, 1e-9)
	assert.InDelta(t, 1.0, CalculateHaversineDistance(0, 0, lat, lon), 1e-6)
}

func TestPolylineFromCoords(t *testing.T) {
	got := PolylineFromCoords([]Coordinate{
		NewCoordinate(38.5, -120.2),
		NewCoordinate(40.7, -120.95),
		NewCoordinate(43.252, -126.453),
	})
	assert.Equal(t, "_p~iF~ps|U_ulLnnqC_mqNvxq`@", got)
	assert.Equal(t, "", PolylineFromCoords(nil))
}
