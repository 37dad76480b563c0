package spatialindex

import (
	"testing"

	"github.com/lintang-b-s/transitx/pkg/catalogue"
	"github.com/lintang-b-s/transitx/pkg/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestIndex(t *testing.T) *StopIndex {
	t.Helper()
	cat := catalogue.NewCatalogue()
	cat.AddStop("Far", geo.NewCoordinate(0, 0.1))
	cat.AddStop("Origin", geo.NewCoordinate(0, 0))
	cat.AddStop("East1", geo.NewCoordinate(0, 0.01))
	cat.AddStop("East2", geo.NewCoordinate(0, 0.02))
	cat.AddStop("North1", geo.NewCoordinate(0.01, 0))

	si := NewStopIndex()
	si.Build(cat.AllStops(), zap.NewNop())
	require.Equal(t, 5, si.Len())
	return si
}

func names(res []NearbyStop) []string {
	out := make([]string, len(res))
	for i, r := range res {
		out[i] = r.Stop.Name
	}
	return out
}

func TestSearchWithinRadius(t *testing.T) {
	si := newTestIndex(t)

	testCases := []struct {
		name   string
		radius float64
		limit  int
		want   []string
	}{
		{name: "only the query point", radius: 0.5, want: []string{"Origin"}},
		{name: "ties broken by name", radius: 1.5, want: []string{"Origin", "East1", "North1"}},
		{name: "wider radius", radius: 2.5, want: []string{"Origin", "East1", "North1", "East2"}},
		{name: "limit", radius: 50, limit: 2, want: []string{"Origin", "East1"}},
		{name: "everything", radius: 50, want: []string{"Origin", "East1", "North1", "East2", "Far"}},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			res := si.SearchWithinRadius(0, 0, tt.radius, tt.limit)
			assert.Equal(t, tt.want, names(res))
			for _, r := range res {
				assert.LessOrEqual(t, r.Distance, tt.radius)
			}
		})
	}
}

func TestSearchWithinRadiusEmptyIndex(t *testing.T) {
	si := NewStopIndex()
	assert.Empty(t, si.SearchWithinRadius(0, 0, 10, 0))
}

func TestSearchWithinRadiusAcrossAntimeridian(t *testing.T) {
	cat := catalogue.NewCatalogue()
	cat.AddStop("West", geo.NewCoordinate(0, 179.99))
	cat.AddStop("East", geo.NewCoordinate(0, -179.99))
	cat.AddStop("Greenwich", geo.NewCoordinate(0, 0))

	si := NewStopIndex()
	si.Build(cat.AllStops(), zap.NewNop())

	testCases := []struct {
		name string
		qLon float64
		want []string
	}{
		{name: "query west of the antimeridian", qLon: 179.99, want: []string{"West", "East"}},
		{name: "query east of the antimeridian", qLon: -179.99, want: []string{"East", "West"}},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			res := si.SearchWithinRadius(0, tt.qLon, 5, 0)
			assert.Equal(t, tt.want, names(res))
		})
	}
}
