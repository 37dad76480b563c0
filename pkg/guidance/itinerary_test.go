package guidance

import (
	"testing"

	"github.com/lintang-b-s/transitx/pkg"
	da "github.com/lintang-b-s/transitx/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildItinerary(t *testing.T) {
	g, err := da.NewGraph(6, []da.Edge{
		da.NewWaitEdge(0, 1, 6, "A"),
		da.NewWaitEdge(2, 3, 6, "B"),
		da.NewWaitEdge(4, 5, 6, "C"),
		da.NewRideEdge(1, 2, 2.5, "297", 1),
		da.NewRideEdge(3, 4, 7.25, "635", 3),
	})
	require.NoError(t, err)

	it := NewItineraryBuilder(g).BuildItinerary([]da.Index{0, 3, 1, 4})
	require.Len(t, it.Items, 4)
	assert.InDelta(t, 21.75, it.TotalTime, 1e-9)

	assert.Equal(t, da.ItineraryItem{Kind: pkg.WAIT_EDGE, StopName: "A", Time: 6}, it.Items[0])
	assert.Equal(t, da.ItineraryItem{Kind: pkg.RIDE_EDGE, Bus: "297", SpanCount: 1, Time: 2.5}, it.Items[1])
	assert.Equal(t, "B", it.Items[2].StopName)
	assert.Equal(t, 3, it.Items[3].SpanCount)
}

func TestBuildItineraryEmptyPath(t *testing.T) {
	g, err := da.NewGraph(2, []da.Edge{da.NewWaitEdge(0, 1, 6, "A")})
	require.NoError(t, err)

	it := NewItineraryBuilder(g).BuildItinerary(nil)
	assert.Empty(t, it.Items)
	assert.Equal(t, 0.0, it.TotalTime)
}
