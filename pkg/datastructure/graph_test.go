package datastructure

import (
	"testing"

	"github.com/lintang-b-s/transitx/pkg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGraphOutEdgeIndex(t *testing.T) {
	edges := []Edge{
		NewWaitEdge(0, 1, 5, "A"),
		NewWaitEdge(2, 3, 5, "B"),
		NewRideEdge(1, 2, 1.5, "14", 1),
		NewRideEdge(3, 0, 2.5, "14", 1),
		NewRideEdge(1, 0, 3, "27", 2),
	}

	g, err := NewGraph(4, edges)
	require.NoError(t, err)
	assert.Equal(t, 4, g.NumberOfVertices())
	assert.Equal(t, 5, g.NumberOfEdges())

	testCases := []struct {
		vertex Index
		want   []Index
	}{
		{vertex: 0, want: []Index{0}},
		{vertex: 1, want: []Index{2, 4}},
		{vertex: 2, want: []Index{1}},
		{vertex: 3, want: []Index{3}},
	}
	for _, tt := range testCases {
		got := []Index{}
		g.ForOutEdgesOf(tt.vertex, func(e *Edge) {
			assert.Equal(t, tt.vertex, e.GetTail())
			got = append(got, e.GetEdgeId())
		})
		assert.Equal(t, tt.want, got)
		assert.Equal(t, len(tt.want), g.GetOutDegree(tt.vertex))
	}

	ride := g.GetEdge(4)
	assert.Equal(t, pkg.RIDE_EDGE, ride.GetKind())
	assert.Equal(t, "27", ride.GetName())
	assert.Equal(t, 2, ride.GetSpanCount())
	assert.Equal(t, Index(0), ride.GetHead())
	assert.Equal(t, 3.0, ride.GetWeight())

	wait := g.GetEdge(0)
	assert.Equal(t, pkg.WAIT_EDGE, wait.GetKind())
	assert.Equal(t, 0, wait.GetSpanCount())
}

func TestNewGraphCopiesEdges(t *testing.T) {
	edges := []Edge{NewWaitEdge(0, 1, 5, "A")}
	g, err := NewGraph(2, edges)
	require.NoError(t, err)

	edges[0] = NewWaitEdge(1, 0, 100, "mutated")
	assert.Equal(t, "A", g.GetEdge(0).GetName())
	assert.Equal(t, 5.0, g.GetEdge(0).GetWeight())
}

func TestNewGraphErrors(t *testing.T) {
	_, err := NewGraph(0, nil)
	assert.ErrorIs(t, err, ErrNoVertices)

	_, err = NewGraph(2, []Edge{NewRideEdge(0, 2, 1, "x", 1)})
	assert.ErrorIs(t, err, ErrVertexOutOfRange)

	_, err = NewGraph(2, []Edge{NewRideEdge(0, 1, -1, "x", 1)})
	assert.ErrorIs(t, err, ErrNegativeWeight)
}

func TestForEdgesVisitsInIdOrder(t *testing.T) {
	g, err := NewGraph(3, []Edge{
		NewWaitEdge(2, 1, 1, "c"),
		NewWaitEdge(0, 1, 1, "a"),
		NewWaitEdge(1, 2, 1, "b"),
	})
	require.NoError(t, err)

	names := []string{}
	g.ForEdges(func(e *Edge) {
		names = append(names, e.GetName())
	})
	assert.Equal(t, []string{"c", "a", "b"}, names)
}
