package datastructure

import (
	"errors"
	"fmt"

	"github.com/lintang-b-s/transitx/pkg"
)

type Index uint32

const (
	INVALID_VERTEX_ID Index = ^Index(0)
	INVALID_EDGE_ID   Index = ^Index(0)
)

var (
	ErrNegativeWeight   = errors.New("graph: negative edge weight")
	ErrVertexOutOfRange = errors.New("graph: edge endpoint out of range")
	ErrNoVertices       = errors.New("graph: graph has no vertices")
)

// Edge. weight in minute. name is the stop name of a wait edge or the bus name of a ride edge.
type Edge struct {
	id        Index
	from, to  Index
	weight    float64
	kind      pkg.EdgeKind
	name      string
	spanCount int
}

func NewWaitEdge(from, to Index, weight float64, stopName string) Edge {
	return Edge{
		from:   from,
		to:     to,
		weight: weight,
		kind:   pkg.WAIT_EDGE,
		name:   stopName,
	}
}

func NewRideEdge(from, to Index, weight float64, busName string, spanCount int) Edge {
	return Edge{
		from:      from,
		to:        to,
		weight:    weight,
		kind:      pkg.RIDE_EDGE,
		name:      busName,
		spanCount: spanCount,
	}
}

func (e *Edge) GetEdgeId() Index {
	return e.id
}

func (e *Edge) GetTail() Index {
	return e.from
}

func (e *Edge) GetHead() Index {
	return e.to
}

func (e *Edge) GetWeight() float64 {
	return e.weight
}

func (e *Edge) GetKind() pkg.EdgeKind {
	return e.kind
}

func (e *Edge) GetName() string {
	return e.name
}

func (e *Edge) GetSpanCount() int {
	return e.spanCount
}

// Graph is an immutable directed weighted graph. Edges keep their insertion ids; out-edges of
// a vertex are reachable through a compressed sparse row index (firstOut/outEdges), ordered
// by insertion id.
type Graph struct {
	numVertices int
	edges       []Edge
	firstOut    []Index // firstOut[v]..firstOut[v+1] is the range of v in outEdges
	outEdges    []Index
}

// NewGraph copies edges, assigns ids in insertion order and builds the out-edge index.
func NewGraph(numVertices int, edges []Edge) (*Graph, error) {
	if numVertices <= 0 {
		return nil, ErrNoVertices
	}

	g := &Graph{
		numVertices: numVertices,
		edges:       make([]Edge, len(edges)),
		firstOut:    make([]Index, numVertices+1),
		outEdges:    make([]Index, len(edges)),
	}

	for i, e := range edges {
		if int(e.from) >= numVertices || int(e.to) >= numVertices {
			return nil, fmt.Errorf("%w: edge %d %d->%d, vertices %d", ErrVertexOutOfRange, i, e.from, e.to, numVertices)
		}
		if e.weight < 0 {
			return nil, fmt.Errorf("%w: edge %d %d->%d weight=%f", ErrNegativeWeight, i, e.from, e.to, e.weight)
		}
		e.id = Index(i)
		g.edges[i] = e
		g.firstOut[e.from+1]++
	}

	for v := 1; v <= numVertices; v++ {
		g.firstOut[v] += g.firstOut[v-1]
	}

	// counting sort by tail, stable in edge id
	next := make([]Index, numVertices)
	copy(next, g.firstOut[:numVertices])
	for i := range g.edges {
		u := g.edges[i].from
		g.outEdges[next[u]] = Index(i)
		next[u]++
	}

	return g, nil
}

func (g *Graph) NumberOfVertices() int {
	return g.numVertices
}

func (g *Graph) NumberOfEdges() int {
	return len(g.edges)
}

func (g *Graph) GetEdge(id Index) *Edge {
	return &g.edges[id]
}

func (g *Graph) GetOutDegree(u Index) int {
	return int(g.firstOut[u+1] - g.firstOut[u])
}

// ForOutEdgesOf calls handle for every out-edge of u, in edge id order.
func (g *Graph) ForOutEdgesOf(u Index, handle func(e *Edge)) {
	for i := g.firstOut[u]; i < g.firstOut[u+1]; i++ {
		handle(&g.edges[g.outEdges[i]])
	}
}

// ForEdges calls handle for every edge in id order.
func (g *Graph) ForEdges(handle func(e *Edge)) {
	for i := range g.edges {
		handle(&g.edges[i])
	}
}
