package routing

import (
	"github.com/lintang-b-s/transitx/pkg"
	da "github.com/lintang-b-s/transitx/pkg/datastructure"
)

type VertexInfo struct {
	travelTime float64
	parentEdge da.Index
	scanned    bool // travelTime is final, v is in the shortest path tree
	heapNode   *da.PriorityQueueNode[da.Index]
}

func NewVertexInfo(travelTime float64, parentEdge da.Index, hnode *da.PriorityQueueNode[da.Index]) VertexInfo {
	return VertexInfo{
		travelTime: travelTime,
		parentEdge: parentEdge,
		heapNode:   hnode,
	}
}

func (vi *VertexInfo) GetTravelTime() float64 {
	return vi.travelTime
}

func (vi *VertexInfo) UpdateTravelTime(tt float64) {
	vi.travelTime = tt
}

func (vi *VertexInfo) GetParentEdge() da.Index {
	return vi.parentEdge
}

func (vi *VertexInfo) UpdateParentEdge(e da.Index) {
	vi.parentEdge = e
}

func (vi *VertexInfo) Scan() {
	vi.scanned = true
}

func (vi *VertexInfo) IsScanned() bool {
	return vi.scanned
}

func (vi *VertexInfo) IsLabelled() bool {
	return vi.travelTime < pkg.INF_WEIGHT
}

func (vi *VertexInfo) GetHeapNode() *da.PriorityQueueNode[da.Index] {
	return vi.heapNode
}

func (vi *VertexInfo) reset() {
	*vi = VertexInfo{travelTime: pkg.INF_WEIGHT, parentEdge: da.INVALID_EDGE_ID}
}

// searchState is the per-query scratch space of a Dijkstra search. only touched vertices are reset
// between queries.
type searchState struct {
	info    []VertexInfo
	touched []da.Index
	pq      *da.MinHeap[da.Index]
}

func newSearchState(numVertices int) *searchState {
	info := make([]VertexInfo, numVertices)
	for i := range info {
		info[i].reset()
	}
	pq := da.NewFourAryHeap[da.Index]()
	pq.Preallocate(numVertices)
	return &searchState{
		info:    info,
		touched: make([]da.Index, 0, 64),
		pq:      pq,
	}
}

func (st *searchState) label(v da.Index, travelTime float64, parentEdge da.Index) {
	node := da.NewPriorityQueueNode(travelTime, v)
	st.info[v] = NewVertexInfo(travelTime, parentEdge, node)
	st.touched = append(st.touched, v)
	st.pq.Insert(node)
}

func (st *searchState) clear() {
	for _, v := range st.touched {
		st.info[v].reset()
	}
	st.touched = st.touched[:0]
	st.pq.Clear()
}
