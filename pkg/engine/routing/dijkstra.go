package routing

import (
	"sync"

	"github.com/lintang-b-s/transitx/pkg"
	da "github.com/lintang-b-s/transitx/pkg/datastructure"
	"github.com/lintang-b-s/transitx/pkg/util"
)

type PathResult struct {
	Weight float64
	Edges  []da.Index
}

// Dijkstra runs point-to-point and one-to-all searches over an immutable graph.
// safe for concurrent use: every query takes its own searchState from the pool.
type Dijkstra struct {
	graph *da.Graph
	pool  sync.Pool
}

func NewDijkstra(graph *da.Graph) *Dijkstra {
	d := &Dijkstra{graph: graph}
	d.pool.New = func() any {
		return newSearchState(graph.NumberOfVertices())
	}
	return d
}

func (d *Dijkstra) acquire() *searchState {
	return d.pool.Get().(*searchState)
}

func (d *Dijkstra) release(st *searchState) {
	st.clear()
	d.pool.Put(st)
}

func (d *Dijkstra) validVertex(v da.Index) bool {
	return int(v) < d.graph.NumberOfVertices()
}

// ShortestPath. minimum weight path from s to t. the search stops as soon as t is settled.
// s == t gives a zero weight path with no edges.
func (d *Dijkstra) ShortestPath(s, t da.Index) (PathResult, bool) {
	if !d.validVertex(s) || !d.validVertex(t) {
		return PathResult{}, false
	}
	if s == t {
		return PathResult{Weight: 0, Edges: []da.Index{}}, true
	}

	st := d.acquire()
	defer d.release(st)

	d.search(st, s, t)

	if !st.info[t].IsScanned() {
		return PathResult{}, false
	}

	edges := make([]da.Index, 0)
	for v := t; v != s; {
		e := st.info[v].GetParentEdge()
		edges = append(edges, e)
		v = d.graph.GetEdge(e).GetTail()
	}

	return PathResult{
		Weight: st.info[t].GetTravelTime(),
		Edges:  util.ReverseG(edges),
	}, true
}

// ShortestPathTree. travel time from s to every vertex, INF_WEIGHT for unreachable ones.
func (d *Dijkstra) ShortestPathTree(s da.Index) []float64 {
	n := d.graph.NumberOfVertices()
	sps := make([]float64, n)
	for i := range sps {
		sps[i] = pkg.INF_WEIGHT
	}
	if !d.validVertex(s) {
		return sps
	}

	st := d.acquire()
	defer d.release(st)

	d.search(st, s, da.INVALID_VERTEX_ID)

	for _, v := range st.touched {
		if st.info[v].IsScanned() {
			sps[v] = st.info[v].GetTravelTime()
		}
	}
	return sps
}

// Reachable returns the vertices reachable from s in increasing id order, s included.
func (d *Dijkstra) Reachable(s da.Index) []da.Index {
	reachable := make([]da.Index, 0)
	for v, travelTime := range d.ShortestPathTree(s) {
		if travelTime < pkg.INF_WEIGHT {
			reachable = append(reachable, da.Index(v))
		}
	}
	return reachable
}

func (d *Dijkstra) search(st *searchState, s, t da.Index) {
	st.label(s, 0, da.INVALID_EDGE_ID)

	for !st.pq.IsEmpty() {
		node, err := st.pq.ExtractMin()
		if err != nil {
			return
		}
		u := node.GetItem()
		uInfo := &st.info[u]
		uInfo.Scan()
		if u == t {
			return
		}

		d.graph.ForOutEdgesOf(u, func(e *da.Edge) {
			v := e.GetHead()
			vInfo := &st.info[v]
			if vInfo.IsScanned() {
				return
			}

			newTravelTime := uInfo.GetTravelTime() + e.GetWeight()
			if newTravelTime >= pkg.INF_WEIGHT {
				return
			}

			if vInfo.IsLabelled() {
				if newTravelTime >= vInfo.GetTravelTime() {
					return
				}
				vInfo.UpdateTravelTime(newTravelTime)
				vInfo.UpdateParentEdge(e.GetEdgeId())
				// cannot fail: v is labelled and not scanned, so its node is still in the heap
				// and newTravelTime is below its rank.
				_ = st.pq.DecreaseKey(vInfo.GetHeapNode(), newTravelTime)
				return
			}

			st.label(v, newTravelTime, e.GetEdgeId())
		})
	}
}
