package routing

import (
	"github.com/lintang-b-s/transitx/pkg/catalogue"
	"github.com/lintang-b-s/transitx/pkg/costfunction"
	da "github.com/lintang-b-s/transitx/pkg/datastructure"
	"github.com/lintang-b-s/transitx/pkg/util"
)

// TransportGraph is the time-expanded view of the catalogue. every stop owns two vertices:
// arrival (2i) and departure (2i+1), where i is the rank of the stop name. a wait edge
// connects them. for each bus, a ride edge goes from departure(s_i) to arrival(s_j) for every
// i < j along its effective stop sequence, so one boarding covers any number of spans.
type TransportGraph struct {
	graph        *da.Graph
	stopVertices map[string]da.Index
	settings     RoutingSettings
}

func (tg *TransportGraph) GetGraph() *da.Graph {
	return tg.graph
}

func (tg *TransportGraph) GetSettings() RoutingSettings {
	return tg.settings
}

// GetArrivalVertex. arrival vertex of the stop, the entry point of every route query.
func (tg *TransportGraph) GetArrivalVertex(stopName string) (da.Index, bool) {
	v, ok := tg.stopVertices[stopName]
	return v, ok
}

func GetDepartureVertex(arrival da.Index) da.Index {
	return arrival + 1
}

func BuildTransportGraph(cat Catalogue, settings RoutingSettings) (*TransportGraph, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	stops := cat.AllStops()
	if len(stops) == 0 {
		return nil, ErrEmptyCatalogue
	}

	cf := costfunction.NewTransitCostFunction(settings.BusWaitTime, settings.BusVelocity)

	stopVertices := make(map[string]da.Index, len(stops))
	vertexOf := make(map[catalogue.StopID]da.Index, len(stops))
	edges := make([]da.Edge, 0, len(stops))

	for i, stop := range stops {
		arrival := da.Index(2 * i)
		stopVertices[stop.Name] = arrival
		vertexOf[stop.ID] = arrival
		edges = append(edges, da.NewWaitEdge(arrival, GetDepartureVertex(arrival), cf.GetWaitWeight(), stop.Name))
	}

	for _, bus := range cat.AllBuses() {
		edges = appendRideEdges(edges, cat, cf, bus, vertexOf)
	}

	graph, err := da.NewGraph(2*len(stops), edges)
	if err != nil {
		return nil, err
	}

	return &TransportGraph{
		graph:        graph,
		stopVertices: stopVertices,
		settings:     settings,
	}, nil
}

func appendRideEdges(edges []da.Edge, cat Catalogue, cf CostFunction, bus catalogue.Bus,
	vertexOf map[catalogue.StopID]da.Index) []da.Edge {
	seq := bus.Stops
	if len(seq) < 2 {
		return edges
	}

	segments := make([]int, len(seq)-1)
	for k := 0; k+1 < len(seq); k++ {
		segments[k] = cat.GetDistance(seq[k], seq[k+1])
	}
	// dist(s_i, s_j) = sums[j] - sums[i]
	sums := util.PrefixSums(segments)

	for i := 0; i < len(seq); i++ {
		departure := GetDepartureVertex(vertexOf[seq[i]])
		for j := i + 1; j < len(seq); j++ {
			dist := sums[j] - sums[i]
			edges = append(edges, da.NewRideEdge(departure, vertexOf[seq[j]], cf.GetRideWeight(dist),
				bus.Name, j-i))
		}
	}
	return edges
}
