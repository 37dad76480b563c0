package routing

import (
	da "github.com/lintang-b-s/transitx/pkg/datastructure"
	"github.com/lintang-b-s/transitx/pkg/guidance"
)

// TransportRouter answers fastest-itinerary queries between two named stops.
// read-only after construction.
type TransportRouter struct {
	tg        *TransportGraph
	dijkstra  *Dijkstra
	itinerary *guidance.ItineraryBuilder
}

func NewTransportRouter(tg *TransportGraph) *TransportRouter {
	return &TransportRouter{
		tg:        tg,
		dijkstra:  NewDijkstra(tg.GetGraph()),
		itinerary: guidance.NewItineraryBuilder(tg.GetGraph()),
	}
}

// FindRoute. both endpoints are arrival vertices, so the itinerary starts with a wait at from
// and ends with the ride into to. from == to gives an empty itinerary of zero time.
func (tr *TransportRouter) FindRoute(from, to string) (da.Itinerary, RouteStatus) {
	s, ok := tr.tg.GetArrivalVertex(from)
	if !ok {
		return da.Itinerary{}, RouteStopNotFound
	}
	t, ok := tr.tg.GetArrivalVertex(to)
	if !ok {
		return da.Itinerary{}, RouteStopNotFound
	}

	path, found := tr.dijkstra.ShortestPath(s, t)
	if !found {
		return da.Itinerary{}, RouteNotFound
	}

	itinerary := tr.itinerary.BuildItinerary(path.Edges)
	itinerary.TotalTime = path.Weight
	return itinerary, RouteFound
}
