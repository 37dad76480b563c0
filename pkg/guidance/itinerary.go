package guidance

import (
	"github.com/lintang-b-s/transitx/pkg"
	da "github.com/lintang-b-s/transitx/pkg/datastructure"
)

// ItineraryBuilder turns an edge path of the transit graph back into passenger instructions:
// a wait edge becomes "wait at stop", a ride edge becomes "ride bus for n spans".
type ItineraryBuilder struct {
	graph Graph
}

func NewItineraryBuilder(graph Graph) *ItineraryBuilder {
	return &ItineraryBuilder{graph: graph}
}

func (ib *ItineraryBuilder) BuildItinerary(path []da.Index) da.Itinerary {
	itinerary := da.Itinerary{Items: make([]da.ItineraryItem, 0, len(path))}

	for _, edgeId := range path {
		edge := ib.graph.GetEdge(edgeId)
		switch edge.GetKind() {
		case pkg.WAIT_EDGE:
			itinerary.Items = append(itinerary.Items, da.NewWaitItem(edge.GetName(), edge.GetWeight()))
		case pkg.RIDE_EDGE:
			itinerary.Items = append(itinerary.Items, da.NewBusItem(edge.GetName(), edge.GetSpanCount(),
				edge.GetWeight()))
		}
		itinerary.TotalTime += edge.GetWeight()
	}
	return itinerary
}
