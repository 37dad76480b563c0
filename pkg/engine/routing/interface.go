package routing

import (
	"github.com/lintang-b-s/transitx/pkg/catalogue"
	da "github.com/lintang-b-s/transitx/pkg/datastructure"
)

// Catalogue is the read side of the transit catalogue the graph builder needs.
type Catalogue interface {
	AllStops() []catalogue.Stop
	AllBuses() []catalogue.Bus
	GetDistance(from, to catalogue.StopID) int
}

type CostFunction interface {
	GetWaitWeight() float64
	GetRideWeight(distanceMeter int) float64
}

type Router interface {
	FindRoute(from, to string) (da.Itinerary, RouteStatus)
}
