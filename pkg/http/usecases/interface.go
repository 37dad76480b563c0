package usecases

import (
	"github.com/lintang-b-s/transitx/pkg/catalogue"
	"github.com/lintang-b-s/transitx/pkg/datastructure"
	"github.com/lintang-b-s/transitx/pkg/engine/routing"
	"github.com/lintang-b-s/transitx/pkg/renderer"
	"github.com/lintang-b-s/transitx/pkg/spatialindex"
)

type TransitEngine interface {
	GetRouteInfo(busName string) (catalogue.BusInfo, bool)
	GetBusesForStop(stopName string) catalogue.StopBuses
	FindRoute(from, to string) (datastructure.Itinerary, routing.RouteStatus)
	GetCatalogue() *catalogue.Catalogue
}

type SpatialIndex interface {
	SearchWithinRadius(qLat, qLon, radius float64, limit int) []spatialindex.NearbyStop
}

type MapRenderer interface {
	RenderMap() *renderer.Document
}
