package engine

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/lintang-b-s/transitx/pkg/catalogue"
	"github.com/lintang-b-s/transitx/pkg/datastructure"
	"github.com/lintang-b-s/transitx/pkg/engine/routing"
	"go.uber.org/zap"
)

type routeCacheKey struct {
	from, to string
}

type routeCacheValue struct {
	itinerary datastructure.Itinerary
	status    routing.RouteStatus
}

// Engine is the query facade over a loaded catalogue and the routing graph built from it.
// the catalogue must not be mutated after NewEngine.
type Engine struct {
	catalogue  *catalogue.Catalogue
	router     *routing.TransportRouter
	routeCache *lru.Cache[routeCacheKey, routeCacheValue]
	logger     *zap.Logger
}

// NewEngine builds the transit graph. routeCacheSize <= 0 disables the route cache.
func NewEngine(cat *catalogue.Catalogue, settings routing.RoutingSettings, logger *zap.Logger,
	routeCacheSize int) (*Engine, error) {

	logger.Info("building transit graph...", zap.Int("stops", cat.StopsCount()),
		zap.Int("buses", cat.BusesCount()))

	tg, err := routing.BuildTransportGraph(cat, settings)
	if err != nil {
		return nil, err
	}

	_, numComponents := tg.GetGraph().StronglyConnectedComponents()
	logger.Info("transit graph built", zap.Int("vertices", tg.GetGraph().NumberOfVertices()),
		zap.Int("bus_wait_time", tg.GetSettings().BusWaitTime),
		zap.Float64("bus_velocity", tg.GetSettings().BusVelocity),
		zap.Int("edges", tg.GetGraph().NumberOfEdges()),
		zap.Int("strongly_connected_components", numComponents))

	var routeCache *lru.Cache[routeCacheKey, routeCacheValue]
	if routeCacheSize > 0 {
		routeCache, err = lru.New[routeCacheKey, routeCacheValue](routeCacheSize)
		if err != nil {
			return nil, err
		}
	}

	return &Engine{
		catalogue:  cat,
		router:     routing.NewTransportRouter(tg),
		routeCache: routeCache,
		logger:     logger,
	}, nil
}

func (e *Engine) GetCatalogue() *catalogue.Catalogue {
	return e.catalogue
}

func (e *Engine) GetRouteInfo(busName string) (catalogue.BusInfo, bool) {
	return e.catalogue.GetRouteInfo(busName)
}

func (e *Engine) GetBusesForStop(stopName string) catalogue.StopBuses {
	return e.catalogue.GetBusesForStop(stopName)
}

// FindRoute. the returned itinerary is owned by the caller.
func (e *Engine) FindRoute(from, to string) (datastructure.Itinerary, routing.RouteStatus) {
	key := routeCacheKey{from: from, to: to}
	if e.routeCache != nil {
		if cached, ok := e.routeCache.Get(key); ok {
			return cached.itinerary.Clone(), cached.status
		}
	}

	itinerary, status := e.router.FindRoute(from, to)
	if status == routing.RouteStopNotFound {
		e.logger.Debug("route query on unknown stop", zap.String("from", from), zap.String("to", to))
	}

	if e.routeCache != nil {
		e.routeCache.Add(key, routeCacheValue{itinerary: itinerary.Clone(), status: status})
	}
	return itinerary, status
}
