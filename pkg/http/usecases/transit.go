package usecases

import (
	"sync"

	"github.com/lintang-b-s/transitx/pkg/catalogue"
	"github.com/lintang-b-s/transitx/pkg/datastructure"
	"github.com/lintang-b-s/transitx/pkg/engine/routing"
	"github.com/lintang-b-s/transitx/pkg/geo"
	"github.com/lintang-b-s/transitx/pkg/spatialindex"
	"github.com/lintang-b-s/transitx/pkg/util"
	"go.uber.org/zap"
)

type BusDetail struct {
	Info     catalogue.BusInfo
	Stops    []string
	Polyline string
}

type StopDetail struct {
	Stop  catalogue.Stop
	Buses []string
}

// TransitService serves read-only queries. every dependency is frozen before the server starts.
type TransitService struct {
	log       *zap.Logger
	engine    TransitEngine
	stopIndex SpatialIndex
	renderer  MapRenderer

	mapOnce sync.Once
	svgMap  string
}

// NewTransitService. renderer may be nil when no render settings were given.
func NewTransitService(log *zap.Logger, engine TransitEngine, stopIndex SpatialIndex,
	renderer MapRenderer) *TransitService {
	return &TransitService{
		log:       log,
		engine:    engine,
		stopIndex: stopIndex,
		renderer:  renderer,
	}
}

func (ts *TransitService) GetBus(name string) (BusDetail, error) {
	info, ok := ts.engine.GetRouteInfo(name)
	if !ok {
		return BusDetail{}, util.WrapErrorf(ErrBusNotFound, util.ErrNotFound, "bus %q", name)
	}
	cat := ts.engine.GetCatalogue()
	bus, _ := cat.GetBusByName(name)

	stops := make([]string, 0, len(bus.Stops))
	for _, sid := range bus.Stops {
		stops = append(stops, cat.GetStop(sid).Name)
	}
	return BusDetail{
		Info:     info,
		Stops:    stops,
		Polyline: geo.PolylineFromCoords(cat.BusCoordinates(bus.ID)),
	}, nil
}

func (ts *TransitService) GetStop(name string) (StopDetail, error) {
	buses := ts.engine.GetBusesForStop(name)
	if !buses.Found() {
		return StopDetail{}, util.WrapErrorf(ErrStopNotFound, util.ErrNotFound, "stop %q", name)
	}
	stop, _ := ts.engine.GetCatalogue().GetStopInfo(name)
	return StopDetail{Stop: stop, Buses: buses.Buses}, nil
}

func (ts *TransitService) FindRoute(from, to string) (datastructure.Itinerary, error) {
	it, status := ts.engine.FindRoute(from, to)
	switch status {
	case routing.RouteStopNotFound:
		return datastructure.Itinerary{}, util.WrapErrorf(ErrStopNotFound, util.ErrNotFound,
			"route from %q to %q", from, to)
	case routing.RouteNotFound:
		return datastructure.Itinerary{}, util.WrapErrorf(ErrRouteNotFound, util.ErrNotFound,
			"no route from %q to %q", from, to)
	}
	return it, nil
}

func (ts *TransitService) RenderMap() (string, error) {
	if ts.renderer == nil {
		return "", util.WrapErrorf(ErrMapDisabled, util.ErrNotFound, "map")
	}
	ts.mapOnce.Do(func() {
		ts.svgMap = ts.renderer.RenderMap().String()
		ts.log.Info("map rendered", zap.Int("bytes", len(ts.svgMap)))
	})
	return ts.svgMap, nil
}

// NearbyStops. radius in km.
func (ts *TransitService) NearbyStops(lat, lon, radius float64, limit int) []spatialindex.NearbyStop {
	return ts.stopIndex.SearchWithinRadius(lat, lon, radius, limit)
}
