package reader

import (
	"errors"
	"sync"

	"github.com/lintang-b-s/transitx/pkg/catalogue"
	"github.com/lintang-b-s/transitx/pkg/engine"
	"github.com/lintang-b-s/transitx/pkg/engine/routing"
	"github.com/lintang-b-s/transitx/pkg/renderer"
	"go.uber.org/zap"
)

// RequestHandler answers stat requests against a frozen catalogue. Route requests need routing
// settings and Map requests need render settings, otherwise they are answered with "not found".
type RequestHandler struct {
	cat      *catalogue.Catalogue
	engine   *engine.Engine
	renderer *renderer.MapRenderer
	log      *zap.Logger

	mapOnce sync.Once
	svgMap  string
}

func NewRequestHandler(cat *catalogue.Catalogue, routingSettings *routing.RoutingSettings,
	renderSettings *RenderSettings, log *zap.Logger, routeCacheSize int) (*RequestHandler, error) {
	rh := &RequestHandler{cat: cat, log: log}

	if routingSettings != nil {
		eng, err := engine.NewEngine(cat, *routingSettings, log, routeCacheSize)
		switch {
		case errors.Is(err, routing.ErrEmptyCatalogue):
			log.Warn("catalogue has no stops, route requests will not be answered")
		case err != nil:
			return nil, err
		default:
			rh.engine = eng
		}
	}

	if renderSettings != nil {
		settings := renderSettings.ToRenderSettings()
		if err := settings.Validate(); err != nil {
			return nil, err
		}
		rh.renderer = renderer.NewMapRenderer(settings, cat)
	}
	return rh, nil
}

func (rh *RequestHandler) Handle(req StatRequest) any {
	switch req.Type {
	case StatRequestBus:
		return rh.handleBus(req)
	case StatRequestStop:
		return rh.handleStop(req)
	case StatRequestMap:
		return rh.handleMap(req)
	case StatRequestRoute:
		return rh.handleRoute(req)
	default:
		return newNotFoundResponse(req.ID)
	}
}

func (rh *RequestHandler) handleBus(req StatRequest) any {
	info, ok := rh.cat.GetRouteInfo(req.Name)
	if !ok {
		return newNotFoundResponse(req.ID)
	}
	return newBusResponse(req.ID, info)
}

func (rh *RequestHandler) handleStop(req StatRequest) any {
	buses := rh.cat.GetBusesForStop(req.Name)
	if !buses.Found() {
		return newNotFoundResponse(req.ID)
	}
	return stopResponse{Buses: buses.Buses, RequestID: req.ID}
}

func (rh *RequestHandler) handleMap(req StatRequest) any {
	if rh.renderer == nil {
		return newNotFoundResponse(req.ID)
	}
	rh.mapOnce.Do(func() {
		rh.svgMap = rh.renderer.RenderMap().String()
	})
	return mapResponse{Map: rh.svgMap, RequestID: req.ID}
}

func (rh *RequestHandler) handleRoute(req StatRequest) any {
	if rh.engine == nil {
		return newNotFoundResponse(req.ID)
	}
	it, status := rh.engine.FindRoute(req.From, req.To)
	if status != routing.RouteFound {
		return newNotFoundResponse(req.ID)
	}
	return newRouteResponse(req.ID, it)
}
