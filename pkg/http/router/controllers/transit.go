package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"
	helper "github.com/lintang-b-s/transitx/pkg/http/router/routerhelper"
	"go.uber.org/zap"
)

const defaultNearbyLimit = 20

type transitAPI struct {
	transitService TransitService
	log            *zap.Logger
	validate       *validator.Validate
	trans          ut.Translator
}

func New(transitService TransitService, log *zap.Logger) *transitAPI {
	validate := validator.New()
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)

	return &transitAPI{
		transitService: transitService,
		log:            log,
		validate:       validate,
		trans:          trans,
	}
}

func (api *transitAPI) Routes(group *helper.RouteGroup) {
	group.GET("/buses/:name", api.getBus)
	group.GET("/stops/:name", api.getStop)
	group.GET("/route", api.findRoute)
	group.GET("/map", api.renderMap)
	group.GET("/stops-nearby", api.nearbyStops)
}

func (api *transitAPI) validationError(w http.ResponseWriter, r *http.Request, err error) {
	vv := translateError(err, api.trans)
	vvString := []string{}
	for _, v := range vv {
		vvString = append(vvString, v.Error())
	}
	api.BadRequestResponse(w, r, fmt.Errorf("validation error: %v", vvString))
}

// getBus
//
//	@Summary		bus route statistics and its stop sequence
//	@Tags			transit
//	@Produce		json
//	@Param			name	path		string	true	"bus name"
//	@Success		200		{object}	busResponse
//	@Failure		404		{object}	errorResponse
//	@Router			/buses/{name} [get]
func (api *transitAPI) getBus(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	detail, err := api.transitService.GetBus(p.ByName("name"))
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewBusResponse(detail)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// getStop
//
//	@Summary		buses serving a stop
//	@Tags			transit
//	@Produce		json
//	@Param			name	path		string	true	"stop name"
//	@Success		200		{object}	stopResponse
//	@Failure		404		{object}	errorResponse
//	@Router			/stops/{name} [get]
func (api *transitAPI) getStop(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	detail, err := api.transitService.GetStop(p.ByName("name"))
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewStopResponse(detail)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// findRoute
//
//	@Summary		fastest itinerary between two stops
//	@Tags			transit
//	@Produce		json
//	@Param			from	query		string	true	"origin stop name"
//	@Param			to		query		string	true	"destination stop name"
//	@Success		200		{object}	routeResponse
//	@Failure		400		{object}	errorResponse
//	@Failure		404		{object}	errorResponse
//	@Router			/route [get]
func (api *transitAPI) findRoute(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	query := r.URL.Query()
	request := routeRequest{From: query.Get("from"), To: query.Get("to")}

	if err := api.validate.Struct(request); err != nil {
		api.validationError(w, r, err)
		return
	}

	it, err := api.transitService.FindRoute(request.From, request.To)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewRouteResponse(it)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// renderMap
//
//	@Summary		svg map of the whole network
//	@Tags			transit
//	@Produce		image/svg+xml
//	@Success		200
//	@Failure		404		{object}	errorResponse
//	@Router			/map [get]
func (api *transitAPI) renderMap(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	svg, err := api.transitService.RenderMap()
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(svg)); err != nil {
		api.log.Error("write svg map", zap.Error(err))
	}
}

// nearbyStops
//
//	@Summary		stops within radius km of a point, nearest first
//	@Tags			transit
//	@Produce		json
//	@Param			lat		query		number	true	"latitude"
//	@Param			lon		query		number	true	"longitude"
//	@Param			radius	query		number	true	"radius in km"
//	@Param			limit	query		int		false	"max number of stops"
//	@Success		200		{array}		nearbyStop
//	@Failure		400		{object}	errorResponse
//	@Router			/stops-nearby [get]
func (api *transitAPI) nearbyStops(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request nearbyStopsRequest
		err     error
	)

	query := r.URL.Query()

	request.Lat, err = strconv.ParseFloat(query.Get("lat"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("lat is required and must be a valid float"))
		return
	}
	request.Lon, err = strconv.ParseFloat(query.Get("lon"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("lon is required and must be a valid float"))
		return
	}
	request.Radius, err = strconv.ParseFloat(query.Get("radius"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("radius is required and must be a valid float"))
		return
	}
	request.Limit = defaultNearbyLimit
	if limit := query.Get("limit"); limit != "" {
		request.Limit, err = strconv.Atoi(limit)
		if err != nil {
			api.BadRequestResponse(w, r, errors.New("limit must be a valid int"))
			return
		}
	}

	if err := api.validate.Struct(request); err != nil {
		api.validationError(w, r, err)
		return
	}

	stops := api.transitService.NearbyStops(request.Lat, request.Lon, request.Radius, request.Limit)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewNearbyStopsResponse(stops)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}
