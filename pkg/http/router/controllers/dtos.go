package controllers

import (
	"github.com/lintang-b-s/transitx/pkg/datastructure"
	"github.com/lintang-b-s/transitx/pkg/http/usecases"
	"github.com/lintang-b-s/transitx/pkg/spatialindex"
)

type routeRequest struct {
	From string `json:"from" validate:"required"`
	To   string `json:"to" validate:"required"`
}

type nearbyStopsRequest struct {
	Lat    float64 `json:"lat" validate:"min=-90,max=90"`
	Lon    float64 `json:"lon" validate:"min=-180,max=180"`
	Radius float64 `json:"radius" validate:"gt=0,lte=50"`
	Limit  int     `json:"limit" validate:"gte=0,lte=100"`
}

type busResponse struct {
	Name            string   `json:"name"`
	StopCount       int      `json:"stop_count"`
	UniqueStopCount int      `json:"unique_stop_count"`
	RouteLength     int      `json:"route_length"`
	Curvature       float64  `json:"curvature"`
	Stops           []string `json:"stops"`
	Path            string   `json:"path"`
}

func NewBusResponse(detail usecases.BusDetail) busResponse {
	return busResponse{
		Name:            detail.Info.Name,
		StopCount:       detail.Info.StopsCount,
		UniqueStopCount: detail.Info.UniqueStopsCount,
		RouteLength:     detail.Info.RouteLength,
		Curvature:       detail.Info.Curvature,
		Stops:           detail.Stops,
		Path:            detail.Polyline,
	}
}

type stopResponse struct {
	Name  string   `json:"name"`
	Lat   float64  `json:"lat"`
	Lon   float64  `json:"lon"`
	Buses []string `json:"buses"`
}

func NewStopResponse(detail usecases.StopDetail) stopResponse {
	return stopResponse{
		Name:  detail.Stop.Name,
		Lat:   detail.Stop.Coordinates.GetLat(),
		Lon:   detail.Stop.Coordinates.GetLon(),
		Buses: detail.Buses,
	}
}

type itineraryItem struct {
	Type      string  `json:"type"`
	StopName  string  `json:"stop_name,omitempty"`
	Bus       string  `json:"bus,omitempty"`
	SpanCount int     `json:"span_count,omitempty"`
	Time      float64 `json:"time"`
}

type routeResponse struct {
	TotalTime float64         `json:"total_time"`
	Items     []itineraryItem `json:"items"`
}

func NewRouteResponse(it datastructure.Itinerary) routeResponse {
	items := make([]itineraryItem, 0, len(it.Items))
	for _, item := range it.Items {
		items = append(items, itineraryItem{
			Type:      item.Kind.String(),
			StopName:  item.StopName,
			Bus:       item.Bus,
			SpanCount: item.SpanCount,
			Time:      item.Time,
		})
	}
	return routeResponse{TotalTime: it.TotalTime, Items: items}
}

type nearbyStop struct {
	Name     string  `json:"name"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Distance float64 `json:"distance"`
}

func NewNearbyStopsResponse(stops []spatialindex.NearbyStop) []nearbyStop {
	resp := make([]nearbyStop, 0, len(stops))
	for _, s := range stops {
		resp = append(resp, nearbyStop{
			Name:     s.Stop.Name,
			Lat:      s.Stop.Coordinates.GetLat(),
			Lon:      s.Stop.Coordinates.GetLon(),
			Distance: s.Distance,
		})
	}
	return resp
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
