package reader

import (
	"github.com/lintang-b-s/transitx/pkg/catalogue"
	da "github.com/lintang-b-s/transitx/pkg/datastructure"
)

const notFoundMessage = "not found"

type busResponse struct {
	Curvature       float64 `json:"curvature"`
	RequestID       int     `json:"request_id"`
	RouteLength     int     `json:"route_length"`
	StopCount       int     `json:"stop_count"`
	UniqueStopCount int     `json:"unique_stop_count"`
}

func newBusResponse(id int, info catalogue.BusInfo) busResponse {
	return busResponse{
		Curvature:       info.Curvature,
		RequestID:       id,
		RouteLength:     info.RouteLength,
		StopCount:       info.StopsCount,
		UniqueStopCount: info.UniqueStopsCount,
	}
}

type stopResponse struct {
	Buses     []string `json:"buses"`
	RequestID int      `json:"request_id"`
}

type mapResponse struct {
	Map       string `json:"map"`
	RequestID int    `json:"request_id"`
}

type routeItem struct {
	Bus       string  `json:"bus,omitempty"`
	SpanCount int     `json:"span_count,omitempty"`
	StopName  string  `json:"stop_name,omitempty"`
	Time      float64 `json:"time"`
	Type      string  `json:"type"`
}

type routeResponse struct {
	Items     []routeItem `json:"items"`
	RequestID int         `json:"request_id"`
	TotalTime float64     `json:"total_time"`
}

func newRouteResponse(id int, it da.Itinerary) routeResponse {
	items := make([]routeItem, 0, len(it.Items))
	for _, item := range it.Items {
		items = append(items, routeItem{
			Bus:       item.Bus,
			SpanCount: item.SpanCount,
			StopName:  item.StopName,
			Time:      item.Time,
			Type:      item.Kind.String(),
		})
	}
	return routeResponse{Items: items, RequestID: id, TotalTime: it.TotalTime}
}

type errorResponse struct {
	ErrorMessage string `json:"error_message"`
	RequestID    int    `json:"request_id"`
}

func newNotFoundResponse(id int) errorResponse {
	return errorResponse{ErrorMessage: notFoundMessage, RequestID: id}
}
