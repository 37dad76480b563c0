package reader

import (
	"github.com/lintang-b-s/transitx/pkg/engine/routing"
	"github.com/lintang-b-s/transitx/pkg/renderer"
)

const (
	BaseRequestStop = "Stop"
	BaseRequestBus  = "Bus"

	StatRequestStop  = "Stop"
	StatRequestBus   = "Bus"
	StatRequestMap   = "Map"
	StatRequestRoute = "Route"
)

// Document is one input document: catalogue content, optional settings and the queries to answer.
type Document struct {
	BaseRequests    []BaseRequest            `json:"base_requests" validate:"dive"`
	RoutingSettings *routing.RoutingSettings `json:"routing_settings"`
	RenderSettings  *RenderSettings          `json:"render_settings"`
	StatRequests    []StatRequest            `json:"stat_requests" validate:"dive"`
}

type BaseRequest struct {
	Type          string         `json:"type" validate:"required,oneof=Stop Bus"`
	Name          string         `json:"name" validate:"required"`
	Latitude      float64        `json:"latitude" validate:"min=-90,max=90"`
	Longitude     float64        `json:"longitude" validate:"min=-180,max=180"`
	RoadDistances map[string]int `json:"road_distances" validate:"dive,gte=0"`
	Stops         []string       `json:"stops"`
	IsRoundtrip   bool           `json:"is_roundtrip"`
}

type StatRequest struct {
	ID   int    `json:"id"`
	Type string `json:"type" validate:"required,oneof=Stop Bus Map Route"`
	Name string `json:"name" validate:"required_if=Type Stop,required_if=Type Bus"`
	From string `json:"from" validate:"required_if=Type Route"`
	To   string `json:"to" validate:"required_if=Type Route"`
}

type RenderSettings struct {
	Width             float64          `json:"width"`
	Height            float64          `json:"height"`
	Padding           float64          `json:"padding"`
	LineWidth         float64          `json:"line_width"`
	StopRadius        float64          `json:"stop_radius"`
	BusLabelFontSize  uint32           `json:"bus_label_font_size"`
	BusLabelOffset    [2]float64       `json:"bus_label_offset"`
	StopLabelFontSize uint32           `json:"stop_label_font_size"`
	StopLabelOffset   [2]float64       `json:"stop_label_offset"`
	UnderlayerColor   renderer.Color   `json:"underlayer_color"`
	UnderlayerWidth   float64          `json:"underlayer_width"`
	ColorPalette      []renderer.Color `json:"color_palette"`
}

func (rs RenderSettings) ToRenderSettings() renderer.RenderSettings {
	return renderer.RenderSettings{
		Width:             rs.Width,
		Height:            rs.Height,
		Padding:           rs.Padding,
		LineWidth:         rs.LineWidth,
		StopRadius:        rs.StopRadius,
		BusLabelFontSize:  rs.BusLabelFontSize,
		BusLabelOffset:    renderer.Point{X: rs.BusLabelOffset[0], Y: rs.BusLabelOffset[1]},
		StopLabelFontSize: rs.StopLabelFontSize,
		StopLabelOffset:   renderer.Point{X: rs.StopLabelOffset[0], Y: rs.StopLabelOffset[1]},
		UnderlayerColor:   rs.UnderlayerColor,
		UnderlayerWidth:   rs.UnderlayerWidth,
		ColorPalette:      rs.ColorPalette,
	}
}
