package renderer

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/lintang-b-s/transitx/pkg/catalogue"
	"github.com/lintang-b-s/transitx/pkg/geo"
)

var (
	ErrInvalidRenderSettings = errors.New("renderer: invalid render settings")
	settingsValidator        = validator.New()
)

const (
	labelFontFamily = "Verdana"
	busFontWeight   = "bold"
)

type Catalogue interface {
	AllBuses() []catalogue.Bus
	StopsServedByBuses() []catalogue.Stop
	GetStop(id catalogue.StopID) catalogue.Stop
}

type RenderSettings struct {
	Width             float64 `validate:"gte=0,lte=100000"`
	Height            float64 `validate:"gte=0,lte=100000"`
	Padding           float64 `validate:"gte=0"`
	LineWidth         float64 `validate:"gte=0,lte=100000"`
	StopRadius        float64 `validate:"gte=0,lte=100000"`
	BusLabelFontSize  uint32  `validate:"lte=100000"`
	BusLabelOffset    Point
	StopLabelFontSize uint32 `validate:"lte=100000"`
	StopLabelOffset   Point
	UnderlayerColor   Color
	UnderlayerWidth   float64 `validate:"gte=0,lte=100000"`
	ColorPalette      []Color
}

func (rs RenderSettings) Validate() error {
	if err := settingsValidator.Struct(rs); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRenderSettings, err)
	}
	if rs.Width > 0 && rs.Height > 0 && rs.Padding >= min(rs.Width, rs.Height)/2 {
		return fmt.Errorf("%w: padding %v must be less than half of min(width, height)",
			ErrInvalidRenderSettings, rs.Padding)
	}
	return nil
}

// MapRenderer draws the bus network as svg: route lines, then bus labels, then stop circles,
// then stop labels, each layer in name order.
type MapRenderer struct {
	settings  RenderSettings
	catalogue Catalogue
}

func NewMapRenderer(settings RenderSettings, cat Catalogue) *MapRenderer {
	return &MapRenderer{settings: settings, catalogue: cat}
}

func (mr *MapRenderer) paletteColor(i int) Color {
	if len(mr.settings.ColorPalette) == 0 {
		return NoneColor
	}
	return mr.settings.ColorPalette[i%len(mr.settings.ColorPalette)]
}

func (mr *MapRenderer) RenderMap() *Document {
	doc := NewDocument()

	buses := mr.catalogue.AllBuses()
	stops := mr.catalogue.StopsServedByBuses()
	if len(buses) == 0 || len(stops) == 0 {
		return doc
	}

	coords := make([]geo.Coordinate, 0)
	for _, bus := range buses {
		for _, sid := range bus.Stops {
			coords = append(coords, mr.catalogue.GetStop(sid).Coordinates)
		}
	}
	projector := NewSphereProjector(coords, mr.settings.Width, mr.settings.Height, mr.settings.Padding)

	mr.renderRoutePolylines(doc, buses, projector)
	mr.renderRouteLabels(doc, buses, projector)
	mr.renderStopSymbols(doc, stops, projector)
	mr.renderStopLabels(doc, stops, projector)
	return doc
}

func (mr *MapRenderer) renderRoutePolylines(doc *Document, buses []catalogue.Bus, projector SphereProjector) {
	colorNum := 0
	for _, bus := range buses {
		if len(bus.Stops) == 0 {
			continue
		}

		pl := &Polyline{}
		for _, sid := range bus.Stops {
			pl.AddPoint(projector.Project(mr.catalogue.GetStop(sid).Coordinates))
		}
		pl.SetFillColor(NoneColor)
		pl.SetStrokeColor(mr.paletteColor(colorNum))
		pl.SetStrokeWidth(mr.settings.LineWidth)
		pl.SetStrokeLineCap(LineCapRound)
		pl.SetStrokeLineJoin(LineJoinRound)
		doc.Add(pl)

		colorNum++
	}
}

// routeTerminals. first stop, plus the turnaround stop of a non-circular route when it differs.
func routeTerminals(bus catalogue.Bus) []catalogue.StopID {
	terminals := []catalogue.StopID{bus.Stops[0]}
	if last, ok := bus.LastDeclaredStop(); ok && !bus.IsCircular && last != bus.Stops[0] {
		terminals = append(terminals, last)
	}
	return terminals
}

func (mr *MapRenderer) renderRouteLabels(doc *Document, buses []catalogue.Bus, projector SphereProjector) {
	colorNum := 0
	for _, bus := range buses {
		if len(bus.Stops) == 0 {
			continue
		}

		for _, sid := range routeTerminals(bus) {
			pos := projector.Project(mr.catalogue.GetStop(sid).Coordinates)

			underlayer := mr.busLabel(pos, bus.Name)
			underlayer.SetFillColor(mr.settings.UnderlayerColor)
			underlayer.SetStrokeColor(mr.settings.UnderlayerColor)
			underlayer.SetStrokeWidth(mr.settings.UnderlayerWidth)
			underlayer.SetStrokeLineCap(LineCapRound)
			underlayer.SetStrokeLineJoin(LineJoinRound)
			doc.Add(underlayer)

			label := mr.busLabel(pos, bus.Name)
			label.SetFillColor(mr.paletteColor(colorNum))
			doc.Add(label)
		}
		colorNum++
	}
}

func (mr *MapRenderer) busLabel(pos Point, name string) *Text {
	return &Text{
		Position:   pos,
		Offset:     mr.settings.BusLabelOffset,
		FontSize:   mr.settings.BusLabelFontSize,
		FontFamily: labelFontFamily,
		FontWeight: busFontWeight,
		Data:       name,
	}
}

func (mr *MapRenderer) renderStopSymbols(doc *Document, stops []catalogue.Stop, projector SphereProjector) {
	for _, stop := range stops {
		c := &Circle{Center: projector.Project(stop.Coordinates), Radius: mr.settings.StopRadius}
		c.SetFillColor(NamedColor("white"))
		doc.Add(c)
	}
}

func (mr *MapRenderer) renderStopLabels(doc *Document, stops []catalogue.Stop, projector SphereProjector) {
	for _, stop := range stops {
		pos := projector.Project(stop.Coordinates)

		underlayer := mr.stopLabel(pos, stop.Name)
		underlayer.SetFillColor(mr.settings.UnderlayerColor)
		underlayer.SetStrokeColor(mr.settings.UnderlayerColor)
		underlayer.SetStrokeWidth(mr.settings.UnderlayerWidth)
		underlayer.SetStrokeLineCap(LineCapRound)
		underlayer.SetStrokeLineJoin(LineJoinRound)
		doc.Add(underlayer)

		label := mr.stopLabel(pos, stop.Name)
		label.SetFillColor(NamedColor("black"))
		doc.Add(label)
	}
}

func (mr *MapRenderer) stopLabel(pos Point, name string) *Text {
	return &Text{
		Position:   pos,
		Offset:     mr.settings.StopLabelOffset,
		FontSize:   mr.settings.StopLabelFontSize,
		FontFamily: labelFontFamily,
		Data:       name,
	}
}
