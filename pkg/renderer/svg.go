package renderer

import (
	"io"
	"strconv"
	"strings"
)

type Point struct {
	X, Y float64
}

type StrokeLineCap string

const (
	LineCapButt   StrokeLineCap = "butt"
	LineCapRound  StrokeLineCap = "round"
	LineCapSquare StrokeLineCap = "square"
)

type StrokeLineJoin string

const (
	LineJoinArcs      StrokeLineJoin = "arcs"
	LineJoinBevel     StrokeLineJoin = "bevel"
	LineJoinMiter     StrokeLineJoin = "miter"
	LineJoinMiterClip StrokeLineJoin = "miter-clip"
	LineJoinRound     StrokeLineJoin = "round"
)

// formatFloat prints like a default c-style %g: 6 significant digits, no trailing zeros.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// PathProps are the optional paint attributes shared by every shape. unset fields are not written.
type PathProps struct {
	FillColor      *Color
	StrokeColor    *Color
	StrokeWidth    *float64
	StrokeLineCap  *StrokeLineCap
	StrokeLineJoin *StrokeLineJoin
}

func (p *PathProps) SetFillColor(c Color) {
	p.FillColor = &c
}

func (p *PathProps) SetStrokeColor(c Color) {
	p.StrokeColor = &c
}

func (p *PathProps) SetStrokeWidth(w float64) {
	p.StrokeWidth = &w
}

func (p *PathProps) SetStrokeLineCap(lc StrokeLineCap) {
	p.StrokeLineCap = &lc
}

func (p *PathProps) SetStrokeLineJoin(lj StrokeLineJoin) {
	p.StrokeLineJoin = &lj
}

func (p *PathProps) renderAttrs(sb *strings.Builder) {
	if p.FillColor != nil {
		sb.WriteString(` fill="` + p.FillColor.String() + `"`)
	}
	if p.StrokeColor != nil {
		sb.WriteString(` stroke="` + p.StrokeColor.String() + `"`)
	}
	if p.StrokeWidth != nil {
		sb.WriteString(` stroke-width="` + formatFloat(*p.StrokeWidth) + `"`)
	}
	if p.StrokeLineCap != nil {
		sb.WriteString(` stroke-linecap="` + string(*p.StrokeLineCap) + `"`)
	}
	if p.StrokeLineJoin != nil {
		sb.WriteString(` stroke-linejoin="` + string(*p.StrokeLineJoin) + `"`)
	}
}

type Object interface {
	renderObject(sb *strings.Builder)
}

type Circle struct {
	PathProps
	Center Point
	Radius float64
}

func (c *Circle) renderObject(sb *strings.Builder) {
	sb.WriteString(`<circle cx="` + formatFloat(c.Center.X) + `" cy="` + formatFloat(c.Center.Y) + `" `)
	sb.WriteString(`r="` + formatFloat(c.Radius) + `"`)
	c.renderAttrs(sb)
	sb.WriteString("/>")
}

type Polyline struct {
	PathProps
	Points []Point
}

func (pl *Polyline) AddPoint(p Point) {
	pl.Points = append(pl.Points, p)
}

func (pl *Polyline) renderObject(sb *strings.Builder) {
	sb.WriteString(`<polyline points="`)
	for i, p := range pl.Points {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(formatFloat(p.X) + "," + formatFloat(p.Y))
	}
	sb.WriteString(`"`)
	pl.renderAttrs(sb)
	sb.WriteString("/>")
}

type Text struct {
	PathProps
	Position   Point
	Offset     Point
	FontSize   uint32
	FontFamily string
	FontWeight string
	Data       string
}

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func (t *Text) renderObject(sb *strings.Builder) {
	sb.WriteString(`<text x="` + formatFloat(t.Position.X) + `" y="` + formatFloat(t.Position.Y) + `"`)
	sb.WriteString(` dx="` + formatFloat(t.Offset.X) + `" dy="` + formatFloat(t.Offset.Y) + `"`)
	sb.WriteString(` font-size="` + strconv.FormatUint(uint64(t.FontSize), 10) + `"`)
	if t.FontFamily != "" {
		sb.WriteString(` font-family="` + t.FontFamily + `"`)
	}
	if t.FontWeight != "" {
		sb.WriteString(` font-weight="` + t.FontWeight + `"`)
	}
	t.renderAttrs(sb)
	sb.WriteString(">")
	sb.WriteString(textEscaper.Replace(t.Data))
	sb.WriteString("</text>")
}

// Document keeps objects in insertion order, later objects are painted on top.
type Document struct {
	objects []Object
}

func NewDocument() *Document {
	return &Document{objects: make([]Object, 0)}
}

func (d *Document) Add(obj Object) {
	d.objects = append(d.objects, obj)
}

func (d *Document) Len() int {
	return len(d.objects)
}

func (d *Document) String() string {
	var sb strings.Builder
	sb.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\" ?>\n")
	sb.WriteString("<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\">\n")
	for _, obj := range d.objects {
		sb.WriteString("  ")
		obj.renderObject(&sb)
		sb.WriteByte('\n')
	}
	sb.WriteString("</svg>")
	return sb.String()
}

func (d *Document) Render(w io.Writer) error {
	_, err := io.WriteString(w, d.String())
	return err
}
