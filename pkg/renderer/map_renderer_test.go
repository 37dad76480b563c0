package renderer

import (
	"strings"
	"testing"

	"github.com/lintang-b-s/transitx/pkg/catalogue"
	"github.com/lintang-b-s/transitx/pkg/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSettings() RenderSettings {
	return RenderSettings{
		Width:             200,
		Height:            200,
		Padding:           10,
		LineWidth:         14,
		StopRadius:        5,
		BusLabelFontSize:  20,
		BusLabelOffset:    Point{X: 7, Y: 15},
		StopLabelFontSize: 18,
		StopLabelOffset:   Point{X: 7, Y: -3},
		UnderlayerColor:   RGBA(255, 255, 255, 0.85),
		UnderlayerWidth:   3,
		ColorPalette:      []Color{"green", RGB(255, 160, 0)},
	}
}

func TestSphereProjector(t *testing.T) {
	points := []geo.Coordinate{geo.NewCoordinate(0, 0), geo.NewCoordinate(0.02, 0.01)}
	sp := NewSphereProjector(points, 200, 200, 10)

	// height zoom 9000 < width zoom 18000
	p := sp.Project(geo.NewCoordinate(0.02, 0))
	assert.InDelta(t, 10, p.X, 1e-6)
	assert.InDelta(t, 10, p.Y, 1e-6)

	p = sp.Project(geo.NewCoordinate(0, 0.01))
	assert.InDelta(t, 100, p.X, 1e-6)
	assert.InDelta(t, 190, p.Y, 1e-6)
}

func TestSphereProjectorDegenerate(t *testing.T) {
	sp := NewSphereProjector([]geo.Coordinate{geo.NewCoordinate(1, 1), geo.NewCoordinate(1, 1)}, 200, 200, 10)
	p := sp.Project(geo.NewCoordinate(1, 1))
	assert.Equal(t, Point{X: 10, Y: 10}, p)

	sp = NewSphereProjector(nil, 200, 200, 10)
	assert.Equal(t, Point{X: 10, Y: 10}, sp.Project(geo.NewCoordinate(0, 0)))
}

func TestRenderMap(t *testing.T) {
	cat := catalogue.NewCatalogue()
	cat.AddStop("A", geo.NewCoordinate(0, 0))
	cat.AddStop("B", geo.NewCoordinate(0, 0.01))
	cat.AddStop("Unused", geo.NewCoordinate(5, 5))
	cat.AddRoute("1", []string{"A", "B"}, false)
	cat.AddRoute("2", []string{"Nowhere"}, false)
	cat.AddRoute("3", []string{"B", "A", "B"}, true)

	doc := NewMapRenderer(newTestSettings(), cat).RenderMap()
	lines := strings.Split(doc.String(), "\n")
	// header, svg open, 2 polylines, 2*2 + 1*2 bus labels, 2 circles, 2*2 stop labels, svg close
	require.Len(t, lines, 2+2+6+2+4+1)

	body := lines[2 : len(lines)-1]
	assert.Equal(t, `  <polyline points="10,10 190,10 10,10" fill="none" stroke="green" stroke-width="14" `+
		`stroke-linecap="round" stroke-linejoin="round"/>`, body[0])
	// empty bus 2 does not consume a palette color
	assert.Contains(t, body[1], `stroke="rgb(255,160,0)"`)
	assert.Contains(t, body[1], `points="190,10 10,10 190,10"`)

	assert.Equal(t, `  <text x="10" y="10" dx="7" dy="15" font-size="20" font-family="Verdana" font-weight="bold" `+
		`fill="rgba(255,255,255,0.85)" stroke="rgba(255,255,255,0.85)" stroke-width="3" stroke-linecap="round" `+
		`stroke-linejoin="round">1</text>`, body[2])
	assert.Equal(t, `  <text x="10" y="10" dx="7" dy="15" font-size="20" font-family="Verdana" font-weight="bold" `+
		`fill="green">1</text>`, body[3])
	assert.Contains(t, body[5], `x="190"`)
	// circular bus 3 is labelled once, at its first stop
	assert.Contains(t, body[7], `fill="rgb(255,160,0)">3</text>`)

	assert.Equal(t, `  <circle cx="10" cy="10" r="5" fill="white"/>`, body[8])
	assert.Equal(t, `  <circle cx="190" cy="10" r="5" fill="white"/>`, body[9])

	assert.Equal(t, `  <text x="10" y="10" dx="7" dy="-3" font-size="18" font-family="Verdana" `+
		`fill="black">A</text>`, body[11])
	assert.NotContains(t, doc.String(), "Unused")
}

func TestRenderMapWithoutBuses(t *testing.T) {
	cat := catalogue.NewCatalogue()
	cat.AddStop("A", geo.NewCoordinate(0, 0))

	doc := NewMapRenderer(newTestSettings(), cat).RenderMap()
	assert.Equal(t, 0, doc.Len())
}

func TestRenderSettingsValidate(t *testing.T) {
	assert.NoError(t, newTestSettings().Validate())

	s := newTestSettings()
	s.Padding = 100
	assert.ErrorIs(t, s.Validate(), ErrInvalidRenderSettings)

	s = newTestSettings()
	s.Width = -1
	assert.ErrorIs(t, s.Validate(), ErrInvalidRenderSettings)
}
