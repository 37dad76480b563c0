package renderer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentRender(t *testing.T) {
	doc := NewDocument()

	c := &Circle{Center: Point{X: 20, Y: 20}, Radius: 10}
	c.SetFillColor(NamedColor("white"))
	doc.Add(c)

	pl := &Polyline{}
	pl.AddPoint(Point{X: 1.5, Y: 2})
	pl.AddPoint(Point{X: 99.123456789, Y: 0})
	pl.SetStrokeColor(RGB(10, 20, 30))
	pl.SetStrokeWidth(4)
	pl.SetStrokeLineCap(LineCapRound)
	doc.Add(pl)

	txt := &Text{Position: Point{X: 1, Y: 2}, Offset: Point{X: 3, Y: -4}, FontSize: 12,
		FontFamily: "Verdana", Data: `a<b & "c"`}
	txt.SetFillColor(RGBA(1, 2, 3, 0.5))
	doc.Add(txt)

	want := "<?xml version=\"1.0\" encoding=\"UTF-8\" ?>\n" +
		"<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\">\n" +
		"  <circle cx=\"20\" cy=\"20\" r=\"10\" fill=\"white\"/>\n" +
		"  <polyline points=\"1.5,2 99.1235,0\" stroke=\"rgb(10,20,30)\" stroke-width=\"4\" stroke-linecap=\"round\"/>\n" +
		"  <text x=\"1\" y=\"2\" dx=\"3\" dy=\"-4\" font-size=\"12\" font-family=\"Verdana\" fill=\"rgba(1,2,3,0.5)\">" +
		"a&lt;b &amp; &quot;c&quot;</text>\n" +
		"</svg>"

	assert.Equal(t, 3, doc.Len())
	assert.Equal(t, want, doc.String())

	var buf bytes.Buffer
	require.NoError(t, doc.Render(&buf))
	assert.Equal(t, want, buf.String())
}

func TestEmptyDocument(t *testing.T) {
	assert.Equal(t, "<?xml version=\"1.0\" encoding=\"UTF-8\" ?>\n"+
		"<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\">\n</svg>", NewDocument().String())
}
