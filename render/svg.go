package render

import (
	"bytes"
	"fmt"
	"image/color"

	svg "github.com/ajstarks/svgo"
)

// SVGCanvas renders frames as an SVG document, used by the server for
// snapshot views. Each Clear restarts the document so only the latest frame
// is kept.
type SVGCanvas struct {
	w, h int
	buf  *bytes.Buffer
	doc  *svg.SVG
}

// NewSVGCanvas allocates an SVG surface.
func NewSVGCanvas(w, h int) (*SVGCanvas, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrSurfaceUnavailable
	}
	c := &SVGCanvas{w: w, h: h}
	c.reset()
	return c, nil
}

func (c *SVGCanvas) reset() {
	c.buf = &bytes.Buffer{}
	c.doc = svg.New(c.buf)
	c.doc.Start(c.w, c.h)
}

// Size returns the surface dimensions.
func (c *SVGCanvas) Size() (float64, float64) {
	return float64(c.w), float64(c.h)
}

// Clear restarts the document with a full background rect.
func (c *SVGCanvas) Clear(bg color.RGBA) {
	c.reset()
	c.doc.Rect(0, 0, c.w, c.h, fmt.Sprintf("fill:%s", cssRGB(bg)))
}

// StrokeLine draws a line segment.
func (c *SVGCanvas) StrokeLine(x1, y1, x2, y2, width float64, col color.RGBA) {
	c.doc.Line(int(x1), int(y1), int(x2), int(y2),
		fmt.Sprintf("stroke:%s;stroke-opacity:%.2f;stroke-width:%.1f", cssRGB(col), alpha(col), width))
}

// FillCircle draws a filled circle.
func (c *SVGCanvas) FillCircle(x, y, radius float64, col color.RGBA) {
	c.doc.Circle(int(x), int(y), int(radius),
		fmt.Sprintf("fill:%s;fill-opacity:%.2f", cssRGB(col), alpha(col)))
}

// StrokeCircle draws a circle outline.
func (c *SVGCanvas) StrokeCircle(x, y, radius, width float64, col color.RGBA) {
	c.doc.Circle(int(x), int(y), int(radius),
		fmt.Sprintf("fill:none;stroke:%s;stroke-opacity:%.2f;stroke-width:%.1f", cssRGB(col), alpha(col), width))
}

// DrawText draws a centered label.
func (c *SVGCanvas) DrawText(s string, x, y float64, col color.RGBA) {
	c.doc.Text(int(x), int(y), s,
		fmt.Sprintf("fill:%s;font-size:11px;font-family:sans-serif;text-anchor:middle", cssRGB(col)))
}

// Finish closes the document and returns the SVG bytes for the current
// frame.
func (c *SVGCanvas) Finish() []byte {
	c.doc.End()
	out := c.buf.Bytes()
	c.reset()
	return out
}

func cssRGB(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func alpha(c color.RGBA) float64 {
	return float64(c.A) / 255
}
