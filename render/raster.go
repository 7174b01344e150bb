package render

import (
	"image"
	"image/color"
	"io"

	"git.sr.ht/~sbinet/gg"
)

// Raster is the production canvas: a gg drawing context backed by an RGBA
// image. Its pixels are what the export path serializes, verbatim.
type Raster struct {
	dc *gg.Context
	w  int
	h  int
}

// NewRaster allocates a raster surface. Non-positive dimensions mean no
// drawing context can be acquired.
func NewRaster(w, h int) (*Raster, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrSurfaceUnavailable
	}
	return &Raster{dc: gg.NewContext(w, h), w: w, h: h}, nil
}

// Size returns the surface dimensions in pixels.
func (r *Raster) Size() (float64, float64) {
	return float64(r.w), float64(r.h)
}

// Clear fills the whole surface, discarding the previous frame.
func (r *Raster) Clear(bg color.RGBA) {
	r.dc.SetColor(bg)
	r.dc.Clear()
}

// StrokeLine draws a line segment.
func (r *Raster) StrokeLine(x1, y1, x2, y2, width float64, c color.RGBA) {
	r.dc.SetColor(c)
	r.dc.SetLineWidth(width)
	r.dc.DrawLine(x1, y1, x2, y2)
	r.dc.Stroke()
}

// FillCircle draws a filled circle.
func (r *Raster) FillCircle(x, y, radius float64, c color.RGBA) {
	r.dc.SetColor(c)
	r.dc.DrawCircle(x, y, radius)
	r.dc.Fill()
}

// StrokeCircle draws a circle outline.
func (r *Raster) StrokeCircle(x, y, radius, width float64, c color.RGBA) {
	r.dc.SetColor(c)
	r.dc.SetLineWidth(width)
	r.dc.DrawCircle(x, y, radius)
	r.dc.Stroke()
}

// DrawText draws a horizontally centered string at the given baseline point.
func (r *Raster) DrawText(s string, x, y float64, c color.RGBA) {
	r.dc.SetColor(c)
	r.dc.DrawStringAnchored(s, x, y, 0.5, 0.5)
}

// Image returns the backing image.
func (r *Raster) Image() image.Image {
	return r.dc.Image()
}

// EncodePNG writes the currently rendered pixels as PNG.
func (r *Raster) EncodePNG(w io.Writer) error {
	return r.dc.EncodePNG(w)
}
