// Package render draws social graphs onto an immediate-mode 2D surface.
// The surface is abstracted behind the Canvas capability interface so the
// pipeline works identically against a raster backend, an SVG writer or a
// recording double.
package render

import (
	"errors"
	"image/color"

	"github.com/arfacturas8-ai/sociograph/models"
)

// ErrSurfaceUnavailable signals that a drawing context could not be
// acquired. Callers degrade to a no-op surface rather than crash.
var ErrSurfaceUnavailable = errors.New("render: drawing surface unavailable")

// Canvas is the minimal immediate-mode drawing capability the pipeline
// needs. Coordinates are in surface (device) space.
type Canvas interface {
	Size() (w, h float64)
	Clear(bg color.RGBA)
	StrokeLine(x1, y1, x2, y2, width float64, c color.RGBA)
	FillCircle(x, y, r float64, c color.RGBA)
	StrokeCircle(x, y, r, width float64, c color.RGBA)
	DrawText(s string, x, y float64, c color.RGBA)
}

// Transform maps simulation space to surface space: the world origin sits at
// the surface center and world units scale by the device pixel ratio.
type Transform struct {
	OffsetX float64
	OffsetY float64
	Scale   float64
}

// NewTransform centers the world origin on a surface of the given size.
func NewTransform(w, h, pixelRatio float64) Transform {
	if pixelRatio <= 0 {
		pixelRatio = 1
	}
	return Transform{OffsetX: w / 2, OffsetY: h / 2, Scale: pixelRatio}
}

// ToSurface converts a simulation-space point to surface space.
func (t Transform) ToSurface(x, y float64) (float64, float64) {
	return t.OffsetX + x*t.Scale, t.OffsetY + y*t.Scale
}

// ToWorld is the inverse of ToSurface, used for hit-testing pointer
// coordinates.
func (t Transform) ToWorld(x, y float64) (float64, float64) {
	return (x - t.OffsetX) / t.Scale, (y - t.OffsetY) / t.Scale
}

// Palette maps relationship types to colors.
type Palette struct {
	Background color.RGBA
	Label      color.RGBA
	Highlight  color.RGBA
	Node       map[models.NodeType]color.RGBA
	Edge       map[models.EdgeType]color.RGBA
}

// DefaultPalette is a dark theme.
func DefaultPalette() *Palette {
	return &Palette{
		Background: color.RGBA{0x1e, 0x1e, 0x2e, 0xff},
		Label:      color.RGBA{0xf8, 0xf8, 0xf2, 0xff},
		Highlight:  color.RGBA{0xf1, 0xfa, 0x8c, 0xff},
		Node: map[models.NodeType]color.RGBA{
			models.NodeSelf:      {0xbd, 0x93, 0xf9, 0xff},
			models.NodeFriend:    {0x50, 0xfa, 0x7b, 0xff},
			models.NodeFollower:  {0x8b, 0xe9, 0xfd, 0xff},
			models.NodeFollowing: {0xff, 0xb8, 0x6c, 0xff},
			models.NodeMutual:    {0xff, 0x79, 0xc6, 0xff},
		},
		Edge: map[models.EdgeType]color.RGBA{
			models.EdgeFriend:    {0x50, 0xfa, 0x7b, 0xff},
			models.EdgeFollower:  {0x6b, 0x80, 0xbf, 0xff},
			models.EdgeFollowing: {0xff, 0xb8, 0x6c, 0xff},
			models.EdgeMutual:    {0xff, 0x79, 0xc6, 0xff},
		},
	}
}

// LightPalette is a light theme.
func LightPalette() *Palette {
	return &Palette{
		Background: color.RGBA{0xf8, 0xf8, 0xf8, 0xff},
		Label:      color.RGBA{0x33, 0x33, 0x33, 0xff},
		Highlight:  color.RGBA{0xea, 0x43, 0x35, 0xff},
		Node: map[models.NodeType]color.RGBA{
			models.NodeSelf:      {0x67, 0x3a, 0xb7, 0xff},
			models.NodeFriend:    {0x34, 0xa8, 0x53, 0xff},
			models.NodeFollower:  {0x42, 0x85, 0xf4, 0xff},
			models.NodeFollowing: {0xfb, 0xbc, 0x05, 0xff},
			models.NodeMutual:    {0xea, 0x43, 0x35, 0xff},
		},
		Edge: map[models.EdgeType]color.RGBA{
			models.EdgeFriend:    {0x34, 0xa8, 0x53, 0xff},
			models.EdgeFollower:  {0x66, 0x66, 0x66, 0xff},
			models.EdgeFollowing: {0xaa, 0xaa, 0xaa, 0xff},
			models.EdgeMutual:    {0xea, 0x43, 0x35, 0xff},
		},
	}
}

// GetPalette returns a palette by name, defaulting to the dark theme.
func GetPalette(name string) *Palette {
	if name == "light" {
		return LightPalette()
	}
	return DefaultPalette()
}

// Node radius bounds in world units; the influence value interpolates
// between them.
const (
	minNodeRadius = 6.0
	maxNodeRadius = 16.0
	ringPadding   = 3.0
	labelOffset   = 6.0
)

// Pipeline draws a graph frame: full clear, then edges, nodes and labels in
// that order.
type Pipeline struct {
	canvas     Canvas
	palette    *Palette
	transform  Transform
	ShowLabels bool
}

// NewPipeline binds a pipeline to a canvas. A nil palette selects the dark
// theme.
func NewPipeline(canvas Canvas, palette *Palette, pixelRatio float64) *Pipeline {
	if palette == nil {
		palette = DefaultPalette()
	}
	w, h := canvas.Size()
	return &Pipeline{
		canvas:     canvas,
		palette:    palette,
		transform:  NewTransform(w, h, pixelRatio),
		ShowLabels: true,
	}
}

// Transform exposes the view transform for hit-testing.
func (p *Pipeline) Transform() Transform { return p.transform }

// NodeRadiusWorld returns the rendered radius of a node in simulation space.
// Hit-testing uses the same value so clicks land exactly on what is drawn.
func (p *Pipeline) NodeRadiusWorld(n *models.Node) float64 {
	return minNodeRadius + (maxNodeRadius-minNodeRadius)*models.Clamp01(n.Influence)
}

// Draw renders one frame of the graph. hoverID and selectedID mark the nodes
// that get a highlight ring; either may be empty. When ShowLabels is false no
// text call reaches the canvas.
func (p *Pipeline) Draw(g *models.Graph, hoverID, selectedID string) {
	p.canvas.Clear(p.palette.Background)
	if g == nil {
		return
	}

	for i := range g.Edges {
		p.drawEdge(g, &g.Edges[i])
	}

	for _, n := range g.Ordered() {
		p.drawNode(n, n.ID == hoverID || n.ID == selectedID)
	}

	if p.ShowLabels {
		for _, n := range g.Ordered() {
			p.drawLabel(n)
		}
	}
}

func (p *Pipeline) drawEdge(g *models.Graph, e *models.Edge) {
	src := g.Nodes[e.Source]
	dst := g.Nodes[e.Target]
	if src == nil || dst == nil {
		return
	}
	x1, y1 := p.transform.ToSurface(src.X, src.Y)
	x2, y2 := p.transform.ToSurface(dst.X, dst.Y)

	c := p.palette.Edge[e.Type]
	// Width and opacity rise with edge strength.
	c.A = uint8(80 + 175*models.Clamp01(e.Strength))
	width := (0.5 + 2.0*e.Strength) * p.transform.Scale
	p.canvas.StrokeLine(x1, y1, x2, y2, width, c)
}

func (p *Pipeline) drawNode(n *models.Node, highlighted bool) {
	x, y := p.transform.ToSurface(n.X, n.Y)
	r := p.NodeRadiusWorld(n) * p.transform.Scale
	p.canvas.FillCircle(x, y, r, p.palette.Node[n.Type])
	if highlighted {
		p.canvas.StrokeCircle(x, y, r+ringPadding*p.transform.Scale, 2*p.transform.Scale, p.palette.Highlight)
	}
}

func (p *Pipeline) drawLabel(n *models.Node) {
	if n.Label == "" {
		return
	}
	x, y := p.transform.ToSurface(n.X, n.Y)
	r := p.NodeRadiusWorld(n) * p.transform.Scale
	p.canvas.DrawText(n.Label, x, y+r+labelOffset*p.transform.Scale, p.palette.Label)
}
