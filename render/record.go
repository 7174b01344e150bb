package render

import (
	"image/color"
)

// Op kinds recorded by the Recorder.
const (
	OpClear  = "clear"
	OpLine   = "line"
	OpCircle = "circle"
	OpRing   = "ring"
	OpText   = "text"
)

// Op is one recorded drawing call.
type Op struct {
	Kind  string
	Text  string
	X, Y  float64
	R     float64
	Color color.RGBA
}

// Recorder is a Canvas that records calls instead of drawing. It backs the
// render tests and doubles as the degraded no-op surface when a real drawing
// context cannot be acquired.
type Recorder struct {
	W, H float64
	Ops  []Op
}

// NewRecorder creates a recording canvas of the given logical size.
func NewRecorder(w, h float64) *Recorder {
	return &Recorder{W: w, H: h}
}

func (r *Recorder) Size() (float64, float64) { return r.W, r.H }

func (r *Recorder) Clear(bg color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpClear, Color: bg})
}

func (r *Recorder) StrokeLine(x1, y1, x2, y2, width float64, c color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, X: x1, Y: y1, R: width, Color: c})
}

func (r *Recorder) FillCircle(x, y, radius float64, c color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpCircle, X: x, Y: y, R: radius, Color: c})
}

func (r *Recorder) StrokeCircle(x, y, radius, width float64, c color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpRing, X: x, Y: y, R: radius, Color: c})
}

func (r *Recorder) DrawText(s string, x, y float64, c color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpText, Text: s, X: x, Y: y, Color: c})
}

// Count returns how many ops of the given kind were recorded.
func (r *Recorder) Count(kind string) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Reset clears the recorded ops between frames.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}
