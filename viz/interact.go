package viz

import (
	"math"

	"github.com/arfacturas8-ai/sociograph/models"
	"github.com/arfacturas8-ai/sociograph/render"
)

// InfoPanel is the external collaborator that displays the selected node.
type InfoPanel interface {
	ShowNode(n *models.Node)
	ClearNode()
}

// Interactor maps pointer coordinates to node hits and owns the hover and
// selection slots. The two slots are independent; each persists until
// explicitly replaced or cleared.
type Interactor struct {
	panel    InfoPanel
	hover    string
	selected string
}

// NewInteractor creates an interactor. The panel may be nil.
func NewInteractor(panel InfoPanel) *Interactor {
	return &Interactor{panel: panel}
}

// HitTest converts a display-space point into simulation space and returns
// the nearest node whose rendered radius contains it, or nil.
func (it *Interactor) HitTest(g *models.Graph, pipe *render.Pipeline, x, y float64) *models.Node {
	if g == nil {
		return nil
	}
	wx, wy := pipe.Transform().ToWorld(x, y)

	var best *models.Node
	bestDist := math.MaxFloat64
	for _, n := range g.Ordered() {
		dx := n.X - wx
		dy := n.Y - wy
		dist := math.Hypot(dx, dy)
		if dist <= pipe.NodeRadiusWorld(n) && dist < bestDist {
			best = n
			bestDist = dist
		}
	}
	return best
}

// PointerDown selects the hit node and surfaces it to the info panel; a miss
// clears the selection.
func (it *Interactor) PointerDown(g *models.Graph, pipe *render.Pipeline, x, y float64) *models.Node {
	n := it.HitTest(g, pipe, x, y)
	if n == nil {
		it.selected = ""
		if it.panel != nil {
			it.panel.ClearNode()
		}
		return nil
	}
	it.selected = n.ID
	if it.panel != nil {
		it.panel.ShowNode(n)
	}
	return n
}

// PointerMove sets the hovered node; a miss clears hover.
func (it *Interactor) PointerMove(g *models.Graph, pipe *render.Pipeline, x, y float64) *models.Node {
	n := it.HitTest(g, pipe, x, y)
	if n == nil {
		it.hover = ""
		return nil
	}
	it.hover = n.ID
	return n
}

// Hovered returns the hovered node ID, or "".
func (it *Interactor) Hovered() string { return it.hover }

// Selected returns the selected node ID, or "".
func (it *Interactor) Selected() string { return it.selected }

// Reset clears both slots, used when the graph is rebuilt.
func (it *Interactor) Reset() {
	it.hover = ""
	it.selected = ""
	if it.panel != nil {
		it.panel.ClearNode()
	}
}
