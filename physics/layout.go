package physics

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/arfacturas8-ai/sociograph/models"
)

// Layout radii in simulation space.
const (
	scatterRadius = 260.0
	circleRadius  = 220.0
	ringSpacing   = 80.0
	innerRing     = 120.0
)

// hierarchyRings orders relationship types from the subject outward,
// strongest reciprocity innermost.
var hierarchyRings = []models.NodeType{
	models.NodeMutual,
	models.NodeFriend,
	models.NodeFollower,
	models.NodeFollowing,
}

// InitialLayout assigns starting positions for the given view mode and zeroes
// all velocities. Placement is derived from the seed and each node's index in
// insertion order, so a given graph lays out identically on every run. The
// subject node is forced to the origin in every mode.
func InitialLayout(g *models.Graph, mode models.ViewMode, seed int64) {
	switch mode {
	case models.ModeCircle:
		circleLayout(g)
	case models.ModeHierarchy:
		hierarchyLayout(g)
	default:
		scatterLayout(g, seed)
	}

	for _, n := range g.Nodes {
		n.VX, n.VY = 0, 0
	}
	if subj := g.Subject(); subj != nil {
		subj.X, subj.Y = 0, 0
	}
}

// scatterLayout spreads peers around the origin using seeded simplex noise
// keyed by node index. Physics refines the result.
func scatterLayout(g *models.Graph, seed int64) {
	noise := opensimplex.NewNormalized(seed)
	i := 0
	for _, n := range g.Ordered() {
		if n.Fixed {
			continue
		}
		t := float64(i) * 0.7391
		n.X = (noise.Eval2(t, 0.0)*2 - 1) * scatterRadius
		n.Y = (noise.Eval2(t, 10.5)*2 - 1) * scatterRadius
		i++
	}
}

// circleLayout places peers evenly on a fixed-radius circle,
// angle = 2π·index/count.
func circleLayout(g *models.Graph) {
	var peers []*models.Node
	for _, n := range g.Ordered() {
		if !n.Fixed {
			peers = append(peers, n)
		}
	}
	count := float64(len(peers))
	for i, n := range peers {
		angle := 2 * math.Pi * float64(i) / count
		n.X = circleRadius * math.Cos(angle)
		n.Y = circleRadius * math.Sin(angle)
	}
}

// hierarchyLayout groups peers into concentric rings by relationship type,
// the subject innermost at the origin.
func hierarchyLayout(g *models.Graph) {
	for ring, t := range hierarchyRings {
		peers := g.FindNodesByType(t)
		if len(peers) == 0 {
			continue
		}
		radius := innerRing + float64(ring)*ringSpacing
		count := float64(len(peers))
		for i, n := range peers {
			angle := 2 * math.Pi * float64(i) / count
			n.X = radius * math.Cos(angle)
			n.Y = radius * math.Sin(angle)
		}
	}
}
