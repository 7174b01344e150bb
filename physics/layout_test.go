package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arfacturas8-ai/sociograph/models"
)

func layoutGraph(t *testing.T) *models.Graph {
	t.Helper()
	g := models.NewGraph("s")
	g.AddSubject("You")
	g.AddNode(models.NewNode(models.NodeMutual, "m1", 0.85))
	g.AddNode(models.NewNode(models.NodeFriend, "f1", 0.7))
	g.AddNode(models.NewNode(models.NodeFriend, "f2", 0.7))
	g.AddNode(models.NewNode(models.NodeFollower, "fo1", 0.5))
	g.AddNode(models.NewNode(models.NodeFollowing, "fw1", 0.55))
	return g
}

func TestLayoutIsDeterministicForSeed(t *testing.T) {
	g := layoutGraph(t)

	InitialLayout(g, models.ModeNetwork, 42)
	first := make(map[string][2]float64)
	for id, n := range g.Nodes {
		first[id] = [2]float64{n.X, n.Y}
	}

	InitialLayout(g, models.ModeNetwork, 42)
	for id, n := range g.Nodes {
		assert.Equal(t, first[id], [2]float64{n.X, n.Y})
	}
}

func TestNetworkLayoutIsBoundedAndSpread(t *testing.T) {
	g := layoutGraph(t)
	InitialLayout(g, models.ModeNetwork, 7)

	for _, n := range g.Ordered() {
		if n.Fixed {
			continue
		}
		assert.LessOrEqual(t, math.Abs(n.X), scatterRadius)
		assert.LessOrEqual(t, math.Abs(n.Y), scatterRadius)
		assert.Equal(t, 0.0, n.VX)
		assert.Equal(t, 0.0, n.VY)
	}
}

func TestCircleLayoutPlacesPeersEvenly(t *testing.T) {
	g := layoutGraph(t)
	InitialLayout(g, models.ModeCircle, 1)

	var peers []*models.Node
	for _, n := range g.Ordered() {
		if !n.Fixed {
			peers = append(peers, n)
		}
	}
	require.Len(t, peers, 5)

	for i, n := range peers {
		angle := 2 * math.Pi * float64(i) / 5
		assert.InDelta(t, circleRadius*math.Cos(angle), n.X, 1e-9)
		assert.InDelta(t, circleRadius*math.Sin(angle), n.Y, 1e-9)
	}
}

func TestHierarchyLayoutRingsByType(t *testing.T) {
	g := layoutGraph(t)
	InitialLayout(g, models.ModeHierarchy, 1)

	radiusOf := func(n *models.Node) float64 { return math.Hypot(n.X, n.Y) }

	for _, n := range g.FindNodesByType(models.NodeMutual) {
		assert.InDelta(t, innerRing, radiusOf(n), 1e-9)
	}
	for _, n := range g.FindNodesByType(models.NodeFriend) {
		assert.InDelta(t, innerRing+ringSpacing, radiusOf(n), 1e-9)
	}
	for _, n := range g.FindNodesByType(models.NodeFollower) {
		assert.InDelta(t, innerRing+2*ringSpacing, radiusOf(n), 1e-9)
	}
	for _, n := range g.FindNodesByType(models.NodeFollowing) {
		assert.InDelta(t, innerRing+3*ringSpacing, radiusOf(n), 1e-9)
	}
}

func TestSubjectForcedToOriginInEveryMode(t *testing.T) {
	for _, mode := range []models.ViewMode{models.ModeNetwork, models.ModeCircle, models.ModeHierarchy} {
		g := layoutGraph(t)
		g.Subject().X, g.Subject().Y = 99, -99
		InitialLayout(g, mode, 3)
		assert.Equal(t, 0.0, g.Subject().X, "mode %s", mode)
		assert.Equal(t, 0.0, g.Subject().Y, "mode %s", mode)
	}
}
