package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arfacturas8-ai/sociograph/models"
)

func testGraph(t *testing.T) *models.Graph {
	t.Helper()
	g := models.NewGraph("s")
	g.AddSubject("You")

	a := models.NewNode(models.NodeFriend, "a", 0.7)
	b := models.NewNode(models.NodeFollower, "b", 0.5)
	c := models.NewNode(models.NodeMutual, "c", 0.85)
	g.AddNode(a)
	g.AddNode(b)
	g.AddNode(c)

	require.NoError(t, g.AddEdge(a.ID, "s", models.EdgeFriend, 0.8))
	require.NoError(t, g.AddEdge(b.ID, "s", models.EdgeFollower, 0.4))
	require.NoError(t, g.AddEdge(c.ID, "s", models.EdgeMutual, 0.9))
	require.NoError(t, g.AddEdge(a.ID, c.ID, models.EdgeMutual, 0.7))

	InitialLayout(g, models.ModeNetwork, 42)
	return g
}

func TestSubjectStaysPinnedAtOrigin(t *testing.T) {
	g := testGraph(t)
	sim := NewSimulator(g, DefaultConfig())
	sim.Start()

	for i := 0; i < 200; i++ {
		sim.Step()
		subj := g.Subject()
		require.Equal(t, 0.0, subj.X)
		require.Equal(t, 0.0, subj.Y)
		require.Equal(t, 0.0, subj.VX)
		require.Equal(t, 0.0, subj.VY)
	}
}

func TestKineticEnergyTrendsTowardZero(t *testing.T) {
	g := testGraph(t)
	sim := NewSimulator(g, DefaultConfig())
	sim.Start()

	for i := 0; i < 20; i++ {
		sim.Step()
	}
	early := g.KineticEnergy()

	settled := false
	for i := 0; i < 5000; i++ {
		if sim.Step() {
			settled = true
			break
		}
	}

	assert.True(t, settled, "simulation never settled")
	assert.Less(t, g.KineticEnergy(), early)
	assert.Less(t, g.KineticEnergy(), DefaultConfig().EnergyEpsilon)
}

func TestPausedSimulatorDoesNotMoveNodes(t *testing.T) {
	g := testGraph(t)
	sim := NewSimulator(g, DefaultConfig())
	require.Equal(t, Paused, sim.State())

	before := make(map[string][2]float64)
	for id, n := range g.Nodes {
		before[id] = [2]float64{n.X, n.Y}
	}

	for i := 0; i < 10; i++ {
		sim.Step()
	}
	for id, n := range g.Nodes {
		assert.Equal(t, before[id], [2]float64{n.X, n.Y})
	}
}

func TestToggleFlipsState(t *testing.T) {
	sim := NewSimulator(testGraph(t), DefaultConfig())

	assert.Equal(t, Paused, sim.State())
	assert.Equal(t, Running, sim.Toggle())
	assert.Equal(t, Running, sim.State())
	assert.Equal(t, Paused, sim.Toggle())
	assert.Equal(t, Paused, sim.State())
}

func TestForceStrengthControl(t *testing.T) {
	sim := NewSimulator(testGraph(t), DefaultConfig())

	assert.Equal(t, DefaultForceStrength, sim.ForceStrength())

	sim.SetForceStrength(0.7)
	assert.Equal(t, 0.7, sim.ForceStrength())

	// Values snap to 0.1 steps and clamp to the control range.
	sim.SetForceStrength(0.34)
	assert.Equal(t, 0.3, sim.ForceStrength())
	sim.SetForceStrength(0.01)
	assert.Equal(t, MinForceStrength, sim.ForceStrength())
	sim.SetForceStrength(7.5)
	assert.Equal(t, MaxForceStrength, sim.ForceStrength())
}

func TestSetGraphSwapsSimulationTarget(t *testing.T) {
	g1 := testGraph(t)
	sim := NewSimulator(g1, DefaultConfig())
	sim.Start()

	g2 := models.NewGraph("other")
	g2.AddSubject("You")
	n := models.NewNode(models.NodeFriend, "f", 0.5)
	g2.AddNode(n)
	require.NoError(t, g2.AddEdge(n.ID, "other", models.EdgeFriend, 0.5))
	InitialLayout(g2, models.ModeCircle, 1)

	sim.SetGraph(g2)
	sim.Step()

	assert.Equal(t, 0.0, g2.Subject().X)
	assert.Equal(t, Running, sim.State())
}
