// Package physics relaxes social graphs with a force-directed simulation:
// a center pull toward the origin, spring forces along edges and pairwise
// inverse-square repulsion, integrated with damped Euler steps.
package physics

import (
	"math"
	"sync"

	"github.com/arfacturas8-ai/sociograph/models"
)

// State is the simulator's run state. Toggled externally; forces are only
// integrated while Running.
type State int

const (
	Paused State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "paused"
}

// Force-strength control bounds. Values snap to steps of 0.1.
const (
	MinForceStrength     = 0.1
	MaxForceStrength     = 1.0
	DefaultForceStrength = 0.3
)

// Config holds the simulation parameters.
type Config struct {
	ForceStrength  float64 // center pull scale, MinForceStrength..MaxForceStrength
	SpringConstant float64 // spring stiffness along edges
	SpringLength   float64 // ideal node separation
	Repulsion      float64 // pairwise repulsion strength
	Damping        float64 // per-frame velocity decay, < 1
	TimeStep       float64 // integration step
	MinDistance    float64 // clamp to avoid repulsion singularities
	MaxSpeed       float64 // velocity magnitude cap
	EnergyEpsilon  float64 // kinetic energy below this counts as settled
}

// DefaultConfig returns parameters tuned so a static graph settles instead
// of oscillating.
func DefaultConfig() Config {
	return Config{
		ForceStrength:  DefaultForceStrength,
		SpringConstant: 0.02,
		SpringLength:   140.0,
		Repulsion:      600.0,
		Damping:        0.8,
		TimeStep:       0.5,
		MinDistance:    8.0,
		MaxSpeed:       24.0,
		EnergyEpsilon:  0.001,
	}
}

// Simulator integrates forces over a graph frame by frame. It is the
// graph's single writer; rendering and hit-testing read the same positions
// between steps.
type Simulator struct {
	mu       sync.Mutex
	graph    *models.Graph
	cfg      Config
	state    State
	incident map[string][]int // node ID -> indices into graph.Edges
	forces   map[string][2]float64
}

// NewSimulator creates a paused simulator over the graph.
func NewSimulator(graph *models.Graph, cfg Config) *Simulator {
	s := &Simulator{
		graph:  graph,
		cfg:    cfg,
		state:  Paused,
		forces: make(map[string][2]float64, len(graph.Nodes)),
	}
	s.rebuildIndex()
	return s
}

// SetGraph swaps the simulated graph, e.g. after a subject or filter change.
// The run state carries over.
func (s *Simulator) SetGraph(graph *models.Graph) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.graph = graph
	s.forces = make(map[string][2]float64, len(graph.Nodes))
	s.rebuildIndex()
}

func (s *Simulator) rebuildIndex() {
	s.incident = make(map[string][]int, len(s.graph.Nodes))
	for i, e := range s.graph.Edges {
		s.incident[e.Source] = append(s.incident[e.Source], i)
		s.incident[e.Target] = append(s.incident[e.Target], i)
	}
}

// State returns the current run state.
func (s *Simulator) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Start resumes force integration.
func (s *Simulator) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Running
}

// Pause freezes force integration. Positions stay as they are.
func (s *Simulator) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Paused
}

// Toggle flips between Running and Paused and returns the new state.
func (s *Simulator) Toggle() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == Running {
		s.state = Paused
	} else {
		s.state = Running
	}
	return s.state
}

// SetForceStrength sets the center-pull scale, clamped to the control range
// and snapped to steps of 0.1.
func (s *Simulator) SetForceStrength(v float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v = math.Round(v*10) / 10
	v = math.Max(MinForceStrength, math.Min(MaxForceStrength, v))
	s.cfg.ForceStrength = v
}

// ForceStrength returns the current center-pull scale.
func (s *Simulator) ForceStrength() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg.ForceStrength
}

// Step advances the simulation by one frame while Running. The fixed subject
// node accumulates no force and never moves. Returns true once the total
// kinetic energy has fallen below the settle threshold.
func (s *Simulator) Step() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != Running {
		return s.graph.KineticEnergy() < s.cfg.EnergyEpsilon
	}

	nodes := s.graph.Ordered()
	for id := range s.forces {
		delete(s.forces, id)
	}

	for _, n := range nodes {
		if n.Fixed {
			continue
		}
		s.applyCenterForce(n)
		s.applyLinkForces(n)
	}
	s.applyRepulsion(nodes)
	s.integrate(nodes)

	// The subject is pinned at the origin for the lifetime of the graph.
	if subj := s.graph.Subject(); subj != nil {
		subj.X, subj.Y = 0, 0
		subj.VX, subj.VY = 0, 0
	}

	return s.graph.KineticEnergy() < s.cfg.EnergyEpsilon
}

// applyCenterForce pulls a node toward the origin proportionally to its
// distance, scaled by the force-strength control.
func (s *Simulator) applyCenterForce(n *models.Node) {
	k := s.cfg.ForceStrength * 0.05
	s.addForce(n.ID, -n.X*k, -n.Y*k)
}

// applyLinkForces applies a spring along every incident edge, proportional
// to the deviation from the ideal separation times the edge strength.
func (s *Simulator) applyLinkForces(n *models.Node) {
	for _, i := range s.incident[n.ID] {
		e := &s.graph.Edges[i]
		otherID := e.Target
		if otherID == n.ID {
			otherID = e.Source
		}
		other := s.graph.Nodes[otherID]
		if other == nil {
			continue
		}
		dx := other.X - n.X
		dy := other.Y - n.Y
		dist := math.Max(s.cfg.MinDistance, math.Hypot(dx, dy))
		f := (dist - s.cfg.SpringLength) * s.cfg.SpringConstant * e.Strength
		s.addForce(n.ID, dx/dist*f, dy/dist*f)
	}
}

// applyRepulsion pushes every node pair apart with an inverse-square force,
// clamped at MinDistance to avoid singularities.
func (s *Simulator) applyRepulsion(nodes []*models.Node) {
	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			a, b := nodes[i], nodes[j]
			dx := a.X - b.X
			dy := a.Y - b.Y
			dist := math.Max(s.cfg.MinDistance, math.Hypot(dx, dy))
			f := s.cfg.Repulsion / (dist * dist)
			ux, uy := dx/dist, dy/dist
			if !a.Fixed {
				s.addForce(a.ID, ux*f, uy*f)
			}
			if !b.Fixed {
				s.addForce(b.ID, -ux*f, -uy*f)
			}
		}
	}
}

// integrate applies velocity += force*dt, position += velocity*dt, then
// damps the velocity so the system converges instead of oscillating.
func (s *Simulator) integrate(nodes []*models.Node) {
	dt := s.cfg.TimeStep
	for _, n := range nodes {
		if n.Fixed {
			continue
		}
		f := s.forces[n.ID]
		n.VX += f[0] * dt
		n.VY += f[1] * dt

		speed := math.Hypot(n.VX, n.VY)
		if speed > s.cfg.MaxSpeed {
			scale := s.cfg.MaxSpeed / speed
			n.VX *= scale
			n.VY *= scale
		}

		n.X += n.VX * dt
		n.Y += n.VY * dt

		n.VX *= s.cfg.Damping
		n.VY *= s.cfg.Damping
	}
}

func (s *Simulator) addForce(id string, fx, fy float64) {
	f := s.forces[id]
	s.forces[id] = [2]float64{f[0] + fx, f[1] + fy}
}
