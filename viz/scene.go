// Package viz couples the simulator, the render pipeline and pointer
// interaction into a per-frame loop. All frame work runs on the scheduler
// goroutine; the control surface may be driven from any goroutine.
package viz

import (
	"log"
	"sync"

	"github.com/arfacturas8-ai/sociograph/models"
	"github.com/arfacturas8-ai/sociograph/physics"
	"github.com/arfacturas8-ai/sociograph/render"
)

// Settings is the view state driven by the external control surface.
type Settings struct {
	Mode       models.ViewMode
	Filter     models.Filter
	ShowLabels bool
	Fullscreen bool // display-only, no effect on the simulation
	Seed       int64
}

// DefaultSettings returns the initial control state.
func DefaultSettings() Settings {
	return Settings{
		Mode:       models.ModeNetwork,
		Filter:     models.FilterAll,
		ShowLabels: true,
		Seed:       1,
	}
}

// Scene is the simulation context: the graph, its simulator, the pipeline
// drawing it and the interaction state, threaded through every frame.
type Scene struct {
	mu       sync.Mutex
	graph    *models.Graph
	stats    models.NetworkStats
	sim      *physics.Simulator
	canvas   render.Canvas
	pipe     *render.Pipeline
	interact *Interactor
	settings Settings
	closed   bool
}

// NewScene lays out the graph for the configured view mode and binds it to
// the canvas. A nil canvas degrades to a recording no-op surface.
func NewScene(graph *models.Graph, stats models.NetworkStats, canvas render.Canvas, palette *render.Palette, pixelRatio float64, settings Settings) *Scene {
	if canvas == nil {
		// Degraded mode: no drawing context available, render into a void.
		canvas = render.NewRecorder(1, 1)
	}
	physics.InitialLayout(graph, settings.Mode, settings.Seed)

	pipe := render.NewPipeline(canvas, palette, pixelRatio)
	pipe.ShowLabels = settings.ShowLabels

	return &Scene{
		graph:    graph,
		stats:    stats,
		sim:      physics.NewSimulator(graph, physics.DefaultConfig()),
		canvas:   canvas,
		pipe:     pipe,
		interact: NewInteractor(nil),
		settings: settings,
	}
}

// Canvas returns the drawing surface, e.g. for the export path.
func (s *Scene) Canvas() render.Canvas {
	return s.canvas
}

// Frame advances physics (while running) and redraws, reporting whether the
// simulation has settled so one-shot callers can stop relaxing early. A fault
// inside one frame is caught and skipped so the loop survives to the next
// tick.
func (s *Scene) Frame() (settled bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("frame skipped: %v", r)
		}
	}()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	settled = s.sim.Step()
	s.draw()
	return settled
}

// Redraw renders a single static frame without advancing the simulation,
// e.g. to reflect a selection change while paused.
func (s *Scene) Redraw() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.draw()
}

func (s *Scene) draw() {
	s.pipe.ShowLabels = s.settings.ShowLabels
	s.pipe.Draw(s.graph, s.interact.Hovered(), s.interact.Selected())
}

// SetGraph swaps in a freshly built graph (subject or filter change). The
// old graph is discarded wholesale; hover and selection are cleared since
// their nodes no longer exist.
func (s *Scene) SetGraph(graph *models.Graph, stats models.NetworkStats) {
	s.mu.Lock()
	defer s.mu.Unlock()
	physics.InitialLayout(graph, s.settings.Mode, s.settings.Seed)
	s.graph = graph
	s.stats = stats
	s.sim.SetGraph(graph)
	s.interact.Reset()
}

// Graph returns the current graph.
func (s *Scene) Graph() *models.Graph {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.graph
}

// Summary returns the stats readout for the current graph and aggregates.
func (s *Scene) Summary() models.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.graph.Summarize(s.stats)
}

// Toggle flips the simulator between running and paused.
func (s *Scene) Toggle() physics.State { return s.sim.Toggle() }

// Start resumes the physics simulation.
func (s *Scene) Start() { s.sim.Start() }

// Pause freezes the physics simulation.
func (s *Scene) Pause() { s.sim.Pause() }

// State returns the simulator state.
func (s *Scene) State() physics.State { return s.sim.State() }

// SetForceStrength forwards the force-strength control to the simulator.
func (s *Scene) SetForceStrength(v float64) { s.sim.SetForceStrength(v) }

// ForceStrength returns the current force-strength control value.
func (s *Scene) ForceStrength() float64 { return s.sim.ForceStrength() }

// SetShowLabels toggles label drawing starting with the next frame.
func (s *Scene) SetShowLabels(show bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.ShowLabels = show
}

// SetFullscreen records the display-only fullscreen toggle.
func (s *Scene) SetFullscreen(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.Fullscreen = on
}

// SetMode changes the view mode and re-runs the initial layout.
func (s *Scene) SetMode(mode models.ViewMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.Mode = mode
	physics.InitialLayout(s.graph, mode, s.settings.Seed)
}

// Settings returns a copy of the current view settings.
func (s *Scene) Settings() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// SetInfoPanel attaches the external collaborator that receives selected
// nodes.
func (s *Scene) SetInfoPanel(panel InfoPanel) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.interact.panel = panel
}

// PointerDown maps a pointer-down at display coordinates to a selection
// change and returns the hit node, if any.
func (s *Scene) PointerDown(x, y float64) *models.Node {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.interact.PointerDown(s.graph, s.pipe, x, y)
}

// PointerMove maps a pointer move to a hover change and returns the hit
// node, if any.
func (s *Scene) PointerMove(x, y float64) *models.Node {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.interact.PointerMove(s.graph, s.pipe, x, y)
}

// Selected returns the ID of the selected node, or "".
func (s *Scene) Selected() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.interact.Selected()
}

// Hovered returns the ID of the hovered node, or "".
func (s *Scene) Hovered() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.interact.Hovered()
}

// Close marks the scene disposed. Frames arriving afterwards are no-ops; the
// simulator can no longer write to the graph.
func (s *Scene) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.sim.Pause()
}
