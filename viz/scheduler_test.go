package viz

import (
	"image/color"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arfacturas8-ai/sociograph/models"
	"github.com/arfacturas8-ai/sociograph/physics"
	"github.com/arfacturas8-ai/sociograph/render"
)

type spyScheduler struct {
	frame  func()
	starts int
	stops  int
}

func (s *spyScheduler) Start(frame func()) {
	s.frame = frame
	s.starts++
}

func (s *spyScheduler) Stop() { s.stops++ }

func animatorFixture(t *testing.T) (*Animator, *spyScheduler, *Scene) {
	t.Helper()
	g := models.NewGraph("s")
	g.AddSubject("You")
	g.AddNode(models.NewNode(models.NodeFriend, "ada", 0.7))
	scene := NewScene(g, models.NetworkStats{}, render.NewRecorder(100, 100), nil, 1, DefaultSettings())
	sched := &spyScheduler{}
	return NewAnimator(sched, scene), sched, scene
}

func TestAnimatorStartRunsPhysicsAndLoop(t *testing.T) {
	anim, sched, scene := animatorFixture(t)

	require.Equal(t, physics.Paused, scene.State())
	anim.Start()
	assert.Equal(t, physics.Running, scene.State())
	assert.Equal(t, 1, sched.starts)
	require.NotNil(t, sched.frame)
}

func TestAnimatorPauseKeepsLoopAlive(t *testing.T) {
	anim, sched, scene := animatorFixture(t)
	anim.Start()

	anim.Pause()
	assert.Equal(t, physics.Paused, scene.State())
	assert.Zero(t, sched.stops)

	// Paused frames still redraw the static scene.
	rec := scene.Canvas().(*render.Recorder)
	rec.Reset()
	sched.frame()
	assert.Equal(t, 1, rec.Count(render.OpClear))
}

func TestAnimatorTeardownStopsAndCloses(t *testing.T) {
	anim, sched, scene := animatorFixture(t)
	anim.Start()

	anim.Teardown()
	assert.Equal(t, 1, sched.stops)

	// A straggler frame after teardown must not draw.
	rec := scene.Canvas().(*render.Recorder)
	rec.Reset()
	sched.frame()
	assert.Empty(t, rec.Ops)
}

func TestFrameTickerStopHaltsCallbacks(t *testing.T) {
	var ticks atomic.Int64
	ticker := NewFrameTicker(time.Millisecond)

	ticker.Start(func() { ticks.Add(1) })
	require.Eventually(t, func() bool { return ticks.Load() > 0 }, 5*time.Second, time.Millisecond)

	ticker.Stop()
	after := ticks.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, ticks.Load())
}

func TestFrameTickerDoubleStartIsNoop(t *testing.T) {
	var a, b atomic.Int64
	ticker := NewFrameTicker(time.Millisecond)
	defer ticker.Stop()

	ticker.Start(func() { a.Add(1) })
	ticker.Start(func() { b.Add(1) })

	require.Eventually(t, func() bool { return a.Load() > 0 }, 5*time.Second, time.Millisecond)
	assert.Zero(t, b.Load())
}

func TestFrameReportsSettled(t *testing.T) {
	g := models.NewGraph("s")
	g.AddSubject("You")
	g.AddNode(models.NewNode(models.NodeFriend, "ada", 0.7))

	// Circle mode places the peer at a fixed radius, far from equilibrium.
	settings := DefaultSettings()
	settings.Mode = models.ModeCircle
	scene := NewScene(g, models.NetworkStats{}, render.NewRecorder(100, 100), nil, 1, settings)
	scene.Start()

	require.False(t, scene.Frame())

	settled := false
	for i := 0; i < 5000; i++ {
		if scene.Frame() {
			settled = true
			break
		}
	}
	assert.True(t, settled, "relaxation never settled")
}

func TestFrameSettlesImmediatelyForStaticGraph(t *testing.T) {
	g := models.NewGraph("s")
	g.AddSubject("You")
	scene := NewScene(g, models.NetworkStats{}, render.NewRecorder(100, 100), nil, 1, DefaultSettings())
	scene.Start()

	assert.True(t, scene.Frame())
}

// panicCanvas blows up on the first draw call of a frame.
type panicCanvas struct {
	render.Recorder
}

func (p *panicCanvas) Clear(color.RGBA) { panic("surface lost") }

func TestFramePanicIsContained(t *testing.T) {
	g := models.NewGraph("s")
	g.AddSubject("You")
	canvas := &panicCanvas{Recorder: *render.NewRecorder(100, 100)}
	scene := NewScene(g, models.NetworkStats{}, canvas, nil, 1, DefaultSettings())
	scene.Start()

	assert.NotPanics(t, func() {
		scene.Frame()
		scene.Frame()
	})
}
