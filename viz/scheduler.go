package viz

import (
	"context"
	"sync"
	"time"
)

// Scheduler is the frame-driving capability. Start begins invoking the
// callback once per frame; Stop cancels immediately and totally, so no
// callback runs after it returns.
type Scheduler interface {
	Start(frame func())
	Stop()
}

// FrameTicker is the production scheduler, driving frames from a time.Ticker
// on its own goroutine.
type FrameTicker struct {
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewFrameTicker creates a scheduler with the given frame interval.
// Non-positive intervals default to ~60 fps.
func NewFrameTicker(interval time.Duration) *FrameTicker {
	if interval <= 0 {
		interval = time.Second / 60
	}
	return &FrameTicker{interval: interval}
}

// Start begins the frame loop. Starting an already-running ticker is a
// no-op.
func (t *FrameTicker) Start(frame func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.cancel = cancel
	t.done = make(chan struct{})

	go func(done chan struct{}) {
		defer close(done)
		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				frame()
			}
		}
	}(t.done)
}

// Stop cancels the loop and waits for the frame goroutine to exit, so no
// frame callback can fire after Stop returns.
func (t *FrameTicker) Stop() {
	t.mu.Lock()
	cancel := t.cancel
	done := t.done
	t.cancel = nil
	t.done = nil
	t.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Animator couples the scene's per-frame work to a scheduler and exposes the
// start/pause/teardown control surface.
type Animator struct {
	sched Scheduler
	scene *Scene
}

// NewAnimator binds a scene to a scheduler.
func NewAnimator(sched Scheduler, scene *Scene) *Animator {
	return &Animator{sched: sched, scene: scene}
}

// Start resumes physics and begins the frame loop. The settled signal is
// ignored here; the continuous loop keeps drawing so interaction stays live.
func (a *Animator) Start() {
	a.scene.Start()
	a.sched.Start(func() { a.scene.Frame() })
}

// Pause freezes physics. The frame loop keeps redrawing the static scene so
// selection changes stay visible.
func (a *Animator) Pause() {
	a.scene.Pause()
}

// Teardown stops the frame loop and disposes the scene. No frame callback
// touches the graph or canvas afterwards.
func (a *Animator) Teardown() {
	a.sched.Stop()
	a.scene.Close()
}
