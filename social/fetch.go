package social

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/arfacturas8-ai/sociograph/models"
)

// Loader serializes graph rebuilds under a last-request-wins discipline.
// Subject or filter changes start a new request generation; a response for a
// superseded generation is discarded and never overwrites a newer graph.
type Loader struct {
	builder *Builder
	gen     atomic.Uint64

	mu    sync.Mutex
	graph *models.Graph
	stats models.NetworkStats
}

// NewLoader wraps a builder.
func NewLoader(builder *Builder) *Loader {
	return &Loader{builder: builder}
}

// Load fetches and builds the graph for the given subject and filter,
// returning it together with its own aggregates. The returned bool is false
// when a newer request was started while this one was in flight; the stale
// result is discarded in that case.
func (l *Loader) Load(ctx context.Context, subjectID string, filter models.Filter) (*models.Graph, models.NetworkStats, bool) {
	token := l.gen.Add(1)

	graph, stats := l.builder.Load(ctx, subjectID, filter)

	l.mu.Lock()
	defer l.mu.Unlock()
	if token != l.gen.Load() {
		return nil, models.NetworkStats{}, false
	}
	l.graph = graph
	l.stats = stats
	return graph, stats, true
}

// Current returns the most recently committed graph and its aggregates.
func (l *Loader) Current() (*models.Graph, models.NetworkStats) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.graph, l.stats
}
