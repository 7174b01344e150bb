package social

import (
	"context"
	"fmt"

	"github.com/arfacturas8-ai/sociograph/models"
)

// SampleSource is a deterministic in-process relationship source used by the
// CLI and the demo server when no backend is configured.
type SampleSource struct{}

// NetworkStats returns fixed aggregates for any subject.
func (SampleSource) NetworkStats(_ context.Context, _ string) (models.NetworkStats, error) {
	return models.NetworkStats{
		TotalConnections:  150,
		Followers:         75,
		Following:         50,
		MutualConnections: 25,
	}, nil
}

// MutualConnections returns a fixed identity list, truncated to max.
func (SampleSource) MutualConnections(_ context.Context, _ string, max int) ([]string, error) {
	names := make([]string, 0, 25)
	for i := 1; i <= 25; i++ {
		names = append(names, fmt.Sprintf("mutual-%02d", i))
	}
	if max > 0 && max < len(names) {
		names = names[:max]
	}
	return names, nil
}
