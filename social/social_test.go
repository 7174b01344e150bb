package social

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arfacturas8-ai/sociograph/models"
)

func referenceStats() models.NetworkStats {
	return models.NetworkStats{
		TotalConnections:  150,
		Followers:         75,
		Following:         50,
		MutualConnections: 25,
	}
}

func referenceMutuals() []string {
	names := make([]string, 25)
	for i := range names {
		names[i] = fmt.Sprintf("mutual-%02d", i+1)
	}
	return names
}

type spyNotifier struct {
	reports []string
}

func (s *spyNotifier) ReportError(msg string) { s.reports = append(s.reports, msg) }

type failingSource struct{}

func (failingSource) NetworkStats(context.Context, string) (models.NetworkStats, error) {
	return models.NetworkStats{}, errors.New("backend down")
}

func (failingSource) MutualConnections(context.Context, string, int) ([]string, error) {
	return nil, errors.New("backend down")
}

func TestBuildReferenceReadout(t *testing.T) {
	b := NewBuilder(nil, nil)
	g := b.Build("me", referenceStats(), referenceMutuals(), models.FilterAll)

	require.Len(t, g.Nodes, 25)
	require.Len(t, g.Edges, 45)

	sum := g.Summarize(referenceStats())
	assert.Equal(t, 150, sum.TotalConnections)
	assert.Equal(t, 25, sum.MutualConnections)
	assert.Equal(t, "15.0%", sum.Density)
	assert.Equal(t, 3, sum.Clusters)
}

func TestBuildAllocatesPeersProportionally(t *testing.T) {
	b := NewBuilder(nil, nil)
	g := b.Build("me", referenceStats(), referenceMutuals(), models.FilterAll)

	assert.Len(t, g.FindNodesByType(models.NodeFriend), 8)
	assert.Len(t, g.FindNodesByType(models.NodeFollower), 8)
	assert.Len(t, g.FindNodesByType(models.NodeFollowing), 4)
	assert.Len(t, g.FindNodesByType(models.NodeMutual), 4)
	assert.Len(t, g.FindNodesByType(models.NodeSelf), 1)
}

func TestBuildSubjectIsFixedAndCentered(t *testing.T) {
	b := NewBuilder(nil, nil)
	g := b.Build("me", referenceStats(), referenceMutuals(), models.FilterAll)

	subj := g.Subject()
	require.NotNil(t, subj)
	assert.True(t, subj.Fixed)
	assert.Equal(t, 0.0, subj.X)
	assert.Equal(t, 0.0, subj.Y)
	assert.Equal(t, models.NodeSelf, subj.Type)
}

func TestBuildMutualLabelsComeFromIdentityList(t *testing.T) {
	b := NewBuilder(nil, nil)
	g := b.Build("me", referenceStats(), referenceMutuals(), models.FilterAll)

	mutuals := g.FindNodesByType(models.NodeMutual)
	require.NotEmpty(t, mutuals)
	assert.Equal(t, "mutual-01", mutuals[0].Label)
}

func TestBuildFilterFriendsAndBack(t *testing.T) {
	b := NewBuilder(nil, nil)

	friends := b.Build("me", referenceStats(), referenceMutuals(), models.FilterFriends)
	require.Len(t, friends.Nodes, 9) // subject + 8 friends
	for _, n := range friends.Nodes {
		assert.Contains(t, []models.NodeType{models.NodeSelf, models.NodeFriend}, n.Type)
	}
	for _, e := range friends.Edges {
		assert.Contains(t, friends.Nodes, e.Source)
		assert.Contains(t, friends.Nodes, e.Target)
	}

	// Switching back to "all" rebuilds the full set.
	all := b.Build("me", referenceStats(), referenceMutuals(), models.FilterAll)
	assert.Len(t, all.Nodes, 25)
}

func TestBuildEdgesStayInBounds(t *testing.T) {
	b := NewBuilder(nil, nil)
	g := b.Build("me", referenceStats(), referenceMutuals(), models.FilterAll)

	for _, e := range g.Edges {
		assert.GreaterOrEqual(t, e.Strength, 0.0)
		assert.LessOrEqual(t, e.Strength, 1.0)
	}
	for _, n := range g.Nodes {
		assert.GreaterOrEqual(t, n.Influence, 0.0)
		assert.LessOrEqual(t, n.Influence, 1.0)
	}
}

func TestBuildEmptyStats(t *testing.T) {
	b := NewBuilder(nil, nil)
	g := b.Build("me", models.NetworkStats{}, nil, models.FilterAll)

	require.Len(t, g.Nodes, 1)
	assert.NotNil(t, g.Subject())
	assert.Empty(t, g.Edges)
}

func TestLoadFallsBackOnceOnFetchFailure(t *testing.T) {
	spy := &spyNotifier{}
	b := NewBuilder(failingSource{}, spy)

	g, stats := b.Load(context.Background(), "me", models.FilterAll)

	require.Len(t, spy.reports, 1)
	wantStats, _ := FallbackDataset()
	assert.Equal(t, wantStats, stats)
	assert.Greater(t, len(g.Nodes), 1)
	assert.NotNil(t, g.Subject())
}

func TestLoadHappyPath(t *testing.T) {
	spy := &spyNotifier{}
	b := NewBuilder(SampleSource{}, spy)

	g, stats := b.Load(context.Background(), "me", models.FilterAll)

	assert.Empty(t, spy.reports)
	assert.Equal(t, 150, stats.TotalConnections)
	assert.Len(t, g.Nodes, 25)
}
