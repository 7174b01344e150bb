// Package social builds renderable graphs from relationship data. It is the
// boundary between the backend relationship source and the visualization
// engine: aggregate stats plus a capped list of mutual-connection identities
// go in, a size-capped representative Graph comes out.
package social

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/arfacturas8-ai/sociograph/models"
)

// Source is the external relationship data provider. Either call may fail;
// the builder then falls back to a fixed dataset.
type Source interface {
	NetworkStats(ctx context.Context, subjectID string) (models.NetworkStats, error)
	MutualConnections(ctx context.Context, subjectID string, max int) ([]string, error)
}

// Notifier receives error-severity reports. Fetch failures are reported once
// per load, never per retry or per frame.
type Notifier interface {
	ReportError(msg string)
}

// LogNotifier reports through the standard logger.
type LogNotifier struct{}

func (LogNotifier) ReportError(msg string) { log.Printf("error: %s", msg) }

const (
	// DefaultMaxPeers caps the synthesized peer set. The cap is deliberately a
	// multiple of common stat mixes so proportional allocation stays exact.
	DefaultMaxPeers = 24

	// DefaultMaxMutuals caps how many mutual identities are requested upstream.
	DefaultMaxMutuals = 50
)

// Spoke and intra-group edge strengths per relationship type.
var spokeStrength = map[models.NodeType]float64{
	models.NodeFriend:    0.8,
	models.NodeFollower:  0.4,
	models.NodeFollowing: 0.5,
	models.NodeMutual:    0.9,
}

var groupInfluence = map[models.NodeType]float64{
	models.NodeFriend:    0.7,
	models.NodeFollower:  0.5,
	models.NodeFollowing: 0.55,
	models.NodeMutual:    0.85,
}

const (
	chainStrength = 0.3
	ringStrength  = 0.7
)

// groupOrder fixes the allocation and construction order of peer groups.
var groupOrder = []models.NodeType{
	models.NodeFriend,
	models.NodeFollower,
	models.NodeFollowing,
	models.NodeMutual,
}

// Builder synthesizes representative social graphs. Safe to reuse across
// subjects; Build is pure apart from node/edge ID generation.
type Builder struct {
	source     Source
	notifier   Notifier
	MaxPeers   int
	MaxMutuals int
}

// NewBuilder creates a builder over the given source. A nil notifier falls
// back to the standard logger.
func NewBuilder(source Source, notifier Notifier) *Builder {
	if notifier == nil {
		notifier = LogNotifier{}
	}
	return &Builder{
		source:     source,
		notifier:   notifier,
		MaxPeers:   DefaultMaxPeers,
		MaxMutuals: DefaultMaxMutuals,
	}
}

// Load fetches stats and mutual identities concurrently, then builds the
// graph. The two fetches have no ordering dependency; the graph is only
// built once both have settled. On any fetch failure the fallback dataset is
// substituted and the failure is reported once.
func (b *Builder) Load(ctx context.Context, subjectID string, filter models.Filter) (*models.Graph, models.NetworkStats) {
	var (
		wg       sync.WaitGroup
		stats    models.NetworkStats
		mutuals  []string
		statsErr error
		listErr  error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		stats, statsErr = b.source.NetworkStats(ctx, subjectID)
	}()
	go func() {
		defer wg.Done()
		mutuals, listErr = b.source.MutualConnections(ctx, subjectID, b.MaxMutuals)
	}()
	wg.Wait()

	if statsErr != nil || listErr != nil {
		err := statsErr
		if err == nil {
			err = listErr
		}
		b.notifier.ReportError(fmt.Sprintf("failed to load network data for %s: %v", subjectID, err))
		stats, mutuals = FallbackDataset()
	}

	return b.Build(subjectID, stats, mutuals, filter), stats
}

// Build turns aggregate stats and mutual identities into a graph: one fixed,
// centered subject node, a proportionally allocated peer set capped at
// MaxPeers, hub spokes from every peer, chains between same-group neighbors
// and a closed ring through the mutual group. The filter is applied last.
func (b *Builder) Build(subjectID string, stats models.NetworkStats, mutuals []string, filter models.Filter) *models.Graph {
	g := models.NewGraph(subjectID)
	subject := g.AddSubject("You")

	counts := allocate(peerParts(stats, len(mutuals)), b.maxPeers())

	byGroup := make(map[models.NodeType][]*models.Node, len(groupOrder))
	for _, t := range groupOrder {
		for i := 0; i < counts[t]; i++ {
			n := models.NewNode(t, peerLabel(t, mutuals, i), groupInfluence[t])
			g.AddNode(n)
			byGroup[t] = append(byGroup[t], n)
		}
	}

	// Hub spokes: every peer connects to the subject.
	for _, t := range groupOrder {
		for _, n := range byGroup[t] {
			g.AddEdge(n.ID, subject.ID, edgeTypeFor(t), spokeStrength[t])
		}
	}

	// Chains between consecutive same-group peers; the mutual group closes
	// into a ring since mutual connections are densely interlinked.
	for _, t := range groupOrder {
		peers := byGroup[t]
		for i := 1; i < len(peers); i++ {
			g.AddEdge(peers[i-1].ID, peers[i].ID, edgeTypeFor(t), chainStrength)
		}
		if t == models.NodeMutual && len(peers) >= 3 {
			g.AddEdge(peers[len(peers)-1].ID, peers[0].ID, edgeTypeFor(t), ringStrength)
		}
	}

	if filter != models.FilterAll {
		return g.Filtered(filter)
	}
	return g
}

func (b *Builder) maxPeers() int {
	if b.MaxPeers > 0 {
		return b.MaxPeers
	}
	return DefaultMaxPeers
}

// peerParts derives per-group population counts from the aggregates. Mutual
// connections are a subset of both followers and following, so those two are
// reduced to their exclusive remainders; friends absorb whatever the totals
// leave over.
func peerParts(stats models.NetworkStats, mutualListLen int) map[models.NodeType]int {
	mutual := stats.MutualConnections
	if mutualListLen > 0 && mutualListLen < mutual {
		mutual = mutualListLen
	}
	followerOnly := max(0, stats.Followers-stats.MutualConnections)
	followingOnly := max(0, stats.Following-stats.MutualConnections)
	friends := max(0, stats.TotalConnections-followerOnly-followingOnly-mutual)
	return map[models.NodeType]int{
		models.NodeFriend:    friends,
		models.NodeFollower:  followerOnly,
		models.NodeFollowing: followingOnly,
		models.NodeMutual:    mutual,
	}
}

// allocate distributes the peer slots proportionally across the groups using
// largest-remainder rounding, tie-broken by the fixed group order so the
// result is deterministic for a given stat mix.
func allocate(parts map[models.NodeType]int, slots int) map[models.NodeType]int {
	total := 0
	for _, t := range groupOrder {
		total += parts[t]
	}
	out := make(map[models.NodeType]int, len(groupOrder))
	if total == 0 {
		return out
	}
	if total <= slots {
		for _, t := range groupOrder {
			out[t] = parts[t]
		}
		return out
	}

	type rem struct {
		t    models.NodeType
		frac float64
	}
	assigned := 0
	var rems []rem
	for _, t := range groupOrder {
		exact := float64(slots) * float64(parts[t]) / float64(total)
		out[t] = int(exact)
		assigned += out[t]
		rems = append(rems, rem{t, exact - float64(out[t])})
	}
	for assigned < slots {
		best := -1
		for i, r := range rems {
			if best == -1 || r.frac > rems[best].frac {
				best = i
			}
		}
		out[rems[best].t]++
		rems[best].frac = -1
		assigned++
	}
	return out
}

func peerLabel(t models.NodeType, mutuals []string, i int) string {
	if t == models.NodeMutual && i < len(mutuals) {
		return mutuals[i]
	}
	switch t {
	case models.NodeFriend:
		return fmt.Sprintf("Friend %d", i+1)
	case models.NodeFollower:
		return fmt.Sprintf("Follower %d", i+1)
	case models.NodeFollowing:
		return fmt.Sprintf("Following %d", i+1)
	default:
		return fmt.Sprintf("Mutual %d", i+1)
	}
}

func edgeTypeFor(t models.NodeType) models.EdgeType {
	switch t {
	case models.NodeFriend:
		return models.EdgeFriend
	case models.NodeFollower:
		return models.EdgeFollower
	case models.NodeFollowing:
		return models.EdgeFollowing
	default:
		return models.EdgeMutual
	}
}

// FallbackDataset is the fixed dataset substituted when the relationship
// source is unavailable. The numbers divide evenly into the default peer cap
// so the fallback graph looks the same on every load.
func FallbackDataset() (models.NetworkStats, []string) {
	stats := models.NetworkStats{
		TotalConnections:  48,
		Followers:         24,
		Following:         18,
		MutualConnections: 6,
	}
	mutuals := []string{"ada", "grace", "edsger", "barbara", "donald", "leslie"}
	return stats, mutuals
}
