package models

import (
	"fmt"
)

// Summary is the stats readout shown next to the visualization. Totals come
// from the true aggregate counts, density and clusters from the built graph.
type Summary struct {
	TotalConnections  int    `json:"total_connections"`
	MutualConnections int    `json:"mutual_connections"`
	Clusters          int    `json:"clusters"`
	Density           string `json:"density"`
}

// FindNodeByID returns a node by its ID.
func (g *Graph) FindNodeByID(id string) (*Node, error) {
	if n, ok := g.Nodes[id]; ok {
		return n, nil
	}
	return nil, fmt.Errorf("node with ID %s not found", id)
}

// FindNodesByType returns all nodes of a specific type, in insertion order.
func (g *Graph) FindNodesByType(t NodeType) []*Node {
	var result []*Node
	for _, n := range g.Ordered() {
		if n.Type == t {
			result = append(result, n)
		}
	}
	return result
}

// IncidentEdges returns the indices of all edges touching the given node.
func (g *Graph) IncidentEdges(nodeID string) []int {
	var result []int
	for i, e := range g.Edges {
		if e.Source == nodeID || e.Target == nodeID {
			result = append(result, i)
		}
	}
	return result
}

// KineticEnergy returns the total squared velocity across all nodes. The
// simulator's damping drives this toward zero for a static graph.
func (g *Graph) KineticEnergy() float64 {
	var total float64
	for _, n := range g.Nodes {
		total += n.VX*n.VX + n.VY*n.VY
	}
	return total
}

// Density returns visible edges over the maximum possible undirected edge
// count, as a fraction. Zero for graphs with fewer than two nodes.
func (g *Graph) Density() float64 {
	n := len(g.Nodes)
	if n < 2 {
		return 0
	}
	maxEdges := float64(n*(n-1)) / 2
	return float64(len(g.Edges)) / maxEdges
}

// ClusterCount groups visible peers by relationship directionality:
// reciprocal (friend, mutual), inbound (follower) and outbound (following).
// The count is the number of non-empty groups.
func (g *Graph) ClusterCount() int {
	var reciprocal, inbound, outbound int
	for _, n := range g.Nodes {
		switch n.Type {
		case NodeFriend, NodeMutual:
			reciprocal++
		case NodeFollower:
			inbound++
		case NodeFollowing:
			outbound++
		}
	}
	count := 0
	for _, c := range []int{reciprocal, inbound, outbound} {
		if c > 0 {
			count++
		}
	}
	return count
}

// Summarize combines the true aggregates with graph-derived metrics.
func (g *Graph) Summarize(stats NetworkStats) Summary {
	return Summary{
		TotalConnections:  stats.TotalConnections,
		MutualConnections: stats.MutualConnections,
		Clusters:          g.ClusterCount(),
		Density:           fmt.Sprintf("%.1f%%", g.Density()*100),
	}
}
