package models

import (
	"fmt"
	"math"

	"github.com/google/uuid"
)

// Clamp01 bounds a value to the [0,1] range used for edge strength and
// node influence.
func Clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// NewGraph creates an empty graph for the given subject. The subject node
// itself is added with AddSubject.
func NewGraph(subjectID string) *Graph {
	return &Graph{
		ID:        uuid.New().String(),
		SubjectID: subjectID,
		Nodes:     make(map[string]*Node),
		Edges:     []Edge{},
	}
}

// NewNode creates a node with a unique ID and clamped influence.
func NewNode(nodeType NodeType, label string, influence float64) *Node {
	return &Node{
		ID:        uuid.New().String(),
		Label:     label,
		Type:      nodeType,
		Influence: Clamp01(influence),
	}
}

// AddSubject inserts the fixed, centered node representing the subject.
// There is exactly one such node per graph.
func (g *Graph) AddSubject(label string) *Node {
	n := &Node{
		ID:        g.SubjectID,
		Label:     label,
		Type:      NodeSelf,
		Fixed:     true,
		Influence: 1.0,
	}
	g.addNode(n)
	return n
}

// AddNode inserts a non-fixed node into the graph.
func (g *Graph) AddNode(n *Node) {
	n.Fixed = false
	n.Influence = Clamp01(n.Influence)
	g.addNode(n)
}

func (g *Graph) addNode(n *Node) {
	if _, ok := g.Nodes[n.ID]; !ok {
		g.Order = append(g.Order, n.ID)
	}
	g.Nodes[n.ID] = n
}

// AddEdge appends an edge after checking that both endpoints exist. Strength
// is clamped to [0,1] and the endpoints' connection counts are updated.
func (g *Graph) AddEdge(source, target string, edgeType EdgeType, strength float64) error {
	src, ok := g.Nodes[source]
	if !ok {
		return fmt.Errorf("source node %s does not exist in the graph", source)
	}
	dst, ok := g.Nodes[target]
	if !ok {
		return fmt.Errorf("target node %s does not exist in the graph", target)
	}

	g.Edges = append(g.Edges, Edge{
		ID:       uuid.New().String(),
		Source:   source,
		Target:   target,
		Type:     edgeType,
		Strength: Clamp01(strength),
	})
	src.ConnectionCount++
	dst.ConnectionCount++
	return nil
}

// Subject returns the fixed node, or nil for an empty graph.
func (g *Graph) Subject() *Node {
	return g.Nodes[g.SubjectID]
}

// Ordered returns the nodes in insertion order. Map iteration order is not
// stable, so everything that must be deterministic walks this slice instead.
func (g *Graph) Ordered() []*Node {
	out := make([]*Node, 0, len(g.Order))
	for _, id := range g.Order {
		out = append(out, g.Nodes[id])
	}
	return out
}

// Filtered returns a new graph holding the subject plus the nodes matching
// the filter, and only edges whose endpoints both survive. Positions and
// velocities carry over so switching filters does not scramble the scene.
func (g *Graph) Filtered(f Filter) *Graph {
	out := NewGraph(g.SubjectID)
	for _, n := range g.Ordered() {
		if !f.Matches(n.Type) {
			continue
		}
		cp := *n
		cp.ConnectionCount = 0
		out.addNode(&cp)
	}
	for _, e := range g.Edges {
		src, srcOK := out.Nodes[e.Source]
		dst, dstOK := out.Nodes[e.Target]
		if !srcOK || !dstOK {
			continue
		}
		out.Edges = append(out.Edges, e)
		src.ConnectionCount++
		dst.ConnectionCount++
	}
	return out
}
