// Package models provides data structures and interfaces for the sociograph engine.
// It defines the core domain models used throughout the application.
package models

// NodeType classifies a node by its relationship to the subject of the graph.
type NodeType string

const (
	NodeSelf      NodeType = "self"
	NodeFriend    NodeType = "friend"
	NodeFollower  NodeType = "follower"
	NodeFollowing NodeType = "following"
	NodeMutual    NodeType = "mutual"
)

// EdgeType classifies the relationship an edge represents.
type EdgeType string

const (
	EdgeFriend    EdgeType = "friend"
	EdgeFollower  EdgeType = "follower"
	EdgeFollowing EdgeType = "following"
	EdgeMutual    EdgeType = "mutual"
)

// Filter restricts the visible graph to one relationship type.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterFriends   Filter = "friends"
	FilterFollowers Filter = "followers"
	FilterFollowing Filter = "following"
)

// Matches reports whether a node of the given type survives the filter.
// The self node always survives.
func (f Filter) Matches(t NodeType) bool {
	if t == NodeSelf || f == FilterAll {
		return true
	}
	switch f {
	case FilterFriends:
		return t == NodeFriend
	case FilterFollowers:
		return t == NodeFollower
	case FilterFollowing:
		return t == NodeFollowing
	}
	return false
}

// ViewMode selects the initial layout strategy applied before physics relaxation.
type ViewMode string

const (
	ModeNetwork   ViewMode = "network"
	ModeCircle    ViewMode = "circle"
	ModeHierarchy ViewMode = "hierarchy"
)

// Node represents one account in the social graph.
type Node struct {
	ID              string   `json:"id"`
	Label           string   `json:"label"`
	Type            NodeType `json:"type"`
	X               float64  `json:"x"`
	Y               float64  `json:"y"`
	VX              float64  `json:"vx"`
	VY              float64  `json:"vy"`
	Fixed           bool     `json:"fixed"`     // true only for the subject node
	Influence       float64  `json:"influence"` // 0..1, drives render radius
	ConnectionCount int      `json:"connection_count"`
}

// Edge represents a relationship between two nodes.
type Edge struct {
	ID       string   `json:"id"`
	Source   string   `json:"source"`
	Target   string   `json:"target"`
	Type     EdgeType `json:"type"`
	Strength float64  `json:"strength"` // 0..1
}

// Graph is the shared mutable structure the simulator relaxes and the
// renderer draws. Nodes are keyed by ID; Order preserves insertion order so
// layout and iteration stay deterministic.
type Graph struct {
	ID        string           `json:"id"`
	SubjectID string           `json:"subject_id"`
	Nodes     map[string]*Node `json:"nodes"`
	Order     []string         `json:"order"`
	Edges     []Edge           `json:"edges"`
}

// NetworkStats holds the true aggregate counts fetched from the relationship
// source. They stay available for the stats readout independently of the
// capped visible node set.
type NetworkStats struct {
	TotalConnections  int `json:"total_connections"`
	Followers         int `json:"followers"`
	Following         int `json:"following"`
	MutualConnections int `json:"mutual_connections"`
}
