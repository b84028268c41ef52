// Package core: Graph and Edge declarations, construction options, and the
// sentinel error set. Accessors and mutators live in methods.go; the
// connectivity check lives in connected.go.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a vertex ID
	// outside the range 0…VertexCount()-1.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted; molecular
	// graphs are simple, so loops are always rejected.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a second edge between the same pair
	// of vertices was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrBadWeight indicates a non-zero weight on an unweighted graph, or a
	// negative or non-finite weight on a weighted one.
	ErrBadWeight = errors.New("core: bad edge weight")
)

// Edge represents a bond between two vertices.
//
// From a Neighbors(v) call, Edge is a half-edge with From == v; from
// Edges(), endpoints are normalized so From < To. Weight is 0 on an
// unweighted graph; consumers apply the unit weight 1.0 themselves.
type Edge struct {
	// From is the source vertex ID of this half-edge.
	From int

	// To is the destination vertex ID.
	To int

	// Weight is the bond weight. Always 0 when the graph is unweighted.
	Weight float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// Graph is the in-memory molecular graph.
//
// It is undirected and simple: no self-loops, no parallel edges. Vertices
// are dense integers assigned in AddVertex order. Not safe for concurrent
// mutation; build first, then share read-only.
type Graph struct {
	weighted bool // allow non-zero weights

	// adjacency[v] holds half-edges with From == v, in insertion order.
	adjacency [][]Edge

	// present[{u,v}] with u < v marks existing edges for O(1) duplicate checks.
	present map[[2]int]struct{}
}

// NewGraph creates an empty Graph with the given options.
// By default the Graph is unweighted.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		present: make(map[[2]int]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
