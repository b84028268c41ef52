package core

import (
	"math"
	"sort"
)

// AddVertex appends a new vertex and returns its ID (previous VertexCount).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex() int {
	g.adjacency = append(g.adjacency, nil)

	return len(g.adjacency) - 1
}

// AddVertices appends n vertices at once. Negative n is a no-op.
// Complexity: O(n).
func (g *Graph) AddVertices(n int) {
	for i := 0; i < n; i++ {
		g.AddVertex()
	}
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	return len(g.adjacency)
}

// EdgeCount returns the number of undirected edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	return len(g.present)
}

// Weighted reports whether non-zero edge weights are permitted.
// Complexity: O(1).
func (g *Graph) Weighted() bool {
	return g.weighted
}

// HasVertex reports whether id names an existing vertex.
// Complexity: O(1).
func (g *Graph) HasVertex(id int) bool {
	return id >= 0 && id < len(g.adjacency)
}

// HasEdge reports whether an edge exists between u and v in either
// orientation.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	_, ok := g.present[pairOf(u, v)]

	return ok
}

// AddEdge inserts an undirected edge between from and to.
//
// Validation order: endpoints exist (ErrVertexNotFound), no self-loop
// (ErrLoopNotAllowed), no duplicate (ErrMultiEdgeNotAllowed), weight
// admissible (ErrBadWeight). On an unweighted graph weight must be 0;
// on a weighted graph it must be finite and non-negative.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, weight float64) error {
	// 1. Endpoints must exist.
	if !g.HasVertex(from) || !g.HasVertex(to) {
		return ErrVertexNotFound
	}

	// 2. Molecular graphs are simple.
	if from == to {
		return ErrLoopNotAllowed
	}
	if g.HasEdge(from, to) {
		return ErrMultiEdgeNotAllowed
	}

	// 3. Weight policy.
	if !g.weighted && weight != 0 {
		return ErrBadWeight
	}
	if g.weighted && (weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0)) {
		return ErrBadWeight
	}

	// 4. Store both half-edges and the membership key.
	g.adjacency[from] = append(g.adjacency[from], Edge{From: from, To: to, Weight: weight})
	g.adjacency[to] = append(g.adjacency[to], Edge{From: to, To: from, Weight: weight})
	g.present[pairOf(from, to)] = struct{}{}

	return nil
}

// Neighbors returns a copy of the half-edges incident to id, each oriented
// From == id, in insertion order.
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id int) ([]Edge, error) {
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}

	out := make([]Edge, len(g.adjacency[id]))
	copy(out, g.adjacency[id])

	return out, nil
}

// Degree returns the number of edges incident to id.
// Complexity: O(1).
func (g *Graph) Degree(id int) (int, error) {
	if !g.HasVertex(id) {
		return 0, ErrVertexNotFound
	}

	return len(g.adjacency[id]), nil
}

// Edges returns every undirected edge exactly once, normalized From < To
// and sorted by (From, To) for deterministic iteration.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, len(g.present))
	var e Edge
	for v := 0; v < len(g.adjacency); v++ {
		for _, e = range g.adjacency[v] {
			if e.From < e.To {
				out = append(out, e)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}

		return out[i].To < out[j].To
	})

	return out
}

// pairOf normalizes an unordered vertex pair into a map key with u < v.
func pairOf(u, v int) [2]int {
	if u > v {
		u, v = v, u
	}

	return [2]int{u, v}
}
