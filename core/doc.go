// Package core defines the Graph and Edge types used as input by every
// descriptor computation in chemgraph.
//
// What:
//
//   - Graph models a molecular graph: undirected, simple (no self-loops,
//     no parallel bonds), with vertices identified by dense integers 0…N-1
//     (atom indices) and optional non-negative float64 edge weights
//     (bond orders).
//   - Edge is a half-edge oriented From→To as seen from a Neighbors call,
//     or normalized From<To when returned by Edges.
//   - Connected reports single-component reachability, the precondition of
//     the detour algorithms.
//
// Why:
//
//   - Descriptor matrices are indexed by atom position, so integer IDs map
//     straight onto matrix rows without a translation table.
//   - Mutation is single-writer by contract: a graph is built once, then
//     treated as immutable for the duration of any computation over it.
//
// Complexity:
//
//   - AddVertex / AddEdge / HasEdge: O(1) amortized.
//   - Neighbors: O(deg(v)) copy.
//   - Edges: O(E log E) (sorted for determinism).
//   - Connected: O(V + E) BFS.
//
// Errors:
//
//   - ErrVertexNotFound: an endpoint is outside 0…N-1.
//   - ErrLoopNotAllowed: self-loop attempted.
//   - ErrMultiEdgeNotAllowed: duplicate edge between the same pair.
//   - ErrBadWeight: non-zero weight on an unweighted graph, or a negative
//     or non-finite weight on a weighted one.
package core
