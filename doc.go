// Package chemgraph is a small toolkit for topological descriptors of
// molecular graphs, centered on the detour matrix and detour index.
//
// 🚀 What is chemgraph?
//
//	A deterministic, dependency-light library that brings together:
//		• Core primitives: an undirected, simple, weighted molecular graph
//		• Matrix views: a dense symmetric float64 matrix for descriptor output
//		• Detour analysis: longest-simple-path matrix over the whole graph,
//		  computed exactly via biconnected decomposition, and its scalar index
//
// ✨ Why choose chemgraph?
//
//   - Exact, not heuristic – every entry is the true longest simple path
//   - Predictable – pure functions, no global state, no goroutines
//   - Honest preconditions – connectivity is validated up front, invariant
//     violations surface as sentinel errors instead of silent garbage
//
// Everything is organized under three subpackages:
//
//	core/   — fundamental Graph and Edge types for connected molecular graphs
//	matrix/ — dense symmetric matrix used as descriptor output
//	detour/ — detour matrix and detour index computation
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    3───2
//
//	a 4-ring: every adjacent pair detours the long way around (weight 3),
//	every opposite pair splits the ring (weight 2), detour index 16.
//
//	go get github.com/molgraph/chemgraph
package chemgraph
