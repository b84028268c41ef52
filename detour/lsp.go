package detour

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/molgraph/chemgraph/core"
)

// halfEdge is an outgoing edge inside one block, with the unit weight
// already applied for unweighted graphs.
type halfEdge struct {
	to     int
	weight float64
}

// pathSearcher holds the mutable state of one exhaustive search over all
// simple paths from a fixed origin inside a single block.
//
// visited and dist are restored exactly on every exit from a recursive
// step, so a searcher is reusable across origins after a reset.
type pathSearcher struct {
	origin  int                // current search origin
	adj     map[int][]halfEdge // block-confined adjacency
	visited *bitset.BitSet     // vertex IDs on the current path
	dist    float64            // accumulated weight of the current path
	best    map[int]float64    // per-origin maxima, keyed by target vertex
}

// solveBlock computes, for every pair of vertices of one biconnected
// component, the maximum total edge weight over all simple paths between
// them confined to that component.
//
// For each origin s the searcher enumerates every simple path rooted at s
// by backtracking: mark, accumulate, record, recurse, then unmark and
// subtract on the way out. Per-origin results are folded into one map
// keyed by unordered pair, taking the maximum over the two traversal
// directions. Diagonal pairs are kept at 0 so the result carries the full
// vertex set of the block in its keys.
//
// Time: exponential in block size in the worst case (molecular rings are
// small); Memory: O(block) beyond the adjacency.
func solveBlock(g *core.Graph, nodes []int) blockResult {
	// 1. Build block-confined adjacency with defaulted weights.
	inBlock := bitset.New(uint(g.VertexCount()))
	for _, v := range nodes {
		inBlock.Set(uint(v))
	}
	adj := make(map[int][]halfEdge, len(nodes))
	unit := !g.Weighted()
	for _, v := range nodes {
		edges, _ := g.Neighbors(v)
		var out []halfEdge
		for _, e := range edges {
			if !inBlock.Test(uint(e.To)) {
				continue
			}
			w := e.Weight
			if unit {
				w = 1.0
			}
			out = append(out, halfEdge{to: e.To, weight: w})
		}
		adj[v] = out
	}

	// 2. Exhaust every origin, folding maxima over both directions.
	ps := &pathSearcher{
		adj:     adj,
		visited: bitset.New(uint(g.VertexCount())),
		best:    make(map[int]float64, len(nodes)),
	}
	paths := make(map[pair]float64, len(nodes)*(len(nodes)+1)/2)
	var s, t int
	var w float64
	for _, s = range nodes {
		ps.origin = s
		ps.visited.ClearAll()
		ps.dist = 0
		for _, t = range nodes {
			ps.best[t] = 0
		}

		ps.search(s)

		for t, w = range ps.best {
			key := orient(s, t)
			if prev, ok := paths[key]; !ok || w > prev {
				paths[key] = w
			}
		}
	}

	set := make(map[int]struct{}, len(nodes))
	for _, v := range nodes {
		set[v] = struct{}{}
	}

	return blockResult{nodes: set, paths: paths}
}

// search explores every simple path extending the current one from u.
// Pre-call state of visited and dist is restored on every exit path.
func (ps *pathSearcher) search(u int) {
	ps.visited.Set(uint(u))
	for _, he := range ps.adj[u] {
		if ps.visited.Test(uint(he.to)) {
			continue
		}

		ps.visited.Set(uint(he.to))
		ps.dist += he.weight

		if ps.dist > ps.best[he.to] {
			ps.best[he.to] = ps.dist
		}

		// The origin is never re-entered during its own excursion.
		if he.to != ps.origin {
			ps.search(he.to)
		}

		ps.visited.Clear(uint(he.to))
		ps.dist -= he.weight
	}
}
