package detour

import (
	"sort"

	"github.com/molgraph/chemgraph/core"
)

// bccWalker encapsulates state during the lowpoint DFS that extracts
// biconnected components (blocks).
//
// disc holds 1-based discovery times (0 = unvisited); low is the classic
// lowpoint value; stack accumulates tree and back edges, popped down to
// the entering tree edge whenever an articulation condition
// (low[child] >= disc[parent]) fires.
type bccWalker struct {
	adj    [][]core.Edge // adjacency snapshot, indexed by vertex ID
	disc   []int         // discovery time per vertex, 0 = unvisited
	low    []int         // lowpoint per vertex
	clock  int           // discovery counter
	stack  [][2]int      // pending edges of the current block
	blocks [][]int       // collected block vertex sets
}

// biconnectedComponents returns the vertex sets of all maximal biconnected
// components of g. An isolated vertex yields its own trivial one-vertex
// block. Block vertex lists are sorted ascending; block order follows DFS
// completion order.
//
// Time:   O(V + E).
// Memory: O(V + E) for the adjacency snapshot and the edge stack.
func biconnectedComponents(g *core.Graph) [][]int {
	n := g.VertexCount()
	w := &bccWalker{
		adj:  make([][]core.Edge, n),
		disc: make([]int, n),
		low:  make([]int, n),
	}

	// Snapshot adjacency once; the DFS touches each list repeatedly.
	var v int
	for v = 0; v < n; v++ {
		w.adj[v], _ = g.Neighbors(v)
	}

	for v = 0; v < n; v++ {
		if w.disc[v] != 0 {
			continue
		}
		if len(w.adj[v]) == 0 {
			// Trivial block: a vertex with no incident edges.
			w.blocks = append(w.blocks, []int{v})
			continue
		}
		w.visit(v, -1)
	}

	return w.blocks
}

// visit runs the lowpoint DFS from u, where parent is the tree-edge
// predecessor (-1 at a root). The graph is simple, so skipping the single
// edge back to parent is exact.
func (w *bccWalker) visit(u, parent int) {
	w.clock++
	w.disc[u] = w.clock
	w.low[u] = w.clock

	var to int
	for _, e := range w.adj[u] {
		to = e.To
		if to == parent {
			continue
		}

		if w.disc[to] == 0 {
			// Tree edge: descend, then test the articulation condition.
			w.stack = append(w.stack, [2]int{u, to})
			w.visit(to, u)
			if w.low[to] < w.low[u] {
				w.low[u] = w.low[to]
			}
			if w.low[to] >= w.disc[u] {
				w.popBlock(u, to)
			}
		} else if w.disc[to] < w.disc[u] {
			// Back edge to an ancestor.
			w.stack = append(w.stack, [2]int{u, to})
			if w.disc[to] < w.low[u] {
				w.low[u] = w.disc[to]
			}
		}
	}
}

// popBlock pops stacked edges up to and including the tree edge (u, v) and
// records the distinct endpoints as one block.
func (w *bccWalker) popBlock(u, v int) {
	members := make(map[int]struct{})
	var e [2]int
	for {
		e = w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		members[e[0]] = struct{}{}
		members[e[1]] = struct{}{}
		if e[0] == u && e[1] == v {
			break
		}
	}

	block := make([]int, 0, len(members))
	for m := range members {
		block = append(block, m)
	}
	sort.Ints(block)
	w.blocks = append(w.blocks, block)
}
