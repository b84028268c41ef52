package detour

import (
	"github.com/molgraph/chemgraph/core"
	"github.com/molgraph/chemgraph/matrix"
)

// Matrix computes the detour matrix of the connected graph g: the N×N
// symmetric matrix whose (i, j) entry is the maximum total edge weight
// over all simple paths between i and j. Unweighted graphs use the unit
// weight 1.0 per edge, so entries count edges on the longest simple path.
//
// The graph is decomposed into biconnected components, each component is
// solved exactly by exhaustive backtracking, and the per-component results
// are merged along cut vertices. A single-vertex graph short-circuits to a
// 1×1 zero matrix.
//
// Returns ErrGraphNil, ErrGraphEmpty, ErrNotConnected or ErrBlockTooLarge
// on rejected input; ErrMultipleCommonNodes or ErrUnknownWeight indicate
// an internal invariant violation and are not recoverable.
func Matrix(g *core.Graph, opts ...Option) (*matrix.Dense, error) {
	// 1. Validate input graph.
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options.
	dopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&dopts)
	}

	n := g.VertexCount()
	if n == 0 {
		return nil, ErrGraphEmpty
	}

	// 3. Trivial graph: one vertex, zero matrix, no decomposition.
	if n == 1 {
		return matrix.NewDense(1, 1)
	}

	// 4. Precondition: single component.
	if !dopts.SkipConnectivityCheck && !g.Connected() {
		return nil, ErrNotConnected
	}

	// 5. Decompose and solve each block.
	blocks := biconnectedComponents(g)
	solved := make([]blockResult, 0, len(blocks))
	for _, nodes := range blocks {
		if dopts.MaxBlockSize > 0 && len(nodes) > dopts.MaxBlockSize {
			return nil, ErrBlockTooLarge
		}
		solved = append(solved, solveBlock(g, nodes))
	}

	// 6. Merge along cut vertices.
	paths, err := mergeBlocks(solved)
	if err != nil {
		return nil, err
	}

	// 7. Assemble the dense matrix.
	return assemble(n, paths)
}

// Index computes the detour index of g: the sum of all detour matrix
// entries halved (symmetry counts every unordered pair twice) and
// truncated toward zero.
func Index(g *core.Graph, opts ...Option) (int64, error) {
	m, err := Matrix(g, opts...)
	if err != nil {
		return 0, err
	}

	return int64(0.5 * m.Sum()), nil
}

// assemble converts the merged pairwise map into a dense symmetric matrix
// with zero diagonal. Every pair over 0…n-1 must be present; a miss means
// the merge left a hole and is reported as ErrUnknownWeight.
func assemble(n int, paths map[pair]float64) (*matrix.Dense, error) {
	d, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}

	var i, j int
	var w float64
	var ok bool
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			if w, ok = paths[pair{U: i, V: j}]; !ok {
				return nil, ErrUnknownWeight
			}
			if err = d.Set(i, j, w); err != nil {
				return nil, err
			}
			if err = d.Set(j, i, w); err != nil {
				return nil, err
			}
		}
	}

	return d, nil
}
