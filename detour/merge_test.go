package detour

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// forgeBlock builds a blockResult directly from a pair map; the vertex set
// is derived from the keys. Diagonal entries are added for every vertex,
// matching what solveBlock produces.
func forgeBlock(paths map[pair]float64) blockResult {
	nodes := make(map[int]struct{})
	full := make(map[pair]float64, len(paths))
	for k, w := range paths {
		nodes[k.U] = struct{}{}
		nodes[k.V] = struct{}{}
		full[k] = w
	}
	for v := range nodes {
		if _, ok := full[pair{U: v, V: v}]; !ok {
			full[pair{U: v, V: v}] = 0
		}
	}

	return blockResult{nodes: nodes, paths: full}
}

func TestMergeBlocks_Empty(t *testing.T) {
	_, err := mergeBlocks(nil)
	assert.ErrorIs(t, err, ErrGraphEmpty)
}

func TestMergeBlocks_SingleBlock(t *testing.T) {
	blk := forgeBlock(map[pair]float64{{U: 0, V: 1}: 2})
	got, err := mergeBlocks([]blockResult{blk})
	require.NoError(t, err)
	assert.Equal(t, blk.paths, got)
}

func TestMergeBlocks_TwoBlocksAtCutVertex(t *testing.T) {
	// 0-1 and 1-2 joined at cut vertex 1: the cross pair concatenates.
	a := forgeBlock(map[pair]float64{{U: 0, V: 1}: 2})
	b := forgeBlock(map[pair]float64{{U: 1, V: 2}: 3})

	got, err := mergeBlocks([]blockResult{a, b})
	require.NoError(t, err)
	assert.Equal(t, 2.0, got[pair{U: 0, V: 1}])
	assert.Equal(t, 3.0, got[pair{U: 1, V: 2}])
	assert.Equal(t, 5.0, got[pair{U: 0, V: 2}], "cross pair = merged[0,1] + block[1,2]")
	assert.Zero(t, got[pair{U: 1, V: 1}])
}

func TestMergeBlocks_MultipleCommonNodes(t *testing.T) {
	// Two "blocks" sharing vertices 1 and 2: not a tree of blocks. The
	// merge must fail loudly instead of producing a matrix.
	a := forgeBlock(map[pair]float64{{U: 0, V: 1}: 1, {U: 0, V: 2}: 1, {U: 1, V: 2}: 1})
	b := forgeBlock(map[pair]float64{{U: 1, V: 2}: 1, {U: 1, V: 3}: 1, {U: 2, V: 3}: 1})

	_, err := mergeBlocks([]blockResult{a, b})
	assert.ErrorIs(t, err, ErrMultipleCommonNodes)
}

func TestMergeBlocks_UnknownWeight(t *testing.T) {
	// The seed block lacks the (1,2) entry its own vertex set implies, so
	// the cross pair (0,2) cannot be resolved.
	incomplete := blockResult{
		nodes: map[int]struct{}{1: {}, 2: {}},
		paths: map[pair]float64{{U: 1, V: 1}: 0, {U: 2, V: 2}: 0},
	}
	a := forgeBlock(map[pair]float64{{U: 0, V: 1}: 2})

	_, err := mergeBlocks([]blockResult{a, incomplete})
	assert.ErrorIs(t, err, ErrUnknownWeight)
}

func TestMergeBlocks_DisconnectedSurfacesLate(t *testing.T) {
	a := forgeBlock(map[pair]float64{{U: 0, V: 1}: 1})
	b := forgeBlock(map[pair]float64{{U: 2, V: 3}: 1})

	_, err := mergeBlocks([]blockResult{a, b})
	assert.ErrorIs(t, err, ErrNotConnected)
}

func TestMergeBlocks_OrderIndependence(t *testing.T) {
	// Star of three edges at vertex 0 plus a tail on vertex 1:
	// four single-edge blocks in a tree. Every permutation of the block
	// queue must produce the identical pairwise map.
	blocks := []blockResult{
		forgeBlock(map[pair]float64{{U: 0, V: 1}: 1}),
		forgeBlock(map[pair]float64{{U: 0, V: 2}: 2}),
		forgeBlock(map[pair]float64{{U: 0, V: 3}: 3}),
		forgeBlock(map[pair]float64{{U: 1, V: 4}: 4}),
	}

	want, err := mergeBlocks(blocks)
	require.NoError(t, err)
	assert.Equal(t, 7.0, want[pair{U: 2, V: 4}], "2-0-1-4 spans three blocks")

	perms := permutations(len(blocks))
	for _, perm := range perms {
		shuffled := make([]blockResult, len(blocks))
		for i, p := range perm {
			shuffled[i] = blocks[p]
		}
		got, err := mergeBlocks(shuffled)
		require.NoError(t, err, "permutation %v", perm)
		assert.Equal(t, want, got, "permutation %v", perm)
	}
}

// permutations returns all permutations of 0…n-1.
func permutations(n int) [][]int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	var out [][]int
	var recurse func(k int)
	recurse = func(k int) {
		if k == n {
			perm := make([]int, n)
			copy(perm, idx)
			out = append(out, perm)

			return
		}
		for i := k; i < n; i++ {
			idx[k], idx[i] = idx[i], idx[k]
			recurse(k + 1)
			idx[k], idx[i] = idx[i], idx[k]
		}
	}
	recurse(0)

	return out
}
