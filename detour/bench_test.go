package detour_test

import (
	"testing"

	"github.com/molgraph/chemgraph/core"
	"github.com/molgraph/chemgraph/detour"
)

// fusedHexagons builds a naphthalene-like skeleton: two 6-rings sharing an
// edge, 10 vertices, 11 edges, a single biconnected component.
func fusedHexagons() *core.Graph {
	g := core.NewGraph()
	g.AddVertices(10)
	edges := [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 0}, // first ring
		{0, 6}, {6, 7}, {7, 8}, {8, 9}, {9, 5}, // second ring fused on 0-5
	}
	for _, e := range edges {
		_ = g.AddEdge(e[0], e[1], 0)
	}

	return g
}

// chain builds an unweighted path of n vertices: n-1 single-edge blocks,
// stressing the merge loop rather than the per-block search.
func chain(n int) *core.Graph {
	g := core.NewGraph()
	g.AddVertices(n)
	for i := 0; i < n-1; i++ {
		_ = g.AddEdge(i, i+1, 0)
	}

	return g
}

// BenchmarkMatrix_FusedHexagons measures the exhaustive per-block search
// on one dense 10-vertex biconnected component.
func BenchmarkMatrix_FusedHexagons(b *testing.B) {
	g := fusedHexagons()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := detour.Matrix(g); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkMatrix_Chain100 measures the block merge over 99 trivial
// single-edge blocks of a 100-vertex path.
func BenchmarkMatrix_Chain100(b *testing.B) {
	g := chain(100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := detour.Matrix(g); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkIndex_FusedHexagons measures the full matrix + reduction path.
func BenchmarkIndex_FusedHexagons(b *testing.B) {
	g := fusedHexagons()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := detour.Index(g); err != nil {
			b.Fatal(err)
		}
	}
}
