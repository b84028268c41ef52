// Package detour computes the detour matrix and detour index of a
// connected molecular graph: for every pair of vertices, the weight of the
// longest simple path between them, and the scalar aggregate derived from
// the full matrix.
//
// What:
//
//   - Matrix(g, opts...): N×N symmetric detour matrix with zero diagonal.
//   - Index(g, opts...): ⌊½ · Σ Matrix(i,j)⌋ over all entries.
//
// How it stays tractable: longest simple path is NP-hard in general, but
// molecular graphs decompose into small biconnected components. The
// pipeline is
//
//	decompose into blocks → solve each block exhaustively → merge block
//	results along cut vertices → assemble the dense matrix
//
// Every simple path that crosses between two blocks must pass through
// their unique shared cut vertex, so cross-block entries are exact
// concatenations of per-block optima.
//
// Complexity:
//
//   - Decomposition: O(V + E) lowpoint DFS.
//   - Per-block solve: exponential in block size in the worst case;
//     molecular rings are small, so this is fine in practice. Use
//     WithMaxBlockSize to fail fast instead of searching a pathological
//     dense block.
//   - Merge + assembly: O(V²) per merged block, O(V²·B) overall.
//
// Options:
//
//   - WithMaxBlockSize(n)        refuse blocks larger than n vertices.
//   - WithoutConnectivityCheck() skip the upfront O(V+E) precondition scan.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrGraphEmpty             if g has no vertices.
//   - ErrNotConnected           if g has more than one component.
//   - ErrBlockTooLarge          if a block exceeds WithMaxBlockSize.
//   - ErrMultipleCommonNodes    decomposition invariant violation (internal bug).
//   - ErrUnknownWeight          merge consistency violation (internal bug).
//
// The computation is fully synchronous and allocation-local: the graph is
// read-only for the duration of the call and all intermediate state is
// owned by the call stack, so distinct calls may run concurrently on the
// same graph.
package detour
