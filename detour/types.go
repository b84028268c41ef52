// Package detour: option surface, sentinel errors, and the internal
// block-result representation shared by the solver and the merger.
package detour

import "errors"

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to Matrix or Index.
	ErrGraphNil = errors.New("detour: graph is nil")

	// ErrGraphEmpty is returned for a graph with no vertices; the detour
	// matrix of an empty graph is undefined.
	ErrGraphEmpty = errors.New("detour: graph has no vertices")

	// ErrNotConnected indicates the input graph has more than one
	// component. Connectivity is a precondition of the detour matrix.
	ErrNotConnected = errors.New("detour: graph is not connected")

	// ErrBlockTooLarge indicates a biconnected component exceeded the
	// WithMaxBlockSize guard before the exhaustive search started.
	ErrBlockTooLarge = errors.New("detour: biconnected component exceeds max block size")

	// ErrMultipleCommonNodes indicates two blocks shared more than one
	// vertex during merging. A valid biconnected decomposition forms a
	// tree of blocks joined at single cut vertices, so this is an internal
	// invariant violation, not a data error.
	ErrMultipleCommonNodes = errors.New("detour: blocks share multiple common nodes")

	// ErrUnknownWeight indicates a pairwise weight could not be resolved
	// from the merged map, the incoming block, or a cut-vertex
	// concatenation. Like ErrMultipleCommonNodes it signals an internal
	// inconsistency and is not recoverable.
	ErrUnknownWeight = errors.New("detour: unknown pairwise weight")
)

// Option configures optional behavior of the detour computation.
// Use with Matrix(g, opts...) or Index(g, opts...).
type Option func(*Options)

// Options holds configurable parameters for the detour computation.
type Options struct {
	// MaxBlockSize, if positive, bounds the vertex count of any single
	// biconnected component; a larger block aborts with ErrBlockTooLarge
	// before the exponential search begins. Default is 0 (unbounded).
	MaxBlockSize int

	// SkipConnectivityCheck disables the upfront reachability scan for
	// callers that already guarantee a connected input. Passing a
	// disconnected graph with the check disabled yields ErrNotConnected
	// from the merge phase instead. Default is false.
	SkipConnectivityCheck bool
}

// DefaultOptions returns an Options struct with:
//   - No block size limit (MaxBlockSize = 0)
//   - Upfront connectivity validation enabled
func DefaultOptions() Options {
	return Options{
		MaxBlockSize:          0,
		SkipConnectivityCheck: false,
	}
}

// WithMaxBlockSize returns an Option that bounds biconnected component
// size to limit vertices. Non-positive limits mean unbounded.
func WithMaxBlockSize(limit int) Option {
	return func(o *Options) {
		o.MaxBlockSize = limit
	}
}

// WithoutConnectivityCheck returns an Option that skips the upfront
// connectivity scan. Use only when the caller has already validated the
// graph; the precondition itself still holds.
func WithoutConnectivityCheck() Option {
	return func(o *Options) {
		o.SkipConnectivityCheck = true
	}
}

// pair is an unordered vertex pair normalized to U ≤ V, the key of every
// pairwise weight map in this package. Diagonal pairs (v,v) are stored
// with weight 0 so each block carries its own vertex set in its keys.
type pair struct {
	U, V int
}

// orient normalizes (i, j) into a pair key.
func orient(i, j int) pair {
	if i > j {
		i, j = j, i
	}

	return pair{U: i, V: j}
}

// blockResult is one solved biconnected component: its vertex set and the
// longest-simple-path weight for every pair of its vertices (diagonal
// included, at 0).
type blockResult struct {
	nodes map[int]struct{}
	paths map[pair]float64
}
