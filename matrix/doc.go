// Package matrix provides the dense numeric type used as descriptor
// output by chemgraph.
//
// What:
//
//   - Dense: a row-major float64 matrix backed by one flat slice.
//   - Bounds-checked At/Set, deep Clone, whole-matrix Sum, and a
//     symmetry check with an explicit tolerance.
//
// Why:
//
//   - Descriptor matrices (detour, distance, adjacency) are small and
//     dense; a flat slice is cache-friendly and trivially cloneable.
//   - Aggregate descriptors (the detour index among them) reduce the
//     matrix with Sum, so it lives here next to the storage.
//
// Complexity: all methods O(1) except Clone, Sum and IsSymmetric, which
// are O(rows·cols).
//
// Errors:
//
//   - ErrInvalidDimensions: requested dimensions are non-positive.
//   - ErrIndexOutOfBounds: a row or column index is outside valid range.
package matrix
