// Package lattice models a finite N-dimensional discrete index space.
//
// What:
//
//   - Point is an ordered tuple of non-negative integer coordinates.
//   - Lattice fixes a dimension and a per-axis extent and enumerates every
//     valid Point in row-major order (last axis varies fastest).
//   - Points map to and from dense row-major indices, so callers can store
//     per-site data in flat slices instead of tuple-keyed maps.
//   - Neighbors returns the points at Manhattan distance exactly 1, with
//     free (non-periodic) boundaries: edge sites have fewer neighbors.
//
// Why:
//
//   - Spin models: site storage and nearest-neighbor energy accounting.
//   - Topology: open sets over lattice points become plain index sets.
//   - Any grid-shaped simulation that needs deterministic enumeration.
//
// Complexity:
//
//   - Contains, Index, PointAt: O(D), D = lattice dimension.
//   - Neighbors: O(D) candidates, O(D²) work.
//   - AllPoints: O(N·D) time and memory, N = total number of points.
//
// Errors:
//
//   - ErrDimensionMismatch: extent length disagrees with the dimension.
//   - ErrBadExtent: dimension or some extent entry is not positive.
//   - ErrOutOfBounds: a Point is invalid for the lattice.
package lattice
