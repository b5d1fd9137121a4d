// Package topology layers a basis-generated point-set topology over a
// lattice.
//
// What:
//
//   - OpenSet is a finite set of lattice points, stored as row-major
//     indices with one stable (ascending) iteration order.
//   - Topology owns an append-only arena of basis OpenSets, always seeded
//     with the empty set and the full-lattice set. AddBasisElement returns
//     the arena index, so downstream layers can key data off indices
//     instead of aliasing set contents.
//   - Union, Intersection, IsOpen, IsClosed, OpenNeighborhood and Closure
//     derive everything else from the basis.
//
// Why:
//
//   - Sheaves of observables: sections live on basis elements and are
//     assembled, restricted and glued over derived open sets.
//   - Locality arguments: is a region's data determined by basis pieces?
//
// Caveat:
//
//	IsOpen tests refinement against the chosen basis: a set is accepted iff
//	every basis element is fully inside it or fully disjoint from it. This
//	matches general topological openness only when the basis refines the
//	candidate like a partition; it is a deliberate, documented
//	simplification, not a general openness decision procedure.
//
// Complexity (S = set size, B = basis size, N = lattice points):
//
//   - Union/Intersection over k sets: O(Σ Sᵢ) / O(k·S).
//   - IsOpen: O(B·S); IsClosed: O(N + B·N).
//   - OpenNeighborhood: O(B·S); Closure: O(N·B·S).
//
// Errors:
//
//   - lattice.ErrOutOfBounds: an OpenSet was built from, or queried with,
//     a point that is invalid for the owning lattice.
//   - ErrBasisIndex: a basis arena index is out of range.
package topology
