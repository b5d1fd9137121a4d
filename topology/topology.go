package topology

import (
	"fmt"

	"github.com/ferrohm/spinsheaf/lattice"
)

// Topology is a basis-generated topology over a lattice. The basis is an
// append-only arena: elements are referred to by the index AddBasisElement
// returns, it always contains the empty set (index 0) and the full-lattice
// set (index 1), and it never shrinks.
//
// A Topology is not goroutine-safe; callers serialize basis growth against
// reads.
type Topology struct {
	lat   *lattice.Lattice
	basis []OpenSet
}

// New constructs a Topology over lat with the two mandatory basis elements:
// the empty set and the set of all lattice points. Complexity: O(N).
func New(lat *lattice.Lattice) *Topology {
	full := make(map[int]struct{}, lat.NumPoints())
	for i := 0; i < lat.NumPoints(); i++ {
		full[i] = struct{}{}
	}

	return &Topology{
		lat: lat,
		basis: []OpenSet{
			newOpenSetFromIndices(lat, map[int]struct{}{}),
			newOpenSetFromIndices(lat, full),
		},
	}
}

// Lattice returns the owning lattice.
func (t *Topology) Lattice() *lattice.Lattice { return t.lat }

// EmptySet returns the mandatory empty basis element.
func (t *Topology) EmptySet() OpenSet { return t.basis[0] }

// FullSet returns the mandatory full-lattice basis element.
func (t *Topology) FullSet() OpenSet { return t.basis[1] }

// AddBasisElement appends set to the basis arena and returns its index.
// A set equal to an existing element collapses to that element's index, so
// re-adding is idempotent. No validity check against the lattice is made
// beyond the one NewOpenSet already performed; supplying sets built over a
// different lattice is caller misuse. Complexity: O(B·S).
func (t *Topology) AddBasisElement(set OpenSet) int {
	for i, b := range t.basis {
		if b.Equal(set) {
			return i
		}
	}
	t.basis = append(t.basis, set)

	return len(t.basis) - 1
}

// BasisLen returns the number of basis elements.
func (t *Topology) BasisLen() int { return len(t.basis) }

// Basis returns a copy of the basis slice (the sets themselves are
// immutable and shared).
func (t *Topology) Basis() []OpenSet {
	out := make([]OpenSet, len(t.basis))
	copy(out, t.basis)

	return out
}

// BasisElement returns the basis element at arena index i, or ErrBasisIndex
// if i is out of range.
func (t *Topology) BasisElement(i int) (OpenSet, error) {
	if i < 0 || i >= len(t.basis) {
		return OpenSet{}, fmt.Errorf("index %d of %d: %w", i, len(t.basis), ErrBasisIndex)
	}

	return t.basis[i], nil
}

// Union returns the deduplicated union of the given sets; with no arguments
// it returns the empty set. Complexity: O(Σ Sᵢ).
func (t *Topology) Union(sets ...OpenSet) OpenSet {
	members := make(map[int]struct{})
	for _, s := range sets {
		for idx := range s.members {
			members[idx] = struct{}{}
		}
	}

	return newOpenSetFromIndices(t.lat, members)
}

// Intersection returns the set of points common to every given set. With no
// arguments it returns the empty set, by convention. Complexity: O(k·S).
func (t *Topology) Intersection(sets ...OpenSet) OpenSet {
	members := make(map[int]struct{})
	if len(sets) == 0 {
		return newOpenSetFromIndices(t.lat, members)
	}
	for idx := range sets[0].members {
		inAll := true
		for _, s := range sets[1:] {
			if _, ok := s.members[idx]; !ok {
				inAll = false
				break
			}
		}
		if inAll {
			members[idx] = struct{}{}
		}
	}

	return newOpenSetFromIndices(t.lat, members)
}

// IsOpen reports whether every basis element is either fully contained in
// set or fully disjoint from it.
//
// This is a refinement-compatibility test against the chosen basis, not
// general topological openness: it is sound only when the basis refines the
// candidate set like a partition. The empty set and the full-lattice set
// are open under it for any basis, by construction. Complexity: O(B·S).
func (t *Topology) IsOpen(set OpenSet) bool {
	for _, b := range t.basis {
		if !b.subsetOf(set) && !b.disjointFrom(set) {
			return false
		}
	}

	return true
}

// IsClosed reports whether the complement of set within all lattice points
// is open. Complexity: O(N + B·N).
func (t *Topology) IsClosed(set OpenSet) bool {
	return t.IsOpen(t.complement(set))
}

// complement returns all lattice points not in set.
func (t *Topology) complement(set OpenSet) OpenSet {
	members := make(map[int]struct{}, t.lat.NumPoints()-set.Len())
	for i := 0; i < t.lat.NumPoints(); i++ {
		if !set.ContainsIndex(i) {
			members[i] = struct{}{}
		}
	}

	return newOpenSetFromIndices(t.lat, members)
}

// OpenNeighborhood returns the union of every basis element containing p.
// Because the full-lattice set is always a basis element, the neighborhood
// of a valid point is never empty. Returns lattice.ErrOutOfBounds if p is
// invalid. Complexity: O(B·S).
func (t *Topology) OpenNeighborhood(p lattice.Point) (OpenSet, error) {
	idx, err := t.lat.Index(p)
	if err != nil {
		return OpenSet{}, err
	}
	var hood []OpenSet
	for _, b := range t.basis {
		if b.ContainsIndex(idx) {
			hood = append(hood, b)
		}
	}

	return t.Union(hood...), nil
}

// Closure returns every lattice point whose open neighborhood intersects
// set. Complexity: O(N·B·S).
func (t *Topology) Closure(set OpenSet) OpenSet {
	members := make(map[int]struct{})
	for i := 0; i < t.lat.NumPoints(); i++ {
		hood, err := t.OpenNeighborhood(t.lat.PointAt(i))
		if err != nil {
			continue // PointAt yields valid points; unreachable
		}
		if !hood.disjointFrom(set) {
			members[i] = struct{}{}
		}
	}

	return newOpenSetFromIndices(t.lat, members)
}
