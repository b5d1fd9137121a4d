package topology

import (
	"sort"
	"strconv"
	"strings"

	"github.com/ferrohm/spinsheaf/lattice"
)

// OpenSet is a finite, possibly empty set of lattice points. Membership is
// stored as row-major indices over the owning lattice, so duplicates
// collapse and order carries no meaning; Indices and Points expose the one
// stable (ascending, i.e. row-major) iteration order.
//
// An OpenSet is immutable after construction: every operation that "changes"
// a set returns a new one. Combining sets from different lattices is caller
// misuse and is not detected.
type OpenSet struct {
	lat     *lattice.Lattice
	members map[int]struct{}
}

// NewOpenSet builds an OpenSet over lat from the given points, deduplicating
// as it goes. Returns lattice.ErrOutOfBounds (naming the point) if any point
// is invalid for lat. Complexity: O(P·D).
func NewOpenSet(lat *lattice.Lattice, points ...lattice.Point) (OpenSet, error) {
	members := make(map[int]struct{}, len(points))
	for _, p := range points {
		idx, err := lat.Index(p)
		if err != nil {
			return OpenSet{}, err
		}
		members[idx] = struct{}{}
	}

	return OpenSet{lat: lat, members: members}, nil
}

// newOpenSetFromIndices wraps pre-validated row-major indices; internal use.
func newOpenSetFromIndices(lat *lattice.Lattice, indices map[int]struct{}) OpenSet {
	return OpenSet{lat: lat, members: indices}
}

// Lattice returns the owning lattice.
func (s OpenSet) Lattice() *lattice.Lattice { return s.lat }

// Len returns the number of member points.
func (s OpenSet) Len() int { return len(s.members) }

// IsEmpty reports whether the set has no members.
func (s OpenSet) IsEmpty() bool { return len(s.members) == 0 }

// Contains reports point membership; invalid points are simply not members.
func (s OpenSet) Contains(p lattice.Point) bool {
	idx, err := s.lat.Index(p)
	if err != nil {
		return false
	}
	_, ok := s.members[idx]

	return ok
}

// ContainsIndex reports membership of a row-major index.
func (s OpenSet) ContainsIndex(idx int) bool {
	_, ok := s.members[idx]

	return ok
}

// Indices returns the member indices in ascending order.
func (s OpenSet) Indices() []int {
	out := make([]int, 0, len(s.members))
	for idx := range s.members {
		out = append(out, idx)
	}
	sort.Ints(out)

	return out
}

// Points returns the member points in row-major order.
func (s OpenSet) Points() []lattice.Point {
	idxs := s.Indices()
	out := make([]lattice.Point, len(idxs))
	for i, idx := range idxs {
		out[i] = s.lat.PointAt(idx)
	}

	return out
}

// Key returns the canonical form of the set: member indices in ascending
// order joined by commas ("" for the empty set). Two sets over the same
// lattice are equal iff their keys are equal; layers that cache per-set
// data key off this string instead of aliasing set storage.
func (s OpenSet) Key() string {
	idxs := s.Indices()
	parts := make([]string, len(idxs))
	for i, idx := range idxs {
		parts[i] = strconv.Itoa(idx)
	}

	return strings.Join(parts, ",")
}

// Equal reports membership equality. Both sets must belong to the same
// lattice for the comparison to be meaningful.
func (s OpenSet) Equal(other OpenSet) bool {
	if len(s.members) != len(other.members) {
		return false
	}
	for idx := range s.members {
		if _, ok := other.members[idx]; !ok {
			return false
		}
	}

	return true
}

// Clone returns an independent copy of the set.
func (s OpenSet) Clone() OpenSet {
	members := make(map[int]struct{}, len(s.members))
	for idx := range s.members {
		members[idx] = struct{}{}
	}

	return OpenSet{lat: s.lat, members: members}
}

// subsetOf reports whether every member of s lies in other.
func (s OpenSet) subsetOf(other OpenSet) bool {
	for idx := range s.members {
		if _, ok := other.members[idx]; !ok {
			return false
		}
	}

	return true
}

// disjointFrom reports whether s and other share no member.
func (s OpenSet) disjointFrom(other OpenSet) bool {
	small, large := s, other
	if large.Len() < small.Len() {
		small, large = large, small
	}
	for idx := range small.members {
		if _, ok := large.members[idx]; ok {
			return false
		}
	}

	return true
}
