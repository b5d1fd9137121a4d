package sheaf

import (
	"fmt"
	"math"

	"github.com/ferrohm/spinsheaf/topology"
)

// Glue merges two or more sections of the same observable that are defined
// on overlapping open sets.
//
// The common intersection of all participating open sets must be nonempty
// (ErrEmptyOverlap otherwise), and on every pairwise overlap the sections
// must agree point by point: exactly for SpinValue, within Tolerance for
// Energy and Correlation (ErrOverlapMismatch, naming the first offending
// point, otherwise). Checking every pairwise overlap — not just the common
// intersection — is what makes gluing commutative and associative: gluing
// {A,B} and then the result with C performs exactly the checks of gluing
// {A,B,C} at once, so both succeed with the same section or fail the same
// way.
//
// On success the result is the union section: points covered by a single
// input keep that input's value, shared points keep the verified-shared
// value (for tolerance-compared observables, the value of the earliest
// participating section). The result is cached for SectionOver reuse.
//
// Complexity: O(k²·S) checks plus O(Σ Sᵢ) merge.
func (s *Sheaf) Glue(sections ...Section) (Section, error) {
	if len(sections) == 0 {
		return Section{}, fmt.Errorf("no sections: %w", ErrEmptyOverlap)
	}
	obs := sections[0].obs
	if _, ok := s.cache[obs]; !ok {
		return Section{}, fmt.Errorf("unknown observable %s: %w", obs, ErrObservableMismatch)
	}
	for _, sec := range sections[1:] {
		if sec.obs != obs {
			return Section{}, fmt.Errorf("%s vs %s: %w", obs, sec.obs, ErrObservableMismatch)
		}
	}

	domains := make([]topology.OpenSet, len(sections))
	for i, sec := range sections {
		domains[i] = sec.domain
	}
	common := s.topo.Intersection(domains...)
	if common.IsEmpty() {
		return Section{}, fmt.Errorf("%d sections: %w", len(sections), ErrEmptyOverlap)
	}

	// Agreement on every pairwise overlap.
	for i := 0; i < len(sections); i++ {
		for j := i + 1; j < len(sections); j++ {
			if err := s.checkOverlap(sections[i], sections[j]); err != nil {
				return Section{}, err
			}
		}
	}

	// Merge: union domain, earliest section wins on shared points (the
	// values there are verified equal within tolerance).
	union := s.topo.Union(domains...)
	values := make(map[int]float64, union.Len())
	for _, idx := range union.Indices() {
		for _, sec := range sections {
			if v, ok := sec.ValueAt(idx); ok {
				values[idx] = v
				break
			}
		}
	}
	glued := Section{obs: obs, domain: union, values: values}
	s.cache[obs][union.Key()] = glued

	return glued, nil
}

// checkOverlap verifies that a and b agree on every point both cover.
func (s *Sheaf) checkOverlap(a, b Section) error {
	overlap := s.topo.Intersection(a.domain, b.domain)
	for _, idx := range overlap.Indices() {
		av, _ := a.ValueAt(idx)
		bv, _ := b.ValueAt(idx)
		if !s.valuesAgree(a.obs, av, bv) {
			return fmt.Errorf("point %s (%g vs %g): %w",
				s.topo.Lattice().PointAt(idx), av, bv, ErrOverlapMismatch)
		}
	}

	return nil
}

// valuesAgree compares two section values under the observable's policy:
// exact for SpinValue, |a−b| ≤ Tolerance otherwise.
func (s *Sheaf) valuesAgree(obs Observable, a, b float64) bool {
	if obs.exact() {
		return a == b
	}

	return math.Abs(a-b) <= s.tol
}
