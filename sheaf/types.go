// Package sheaf: observables, sections, options and sentinel errors.
package sheaf

import (
	"errors"
	"fmt"

	"github.com/ferrohm/spinsheaf/lattice"
	"github.com/ferrohm/spinsheaf/topology"
)

// Sentinel errors for sheaf operations. Call sites attach the offending
// point or open sets with fmt.Errorf("...: %w", ...).
var (
	// ErrNotASubset indicates a restriction target not contained in its source.
	ErrNotASubset = errors.New("sheaf: target is not a subset of the source open set")
	// ErrPointNotCovered indicates a point of an open set that no cached
	// basis section covers.
	ErrPointNotCovered = errors.New("sheaf: point not covered by any basis section")
	// ErrEmptyOverlap indicates a glue request over open sets with empty
	// common intersection.
	ErrEmptyOverlap = errors.New("sheaf: open sets do not overlap")
	// ErrOverlapMismatch indicates glue candidates that disagree on a shared point.
	ErrOverlapMismatch = errors.New("sheaf: sections disagree on overlap")
	// ErrObservableMismatch indicates glue inputs carrying different observables.
	ErrObservableMismatch = errors.New("sheaf: sections carry different observables")
	// ErrSectionDomain indicates section values whose domain is not exactly
	// the section's open set.
	ErrSectionDomain = errors.New("sheaf: section domain does not match its open set")
	// ErrNilTopology indicates construction without a topology.
	ErrNilTopology = errors.New("sheaf: topology is nil")
	// ErrNilModel indicates construction or rebuild without a model.
	ErrNilModel = errors.New("sheaf: model is nil")
)

// Observable identifies which scalar derived quantity a section carries.
type Observable int

const (
	// Energy is the per-site local energy −h·s − J·Σ s·sₙ.
	Energy Observable = iota
	// SpinValue is the numeric spin, +1 or −1.
	SpinValue
	// Correlation is the mean nearest-neighbor product minus the squared
	// magnetization.
	Correlation
)

// Observables returns all observables in build order.
func Observables() []Observable {
	return []Observable{Energy, SpinValue, Correlation}
}

// String renders the observable for diagnostics.
func (o Observable) String() string {
	switch o {
	case Energy:
		return "Energy"
	case SpinValue:
		return "Spin"
	case Correlation:
		return "Correlation"
	default:
		return fmt.Sprintf("Observable(%d)", int(o))
	}
}

// exact reports whether the observable compares exactly when gluing.
// SpinValue is ±1 and admits no tolerance.
func (o Observable) exact() bool { return o == SpinValue }

// DefaultTolerance is the floating-point tolerance used to compare Energy
// and Correlation values on glue overlaps when Options do not override it.
const DefaultTolerance = 1e-9

// Options configures a Sheaf.
//
// Fields:
//   - Tolerance — maximum absolute difference under which two Energy or
//     Correlation values count as equal during gluing. SpinValue always
//     compares exactly. Non-positive values fall back to DefaultTolerance.
type Options struct {
	Tolerance float64
}

// DefaultOptions returns the default Sheaf configuration.
func DefaultOptions() Options {
	return Options{Tolerance: DefaultTolerance}
}

// Section is the data of one observable over one open set: a real value for
// every member point, keyed by the point's row-major index. A Section is
// immutable after construction.
type Section struct {
	obs    Observable
	domain topology.OpenSet
	values map[int]float64
}

// NewSection builds a section over set from explicit values keyed by
// row-major index. The domain of values must be exactly the set: every
// member covered, no extraneous entries. Returns ErrSectionDomain otherwise.
// The map is copied. Complexity: O(S).
func NewSection(set topology.OpenSet, obs Observable, values map[int]float64) (Section, error) {
	if len(values) != set.Len() {
		return Section{}, fmt.Errorf("%d values over %d points: %w", len(values), set.Len(), ErrSectionDomain)
	}
	copied := make(map[int]float64, len(values))
	for idx, v := range values {
		if !set.ContainsIndex(idx) {
			return Section{}, fmt.Errorf("index %d outside set: %w", idx, ErrSectionDomain)
		}
		copied[idx] = v
	}

	return Section{obs: obs, domain: set, values: copied}, nil
}

// Observable returns the quantity the section carries.
func (s Section) Observable() Observable { return s.obs }

// Domain returns the open set the section is defined on.
func (s Section) Domain() topology.OpenSet { return s.domain }

// Len returns the number of point values.
func (s Section) Len() int { return len(s.values) }

// Value returns the section's value at p. Returns ErrPointNotCovered
// (naming the point) if p is not in the section's domain.
func (s Section) Value(p lattice.Point) (float64, error) {
	idx, err := s.domain.Lattice().Index(p)
	if err != nil {
		return 0, fmt.Errorf("point %s: %w", p, ErrPointNotCovered)
	}
	v, ok := s.values[idx]
	if !ok {
		return 0, fmt.Errorf("point %s: %w", p, ErrPointNotCovered)
	}

	return v, nil
}

// ValueAt returns the value at a row-major index and whether it exists.
func (s Section) ValueAt(idx int) (float64, bool) {
	v, ok := s.values[idx]

	return v, ok
}
