package sheaf

import (
	"fmt"

	"github.com/ferrohm/spinsheaf/ising"
	"github.com/ferrohm/spinsheaf/lattice"
	"github.com/ferrohm/spinsheaf/topology"
)

// Sheaf holds, for each observable, cached sections over open sets of one
// topology, all computed from a single spin-model snapshot. Basis sections
// are stored in arena order next to a by-key cache of every derived
// section, so nothing aliases the topology's basis storage.
//
// The Sheaf never mutates the model or the topology, and it does not
// re-read the model after construction: mutate the model, then call
// Rebuild to take a fresh snapshot.
type Sheaf struct {
	topo *topology.Topology
	tol  float64
	// basis[obs] mirrors the topology's basis arena at (re)build time.
	basis map[Observable][]Section
	// cache[obs] is keyed by OpenSet.Key and holds basis and derived sections.
	cache map[Observable]map[string]Section
}

// New constructs a Sheaf over topo, computing and caching a section for
// every observable and every basis open set by evaluating the observable at
// each member point of model. A nil opts selects DefaultOptions.
// Returns ErrNilTopology/ErrNilModel on missing collaborators and
// propagates evaluation failures (ising.ErrNoNeighbors on a single-site
// lattice's Correlation). Complexity: O(O·B·S·D²).
func New(topo *topology.Topology, model *ising.Model, opts *Options) (*Sheaf, error) {
	if topo == nil {
		return nil, ErrNilTopology
	}
	o := DefaultOptions()
	if opts != nil && opts.Tolerance > 0 {
		o = *opts
	}
	s := &Sheaf{topo: topo, tol: o.Tolerance}
	if err := s.Rebuild(model); err != nil {
		return nil, err
	}

	return s, nil
}

// Topology returns the owning topology.
func (s *Sheaf) Topology() *topology.Topology { return s.topo }

// Tolerance returns the overlap comparison tolerance for Energy and
// Correlation sections.
func (s *Sheaf) Tolerance() float64 { return s.tol }

// Rebuild discards every cached section and recomputes the basis sections
// from a fresh snapshot of model. Basis elements added to the topology
// since the last build are picked up. Complexity: O(O·B·S·D²).
func (s *Sheaf) Rebuild(model *ising.Model) error {
	if model == nil {
		return ErrNilModel
	}
	basis := make(map[Observable][]Section, len(Observables()))
	cache := make(map[Observable]map[string]Section, len(Observables()))
	for _, obs := range Observables() {
		cache[obs] = make(map[string]Section)
		for _, set := range s.topo.Basis() {
			sec, err := computeSection(model, obs, set)
			if err != nil {
				return err
			}
			basis[obs] = append(basis[obs], sec)
			cache[obs][set.Key()] = sec
		}
	}
	s.basis = basis
	s.cache = cache

	return nil
}

// computeSection evaluates obs at every point of set against model.
func computeSection(model *ising.Model, obs Observable, set topology.OpenSet) (Section, error) {
	values := make(map[int]float64, set.Len())
	for _, idx := range set.Indices() {
		v, err := evaluate(model, obs, model.Lattice().PointAt(idx))
		if err != nil {
			return Section{}, err
		}
		values[idx] = v
	}

	return Section{obs: obs, domain: set, values: values}, nil
}

// evaluate computes one observable at one point.
func evaluate(model *ising.Model, obs Observable, p lattice.Point) (float64, error) {
	switch obs {
	case Energy:
		return model.LocalEnergy(p)
	case SpinValue:
		sp, err := model.GetSpin(p)
		if err != nil {
			return 0, err
		}
		return sp.Value(), nil
	case Correlation:
		return model.Correlation(p)
	default:
		return 0, fmt.Errorf("observable %s: %w", obs, ErrObservableMismatch)
	}
}

// SectionOver returns the section of obs over set. Cached sections are
// returned as-is; otherwise the section is assembled point by point from
// the cached basis sections (first basis element covering each point, in
// arena order) and cached for reuse. Returns ErrPointNotCovered (naming the
// point) if some point of set lies in no cached basis section.
// Complexity: O(S·B) on a cache miss.
func (s *Sheaf) SectionOver(set topology.OpenSet, obs Observable) (Section, error) {
	if _, ok := s.cache[obs]; !ok {
		return Section{}, fmt.Errorf("unknown observable %s: %w", obs, ErrObservableMismatch)
	}
	if sec, ok := s.cache[obs][set.Key()]; ok {
		return sec, nil
	}
	values := make(map[int]float64, set.Len())
	for _, idx := range set.Indices() {
		covered := false
		for _, bsec := range s.basis[obs] {
			if v, ok := bsec.ValueAt(idx); ok {
				values[idx] = v
				covered = true
				break
			}
		}
		if !covered {
			return Section{}, fmt.Errorf("point %s: %w", set.Lattice().PointAt(idx), ErrPointNotCovered)
		}
	}
	sec := Section{obs: obs, domain: set, values: values}
	s.cache[obs][set.Key()] = sec

	return sec, nil
}

// Restrict returns the section of obs over set filtered down to target — a
// pure projection: values are reused, never recomputed. Returns
// ErrNotASubset unless every point of target lies in set. The result is
// cached under target. Complexity: O(S).
func (s *Sheaf) Restrict(set topology.OpenSet, obs Observable, target topology.OpenSet) (Section, error) {
	for _, idx := range target.Indices() {
		if !set.ContainsIndex(idx) {
			return Section{}, fmt.Errorf("point %s escapes the source: %w",
				target.Lattice().PointAt(idx), ErrNotASubset)
		}
	}
	src, err := s.SectionOver(set, obs)
	if err != nil {
		return Section{}, err
	}
	values := make(map[int]float64, target.Len())
	for _, idx := range target.Indices() {
		v, _ := src.ValueAt(idx) // target ⊆ set and src covers set exactly
		values[idx] = v
	}
	sec := Section{obs: obs, domain: target, values: values}
	s.cache[obs][target.Key()] = sec

	return sec, nil
}
