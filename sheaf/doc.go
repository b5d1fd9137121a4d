// Package sheaf assigns local observable data to open sets of a lattice
// topology and enforces the sheaf laws on it.
//
// What:
//
//   - Observable names a scalar derived quantity of a spin model: Energy,
//     SpinValue or Correlation.
//   - Section is the data of one observable over one open set: a value per
//     member point, no more and no fewer.
//   - Sheaf computes one Section per (observable, basis element) pair from
//     a spin-model snapshot at construction and caches every section it
//     later derives. It never re-reads the model unless Rebuild is called:
//     a Sheaf is a snapshot view, and staleness after further Metropolis
//     steps is the caller's responsibility.
//
// Operations:
//
//   - SectionOver assembles the section on an arbitrary open set from the
//     cached basis sections.
//   - Restrict projects a section onto a subset; values are filtered, never
//     recomputed.
//   - Glue merges sections of the same observable defined on overlapping
//     open sets, but only when they agree on every shared point: exact
//     equality for SpinValue, equality within Options.Tolerance for Energy
//     and Correlation (the default tolerance is 1e-9). Agreement is checked
//     on every pairwise overlap, which makes gluing commutative and
//     associative: merging {A,B} and then C gives the same section, and the
//     same failures, as merging {A,B,C} at once.
//
// Errors:
//
//   - ErrNotASubset: restriction target escapes its source open set.
//   - ErrPointNotCovered: an open set reaches a point no cached basis
//     section covers.
//   - ErrEmptyOverlap: gluing sections whose open sets share no point.
//   - ErrOverlapMismatch: gluing sections that disagree on a shared point.
//   - ErrObservableMismatch: gluing sections of different observables.
//   - ErrSectionDomain: a hand-built section's values do not match its set.
//   - ErrNilTopology, ErrNilModel: construction with missing collaborators.
package sheaf
