package ising

import (
	"fmt"

	"github.com/ferrohm/spinsheaf/lattice"
)

// localEnergyAt computes the per-site energy for the site at row-major
// index idx: −h·s − J·Σ s·sₙ over its nearest neighbors.
func (m *Model) localEnergyAt(idx int) float64 {
	p := m.lat.PointAt(idx)
	s := m.spins[idx].Value()
	energy := -m.appliedField * s
	nbrs, _ := m.lat.Neighbors(p) // p came from PointAt, always valid
	for _, n := range nbrs {
		ni, _ := m.lat.Index(n)
		energy += -m.coupling * s * m.spins[ni].Value()
	}

	return energy
}

// LocalEnergy returns −h·s(p) − J·Σ s(p)·s(n) over the nearest neighbors n
// of p. Returns lattice.ErrOutOfBounds if p is not valid.
// Complexity: O(D²).
func (m *Model) LocalEnergy(p lattice.Point) (float64, error) {
	idx, err := m.lat.Index(p)
	if err != nil {
		return 0, err
	}

	return m.localEnergyAt(idx), nil
}

// TotalEnergy returns the energy of the whole configuration. The field term
// is summed once per site; the pairwise term is halved relative to the sum
// of per-site local energies, because each bond is visited from both of its
// endpoints. Summing LocalEnergy naively would double-count every bond.
// Complexity: O(N·D²).
func (m *Model) TotalEnergy() float64 {
	var field, pair float64
	for idx := range m.spins {
		s := m.spins[idx].Value()
		field += -m.appliedField * s
		nbrs, _ := m.lat.Neighbors(m.lat.PointAt(idx))
		for _, n := range nbrs {
			ni, _ := m.lat.Index(n)
			pair += -m.coupling * s * m.spins[ni].Value()
		}
	}

	return field + pair/2
}

// Magnetization returns the mean spin value over all sites, in [−1, 1].
// Complexity: O(N).
func (m *Model) Magnetization() float64 {
	var sum float64
	for _, s := range m.spins {
		sum += s.Value()
	}

	return sum / float64(len(m.spins))
}

// Correlation returns the mean of s(p)·s(n) over the nearest neighbors n of
// p, minus Magnetization() squared. Returns lattice.ErrOutOfBounds if p is
// not valid and ErrNoNeighbors if p has no neighbors (the neighbor mean
// would divide by zero; boundary sites always have at least one neighbor,
// so this only occurs on a single-site lattice). Complexity: O(N).
func (m *Model) Correlation(p lattice.Point) (float64, error) {
	idx, err := m.lat.Index(p)
	if err != nil {
		return 0, err
	}
	nbrs, _ := m.lat.Neighbors(p)
	if len(nbrs) == 0 {
		return 0, fmt.Errorf("point %s: %w", p, ErrNoNeighbors)
	}
	s := m.spins[idx].Value()
	var sum float64
	for _, n := range nbrs {
		ni, _ := m.lat.Index(n)
		sum += s * m.spins[ni].Value()
	}
	mag := m.Magnetization()

	return sum/float64(len(nbrs)) - mag*mag, nil
}
