package ising

import (
	"fmt"
	"math/rand"

	"github.com/ferrohm/spinsheaf/lattice"
)

// Model is an Ising spin system over a lattice. It owns exactly one Spin per
// valid lattice point for its entire lifetime (stored row-major, so
// spins[i] belongs to lat.PointAt(i)), plus the physical parameters and a
// private deterministic RNG. Mutate only through SetSpin, MetropolisStep
// and Sweep.
type Model struct {
	lat          *lattice.Lattice
	spins        []Spin
	coupling     float64
	appliedField float64
	temperature  float64
	rng          *rand.Rand
	// clones counts derived chains; used as the stream id in Clone.
	clones uint64
}

// New constructs a fully populated Model with every spin Up.
// coupling is J, appliedField is h, temperature is T in kelvin.
// Returns ErrNonPositiveTemperature if temperature <= 0.
// A nil opts selects DefaultOptions. Complexity: O(N).
func New(lat *lattice.Lattice, coupling, appliedField, temperature float64, opts *Options) (*Model, error) {
	if temperature <= 0 {
		return nil, fmt.Errorf("T=%g: %w", temperature, ErrNonPositiveTemperature)
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	// Up is the Spin zero value, so the fresh slice is already all-Up.
	return &Model{
		lat:          lat,
		spins:        make([]Spin, lat.NumPoints()),
		coupling:     coupling,
		appliedField: appliedField,
		temperature:  temperature,
		rng:          rngFromSeed(o.Seed),
	}, nil
}

// Lattice returns the owning lattice.
func (m *Model) Lattice() *lattice.Lattice { return m.lat }

// Coupling returns J.
func (m *Model) Coupling() float64 { return m.coupling }

// AppliedField returns h.
func (m *Model) AppliedField() float64 { return m.appliedField }

// Temperature returns T in kelvin.
func (m *Model) Temperature() float64 { return m.temperature }

// NumSpins returns the number of stored spins; always equal to
// Lattice().NumPoints().
func (m *Model) NumSpins() int { return len(m.spins) }

// GetSpin returns the spin at p. Returns lattice.ErrOutOfBounds if p is not
// valid for the lattice. Complexity: O(D).
func (m *Model) GetSpin(p lattice.Point) (Spin, error) {
	idx, err := m.lat.Index(p)
	if err != nil {
		return Up, err
	}

	return m.spins[idx], nil
}

// SetSpin unconditionally replaces the spin at p (idempotent). Returns
// lattice.ErrOutOfBounds if p is not valid. Complexity: O(D).
func (m *Model) SetSpin(p lattice.Point, s Spin) error {
	idx, err := m.lat.Index(p)
	if err != nil {
		return err
	}
	m.spins[idx] = s

	return nil
}

// Neighbors returns the lattice points at Manhattan distance exactly 1 from
// p. The relation is symmetric. Returns lattice.ErrOutOfBounds if p is not
// valid. Complexity: O(D²).
func (m *Model) Neighbors(p lattice.Point) ([]lattice.Point, error) {
	return m.lat.Neighbors(p)
}

// Aligned returns, in row-major order, every lattice point whose spin
// currently equals s. Feeding the result to topology.NewOpenSet yields the
// open set of the s-aligned cluster. Complexity: O(N·D).
func (m *Model) Aligned(s Spin) []lattice.Point {
	var pts []lattice.Point
	for i, sp := range m.spins {
		if sp == s {
			pts = append(pts, m.lat.PointAt(i))
		}
	}

	return pts
}

// Clone returns a deep copy of the model with an independently derived RNG
// stream, so the copy's chain decorrelates from the original's. Deriving
// advances the parent RNG by one draw. Complexity: O(N).
func (m *Model) Clone() *Model {
	spins := make([]Spin, len(m.spins))
	copy(spins, m.spins)
	m.clones++

	return &Model{
		lat:          m.lat,
		spins:        spins,
		coupling:     m.coupling,
		appliedField: m.appliedField,
		temperature:  m.temperature,
		rng:          deriveRNG(m.rng, m.clones),
	}
}
