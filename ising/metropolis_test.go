package ising_test

import (
	"testing"

	"github.com/ferrohm/spinsheaf/ising"
	"github.com/ferrohm/spinsheaf/lattice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spinsOf snapshots the configuration in row-major order.
func spinsOf(t *testing.T, m *ising.Model) []ising.Spin {
	t.Helper()
	lat := m.Lattice()
	out := make([]ising.Spin, 0, lat.NumPoints())
	for _, p := range lat.AllPoints() {
		s, err := m.GetSpin(p)
		require.NoError(t, err)
		out = append(out, s)
	}

	return out
}

// TestMetropolisStep_PreservesDomain: the step changes values only, never
// the number of spins or their domain.
func TestMetropolisStep_PreservesDomain(t *testing.T) {
	lat := mustLattice(t, 2, []int{3, 3})
	m := mustModel(t, lat, 1, 0.5, 400, nil)

	before := m.NumSpins()
	for i := 0; i < 500; i++ {
		m.MetropolisStep()
	}
	assert.Equal(t, before, m.NumSpins(), "spin count before == after")
	for _, p := range lat.AllPoints() {
		_, err := m.GetSpin(p)
		assert.NoError(t, err, "every lattice point keeps a spin")
	}
}

// TestMetropolisStep_Deterministic: identical seeds reproduce identical chains.
func TestMetropolisStep_Deterministic(t *testing.T) {
	lat := mustLattice(t, 2, []int{4, 4})
	a := mustModel(t, lat, 1, -0.5, 350, &ising.Options{Seed: 42})
	b := mustModel(t, lat, 1, -0.5, 350, &ising.Options{Seed: 42})

	a.Sweep(300)
	b.Sweep(300)
	assert.Equal(t, spinsOf(t, a), spinsOf(t, b), "same seed must give the same chain")
}

// TestSweep_EqualsRepeatedSteps: Sweep(n) is exactly n MetropolisSteps.
func TestSweep_EqualsRepeatedSteps(t *testing.T) {
	lat := mustLattice(t, 1, []int{6})
	a := mustModel(t, lat, 1, 0.25, 300, &ising.Options{Seed: 9})
	b := mustModel(t, lat, 1, 0.25, 300, &ising.Options{Seed: 9})

	a.Sweep(80)
	for i := 0; i < 80; i++ {
		b.MetropolisStep()
	}
	assert.Equal(t, spinsOf(t, a), spinsOf(t, b))
}

// TestMetropolisStep_AcceptsDownhill: with h=-1 and J=0 on a single site,
// flipping Up→Down lowers the energy, so the first step must keep the flip.
func TestMetropolisStep_AcceptsDownhill(t *testing.T) {
	lat := mustLattice(t, 1, []int{1})
	m := mustModel(t, lat, 0, -1, 300, nil)

	m.MetropolisStep()
	s, err := m.GetSpin(lattice.Point{0})
	require.NoError(t, err)
	assert.Equal(t, ising.Down, s, "ΔE<0 must always accept")
}

// TestMetropolisStep_AcceptsZeroDelta: with J=0 and h=0 every flip has
// ΔE == 0 and must be accepted (probability 1, not a revert). On a single
// site the configuration therefore alternates every step.
func TestMetropolisStep_AcceptsZeroDelta(t *testing.T) {
	lat := mustLattice(t, 1, []int{1})
	m := mustModel(t, lat, 0, 0, 300, nil)

	want := ising.Up
	for i := 0; i < 10; i++ {
		m.MetropolisStep()
		want = want.Flipped()
		s, err := m.GetSpin(lattice.Point{0})
		require.NoError(t, err)
		assert.Equal(t, want, s, "step %d must flip on ΔE==0", i+1)
	}
}

// TestMetropolisStep_RejectsUphillAtPhysicalScale: from the all-Up ground
// state with J=1, h=0 every flip raises the energy, and at T=300 K the
// Boltzmann factor exp(−ΔE/(k·T)) underflows to zero, so the configuration
// must stay in the ground state.
func TestMetropolisStep_RejectsUphillAtPhysicalScale(t *testing.T) {
	lat := mustLattice(t, 2, []int{3, 3})
	m := mustModel(t, lat, 1, 0, 300, &ising.Options{Seed: 3})

	groundEnergy := m.TotalEnergy()
	assert.Equal(t, -12.0, groundEnergy, "3×3 grid has 12 bonds")

	m.Sweep(200)
	assert.Equal(t, 1.0, m.Magnetization(), "ground state must survive uphill-only proposals")
	assert.Equal(t, groundEnergy, m.TotalEnergy())
}

// TestClone_IndependentChains: a clone evolves without disturbing the
// original, and cloning is deterministic for a deterministic parent.
func TestClone_IndependentChains(t *testing.T) {
	lat := mustLattice(t, 1, []int{1})
	m := mustModel(t, lat, 0, 0, 300, &ising.Options{Seed: 11})
	c := m.Clone()

	c.Sweep(3) // ΔE==0 everywhere: flips every step, ends Down
	s, err := c.GetSpin(lattice.Point{0})
	require.NoError(t, err)
	assert.Equal(t, ising.Down, s)

	s, err = m.GetSpin(lattice.Point{0})
	require.NoError(t, err)
	assert.Equal(t, ising.Up, s, "parent spins must be untouched by the clone's chain")
}
