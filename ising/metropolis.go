package ising

import "math"

// MetropolisStep performs one single-site Metropolis update:
//
//  1. Draw a site uniformly at random.
//  2. Record E_before = local energy of that site.
//  3. Flip the site's spin.
//  4. ΔE = E_after − E_before.
//  5. If ΔE ≤ 0, keep the flip. Otherwise keep it with probability
//     exp(−ΔE/(Boltzmann·T)), i.e. draw r uniform in [0,1) and keep iff
//     r ≤ exp(−ΔE/(Boltzmann·T)); revert the flip otherwise.
//
// The acceptance probability is min(1, exp(−ΔE/(Boltzmann·T))); in
// particular ΔE == 0 always accepts. The spin count and domain never
// change; only one value may change per step. Complexity: O(D²).
func (m *Model) MetropolisStep() {
	idx := m.rng.Intn(len(m.spins))

	before := m.localEnergyAt(idx)
	m.spins[idx] = m.spins[idx].Flipped()
	delta := m.localEnergyAt(idx) - before

	if delta <= 0 {
		return
	}
	if m.rng.Float64() <= math.Exp(-delta/(Boltzmann*m.temperature)) {
		return
	}
	// Rejected: revert the flip.
	m.spins[idx] = m.spins[idx].Flipped()
}

// Sweep performs n Metropolis steps. Non-positive n is a no-op.
// Complexity: O(n·D²).
func (m *Model) Sweep(n int) {
	for i := 0; i < n; i++ {
		m.MetropolisStep()
	}
}
