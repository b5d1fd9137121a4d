// Package ising: core types, options and sentinel errors.
package ising

import "errors"

// Boltzmann is the Boltzmann constant in J/K. Temperatures passed to New
// are in kelvin; the Metropolis acceptance uses exp(−ΔE/(Boltzmann·T)).
// Callers working in reduced units (k_B = 1) can fold the constant into
// their temperature scale.
const Boltzmann = 1.380649e-23

// Sentinel errors for ising operations. Point-bound failures reuse
// lattice.ErrOutOfBounds so callers match one sentinel across layers.
var (
	// ErrNonPositiveTemperature indicates construction with T <= 0.
	ErrNonPositiveTemperature = errors.New("ising: temperature must be positive")
	// ErrNoNeighbors indicates a correlation request for a site with no
	// neighbors (a 1×…×1 lattice); the neighbor mean is undefined there.
	ErrNoNeighbors = errors.New("ising: site has no neighbors")
)

// Spin is a two-valued site state. Only Up and Down exist; arithmetic maps
// them to +1 and −1 via Value.
type Spin uint8

const (
	// Up is the +1 spin state. The zero value, so fresh spin storage is all-Up.
	Up Spin = iota
	// Down is the −1 spin state.
	Down
)

// Value maps the spin to its numeric value: +1.0 for Up, −1.0 for Down.
func (s Spin) Value() float64 {
	if s == Up {
		return 1.0
	}

	return -1.0
}

// Flipped returns the opposite spin.
func (s Spin) Flipped() Spin {
	if s == Up {
		return Down
	}

	return Up
}

// String renders the spin for diagnostics.
func (s Spin) String() string {
	if s == Up {
		return "Up"
	}

	return "Down"
}

// Options configures a Model.
//
// Fields:
//   - Seed — RNG seed for the Metropolis site/acceptance draws.
//     Seed 0 selects a fixed default stream, so the zero Options value is
//     already deterministic; pass a non-zero seed for an alternate stream.
type Options struct {
	Seed int64
}

// DefaultOptions returns the default Model configuration (Seed 0, i.e. the
// fixed default RNG stream).
func DefaultOptions() Options {
	return Options{Seed: 0}
}
