// Package ising implements a classical Ising spin model over a lattice.
//
// What:
//
//   - Model owns one Spin per lattice site (flat row-major storage), the
//     coupling J, the applied field h and the temperature T.
//   - LocalEnergy(p) = −h·s(p) − J·Σ s(p)·s(n) over the nearest neighbors
//     of p, with free boundaries (edge sites have fewer neighbors).
//   - TotalEnergy sums the field term once per site and each pairwise bond
//     exactly once (the neighbor term of the naive per-site sum is halved).
//   - Magnetization is the mean of s over all sites; Correlation(p) is the
//     mean nearest-neighbor product minus Magnetization squared.
//   - MetropolisStep performs the textbook single-site update: flip a
//     uniformly random site, accept when ΔE ≤ 0, otherwise accept with
//     probability exp(−ΔE/(Boltzmann·T)).
//
// Determinism:
//
//	All randomness flows through a single seeded *rand.Rand. Options.Seed
//	selects the stream (seed 0 maps to a fixed default), so identical seeds
//	reproduce identical chains. Clone derives an independent stream for
//	decorrelated parallel chains.
//
// Concurrency:
//
//	A Model is not goroutine-safe. The spin slice is the only mutable
//	state; SetSpin, MetropolisStep and Sweep are the only mutators and are
//	atomic from the caller's perspective. Serialize access externally.
//
// Errors:
//
//   - lattice.ErrOutOfBounds: a supplied point is invalid for the lattice.
//   - ErrNonPositiveTemperature: construction with T ≤ 0.
//   - ErrNoNeighbors: Correlation on a site with zero neighbors.
package ising
