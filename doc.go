// Package spinsheaf is an in-memory toolkit for simulating Ising-type spin
// models on arbitrary-dimensional lattices and for reasoning about the
// locality of derived observables through a point-set-topology/sheaf layer.
//
// What lives where:
//
//	lattice/  — N-dimensional discrete index space: points, bounds checks,
//	            row-major enumeration, nearest-neighbor geometry
//	ising/    — the spin engine: spin state, local/total energy,
//	            magnetization, spin-spin correlation, Metropolis updates
//	topology/ — a basis of open subsets of the lattice with union,
//	            intersection, openness/closedness tests, neighborhoods
//	            and closures
//	sheaf/    — per-observable data sections over open sets, with
//	            restriction to subregions and consistency-checked gluing
//
// Why spinsheaf?
//
//   - Deterministic by default — seeded RNG streams, reproducible chains
//   - Explicit error surface — sentinel errors, errors.Is everywhere,
//     no panics on caller mistakes
//   - Pure Go core — no cgo, no I/O, no hidden dependencies
//
// Data flows one way: lattice geometry feeds both the spin model and the
// topology; the sheaf snapshots the spin model at construction and is a
// read-only derived view from then on. Nothing in the core touches disk or
// network; persistence, plotting and run orchestration are left to callers
// via the public accessors.
//
// Quick sketch (2×2 lattice, free boundaries):
//
//	(0,0)──(0,1)
//	  │      │
//	(1,0)──(1,1)
//
//	lat, _ := lattice.New(2, []int{2, 2})
//	m, _ := ising.New(lat, 1.0, 0.0, 300, nil)
//	topo := topology.New(lat)
//	sh, _ := sheaf.New(topo, m, nil)
//
// See each subpackage's doc.go for the full contract.
package spinsheaf
