// Package lattice: core types and sentinel errors.
// All errors are package-level sentinels matched via errors.Is; call sites
// add context (the offending point or extent) with fmt.Errorf("...: %w", ...).
package lattice

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for lattice operations.
var (
	// ErrDimensionMismatch indicates an extent whose length disagrees with
	// the lattice dimension, or a fatal construction-time disagreement.
	ErrDimensionMismatch = errors.New("lattice: extent length does not match dimension")
	// ErrBadExtent indicates a non-positive dimension or extent entry.
	ErrBadExtent = errors.New("lattice: dimension and every extent entry must be positive")
	// ErrOutOfBounds indicates a point that is not valid for the lattice.
	ErrOutOfBounds = errors.New("lattice: point outside lattice bounds")
)

// Point is an ordered tuple of non-negative integer coordinates, one per
// lattice axis. Point is a pure value: compare with Equal, order with Less,
// copy with Clone. The zero-length Point is valid only for a (hypothetical)
// zero-dimensional lattice and is rejected by every Lattice in practice.
type Point []int

// Equal reports structural equality: same length, same coordinates.
func (p Point) Equal(q Point) bool {
	if len(p) != len(q) {
		return false
	}
	for d := range p {
		if p[d] != q[d] {
			return false
		}
	}

	return true
}

// Less orders points lexicographically, axis by axis. Shorter tuples sort
// before longer ones when they share a prefix. Used wherever a deterministic
// ordering of points is required.
func (p Point) Less(q Point) bool {
	n := len(p)
	if len(q) < n {
		n = len(q)
	}
	for d := 0; d < n; d++ {
		if p[d] != q[d] {
			return p[d] < q[d]
		}
	}

	return len(p) < len(q)
}

// Clone returns an independent copy of the point.
func (p Point) Clone() Point {
	c := make(Point, len(p))
	copy(c, p)

	return c
}

// String renders the point as "(c0,c1,...)" for diagnostics.
func (p Point) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for d, c := range p {
		if d > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(c))
	}
	b.WriteByte(')')

	return b.String()
}

// wrapOutOfBounds attaches the offending point to ErrOutOfBounds.
func wrapOutOfBounds(p Point) error {
	return fmt.Errorf("point %s: %w", p, ErrOutOfBounds)
}
