package lattice

import "fmt"

// Lattice is a finite N-dimensional discrete index space with a fixed
// per-axis extent. A point p is valid iff len(p) == Dimension() and
// 0 <= p[d] < extent[d] on every axis d. The extent is deep-copied at
// construction and on SetExtent, so callers cannot mutate it from outside.
type Lattice struct {
	dimension int
	extent    []int
	// strides[d] is the row-major weight of axis d; the last axis varies
	// fastest, so strides[dimension-1] == 1.
	strides []int
	total   int
}

// New constructs a Lattice of the given dimension and per-axis extent.
// Returns ErrBadExtent if dimension < 1 or any extent entry < 1, and
// ErrDimensionMismatch if len(extent) != dimension.
// Complexity: O(D).
func New(dimension int, extent []int) (*Lattice, error) {
	if dimension < 1 {
		return nil, fmt.Errorf("dimension %d: %w", dimension, ErrBadExtent)
	}
	l := &Lattice{dimension: dimension}
	if err := l.SetExtent(extent); err != nil {
		return nil, err
	}

	return l, nil
}

// SetExtent replaces the per-axis extent. Returns ErrDimensionMismatch if
// len(extent) != Dimension(), ErrBadExtent if any entry < 1. The input is
// deep-copied. Models and topologies built against the old extent are not
// adjusted; resizing a lattice that is already shared is caller misuse.
// Complexity: O(D).
func (l *Lattice) SetExtent(extent []int) error {
	if len(extent) != l.dimension {
		return fmt.Errorf("extent length %d, dimension %d: %w", len(extent), l.dimension, ErrDimensionMismatch)
	}
	for d, e := range extent {
		if e < 1 {
			return fmt.Errorf("extent[%d]=%d: %w", d, e, ErrBadExtent)
		}
	}
	l.extent = make([]int, l.dimension)
	copy(l.extent, extent)

	// Recompute row-major strides and the total point count.
	l.strides = make([]int, l.dimension)
	stride := 1
	for d := l.dimension - 1; d >= 0; d-- {
		l.strides[d] = stride
		stride *= l.extent[d]
	}
	l.total = stride

	return nil
}

// Dimension returns the number of axes.
func (l *Lattice) Dimension() int { return l.dimension }

// Extent returns a copy of the per-axis extent.
func (l *Lattice) Extent() []int {
	e := make([]int, l.dimension)
	copy(e, l.extent)

	return e
}

// NumPoints returns the total number of valid points (the product of the
// extents). Complexity: O(1).
func (l *Lattice) NumPoints() int { return l.total }

// Contains reports whether p is a valid point: correct tuple length and
// every coordinate within [0, extent[d]). Complexity: O(D).
func (l *Lattice) Contains(p Point) bool {
	if len(p) != l.dimension {
		return false
	}
	for d, c := range p {
		if c < 0 || c >= l.extent[d] {
			return false
		}
	}

	return true
}

// Index maps a valid point to its dense row-major index in [0, NumPoints()).
// Returns ErrOutOfBounds for invalid points. Complexity: O(D).
func (l *Lattice) Index(p Point) (int, error) {
	if !l.Contains(p) {
		return 0, wrapOutOfBounds(p)
	}
	idx := 0
	for d, c := range p {
		idx += c * l.strides[d]
	}

	return idx, nil
}

// PointAt maps a row-major index back to its point. The index must be in
// [0, NumPoints()); out-of-range indices are a programmer error and panic.
// Complexity: O(D).
func (l *Lattice) PointAt(idx int) Point {
	if idx < 0 || idx >= l.total {
		panic(fmt.Sprintf("lattice: PointAt index %d out of range [0,%d)", idx, l.total))
	}
	p := make(Point, l.dimension)
	for d := 0; d < l.dimension; d++ {
		p[d] = idx / l.strides[d]
		idx %= l.strides[d]
	}

	return p
}

// AllPoints enumerates every valid point in row-major order (axis 0
// outermost, last axis varying fastest). The order is fixed and
// deterministic; position i equals PointAt(i). For iteration without
// materializing the slice, loop over [0, NumPoints()) with PointAt.
// Complexity: O(N·D) time and memory.
func (l *Lattice) AllPoints() []Point {
	pts := make([]Point, l.total)
	for i := 0; i < l.total; i++ {
		pts[i] = l.PointAt(i)
	}

	return pts
}

// Neighbors returns every valid point at Manhattan (L1) distance exactly 1
// from p: one step along a single axis in either direction. Boundaries are
// free, so edge sites have fewer neighbors than interior sites; the count is
// between D and 2·D. The relation is symmetric. Returns ErrOutOfBounds for
// invalid p. Complexity: O(D²) time, O(D) candidates.
func (l *Lattice) Neighbors(p Point) ([]Point, error) {
	if !l.Contains(p) {
		return nil, wrapOutOfBounds(p)
	}
	nbrs := make([]Point, 0, 2*l.dimension)
	for d := 0; d < l.dimension; d++ {
		for _, step := range [2]int{-1, +1} {
			c := p[d] + step
			if c < 0 || c >= l.extent[d] {
				continue
			}
			n := p.Clone()
			n[d] = c
			nbrs = append(nbrs, n)
		}
	}

	return nbrs, nil
}
