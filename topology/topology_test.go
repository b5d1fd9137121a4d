package topology_test

import (
	"testing"

	"github.com/ferrohm/spinsheaf/lattice"
	"github.com/ferrohm/spinsheaf/topology"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustLattice builds a lattice or fails the test.
func mustLattice(t *testing.T, dim int, extent []int) *lattice.Lattice {
	t.Helper()
	lat, err := lattice.New(dim, extent)
	require.NoError(t, err)

	return lat
}

// mustSet builds an open set or fails the test.
func mustSet(t *testing.T, lat *lattice.Lattice, pts ...lattice.Point) topology.OpenSet {
	t.Helper()
	s, err := topology.NewOpenSet(lat, pts...)
	require.NoError(t, err)

	return s
}

// row returns the open set {(r,0),(r,1)} of a 2-column lattice row.
func row(t *testing.T, lat *lattice.Lattice, r int) topology.OpenSet {
	t.Helper()

	return mustSet(t, lat, lattice.Point{r, 0}, lattice.Point{r, 1})
}

//----------------------------------------------------------------------------//
// OpenSet
//----------------------------------------------------------------------------//

// TestNewOpenSet_ValidationAndDedup covers bounds checking and set semantics.
func TestNewOpenSet_ValidationAndDedup(t *testing.T) {
	lat := mustLattice(t, 2, []int{2, 2})

	_, err := topology.NewOpenSet(lat, lattice.Point{2, 0})
	assert.ErrorIs(t, err, lattice.ErrOutOfBounds, "foreign points must be rejected")

	s := mustSet(t, lat, lattice.Point{0, 1}, lattice.Point{0, 1}, lattice.Point{1, 0})
	assert.Equal(t, 2, s.Len(), "duplicates are meaningless")
	assert.True(t, s.Contains(lattice.Point{0, 1}))
	assert.False(t, s.Contains(lattice.Point{0, 0}))
	assert.False(t, s.Contains(lattice.Point{5, 5}), "invalid points are never members")
}

// TestOpenSet_OrderIndependence: membership, equality and the canonical key
// ignore construction order.
func TestOpenSet_OrderIndependence(t *testing.T) {
	lat := mustLattice(t, 1, []int{5})

	a := mustSet(t, lat, lattice.Point{3}, lattice.Point{0}, lattice.Point{4})
	b := mustSet(t, lat, lattice.Point{4}, lattice.Point{3}, lattice.Point{0})

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Key(), b.Key())
	assert.Equal(t, "0,3,4", a.Key(), "key is the ascending index form")
	assert.Equal(t, []int{0, 3, 4}, a.Indices(), "stable ascending iteration order")

	pts := a.Points()
	require.Len(t, pts, 3)
	assert.True(t, pts[0].Equal(lattice.Point{0}))
	assert.True(t, pts[2].Equal(lattice.Point{4}))
}

// TestOpenSet_EmptyAndClone covers the empty set and copy independence.
func TestOpenSet_EmptyAndClone(t *testing.T) {
	lat := mustLattice(t, 1, []int{3})

	empty := mustSet(t, lat)
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, "", empty.Key())

	s := mustSet(t, lat, lattice.Point{1})
	c := s.Clone()
	assert.True(t, s.Equal(c))
}

//----------------------------------------------------------------------------//
// Topology basis arena
//----------------------------------------------------------------------------//

// TestNew_SeedsEmptyAndFull: every Topology starts with ∅ and the full set.
func TestNew_SeedsEmptyAndFull(t *testing.T) {
	lat := mustLattice(t, 2, []int{2, 3})
	topo := topology.New(lat)

	require.Equal(t, 2, topo.BasisLen())
	assert.True(t, topo.EmptySet().IsEmpty())
	assert.Equal(t, lat.NumPoints(), topo.FullSet().Len())
	for _, p := range lat.AllPoints() {
		assert.True(t, topo.FullSet().Contains(p), "full set must contain %v", p)
	}
}

// TestAddBasisElement_ArenaIndexing: append-only arena with duplicate collapse.
func TestAddBasisElement_ArenaIndexing(t *testing.T) {
	lat := mustLattice(t, 2, []int{2, 2})
	topo := topology.New(lat)

	r0 := row(t, lat, 0)
	i0 := topo.AddBasisElement(r0)
	assert.Equal(t, 2, i0, "first added element follows the two seeds")
	assert.Equal(t, 3, topo.BasisLen())

	// Re-adding an equal set collapses to the existing index.
	again := mustSet(t, lat, lattice.Point{0, 1}, lattice.Point{0, 0})
	assert.Equal(t, i0, topo.AddBasisElement(again))
	assert.Equal(t, 3, topo.BasisLen(), "basis never grows on duplicates")

	got, err := topo.BasisElement(i0)
	require.NoError(t, err)
	assert.True(t, got.Equal(r0))

	_, err = topo.BasisElement(99)
	assert.ErrorIs(t, err, topology.ErrBasisIndex)
	_, err = topo.BasisElement(-1)
	assert.ErrorIs(t, err, topology.ErrBasisIndex)
}

//----------------------------------------------------------------------------//
// Set algebra
//----------------------------------------------------------------------------//

// TestUnionIntersection covers dedup union and the empty-input conventions.
func TestUnionIntersection(t *testing.T) {
	lat := mustLattice(t, 1, []int{4})
	topo := topology.New(lat)

	a := mustSet(t, lat, lattice.Point{0}, lattice.Point{1})
	b := mustSet(t, lat, lattice.Point{1}, lattice.Point{2})

	u := topo.Union(a, b)
	assert.Equal(t, "0,1,2", u.Key(), "union deduplicates the shared point")

	i := topo.Intersection(a, b)
	assert.Equal(t, "1", i.Key())

	assert.True(t, topo.Union().IsEmpty(), "empty union is ∅")
	assert.True(t, topo.Intersection().IsEmpty(), "intersection of no sets is ∅ by convention")

	disjoint := topo.Intersection(a, mustSet(t, lat, lattice.Point{3}))
	assert.True(t, disjoint.IsEmpty())
}

// TestUnionIntersection_Associativity: pairwise and batched application agree.
func TestUnionIntersection_Associativity(t *testing.T) {
	lat := mustLattice(t, 1, []int{6})
	topo := topology.New(lat)

	a := mustSet(t, lat, lattice.Point{0}, lattice.Point{1}, lattice.Point{2})
	b := mustSet(t, lat, lattice.Point{1}, lattice.Point{2}, lattice.Point{3})
	c := mustSet(t, lat, lattice.Point{2}, lattice.Point{3}, lattice.Point{4})

	assert.True(t, topo.Union(topo.Union(a, b), c).Equal(topo.Union(a, b, c)))
	assert.True(t, topo.Intersection(topo.Intersection(a, b), c).Equal(topo.Intersection(a, b, c)))
}

//----------------------------------------------------------------------------//
// Openness, closedness, neighborhoods, closure
//----------------------------------------------------------------------------//

// TestIsOpen_EmptyAndFull: the two seeded sets are open for any topology.
func TestIsOpen_EmptyAndFull(t *testing.T) {
	lat := mustLattice(t, 2, []int{2, 2})
	topo := topology.New(lat)
	topo.AddBasisElement(row(t, lat, 0))
	topo.AddBasisElement(row(t, lat, 1))

	assert.True(t, topo.IsOpen(topo.EmptySet()))
	assert.True(t, topo.IsOpen(topo.FullSet()))
}

// TestIsOpen_RefinementTest: the basis-refinement rule rejects any proper
// nonempty subset, because the mandatory full-lattice element is neither
// contained in it nor disjoint from it.
func TestIsOpen_RefinementTest(t *testing.T) {
	lat := mustLattice(t, 2, []int{2, 2})
	topo := topology.New(lat)
	r0 := row(t, lat, 0)
	topo.AddBasisElement(r0)

	assert.False(t, topo.IsOpen(r0), "full-lattice basis element straddles every proper subset")
	assert.False(t, topo.IsOpen(mustSet(t, lat, lattice.Point{0, 0})))
}

// TestIsClosed mirrors openness through the complement.
func TestIsClosed(t *testing.T) {
	lat := mustLattice(t, 2, []int{2, 2})
	topo := topology.New(lat)
	r0 := row(t, lat, 0)
	topo.AddBasisElement(r0)

	assert.True(t, topo.IsClosed(topo.EmptySet()), "complement of ∅ is the full set, which is open")
	assert.True(t, topo.IsClosed(topo.FullSet()))
	assert.False(t, topo.IsClosed(r0), "complement of a row is a proper subset")
}

// TestOpenNeighborhood: the union of basis elements containing the point;
// with the mandatory full set in the basis it is always the whole lattice.
func TestOpenNeighborhood(t *testing.T) {
	lat := mustLattice(t, 2, []int{2, 2})
	topo := topology.New(lat)
	topo.AddBasisElement(row(t, lat, 0))

	hood, err := topo.OpenNeighborhood(lattice.Point{0, 0})
	require.NoError(t, err)
	assert.True(t, hood.Equal(topo.FullSet()))

	_, err = topo.OpenNeighborhood(lattice.Point{2, 2})
	assert.ErrorIs(t, err, lattice.ErrOutOfBounds)
}

// TestClosure: neighborhoods always include the full set, so any nonempty
// set closes to the whole lattice and ∅ closes to ∅.
func TestClosure(t *testing.T) {
	lat := mustLattice(t, 2, []int{2, 2})
	topo := topology.New(lat)
	topo.AddBasisElement(row(t, lat, 0))

	assert.True(t, topo.Closure(topo.EmptySet()).IsEmpty())
	assert.True(t, topo.Closure(mustSet(t, lat, lattice.Point{1, 1})).Equal(topo.FullSet()))
}
