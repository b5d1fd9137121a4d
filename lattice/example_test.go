package lattice_test

import (
	"fmt"

	"github.com/ferrohm/spinsheaf/lattice"
)

// ExampleLattice_AllPoints enumerates a 2×2 lattice in row-major order.
func ExampleLattice_AllPoints() {
	lat, _ := lattice.New(2, []int{2, 2})
	for _, p := range lat.AllPoints() {
		fmt.Println(p)
	}
	// Output:
	// (0,0)
	// (0,1)
	// (1,0)
	// (1,1)
}

// ExampleLattice_Neighbors shows free-boundary neighbors of a corner site.
func ExampleLattice_Neighbors() {
	lat, _ := lattice.New(2, []int{3, 3})
	nbrs, _ := lat.Neighbors(lattice.Point{0, 0})
	for _, n := range nbrs {
		fmt.Println(n)
	}
	// Output:
	// (1,0)
	// (0,1)
}
