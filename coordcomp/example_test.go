package coordcomp_test

import (
	"fmt"

	"github.com/mutekichi/cptoolkit/coordcomp"
)

// ExampleNew compresses a bag with duplicates.
func ExampleNew() {
	c := coordcomp.New([]int{100, 2, 100, 50, 2})
	r, _ := c.Rank(50)
	v, _ := c.ValueAt(2)

	fmt.Println(c.Size(), r, v)
	// Output:
	// 3 1 100
}

// ExampleCompressor_LowerBound maps a query range whose endpoints are not
// sample values onto a half-open rank range.
func ExampleCompressor_LowerBound() {
	c := coordcomp.New([]int{10, 20, 30, 40})
	lo, hi := c.LowerBound(15), c.UpperBound(35)

	fmt.Printf("[%d, %d)\n", lo, hi)
	// Output:
	// [1, 3)
}
