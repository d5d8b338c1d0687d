package zarray_test

import (
	"fmt"

	"github.com/mutekichi/cptoolkit/zarray"
)

func ExampleBuildString() {
	fmt.Println(zarray.BuildString("abcabc"))
	fmt.Println(zarray.BuildString("aaaaa"))
	// Output:
	// [6 0 0 3 0 0]
	// [5 4 3 2 1]
}

// ExampleOccurrences finds overlapping matches of a word slice.
func ExampleOccurrences() {
	text := []string{"to", "be", "or", "not", "to", "be"}
	fmt.Println(zarray.Occurrences([]string{"to", "be"}, text))
	// Output:
	// [0 4]
}
