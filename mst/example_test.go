package mst_test

import (
	"fmt"

	"github.com/mutekichi/cptoolkit/mst"
)

// ExampleCompute connects four towns at minimum cable cost.
func ExampleCompute() {
	edges := []mst.Edge{
		{From: 0, To: 1, Weight: 7},
		{From: 1, To: 2, Weight: 3},
		{From: 2, To: 3, Weight: 4},
		{From: 0, To: 3, Weight: 2},
		{From: 0, To: 2, Weight: 9},
	}
	tree, total, err := mst.Compute(4, edges, mst.WithMethod(mst.MethodKruskal))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(total, tree)
	// Output:
	// 9 [{0 3 2} {1 2 3} {2 3 4}]
}
