package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/vgraph/core"
	"github.com/katalvlaran/vgraph/matrix"
)

// ExampleNewAdjacencyMatrix captures a small undirected graph densely and
// queries it in O(1).
func ExampleNewAdjacencyMatrix() {
	// 1) Build the source graph.
	g := core.New[string, int]()
	_, _, _ = g.PutEdgeValue("A", "B", 4)
	_, _, _ = g.PutEdgeValue("B", "C", 8)

	// 2) Capture it as a matrix.
	m, _ := matrix.NewAdjacencyMatrix[string, int](g)

	// 3) Cells answer from either orientation; absent cells miss.
	fmt.Println(m.Keys)
	fmt.Println(m.Value("A", "B"))
	fmt.Println(m.Value("C", "B"))
	fmt.Println(m.Value("A", "C"))

	// Output:
	// [A B C]
	// 4 true
	// 8 true
	// 0 false
}
