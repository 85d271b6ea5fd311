package core_test

import (
	"fmt"

	"github.com/katalvlaran/vgraph/core"
)

// ExampleNew builds a small undirected graph and enumerates it.
func ExampleNew() {
	// 1) Create an undirected graph with string nodes and int edge values.
	g := core.New[string, int]()

	// 2) Connect three cities; endpoints appear on first use.
	_, _, _ = g.PutEdgeValue("Kyiv", "Lviv", 540)
	_, _, _ = g.PutEdgeValue("Lviv", "Odesa", 790)

	// 3) Enumeration follows insertion order.
	fmt.Println(g.Nodes())
	fmt.Println(g.Edges())
	fmt.Println(g.EdgeCount())

	// Output:
	// [Kyiv Lviv Odesa]
	// [[Kyiv, Lviv] [Lviv, Odesa]]
	// 2
}

// ExampleGraph_PutEdgeValue shows the overwrite contract: the second put
// on the same endpoints replaces the value and returns the displaced one.
func ExampleGraph_PutEdgeValue() {
	g := core.New[string, string]()

	// 1) First put: no prior value.
	prev, replaced, _ := g.PutEdgeValue("u", "v", "first")
	fmt.Printf("%q %v\n", prev, replaced)

	// 2) Second put: overwrites, returning "first".
	prev, replaced, _ = g.PutEdgeValue("u", "v", "second")
	fmt.Printf("%q %v\n", prev, replaced)

	// 3) The edge now carries the latest value.
	val, _ := g.EdgeValue("u", "v")
	fmt.Println(val)

	// Output:
	// "" false
	// "first" true
	// second
}

// ExampleGraph_RemoveNode demonstrates cascade removal: dropping a node
// takes every incident edge with it.
func ExampleGraph_RemoveNode() {
	g := core.New[string, int]()
	_, _, _ = g.PutEdgeValue("hub", "a", 1)
	_, _, _ = g.PutEdgeValue("hub", "b", 2)
	_, _, _ = g.PutEdgeValue("a", "b", 3)

	_, _ = g.RemoveNode("hub")

	fmt.Println(g.Nodes())
	fmt.Println(g.Edges())

	// Output:
	// [a b]
	// [[a, b]]
}

// ExampleGraph_Successors walks a directed graph from both ends.
func ExampleGraph_Successors() {
	g := core.New[string, float64](core.WithDirected(true))
	_, _, _ = g.PutEdgeValue("A", "B", 1.5)
	_, _, _ = g.PutEdgeValue("C", "B", 2.5)

	succ, _ := g.Successors("A")
	pred, _ := g.Predecessors("B")

	fmt.Println(succ)
	fmt.Println(pred)
	fmt.Println(g.Edges())

	// Output:
	// [B]
	// [A C]
	// [<A -> B> <C -> B>]
}

// ExampleEndpointPair contrasts the two pair flavors.
func ExampleEndpointPair() {
	fmt.Println(core.Ordered("src", "dst"))
	fmt.Println(core.Unordered("u", "v"))
	fmt.Println(core.Unordered("u", "v").Equal(core.Unordered("v", "u")))
	fmt.Println(core.Ordered("u", "v").Equal(core.Ordered("v", "u")))

	// Output:
	// <src -> dst>
	// [u, v]
	// true
	// false
}
