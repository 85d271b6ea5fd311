package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vgraph/core"
)

func TestClone_DeepAndIndependent(t *testing.T) {
	g := core.New[string, int](core.WithDirected(true))
	_, _, _ = g.PutEdgeValue("a", "b", 1)
	_, _, _ = g.PutEdgeValue("b", "c", 2)

	clone := g.Clone()
	require.Equal(t, g.Nodes(), clone.Nodes())
	require.Equal(t, g.EdgeCount(), clone.EdgeCount())
	require.True(t, clone.Directed())

	val, ok := clone.EdgeValue("a", "b")
	require.True(t, ok)
	require.Equal(t, 1, val)

	// Mutating the clone leaves the original untouched, and vice versa.
	_, _, _ = clone.PutEdgeValue("c", "d", 3)
	require.Equal(t, 2, g.EdgeCount())
	require.False(t, g.HasNode("d"))

	_, _ = g.RemoveNode("a")
	require.True(t, clone.HasEdge("a", "b"))
}

func TestCloneEmpty_KeepsNodesDropsEdges(t *testing.T) {
	g := core.New[string, int](core.WithLoops())
	_, _, _ = g.PutEdgeValue("x", "y", 1)
	_, _, _ = g.PutEdgeValue("y", "y", 2)
	_, _ = g.AddNode("z")

	hollow := g.CloneEmpty()
	require.Equal(t, []string{"x", "y", "z"}, hollow.Nodes())
	require.Zero(t, hollow.EdgeCount())
	require.False(t, hollow.Directed())
	require.True(t, hollow.AllowsLoops())
	require.False(t, hollow.HasEdge("x", "y"))
}

func TestTranspose_FlipsDirectedEdges(t *testing.T) {
	g := core.New[string, int](core.WithDirected(true))
	_, _, _ = g.PutEdgeValue("a", "b", 1)
	_, _, _ = g.PutEdgeValue("b", "c", 2)
	_, _, _ = g.PutEdgeValue("a", "c", 3)

	rev := core.Transpose(g)
	require.Equal(t, g.Nodes(), rev.Nodes(), "transposition keeps node order")
	require.Equal(t, 3, rev.EdgeCount())

	require.True(t, rev.HasEdge("b", "a"))
	require.True(t, rev.HasEdge("c", "b"))
	require.True(t, rev.HasEdge("c", "a"))
	require.False(t, rev.HasEdge("a", "b"))

	val, ok := rev.EdgeValue("c", "a")
	require.True(t, ok)
	require.Equal(t, 3, val, "edge values ride along")

	// The original is untouched.
	require.True(t, g.HasEdge("a", "b"))
}

func TestTranspose_UndirectedIsClone(t *testing.T) {
	g := core.New[string, int]()
	_, _, _ = g.PutEdgeValue("u", "v", 7)

	rev := core.Transpose(g)
	require.Equal(t, g.Nodes(), rev.Nodes())
	require.Equal(t, 1, rev.EdgeCount())
	require.True(t, rev.HasEdge("u", "v"))

	_, _, _ = rev.PutEdgeValue("v", "w", 8)
	require.Equal(t, 1, g.EdgeCount(), "transpose of an undirected graph is an independent copy")
}

func TestInducedSubgraph_KeepsInternalEdges(t *testing.T) {
	g := core.New[string, int]()
	_, _, _ = g.PutEdgeValue("a", "b", 1)
	_, _, _ = g.PutEdgeValue("b", "c", 2)
	_, _, _ = g.PutEdgeValue("c", "d", 3)
	_, _, _ = g.PutEdgeValue("a", "d", 4)

	sub := core.InducedSubgraph(g, "a", "b", "d")
	require.Equal(t, []string{"a", "b", "d"}, sub.Nodes())
	require.Equal(t, 2, sub.EdgeCount())
	require.True(t, sub.HasEdge("a", "b"))
	require.True(t, sub.HasEdge("a", "d"))
	require.False(t, sub.HasEdge("b", "c"))
}

func TestInducedSubgraph_Directed(t *testing.T) {
	g := core.New[string, int](core.WithDirected(true), core.WithLoops())
	_, _, _ = g.PutEdgeValue("a", "b", 1)
	_, _, _ = g.PutEdgeValue("b", "c", 2)
	_, _, _ = g.PutEdgeValue("c", "a", 3)
	_, _, _ = g.PutEdgeValue("a", "a", 4)

	sub := core.InducedSubgraph(g, "a", "b")
	require.Equal(t, []string{"a", "b"}, sub.Nodes())
	require.Equal(t, 2, sub.EdgeCount())
	require.True(t, sub.HasEdge("a", "b"))
	require.True(t, sub.HasEdge("a", "a"), "self-loops on kept nodes survive")

	pred, err := sub.Predecessors("b")
	require.NoError(t, err)
	require.Equal(t, []string{"a"}, pred)
}

func TestInducedSubgraph_IgnoresUnknownNodes(t *testing.T) {
	g := core.New[string, int]()
	_, _, _ = g.PutEdgeValue("a", "b", 1)

	sub := core.InducedSubgraph(g, "a", "ghost")
	require.Equal(t, []string{"a"}, sub.Nodes())
	require.Zero(t, sub.EdgeCount())
}

func TestView_ReflectsLiveGraph(t *testing.T) {
	g := core.New[string, int]()
	v := g.View()

	require.Zero(t, v.NodeCount())

	_, _, _ = g.PutEdgeValue("a", "b", 1)
	require.Equal(t, 2, v.NodeCount(), "a view is a window, not a snapshot")
	require.Equal(t, 1, v.EdgeCount())
	require.True(t, v.HasEdge("a", "b"))

	val, ok := v.EdgeValue("a", "b")
	require.True(t, ok)
	require.Equal(t, 1, val)
}

func TestValueGraph_SatisfiedByGraphAndView(t *testing.T) {
	g := core.New[string, int](core.WithDirected(true))
	_, _, _ = g.PutEdgeValue("a", "b", 1)

	for _, vg := range []core.ValueGraph[string, int]{g, g.View()} {
		require.True(t, vg.Directed())
		require.Equal(t, 2, vg.NodeCount())
		require.Equal(t, []string{"a", "b"}, vg.Nodes())

		succ, err := vg.Successors("a")
		require.NoError(t, err)
		require.Equal(t, []string{"b"}, succ)
	}
}
