package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vgraph/core"
)

func TestNew_Defaults(t *testing.T) {
	g := core.New[string, int]()

	require.False(t, g.Directed(), "graphs are undirected unless asked")
	require.False(t, g.AllowsLoops(), "self-loops are off unless asked")
	require.Zero(t, g.NodeCount())
	require.Zero(t, g.EdgeCount())
	require.Empty(t, g.Nodes())
	require.Empty(t, g.Edges())
}

func TestNew_Options(t *testing.T) {
	g := core.New[int, float64](core.WithDirected(true), core.WithLoops(), core.WithNodeCapacity(64))

	require.True(t, g.Directed())
	require.True(t, g.AllowsLoops())

	// WithDirected is explicit either way.
	u := core.New[int, float64](core.WithDirected(false))
	require.False(t, u.Directed())
}

func TestWithNodeCapacity_PanicsOnNegative(t *testing.T) {
	require.PanicsWithValue(t, "core: WithNodeCapacity requires n >= 0", func() {
		core.New[string, int](core.WithNodeCapacity(-1))
	})
}

func TestGraph_AnyKeysAreUsable(t *testing.T) {
	// Interface-typed keys work as long as the dynamic values are comparable.
	g := core.New[any, string]()

	_, err := g.AddNode(1)
	require.NoError(t, err)
	_, err = g.AddNode("one")
	require.NoError(t, err)

	_, _, err = g.PutEdgeValue(1, "one", "mix")
	require.NoError(t, err)
	require.Equal(t, 2, g.NodeCount())
	require.Equal(t, 1, g.EdgeCount())
}

func TestNilable_TypedNilIsRejected(t *testing.T) {
	g := core.New[*nodeRef, int]()

	ref := &nodeRef{name: "ok"}
	_, err := g.AddNode(ref)
	require.NoError(t, err)

	var typedNil *nodeRef
	_, err = g.AddNode(typedNil)
	require.ErrorIs(t, err, core.ErrNilNode, "a typed nil implementing Nilable is still nil")

	_, _, err = g.PutEdgeValue(ref, typedNil, 1)
	require.ErrorIs(t, err, core.ErrNilNode)
	require.Equal(t, 1, g.NodeCount())
}
