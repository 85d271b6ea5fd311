package converters_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vgraph/converters"
	"github.com/katalvlaran/vgraph/core"
)

func intWeight(v int) float64 { return float64(v) }

func TestToGonumDirected(t *testing.T) {
	src := core.New[string, int](core.WithDirected(true))
	_, _, _ = src.PutEdgeValue("a", "b", 2)
	_, _, _ = src.PutEdgeValue("b", "c", 4)

	wg, index, err := converters.ToGonumDirected[string, int](src, intWeight)
	require.NoError(t, err)
	require.Equal(t, 3, index.Len())
	require.Equal(t, 3, wg.Nodes().Len())

	// Ids follow insertion order.
	id, ok := index.ID("a")
	require.True(t, ok)
	require.Equal(t, int64(0), id)

	key, ok := index.Key(1)
	require.True(t, ok)
	require.Equal(t, "b", key)

	w, ok := wg.Weight(0, 1)
	require.True(t, ok)
	require.Equal(t, 2.0, w)

	require.True(t, wg.HasEdgeFromTo(1, 2))
	require.False(t, wg.HasEdgeFromTo(2, 1), "orientation must survive the export")
}

func TestToGonumUndirected(t *testing.T) {
	src := core.New[string, int]()
	_, _, _ = src.PutEdgeValue("a", "b", 7)

	wg, index, err := converters.ToGonumUndirected[string, int](src, intWeight)
	require.NoError(t, err)
	require.Equal(t, 2, index.Len())

	w, ok := wg.Weight(0, 1)
	require.True(t, ok)
	require.Equal(t, 7.0, w)

	// Undirected weights answer from both orientations.
	w, ok = wg.Weight(1, 0)
	require.True(t, ok)
	require.Equal(t, 7.0, w)
}

func TestToGonum_ModeMismatch(t *testing.T) {
	directed := core.New[string, int](core.WithDirected(true))
	undirected := core.New[string, int]()

	_, _, err := converters.ToGonumDirected[string, int](undirected, intWeight)
	require.ErrorIs(t, err, converters.ErrModeMismatch)

	_, _, err = converters.ToGonumUndirected[string, int](directed, intWeight)
	require.ErrorIs(t, err, converters.ErrModeMismatch)
}

func TestToGonum_NilWeightFn(t *testing.T) {
	src := core.New[string, int](core.WithDirected(true))

	_, _, err := converters.ToGonumDirected[string, int](src, nil)
	require.ErrorIs(t, err, converters.ErrNilWeightFn)
}

func TestToGonum_RejectsSelfLoops(t *testing.T) {
	src := core.New[string, int](core.WithDirected(true), core.WithLoops())
	_, _, _ = src.PutEdgeValue("a", "a", 1)

	_, _, err := converters.ToGonumDirected[string, int](src, intWeight)
	require.ErrorIs(t, err, converters.ErrLoopUnsupported)
}

func TestToGonum_NilGraph(t *testing.T) {
	_, _, err := converters.ToGonumDirected[string, int](nil, intWeight)
	require.ErrorIs(t, err, converters.ErrNilGraph)

	_, _, err = converters.ToGonumUndirected[string, int](nil, intWeight)
	require.ErrorIs(t, err, converters.ErrNilGraph)
}

func TestNodeIndex_Misses(t *testing.T) {
	src := core.New[string, int](core.WithDirected(true))
	_, _, _ = src.PutEdgeValue("a", "b", 1)

	_, index, err := converters.ToGonumDirected[string, int](src, intWeight)
	require.NoError(t, err)

	_, ok := index.ID("ghost")
	require.False(t, ok)
	_, ok = index.Key(-1)
	require.False(t, ok)
	_, ok = index.Key(99)
	require.False(t, ok)
}
