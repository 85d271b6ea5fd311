package codec_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vgraph/codec"
	"github.com/katalvlaran/vgraph/core"
)

func TestToDOT_DirectedGolden(t *testing.T) {
	g := core.New[string, int](core.WithDirected(true))
	_, _, _ = g.PutEdgeValue("A", "B", 3)
	_, _, _ = g.PutEdgeValue("B", "C", 5)

	dot := codec.ToDOT[string, int](g, codec.DOTOptions[string, int]{
		EdgeLabel: strconv.Itoa,
	})

	goldie.New(t).Assert(t, "dot_directed", []byte(dot))
}

func TestToDOT_UndirectedGolden(t *testing.T) {
	g := core.New[string, int]()
	_, _, _ = g.PutEdgeValue("A", "B", 3)
	_, _, _ = g.PutEdgeValue("B", "C", 5)

	dot := codec.ToDOT[string, int](g, codec.DOTOptions[string, int]{})

	goldie.New(t).Assert(t, "dot_plain", []byte(dot))
}

func TestToDOT_CustomNodeLabel(t *testing.T) {
	g := core.New[string, int](core.WithDirected(true))
	_, _, _ = g.PutEdgeValue("a", "b", 1)

	dot := codec.ToDOT[string, int](g, codec.DOTOptions[string, int]{
		NodeLabel: strings.ToUpper,
	})

	require.Contains(t, dot, `"a" [label="A"];`)
	require.Contains(t, dot, `"b" [label="B"];`)
	require.Contains(t, dot, `"a" -> "b";`)
}

func TestToDOT_NilGraph(t *testing.T) {
	require.Empty(t, codec.ToDOT[string, int](nil, codec.DOTOptions[string, int]{}))
}

func TestToDOT_QuotesAwkwardIDs(t *testing.T) {
	g := core.New[string, int]()
	_, _, _ = g.PutEdgeValue(`sa"y`, "two words", 1)

	dot := codec.ToDOT[string, int](g, codec.DOTOptions[string, int]{})
	require.Contains(t, dot, `"sa\"y"`)
	require.Contains(t, dot, `"two words"`)
}
