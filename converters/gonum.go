// gonum.go - adapters for gonum.org/v1/gonum/graph/simple.

package converters

import (
	"math"

	gonumgraph "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/vgraph/core"
)

// WeightFunc projects an edge value to the float64 weight gonum works in.
type WeightFunc[V any] func(V) float64

// NodeIndex maps node keys to the dense int64 ids used on the gonum side
// and back. Ids are assigned by insertion index, so id 0 is the first
// node ever added to the source graph.
type NodeIndex[K comparable] struct {
	keys []K
	ids  map[K]int64
}

// ID returns the gonum id of key k.
func (x *NodeIndex[K]) ID(k K) (int64, bool) {
	id, ok := x.ids[k]

	return id, ok
}

// Key returns the node key behind a gonum id.
func (x *NodeIndex[K]) Key(id int64) (K, bool) {
	if id < 0 || id >= int64(len(x.keys)) {
		var zero K
		return zero, false
	}

	return x.keys[id], true
}

// Len returns the number of indexed nodes.
func (x *NodeIndex[K]) Len() int { return len(x.keys) }

// newNodeIndex freezes the id assignment for g's current node set.
func newNodeIndex[K comparable, V any](g core.ValueGraph[K, V]) *NodeIndex[K] {
	keys := g.Nodes()
	ids := make(map[K]int64, len(keys))
	for i, k := range keys {
		ids[k] = int64(i)
	}

	return &NodeIndex[K]{keys: keys, ids: ids}
}

// gonumTarget is the slice of the simple graph surface the export fills.
// Both weighted simple graphs satisfy it.
type gonumTarget interface {
	AddNode(gonumgraph.Node)
	SetWeightedEdge(gonumgraph.WeightedEdge)
}

// ToGonumDirected exports a directed value graph as a gonum weighted
// directed graph, projecting edge values through weight.
//
// Returns ErrModeMismatch for an undirected source, ErrNilWeightFn for a
// nil projection, and ErrLoopUnsupported if the source carries self-loops
// (gonum's simple graphs reject self-edges).
func ToGonumDirected[K comparable, V any](g core.ValueGraph[K, V], weight WeightFunc[V]) (*simple.WeightedDirectedGraph, *NodeIndex[K], error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.Directed() {
		return nil, nil, ErrModeMismatch
	}

	dst := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	index, err := fillGonum(g, weight, dst)
	if err != nil {
		return nil, nil, err
	}

	return dst, index, nil
}

// ToGonumUndirected exports an undirected value graph as a gonum weighted
// undirected graph, projecting edge values through weight.
//
// Returns ErrModeMismatch for a directed source, ErrNilWeightFn for a
// nil projection, and ErrLoopUnsupported if the source carries self-loops.
func ToGonumUndirected[K comparable, V any](g core.ValueGraph[K, V], weight WeightFunc[V]) (*simple.WeightedUndirectedGraph, *NodeIndex[K], error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if g.Directed() {
		return nil, nil, ErrModeMismatch
	}

	dst := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	index, err := fillGonum(g, weight, dst)
	if err != nil {
		return nil, nil, err
	}

	return dst, index, nil
}

func fillGonum[K comparable, V any](g core.ValueGraph[K, V], weight WeightFunc[V], dst gonumTarget) (*NodeIndex[K], error) {
	if weight == nil {
		return nil, ErrNilWeightFn
	}

	// Self-loops cannot be represented: SetWeightedEdge panics on them.
	for _, e := range g.Edges() {
		if e.NodeU() == e.NodeV() {
			return nil, ErrLoopUnsupported
		}
	}

	index := newNodeIndex(g)
	for i := range index.keys {
		dst.AddNode(simple.Node(int64(i)))
	}

	for _, e := range g.Edges() {
		// Pairs enumerated from g always match its mode.
		value, _ := g.EdgeValuePair(e)
		idU, _ := index.ID(e.NodeU())
		idV, _ := index.ID(e.NodeV())
		dst.SetWeightedEdge(simple.WeightedEdge{
			F: simple.Node(idU),
			T: simple.Node(idV),
			W: weight(value),
		})
	}

	return index, nil
}
