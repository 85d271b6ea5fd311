// dominikbraun.go - adapters for github.com/dominikbraun/graph.

package converters

import (
	"fmt"

	"github.com/dominikbraun/graph"

	"github.com/katalvlaran/vgraph/core"
)

// ToDominikBraun exports g as a dominikbraun/graph graph keyed by the
// node keys themselves (identity hash). Edge values travel in the
// library's per-edge data slot, so FromDominikBraun can restore them.
// Returns ErrNilGraph if g is nil.
func ToDominikBraun[K comparable, V any](g core.ValueGraph[K, V]) (graph.Graph[K, K], error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	identity := func(k K) K { return k }
	var traits []func(*graph.Traits)
	if g.Directed() {
		traits = append(traits, graph.Directed())
	}
	dst := graph.New(identity, traits...)

	for _, k := range g.Nodes() {
		if err := dst.AddVertex(k); err != nil {
			return nil, fmt.Errorf("converters: add vertex %v: %w", k, err)
		}
	}

	for _, e := range g.Edges() {
		// Pairs enumerated from g always match its mode.
		value, _ := g.EdgeValuePair(e)
		if err := dst.AddEdge(e.NodeU(), e.NodeV(), graph.EdgeData(value)); err != nil {
			return nil, fmt.Errorf("converters: add edge %v-%v: %w", e.NodeU(), e.NodeV(), err)
		}
	}

	return dst, nil
}

// FromDominikBraun imports src as a core value graph. Directedness comes
// from the source traits; the result always allows self-loops because the
// source library has no loop policy to consult. Edge data is asserted
// back to V: nil data imports as the zero value, anything else of the
// wrong type returns ErrValueType.
//
// Node insertion order follows the source's map enumeration and is not
// stable across runs.
func FromDominikBraun[K comparable, V any](src graph.Graph[K, K]) (*core.Graph[K, V], error) {
	if src == nil {
		return nil, ErrNilGraph
	}

	adjacency, err := src.AdjacencyMap()
	if err != nil {
		return nil, fmt.Errorf("converters: adjacency map: %w", err)
	}

	g := core.New[K, V](
		core.WithDirected(src.Traits().IsDirected),
		core.WithLoops(),
		core.WithNodeCapacity(len(adjacency)),
	)
	for k := range adjacency {
		if _, err = g.AddNode(k); err != nil {
			return nil, fmt.Errorf("converters: add node %v: %w", k, err)
		}
	}

	edges, err := src.Edges()
	if err != nil {
		return nil, fmt.Errorf("converters: edges: %w", err)
	}
	for _, e := range edges {
		var value V
		if e.Properties.Data != nil {
			var ok bool
			if value, ok = e.Properties.Data.(V); !ok {
				return nil, fmt.Errorf("converters: edge %v-%v data %T: %w",
					e.Source, e.Target, e.Properties.Data, ErrValueType)
			}
		}
		if _, _, err = g.PutEdgeValue(e.Source, e.Target, value); err != nil {
			return nil, fmt.Errorf("converters: put edge %v-%v: %w", e.Source, e.Target, err)
		}
	}

	return g, nil
}
