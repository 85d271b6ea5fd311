// document.go - the canonical serialization shape and its graph conversions.

package codec

import (
	"fmt"

	"github.com/katalvlaran/vgraph/core"
)

// Document is the wire format for a value graph. It is designed for
// round-trip fidelity: capture, transform, re-read yields an equivalent
// graph with the same mode flags, node order, edges and values.
type Document[K comparable, V any] struct {
	Directed bool                 `json:"directed" yaml:"directed"`
	Loops    bool                 `json:"loops" yaml:"loops"`
	Nodes    []K                  `json:"nodes" yaml:"nodes"`
	Edges    []DocumentEdge[K, V] `json:"edges" yaml:"edges"`
}

// DocumentEdge carries one edge. For undirected graphs the from/to split
// records the anchored enumeration order only; reading treats the pair as
// unordered.
type DocumentEdge[K comparable, V any] struct {
	From  K `json:"from" yaml:"from"`
	To    K `json:"to" yaml:"to"`
	Value V `json:"value" yaml:"value"`
}

// FromGraph captures g as a Document. Nodes keep their insertion order,
// edges follow the deterministic enumeration.
// Returns ErrNilGraph if g is nil.
func FromGraph[K comparable, V any](g core.ValueGraph[K, V]) (Document[K, V], error) {
	if g == nil {
		return Document[K, V]{}, ErrNilGraph
	}

	edges := g.Edges()
	doc := Document[K, V]{
		Directed: g.Directed(),
		Loops:    g.AllowsLoops(),
		Nodes:    g.Nodes(),
		Edges:    make([]DocumentEdge[K, V], 0, len(edges)),
	}
	for _, e := range edges {
		// Pairs enumerated from g always match its mode.
		value, _ := g.EdgeValuePair(e)
		doc.Edges = append(doc.Edges, DocumentEdge[K, V]{From: e.NodeU(), To: e.NodeV(), Value: value})
	}

	return doc, nil
}

// ToGraph rebuilds a core.Graph from the document through the public
// mutation surface: AddNode for every listed node, PutEdgeValue per edge.
// Endpoints missing from Nodes are created implicitly; duplicate edges
// overwrite. A self-loop edge in a document with loops=false is rejected
// by the engine and surfaces wrapped.
func (d Document[K, V]) ToGraph() (*core.Graph[K, V], error) {
	opts := []core.Option{core.WithDirected(d.Directed), core.WithNodeCapacity(len(d.Nodes))}
	if d.Loops {
		opts = append(opts, core.WithLoops())
	}
	g := core.New[K, V](opts...)

	for _, k := range d.Nodes {
		if _, err := g.AddNode(k); err != nil {
			return nil, fmt.Errorf("codec: add node %v: %w", k, err)
		}
	}

	for _, e := range d.Edges {
		if _, _, err := g.PutEdgeValue(e.From, e.To, e.Value); err != nil {
			return nil, fmt.Errorf("codec: edge %v->%v: %w", e.From, e.To, err)
		}
	}

	return g, nil
}
