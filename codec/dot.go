// dot.go - Graphviz DOT rendering of value graphs.

package codec

import (
	"bytes"
	"fmt"

	"github.com/katalvlaran/vgraph/core"
)

// DOTOptions configures DOT rendering.
type DOTOptions[K comparable, V any] struct {
	// NodeLabel renders a node's label. fmt.Sprint of the key when nil.
	NodeLabel func(K) string

	// EdgeLabel renders an edge's value next to the connector. Edge labels
	// are omitted entirely when nil.
	EdgeLabel func(V) string
}

// ToDOT renders g as Graphviz DOT text: "digraph G" for directed graphs,
// "graph G" otherwise, with nodes and edges in insertion-order
// enumeration so output is deterministic. A nil graph renders to the
// empty string.
//
// The result feeds straight into dot(1) or any Graphviz library.
func ToDOT[K comparable, V any](g core.ValueGraph[K, V], opts DOTOptions[K, V]) string {
	if g == nil {
		return ""
	}

	nodeLabel := opts.NodeLabel
	if nodeLabel == nil {
		nodeLabel = func(k K) string { return fmt.Sprint(k) }
	}

	header, connector := "graph", "--"
	if g.Directed() {
		header, connector = "digraph", "->"
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s G {\n", header)

	for _, k := range g.Nodes() {
		fmt.Fprintf(&buf, "  %q [label=%q];\n", fmt.Sprint(k), nodeLabel(k))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		from, to := fmt.Sprint(e.NodeU()), fmt.Sprint(e.NodeV())
		if opts.EdgeLabel == nil {
			fmt.Fprintf(&buf, "  %q %s %q;\n", from, connector, to)
			continue
		}
		value, _ := g.EdgeValuePair(e)
		fmt.Fprintf(&buf, "  %q %s %q [label=%q];\n", from, connector, to, opts.EdgeLabel(value))
	}

	buf.WriteString("}\n")

	return buf.String()
}
