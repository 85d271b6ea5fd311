// yaml.go - YAML serialization of value graphs.

package codec

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/vgraph/core"
)

// MarshalGraphYAML converts a graph to YAML bytes with two-space indent.
// Output is deterministic: nodes and edges follow insertion order.
func MarshalGraphYAML[K comparable, V any](g core.ValueGraph[K, V]) ([]byte, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	doc, err := FromGraph(g)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err = enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("codec: encode: %w", err)
	}
	if err = enc.Close(); err != nil {
		return nil, fmt.Errorf("codec: encode: %w", err)
	}

	return buf.Bytes(), nil
}

// ReadGraphYAML decodes a YAML document from r and rebuilds the graph.
// Returns ErrBadDocument for input that does not parse; engine rejections
// during the rebuild surface wrapped and matchable with errors.Is.
func ReadGraphYAML[K comparable, V any](r io.Reader) (*core.Graph[K, V], error) {
	var doc Document[K, V]
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("codec: decode: %v: %w", err, ErrBadDocument)
	}

	return doc.ToGraph()
}
