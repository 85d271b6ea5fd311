// json.go - JSON serialization of value graphs.

package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/vgraph/core"
)

// MarshalGraph converts a graph to indented JSON bytes.
// Output is deterministic: nodes and edges follow insertion order.
func MarshalGraph[K comparable, V any](g core.ValueGraph[K, V]) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeGraphTo(g, &buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// WriteGraph writes a graph as JSON to w.
// Use MarshalGraph for in-memory serialization or WriteGraphFile for files.
func WriteGraph[K comparable, V any](g core.ValueGraph[K, V], w io.Writer) error {
	return writeGraphTo(g, w)
}

// WriteGraphFile writes a graph to a JSON file.
// The file is created with 0644 permissions.
func WriteGraphFile[K comparable, V any](g core.ValueGraph[K, V], path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("codec: create %s: %w", path, err)
	}
	defer f.Close()

	return writeGraphTo(g, f)
}

// ReadGraph decodes a JSON document from r and rebuilds the graph.
// Returns ErrBadDocument for input that does not parse; engine rejections
// during the rebuild surface wrapped and matchable with errors.Is.
func ReadGraph[K comparable, V any](r io.Reader) (*core.Graph[K, V], error) {
	return readGraphFrom[K, V](r)
}

// ReadGraphFile reads a JSON file and rebuilds the graph.
func ReadGraphFile[K comparable, V any](path string) (*core.Graph[K, V], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("codec: open %s: %w", path, err)
	}
	defer f.Close()

	return readGraphFrom[K, V](f)
}

func writeGraphTo[K comparable, V any](g core.ValueGraph[K, V], w io.Writer) error {
	if g == nil {
		return ErrNilGraph
	}

	doc, err := FromGraph(g)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err = enc.Encode(doc); err != nil {
		return fmt.Errorf("codec: encode: %w", err)
	}

	return nil
}

func readGraphFrom[K comparable, V any](r io.Reader) (*core.Graph[K, V], error) {
	var doc Document[K, V]
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("codec: decode: %v: %w", err, ErrBadDocument)
	}

	return doc.ToGraph()
}
