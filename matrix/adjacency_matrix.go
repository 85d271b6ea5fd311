// adjacency_matrix.go - dense adjacency capture of a value graph.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/vgraph/core"
)

// AdjacencyMatrix holds a fixed-size 2D snapshot of a value graph.
//
// Cell (i, j) describes the edge from Keys[i] to Keys[j]: its value and a
// presence bit. The presence bit is what distinguishes "no edge" from an
// edge whose value is the zero value of V. Undirected graphs store each
// edge mirrored across the diagonal.
//
// The matrix is a snapshot: later mutations of the source graph are not
// reflected. It is not safe for concurrent use without external
// synchronization.
//
// Memory: O(V^2).
type AdjacencyMatrix[K comparable, V any] struct {
	// Keys lists the node keys in graph insertion order; row and column i
	// correspond to Keys[i].
	Keys []K

	index      map[K]int
	cells      [][]V
	present    [][]bool
	directed   bool
	allowLoops bool
}

// NewAdjacencyMatrix captures g as a dense matrix.
// Returns ErrGraphNil if g is nil.
//
// Complexity: O(V^2 + E) time, O(V^2) space.
func NewAdjacencyMatrix[K comparable, V any](g core.ValueGraph[K, V]) (*AdjacencyMatrix[K, V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	// 1) Freeze the node order and build the key index.
	keys := g.Nodes()
	n := len(keys)
	index := make(map[K]int, n)
	for i, k := range keys {
		index[k] = i
	}

	// 2) Allocate the dense cells and the presence mask.
	cells := make([][]V, n)
	present := make([][]bool, n)
	for i := range cells {
		cells[i] = make([]V, n)
		present[i] = make([]bool, n)
	}

	// 3) Fill from the edge enumeration; pairs produced by g always match
	//    its mode, so the pair lookup cannot miss.
	for _, e := range g.Edges() {
		value, _ := g.EdgeValuePair(e)
		i, j := index[e.NodeU()], index[e.NodeV()]
		cells[i][j], present[i][j] = value, true
		if !g.Directed() && i != j {
			cells[j][i], present[j][i] = value, true
		}
	}

	return &AdjacencyMatrix[K, V]{
		Keys:       keys,
		index:      index,
		cells:      cells,
		present:    present,
		directed:   g.Directed(),
		allowLoops: g.AllowsLoops(),
	}, nil
}

// Directed reports whether the source graph was directed.
func (m *AdjacencyMatrix[K, V]) Directed() bool { return m.directed }

// AllowsLoops reports whether the source graph permitted self-loops.
func (m *AdjacencyMatrix[K, V]) AllowsLoops() bool { return m.allowLoops }

// Len returns the number of nodes (rows) in the matrix.
func (m *AdjacencyMatrix[K, V]) Len() int { return len(m.Keys) }

// Index returns the row/column index of key k.
func (m *AdjacencyMatrix[K, V]) Index(k K) (int, bool) {
	i, ok := m.index[k]

	return i, ok
}

// Key returns the node key at row i.
func (m *AdjacencyMatrix[K, V]) Key(i int) (K, bool) {
	if i < 0 || i >= len(m.Keys) {
		var zero K
		return zero, false
	}

	return m.Keys[i], true
}

// Value returns the value of the edge from nodeU to nodeV, if present.
// Unknown keys simply miss.
//
// Complexity: O(1).
func (m *AdjacencyMatrix[K, V]) Value(nodeU, nodeV K) (V, bool) {
	i, ok := m.index[nodeU]
	if !ok {
		var zero V
		return zero, false
	}
	j, ok := m.index[nodeV]
	if !ok {
		var zero V
		return zero, false
	}

	return m.At(i, j)
}

// At returns the cell (i, j), if both indices are in range and the cell
// holds an edge.
//
// Complexity: O(1).
func (m *AdjacencyMatrix[K, V]) At(i, j int) (V, bool) {
	if i < 0 || i >= len(m.cells) || j < 0 || j >= len(m.cells) {
		var zero V
		return zero, false
	}
	if !m.present[i][j] {
		var zero V
		return zero, false
	}

	return m.cells[i][j], true
}

// ToGraph rebuilds a core.Graph from the matrix. The result carries the
// same mode flags, node order, edges and values as the captured graph.
// Returns ErrNilMatrix on a nil receiver.
//
// Complexity: O(V^2) time.
func (m *AdjacencyMatrix[K, V]) ToGraph() (*core.Graph[K, V], error) {
	if m == nil {
		return nil, ErrNilMatrix
	}

	// 1) Recreate the graph with the captured mode flags.
	opts := []core.Option{core.WithDirected(m.directed), core.WithNodeCapacity(len(m.Keys))}
	if m.allowLoops {
		opts = append(opts, core.WithLoops())
	}
	g := core.New[K, V](opts...)

	// 2) Nodes first, in the frozen order.
	for _, k := range m.Keys {
		if _, err := g.AddNode(k); err != nil {
			return nil, fmt.Errorf("matrix: add node %v: %w", k, err)
		}
	}

	// 3) Edges; undirected cells are mirrored, so only the upper triangle
	//    (including the diagonal) is replayed.
	for i := range m.present {
		for j, ok := range m.present[i] {
			if !ok {
				continue
			}
			if !m.directed && j < i {
				continue
			}
			nodeU, nodeV := m.Keys[i], m.Keys[j]
			if _, _, err := g.PutEdgeValue(nodeU, nodeV, m.cells[i][j]); err != nil {
				return nil, fmt.Errorf("matrix: edge %v-%v: %w", nodeU, nodeV, err)
			}
		}
	}

	return g, nil
}
