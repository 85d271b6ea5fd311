// Package core: whole-graph copies and in-place edge filtering.

package core

// CloneEmpty returns a new Graph with identical mode flags and node set but
// no edges. Node insertion order carries over.
// Complexity: O(V).
func (g *Graph[K, V]) CloneEmpty() *Graph[K, V] {
	opts := []Option{WithDirected(g.directed), WithNodeCapacity(len(g.seq))}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	clone := New[K, V](opts...)

	for node, s := range g.seq {
		clone.seq[node] = s
		clone.out[node] = make(map[K]V)
		if g.directed {
			clone.in[node] = make(map[K]V)
		}
	}
	clone.nextSeq = g.nextSeq

	return clone
}

// Clone returns a deep copy: mode, node set, insertion order, edges, values.
// Values are copied by assignment; pointer-typed values share their targets.
// Complexity: O(V + E).
func (g *Graph[K, V]) Clone() *Graph[K, V] {
	clone := g.CloneEmpty()
	for u, succs := range g.out {
		for v, value := range succs {
			clone.out[u][v] = value
		}
	}
	if g.directed {
		for v, preds := range g.in {
			for u, value := range preds {
				clone.in[v][u] = value
			}
		}
	}
	clone.edges = g.edges

	return clone
}

// FilterEdges removes every edge for which keep returns false and reports
// how many were removed. The predicate sees each edge once; undirected
// endpoints arrive with the earlier-inserted node first. Nodes are never
// removed, even when left isolated.
// Complexity: O(V log V + E log E).
func (g *Graph[K, V]) FilterEdges(keep func(nodeU, nodeV K, value V) bool) int {
	removed := 0
	for _, p := range g.Edges() {
		value, _ := g.EdgeValue(p.nodeU, p.nodeV)
		if keep(p.nodeU, p.nodeV, value) {
			continue
		}
		// Endpoints enumerated from the graph are never nil, so RemoveEdge
		// cannot fail here.
		if _, ok, _ := g.RemoveEdge(p.nodeU, p.nodeV); ok {
			removed++
		}
	}

	return removed
}
