// Package core: edge mutations and edge queries for Graph.
//
// Storage is a successor map per node (out); undirected graphs mirror every
// entry both ways so lookups cost O(1) from either endpoint. Directed graphs
// keep a predecessor map (in) alongside for reverse queries and removals.

package core

// PutEdgeValue inserts or overwrites the edge nodeU→nodeV (nodeU—nodeV when
// undirected) carrying value. Missing endpoints are added to the node set
// silently; this is the only operation with implicit node creation.
//
// Returns the previous value and true when an edge was overwritten, the zero
// value and false when the edge is new. A rejected call mutates nothing:
// the self-loop check runs before any node is added.
//
// Returns ErrNilNode, ErrNilValue, ErrLoopNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph[K, V]) PutEdgeValue(nodeU, nodeV K, value V) (V, bool, error) {
	var zero V
	// 1) Argument contract: nil nodes and nil values never reach storage.
	if isNil(any(nodeU)) || isNil(any(nodeV)) {
		return zero, false, ErrNilNode
	}
	if isNil(any(value)) {
		return zero, false, ErrNilValue
	}
	// 2) Loop policy, checked before endpoints are created.
	if nodeU == nodeV && !g.allowLoops {
		return zero, false, ErrLoopNotAllowed
	}
	// 3) Ensure both endpoints exist (idempotent).
	g.addNode(nodeU)
	g.addNode(nodeV)

	// 4) Upsert the value; mirror per mode.
	prev, had := g.out[nodeU][nodeV]
	g.out[nodeU][nodeV] = value
	if g.directed {
		g.in[nodeV][nodeU] = value
	} else if nodeU != nodeV {
		g.out[nodeV][nodeU] = value
	}
	if !had {
		g.edges++
	}

	return prev, had, nil
}

// PutEdgeValuePair is PutEdgeValue with the endpoints supplied as a pair.
// The pair flavor must match the graph mode: ordered pairs for directed
// graphs, unordered pairs for undirected ones. The flavor check runs before
// the self-loop policy, so a call violating both reports ErrEndpointsMismatch.
//
// Returns ErrNilNode, ErrNilValue, ErrEndpointsMismatch, ErrLoopNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph[K, V]) PutEdgeValuePair(p EndpointPair[K], value V) (V, bool, error) {
	var zero V
	if isNil(any(p.nodeU)) || isNil(any(p.nodeV)) {
		return zero, false, ErrNilNode
	}
	if isNil(any(value)) {
		return zero, false, ErrNilValue
	}
	if !p.matchesMode(g.directed) {
		return zero, false, ErrEndpointsMismatch
	}

	return g.PutEdgeValue(p.nodeU, p.nodeV, value)
}

// RemoveEdge deletes the edge nodeU→nodeV (nodeU—nodeV when undirected).
// Returns the removed value and true, or the zero value and false when no
// such edge exists. Endpoint nodes always stay, even if left isolated, and
// removal never creates nodes.
//
// Returns ErrNilNode. Complexity: O(1).
func (g *Graph[K, V]) RemoveEdge(nodeU, nodeV K) (V, bool, error) {
	var zero V
	if isNil(any(nodeU)) || isNil(any(nodeV)) {
		return zero, false, ErrNilNode
	}

	prev, had := g.out[nodeU][nodeV]
	if !had {
		return zero, false, nil
	}
	delete(g.out[nodeU], nodeV)
	if g.directed {
		delete(g.in[nodeV], nodeU)
	} else if nodeU != nodeV {
		delete(g.out[nodeV], nodeU)
	}
	g.edges--

	return prev, true, nil
}

// RemoveEdgePair is RemoveEdge with the endpoints supplied as a pair, under
// the same flavor precondition as PutEdgeValuePair.
//
// Returns ErrNilNode, ErrEndpointsMismatch. Complexity: O(1).
func (g *Graph[K, V]) RemoveEdgePair(p EndpointPair[K]) (V, bool, error) {
	var zero V
	if isNil(any(p.nodeU)) || isNil(any(p.nodeV)) {
		return zero, false, ErrNilNode
	}
	if !p.matchesMode(g.directed) {
		return zero, false, ErrEndpointsMismatch
	}

	return g.RemoveEdge(p.nodeU, p.nodeV)
}

// HasEdge reports whether the edge nodeU→nodeV (either orientation when
// undirected) exists. Absent nodes simply report false.
// Complexity: O(1).
func (g *Graph[K, V]) HasEdge(nodeU, nodeV K) bool {
	_, ok := g.out[nodeU][nodeV]

	return ok
}

// HasEdgePair reports whether the edge named by p exists. A pair whose
// flavor does not match the graph mode reports false rather than an error.
// Complexity: O(1).
func (g *Graph[K, V]) HasEdgePair(p EndpointPair[K]) bool {
	if !p.matchesMode(g.directed) {
		return false
	}

	return g.HasEdge(p.nodeU, p.nodeV)
}

// EdgeValue returns the value on edge nodeU→nodeV and true, or the zero
// value and false when the edge (or either node) is absent.
// Complexity: O(1).
func (g *Graph[K, V]) EdgeValue(nodeU, nodeV K) (V, bool) {
	value, ok := g.out[nodeU][nodeV]

	return value, ok
}

// EdgeValuePair is EdgeValue keyed by a pair; a flavor mismatch reports
// absence. Complexity: O(1).
func (g *Graph[K, V]) EdgeValuePair(p EndpointPair[K]) (V, bool) {
	if !p.matchesMode(g.directed) {
		var zero V
		return zero, false
	}

	return g.EdgeValue(p.nodeU, p.nodeV)
}

// EdgeValueOrDefault returns the value on edge nodeU→nodeV, or def when the
// edge is absent. Complexity: O(1).
func (g *Graph[K, V]) EdgeValueOrDefault(nodeU, nodeV K, def V) V {
	if value, ok := g.out[nodeU][nodeV]; ok {
		return value
	}

	return def
}

// Edges returns every edge as an EndpointPair, enumerated deterministically:
// source nodes in insertion order, each node's successors ascending by the
// successor's insertion index. Undirected edges appear once, anchored at the
// earlier endpoint.
// Complexity: O(V log V + E log E).
func (g *Graph[K, V]) Edges() []EndpointPair[K] {
	pairs := make([]EndpointPair[K], 0, g.edges)
	for _, u := range g.Nodes() {
		for _, v := range g.neighborKeys(g.out[u]) {
			switch {
			case g.directed:
				pairs = append(pairs, Ordered(u, v))
			case g.seq[u] <= g.seq[v]:
				// The mirror entry at the later endpoint is skipped.
				pairs = append(pairs, Unordered(u, v))
			}
		}
	}

	return pairs
}

// EdgeCount returns the number of edges. Complexity: O(1).
func (g *Graph[K, V]) EdgeCount() int {
	return g.edges
}
