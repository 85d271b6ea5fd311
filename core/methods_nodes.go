// Package core: node mutations and node-set queries for Graph.
//
// Node identity is the map key itself; insertion order is tracked through a
// monotonic sequence so enumerations stay deterministic across runs.

package core

import "sort"

// AddNode inserts node into the node set.
// Returns true if the node set changed, false if the node was already
// present (idempotent, no error). Returns ErrNilNode for a nil node.
// Complexity: O(1) amortized.
func (g *Graph[K, V]) AddNode(node K) (bool, error) {
	if isNil(any(node)) {
		return false, ErrNilNode
	}

	return g.addNode(node), nil
}

// HasNode reports whether node is in the node set.
// Complexity: O(1).
func (g *Graph[K, V]) HasNode(node K) bool {
	_, ok := g.seq[node]

	return ok
}

// RemoveNode deletes node and every edge incident to it, atomically.
// Returns true if the node set changed, false if the node was absent
// (no error, no side effect). Returns ErrNilNode for a nil node.
// Complexity: O(d), d = degree of node.
func (g *Graph[K, V]) RemoveNode(node K) (bool, error) {
	if isNil(any(node)) {
		return false, ErrNilNode
	}
	if _, ok := g.seq[node]; !ok {
		return false, nil
	}

	// Drop incident edges first, fixing up the counterpart maps.
	if g.directed {
		// Outgoing: node → succ lives in out[node] and mirrors in in[succ].
		for succ := range g.out[node] {
			delete(g.in[succ], node)
			g.edges--
		}
		// Incoming: pred → node lives in in[node] and mirrors in out[pred].
		// A self-loop was already deleted and counted by the loop above.
		for pred := range g.in[node] {
			delete(g.out[pred], node)
			g.edges--
		}
	} else {
		for nbr := range g.out[node] {
			if nbr != node {
				delete(g.out[nbr], node)
			}
			g.edges--
		}
	}

	// Drop the node itself.
	delete(g.out, node)
	if g.directed {
		delete(g.in, node)
	}
	delete(g.seq, node)

	return true, nil
}

// Clear resets the graph to empty, preserving mode flags.
// Complexity: O(1) (old storage is released to the collector).
func (g *Graph[K, V]) Clear() {
	g.seq = make(map[K]uint64)
	g.nextSeq = 0
	g.out = make(map[K]map[K]V)
	if g.directed {
		g.in = make(map[K]map[K]V)
	}
	g.edges = 0
}

// Nodes returns all nodes in insertion order.
// The slice is fresh; mutating it does not touch the graph.
// Complexity: O(V log V).
func (g *Graph[K, V]) Nodes() []K {
	nodes := make([]K, 0, len(g.seq))
	for node := range g.seq {
		nodes = append(nodes, node)
	}
	g.sortBySeq(nodes)

	return nodes
}

// NodeCount returns the number of nodes. Complexity: O(1).
func (g *Graph[K, V]) NodeCount() int {
	return len(g.seq)
}

// addNode inserts node if absent and reports whether the set changed.
// Callers have already validated the argument.
func (g *Graph[K, V]) addNode(node K) bool {
	if _, ok := g.seq[node]; ok {
		return false
	}
	g.seq[node] = g.nextSeq
	g.nextSeq++
	g.out[node] = make(map[K]V)
	if g.directed {
		g.in[node] = make(map[K]V)
	}

	return true
}

// sortBySeq orders nodes ascending by insertion sequence.
func (g *Graph[K, V]) sortBySeq(nodes []K) {
	sort.Slice(nodes, func(i, j int) bool {
		return g.seq[nodes[i]] < g.seq[nodes[j]]
	})
}
