// Package core: adjacency and degree queries for Graph.
//
// Every enumeration returns a fresh slice ordered by node insertion index,
// so repeated calls over an unchanged graph are identical.

package core

// Successors returns the nodes reachable from node by one outgoing edge.
// For undirected graphs this equals AdjacentNodes.
// Returns ErrNodeNotFound if node is absent.
// Complexity: O(d log d).
func (g *Graph[K, V]) Successors(node K) ([]K, error) {
	if _, ok := g.seq[node]; !ok {
		return nil, ErrNodeNotFound
	}

	return g.neighborKeys(g.out[node]), nil
}

// Predecessors returns the nodes with an edge into node.
// For undirected graphs this equals AdjacentNodes.
// Returns ErrNodeNotFound if node is absent.
// Complexity: O(d log d).
func (g *Graph[K, V]) Predecessors(node K) ([]K, error) {
	if _, ok := g.seq[node]; !ok {
		return nil, ErrNodeNotFound
	}
	if !g.directed {
		return g.neighborKeys(g.out[node]), nil
	}

	return g.neighborKeys(g.in[node]), nil
}

// AdjacentNodes returns every node sharing an edge with node, in either
// direction. A self-loop contributes node itself once.
// Returns ErrNodeNotFound if node is absent.
// Complexity: O(d log d).
func (g *Graph[K, V]) AdjacentNodes(node K) ([]K, error) {
	if _, ok := g.seq[node]; !ok {
		return nil, ErrNodeNotFound
	}
	if !g.directed {
		return g.neighborKeys(g.out[node]), nil
	}

	// Directed: merge successors and predecessors, deduplicating two-way pairs.
	merged := make(map[K]struct{}, len(g.out[node])+len(g.in[node]))
	for succ := range g.out[node] {
		merged[succ] = struct{}{}
	}
	for pred := range g.in[node] {
		merged[pred] = struct{}{}
	}
	nodes := make([]K, 0, len(merged))
	for n := range merged {
		nodes = append(nodes, n)
	}
	g.sortBySeq(nodes)

	return nodes, nil
}

// IncidentEdges returns every edge touching node: outgoing edges first, then
// incoming ones, each group ascending by the far endpoint's insertion index.
// A self-loop appears exactly once.
// Returns ErrNodeNotFound if node is absent.
// Complexity: O(d log d).
func (g *Graph[K, V]) IncidentEdges(node K) ([]EndpointPair[K], error) {
	if _, ok := g.seq[node]; !ok {
		return nil, ErrNodeNotFound
	}

	if !g.directed {
		nbrs := g.neighborKeys(g.out[node])
		pairs := make([]EndpointPair[K], 0, len(nbrs))
		for _, nbr := range nbrs {
			pairs = append(pairs, Unordered(node, nbr))
		}

		return pairs, nil
	}

	pairs := make([]EndpointPair[K], 0, len(g.out[node])+len(g.in[node]))
	for _, succ := range g.neighborKeys(g.out[node]) {
		pairs = append(pairs, Ordered(node, succ))
	}
	for _, pred := range g.neighborKeys(g.in[node]) {
		if pred == node {
			continue // self-loop already covered by the outgoing pass
		}
		pairs = append(pairs, Ordered(pred, node))
	}

	return pairs, nil
}

// Degree returns the number of edge endpoints at node: InDegree plus
// OutDegree for directed graphs, incident edges with self-loops counted
// twice for undirected ones.
// Returns ErrNodeNotFound if node is absent.
// Complexity: O(1).
func (g *Graph[K, V]) Degree(node K) (int, error) {
	if _, ok := g.seq[node]; !ok {
		return 0, ErrNodeNotFound
	}
	if g.directed {
		return len(g.in[node]) + len(g.out[node]), nil
	}

	return len(g.out[node]) + g.loopExtra(node), nil
}

// InDegree returns the number of incoming edges (self-loops count once).
// For undirected graphs it equals Degree.
// Returns ErrNodeNotFound if node is absent.
// Complexity: O(1).
func (g *Graph[K, V]) InDegree(node K) (int, error) {
	if !g.directed {
		return g.Degree(node)
	}
	if _, ok := g.seq[node]; !ok {
		return 0, ErrNodeNotFound
	}

	return len(g.in[node]), nil
}

// OutDegree returns the number of outgoing edges (self-loops count once).
// For undirected graphs it equals Degree.
// Returns ErrNodeNotFound if node is absent.
// Complexity: O(1).
func (g *Graph[K, V]) OutDegree(node K) (int, error) {
	if !g.directed {
		return g.Degree(node)
	}
	if _, ok := g.seq[node]; !ok {
		return 0, ErrNodeNotFound
	}

	return len(g.out[node]), nil
}

// neighborKeys collects the keys of one adjacency level, ascending by
// insertion index.
func (g *Graph[K, V]) neighborKeys(m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	g.sortBySeq(keys)

	return keys
}

// loopExtra reports 1 when an undirected self-loop sits at node, else 0.
func (g *Graph[K, V]) loopExtra(node K) int {
	if _, ok := g.out[node][node]; ok {
		return 1
	}

	return 0
}
