// Package core: the read-only capability set and non-mutating transforms.
//
// ValueGraph is the query half of the graph contract; *Graph implements it
// directly and View re-exposes it without the mutation surface. Transforms
// return fresh graphs and never touch their input.

package core

// ValueGraph is the read-only capability set of a value graph. Both *Graph
// and View satisfy it; downstream consumers (encoders, adapters) should
// accept this interface rather than the concrete type.
type ValueGraph[K comparable, V any] interface {
	// Directed reports whether edges are directed.
	Directed() bool
	// AllowsLoops reports whether self-loops are permitted.
	AllowsLoops() bool

	// NodeCount returns the number of nodes.
	NodeCount() int
	// EdgeCount returns the number of edges.
	EdgeCount() int
	// Nodes returns all nodes in insertion order.
	Nodes() []K
	// Edges returns all edges in deterministic enumeration order.
	Edges() []EndpointPair[K]

	// HasNode reports whether node is present.
	HasNode(node K) bool
	// HasEdge reports whether the edge nodeU→nodeV exists.
	HasEdge(nodeU, nodeV K) bool
	// HasEdgePair reports whether the edge named by p exists.
	HasEdgePair(p EndpointPair[K]) bool
	// EdgeValue returns the value on edge nodeU→nodeV, comma-ok.
	EdgeValue(nodeU, nodeV K) (V, bool)
	// EdgeValuePair returns the value on the edge named by p, comma-ok.
	EdgeValuePair(p EndpointPair[K]) (V, bool)
	// EdgeValueOrDefault returns the edge value, or def when absent.
	EdgeValueOrDefault(nodeU, nodeV K, def V) V

	// AdjacentNodes returns the nodes sharing an edge with node.
	AdjacentNodes(node K) ([]K, error)
	// Successors returns the nodes reachable from node along one edge.
	Successors(node K) ([]K, error)
	// Predecessors returns the nodes with an edge into node.
	Predecessors(node K) ([]K, error)
	// IncidentEdges returns every edge touching node.
	IncidentEdges(node K) ([]EndpointPair[K], error)
	// Degree returns the number of edge endpoints at node.
	Degree(node K) (int, error)
	// InDegree returns the incoming edge count at node.
	InDegree(node K) (int, error)
	// OutDegree returns the outgoing edge count at node.
	OutDegree(node K) (int, error)
}

// Compile-time interface conformance.
var (
	_ ValueGraph[int, string] = (*Graph[int, string])(nil)
	_ ValueGraph[int, string] = View[int, string]{}
)

// View is a live, zero-copy, read-only window onto a Graph. It shares the
// graph's state, so mutations made through the underlying Graph are visible
// through the View immediately. Copying a View is cheap; all copies observe
// the same graph.
type View[K comparable, V any] struct {
	g *Graph[K, V]
}

// View returns the read-only window onto g.
// Complexity: O(1).
func (g *Graph[K, V]) View() View[K, V] {
	return View[K, V]{g: g}
}

// Directed reports whether edges are directed.
func (w View[K, V]) Directed() bool { return w.g.Directed() }

// AllowsLoops reports whether self-loops are permitted.
func (w View[K, V]) AllowsLoops() bool { return w.g.AllowsLoops() }

// NodeCount returns the number of nodes.
func (w View[K, V]) NodeCount() int { return w.g.NodeCount() }

// EdgeCount returns the number of edges.
func (w View[K, V]) EdgeCount() int { return w.g.EdgeCount() }

// Nodes returns all nodes in insertion order.
func (w View[K, V]) Nodes() []K { return w.g.Nodes() }

// Edges returns all edges in deterministic enumeration order.
func (w View[K, V]) Edges() []EndpointPair[K] { return w.g.Edges() }

// HasNode reports whether node is present.
func (w View[K, V]) HasNode(node K) bool { return w.g.HasNode(node) }

// HasEdge reports whether the edge nodeU→nodeV exists.
func (w View[K, V]) HasEdge(nodeU, nodeV K) bool { return w.g.HasEdge(nodeU, nodeV) }

// HasEdgePair reports whether the edge named by p exists.
func (w View[K, V]) HasEdgePair(p EndpointPair[K]) bool { return w.g.HasEdgePair(p) }

// EdgeValue returns the value on edge nodeU→nodeV, comma-ok.
func (w View[K, V]) EdgeValue(nodeU, nodeV K) (V, bool) { return w.g.EdgeValue(nodeU, nodeV) }

// EdgeValuePair returns the value on the edge named by p, comma-ok.
func (w View[K, V]) EdgeValuePair(p EndpointPair[K]) (V, bool) { return w.g.EdgeValuePair(p) }

// EdgeValueOrDefault returns the edge value, or def when absent.
func (w View[K, V]) EdgeValueOrDefault(nodeU, nodeV K, def V) V {
	return w.g.EdgeValueOrDefault(nodeU, nodeV, def)
}

// AdjacentNodes returns the nodes sharing an edge with node.
func (w View[K, V]) AdjacentNodes(node K) ([]K, error) { return w.g.AdjacentNodes(node) }

// Successors returns the nodes reachable from node along one edge.
func (w View[K, V]) Successors(node K) ([]K, error) { return w.g.Successors(node) }

// Predecessors returns the nodes with an edge into node.
func (w View[K, V]) Predecessors(node K) ([]K, error) { return w.g.Predecessors(node) }

// IncidentEdges returns every edge touching node.
func (w View[K, V]) IncidentEdges(node K) ([]EndpointPair[K], error) {
	return w.g.IncidentEdges(node)
}

// Degree returns the number of edge endpoints at node.
func (w View[K, V]) Degree(node K) (int, error) { return w.g.Degree(node) }

// InDegree returns the incoming edge count at node.
func (w View[K, V]) InDegree(node K) (int, error) { return w.g.InDegree(node) }

// OutDegree returns the outgoing edge count at node.
func (w View[K, V]) OutDegree(node K) (int, error) { return w.g.OutDegree(node) }

// Transpose returns a new Graph with every directed edge reversed, keeping
// values and node insertion order. For an undirected graph it degenerates to
// Clone. The input graph is not mutated.
// Complexity: O(V + E).
func Transpose[K comparable, V any](g *Graph[K, V]) *Graph[K, V] {
	if !g.directed {
		return g.Clone()
	}

	out := g.CloneEmpty()
	for u, succs := range g.out {
		for v, value := range succs {
			out.out[v][u] = value
			out.in[u][v] = value
		}
	}
	out.edges = g.edges

	return out
}

// InducedSubgraph returns a new Graph containing the given nodes and every
// edge of g whose endpoints both made it in. Nodes absent from g are
// ignored; insertion order of the kept nodes carries over. The input graph
// is not mutated.
// Complexity: O(V + E).
func InducedSubgraph[K comparable, V any](g *Graph[K, V], nodes ...K) *Graph[K, V] {
	keep := make(map[K]struct{}, len(nodes))
	for _, n := range nodes {
		if _, ok := g.seq[n]; ok {
			keep[n] = struct{}{}
		}
	}

	opts := []Option{WithDirected(g.directed), WithNodeCapacity(len(keep))}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	out := New[K, V](opts...)

	// Carry nodes with their original sequence numbers so enumeration order
	// survives the cut.
	for n := range keep {
		out.seq[n] = g.seq[n]
		out.out[n] = make(map[K]V)
		if g.directed {
			out.in[n] = make(map[K]V)
		}
	}
	out.nextSeq = g.nextSeq

	for u := range keep {
		for v, value := range g.out[u] {
			if _, ok := keep[v]; !ok {
				continue
			}
			switch {
			case g.directed:
				out.out[u][v] = value
				out.in[v][u] = value
				out.edges++
			case g.seq[u] <= g.seq[v]:
				out.out[u][v] = value
				if u != v {
					out.out[v][u] = value
				}
				out.edges++
			}
		}
	}

	return out
}
