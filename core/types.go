// Package core: Graph type, construction options, and sentinel errors.
//
// This file declares the Graph container, the Option constructor knobs,
// the Nilable contract, and every sentinel error the package returns.
// Mutations live in methods_nodes.go / methods_edges.go, read queries in
// methods_query.go, transforms in methods_clone.go and view.go.

package core

import "errors"

// Sentinel errors for value-graph operations.
var (
	// ErrNilNode indicates a nil node argument (interface-typed nil, or a
	// type whose IsNil reports true). Rejected before any mutation.
	ErrNilNode = errors.New("core: node is nil")

	// ErrNilValue indicates a nil edge value argument. Rejected before any
	// mutation; edges always carry a usable value.
	ErrNilValue = errors.New("core: edge value is nil")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrEndpointsMismatch indicates an EndpointPair whose orderedness does not
	// match the graph mode: ordered pairs belong to directed graphs, unordered
	// pairs to undirected ones.
	ErrEndpointsMismatch = errors.New("core: endpoint pair ordering does not match graph mode")

	// ErrNodeNotFound indicates an enumeration or degree query referenced an
	// absent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrNotIncident indicates AdjacentNode was asked about a node that is not
	// an endpoint of the pair.
	ErrNotIncident = errors.New("core: node is not an endpoint of this pair")
)

// Nilable lets pointer-like node or value types report their own nil-ness
// without reflection. Types that do not implement it are never treated as
// nil unless the dynamic interface value itself is nil.
type Nilable interface {
	IsNil() bool
}

// isNil reports whether x is a nil argument under the package's contract:
// the dynamic value is nil, or the type says so via Nilable.
func isNil(x any) bool {
	if x == nil {
		return true
	}
	if n, ok := x.(Nilable); ok {
		return n.IsNil()
	}

	return false
}

// Option configures a Graph before creation.
type Option func(*options)

// options collects construction-time configuration; it never changes after New.
type options struct {
	directed     bool
	allowLoops   bool
	nodeCapacity int
}

// WithDirected sets the graph mode: true for directed edges (ordered
// endpoint pairs), false for undirected edges (unordered pairs).
func WithDirected(directed bool) Option {
	return func(o *options) { o.directed = directed }
}

// WithLoops permits self-loops (edges connecting a node to itself).
func WithLoops() Option {
	return func(o *options) { o.allowLoops = true }
}

// WithNodeCapacity pre-sizes internal storage for n nodes. It is a hint
// only and never limits growth. Panics if n is negative (option misuse is a
// programmer error, caught at construction).
func WithNodeCapacity(n int) Option {
	if n < 0 {
		panic("core: WithNodeCapacity requires n >= 0")
	}

	return func(o *options) { o.nodeCapacity = n }
}

// Graph is the mutable value-graph container.
//
// K is the node identity type; any comparable key works and supplies its own
// equality. V is the edge value type, one value per edge.
//
// The zero value is not usable; construct with New. A Graph is not safe for
// concurrent use without external synchronization.
type Graph[K comparable, V any] struct {
	// Configuration flags, fixed at construction
	directed   bool // edges are one-way, endpoint pairs ordered
	allowLoops bool // self-loops permitted

	// Storage
	seq     map[K]uint64  // node → insertion sequence, monotonic, never reused
	nextSeq uint64        // next insertion sequence to assign
	out     map[K]map[K]V // successor → value; undirected graphs mirror both ways
	in      map[K]map[K]V // predecessor → value; directed graphs only
	edges   int           // live edge count
}

// New creates an empty Graph with the given options.
// By default the graph is undirected and rejects self-loops.
// Complexity: O(1).
func New[K comparable, V any](opts ...Option) *Graph[K, V] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	g := &Graph[K, V]{
		directed:   o.directed,
		allowLoops: o.allowLoops,
		seq:        make(map[K]uint64, o.nodeCapacity),
		out:        make(map[K]map[K]V, o.nodeCapacity),
	}
	if o.directed {
		g.in = make(map[K]map[K]V, o.nodeCapacity)
	}

	return g
}

// Directed reports whether edges are directed.
func (g *Graph[K, V]) Directed() bool {
	return g.directed
}

// AllowsLoops reports whether self-loops are permitted.
func (g *Graph[K, V]) AllowsLoops() bool {
	return g.allowLoops
}
