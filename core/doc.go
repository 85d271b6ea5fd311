// Package core provides a production-grade mutable value graph: an in-memory
// graph whose nodes are caller-supplied comparable keys and whose edges carry
// exactly one attached value each.
//
// What
//
//   - Graph[K, V]: the mutation engine. Node identity is any comparable K;
//     every edge stores one non-nil value of type V.
//   - EndpointPair[K]: the two endpoints of an edge — Ordered for directed
//     graphs, Unordered for undirected ones, with symmetric equality in the
//     unordered flavor.
//   - Six mutations: AddNode, PutEdgeValue, PutEdgeValuePair, RemoveNode,
//     RemoveEdge, RemoveEdgePair. PutEdgeValue overwrites in place and hands
//     back the previous value; removal of a node cascades to its incident
//     edges; removal of an edge never touches nodes.
//   - A read-only capability set (ValueGraph interface, View wrapper) over
//     the same state, plus whole-graph transforms: Clone, CloneEmpty,
//     Transpose, InducedSubgraph, FilterEdges.
//
// Why
//
//   - Model relations that need data on the connection itself (latency,
//     capacity, label, timestamp) without parallel-edge bookkeeping.
//   - One edge per endpoint pair, never duplicated: PutEdgeValue is an
//     upsert returning the displaced value, so callers merge on their side.
//   - Strict mutation contract: a rejected call leaves the graph exactly as
//     it was (no partial node adds, no half-removed edges).
//
// Mode
//
//	Directedness and the self-loop policy are fixed at construction:
//
//	  g := core.New[string, int](core.WithDirected(true), core.WithLoops())
//
//	The default graph is undirected and rejects self-loops.
//
// Determinism
//
//	Nodes enumerate in insertion order; neighbor and edge enumerations are
//	ordered by the insertion index of the nodes involved. Two graphs built
//	by the same call sequence enumerate identically, so downstream encoders
//	produce byte-identical output.
//
// Concurrency
//
//	A Graph is not safe for concurrent use. Callers that share one instance
//	across goroutines must serialize access with external synchronization.
//	No operation blocks or performs I/O.
//
// Complexity (V = |Nodes|, E = |Edges|, d = degree)
//
//   - AddNode, PutEdgeValue, RemoveEdge, HasEdge, EdgeValue: O(1) amortized
//   - RemoveNode: O(d)
//   - Nodes, Edges, neighbor enumerations: O(V log V), O(E log E), O(d log d)
//
// Errors
//
//   - ErrNilNode, ErrNilValue      - nil argument rejected before any mutation.
//   - ErrLoopNotAllowed            - self-loop on a graph built without WithLoops.
//   - ErrEndpointsMismatch         - pair orderedness does not match graph mode.
//   - ErrNodeNotFound              - enumeration or degree query on an absent node.
//   - ErrNotIncident               - EndpointPair.AdjacentNode of a non-endpoint.
//
// See: docs/CORE.md for detailed tutorial, pseudocode, and diagrams.
package core
