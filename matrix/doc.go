// Package matrix provides a dense adjacency form for value graphs.
//
// What:
//   - AdjacencyMatrix captures a core.ValueGraph as an NxN grid of cells,
//     one row and column per node in insertion order. Each cell carries
//     the edge value plus a presence bit, so absence never collides with
//     a legitimate zero value.
//   - ToGraph rebuilds an equivalent core.Graph; the round-trip keeps the
//     node order, edge set and edge values intact.
//
// Why:
//   - Dense graphs want O(1) edge queries and simple row/column scans;
//     the adjacency-map core favors sparse workloads.
//
// Determinism:
//   - Row i always corresponds to Keys[i], the i-th node by insertion.
//
// Complexity:
//   - Construction O(V^2 + E) time, O(V^2) space. Value/At are O(1).
//
// Errors:
//   - Adapters return sentinels (ErrGraphNil, ErrNilMatrix); lookups use
//     comma-ok returns instead of errors.
//
// See: docs/MATRIX.md for the layout diagram.
package matrix
