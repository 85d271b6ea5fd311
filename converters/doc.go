// Package converters provides two-way adapters between core value graphs
// and popular Go graph libraries:
//   - dominikbraun/graph
//   - gonum/graph
//
// Use converters to hand a graph to ecosystem algorithms (shortest paths,
// flows, topological sorts) without re-encoding it by hand, and to import
// graphs built elsewhere.
//
// Fidelity:
//   - dominikbraun: topology and edge values round-trip; values ride in
//     the library's per-edge data slot.
//   - gonum: weighted simple graphs; edge values are projected to float64
//     weights through a caller-supplied WeightFunc, and node keys map to
//     dense int64 ids through a NodeIndex.
//
// Errors:
//   - Sentinels with the "converters:" prefix; adapter-level rejections
//     (mode mismatch, self-loops for gonum, data of the wrong type) are
//     matchable with errors.Is.
package converters
