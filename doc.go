// Package vgraph is an in-memory toolkit for graphs whose edges carry
// values — labels, capacities, costs, or any payload that belongs to the
// connection rather than to its endpoints.
//
// 🚀 What is vgraph?
//
//	A generic, deterministic value-graph library that brings together:
//		• Core primitives: directed or undirected graphs over comparable keys
//		• Edge values: one value per edge, written and read atomically
//		• Endpoint pairs: ordered <source -> target> and unordered [u, v]
//		• Views & transforms: live read-only views, transpose, induced subgraphs
//		• Builders: reproducible paths, cycles, stars, grids and complete graphs
//		• Matrix form: dense adjacency snapshots with presence tracking
//		• Codecs: JSON & YAML documents, Graphviz DOT rendering
//		• Converters: two-way bridges to dominikbraun/graph and gonum
//
// ✨ Why choose vgraph?
//
//   - Value-first – edge values are the point, not an afterthought
//   - Deterministic – insertion-order enumeration, reproducible builders
//   - Honest errors – sentinel errors everywhere, errors.Is-friendly
//   - Generic – any comparable key, any value type, no reflection on hot paths
//
// Under the hood, everything is organized under five subpackages:
//
//	builder/    — deterministic topology constructors (Path, Cycle, Star, Complete, Grid)
//	codec/      — JSON/YAML documents and Graphviz DOT output
//	converters/ — adapters to dominikbraun/graph and gonum/graph/simple
//	core/       — the Graph engine, EndpointPair, views and transforms
//	matrix/     — dense adjacency matrices with O(1) edge lookup
//
// Quick ASCII example:
//
//	    A──3──B
//	    │     │
//	    7     5
//	    │     │
//	    C──1──D
//
//	represents a square whose four edges carry int values.
//
// Dive into README.md for full examples and the feature matrix.
//
//	go get github.com/katalvlaran/vgraph
package vgraph
