// Package codec serializes value graphs to JSON, YAML and Graphviz DOT.
//
// What:
//   - Document is the canonical wire shape: mode flags, nodes in insertion
//     order, edges as (from, to, value) triples. FromGraph captures a
//     graph; Document.ToGraph rebuilds one through the engine's own
//     mutation surface, so decode enforces the same invariants as code.
//   - JSON: MarshalGraph, WriteGraph, WriteGraphFile, ReadGraph,
//     ReadGraphFile. Output is two-space indented and deterministic.
//   - YAML: MarshalGraphYAML, ReadGraphYAML.
//   - DOT: ToDOT renders digraph/graph text for Graphviz tooling.
//
// Why:
//   - Graphs outlive processes: fixtures, API payloads, cache entries and
//     visualization all want one stable, human-readable format.
//
// Determinism:
//   - Encoding follows the graph's insertion-order enumeration, so equal
//     build histories produce byte-identical output.
//
// Errors:
//   - Sentinels ErrNilGraph and ErrBadDocument; engine rejections during
//     decode surface wrapped, e.g. "codec: edge a->a: ...", matchable with
//     errors.Is against core sentinels.
//
// See: docs/CODEC.md for the document schema.
package codec
