// Package builder assembles deterministic graph fixtures on top of core.
//
// What:
//   - One orchestrator, BuildGraph, that creates a graph, resolves a
//     Config from functional options, and applies Constructors in order.
//   - Topology factories (Path, Cycle, Star, Complete, Grid), each returning
//     a Constructor closure that mutates the graph through core's public API.
//   - ID schemes for string-keyed graphs (Sequential, Alphabetic, Hex) and
//     value generators (ConstantValue, UniformInt, UniformFloat).
//
// Why:
//   - Tests, benchmarks and examples need reproducible topologies without
//     hand-writing edge lists.
//
// Determinism:
//   - The same graph options, builder options, seed and constructor order
//     always produce an identical graph. The RNG defaults to seed 1; use
//     WithSeed or WithRand to change it.
//
// Errors:
//   - Constructors never panic at runtime; they return sentinel errors
//     (ErrTooFewNodes, ErrNeedIDFn, ErrConstructFailed) wrapped with the
//     factory name. Option constructors panic on meaningless inputs.
//
// See: docs/BUILDER.md for topology diagrams.
package builder
