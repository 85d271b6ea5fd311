// api.go - public entry point for the builder package.
//
// One orchestrator: BuildGraph creates the graph, resolves the Config and
// applies constructors in order. All topology factories live in impl_*.go.

package builder

import (
	"fmt"

	"github.com/katalvlaran/vgraph/core"
)

// Constructor applies one deterministic mutation to a graph under a
// resolved Config. Implementations validate their parameters first,
// return sentinel errors wrapped with the factory name, and never panic.
type Constructor[K comparable, V any] func(g *core.Graph[K, V], cfg Config[K, V]) error

// BuildGraph creates a new core.Graph with gopts, resolves the builder
// Config from bopts, and applies all constructors in order. The first
// failure is wrapped as "BuildGraph: %w" and returned; no partial cleanup
// is attempted.
//
// Determinism: equal options, seed and constructor order produce an
// identical graph.
func BuildGraph[K comparable, V any](gopts []core.Option, bopts []Option[K, V], cons ...Constructor[K, V]) (*core.Graph[K, V], error) {
	g := core.New[K, V](gopts...)

	cfg := newConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}
