// impl_cycle.go - Cycle(n) constructor.

package builder

import (
	"fmt"

	"github.com/katalvlaran/vgraph/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor building the simple cycle C_n: nodes 0..n-1
// connected as 0-1-...-(n-1)-0. Requires n >= 3 so no edge is a loop or a
// duplicate of another.
func Cycle[K comparable, V any](n int) Constructor[K, V] {
	return func(g *core.Graph[K, V], cfg Config[K, V]) error {
		// 1) Validate before touching the graph.
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewNodes)
		}
		if cfg.IDFn == nil {
			return fmt.Errorf("%s: %w", methodCycle, ErrNeedIDFn)
		}

		// 2) Add nodes in index order.
		for i := 0; i < n; i++ {
			if _, err := g.AddNode(cfg.IDFn(i)); err != nil {
				return fmt.Errorf("%s: add node %d: %w", methodCycle, i, err)
			}
		}

		// 3) Ring edges, closing with (n-1)-0.
		for i := 0; i < n; i++ {
			nodeU, nodeV := cfg.IDFn(i), cfg.IDFn((i+1)%n)
			if _, _, err := g.PutEdgeValue(nodeU, nodeV, cfg.value(nodeU, nodeV)); err != nil {
				return fmt.Errorf("%s: edge %v-%v: %w", methodCycle, nodeU, nodeV, err)
			}
		}

		return nil
	}
}
