// impl_complete.go - Complete(n) constructor.

package builder

import (
	"fmt"

	"github.com/katalvlaran/vgraph/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor building the complete simple graph K_n
// on nodes 0..n-1. Undirected graphs get each pair once (i < j); directed
// graphs get every ordered pair with distinct endpoints. Self-loops are
// never emitted. Requires n >= 1.
func Complete[K comparable, V any](n int) Constructor[K, V] {
	return func(g *core.Graph[K, V], cfg Config[K, V]) error {
		// 1) Validate before touching the graph.
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewNodes)
		}
		if cfg.IDFn == nil {
			return fmt.Errorf("%s: %w", methodComplete, ErrNeedIDFn)
		}

		// 2) Add nodes in index order.
		for i := 0; i < n; i++ {
			if _, err := g.AddNode(cfg.IDFn(i)); err != nil {
				return fmt.Errorf("%s: add node %d: %w", methodComplete, i, err)
			}
		}

		// 3) Pair emission order is (i,j) ascending, matching enumeration.
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if !g.Directed() && i > j {
					continue
				}
				nodeU, nodeV := cfg.IDFn(i), cfg.IDFn(j)
				if _, _, err := g.PutEdgeValue(nodeU, nodeV, cfg.value(nodeU, nodeV)); err != nil {
					return fmt.Errorf("%s: edge %v-%v: %w", methodComplete, nodeU, nodeV, err)
				}
			}
		}

		return nil
	}
}
