// impl_path.go - Path(n) constructor.
//
// Nodes are added via cfg.IDFn in ascending index order; edges connect
// consecutive indices, so the emission order is stable.

package builder

import (
	"fmt"

	"github.com/katalvlaran/vgraph/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor building the simple path P_n: nodes 0..n-1
// connected as 0-1-2-...-(n-1). Requires n >= 2.
func Path[K comparable, V any](n int) Constructor[K, V] {
	return func(g *core.Graph[K, V], cfg Config[K, V]) error {
		// 1) Validate before touching the graph.
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewNodes)
		}
		if cfg.IDFn == nil {
			return fmt.Errorf("%s: %w", methodPath, ErrNeedIDFn)
		}

		// 2) Add nodes in index order so enumeration stays deterministic.
		for i := 0; i < n; i++ {
			if _, err := g.AddNode(cfg.IDFn(i)); err != nil {
				return fmt.Errorf("%s: add node %d: %w", methodPath, i, err)
			}
		}

		// 3) Connect consecutive indices.
		for i := 1; i < n; i++ {
			nodeU, nodeV := cfg.IDFn(i-1), cfg.IDFn(i)
			if _, _, err := g.PutEdgeValue(nodeU, nodeV, cfg.value(nodeU, nodeV)); err != nil {
				return fmt.Errorf("%s: edge %v-%v: %w", methodPath, nodeU, nodeV, err)
			}
		}

		return nil
	}
}
