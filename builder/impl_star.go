// impl_star.go - Star(n) constructor.

package builder

import (
	"fmt"

	"github.com/katalvlaran/vgraph/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor building the star S_n: the center IDFn(0)
// connected to the n-1 leaves IDFn(1)..IDFn(n-1). On a directed graph
// every ray points from the center outward. Requires n >= 2.
func Star[K comparable, V any](n int) Constructor[K, V] {
	return func(g *core.Graph[K, V], cfg Config[K, V]) error {
		// 1) Validate before touching the graph.
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewNodes)
		}
		if cfg.IDFn == nil {
			return fmt.Errorf("%s: %w", methodStar, ErrNeedIDFn)
		}

		// 2) Center first, then leaves in index order.
		center := cfg.IDFn(0)
		if _, err := g.AddNode(center); err != nil {
			return fmt.Errorf("%s: add center: %w", methodStar, err)
		}
		for i := 1; i < n; i++ {
			leaf := cfg.IDFn(i)
			if _, err := g.AddNode(leaf); err != nil {
				return fmt.Errorf("%s: add node %d: %w", methodStar, i, err)
			}
			if _, _, err := g.PutEdgeValue(center, leaf, cfg.value(center, leaf)); err != nil {
				return fmt.Errorf("%s: edge %v-%v: %w", methodStar, center, leaf, err)
			}
		}

		return nil
	}
}
