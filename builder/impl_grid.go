// impl_grid.go - Grid(rows, cols) constructor.

package builder

import (
	"fmt"

	"github.com/katalvlaran/vgraph/core"
)

const (
	methodGrid  = "Grid"
	minGridSide = 1
)

// Grid returns a Constructor building the rows x cols rectangular lattice
// with four-connectivity. Cells are numbered row-major (index r*cols + c);
// each cell links to its right and down neighbors, so directed graphs point
// rightward and downward. Requires rows >= 1 and cols >= 1.
func Grid[K comparable, V any](rows, cols int) Constructor[K, V] {
	return func(g *core.Graph[K, V], cfg Config[K, V]) error {
		// 1) Validate before touching the graph.
		if rows < minGridSide {
			return fmt.Errorf("%s: rows=%d < min=%d: %w", methodGrid, rows, minGridSide, ErrTooFewNodes)
		}
		if cols < minGridSide {
			return fmt.Errorf("%s: cols=%d < min=%d: %w", methodGrid, cols, minGridSide, ErrTooFewNodes)
		}
		if cfg.IDFn == nil {
			return fmt.Errorf("%s: %w", methodGrid, ErrNeedIDFn)
		}

		// 2) Add cells in row-major order.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if _, err := g.AddNode(cfg.IDFn(r*cols + c)); err != nil {
					return fmt.Errorf("%s: add node %d: %w", methodGrid, r*cols+c, err)
				}
			}
		}

		// 3) Link each cell to its right and down neighbors, scanning row-major.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					nodeU, nodeV := cfg.IDFn(r*cols+c), cfg.IDFn(r*cols+c+1)
					if _, _, err := g.PutEdgeValue(nodeU, nodeV, cfg.value(nodeU, nodeV)); err != nil {
						return fmt.Errorf("%s: edge %v-%v: %w", methodGrid, nodeU, nodeV, err)
					}
				}
				if r+1 < rows {
					nodeU, nodeV := cfg.IDFn(r*cols+c), cfg.IDFn((r+1)*cols+c)
					if _, _, err := g.PutEdgeValue(nodeU, nodeV, cfg.value(nodeU, nodeV)); err != nil {
						return fmt.Errorf("%s: edge %v-%v: %w", methodGrid, nodeU, nodeV, err)
					}
				}
			}
		}

		return nil
	}
}
