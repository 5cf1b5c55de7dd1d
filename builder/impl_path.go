// File: impl_path.go — Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order 0..n-1.
//   - Emits one-way arcs (i-1)→i for i=1..n-1 in increasing order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/roadgraph/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a one-way road path P_n.
// Complexity: O(n) vertices + O(n-1) edges.
func Path(n int) Constructor {
	return func(g *core.RoadGraph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			g.AddVertex(cfg.idFn(i))
		}
		for i := 1; i < n; i++ {
			if err := emitEdge(g, cfg, cfg.idFn(i-1), cfg.idFn(i)); err != nil {
				return fmt.Errorf("%s: edge %d->%d: %w", methodPath, i-1, i, err)
			}
		}

		return nil
	}
}
