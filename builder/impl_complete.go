// File: impl_complete.go — Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order 0..n-1.
//   - Emits every ordered pair u→v with u ≠ v, outer index ascending,
//     inner index ascending (no self-loops).

package builder

import (
	"fmt"

	"github.com/katalvlaran/roadgraph/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete directed road
// network K_n (every vertex pair connected in both directions).
// Complexity: O(n) vertices + O(n²) edges.
func Complete(n int) Constructor {
	return func(g *core.RoadGraph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			g.AddVertex(cfg.idFn(i))
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if err := emitEdge(g, cfg, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return fmt.Errorf("%s: edge %d->%d: %w", methodComplete, i, j, err)
				}
			}
		}

		return nil
	}
}
