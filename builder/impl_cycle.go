// File: impl_cycle.go — Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order 0..n-1.
//   - Emits one-way arcs i→(i+1) mod n for i=0..n-1 in increasing order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/roadgraph/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds a one-way ring road C_n.
// Complexity: O(n) vertices + O(n) edges.
func Cycle(n int) Constructor {
	return func(g *core.RoadGraph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			g.AddVertex(cfg.idFn(i))
		}
		for i := 0; i < n; i++ {
			next := (i + 1) % n
			if err := emitEdge(g, cfg, cfg.idFn(i), cfg.idFn(next)); err != nil {
				return fmt.Errorf("%s: edge %d->%d: %w", methodCycle, i, next, err)
			}
		}

		return nil
	}
}
