// File: impl_grid.go — Grid(rows, cols) constructor.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrBadDimensions).
//   - Vertex ids are fixed "r,c" in row-major order (cfg.idFn not used:
//     coordinates are part of the topology's meaning).
//   - Models two-way streets: every orthogonal adjacency yields two arcs,
//     east/south first from each cell, each direction with its own Edge.

package builder

import (
	"fmt"

	"github.com/katalvlaran/roadgraph/core"
)

const methodGrid = "Grid"

// Grid returns a Constructor that builds an R×C two-way street grid with
// 4-neighborhood connectivity.
// Complexity: O(R*C) vertices + O(R*C) edges.
func Grid(rows, cols int) Constructor {
	return func(g *core.RoadGraph, cfg builderConfig) error {
		if rows < 1 || cols < 1 {
			return fmt.Errorf("%s: %dx%d: %w", methodGrid, rows, cols, ErrBadDimensions)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				g.AddVertex(gridID(r, c))
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := emitBoth(g, cfg, gridID(r, c), gridID(r, c+1)); err != nil {
						return fmt.Errorf("%s: %w", methodGrid, err)
					}
				}
				if r+1 < rows {
					if err := emitBoth(g, cfg, gridID(r, c), gridID(r+1, c)); err != nil {
						return fmt.Errorf("%s: %w", methodGrid, err)
					}
				}
			}
		}

		return nil
	}
}

// emitBoth stores one arc per direction between u and v.
func emitBoth(g *core.RoadGraph, cfg builderConfig, u, v string) error {
	if err := emitEdge(g, cfg, u, v); err != nil {
		return fmt.Errorf("edge %s->%s: %w", u, v, err)
	}
	if err := emitEdge(g, cfg, v, u); err != nil {
		return fmt.Errorf("edge %s->%s: %w", v, u, err)
	}

	return nil
}
