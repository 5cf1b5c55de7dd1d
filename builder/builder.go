// File: builder.go — the Build orchestrator and the Constructor contract.
//
// Design contract:
//   - One orchestrator: Build(opts, cons...). Creates g, resolves cfg,
//     runs cons in order, wraps the first failure.
//   - Constructors validate parameters early and return sentinel errors.
//   - Same options, seed, and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/roadgraph/core"
)

// Constructor applies a deterministic road-network mutation using the
// resolved builder configuration. Constructors must validate early, emit
// edges in a stable documented order, and return only sentinel errors.
type Constructor func(g *core.RoadGraph, cfg builderConfig) error

// Build creates a new core.RoadGraph, resolves the builder configuration
// from opts, and applies all constructors in order. The first constructor
// error is wrapped with "Build: %w" and returned immediately; no partial
// cleanup is attempted.
//
// Complexity: O(len(opts)) resolution plus the sum of constructor costs.
func Build(opts []Option, cons ...Constructor) (*core.RoadGraph, error) {
	g := core.NewRoadGraph()
	cfg := newBuilderConfig(opts...)
	if cfg.speed < 0 {
		return nil, fmt.Errorf("Build: speed=%g: %w", cfg.speed, ErrBadSpeed)
	}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: constructor at index %d: %w", i, ErrNilConstructor)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return g, nil
}

// emitEdge creates one edge from cfg (length, then derived travel time)
// and stores it through the raw-edge path src→dest.
func emitEdge(g *core.RoadGraph, cfg builderConfig, src, dest string) error {
	length := cfg.lengthFn(cfg.rng)
	e := core.NewEdge(length)
	if cfg.speed > 0 {
		e.SetTime(length / cfg.speed)
	}

	return g.AddVertex(src).SetEdge(dest, e)
}
