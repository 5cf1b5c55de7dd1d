// Package builder constructs deterministic synthetic road networks on top
// of roadgraph/core, primarily for tests, examples, and benchmarks.
//
// A Constructor is a closure that mutates a core.RoadGraph under a resolved
// builder configuration. Build composes constructors in order over a fresh
// graph:
//
//	g, err := builder.Build(
//	    []builder.Option{builder.WithSeed(42), builder.WithTravelSpeed(50)},
//	    builder.Grid(3, 3),
//	)
//
// Determinism: the same options, seed, and constructor order always produce
// an identical graph. Vertex ids come from the configured IDFn; edge
// lengths from the configured LengthFn; travel times are derived from
// length and the configured travel speed when one is set.
//
// Errors (sentinels, matched via errors.Is):
//
//	ErrTooFewVertices - topology parameter below the constructor's minimum.
//	ErrBadDimensions  - non-positive grid rows or columns.
//	ErrBadSpeed       - negative travel speed.
//	ErrNilConstructor - nil Constructor passed to Build.
package builder
