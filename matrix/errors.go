// File: errors.go — sentinel errors for the matrix package.
// All public operations return these sentinels (possibly wrapped with
// context via %w); callers branch with errors.Is. No panics on
// user-triggered conditions.

package matrix

import "errors"

var (
	// ErrNilGraph indicates a nil *core.RoadGraph was passed to Adjacency.
	ErrNilGraph = errors.New("matrix: graph is nil")

	// ErrNotIndexed indicates a vertex id absent from the snapshot's index.
	ErrNotIndexed = errors.New("matrix: vertex not indexed")

	// ErrNoArc indicates the queried (from, to) pair holds no arc.
	ErrNoArc = errors.New("matrix: no arc between vertices")
)
