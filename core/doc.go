// Package core provides the fundamental in-memory road-network graph:
// a directed, weighted two-level associative structure mapping source
// vertices to their outgoing edges.
//
// The model G = (V,E) is deliberately minimal:
//
//   - RoadGraph maps a source-vertex id to its OutgoingEdges container.
//   - OutgoingEdges maps a destination-vertex id to an *Edge and keeps a
//     non-owning back-reference to its parent RoadGraph, used only to
//     resolve effective edge weights on read.
//   - Edge carries an immutable length, an optional travel time, and an
//     optional override weight that always wins during resolution.
//
// Vertex identifiers are opaque strings chosen by the caller; core imposes
// no structure on them.
//
// Weight resolution is a per-graph policy: ByLength (default), ByTime, or
// an arbitrary caller-supplied WeightFunc. Switching the policy changes the
// meaning of every subsequent weighted read through any OutgoingEdges of
// that graph; it never rewrites stored data.
//
// Reverse constructs a new, independent RoadGraph with every arc flipped
// (src→dest becomes dest→src, reusing the same *Edge values), the usual
// prerequisite for backward search from a destination. The result always
// starts with the default ByLength policy.
//
// Concurrency: core is single-threaded by contract. Operations are plain
// map lookups and in-memory traversals with no locks, no I/O, and no
// suspension points. Concurrent mutation of a RoadGraph, or of an
// OutgoingEdges together with its parent's weight policy, is undefined;
// callers requiring shared access must serialize externally.
//
// Errors (sentinels, matched via errors.Is):
//
//	ErrVertexNotFound - requested source vertex does not exist.
//	ErrEdgeNotFound   - requested destination has no stored edge.
//	ErrNilEdge        - nil *Edge passed to SetEdge.
//	ErrNilOutgoing    - nil *OutgoingEdges passed to SetOutgoing.
//	ErrGraphMismatch  - OutgoingEdges wired to a different graph.
//	ErrDetached       - weighted read through a nil parent reference.
//	ErrBadWeightMode  - unrecognized WeightMode value.
//	ErrNilWeightFunc  - nil WeightFunc passed to SetWeightFunc.
//	ErrTimeNotSet     - ByTime resolution on an edge without travel time.
package core
