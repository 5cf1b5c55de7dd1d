// Package matrix provides a dense adjacency-matrix view over a
// core.RoadGraph, backed by gonum's mat.Dense.
//
// Adjacency snapshots a graph into an N×N matrix where cell (i, j) holds
// the RESOLVED weight of the arc i→j — resolution goes through the graph's
// configured weight function, so the matrix reflects the active policy
// (ByLength, ByTime, or custom) at snapshot time. Cells with no arc hold
// NaN, which keeps "no road" distinguishable from a legitimate zero-weight
// road.
//
// Row/column order is the sorted vertex order of the source graph, exposed
// via the Index map and VertexAt. The snapshot is independent of the graph:
// later graph mutations or policy switches do not alter it.
//
// Errors (sentinels, matched via errors.Is):
//
//	ErrNilGraph   - nil *core.RoadGraph passed to Adjacency.
//	ErrNotIndexed - vertex id not present in the snapshot.
//	ErrNoArc      - queried pair has no arc in the snapshot.
//
// Resolution failures (e.g. core.ErrTimeNotSet under ByTime) surface from
// Adjacency wrapped with the offending arc's endpoints.
package matrix
