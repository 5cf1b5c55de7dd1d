// File: reverse.go
// Role: Construction of the edge-reversed graph (backward-search view).

package core

// Reverse constructs a new, independent RoadGraph containing, for every arc
// (src → dest, e) of g, the flipped arc (dest → src, e). Edge values are
// reused, not copied: the reversed graph shares *Edge instances with the
// original, so an override weight set through either graph is visible in
// both. The original graph is not mutated.
//
// Destinations are materialized as source vertices of the result on demand,
// each wired to the reversed graph; vertices of g that never occur as a
// destination do not appear in the result. Arcs are stored through the
// raw-edge path, never the weight-indirected one.
//
// The result always starts with the default ByLength policy regardless of
// g's configured mode; callers needing another policy must reconfigure the
// returned graph.
//
// Complexity: O(E) time and space, E = total number of arcs.
func (g *RoadGraph) Reverse() *RoadGraph {
	rev := NewRoadGraph()
	for src, out := range g.vertices {
		for dest, e := range out.edges {
			// Stored edges are never nil, so SetEdge cannot fail here.
			_ = rev.AddVertex(dest).SetEdge(src, e)
		}
	}

	return rev
}
