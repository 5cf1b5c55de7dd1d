// File: graph.go
// Role: RoadGraph vertex-level operations and weight-policy management.
// Determinism:
//   - Vertices() returns ids sorted lexicographically ascending.

package core

import "sort"

// SetOutgoing stores out as the outgoing-edge container of src, overwriting
// any prior value. The container must be wired to this graph: every
// weighted read through it consults the parent's policy, so inserting a
// container wired elsewhere would silently resolve against the wrong
// graph. Such misuse fails fast with ErrGraphMismatch.
//
// Complexity: O(1)
func (g *RoadGraph) SetOutgoing(src string, out *OutgoingEdges) error {
	if out == nil {
		return ErrNilOutgoing
	}
	if out.graph != g {
		return ErrGraphMismatch
	}
	g.vertices[src] = out

	return nil
}

// Outgoing returns the outgoing-edge container of src, or ErrVertexNotFound
// if src has no entry.
//
// Complexity: O(1)
func (g *RoadGraph) Outgoing(src string) (*OutgoingEdges, error) {
	out, ok := g.vertices[src]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return out, nil
}

// AddVertex returns the outgoing-edge container of src, creating and
// storing an empty, correctly wired one if src is new. Idempotent.
//
// Complexity: O(1)
func (g *RoadGraph) AddVertex(src string) *OutgoingEdges {
	if out, ok := g.vertices[src]; ok {
		return out
	}
	out := NewOutgoingEdges(g)
	g.vertices[src] = out

	return out
}

// RemoveVertex deletes src and its outgoing edges, or returns
// ErrVertexNotFound if src has no entry. Arcs pointing at src from other
// vertices are untouched; this is a top-level mapping operation only.
//
// Complexity: O(1)
func (g *RoadGraph) RemoveVertex(src string) error {
	if _, ok := g.vertices[src]; !ok {
		return ErrVertexNotFound
	}
	delete(g.vertices, src)

	return nil
}

// HasVertex reports whether src is present as a source vertex.
// Complexity: O(1)
func (g *RoadGraph) HasVertex(src string) bool {
	_, ok := g.vertices[src]
	return ok
}

// Vertices returns all source-vertex ids sorted ascending.
// Complexity: O(V log V)
func (g *RoadGraph) Vertices() []string {
	out := make([]string, 0, len(g.vertices))
	for src := range g.vertices {
		out = append(out, src)
	}
	sort.Strings(out)

	return out
}

// VertexCount returns the number of source vertices.
// Complexity: O(1)
func (g *RoadGraph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the total number of stored arcs across all vertices.
// Complexity: O(V)
func (g *RoadGraph) EdgeCount() int {
	var n int
	for _, out := range g.vertices {
		n += len(out.edges)
	}

	return n
}

// SetWeightMode installs one of the built-in resolution policies. An
// unrecognized mode returns ErrBadWeightMode and leaves the previously
// configured function untouched. The change takes effect on every
// subsequent weighted read through any OutgoingEdges of this graph.
//
// Complexity: O(1)
func (g *RoadGraph) SetWeightMode(mode WeightMode) error {
	switch mode {
	case ByLength:
		g.weightFn = resolveByLength
	case ByTime:
		g.weightFn = resolveByTime
	default:
		return ErrBadWeightMode
	}

	return nil
}

// SetWeightFunc installs a caller-supplied resolution function. A nil
// function returns ErrNilWeightFunc and leaves the previous one untouched.
//
// Complexity: O(1)
func (g *RoadGraph) SetWeightFunc(fn WeightFunc) error {
	if fn == nil {
		return ErrNilWeightFunc
	}
	g.weightFn = fn

	return nil
}

// WeightFunc returns the currently configured resolution function.
// Complexity: O(1)
func (g *RoadGraph) WeightFunc() WeightFunc { return g.weightFn }
