// File: outgoing.go
// Role: OutgoingEdges operations: raw edge storage, weighted reads,
//       removal, and deterministic destination enumeration.
// Determinism:
//   - Destinations() returns ids sorted lexicographically ascending.

package core

import "sort"

// Graph returns the parent RoadGraph this container is wired to, or nil if
// the container is detached.
func (o *OutgoingEdges) Graph() *RoadGraph { return o.graph }

// SetEdge unconditionally stores e as the edge toward dest, overwriting any
// prior value. This is the supported way to introduce a brand-new
// destination.
//
// Complexity: O(1)
func (o *OutgoingEdges) SetEdge(dest string, e *Edge) error {
	if e == nil {
		return ErrNilEdge
	}
	o.edges[dest] = e

	return nil
}

// Edge returns the raw stored edge toward dest, bypassing weight
// resolution, or ErrEdgeNotFound if dest has no entry.
//
// Complexity: O(1)
func (o *OutgoingEdges) Edge(dest string) (*Edge, error) {
	e, ok := o.edges[dest]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// SetWeight sets the override weight on the existing edge toward dest.
// It deliberately does NOT create a missing entry: assigning a bare weight
// to an unknown destination returns ErrEdgeNotFound. Use SetEdge to insert
// new destinations.
//
// Complexity: O(1)
func (o *OutgoingEdges) SetWeight(dest string, w float64) error {
	e, ok := o.edges[dest]
	if !ok {
		return ErrEdgeNotFound
	}
	e.SetWeight(w)

	return nil
}

// Weight is the indirected read path: it looks up the edge toward dest and
// returns the parent graph's weight-resolution function applied to it.
// Returns ErrEdgeNotFound if dest has no entry, ErrDetached if the
// container has no parent graph, and any resolution error (e.g.
// ErrTimeNotSet under ByTime) otherwise.
//
// Complexity: O(1) plus the cost of the configured WeightFunc.
func (o *OutgoingEdges) Weight(dest string) (float64, error) {
	e, ok := o.edges[dest]
	if !ok {
		return 0, ErrEdgeNotFound
	}
	if o.graph == nil {
		return 0, ErrDetached
	}

	return o.graph.weightFn(e)
}

// RemoveEdge deletes the entry toward dest, or returns ErrEdgeNotFound if
// no such entry exists. Removing an absent destination is never silent.
//
// Complexity: O(1)
func (o *OutgoingEdges) RemoveEdge(dest string) error {
	if _, ok := o.edges[dest]; !ok {
		return ErrEdgeNotFound
	}
	delete(o.edges, dest)

	return nil
}

// Destinations returns all destination ids sorted ascending. Insertion
// order carries no meaning; sorting keeps enumeration deterministic.
//
// Complexity: O(D log D) where D is the number of destinations.
func (o *OutgoingEdges) Destinations() []string {
	out := make([]string, 0, len(o.edges))
	for dest := range o.edges {
		out = append(out, dest)
	}
	sort.Strings(out)

	return out
}

// EdgeCount returns the number of stored destinations.
// Complexity: O(1)
func (o *OutgoingEdges) EdgeCount() int { return len(o.edges) }
