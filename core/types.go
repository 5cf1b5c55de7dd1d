// File: types.go
// Role: Declares Edge, OutgoingEdges, RoadGraph, WeightMode/WeightFunc,
//       sentinel errors, and the package constructors.

package core

import "errors"

// Sentinel errors for core road-graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent source vertex.
	ErrVertexNotFound = errors.New("core: source vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a destination with no stored edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNilEdge indicates a nil *Edge was passed where an edge is required.
	ErrNilEdge = errors.New("core: edge is nil")

	// ErrNilOutgoing indicates a nil *OutgoingEdges was passed to SetOutgoing.
	ErrNilOutgoing = errors.New("core: outgoing edge set is nil")

	// ErrGraphMismatch indicates an OutgoingEdges wired to one graph was
	// inserted into another; weight resolution would consult the wrong policy.
	ErrGraphMismatch = errors.New("core: outgoing edge set is wired to a different graph")

	// ErrDetached indicates a weighted read through an OutgoingEdges whose
	// parent reference is nil.
	ErrDetached = errors.New("core: outgoing edge set has no parent graph")

	// ErrBadWeightMode indicates SetWeightMode received a value outside the
	// closed WeightMode enum.
	ErrBadWeightMode = errors.New("core: unknown weight mode")

	// ErrNilWeightFunc indicates SetWeightFunc received a nil function.
	ErrNilWeightFunc = errors.New("core: weight function is nil")

	// ErrTimeNotSet indicates ByTime resolution reached an edge that defines
	// neither an override weight nor a travel time.
	ErrTimeNotSet = errors.New("core: edge travel time not set")
)

// Edge is the attribute holder for a single directed arc. The source and
// destination are implicit: an Edge is stored under its destination id
// inside the OutgoingEdges of its source vertex.
//
// Length is required and immutable after construction. Travel time and the
// override weight are optional; presence is tracked explicitly and is the
// only signal consulted by weight resolution.
type Edge struct {
	length float64

	time    float64
	hasTime bool

	weight    float64
	hasWeight bool
}

// NewEdge constructs an Edge with the given length.
// Complexity: O(1)
func NewEdge(length float64) *Edge {
	return &Edge{length: length}
}

// Length returns the edge length set at construction.
func (e *Edge) Length() float64 { return e.length }

// Time returns the travel time and whether it has been set.
func (e *Edge) Time() (float64, bool) { return e.time, e.hasTime }

// SetTime records the travel time for this edge.
func (e *Edge) SetTime(t float64) { e.time, e.hasTime = t, true }

// Weight returns the override weight and whether it has been set.
// When present, the override takes precedence over length and time in
// every resolution mode.
func (e *Edge) Weight() (float64, bool) { return e.weight, e.hasWeight }

// SetWeight records an override weight for this edge.
func (e *Edge) SetWeight(w float64) { e.weight, e.hasWeight = w, true }

// WeightFunc maps an Edge to its effective weight. Implementations must be
// pure with respect to the graph: they may read the edge but not mutate it.
type WeightFunc func(e *Edge) (float64, error)

// WeightMode selects one of the built-in weight-resolution policies.
type WeightMode int

const (
	// ByLength resolves to the override weight if present, else the length.
	ByLength WeightMode = iota
	// ByTime resolves to the override weight if present, else the travel time.
	ByTime
)

// resolveByLength is the default resolver; it cannot fail on a non-nil edge
// because length is always present.
func resolveByLength(e *Edge) (float64, error) {
	if e == nil {
		return 0, ErrNilEdge
	}
	if w, ok := e.Weight(); ok {
		return w, nil
	}

	return e.Length(), nil
}

// resolveByTime falls back to the travel time; an edge with neither an
// override weight nor a time is a caller-data-integrity failure.
func resolveByTime(e *Edge) (float64, error) {
	if e == nil {
		return 0, ErrNilEdge
	}
	if w, ok := e.Weight(); ok {
		return w, nil
	}
	if t, ok := e.Time(); ok {
		return t, nil
	}

	return 0, ErrTimeNotSet
}

// OutgoingEdges is the container of outgoing arcs of one source vertex:
// a mapping from destination-vertex id to *Edge. Weighted reads are
// indirected through the parent graph's configured WeightFunc via a
// non-owning back-reference; the parent must outlive any such read.
type OutgoingEdges struct {
	graph *RoadGraph // non-owning; weight resolution only
	edges map[string]*Edge
}

// NewOutgoingEdges constructs an empty OutgoingEdges wired to graph g.
// Callers inserting the result into a RoadGraph must wire it to that same
// graph, not some other instance.
// Complexity: O(1)
func NewOutgoingEdges(g *RoadGraph) *OutgoingEdges {
	return &OutgoingEdges{
		graph: g,
		edges: make(map[string]*Edge),
	}
}

// RoadGraph is the top-level road-network structure: a mapping from
// source-vertex id to OutgoingEdges plus the per-instance weight policy.
type RoadGraph struct {
	vertices map[string]*OutgoingEdges
	weightFn WeightFunc
}

// NewRoadGraph creates an empty RoadGraph with the default ByLength policy.
// Complexity: O(1)
func NewRoadGraph() *RoadGraph {
	return &RoadGraph{
		vertices: make(map[string]*OutgoingEdges),
		weightFn: resolveByLength,
	}
}
