// File: adjacency.go — dense weighted adjacency snapshot of a RoadGraph.

package matrix

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/roadgraph/core"
)

// AdjacencyMatrix holds a fixed-size 2D snapshot of a road graph.
//
// Index maps vertex id → row/column index; ids maps back index → id.
// data.At(i, j) holds the resolved weight of arc i→j, or NaN if no arc
// exists. Use AdjacencyMatrix for constant-time weight queries over dense
// networks, or Dense() to hand the snapshot to gonum routines.
//
// Memory: O(V²).
type AdjacencyMatrix struct {
	// Index maps vertex id → row/column index in the dense data.
	Index map[string]int

	ids  []string
	data *mat.Dense
}

// Adjacency builds the weighted adjacency snapshot of g.
//
// Vertices are indexed in sorted id order. Every stored arc is resolved
// through g's configured weight function; a resolution failure aborts the
// snapshot and is returned wrapped with the arc's endpoints.
//
// Complexity: O(V² + E) time, O(V²) memory.
func Adjacency(g *core.RoadGraph) (*AdjacencyMatrix, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	// Index the union of source and destination ids: destination-only
	// vertices carry no OutgoingEdges of their own but still need a row
	// and column so every arc is representable.
	seen := make(map[string]struct{})
	for _, src := range g.Vertices() {
		seen[src] = struct{}{}
		out, err := g.Outgoing(src)
		if err != nil {
			return nil, err
		}
		for _, dest := range out.Destinations() {
			seen[dest] = struct{}{}
		}
	}
	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	n := len(ids)
	idx := make(map[string]int, n)
	for i, id := range ids {
		idx[id] = i
	}

	var data *mat.Dense
	if n > 0 {
		data = mat.NewDense(n, n, nil)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				data.Set(i, j, math.NaN())
			}
		}
	}

	resolve := g.WeightFunc()
	for _, src := range g.Vertices() {
		out, err := g.Outgoing(src)
		if err != nil {
			return nil, err
		}
		for _, dest := range out.Destinations() {
			e, err := out.Edge(dest)
			if err != nil {
				return nil, err
			}
			w, err := resolve(e)
			if err != nil {
				return nil, fmt.Errorf("matrix: arc %s->%s: %w", src, dest, err)
			}
			data.Set(idx[src], idx[dest], w)
		}
	}

	return &AdjacencyMatrix{Index: idx, ids: ids, data: data}, nil
}

// Weight returns the resolved weight of arc from→to as captured by the
// snapshot. ErrNotIndexed if either id is unknown, ErrNoArc if the cell
// holds no arc.
//
// Complexity: O(1)
func (m *AdjacencyMatrix) Weight(from, to string) (float64, error) {
	i, ok := m.Index[from]
	if !ok {
		return 0, fmt.Errorf("matrix: %q: %w", from, ErrNotIndexed)
	}
	j, ok := m.Index[to]
	if !ok {
		return 0, fmt.Errorf("matrix: %q: %w", to, ErrNotIndexed)
	}
	w := m.data.At(i, j)
	if math.IsNaN(w) {
		return 0, fmt.Errorf("matrix: %s->%s: %w", from, to, ErrNoArc)
	}

	return w, nil
}

// HasArc reports whether the snapshot holds an arc from→to.
// Complexity: O(1)
func (m *AdjacencyMatrix) HasArc(from, to string) bool {
	i, iok := m.Index[from]
	j, jok := m.Index[to]

	return iok && jok && !math.IsNaN(m.data.At(i, j))
}

// Dense returns the underlying gonum matrix (NaN marks absent arcs).
// The returned value is the snapshot itself, not a copy; treat it as
// read-only. Nil for an empty graph.
func (m *AdjacencyMatrix) Dense() *mat.Dense { return m.data }

// Order returns the number of indexed vertices.
func (m *AdjacencyMatrix) Order() int { return len(m.ids) }

// VertexAt returns the vertex id at row/column i in snapshot order.
func (m *AdjacencyMatrix) VertexAt(i int) (string, error) {
	if i < 0 || i >= len(m.ids) {
		return "", fmt.Errorf("matrix: index %d: %w", i, ErrNotIndexed)
	}

	return m.ids[i], nil
}
