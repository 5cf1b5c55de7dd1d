package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadgraph/core"
)

// TestOutgoingEdges_SetEdgeRoundTrip verifies the raw storage path returns
// the exact stored value and that overwrite replaces it.
func TestOutgoingEdges_SetEdgeRoundTrip(t *testing.T) {
	g := core.NewRoadGraph()
	out := g.AddVertex("A")

	e1 := core.NewEdge(5)
	require.NoError(t, out.SetEdge("B", e1))

	got, err := out.Edge("B")
	require.NoError(t, err)
	require.Same(t, e1, got, "Edge(B) must return the exact stored *Edge")

	e2 := core.NewEdge(9)
	require.NoError(t, out.SetEdge("B", e2))
	got, err = out.Edge("B")
	require.NoError(t, err)
	require.Same(t, e2, got, "SetEdge must overwrite the prior value")

	require.ErrorIs(t, out.SetEdge("C", nil), core.ErrNilEdge)
	_, err = out.Edge("C")
	require.ErrorIs(t, err, core.ErrEdgeNotFound, "failed SetEdge must not create an entry")
}

// TestOutgoingEdges_SetWeight verifies the weight-style setter updates only
// existing destinations and never inserts new ones.
func TestOutgoingEdges_SetWeight(t *testing.T) {
	g := core.NewRoadGraph()
	out := g.AddVertex("A")
	require.NoError(t, out.SetEdge("B", core.NewEdge(5)))

	// Unknown destination: fails, no entry appears.
	require.ErrorIs(t, out.SetWeight("Z", 1), core.ErrEdgeNotFound)
	require.Equal(t, 1, out.EdgeCount())

	// Known destination: override lands on the stored edge.
	require.NoError(t, out.SetWeight("B", 99))
	e, err := out.Edge("B")
	require.NoError(t, err)
	w, ok := e.Weight()
	require.True(t, ok)
	require.Equal(t, 99.0, w)
}

// TestOutgoingEdges_WeightResolution covers override precedence and the
// per-mode fallbacks of the indirected read path.
func TestOutgoingEdges_WeightResolution(t *testing.T) {
	plain := core.NewEdge(5) // length only
	timed := core.NewEdge(5) // length + time
	timed.SetTime(3)
	forced := core.NewEdge(5) // length + time + override
	forced.SetTime(3)
	forced.SetWeight(42)

	cases := []struct {
		name    string
		mode    core.WeightMode
		edge    *core.Edge
		want    float64
		wantErr error
	}{
		{"LengthFallback", core.ByLength, plain, 5, nil},
		{"LengthIgnoresTime", core.ByLength, timed, 5, nil},
		{"OverrideBeatsLength", core.ByLength, forced, 42, nil},
		{"TimeFallback", core.ByTime, timed, 3, nil},
		{"OverrideBeatsTime", core.ByTime, forced, 42, nil},
		{"TimeMissing", core.ByTime, plain, 0, core.ErrTimeNotSet},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := core.NewRoadGraph()
			require.NoError(t, g.SetWeightMode(tc.mode))
			out := g.AddVertex("A")
			require.NoError(t, out.SetEdge("B", tc.edge))

			w, err := out.Weight("B")
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, w)
		})
	}
}

// TestOutgoingEdges_WeightLookupFailures verifies that weighted reads never
// return defaults for missing destinations or detached containers.
func TestOutgoingEdges_WeightLookupFailures(t *testing.T) {
	g := core.NewRoadGraph()
	out := g.AddVertex("A")

	_, err := out.Weight("B")
	require.ErrorIs(t, err, core.ErrEdgeNotFound)

	detached := core.NewOutgoingEdges(nil)
	require.NoError(t, detached.SetEdge("B", core.NewEdge(1)))
	_, err = detached.Weight("B")
	require.ErrorIs(t, err, core.ErrDetached)
}

// TestOutgoingEdges_RemoveEdge verifies strict removal semantics.
func TestOutgoingEdges_RemoveEdge(t *testing.T) {
	g := core.NewRoadGraph()
	out := g.AddVertex("A")
	require.NoError(t, out.SetEdge("B", core.NewEdge(1)))

	require.NoError(t, out.RemoveEdge("B"))
	require.ErrorIs(t, out.RemoveEdge("B"), core.ErrEdgeNotFound)
	require.Zero(t, out.EdgeCount())
}

// TestOutgoingEdges_Destinations verifies sorted, restartable enumeration.
func TestOutgoingEdges_Destinations(t *testing.T) {
	g := core.NewRoadGraph()
	out := g.AddVertex("X")
	for _, dest := range []string{"C", "A", "B"} {
		require.NoError(t, out.SetEdge(dest, core.NewEdge(1)))
	}

	require.Equal(t, []string{"A", "B", "C"}, out.Destinations())
	// Enumeration is restartable: a second call yields the same sequence.
	require.Equal(t, []string{"A", "B", "C"}, out.Destinations())
	require.Equal(t, 3, out.EdgeCount())
}

// TestEdge_Attributes locks in presence semantics of the optional fields.
func TestEdge_Attributes(t *testing.T) {
	e := core.NewEdge(12.5)
	require.Equal(t, 12.5, e.Length())

	_, ok := e.Time()
	require.False(t, ok, "time must be absent until set")
	_, ok = e.Weight()
	require.False(t, ok, "override weight must be absent until set")

	e.SetTime(0) // zero is a legitimate value, distinct from absent
	tm, ok := e.Time()
	require.True(t, ok)
	require.Zero(t, tm)

	e.SetWeight(0)
	w, ok := e.Weight()
	require.True(t, ok)
	require.Zero(t, w)
}
