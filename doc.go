// Package roadgraph is an in-memory model of directed, weighted road
// networks: a small, composable building block for routing and simulation
// code that needs a graph it can populate, reweight, and reverse.
//
// What lives where:
//
//	core/    — RoadGraph, OutgoingEdges, Edge: the two-level associative
//	           structure, configurable weight resolution (by length, by
//	           travel time, or a custom function), and Reverse() for
//	           backward-search views.
//	builder/ — deterministic synthetic road networks (Path, Cycle, Grid,
//	           Complete) for tests, examples, and benchmarks.
//	matrix/  — dense weighted adjacency snapshots backed by gonum.
//
// Quick ASCII example:
//
//	A ──5km── B ──3km── C
//
//	g := core.NewRoadGraph()
//	g.AddVertex("A").SetEdge("B", core.NewEdge(5))
//	g.AddVertex("B").SetEdge("C", core.NewEdge(3))
//	back := g.Reverse() // B→A, C→B
//
// Path search, data loading, and persistence are deliberately out of
// scope: roadgraph is the structure those systems consume.
package roadgraph
