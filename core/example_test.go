package core_test

import (
	"fmt"

	"github.com/katalvlaran/roadgraph/core"
)

// ExampleRoadGraph demonstrates population, weighted reads, and the effect
// of switching the resolution policy.
func ExampleRoadGraph() {
	g := core.NewRoadGraph()

	// A→B: 5 km, 4 min; B→C: 3 km, 6 min.
	ab := core.NewEdge(5)
	ab.SetTime(4)
	bc := core.NewEdge(3)
	bc.SetTime(6)
	_ = g.AddVertex("A").SetEdge("B", ab)
	_ = g.AddVertex("B").SetEdge("C", bc)

	outA, _ := g.Outgoing("A")
	w, _ := outA.Weight("B")
	fmt.Println("by length:", w)

	_ = g.SetWeightMode(core.ByTime)
	w, _ = outA.Weight("B")
	fmt.Println("by time:", w)

	// An override weight wins in every mode.
	_ = outA.SetWeight("B", 99)
	w, _ = outA.Weight("B")
	fmt.Println("override:", w)

	// Output:
	// by length: 5
	// by time: 4
	// override: 99
}

// ExampleRoadGraph_Reverse demonstrates the backward-search view.
func ExampleRoadGraph_Reverse() {
	g := core.NewRoadGraph()
	_ = g.AddVertex("A").SetEdge("B", core.NewEdge(5))
	_ = g.AddVertex("B").SetEdge("C", core.NewEdge(3))

	rev := g.Reverse()
	for _, src := range rev.Vertices() {
		out, _ := rev.Outgoing(src)
		for _, dest := range out.Destinations() {
			e, _ := out.Edge(dest)
			fmt.Printf("%s->%s length=%v\n", src, dest, e.Length())
		}
	}

	// Output:
	// B->A length=5
	// C->B length=3
}
