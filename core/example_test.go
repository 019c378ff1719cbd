package core_test

import (
	"fmt"

	"github.com/katalvlaran/netpath/core"
)

// ExampleGraph demonstrates registration, fluent linking and symmetric edges.
func ExampleGraph() {
	// 1) Register nodes; ids follow registration order.
	g := core.NewGraph()
	a := g.RegisterNode("A").ID
	b := g.RegisterNode("B").ID
	c := g.RegisterNode("C").ID

	// 2) Link from A to B and C in one chain.
	if err := g.From(a).Link(b, 3).Link(c, 2).Err(); err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Every link is usable in both directions with the same cost.
	ab, _ := g.Cost(a, b)
	ba, _ := g.Cost(b, a)
	fmt.Println("nodes:", g.Labels())
	fmt.Println("A→B:", ab, "B→A:", ba)
	fmt.Println("B→C exists?", g.HasEdge(b, c))

	// Output:
	// nodes: [A B C]
	// A→B: 3 B→A: 3
	// B→C exists? false
}

// ExampleGraph_Link shows that invalid links are rejected, not corrected.
func ExampleGraph_Link() {
	g := core.NewGraph()
	a := g.RegisterNode("A").ID

	_, err := g.Link(a, a, 1)
	fmt.Println(err)

	// Output:
	// Link(0→0): core: self-loop not allowed: invalid argument
}
