package core_test

import (
	"fmt"

	"github.com/katalvlaran/primviz/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// 1) Create a 3-vertex graph:
	g, err := core.NewGraph(3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Add a triangle:
	_ = g.AddEdge(0, 1, 4)
	_ = g.AddEdge(1, 2, 1)
	_ = g.AddEdge(0, 2, 2)

	// 3) Inspect vertices and edges:
	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Edges:", g.Edges())
	fmt.Println("Edge 2-0 exists?", g.HasEdge(2, 0))
	fmt.Println("Total:", core.TotalWeight(g.Edges()))

	// Output:
	// Vertices: [0 1 2]
	// Edges: [(0,1) (1,2) (0,2)]
	// Edge 2-0 exists? true
	// Total: 7
}
