package prim_kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/primviz/core"
	"github.com/katalvlaran/primviz/prim_kruskal"
)

// ExampleBuildPrim demonstrates Prim's narration on a small 4-vertex graph.
func ExampleBuildPrim() {
	edges := []core.Edge{
		{Weight: 2, From: 0, To: 1},
		{Weight: 6, From: 0, To: 3},
		{Weight: 3, From: 1, To: 2},
		{Weight: 8, From: 1, To: 3},
		{Weight: 5, From: 2, To: 3},
	}

	tree, err := prim_kruskal.BuildPrim(edges, 4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, line := range tree.Log.Lines() {
		fmt.Println(line)
	}
	// Output:
	// 4 vertices found.
	// Adding edge (0,1) with weight 2.
	// Adding edge (1,2) with weight 3.
	// Adding edge (2,3) with weight 5.
	//
	// Total weight of spanning tree: 10
}

// ExampleKruskal shows the cross-check agreeing on total weight.
func ExampleKruskal() {
	g, _ := core.NewGraph(3)
	_ = g.AddEdge(0, 1, 4)
	_ = g.AddEdge(1, 2, 1)
	_ = g.AddEdge(0, 2, 2)

	tree, _ := prim_kruskal.Kruskal(g)
	fmt.Println(tree.Edges, tree.TotalWeight)
	// Output: [(1,2) (0,2)] 3
}
