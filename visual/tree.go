package visual

import (
	"fmt"

	"github.com/xlab/treeprint"

	"github.com/katalvlaran/primviz/bfs"
	"github.com/katalvlaran/primviz/core"
	"github.com/katalvlaran/primviz/prim_kruskal"
)

// treeGraph loads the tree edges into a core.Graph for traversal.
func treeGraph(vertexCount int, tree *prim_kruskal.Tree) (*core.Graph, error) {
	g, err := core.NewGraph(vertexCount, core.WithMultiEdges())
	if err != nil {
		return nil, fmt.Errorf("visual: %w", err)
	}
	for _, e := range tree.Edges {
		// zero-weight edges never come from a parsed matrix
		w := e.Weight
		if w <= 0 {
			w = 1
		}
		if err := g.AddEdge(e.From, e.To, w); err != nil {
			return nil, fmt.Errorf("visual: %w", err)
		}
	}

	return g, nil
}

// Levels returns the hop distance of each vertex from tree.Root, or -1 for
// vertices the tree does not reach.
func Levels(vertexCount int, tree *prim_kruskal.Tree) ([]int, error) {
	if tree == nil {
		return nil, ErrNoTree
	}
	g, err := treeGraph(vertexCount, tree)
	if err != nil {
		return nil, err
	}
	res, err := bfs.BFS(g, tree.Root)
	if err != nil {
		return nil, fmt.Errorf("visual: %w", err)
	}

	levels := make([]int, vertexCount)
	for v := range levels {
		if d, ok := res.Depth[v]; ok {
			levels[v] = d
		} else {
			levels[v] = -1
		}
	}

	return levels, nil
}

// Tree renders the spanning tree as an indented text tree rooted at
// tree.Root. Each child line shows the vertex and the weight of the edge to
// its parent. Children appear in BFS order, which follows selection order.
//
//	0
//	└── 1 (w=2)
//	    └── 2 (w=3)
//	        └── 3 (w=5)
func Tree(vertexCount int, tree *prim_kruskal.Tree) (string, error) {
	if tree == nil {
		return "", ErrNoTree
	}
	g, err := treeGraph(vertexCount, tree)
	if err != nil {
		return "", err
	}
	res, err := bfs.BFS(g, tree.Root)
	if err != nil {
		return "", fmt.Errorf("visual: %w", err)
	}

	weights := make(map[[2]int]int64, len(tree.Edges))
	for _, e := range tree.Edges {
		weights[pairOf(e)] = e.Weight
	}

	root := treeprint.NewWithRoot(fmt.Sprint(tree.Root))
	branches := map[int]treeprint.Tree{tree.Root: root}
	for _, v := range res.Order[1:] {
		parent := res.Parent[v]
		w := weights[pairOf(core.Edge{From: parent, To: v})]
		branches[v] = branches[parent].AddBranch(fmt.Sprintf("%d (w=%d)", v, w))
	}

	return root.String(), nil
}
