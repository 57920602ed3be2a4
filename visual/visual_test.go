package visual_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/primviz/core"
	"github.com/katalvlaran/primviz/parser"
	"github.com/katalvlaran/primviz/prim_kruskal"
	"github.com/katalvlaran/primviz/visual"
)

const reference = "4,0,2,0,6,2,0,3,8,0,3,0,5,6,8,5,0"

func referenceTree(t *testing.T) (int, *prim_kruskal.Tree, visual.Scene) {
	t.Helper()

	n, edges, err := parser.Parse(reference)
	require.NoError(t, err)
	tree, err := prim_kruskal.BuildPrim(edges, n)
	require.NoError(t, err)
	scene, err := visual.NewScene(n, edges, tree)
	require.NoError(t, err)

	return n, tree, scene
}

func TestNewScene(t *testing.T) {
	t.Parallel()

	_, _, scene := referenceTree(t)

	require.Len(t, scene.Vertices, 4)
	assert.Equal(t, []int{0, 1, 2, 3}, []int{scene.Vertices[0].Level, scene.Vertices[1].Level, scene.Vertices[2].Level, scene.Vertices[3].Level})
	assert.Equal(t, "2", scene.Vertices[2].Label)

	require.Len(t, scene.Edges, 5)
	inTree := map[[2]int]int{}
	for _, l := range scene.Edges {
		if l.InTree {
			inTree[[2]int{l.From, l.To}] = l.Step
		}
	}
	assert.Equal(t, map[[2]int]int{{0, 1}: 1, {1, 2}: 2, {2, 3}: 3}, inTree)
	assert.Equal(t, int64(10), scene.TotalWeight)

	tree := scene.TreeEdges()
	require.Len(t, tree, 3)
	assert.Equal(t, visual.Link{From: 2, To: 3, Weight: 5, InTree: true, Step: 3}, tree[2])
}

func TestNewScene_JSON(t *testing.T) {
	t.Parallel()

	_, _, scene := referenceTree(t)
	raw, err := json.Marshal(scene)
	require.NoError(t, err)

	var generic map[string]any
	require.NoError(t, json.Unmarshal(raw, &generic))
	assert.Contains(t, generic, "vertices")
	assert.Contains(t, generic, "edges")
	assert.EqualValues(t, 10, generic["totalWeight"])

	first := generic["edges"].([]any)[0].(map[string]any)
	assert.Equal(t, map[string]any{"from": 0.0, "to": 1.0, "weight": 2.0, "inTree": true, "step": 1.0}, first)
	// non-tree edges omit step
	second := generic["edges"].([]any)[1].(map[string]any)
	assert.NotContains(t, second, "step")
}

func TestNewScene_ParallelEdges(t *testing.T) {
	t.Parallel()

	edges := []core.Edge{
		{Weight: 1, From: 0, To: 1},
		{Weight: 1, From: 0, To: 1},
	}
	tree, err := prim_kruskal.BuildPrim(edges, 2)
	require.NoError(t, err)
	scene, err := visual.NewScene(2, edges, tree)
	require.NoError(t, err)

	assert.Equal(t, []visual.Link{
		{From: 0, To: 1, Weight: 1, InTree: true, Step: 1},
		{From: 0, To: 1, Weight: 1},
	}, scene.Edges)
	assert.Equal(t, []visual.Link{{From: 0, To: 1, Weight: 1, InTree: true, Step: 1}}, scene.TreeEdges())
}

func TestNewScene_ForeignTreeEdge(t *testing.T) {
	t.Parallel()

	tree := &prim_kruskal.Tree{Edges: []core.Edge{{Weight: 4, From: 0, To: 1}}}
	_, err := visual.NewScene(2, []core.Edge{{Weight: 3, From: 0, To: 1}}, tree)
	assert.Error(t, err)
}

func TestNewScene_NilTree(t *testing.T) {
	t.Parallel()

	_, err := visual.NewScene(2, nil, nil)
	assert.ErrorIs(t, err, visual.ErrNoTree)
	_, err = visual.Tree(2, nil)
	assert.ErrorIs(t, err, visual.ErrNoTree)
}

func TestTree_Text(t *testing.T) {
	t.Parallel()

	n, tree, _ := referenceTree(t)
	out, err := visual.Tree(n, tree)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "0", lines[0])
	assert.Contains(t, lines[1], "1 (w=2)")
	assert.Contains(t, lines[2], "2 (w=3)")
	assert.Contains(t, lines[3], "3 (w=5)")
}

func TestTree_StarShape(t *testing.T) {
	t.Parallel()

	// star around 0 rooted at 2: 2 → 0 → {1,3}
	_, edges, err := parser.Parse("4,0,1,1,1,1,0,0,0,1,0,0,0,1,0,0,0")
	require.NoError(t, err)
	tree, err := prim_kruskal.BuildPrim(edges, 4, prim_kruskal.WithRoot(2))
	require.NoError(t, err)

	levels, err := visual.Levels(4, tree)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 0, 2}, levels)

	out, err := visual.Tree(4, tree)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "2\n"), out)
	assert.Contains(t, out, "0 (w=1)")
}
