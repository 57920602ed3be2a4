package prim_kruskal_test

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/primviz/core"
	"github.com/katalvlaran/primviz/prim_kruskal"
)

// referenceEdges is the upper triangle of
//
//	0 2 0 6
//	2 0 3 8
//	0 3 0 5
//	6 8 5 0
//
// in row-major order.
func referenceEdges() []core.Edge {
	return []core.Edge{
		{Weight: 2, From: 0, To: 1},
		{Weight: 6, From: 0, To: 3},
		{Weight: 3, From: 1, To: 2},
		{Weight: 8, From: 1, To: 3},
		{Weight: 5, From: 2, To: 3},
	}
}

// buildMediumGraph creates a connected graph: a random-weight chain 0-1-…-(n-1)
// plus extra random edges, seeded for reproducibility.
func buildMediumGraph(tb testing.TB, n, edgesCount int) *core.Graph {
	tb.Helper()

	g, err := core.NewGraph(n)
	require.NoError(tb, err)
	r := rand.New(rand.NewSource(42))

	// chain guarantees connectivity
	for i := 1; i < n; i++ {
		require.NoError(tb, g.AddEdge(i-1, i, int64(1+r.Intn(10))))
	}

	// duplicates are rejected by the graph and simply retried
	for extra := edgesCount - (n - 1); extra > 0; {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		if err := g.AddEdge(u, v, int64(1+r.Intn(100))); err == nil {
			extra--
		}
	}

	return g
}

// TestBuildPrim_Reference checks edges, total and the exact narration for the 4-vertex example.
func TestBuildPrim_Reference(t *testing.T) {
	t.Parallel()

	tree, err := prim_kruskal.BuildPrim(referenceEdges(), 4)
	require.NoError(t, err)

	wantEdges := []core.Edge{
		{Weight: 2, From: 0, To: 1},
		{Weight: 3, From: 1, To: 2},
		{Weight: 5, From: 2, To: 3},
	}
	if diff := cmp.Diff(wantEdges, tree.Edges); diff != "" {
		t.Fatalf("edges mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, int64(10), tree.TotalWeight)
	assert.Equal(t, prim_kruskal.MethodPrim, tree.Method)

	wantLog := []string{
		"4 vertices found.",
		"Adding edge (0,1) with weight 2.",
		"Adding edge (1,2) with weight 3.",
		"Adding edge (2,3) with weight 5.",
		"",
		"Total weight of spanning tree: 10",
	}
	assert.Equal(t, wantLog, tree.Log.Lines())
}

// TestBuildPrim_SingleVertex: one vertex, no edges, zero total, log of n+2 lines.
func TestBuildPrim_SingleVertex(t *testing.T) {
	t.Parallel()

	tree, err := prim_kruskal.BuildPrim(nil, 1)
	require.NoError(t, err)
	assert.Empty(t, tree.Edges)
	assert.Zero(t, tree.TotalWeight)
	assert.Equal(t, []string{
		"1 vertices found.",
		"",
		"Total weight of spanning tree: 0",
	}, tree.Log.Lines())
}

// TestBuildPrim_TieKeepsInputOrder: equal weights resolve to the earliest candidate edge.
func TestBuildPrim_TieKeepsInputOrder(t *testing.T) {
	t.Parallel()

	edges := []core.Edge{
		{Weight: 1, From: 0, To: 1},
		{Weight: 1, From: 0, To: 2},
		{Weight: 1, From: 1, To: 2},
	}
	tree, err := prim_kruskal.BuildPrim(edges, 3)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{edges[0], edges[1]}, tree.Edges)

	// Same weights, swapped order: the first listed candidate still wins.
	swapped := []core.Edge{edges[1], edges[0], edges[2]}
	tree, err = prim_kruskal.BuildPrim(swapped, 3)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{swapped[0], swapped[1]}, tree.Edges)
}

// TestBuildPrim_Deterministic: repeated runs yield identical trees and logs.
func TestBuildPrim_Deterministic(t *testing.T) {
	t.Parallel()

	g := buildMediumGraph(t, 60, 240)
	first, err := prim_kruskal.Prim(g)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := prim_kruskal.Prim(g)
		require.NoError(t, err)
		assert.Equal(t, first.Edges, again.Edges)
		assert.Equal(t, first.Log.Lines(), again.Log.Lines())
	}
	assert.Len(t, first.Edges, 59)
	assert.Equal(t, 62, first.Log.Len())
}

// TestBuildPrim_ZeroWeightEdge: zero weight is a legal edge weight for the algorithm.
func TestBuildPrim_ZeroWeightEdge(t *testing.T) {
	t.Parallel()

	tree, err := prim_kruskal.BuildPrim([]core.Edge{{Weight: 0, From: 0, To: 1}}, 2)
	require.NoError(t, err)
	assert.Zero(t, tree.TotalWeight)
	assert.Len(t, tree.Edges, 1)
}

// TestDisconnected reports the partial state from both algorithms and never a placeholder edge.
func TestDisconnected(t *testing.T) {
	t.Parallel()

	edges := []core.Edge{
		{Weight: 1, From: 0, To: 1},
		{Weight: 1, From: 2, To: 3},
	}

	_, err := prim_kruskal.BuildPrim(edges, 4)
	require.Error(t, err)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)

	var de *prim_kruskal.DisconnectedGraphError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, prim_kruskal.MethodPrim, de.Method)
	assert.Equal(t, 2, de.Step)
	assert.Equal(t, []int{0, 1}, de.Reached)
	assert.Equal(t, []int{2, 3}, de.Unreached)
	assert.Equal(t, []core.Edge{edges[0]}, de.Partial)
	assert.Equal(t, []string{"4 vertices found.", "Adding edge (0,1) with weight 1."}, de.Log.Lines())
	assert.Contains(t, de.Error(), "{0,1}")
	for _, e := range de.Partial {
		assert.GreaterOrEqual(t, e.From, 0)
		assert.GreaterOrEqual(t, e.To, 0)
	}

	_, err = prim_kruskal.BuildKruskal(edges, 4)
	require.True(t, errors.As(err, &de))
	assert.Equal(t, prim_kruskal.MethodKruskal, de.Method)
	assert.Equal(t, 3, de.Step)
	assert.Equal(t, []int{0, 1}, de.Reached)
	assert.Equal(t, []int{2, 3}, de.Unreached)
}

// TestDisconnected_IsolatedVertices: two vertices, no edges.
func TestDisconnected_IsolatedVertices(t *testing.T) {
	t.Parallel()

	_, err := prim_kruskal.BuildPrim(nil, 2)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
	_, err = prim_kruskal.BuildKruskal(nil, 2)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
}

// TestValidation covers malformed input and options.
func TestValidation(t *testing.T) {
	t.Parallel()

	_, err := prim_kruskal.Prim(nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)
	_, err = prim_kruskal.Kruskal(nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)

	_, err = prim_kruskal.BuildPrim(nil, 0)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)

	_, err = prim_kruskal.BuildPrim([]core.Edge{{Weight: 1, From: 0, To: 5}}, 2)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)

	_, err = prim_kruskal.BuildKruskal([]core.Edge{{Weight: -1, From: 0, To: 1}}, 2)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)

	_, err = prim_kruskal.BuildPrim(referenceEdges(), 4, prim_kruskal.WithRoot(4))
	assert.ErrorIs(t, err, prim_kruskal.ErrRootOutOfRange)
	_, err = prim_kruskal.BuildPrim(referenceEdges(), 4, prim_kruskal.WithRoot(-1))
	assert.ErrorIs(t, err, prim_kruskal.ErrRootOutOfRange)
}

// TestWeightOverflow rejects trees whose total does not fit in int64.
func TestWeightOverflow(t *testing.T) {
	t.Parallel()

	const huge = math.MaxInt64
	edges := []core.Edge{
		{Weight: huge, From: 0, To: 1},
		{Weight: 5, From: 1, To: 2},
	}

	tree, err := prim_kruskal.BuildPrim(edges, 3)
	assert.ErrorIs(t, err, prim_kruskal.ErrWeightOverflow)
	assert.Nil(t, tree)

	tree, err = prim_kruskal.BuildKruskal(edges, 3)
	assert.ErrorIs(t, err, prim_kruskal.ErrWeightOverflow)
	assert.Nil(t, tree)

	// exactly MaxInt64 still fits
	edges[1].Weight = 0
	tree, err = prim_kruskal.BuildPrim(edges, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(huge), tree.TotalWeight)
	assert.Equal(t, "Total weight of spanning tree: 9223372036854775807", tree.Log.Lines()[4])
}

// TestBuildPrim_Root: a different root changes the order but not the total.
func TestBuildPrim_Root(t *testing.T) {
	t.Parallel()

	tree, err := prim_kruskal.BuildPrim(referenceEdges(), 4, prim_kruskal.WithRoot(3))
	require.NoError(t, err)
	assert.Equal(t, 3, tree.Root)
	assert.Equal(t, int64(10), tree.TotalWeight)
	assert.Equal(t, core.Edge{Weight: 5, From: 2, To: 3}, tree.Edges[0])
}

// TestContextCancelled stops before the first selection.
func TestContextCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := prim_kruskal.BuildPrim(referenceEdges(), 4, prim_kruskal.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	_, err = prim_kruskal.BuildKruskal(referenceEdges(), 4, prim_kruskal.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestCompute dispatches by method name.
func TestCompute(t *testing.T) {
	t.Parallel()

	g, err := core.NewGraph(4)
	require.NoError(t, err)
	for _, e := range referenceEdges() {
		require.NoError(t, g.AddEdge(e.From, e.To, e.Weight))
	}

	tree, err := prim_kruskal.Compute(g)
	require.NoError(t, err)
	assert.Equal(t, prim_kruskal.MethodPrim, tree.Method)

	tree, err = prim_kruskal.Compute(g, prim_kruskal.WithMethod("Kruskal"))
	require.NoError(t, err)
	assert.Equal(t, prim_kruskal.MethodKruskal, tree.Method)
	assert.Equal(t, int64(10), tree.TotalWeight)
	assert.Equal(t, "Adding edge (0,1) with weight 2.", tree.Log.Lines()[1])

	_, err = prim_kruskal.Compute(g, prim_kruskal.WithMethod("boruvka"))
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)
}

// TestPrimMatchesKruskal: both algorithms agree on the MST weight.
func TestPrimMatchesKruskal(t *testing.T) {
	t.Parallel()

	for _, size := range []struct{ n, m int }{{5, 8}, {40, 120}, {100, 600}} {
		g := buildMediumGraph(t, size.n, size.m)
		p, err := prim_kruskal.Prim(g)
		require.NoError(t, err)
		k, err := prim_kruskal.Kruskal(g)
		require.NoError(t, err)
		assert.Equal(t, k.TotalWeight, p.TotalWeight, "n=%d", size.n)
		assert.Equal(t, core.TotalWeight(p.Edges), p.TotalWeight)
		assert.Len(t, p.Edges, size.n-1)
		assert.Len(t, k.Edges, size.n-1)
	}
}
