// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/primviz/core"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls
// on a graph allowing multi-edges are safe and every edge is stored.
func TestConcurrentAddEdge(t *testing.T) {
	const num = 200 // number of concurrent adds
	g, err := core.NewGraph(num+1, core.WithMultiEdges())
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(num)
	// Launch num goroutines to add edges from 0 to i+1
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			require.NoError(t, g.AddEdge(0, id+1, int64(id+1)))
		}(i)
	}
	wg.Wait()

	nbs, err := g.Neighbors(0)
	require.NoError(t, err)
	require.Len(t, nbs, num)
}

// TestConcurrentReadsAndClone validates concurrent reads and clones
// do not race with writers.
func TestConcurrentReadsAndClone(t *testing.T) {
	g, err := core.NewGraph(64, core.WithMultiEdges())
	require.NoError(t, err)

	const readers = 50
	var wg sync.WaitGroup
	wg.Add(readers * 2)
	for i := 0; i < readers; i++ {
		go func(id int) {
			defer wg.Done()
			_ = g.AddEdge(id%64, (id+1)%64, 1)
		}(i)
		go func() {
			defer wg.Done()
			_ = g.Edges()
			_ = g.Clone()
			_, _ = g.Degree(0)
		}()
	}
	wg.Wait()
	require.Equal(t, readers, g.EdgeCount())
}
