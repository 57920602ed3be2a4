package dfs

import (
	"fmt"

	"github.com/katalvlaran/primviz/core"
)

// FindCycle returns one cycle of the undirected graph g as a closed vertex
// walk (first == last), or nil if g is a forest. A self-loop is the cycle
// [v v]; two parallel edges u-v are the cycle [u v u].
//
// Vertices are explored in ascending order, so the result is deterministic.
// Complexity: O(V·E) with core.Graph's Neighbors.
func FindCycle(g *core.Graph) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	n := g.VertexCount()
	state := make([]int, n) // White / Gray / Black
	path := make([]int, 0, n)

	for v := 0; v < n; v++ {
		if state[v] != White {
			continue
		}
		cycle, err := visit(g, v, -1, state, &path)
		if err != nil {
			return nil, fmt.Errorf("dfs: FindCycle: %w", err)
		}
		if cycle != nil {
			return cycle, nil
		}
	}

	return nil, nil
}

// visit explores id, arriving from parent (-1 for a root). A Gray neighbor
// other than the tree edge back to parent closes a cycle.
func visit(g *core.Graph, id, parent int, state []int, path *[]int) ([]int, error) {
	state[id] = Gray
	*path = append(*path, id)

	nbs, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	// The edge to parent appears once per parallel edge; only the first is the tree edge.
	skippedParent := false
	for _, nbr := range nbs {
		if nbr == parent && !skippedParent {
			skippedParent = true
			continue
		}

		switch state[nbr] {
		case White:
			cycle, err := visit(g, nbr, id, state, path)
			if err != nil || cycle != nil {
				return cycle, err
			}
		case Gray:
			return closeCycle(*path, nbr), nil
		}
	}

	*path = (*path)[:len(*path)-1]
	state[id] = Black

	return nil, nil
}

// closeCycle copies path from the first occurrence of start and appends start.
func closeCycle(path []int, start int) []int {
	i := len(path) - 1
	for i >= 0 && path[i] != start {
		i--
	}
	cycle := make([]int, 0, len(path)-i+1)
	cycle = append(cycle, path[i:]...)

	return append(cycle, start)
}

// IsTree reports whether g is a spanning tree of its vertex set: connected
// and acyclic. A nil error means yes; otherwise the error wraps
// ErrCycleDetected or ErrNotSpanning with the offending vertices.
func IsTree(g *core.Graph) error {
	cycle, err := FindCycle(g)
	if err != nil {
		return err
	}
	if cycle != nil {
		return fmt.Errorf("%w: %v", ErrCycleDetected, cycle)
	}
	if g.VertexCount() == 0 {
		return nil
	}

	res, err := DFS(g, 0)
	if err != nil {
		return err
	}
	var missing []int
	for v, seen := range res.Visited {
		if !seen {
			missing = append(missing, v)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: unreached %v", ErrNotSpanning, missing)
	}

	return nil
}
