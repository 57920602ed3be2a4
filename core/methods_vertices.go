// File: methods_vertices.go
// Role: Vertex queries (VertexCount/Vertices/HasVertex), adjacency snapshots
//       (Neighbors/Degree) and Clone.
// Determinism:
//   - Vertices() is ascending; Neighbors() follows edge insertion order.

package core

import "fmt"

// VertexCount returns n, the number of vertices.
// The count is fixed at construction, so no lock is taken.
func (g *Graph) VertexCount() int {
	return g.vertexCount
}

// Vertices returns the vertex IDs 0..n-1 in ascending order.
// Complexity: O(V).
func (g *Graph) Vertices() []int {
	out := make([]int, g.vertexCount)
	for i := range out {
		out[i] = i
	}

	return out
}

// HasVertex reports whether id lies in [0, n).
func (g *Graph) HasVertex(id int) bool {
	return id >= 0 && id < g.vertexCount
}

// Neighbors returns the vertices adjacent to id, one entry per incident edge,
// in edge insertion order.
//
// Errors: ErrVertexOutOfRange.
// Complexity: O(E).
func (g *Graph) Neighbors(id int) ([]int, error) {
	if err := g.checkVertex(id); err != nil {
		return nil, fmt.Errorf("Neighbors(%d): %w", id, err)
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []int
	for _, e := range g.edges {
		if other, ok := e.Other(id); ok {
			out = append(out, other)
		}
	}

	return out, nil
}

// Degree returns the number of edges incident to id. A self-loop counts twice.
//
// Errors: ErrVertexOutOfRange.
// Complexity: O(E).
func (g *Graph) Degree(id int) (int, error) {
	if err := g.checkVertex(id); err != nil {
		return 0, fmt.Errorf("Degree(%d): %w", id, err)
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	deg := 0
	for _, e := range g.edges {
		if e.From == id {
			deg++
		}
		if e.To == id {
			deg++
		}
	}

	return deg, nil
}

// Clone returns a deep copy of g: same flags, same vertex count, same edge order.
// Complexity: O(E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{
		allowMulti:  g.allowMulti,
		allowLoops:  g.allowLoops,
		vertexCount: g.vertexCount,
		edges:       make([]Edge, len(g.edges)),
		pairs:       make(map[[2]int]struct{}, len(g.pairs)),
	}
	copy(c.edges, g.edges)
	for k := range g.pairs {
		c.pairs[k] = struct{}{}
	}

	return c
}

// checkVertex returns ErrVertexOutOfRange unless id lies in [0, n).
func (g *Graph) checkVertex(id int) error {
	if !g.HasVertex(id) {
		return fmt.Errorf("vertex %d not in [0,%d): %w", id, g.vertexCount, ErrVertexOutOfRange)
	}

	return nil
}
