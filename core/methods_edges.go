// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Edges/EdgeCount/TotalWeight.
// Determinism:
//   - Edges() returns edges in insertion order; callers rely on it for tie-breaks.
// Concurrency:
//   - Mutations under mu write lock.
//   - Read queries under mu read lock.

package core

import "fmt"

// AddEdge appends the undirected edge {from,to} with the given weight.
//
// Steps:
//  1. Validate endpoints against [0, VertexCount).
//  2. Validate weight > 0 and the loop policy.
//  3. Lock mu, check the multi-edge policy on the normalized pair.
//  4. Append to the ordered edge list.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, weight int64) error {
	// 1) Input validation
	if err := g.checkVertex(from); err != nil {
		return fmt.Errorf("AddEdge(%d,%d): %w", from, to, err)
	}
	if err := g.checkVertex(to); err != nil {
		return fmt.Errorf("AddEdge(%d,%d): %w", from, to, err)
	}
	if weight <= 0 {
		return fmt.Errorf("AddEdge(%d,%d) w=%d: %w", from, to, weight, ErrBadWeight)
	}
	if from == to && !g.allowLoops {
		return fmt.Errorf("AddEdge(%d,%d): %w", from, to, ErrLoopNotAllowed)
	}

	// 2) Insert edge under lock
	g.mu.Lock()
	defer g.mu.Unlock()

	key := pairKey(from, to)
	if _, dup := g.pairs[key]; dup && !g.allowMulti {
		return fmt.Errorf("AddEdge(%d,%d): %w", from, to, ErrMultiEdgeNotAllowed)
	}
	g.pairs[key] = struct{}{}
	g.edges = append(g.edges, Edge{Weight: weight, From: from, To: to})

	return nil
}

// HasEdge reports whether at least one edge joins u and v (in either orientation).
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.pairs[pairKey(u, v)]

	return ok
}

// Edges returns a copy of all edges in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of stored edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// TotalWeight sums the weights of the given edges.
// Complexity: O(len(edges)).
func TotalWeight(edges []Edge) int64 {
	var total int64
	for _, e := range edges {
		total += e.Weight
	}

	return total
}

// pairKey normalizes an undirected endpoint pair so that (u,v) and (v,u) collide.
func pairKey(u, v int) [2]int {
	if u > v {
		u, v = v, u
	}

	return [2]int{u, v}
}
