// Package prim_kruskal provides an implementation of Kruskal's Minimum Spanning Tree algorithm.
// It narrates its selections in the same build-log format as Prim.
package prim_kruskal

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/primviz/buildlog"
	"github.com/katalvlaran/primviz/core"
)

// Kruskal computes the MST of g with a disjoint-set (union-find) over sorted edges.
func Kruskal(g *core.Graph, opts ...Option) (*Tree, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: graph is nil", ErrInvalidGraph)
	}

	return BuildKruskal(g.Edges(), g.VertexCount(), opts...)
}

// BuildKruskal computes the MST of (edges, vertexCount) using union-find with
// path compression and union by rank.
//
// Error Conditions:
//   - ErrInvalidGraph          : vertexCount <= 0, an endpoint outside [0,n), or a negative weight.
//   - *DisconnectedGraphError : fewer than n-1 edges could be joined.
//   - ErrWeightOverflow       : the running total would exceed math.MaxInt64.
//
// Steps:
//  1. Validate; log "<n> vertices found.".
//  2. Copy the edges, skip self-loops, stable-sort by ascending weight (ties keep input order).
//  3. Initialize parent[v] = v, rank[v] = 0.
//  4. For each sorted edge (u,v): if find(u) != find(v), union and select it; stop at n-1.
//  5. Fewer than n-1 edges → *DisconnectedGraphError with the root's component as Reached.
//  6. Log a blank line and the total.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func BuildKruskal(edges []core.Edge, vertexCount int, opts ...Option) (*Tree, error) {
	o := resolve(opts)

	// 1. Validate input.
	if err := validateInput(edges, vertexCount); err != nil {
		return nil, err
	}
	var rec buildlog.Recorder
	rec.Record(buildlog.VerticesFound(vertexCount))

	// 2. Filter self-loops and sort (stable for deterministic tie-breaking).
	sorted := make([]core.Edge, 0, len(edges))
	for _, e := range edges {
		if e.From == e.To {
			continue
		}
		sorted = append(sorted, e)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight < sorted[j].Weight
	})

	// 3. Initialize disjoint-set structures.
	parent := make([]int, vertexCount)
	rank := make([]int, vertexCount)
	for v := range parent {
		parent[v] = v
	}

	// Iterative find with path compression to avoid deep recursion.
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	// Union by rank merges two disjoint sets.
	union := func(u, v int) {
		rootU, rootV := find(u), find(v)
		if rank[rootU] < rank[rootV] {
			parent[rootU] = rootV
		} else {
			parent[rootV] = rootU
			if rank[rootU] == rank[rootV] {
				rank[rootU]++
			}
		}
	}

	// 4. Build MST by iterating over sorted edges.
	var (
		mst         = make([]core.Edge, 0, vertexCount-1)
		totalWeight int64
	)
	for _, e := range sorted {
		if len(mst) == vertexCount-1 {
			break
		}
		if err := o.Ctx.Err(); err != nil {
			return nil, err
		}
		if find(e.From) == find(e.To) {
			continue
		}
		sum, err := addWeight(totalWeight, e, len(mst)+1)
		if err != nil {
			return nil, err
		}
		union(e.From, e.To)
		mst = append(mst, e)
		totalWeight = sum
		rec.Record(buildlog.EdgeAdded(e))
	}

	// 5. Not enough edges: the graph was disconnected.
	if len(mst) < vertexCount-1 {
		member := make([]bool, vertexCount)
		rootSet := find(0)
		for v := range member {
			member[v] = find(v) == rootSet
		}
		reached, unreached := splitMembership(member)

		return nil, &DisconnectedGraphError{
			Method:    MethodKruskal,
			Step:      len(mst) + 1,
			Reached:   reached,
			Unreached: unreached,
			Partial:   mst,
			Log:       rec.Log(),
		}
	}

	// 6. Footer.
	rec.Blank()
	rec.Record(buildlog.TotalWeight(totalWeight))

	return &Tree{
		Method:      MethodKruskal,
		Edges:       mst,
		TotalWeight: totalWeight,
		Log:         rec.Log(),
	}, nil
}
