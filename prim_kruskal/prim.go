// Package prim_kruskal provides an implementation of Prim's Minimum Spanning Tree (MST) algorithm.
// It grows the MST from a root vertex by rescanning the whole edge list at every step
// and narrates each decision into a build log.
package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/primviz/buildlog"
	"github.com/katalvlaran/primviz/core"
)

// Prim computes the MST of g by growing outwards from the configured root (default 0).
// It is BuildPrim over g.Edges(), which keeps the parser's edge order.
//
// Error Conditions:
//   - ErrInvalidGraph          : if g is nil.
//   - see BuildPrim for the rest.
func Prim(g *core.Graph, opts ...Option) (*Tree, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: graph is nil", ErrInvalidGraph)
	}

	return BuildPrim(g.Edges(), g.VertexCount(), opts...)
}

// BuildPrim computes the MST of the graph described by (edges, vertexCount).
//
// Error Conditions:
//   - ErrInvalidGraph          : vertexCount <= 0, an endpoint outside [0,n), or a negative weight.
//   - ErrRootOutOfRange       : the root is outside [0,n).
//   - *DisconnectedGraphError : some step finds no edge leaving the grown component.
//   - ErrWeightOverflow       : the running total would exceed math.MaxInt64.
//   - ctx.Err()               : the context was cancelled between steps.
//
// Steps:
//  1. Validate input; mark the root as a member.
//  2. Log "<n> vertices found.".
//  3. Repeat n-1 times:
//     a. Scan every edge in order; a candidate has exactly one member endpoint.
//     b. Keep the candidate with strictly smallest weight (first encountered wins ties).
//     c. No candidate → *DisconnectedGraphError with the partial state.
//     d. Append the edge, mark both endpoints, accumulate its weight.
//     e. Log "Adding edge (from,to) with weight W.".
//  4. Log a blank line and "Total weight of spanning tree: W".
//
// The function is pure: identical inputs yield identical edges, total and log.
// Complexity: O(V·E) time, O(V) memory beyond the result.
func BuildPrim(edges []core.Edge, vertexCount int, opts ...Option) (*Tree, error) {
	o := resolve(opts)

	// 1. Validate.
	if err := validateInput(edges, vertexCount); err != nil {
		return nil, err
	}
	if o.Root < 0 || o.Root >= vertexCount {
		return nil, fmt.Errorf("%w: root %d not in [0,%d)", ErrRootOutOfRange, o.Root, vertexCount)
	}

	member := make([]bool, vertexCount)
	member[o.Root] = true

	// 2. Header line.
	var rec buildlog.Recorder
	rec.Record(buildlog.VerticesFound(vertexCount))

	mst := make([]core.Edge, 0, vertexCount-1)
	var totalWeight int64

	// 3. Main loop: exactly n-1 selections.
	for step := 1; step < vertexCount; step++ {
		if err := o.Ctx.Err(); err != nil {
			return nil, err
		}

		// 3a-b. Dense scan for the lightest crossing edge.
		best := -1
		for i, e := range edges {
			if member[e.From] == member[e.To] {
				// both inside or both outside: not a cut edge
				continue
			}
			if best < 0 || e.Weight < edges[best].Weight {
				best = i
			}
		}

		// 3c. Nothing crosses the cut.
		if best < 0 {
			reached, unreached := splitMembership(member)
			return nil, &DisconnectedGraphError{
				Method:    MethodPrim,
				Step:      step,
				Reached:   reached,
				Unreached: unreached,
				Partial:   mst,
				Log:       rec.Log(),
			}
		}

		// 3d-e. Take it.
		e := edges[best]
		sum, err := addWeight(totalWeight, e, step)
		if err != nil {
			return nil, err
		}
		member[e.From] = true
		member[e.To] = true
		mst = append(mst, e)
		totalWeight = sum
		rec.Record(buildlog.EdgeAdded(e))
	}

	// 4. Footer.
	rec.Blank()
	rec.Record(buildlog.TotalWeight(totalWeight))

	return &Tree{
		Method:      MethodPrim,
		Root:        o.Root,
		Edges:       mst,
		TotalWeight: totalWeight,
		Log:         rec.Log(),
	}, nil
}
