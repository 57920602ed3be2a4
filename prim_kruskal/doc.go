// Package prim_kruskal computes the Minimum Spanning Tree (MST) of an undirected,
// weighted graph with Prim's algorithm, and offers Kruskal's algorithm as an
// independent cross-check. Both narrate every decision into a buildlog.Log.
//
// What & Why
//
//   - Given a connected, weighted graph G = (V, E), an MST is a subset T ⊆ E that
//     connects all vertices with no cycles and minimum total weight.
//   - The build log makes each step of the algorithm visible: one header line,
//     one line per selected edge, a blank line and the total weight.
//
// Algorithms Provided
//
//   - BuildPrim(edges, n) / Prim(g)
//
//   - Strategy: start with the root (vertex 0 unless WithRoot is given) as the only
//     member. n-1 times, scan every edge and take the lightest one with exactly one
//     member endpoint. Ties go to the edge encountered first in the input order.
//
//   - Complexity: O(V·E) time. The dense scan is deliberate: it fixes the tie-break
//     rule to input order, which a heap would not.
//
//   - BuildKruskal(edges, n) / Kruskal(g)
//
//   - Strategy: stable-sort edges by weight, join components with union-find.
//
//   - Complexity: O(E log E + α(V)·E).
//
//   - Its tree may differ from Prim's when weights tie, but its total weight never does.
//
// Error Conditions
//
//   - ErrInvalidGraph: nil graph, n <= 0, an endpoint outside [0,n), a negative weight.
//   - ErrRootOutOfRange (Prim only): root outside [0,n).
//   - *DisconnectedGraphError (matches ErrDisconnected): no edge leaves the grown
//     component. It carries the reached/unreached vertices, the partial edges and
//     the partial log. No placeholder edge is ever returned in its place.
//   - ErrWeightOverflow: the selected weights sum past math.MaxInt64; no wrapped
//     total is ever reported.
//   - ErrUnknownMethod: Compute with an unknown MSTOptions.Method.
//
// Example (n = 4):
//
//	edges  = (2,0,1) (6,0,3) (3,1,2) (8,1,3) (5,2,3)
//	MST    = (0,1) w2, (1,2) w3, (2,3) w5   total 10
//	log    = "4 vertices found."
//	         "Adding edge (0,1) with weight 2."
//	         "Adding edge (1,2) with weight 3."
//	         "Adding edge (2,3) with weight 5."
//	         ""
//	         "Total weight of spanning tree: 10"
package prim_kruskal
