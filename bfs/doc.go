// Package bfs provides breadth-first search over a core.Graph,
// returning hop distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Components / Connected: connectivity of the whole graph.
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Why
//
//   - Report which vertices a spanning tree can never reach before running it.
//   - Lay out a spanning tree by level (depth from its root) for rendering.
//
// Determinism
//
//	core.Graph.Neighbors returns neighbors in edge insertion order, and BFS
//	enqueues them in that order, so the visit sequence is reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(3))
//	comps, err := bfs.Components(g)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex is outside [0, n).
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNeighbors            if core.Graph.Neighbors fails for any vertex.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
