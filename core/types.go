// SPDX-License-Identifier: MIT
// Package core defines the central Graph and Edge types used by the parser,
// the MST builders and every consumer of their results.
//
// A Graph here is always undirected and weighted: vertices are the integers
// [0, VertexCount) and edges are kept in insertion order, which is the order
// the parser discovers them (row-major over the upper triangle). That order is
// part of the contract: MST tie-breaking depends on it.
//
// Errors:
//
//	ErrInvalidVertexCount - vertex count is not positive.
//	ErrVertexOutOfRange   - an endpoint is outside [0, VertexCount).
//	ErrBadWeight          - weight is not strictly positive.
//	ErrLoopNotAllowed     - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - a second edge between the same pair when multi-edges are disabled.
package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidVertexCount indicates a graph was requested with n <= 0 vertices.
	ErrInvalidVertexCount = errors.New("core: vertex count must be positive")

	// ErrVertexOutOfRange indicates an operation referenced a vertex outside [0, n).
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrBadWeight indicates a zero or negative weight; zero means "no edge".
	ErrBadWeight = errors.New("core: edge weight must be positive")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is an undirected weighted connection between two vertices.
//
// The field order mirrors the (weight, from, to) tuple of the input format;
// From/To keep the orientation in which the edge was discovered so that
// build logs print "(row,column)".
type Edge struct {
	// Weight is the cost of the edge; always > 0 for stored edges.
	Weight int64

	// From is the first endpoint (the matrix row).
	From int

	// To is the second endpoint (the matrix column).
	To int
}

// String renders the edge as "(from,to)".
func (e Edge) String() string {
	return fmt.Sprintf("(%d,%d)", e.From, e.To)
}

// Other returns the endpoint of e opposite to v, and false if v is not an endpoint.
func (e Edge) Other(v int) (int, bool) {
	switch v {
	case e.From:
		return e.To, true
	case e.To:
		return e.From, true
	default:
		return 0, false
	}
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is an undirected, weighted graph over the vertices [0, n).
//
// mu guards edges and pairs; vertexCount and the policy flags are immutable
// after NewGraph returns.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops

	// Storage
	vertexCount int
	edges       []Edge              // insertion order
	pairs       map[[2]int]struct{} // normalized (min,max) endpoint pairs
}

// NewGraph creates an empty Graph with n vertices and the given options.
// By default, the graph has no loops and no multi-edges.
// Complexity: O(1)
func NewGraph(n int, opts ...GraphOption) (*Graph, error) {
	if n <= 0 {
		return nil, fmt.Errorf("NewGraph(%d): %w", n, ErrInvalidVertexCount)
	}
	g := &Graph{
		vertexCount: n,
		pairs:       make(map[[2]int]struct{}),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}
