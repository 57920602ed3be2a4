// Package prim_kruskal defines configuration options, results and errors for MST computation.
// It supports selecting between Prim and Kruskal via MSTOptions.
package prim_kruskal

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/primviz/buildlog"
	"github.com/katalvlaran/primviz/core"
)

// ErrInvalidGraph indicates the input cannot describe an undirected weighted graph:
// nil graph, non-positive vertex count, an endpoint outside [0, n) or a negative weight.
var ErrInvalidGraph = errors.New("prim_kruskal: MST requires a valid undirected, weighted graph")

// ErrRootOutOfRange indicates the Prim start vertex is outside [0, n).
var ErrRootOutOfRange = errors.New("prim_kruskal: root vertex out of range")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all vertices cannot be formed. Every *DisconnectedGraphError matches it.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrWeightOverflow indicates the selected weights sum past math.MaxInt64.
var ErrWeightOverflow = errors.New("prim_kruskal: total weight overflows int64")

// ErrUnknownMethod indicates MSTOptions.Method names no known algorithm.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// DisconnectedGraphError reports the step at which no edge joined the grown
// component to the rest of the graph, together with the partial state.
// No sentinel or out-of-range edge is ever emitted in its place.
type DisconnectedGraphError struct {
	// Method is the algorithm that gave up.
	Method string
	// Step is the 1-based selection step that found no candidate edge.
	Step int
	// Reached lists the vertices connected to the root, ascending.
	Reached []int
	// Unreached lists the vertices no selected edge can reach, ascending.
	Unreached []int
	// Partial holds the edges selected before the failure, in selection order.
	Partial []core.Edge
	// Log is the narration written up to the failure.
	Log buildlog.Log
}

func (e *DisconnectedGraphError) Error() string {
	return fmt.Sprintf("%s: no edge joins component %s to vertices %s (step %d)",
		ErrDisconnected.Error(), formatIDs(e.Reached), formatIDs(e.Unreached), e.Step)
}

// Is makes errors.Is(err, ErrDisconnected) true.
func (e *DisconnectedGraphError) Is(target error) bool {
	return target == ErrDisconnected
}

// formatIDs renders vertex IDs as "{0,1,2}".
func formatIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprint(id)
	}

	return "{" + strings.Join(parts, ",") + "}"
}

// Tree is the outcome of a successful MST build.
type Tree struct {
	// Method is the algorithm that produced the tree.
	Method string
	// Root is the Prim start vertex (0 for Kruskal).
	Root int
	// Edges are the selected edges, in selection order; len == n-1.
	Edges []core.Edge
	// TotalWeight is the sum of Edges' weights.
	TotalWeight int64
	// Log narrates each decision; len == n+2.
	Log buildlog.Log
}

// MethodPrim selects Prim's algorithm (grow from a root by dense edge scans).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run, and for Prim, which starting vertex to use.
// Use DefaultOptions() to get a default setup (Prim from vertex 0).
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root int

	// Ctx is checked once per selection step.
	Ctx context.Context
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = strings.ToLower(m)
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// WithContext sets a context for cancellation; nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(opts *MSTOptions) {
		if ctx != nil {
			opts.Ctx = ctx
		}
	}
}

// DefaultOptions returns MSTOptions initialized for Prim rooted at vertex 0.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodPrim,
		Root:   0,
		Ctx:    context.Background(),
	}
}

func resolve(opts []Option) MSTOptions {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Compute selects and runs the MST algorithm on g based on opts.
//
//	– MethodPrim:    Prim(g, opts...)
//	– MethodKruskal: Kruskal(g, opts...)
//	– otherwise:     ErrUnknownMethod.
func Compute(g *core.Graph, opts ...Option) (*Tree, error) {
	o := resolve(opts)
	switch o.Method {
	case MethodPrim:
		return Prim(g, opts...)
	case MethodKruskal:
		return Kruskal(g, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, o.Method)
	}
}

// validateInput checks the vertex count and every edge endpoint/weight.
// Complexity: O(E).
func validateInput(edges []core.Edge, n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: vertex count %d", ErrInvalidGraph, n)
	}
	for i, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return fmt.Errorf("%w: edge #%d %s outside [0,%d)", ErrInvalidGraph, i, e, n)
		}
		if e.Weight < 0 {
			return fmt.Errorf("%w: edge #%d %s has negative weight %d", ErrInvalidGraph, i, e, e.Weight)
		}
	}

	return nil
}

// addWeight returns total+e.Weight, or ErrWeightOverflow if the sum leaves int64.
// Weights are already known to be non-negative.
func addWeight(total int64, e core.Edge, step int) (int64, error) {
	if math.MaxInt64-total < e.Weight {
		return 0, fmt.Errorf("%w: step %d adding %s to %d", ErrWeightOverflow, step, e, total)
	}

	return total + e.Weight, nil
}

// splitMembership partitions [0,n) by the member flags.
func splitMembership(member []bool) (reached, unreached []int) {
	for v, in := range member {
		if in {
			reached = append(reached, v)
		} else {
			unreached = append(unreached, v)
		}
	}

	return reached, unreached
}
