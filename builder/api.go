// SPDX-License-Identifier: MIT
// Package: primviz/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildMatrix(n, bopts, cons...). Allocates the n×n matrix,
//     resolves cfg, runs cons in order.
//   - Topology edges are emitted by Constructors implemented in impl_*.go.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical matrices.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/primviz/matrix"
)

// Constructor writes a deterministic set of undirected edges into m using
// the resolved builderConfig. Constructors validate m.Size() early and
// return sentinel errors; they never panic.
type Constructor func(m *matrix.AdjacencyMatrix, cfg builderConfig) error

// BuildMatrix allocates an n×n matrix, resolves the builder configuration
// from bopts, and applies all constructors in order. Later constructors may
// overwrite earlier weights unless they document otherwise.
//
// Errors:
//   - ErrTooFewVertices for n < 1 or a constructor's minimum.
//   - ErrConstructFailed for a nil constructor.
//   - constructor errors wrapped as "BuildMatrix: %w".
func BuildMatrix(n int, bopts []BuilderOption, cons ...Constructor) (*matrix.AdjacencyMatrix, error) {
	if n < 1 {
		return nil, fmt.Errorf("BuildMatrix: n=%d: %w", n, ErrTooFewVertices)
	}
	m, err := matrix.New(n)
	if err != nil {
		return nil, fmt.Errorf("BuildMatrix: %w", err)
	}

	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildMatrix: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(m, cfg); err != nil {
			return nil, fmt.Errorf("BuildMatrix: %w", err)
		}
	}

	return m, nil
}

// Complete builds K_n.
func Complete(n int, opts ...BuilderOption) (*matrix.AdjacencyMatrix, error) {
	return BuildMatrix(n, opts, CompleteEdges())
}

// Cycle builds C_n (n ≥ 3).
func Cycle(n int, opts ...BuilderOption) (*matrix.AdjacencyMatrix, error) {
	return BuildMatrix(n, opts, CycleEdges())
}

// Path builds P_n (n ≥ 2).
func Path(n int, opts ...BuilderOption) (*matrix.AdjacencyMatrix, error) {
	return BuildMatrix(n, opts, PathEdges())
}

// Star builds a star with hub 0 and n-1 leaves (n ≥ 2).
func Star(n int, opts ...BuilderOption) (*matrix.AdjacencyMatrix, error) {
	return BuildMatrix(n, opts, StarEdges())
}

// Wheel builds W_n: hub 0 joined to the ring 1..n-1 (n ≥ 4).
func Wheel(n int, opts ...BuilderOption) (*matrix.AdjacencyMatrix, error) {
	return BuildMatrix(n, opts, WheelEdges())
}

// Grid builds a rows×cols 4-neighborhood grid; vertex r*cols+c.
func Grid(rows, cols int, opts ...BuilderOption) (*matrix.AdjacencyMatrix, error) {
	if rows < MinGridDim || cols < MinGridDim {
		return nil, fmt.Errorf("%s: %dx%d: %w", MethodGrid, rows, cols, ErrTooFewVertices)
	}

	return BuildMatrix(rows*cols, opts, GridEdges(rows, cols))
}

// RandomConnected builds a connected random graph: the spanning path
// 0-1-…-(n-1) plus every other pair independently with probability p.
// Requires WithSeed/WithRand when 0 < p < 1.
func RandomConnected(n int, p float64, opts ...BuilderOption) (*matrix.AdjacencyMatrix, error) {
	if n == 1 {
		// a single vertex is trivially connected; PathEdges needs two
		return BuildMatrix(n, opts, RandomSparseEdges(p))
	}

	return BuildMatrix(n, opts, PathEdges(), RandomSparseEdges(p))
}

// Kind names a topology for Generate.
type Kind string

// Supported kinds.
const (
	KindComplete Kind = "complete"
	KindCycle    Kind = "cycle"
	KindPath     Kind = "path"
	KindStar     Kind = "star"
	KindWheel    Kind = "wheel"
	KindRandom   Kind = "random"
)

// Kinds lists every kind Generate accepts, in display order.
func Kinds() []Kind {
	return []Kind{KindComplete, KindCycle, KindPath, KindStar, KindWheel, KindRandom}
}

// ParseKind validates a kind name (case-insensitive).
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds() {
		if k == known {
			return k, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Generate dispatches to the named topology. p is used by KindRandom only.
func Generate(kind Kind, n int, p float64, opts ...BuilderOption) (*matrix.AdjacencyMatrix, error) {
	switch kind {
	case KindComplete:
		return Complete(n, opts...)
	case KindCycle:
		return Cycle(n, opts...)
	case KindPath:
		return Path(n, opts...)
	case KindStar:
		return Star(n, opts...)
	case KindWheel:
		return Wheel(n, opts...)
	case KindRandom:
		return RandomConnected(n, p, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}
