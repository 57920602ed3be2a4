// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All functions return these sentinels (optionally wrapped with
// context via %w) and tests check them via errors.Is.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs.
//
// ERROR PRIORITY (documented, enforced in tests):
// shape -> value domain (negative) -> structural violations (asymmetry, diagonal).

var (
	// ErrBadShape is returned when the requested dimension is invalid (n <= 0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrDimensionMismatch indicates the number of supplied values is not n*n.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNegativeWeight signals a negative entry; weights are non-negative by contract.
	ErrNegativeWeight = errors.New("matrix: negative weight")

	// ErrAsymmetry signals that [i][j] != [j][i] for an undirected adjacency matrix.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric")

	// ErrNonZeroDiagonal signals a self-loop weight on the diagonal.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero")

	// ErrNilMatrix indicates that a nil *AdjacencyMatrix was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
