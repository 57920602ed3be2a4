// SPDX-License-Identifier: MIT
// Package parser: sentinel error set and the ParseError wrapper.

package parser

import (
	"errors"
	"fmt"
)

// Condition sentinels. Every failure is returned as a *ParseError whose Kind
// is one of these, so callers test with errors.Is(err, parser.ErrXxx).
var (
	// ErrEmptyInput is returned for blank text.
	ErrEmptyInput = errors.New("parser: empty input")

	// ErrMalformedToken is returned when a token is not a base-10 integer.
	ErrMalformedToken = errors.New("parser: malformed token")

	// ErrVertexCount is returned when N <= 0 or N exceeds the configured maximum.
	ErrVertexCount = errors.New("parser: invalid vertex count")

	// ErrTokenCount is returned when the matrix does not hold exactly N*N values.
	ErrTokenCount = errors.New("parser: wrong number of matrix values")

	// ErrNegativeWeight is returned when any matrix entry is negative.
	ErrNegativeWeight = errors.New("parser: negative weight")

	// ErrAsymmetric is returned in strict mode for [i][j] != [j][i] or a nonzero diagonal.
	ErrAsymmetric = errors.New("parser: matrix is not a symmetric adjacency matrix")

	// ErrInputTooLarge is returned by ParseReader when the input exceeds the byte limit.
	ErrInputTooLarge = errors.New("parser: input too large")
)

// ParseError reports why a text graph was rejected. It is returned before any
// MST algorithm runs.
type ParseError struct {
	// Kind is the condition sentinel (ErrEmptyInput, ErrMalformedToken, ...).
	Kind error
	// Detail is a human-readable description of the offending input.
	Detail string
	// Err holds the underlying cause; for ErrMalformedToken it is a
	// *multierror.Error listing every bad token.
	Err error
}

func (e *ParseError) Error() string {
	if e.Detail == "" {
		return e.Kind.Error()
	}

	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Detail)
}

// Is matches the condition sentinel.
func (e *ParseError) Is(target error) bool {
	return target == e.Kind
}

// Unwrap exposes the underlying cause.
func (e *ParseError) Unwrap() error {
	return e.Err
}

func newParseError(kind error, cause error, format string, args ...any) *ParseError {
	return &ParseError{Kind: kind, Detail: fmt.Sprintf(format, args...), Err: cause}
}
