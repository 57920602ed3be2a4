// SPDX-License-Identifier: MIT
// Package parser turns the comma-separated text encoding of a graph,
// "N,a00,a01,...,a(N-1)(N-1)", into an adjacency matrix and an edge list.
//
// Tokens are split on commas and trimmed of surrounding whitespace, so line
// breaks after commas are accepted. Edges come from the upper triangle only,
// in row-major order; that order is what Prim's tie-break depends on.
package parser

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/katalvlaran/primviz/core"
	"github.com/katalvlaran/primviz/matrix"
)

// Parse reads text and returns the vertex count and the upper-triangle edges.
//
// Errors (all *ParseError):
//   - ErrEmptyInput      : text is blank.
//   - ErrMalformedToken  : one or more tokens are not integers (every one is listed).
//   - ErrVertexCount     : N <= 0 or N > MaxVertices.
//   - ErrTokenCount      : not exactly N*N matrix values.
//   - ErrNegativeWeight  : a negative entry.
//   - ErrAsymmetric      : strict mode only.
func Parse(text string, opts ...Option) (int, []core.Edge, error) {
	m, err := ParseMatrix(text, opts...)
	if err != nil {
		return 0, nil, err
	}

	return m.Size(), m.Edges(), nil
}

// ParseGraph is Parse returning a *core.Graph whose edge order is the parse order.
func ParseGraph(text string, opts ...Option) (*core.Graph, error) {
	m, err := ParseMatrix(text, opts...)
	if err != nil {
		return nil, err
	}

	return m.ToGraph()
}

// ParseReader reads at most MaxBytes from r and parses it.
// Errors: ErrInputTooLarge (as *ParseError) on overflow, read errors as-is.
func ParseReader(r io.Reader, opts ...Option) (*matrix.AdjacencyMatrix, error) {
	o := resolve(opts)
	raw, err := io.ReadAll(io.LimitReader(r, o.MaxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("parser: read: %w", err)
	}
	if int64(len(raw)) > o.MaxBytes {
		return nil, newParseError(ErrInputTooLarge, nil, "more than %d bytes", o.MaxBytes)
	}

	return ParseMatrix(string(raw), opts...)
}

// ParseMatrix validates text and returns the full N×N matrix.
//
// Steps:
//  1. Reject blank input.
//  2. Split on ',' and parse every token; collect all failures.
//  3. Check N against (0, MaxVertices].
//  4. Check that exactly N*N values follow.
//  5. Build the matrix; reject negative entries.
//  6. In strict mode, reject asymmetry and a nonzero diagonal.
func ParseMatrix(text string, opts ...Option) (*matrix.AdjacencyMatrix, error) {
	o := resolve(opts)

	// 1. Blank input.
	if strings.TrimSpace(text) == "" {
		return nil, newParseError(ErrEmptyInput, nil, "no tokens")
	}

	// 2. Tokenize.
	values, err := tokenize(text)
	if err != nil {
		return nil, err
	}

	// 3. Header.
	n := values[0]
	if n <= 0 || n > int64(o.MaxVertices) {
		return nil, newParseError(ErrVertexCount, nil, "N=%d not in [1,%d]", n, o.MaxVertices)
	}

	// 4. Token count.
	size := int(n)
	if got, want := len(values)-1, size*size; got != want {
		return nil, newParseError(ErrTokenCount, nil, "got %d values, want %d for N=%d", got, want, size)
	}

	// 5. Matrix.
	m, err := matrix.FromFlat(size, values[1:])
	if err != nil {
		// shape was checked above
		return nil, newParseError(ErrTokenCount, err, "%v", err)
	}
	if err := matrix.ValidateNonNegative(m); err != nil {
		return nil, newParseError(ErrNegativeWeight, err, "%s", detailOf(err, matrix.ErrNegativeWeight))
	}

	// 6. Strict mode.
	if o.StrictSymmetry {
		if err := matrix.ValidateSymmetric(m); err != nil {
			return nil, newParseError(ErrAsymmetric, err, "%s", detailOf(err, matrix.ErrAsymmetry))
		}
		if err := matrix.ValidateZeroDiagonal(m); err != nil {
			return nil, newParseError(ErrAsymmetric, err, "%s", detailOf(err, matrix.ErrNonZeroDiagonal))
		}
	}

	o.Logger.Trace("parsed graph", "vertices", size, "tokens", len(values), "strict", o.StrictSymmetry)

	return m, nil
}

// tokenize parses every comma-separated token. All malformed tokens are
// reported together; positions are 0-based, the header being token 0.
func tokenize(text string) ([]int64, error) {
	raw := strings.Split(text, ",")
	values := make([]int64, len(raw))

	var errs *multierror.Error
	for i, tok := range raw {
		tok = strings.TrimSpace(tok)
		v, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("token %d %q: %w", i, tok, ErrMalformedToken))
			continue
		}
		values[i] = v
	}
	if errs != nil {
		return nil, newParseError(ErrMalformedToken, errs, "%d of %d tokens are not integers", len(errs.Errors), len(raw))
	}

	return values, nil
}

// detailOf strips the validator tag and sentinel text, keeping the cell description.
func detailOf(err, sentinel error) string {
	msg := err.Error()
	if i := strings.Index(msg, ": "); i >= 0 && errors.Is(err, sentinel) {
		msg = msg[i+2:]
	}

	return strings.TrimSuffix(msg, ": "+sentinel.Error())
}
