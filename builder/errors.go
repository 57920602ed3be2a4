// SPDX-License-Identifier: MIT
// Package: primviz/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.
//   • Constructors never panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that n (or rows/cols) is smaller than the
// allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a constructor could not place an edge without
// breaking matrix invariants (e.g. a weight function returned w <= 0), or a
// nil constructor was supplied.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownKind indicates Generate was asked for an unknown topology name.
var ErrUnknownKind = errors.New("builder: unknown graph kind")
