// Package builder generates deterministic adjacency matrices for common
// topologies, used as fixtures in tests and by the "generate" CLI command.
// Each result can be written in the text input format with matrix.Encode.
//
// The package offers:
//
//   - Orchestration:
//     – BuildMatrix(n, opts, cons...) allocates an n×n matrix and applies
//     Constructors in order.
//   - Topologies (Constructor factories and one-call wrappers):
//     – CompleteEdges / Complete(n)        K_n, n ≥ 1
//     – CycleEdges    / Cycle(n)           C_n, n ≥ 3
//     – PathEdges     / Path(n)            P_n, n ≥ 2
//     – StarEdges     / Star(n)            hub 0, n ≥ 2
//     – WheelEdges    / Wheel(n)           rim + hub 0, n ≥ 4
//     – GridEdges     / Grid(rows, cols)   4-neighborhood lattice
//     – RandomSparseEdges(p) / RandomConnected(n, p)
//     spanning path plus Bernoulli extras; always connected.
//   - Options:
//     – WithSeed, WithRand:        RNG for stochastic builders and weights.
//     – WithWeightFn:              custom weight distribution.
//     – WithWeightRange(min,max):  uniform integer weights.
//     – WithConstantWeight(w):     fixed weight.
//   - Generate(kind, n, p, opts...) dispatches by Kind name.
//
// Guarantees:
//
//   - Every emitted weight is ≥ 1, so each edge survives the matrix round trip
//     (zero means "no edge").
//   - Matrices are symmetric with a zero diagonal.
//   - Fast-fail on invalid option parameters via panics in option constructors;
//     sentinel errors (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource, ErrConstructFailed, ErrUnknownKind) otherwise.
package builder
