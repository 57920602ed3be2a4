// Package builder provides internal helper functions and types
// for configuring edge-weight distributions in matrix constructors.
package builder

import (
	"fmt"
	"math/rand"
)

// WeightFn produces an edge weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed and return w ≥ 1, since a
// zero entry in an adjacency matrix means "no edge".
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn always returns the constant DefaultEdgeWeight.
// Complexity: O(1) time, O(1) space. Never panics.
func DefaultWeightFn(_ *rand.Rand) int64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields the provided value.
// Panics if value < 1.
func ConstantWeightFn(value int64) WeightFn {
	if value < 1 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 1, got %d", value))
	}

	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max] inclusive.
// Panics if min < 1 or max < min.
// If rng is nil, yields min to keep a deterministic fallback inside the range.
func UniformWeightFn(min, max int64) WeightFn {
	if min < 1 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 1 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Int63n(max-min+1)
	}
}

// From1To100WeightFn returns a random weight uniformly in [1,100].
// Equivalent to UniformWeightFn(1,100). Never panics.
func From1To100WeightFn(rng *rand.Rand) int64 {
	return UniformWeightFn(1, 100)(rng)
}
