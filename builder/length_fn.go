// File: length_fn.go — edge-length distributions for graph constructors.

package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeLength is the length assigned to each edge when no custom
// LengthFn is provided.
const DefaultEdgeLength float64 = 1

// LengthFn produces an edge length given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed; panics in constructors
// indicate programmer error in configuration.
type LengthFn func(rng *rand.Rand) float64

// DefaultLengthFn always returns DefaultEdgeLength.
// Complexity: O(1). Never panics.
func DefaultLengthFn(_ *rand.Rand) float64 {
	return DefaultEdgeLength
}

// ConstantLengthFn returns a LengthFn that always yields value.
// Panics if value < 0.
// Complexity: O(1)
func ConstantLengthFn(value float64) LengthFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantLengthFn: value must be ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 { return value }
}

// UniformLengthFn returns a LengthFn sampling uniformly in [min, max).
// Panics if min < 0 or max < min. A nil rng yields DefaultEdgeLength to
// keep unseeded builds deterministic.
// Complexity: O(1)
func UniformLengthFn(min, max float64) LengthFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformLengthFn: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeLength
		}
		if max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}
