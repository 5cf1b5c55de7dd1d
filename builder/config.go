// File: config.go — internal configuration and deterministic defaults.
//
// Design:
//   - builderConfig is the single source of truth for all builder knobs.
//   - newBuilderConfig applies options in order (later overrides earlier).
//   - Defaults are deterministic: decimal ids, unit lengths, no RNG,
//     no travel times.

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors. It is passed by
// value to constructors, so they cannot alter it for later constructors.
type builderConfig struct {
	// idFn maps a zero-based vertex index to its id (deterministic).
	idFn IDFn
	// rng drives stochastic length functions; nil means "no randomness".
	rng *rand.Rand
	// lengthFn produces each edge's length.
	lengthFn LengthFn
	// speed, when positive, derives each edge's travel time as length/speed.
	// Zero disables travel times; negative values are rejected by Build.
	speed float64
}

// Option mutates the builder configuration before construction starts.
type Option func(*builderConfig)

// WithSeed installs a deterministic RNG seeded with seed, making stochastic
// length functions reproducible.
func WithSeed(seed int64) Option {
	return func(cfg *builderConfig) { cfg.rng = rand.New(rand.NewSource(seed)) }
}

// WithIDFn overrides the vertex id scheme (default: decimal "0","1",...).
func WithIDFn(fn IDFn) Option {
	return func(cfg *builderConfig) {
		if fn != nil {
			cfg.idFn = fn
		}
	}
}

// WithLengthFn overrides the edge length generator (default: constant 1).
func WithLengthFn(fn LengthFn) Option {
	return func(cfg *builderConfig) {
		if fn != nil {
			cfg.lengthFn = fn
		}
	}
}

// WithTravelSpeed enables travel-time derivation: every emitted edge gets
// its time set to length/speed. Speed is validated by Build.
func WithTravelSpeed(speed float64) Option {
	return func(cfg *builderConfig) { cfg.speed = speed }
}

// newBuilderConfig resolves options over deterministic defaults.
// Complexity: O(len(opts))
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		rng:      nil,
		lengthFn: DefaultLengthFn,
		speed:    0,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
