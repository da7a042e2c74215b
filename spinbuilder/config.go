// Package spinbuilder — config.go — functional options: a builderConfig
// centralizes the RNG and the distributions used to draw
// field/coupling/coefficient values, so topology constructors stay
// declarative and deterministic for a fixed seed.
package spinbuilder

import "math/rand"

// BuilderOption customizes a constructor by mutating a builderConfig
// before the problem arrays are assembled.
type BuilderOption func(cfg *builderConfig)

// builderConfig holds the resolved, immutable-per-call configuration:
//   - rng: source of randomness for stochastic constructors (nil means
//     deterministic / unavailable; stochastic constructors require it).
//   - fieldFn: draws a field value h_i given rng.
//   - couplingFn: draws a QUSO coupling J_ij given rng.
//   - coeffFn: draws a PUSO term coefficient c_t given rng.
type builderConfig struct {
	rng        *rand.Rand
	fieldFn    func(*rand.Rand) float64
	couplingFn func(*rand.Rand) float64
	coeffFn    func(*rand.Rand) float64
}

// DefaultField is the field value used when no WithFieldFn option is
// supplied: zero field, matching the unbiased spin-glass convention.
const DefaultField = 0.0

// DefaultCoupling is the coupling value used when no WithCouplingFn
// option is supplied.
const DefaultCoupling = -1.0

// DefaultCoeff is the PUSO term coefficient used when no WithTermCoeffFn
// option is supplied.
const DefaultCoeff = 1.0

func defaultFieldFn(*rand.Rand) float64    { return DefaultField }
func defaultCouplingFn(*rand.Rand) float64 { return DefaultCoupling }
func defaultCoeffFn(*rand.Rand) float64    { return DefaultCoeff }

// newBuilderConfig returns a builderConfig initialized with defaults,
// then applies each option in order; later options override earlier
// ones.
func newBuilderConfig(opts ...BuilderOption) *builderConfig {
	cfg := &builderConfig{
		rng:        nil,
		fieldFn:    defaultFieldFn,
		couplingFn: defaultCouplingFn,
		coeffFn:    defaultCoeffFn,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithRand sets an explicit *rand.Rand source. A nil value is a no-op,
// leaving the prior RNG (or lack thereof) untouched.
func WithRand(r *rand.Rand) BuilderOption {
	return func(cfg *builderConfig) {
		if r != nil {
			cfg.rng = r
		}
	}
}

// WithSeed creates a new *rand.Rand seeded with the given value. Use this
// for reproducible stochastic topologies (RandomSparseQUSO,
// RandomRegularQUSO, RandomPUSOTerms).
func WithSeed(seed int64) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}

// WithFieldFn overrides the per-spin field generator h_i.
func WithFieldFn(fn func(*rand.Rand) float64) BuilderOption {
	return func(cfg *builderConfig) {
		if fn != nil {
			cfg.fieldFn = fn
		}
	}
}

// WithCouplingFn overrides the per-edge QUSO coupling generator J_ij.
func WithCouplingFn(fn func(*rand.Rand) float64) BuilderOption {
	return func(cfg *builderConfig) {
		if fn != nil {
			cfg.couplingFn = fn
		}
	}
}

// WithTermCoeffFn overrides the per-term PUSO coefficient generator c_t.
func WithTermCoeffFn(fn func(*rand.Rand) float64) BuilderOption {
	return func(cfg *builderConfig) {
		if fn != nil {
			cfg.coeffFn = fn
		}
	}
}
