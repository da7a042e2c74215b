package spinbuilder

import "errors"

// Sentinel errors for the spinbuilder package, adapted from builder's
// error policy (errors.go): only package-level sentinels are exposed;
// callers branch with errors.Is, never string comparison.
var (
	// ErrTooFewSpins indicates a requested spin count is below the
	// topology's minimum (e.g. Cycle requires n >= 3).
	ErrTooFewSpins = errors.New("spinbuilder: spin count too small")

	// ErrInvalidProbability indicates a probability parameter (e.g.
	// RandomSparseQUSO's p) lies outside [0,1].
	ErrInvalidProbability = errors.New("spinbuilder: probability out of range")

	// ErrInvalidDegree indicates RandomRegularQUSO's degree is negative,
	// >= n, or n*d is odd (no valid stub pairing exists).
	ErrInvalidDegree = errors.New("spinbuilder: invalid regular-graph degree")

	// ErrNeedRandSource indicates a stochastic constructor requires a
	// non-nil RNG in the resolved builderConfig (set via WithSeed/WithRand).
	ErrNeedRandSource = errors.New("spinbuilder: rng is required")

	// ErrConstructFailed indicates bounded retries were exhausted without
	// producing a valid stub pairing (RandomRegularQUSO).
	ErrConstructFailed = errors.New("spinbuilder: construction failed")

	// ErrInvalidArity indicates RandomPUSOTerms was asked for a term arity
	// below 1 or above the spin count.
	ErrInvalidArity = errors.New("spinbuilder: invalid term arity")
)
