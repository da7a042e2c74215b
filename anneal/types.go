package anneal

import "errors"

// Sentinel errors for the anneal package.
var (
	// ErrEmptySchedule indicates a schedule of length 0 was passed to Anneal
	// (Simulate explicitly permits this as a no-op).
	ErrEmptySchedule = errors.New("anneal: schedule must have at least one step")

	// ErrInvalidTrialCount indicates Trials <= 0.
	ErrInvalidTrialCount = errors.New("anneal: trial count must be positive")

	// ErrInitialStateShape indicates the caller-supplied initial-state
	// buffer's dimensions do not match Trials*n.
	ErrInitialStateShape = errors.New("anneal: initial state buffer has wrong shape")

	// ErrScheduleSweepsMismatch indicates Simulate's Ts and Sweeps slices
	// have different lengths.
	ErrScheduleSweepsMismatch = errors.New("anneal: schedule and sweep-count slices differ in length")

	// ErrStateTooLargeForBruteForce guards BruteForceQUSO/BruteForcePUSO
	// against an accidental O(2^n) call on a large instance.
	ErrStateTooLargeForBruteForce = errors.New("anneal: spin count exceeds brute-force ceiling")
)

// TraversalMode selects how a sweep picks its n candidate spins.
type TraversalMode int

const (
	// InOrder visits spins 0, 1, ..., n-1 in a deterministic round robin.
	InOrder TraversalMode = iota

	// RandomOrder draws each of the n candidates uniformly at random, with
	// replacement, from the PRNG.
	RandomOrder
)

// inOrderBool adapts TraversalMode to the quso/puso kernels' bool
// parameter.
func (m TraversalMode) inOrderBool() bool {
	return m == InOrder
}

// Options configures an Anneal call. Zero value is not meaningful; use
// DefaultOptions() and override fields as needed.
type Options struct {
	// Schedule is the ordered, non-negative temperature sequence Ts applied
	// in every trial. Length L; L == 0 is rejected (ErrEmptySchedule).
	Schedule []float64

	// Trials is the number M of independent anneal runs. Must be positive.
	Trials int

	// Traversal selects in-order or random-order spin selection within a
	// sweep, applied uniformly across the schedule.
	Traversal TraversalMode

	// Seed seeds the single PRNG instance reused across all M trials.
	// Seed < 0 time-seeds the PRNG, disabling reproducibility.
	Seed int64
}

// DefaultOptions returns an Options with a single T=0 schedule step, one
// trial, in-order traversal, and a fixed seed of 0 (deterministic).
func DefaultOptions() Options {
	return Options{
		Schedule:  []float64{0},
		Trials:    1,
		Traversal: InOrder,
		Seed:      0,
	}
}

// SimulateOptions configures a Simulate call.
type SimulateOptions struct {
	// Schedule is the ordered temperature sequence Ts, parallel to Sweeps.
	Schedule []float64

	// Sweeps[j] is the number of sweeps run at temperature Schedule[j].
	// Must be the same length as Schedule.
	Sweeps []int

	// Traversal selects in-order or random-order spin selection.
	Traversal TraversalMode

	// Seed seeds the PRNG for this call. Seed < 0 time-seeds it.
	Seed int64
}
