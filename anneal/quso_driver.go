package anneal

import (
	"github.com/katalvlaran/annealcore/prng"
	"github.com/katalvlaran/annealcore/quso"
)

// AnnealQUSO repeats opts.Trials independent anneal runs of problem p over
// opts.Schedule, each from a fresh or caller-supplied initial state.
//
// If initialStates is nil, each trial's initial state is drawn spin by
// spin: s_i = +1 if the next PRNG uniform01 draw is < 0.5, else -1 (the
// threshold and draw order are part of the contract). If initialStates is
// non-nil, it must hold exactly opts.Trials rows of length p.N(), copied
// verbatim as the per-trial starting state.
//
// One PRNG is constructed from opts.Seed and reused across every trial: a
// caller wanting independent per-trial streams must call AnnealQUSO once
// per trial with distinct seeds.
//
// Returns the M final states and M final energies, in trial order.
func AnnealQUSO(p *quso.Problem, opts Options, initialStates [][]int8) ([][]int8, []float64, error) {
	if err := validateOptions(opts); err != nil {
		return nil, nil, err
	}
	if initialStates != nil && len(initialStates) != opts.Trials {
		return nil, nil, ErrInitialStateShape
	}

	n := p.N()
	inOrder := opts.Traversal.inOrderBool()
	rng := prng.New(opts.Seed)

	states := make([][]int8, opts.Trials)
	energies := make([]float64, opts.Trials)
	cache := quso.NewCache(n)

	for m := 0; m < opts.Trials; m++ {
		state := make([]int8, n)
		if initialStates != nil {
			if len(initialStates[m]) != n {
				return nil, nil, ErrInitialStateShape
			}
			copy(state, initialStates[m])
		} else {
			drawInitialState(state, rng)
		}

		cache.ComputeAll(p, state)
		for _, T := range opts.Schedule {
			quso.Sweep(p, cache, state, T, inOrder, rng)
		}

		states[m] = state
		energies[m] = quso.Energy(p, state)
	}

	return states, energies, nil
}

// SimulateQUSO advances state in place over opts.Schedule/opts.Sweeps
// pairs, running opts.Sweeps[j] sweeps at temperature opts.Schedule[j]
// for each j. There is no trial loop and no final-energy computation; the
// caller reads state back directly. An empty schedule is a documented
// no-op.
func SimulateQUSO(state []int8, p *quso.Problem, opts SimulateOptions) error {
	if len(opts.Schedule) != len(opts.Sweeps) {
		return ErrScheduleSweepsMismatch
	}
	if err := quso.ValidateState(p, state); err != nil {
		return err
	}

	cache := quso.NewCache(p.N())
	cache.ComputeAll(p, state)

	rng := prng.New(opts.Seed)
	inOrder := opts.Traversal.inOrderBool()
	for j, T := range opts.Schedule {
		for s := 0; s < opts.Sweeps[j]; s++ {
			quso.Sweep(p, cache, state, T, inOrder, rng)
		}
	}

	return nil
}

// drawInitialState fills state with an independent ±1 draw per spin.
func drawInitialState(state []int8, rng *prng.PCG32) {
	for i := range state {
		if rng.Uniform01() < 0.5 {
			state[i] = 1
		} else {
			state[i] = -1
		}
	}
}

// validateOptions applies the shared Anneal precondition checks.
func validateOptions(opts Options) error {
	if len(opts.Schedule) == 0 {
		return ErrEmptySchedule
	}
	if opts.Trials <= 0 {
		return ErrInvalidTrialCount
	}

	return nil
}
