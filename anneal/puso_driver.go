package anneal

import (
	"github.com/katalvlaran/annealcore/prng"
	"github.com/katalvlaran/annealcore/puso"
)

// AnnealPUSO repeats opts.Trials independent anneal runs of problem p over
// opts.Schedule. Semantics mirror AnnealQUSO exactly except that each
// sweep recomputes ΔE on demand (puso.Sweep) instead of maintaining an
// incremental cache.
func AnnealPUSO(p *puso.Problem, opts Options, initialStates [][]int8) ([][]int8, []float64, error) {
	if err := validateOptions(opts); err != nil {
		return nil, nil, err
	}
	if initialStates != nil && len(initialStates) != opts.Trials {
		return nil, nil, ErrInitialStateShape
	}

	n := p.N
	inOrder := opts.Traversal.inOrderBool()
	rng := prng.New(opts.Seed)

	states := make([][]int8, opts.Trials)
	energies := make([]float64, opts.Trials)

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

		for _, T := range opts.Schedule {
			puso.Sweep(p, state, T, inOrder, rng)
		}

		states[m] = state
		energies[m] = puso.Energy(p, state)
	}

	return states, energies, nil
}
