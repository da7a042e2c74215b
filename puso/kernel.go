package puso

import "math"

// RNG is the randomness source Sweep needs: a uniform variate in [0,1) for
// the Metropolis acceptance test, and a uniformly-bounded integer for
// random-order traversal. *prng.PCG32 satisfies this interface; Sweep
// depends only on the interface so tests can substitute a scripted RNG.
type RNG interface {
	Uniform01() float64
	UniformBounded(n int) int
}

// Sweep performs one Metropolis sweep of n single-spin flip attempts over
// problem p, mutating state in place.
//
// For each attempt, spin i is chosen in index order (inOrder) or uniformly
// at random (!inOrder); the proposed flip's energy delta is computed
// on demand as dE = -2 * SubgraphEnergy(p, state, i), since unlike quso
// there is no incremental cache to maintain. The flip is accepted when
// dE <= 0, or when T > 0 and a drawn uniform variate falls under
// exp(-dE/T); T == 0 never evaluates the exponential, avoiding the
// degenerate exp(-dE/0) case.
//
// Complexity: O(n) attempts, each O(Σ arity of terms incident to the
// chosen spin).
func Sweep(p *Problem, state []int8, T float64, inOrder bool, rng RNG) {
	n := p.N
	for k := 0; k < n; k++ {
		var i int
		if inOrder {
			i = k
		} else {
			i = rng.UniformBounded(n)
		}

		dE := -2 * SubgraphEnergy(p, state, i)
		if dE <= 0 || (T > 0 && rng.Uniform01() < math.Exp(-dE/T)) {
			state[i] = -state[i]
		}
	}
}
