package quso

import "math"

// RNG is the minimal interface the Metropolis kernel needs from a PRNG
// source (satisfied by *prng.PCG32). Declared locally so quso does not
// import prng; only the driver imports both packages.
type RNG interface {
	Uniform01() float64
	UniformBounded(n int) int
}

// Sweep performs exactly n candidate flips over state at temperature T.
// One pass is strictly sequential so that every accepted flip is visible
// to subsequent ΔE reads within the same sweep.
//
// inOrder selects deterministic round-robin traversal (0,1,…,n−1) when
// true, or n uniform-random draws with replacement when false.
//
// Acceptance: a candidate flip of spin i with cached delta dE is accepted
// when dE ≤ 0, or when T > 0 and rng.Uniform01() < exp(−dE/T). exp is never
// evaluated at T = 0.
//
// Complexity: O(n · average-degree); no allocations.
func Sweep(p *Problem, cache *Cache, state []int8, T float64, inOrder bool, rng RNG) {
	n := p.N()
	for k := 0; k < n; k++ {
		var i int
		if inOrder {
			i = k
		} else {
			i = rng.UniformBounded(n)
		}

		dE := cache.DE[i]
		if dE <= 0 || (T > 0 && rng.Uniform01() < math.Exp(-dE/T)) {
			cache.OnFlip(p, state, i)
			state[i] = -state[i]
		}
	}
}
