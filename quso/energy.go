package quso

// Energy evaluates E(s) = Σ_i s_i · (h_i + Σ_{j∈nbr(i), j≥i} J_ij·s_j).
// The `j ≥ i` guard counts each symmetric
// edge once; callers are responsible for the symmetry precondition (see
// VerifySymmetry) — an asymmetric problem silently produces a value that
// does not match a naive Σ_i Σ_j double-counted reading, by design of the
// original algorithm (original_source/qubovert/sim/src/anneal_quso.c's
// quso_value).
//
// Summation order is fixed (ascending i, then ascending neighbor slot) so
// that energy is reproducible modulo IEEE summation order.
//
// Complexity: O(n + M) where M = Σ Deg[i].
func Energy(p *Problem, state []int8) float64 {
	var value float64
	for i := 0; i < p.N(); i++ {
		subgraph := p.H[i]
		nbr, coupling := p.Neighbors(i)
		for k, j := range nbr {
			if j >= i {
				subgraph += coupling[k] * float64(state[j])
			}
		}
		value += float64(state[i]) * subgraph
	}

	return value
}
