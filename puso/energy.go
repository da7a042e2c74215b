package puso

// SubgraphEnergy computes subE(s, i) = Σ_{t∈Inc[i]} c_t · ∏_{k∈term_t} s_k,
// the value of the PUSO restricted to the terms containing spin i.
// Flipping spin i changes the total energy by exactly −2·subE(s,i),
// since every term containing i is negated by the flip and every term not
// containing i is unchanged.
//
// Complexity: O(Σ arity of terms incident to i).
func SubgraphEnergy(p *Problem, state []int8, i int) float64 {
	var value float64
	for _, t := range p.Inc[i] {
		product := 1
		for _, k := range p.TermSpins(t) {
			product *= int(state[k])
		}
		value += p.C[t] * float64(product)
	}

	return value
}

// Energy evaluates E(s) = Σ_t c_t · ∏_{k∈term_t} s_k in term order, fixing
// the summation order so the result is reproducible modulo IEEE rounding.
//
// Complexity: O(L) where L = Σ Arity[t].
func Energy(p *Problem, state []int8) float64 {
	var value float64
	for t := 0; t < p.NumTerms(); t++ {
		product := 1
		for _, k := range p.TermSpins(t) {
			product *= int(state[k])
		}
		value += p.C[t] * float64(product)
	}

	return value
}
