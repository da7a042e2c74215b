package quso

// Cache holds the per-spin ΔE values for flipping that spin. Invariant:
// after any state mutation performed through OnFlip, DE[i] equals E(state
// with spin i flipped) − E(state) for every i.
//
// Cache is driver-owned; callers allocate one per Anneal/Simulate call and
// discard it at the end.
type Cache struct {
	DE []float64 // DE[i]: energy delta from flipping spin i
}

// NewCache allocates an empty cache sized for n spins. Call ComputeAll
// before the first Sweep.
//
// Complexity: O(n) allocation; contents undefined until ComputeAll runs.
func NewCache(n int) *Cache {
	return &Cache{DE: make([]float64, n)}
}

// ComputeAll fills DE[i] for every spin from scratch using the formula
//
//	DE[i] = -2 · s_i · (h_i + Σ_{j∈nbr(i)} J_ij · s_j)
//
// Complexity: O(n + M).
func (c *Cache) ComputeAll(p *Problem, state []int8) {
	for i := 0; i < p.N(); i++ {
		subgraph := p.H[i]
		nbr, coupling := p.Neighbors(i)
		for k, j := range nbr {
			subgraph += coupling[k] * float64(state[j])
		}
		c.DE[i] = -2 * float64(state[i]) * subgraph
	}
}

// OnFlip applies the incremental update rule for flipping spin i, using
// the *pre-flip* value of state[i]. Callers must invoke this
// before mutating state[i].
//
// Rule: DE[i] ← −DE[i]; then for each neighbor j of i with coupling J,
// DE[j] ← DE[j] + 4·s_i·s_j·J. The constant 4 follows because the edge
// (i,j) contributed −2·s_j·(J·s_i) to DE[j]; after flipping s_i the
// contribution's sign must invert, a change of +4·s_j·J·s_i.
//
// Complexity: O(degree(i)).
func (c *Cache) OnFlip(p *Problem, state []int8, i int) {
	c.DE[i] = -c.DE[i]

	si := float64(state[i])
	nbr, coupling := p.Neighbors(i)
	for k, j := range nbr {
		c.DE[j] += 4 * si * float64(state[j]) * coupling[k]
	}
}

// Verify recomputes DE from scratch and returns ErrCacheStale as soon as a
// spin's cached value disagrees with the closed-form formula beyond a small
// floating tolerance; the error does not identify the spin. It never mutates c or state and is not called from the hot
// sweep loop — only from tests and caller-invoked diagnostics.
//
// Complexity: O(n + M).
func (c *Cache) Verify(p *Problem, state []int8) error {
	fresh := NewCache(p.N())
	fresh.ComputeAll(p, state)

	const tol = 1e-9
	for i, want := range fresh.DE {
		got := c.DE[i]
		diff := got - want
		if diff < 0 {
			diff = -diff
		}
		if diff > tol {
			return ErrCacheStale
		}
	}

	return nil
}
