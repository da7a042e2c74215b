// Package quso_test exercises the CSR adjacency model, the ΔE cache, and
// the Metropolis sweep kernel against a set of hand-worked model scenarios.
package quso_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/annealcore/prng"
	"github.com/katalvlaran/annealcore/quso"
)

// buildRing3 constructs the model "-z0 z1 + 2 z1 z2 + z0":
//
//	h = [1,0,0], deg = [1,2,1], nbr = [1, 0,2, 1], J = [-1, -1,2, 2]
func buildRing3(t *testing.T) *quso.Problem {
	t.Helper()
	p, err := quso.NewProblem(
		[]float64{1, 0, 0},
		[]int{1, 2, 1},
		[]int{1, 0, 2, 1},
		[]float64{-1, -1, 2, 2},
	)
	require.NoError(t, err)
	return p
}

// TestNoCoupling_NoFlip: 1 spin, h=[-1], state=[+1], T=0 — no flip.
func TestNoCoupling_NoFlip(t *testing.T) {
	p, err := quso.NewProblem([]float64{-1}, []int{0}, nil, nil)
	require.NoError(t, err)

	state := []int8{1}
	cache := quso.NewCache(1)
	cache.ComputeAll(p, state)

	assert.Equal(t, 2.0, cache.DE[0])

	quso.Sweep(p, cache, state, 0.0, true, prng.New(0))

	assert.Equal(t, []int8{1}, state)
	assert.Equal(t, -1.0, quso.Energy(p, state))
}

// TestNoCoupling_Flip: same model, starting at -1, flip improves.
func TestNoCoupling_Flip(t *testing.T) {
	p, err := quso.NewProblem([]float64{-1}, []int{0}, nil, nil)
	require.NoError(t, err)

	state := []int8{-1}
	cache := quso.NewCache(1)
	cache.ComputeAll(p, state)

	assert.Equal(t, -2.0, cache.DE[0])

	quso.Sweep(p, cache, state, 0.0, true, prng.New(0))

	assert.Equal(t, []int8{1}, state)
	assert.Equal(t, -1.0, quso.Energy(p, state))
}

// TestRingModel_T0LocalMinimum: deterministic T=0 descent from
// [-1,-1,-1]. Enumeration shows the global optimum of this model is -4 at
// [-1,-1,+1]; a single in-order T=0 sweep is a local-search step, not a
// global solver, and from this exact start it lands on the local minimum
// [-1,+1,-1] with energy -2 (spin 0 sits at a flat dE=0 direction it never
// revisits within one sweep). This regression-records the actual kernel
// trajectory rather than the enumerated global value.
func TestRingModel_T0LocalMinimum(t *testing.T) {
	p := buildRing3(t)
	state := []int8{-1, -1, -1}
	cache := quso.NewCache(3)
	cache.ComputeAll(p, state)

	quso.Sweep(p, cache, state, 0.0, true, prng.New(0))

	assert.Equal(t, []int8{-1, 1, -1}, state)
	assert.Equal(t, -2.0, quso.Energy(p, state))
}

// TestDeltaCacheInvariant verifies that after every sweep of a
// multi-sweep run, the cache matches a from-scratch recomputation.
func TestDeltaCacheInvariant(t *testing.T) {
	p := buildRing3(t)
	state := []int8{1, -1, 1}
	cache := quso.NewCache(3)
	cache.ComputeAll(p, state)

	rng := prng.New(5)
	for sweep := 0; sweep < 20; sweep++ {
		quso.Sweep(p, cache, state, 1.5, false, rng)
		require.NoError(t, cache.Verify(p, state), "cache diverged after sweep %d", sweep)
	}
}

// TestDeterminism_SeedReplay checks determinism end to end on a single
// Sweep call: identical seed, identical inputs ⇒ identical outputs.
func TestDeterminism_SeedReplay(t *testing.T) {
	p := buildRing3(t)

	run := func() []int8 {
		state := []int8{1, 1, -1}
		cache := quso.NewCache(3)
		cache.ComputeAll(p, state)
		rng := prng.New(42)
		for i := 0; i < 5; i++ {
			quso.Sweep(p, cache, state, 2.0, false, rng)
		}
		return state
	}

	assert.Equal(t, run(), run())
}

// TestT0Monotonicity: with T=0 throughout, energy can only decrease or stay
// the same sweep over sweep.
func TestT0Monotonicity(t *testing.T) {
	p := buildRing3(t)
	state := []int8{1, 1, 1}
	cache := quso.NewCache(3)
	cache.ComputeAll(p, state)

	prev := quso.Energy(p, state)
	rng := prng.New(11)
	for i := 0; i < 10; i++ {
		quso.Sweep(p, cache, state, 0.0, false, rng)
		cur := quso.Energy(p, state)
		assert.LessOrEqual(t, cur, prev)
		prev = cur
	}
}

// TestEmptyProblem_SweepNoOp covers the n=0 edge case.
func TestEmptyProblem_SweepNoOp(t *testing.T) {
	p, err := quso.NewProblem(nil, nil, nil, nil)
	require.NoError(t, err)

	state := []int8{}
	cache := quso.NewCache(0)
	cache.ComputeAll(p, state)
	assert.NotPanics(t, func() {
		quso.Sweep(p, cache, state, 1.0, true, prng.New(0))
	})
}

// TestNewProblem_DimensionMismatch checks the InvalidShape error policy.
func TestNewProblem_DimensionMismatch(t *testing.T) {
	_, err := quso.NewProblem([]float64{1, 2}, []int{1}, nil, nil)
	assert.ErrorIs(t, err, quso.ErrDimensionMismatch)

	_, err = quso.NewProblem([]float64{1}, []int{2}, []int{0}, []float64{1})
	assert.ErrorIs(t, err, quso.ErrDimensionMismatch)
}

// TestValidateState checks the ±1 domain precondition helper.
func TestValidateState(t *testing.T) {
	p := buildRing3(t)
	assert.NoError(t, quso.ValidateState(p, []int8{1, -1, 1}))
	assert.ErrorIs(t, quso.ValidateState(p, []int8{1, 0, 1}), quso.ErrInvalidSpin)
	assert.ErrorIs(t, quso.ValidateState(p, []int8{1, -1}), quso.ErrDimensionMismatch)
}

// TestVerifySymmetry_AcceptsRing confirms the documented-symmetric ring
// model passes the opt-in checker.
func TestVerifySymmetry_AcceptsRing(t *testing.T) {
	p := buildRing3(t)
	assert.NoError(t, quso.VerifySymmetry(p))
}

// TestVerifySymmetry_RejectsAsymmetric builds a one-sided edge and expects
// ErrAsymmetricCoupling.
func TestVerifySymmetry_RejectsAsymmetric(t *testing.T) {
	p, err := quso.NewProblem(
		[]float64{0, 0},
		[]int{1, 0},
		[]int{1},
		[]float64{3},
	)
	require.NoError(t, err)
	assert.ErrorIs(t, quso.VerifySymmetry(p), quso.ErrAsymmetricCoupling)
}

// TestSweep_InOrderIndependentOfNeighborOrder checks that with
// in_order traversal and a fixed seed, reordering a spin's neighbor list
// (while keeping the edge set identical) does not change the final energy.
func TestSweep_InOrderIndependentOfNeighborOrder(t *testing.T) {
	p1, err := quso.NewProblem(
		[]float64{1, 0, 0},
		[]int{1, 2, 1},
		[]int{1, 0, 2, 1},
		[]float64{-1, -1, 2, 2},
	)
	require.NoError(t, err)

	// Reorder spin 1's neighbor list: {0,2} -> {2,0} with matching J.
	p2, err := quso.NewProblem(
		[]float64{1, 0, 0},
		[]int{1, 2, 1},
		[]int{1, 2, 0, 1},
		[]float64{-1, 2, -1, 2},
	)
	require.NoError(t, err)

	run := func(p *quso.Problem) float64 {
		state := []int8{-1, -1, -1}
		cache := quso.NewCache(3)
		cache.ComputeAll(p, state)
		rng := prng.New(0)
		quso.Sweep(p, cache, state, 0.0, true, rng)
		return quso.Energy(p, state)
	}

	assert.Equal(t, run(p1), run(p2))
}
