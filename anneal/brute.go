package anneal

import (
	"github.com/katalvlaran/annealcore/puso"
	"github.com/katalvlaran/annealcore/quso"
)

// bruteForceCeiling bounds the exhaustive enumeration performed by
// BruteForceQUSO/BruteForcePUSO to instances where 2^n assignments is a
// reasonable amount of work for a test or documentation helper, not a
// production solver; this exists only to ground expected-value assertions
// by enumeration, not to find global optima at runtime.
const bruteForceCeiling = 24

// BruteForceQUSO exhaustively enumerates all 2^n spin assignments and
// returns the minimum-energy state and its energy. It exists to compute
// reference optima for tests, not as part of the annealing
// driver; it is gated by bruteForceCeiling to avoid accidental misuse on
// large instances.
func BruteForceQUSO(p *quso.Problem) ([]int8, float64, error) {
	n := p.N()
	if n > bruteForceCeiling {
		return nil, 0, ErrStateTooLargeForBruteForce
	}

	state := make([]int8, n)
	best := make([]int8, n)
	bestEnergy := 0.0
	first := true

	total := uint64(1) << uint(n)
	for mask := uint64(0); mask < total; mask++ {
		fillStateFromMask(state, mask, n)
		e := quso.Energy(p, state)
		if first || e < bestEnergy {
			bestEnergy = e
			copy(best, state)
			first = false
		}
	}

	return best, bestEnergy, nil
}

// BruteForcePUSO is the puso analogue of BruteForceQUSO.
func BruteForcePUSO(p *puso.Problem) ([]int8, float64, error) {
	n := p.N
	if n > bruteForceCeiling {
		return nil, 0, ErrStateTooLargeForBruteForce
	}

	state := make([]int8, n)
	best := make([]int8, n)
	bestEnergy := 0.0
	first := true

	total := uint64(1) << uint(n)
	for mask := uint64(0); mask < total; mask++ {
		fillStateFromMask(state, mask, n)
		e := puso.Energy(p, state)
		if first || e < bestEnergy {
			bestEnergy = e
			copy(best, state)
			first = false
		}
	}

	return best, bestEnergy, nil
}

// fillStateFromMask maps bit i of mask to spin i: 0 -> -1, 1 -> +1.
func fillStateFromMask(state []int8, mask uint64, n int) {
	for i := 0; i < n; i++ {
		if mask&(1<<uint(i)) != 0 {
			state[i] = 1
		} else {
			state[i] = -1
		}
	}
}
