package spinbuilder

import (
	"fmt"

	"github.com/katalvlaran/annealcore/quso"
)

const (
	methodCycle   = "Cycle"
	minCycleSpins = 3
)

// Cycle returns a QUSOConstructor building a ring of n spins, closing the
// chain with an edge (n-1, 0) via modulo-closure edge emission.
func Cycle(n int) QUSOConstructor {
	return func(cfg *builderConfig) (*quso.Problem, error) {
		if n < minCycleSpins {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleSpins, ErrTooFewSpins)
		}

		h := make([]float64, n)
		for i := range h {
			h[i] = cfg.fieldFn(cfg.rng)
		}

		edges := make([]edge, 0, n)
		for i := 0; i < n; i++ {
			edges = append(edges, edge{i: i, j: (i + 1) % n, coupling: cfg.couplingFn(cfg.rng)})
		}

		deg, nbr, j := buildSymmetricAdjacency(n, edges)
		return quso.NewProblem(h, deg, nbr, j)
	}
}
