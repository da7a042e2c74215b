package spinbuilder

import (
	"fmt"

	"github.com/katalvlaran/annealcore/quso"
)

const (
	methodComplete   = "Complete"
	minCompleteSpins = 1
)

// Complete returns a QUSOConstructor building the fully-connected model
// K_n: every pair {i,j}, i<j, is coupled via cfg.couplingFn, emitted in
// lexicographic order.
func Complete(n int) QUSOConstructor {
	return func(cfg *builderConfig) (*quso.Problem, error) {
		if n < minCompleteSpins {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteSpins, ErrTooFewSpins)
		}

		h := make([]float64, n)
		for i := range h {
			h[i] = cfg.fieldFn(cfg.rng)
		}

		edges := make([]edge, 0, n*(n-1)/2)
		for i := 0; i < n; i++ {
			for k := i + 1; k < n; k++ {
				edges = append(edges, edge{i: i, j: k, coupling: cfg.couplingFn(cfg.rng)})
			}
		}

		deg, nbr, j := buildSymmetricAdjacency(n, edges)
		return quso.NewProblem(h, deg, nbr, j)
	}
}
