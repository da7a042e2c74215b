package spinbuilder

import (
	"fmt"

	"github.com/katalvlaran/annealcore/quso"
)

const (
	methodRandomSparseQUSO     = "RandomSparseQUSO"
	minRandomSparseQUSOSpins   = 1
	randomSparseProbabilityMin = 0.0
	randomSparseProbabilityMax = 1.0
)

// RandomSparseQUSO returns a QUSOConstructor sampling an Erdős–Rényi-like
// model over n spins: each unordered pair {i,j}, i<j, is bonded
// independently with probability p, coupling drawn from cfg.couplingFn.
// Restricted to the undirected case since QUSO adjacency is inherently
// symmetric.
func RandomSparseQUSO(n int, p float64) QUSOConstructor {
	return func(cfg *builderConfig) (*quso.Problem, error) {
		if n < minRandomSparseQUSOSpins {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparseQUSO, n, minRandomSparseQUSOSpins, ErrTooFewSpins)
		}
		if p < randomSparseProbabilityMin || p > randomSparseProbabilityMax {
			return nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparseQUSO, p, randomSparseProbabilityMin, randomSparseProbabilityMax, ErrInvalidProbability)
		}
		if err := requireRNG(methodRandomSparseQUSO, cfg.rng); err != nil {
			return nil, err
		}

		h := make([]float64, n)
		for i := range h {
			h[i] = cfg.fieldFn(cfg.rng)
		}

		var edges []edge
		for i := 0; i < n; i++ {
			for k := i + 1; k < n; k++ {
				if cfg.rng.Float64() < p {
					edges = append(edges, edge{i: i, j: k, coupling: cfg.couplingFn(cfg.rng)})
				}
			}
		}

		deg, nbr, j := buildSymmetricAdjacency(n, edges)
		return quso.NewProblem(h, deg, nbr, j)
	}
}
