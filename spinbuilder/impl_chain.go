package spinbuilder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/annealcore/quso"
)

const (
	methodChain   = "Chain"
	minChainSpins = 2
)

// Chain returns a QUSOConstructor building an open path of n spins,
// 0—1—2—...—(n-1), each field drawn from cfg.fieldFn and each bond
// coupling drawn from cfg.couplingFn. Same vertex/edge emission shape as
// Cycle, minus the closing edge.
func Chain(n int) QUSOConstructor {
	return func(cfg *builderConfig) (*quso.Problem, error) {
		if n < minChainSpins {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, n, minChainSpins, ErrTooFewSpins)
		}

		h := make([]float64, n)
		for i := range h {
			h[i] = cfg.fieldFn(cfg.rng)
		}

		edges := make([]edge, 0, n-1)
		for i := 0; i < n-1; i++ {
			edges = append(edges, edge{i: i, j: i + 1, coupling: cfg.couplingFn(cfg.rng)})
		}

		deg, nbr, j := buildSymmetricAdjacency(n, edges)
		return quso.NewProblem(h, deg, nbr, j)
	}
}

// requireRNG is a small guard used by stochastic constructors that treat
// a nil cfg.rng as a hard precondition failure rather than silently
// falling back to an unseeded global source.
func requireRNG(method string, r *rand.Rand) error {
	if r == nil {
		return fmt.Errorf("%s: rng is required: %w", method, ErrNeedRandSource)
	}

	return nil
}
