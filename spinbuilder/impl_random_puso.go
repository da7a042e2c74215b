package spinbuilder

import (
	"fmt"

	"github.com/katalvlaran/annealcore/puso"
)

const (
	methodRandomPUSOTerms   = "RandomPUSOTerms"
	minRandomPUSOTermsSpins = 1
	minTermArity            = 1
)

// RandomPUSOTerms returns a PUSOConstructor sampling numTerms random
// terms over n spins, each of arity exactly termArity: a term's spin set
// is drawn without replacement uniformly from [0,n) via partial
// Fisher–Yates on a fresh index pool, and its coefficient is drawn from
// cfg.coeffFn. This generalizes the same independent, bounded, RNG-gated
// draw discipline RandomSparseQUSO uses for pairs to arbitrary-arity
// tuples.
func RandomPUSOTerms(n, numTerms, termArity int) PUSOConstructor {
	return func(cfg *builderConfig) (*puso.Problem, error) {
		if n < minRandomPUSOTermsSpins {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomPUSOTerms, n, minRandomPUSOTermsSpins, ErrTooFewSpins)
		}
		if termArity < minTermArity || termArity > n {
			return nil, fmt.Errorf("%s: termArity=%d must be in [%d,%d]: %w",
				methodRandomPUSOTerms, termArity, minTermArity, n, ErrInvalidArity)
		}
		if numTerms < 0 {
			return nil, fmt.Errorf("%s: numTerms=%d must be >= 0: %w",
				methodRandomPUSOTerms, numTerms, ErrInvalidArity)
		}
		if err := requireRNG(methodRandomPUSOTerms, cfg.rng); err != nil {
			return nil, err
		}

		arity := make([]int, numTerms)
		c := make([]float64, numTerms)
		terms := make([]int, 0, numTerms*termArity)

		pool := make([]int, n)
		for t := 0; t < numTerms; t++ {
			for i := range pool {
				pool[i] = i
			}
			for k := 0; k < termArity; k++ {
				pick := k + cfg.rng.Intn(n-k)
				pool[k], pool[pick] = pool[pick], pool[k]
			}
			terms = append(terms, pool[:termArity]...)
			arity[t] = termArity
			c[t] = cfg.coeffFn(cfg.rng)
		}

		return puso.NewProblem(n, arity, terms, c)
	}
}
