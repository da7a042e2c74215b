package spinbuilder

import (
	"fmt"

	"github.com/katalvlaran/annealcore/quso"
)

const (
	methodRandomRegularQUSO        = "RandomRegularQUSO"
	minRandomRegularQUSOSpins      = 1
	maxRegularStubMatchingAttempts = 3
)

// RandomRegularQUSO returns a QUSOConstructor building a d-regular
// topology over n spins via stub matching with bounded retries: a
// shuffled list of n*d stubs (each spin index repeated d times) is paired
// consecutively; a pairing with a self-loop or duplicate edge is
// rejected and reshuffled, up to maxRegularStubMatchingAttempts times.
// Specialized to a simple (no loops, no multi-edges) graph since QUSO
// adjacency assumes a plain coupling graph.
func RandomRegularQUSO(n, d int) QUSOConstructor {
	return func(cfg *builderConfig) (*quso.Problem, error) {
		if n < minRandomRegularQUSOSpins {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomRegularQUSO, n, minRandomRegularQUSOSpins, ErrTooFewSpins)
		}
		if d < 0 || d >= n {
			return nil, fmt.Errorf("%s: degree must be in [0,%d), got %d: %w",
				methodRandomRegularQUSO, n, d, ErrInvalidDegree)
		}
		if (n*d)%2 != 0 {
			return nil, fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w",
				methodRandomRegularQUSO, n, d, ErrInvalidDegree)
		}
		if err := requireRNG(methodRandomRegularQUSO, cfg.rng); err != nil {
			return nil, err
		}

		h := make([]float64, n)
		for i := range h {
			h[i] = cfg.fieldFn(cfg.rng)
		}

		stubCount := n * d
		if stubCount == 0 {
			deg, nbr, j := buildSymmetricAdjacency(n, nil)
			return quso.NewProblem(h, deg, nbr, j)
		}

		stubs := make([]int, stubCount)
		for i, pos := 0, 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs[pos] = i
				pos++
			}
		}

		for attempt := 1; attempt <= maxRegularStubMatchingAttempts; attempt++ {
			cfg.rng.Shuffle(stubCount, func(a, b int) { stubs[a], stubs[b] = stubs[b], stubs[a] })

			valid := true
			seen := make(map[[2]int]struct{}, stubCount/2)
			for i := 0; i < stubCount; i += 2 {
				u, v := stubs[i], stubs[i+1]
				if u == v {
					valid = false
					break
				}
				if u > v {
					u, v = v, u
				}
				key := [2]int{u, v}
				if _, dup := seen[key]; dup {
					valid = false
					break
				}
				seen[key] = struct{}{}
			}
			if !valid {
				continue
			}

			edges := make([]edge, 0, stubCount/2)
			for i := 0; i < stubCount; i += 2 {
				edges = append(edges, edge{i: stubs[i], j: stubs[i+1], coupling: cfg.couplingFn(cfg.rng)})
			}

			deg, nbr, j := buildSymmetricAdjacency(n, edges)
			return quso.NewProblem(h, deg, nbr, j)
		}

		return nil, fmt.Errorf("%s: failed to construct after %d attempts: %w",
			methodRandomRegularQUSO, maxRegularStubMatchingAttempts, ErrConstructFailed)
	}
}
