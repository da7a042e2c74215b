package spinbuilder

import (
	"fmt"

	"github.com/katalvlaran/annealcore/quso"
)

const (
	methodGridLattice        = "GridLattice"
	minGridLatticeRowsOrCols = 1
	minGridLatticeTotalSpins = 2
)

// GridLattice returns a QUSOConstructor building a rows x cols
// 4-neighborhood lattice, row-major spin index r*cols+c, bonded to its
// right and down neighbors (each edge counted once; symmetrized by
// buildSymmetricAdjacency).
func GridLattice(rows, cols int) QUSOConstructor {
	return func(cfg *builderConfig) (*quso.Problem, error) {
		if rows < minGridLatticeRowsOrCols || cols < minGridLatticeRowsOrCols {
			return nil, fmt.Errorf("%s: rows=%d cols=%d < min=%d: %w",
				methodGridLattice, rows, cols, minGridLatticeRowsOrCols, ErrTooFewSpins)
		}
		n := rows * cols
		if n < minGridLatticeTotalSpins {
			return nil, fmt.Errorf("%s: rows*cols=%d < min=%d: %w",
				methodGridLattice, n, minGridLatticeTotalSpins, ErrTooFewSpins)
		}

		h := make([]float64, n)
		for i := range h {
			h[i] = cfg.fieldFn(cfg.rng)
		}

		idx := func(r, c int) int { return r*cols + c }

		edges := make([]edge, 0, 2*n)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				i := idx(r, c)
				if c+1 < cols {
					edges = append(edges, edge{i: i, j: idx(r, c+1), coupling: cfg.couplingFn(cfg.rng)})
				}
				if r+1 < rows {
					edges = append(edges, edge{i: i, j: idx(r+1, c), coupling: cfg.couplingFn(cfg.rng)})
				}
			}
		}

		deg, nbr, j := buildSymmetricAdjacency(n, edges)
		return quso.NewProblem(h, deg, nbr, j)
	}
}
