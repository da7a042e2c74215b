package puso

import "errors"

// Sentinel errors for the puso package.
var (
	// ErrDimensionMismatch indicates Σ arity[t] ≠ len(terms), or a
	// slice-length mismatch among arity/c/state.
	ErrDimensionMismatch = errors.New("puso: dimension mismatch")

	// ErrEmptyProblem indicates n == 0 where the caller required n ≥ 1.
	ErrEmptyProblem = errors.New("puso: empty problem")

	// ErrInvalidSpin indicates a state entry is not exactly +1 or -1.
	ErrInvalidSpin = errors.New("puso: spin value is not ±1")

	// ErrSpinOutOfRange indicates a term references a spin index outside
	// [0, n).
	ErrSpinOutOfRange = errors.New("puso: term references out-of-range spin")
)

// Problem is the flattened PUSO term model. Term count T is implicit in
// len(Arity)/len(C); TermOff and Inc are derived once at construction:
// termOff[] is built in O(T), and inc[] by a single O(L) pass.
type Problem struct {
	N int // number of spins

	Arity []int     // Arity[t]: number of spin factors in term t, len T
	Terms []int     // Terms: concatenated term spin-index lists, len L = Σ Arity[t]
	C     []float64 // C[t]: coefficient of term t, len T

	TermOff []int   // TermOff[t] = Σ_{u<t} Arity[u]; derived, len T+1
	Inc     [][]int // Inc[i]: term indices in which spin i appears; derived
}

// NumTerms reports the number of terms T in the problem.
//
// Complexity: O(1).
func (p *Problem) NumTerms() int {
	return len(p.Arity)
}

// TermSpins returns the spin-index slice for term t, sliced directly out
// of the shared Terms backing array — no allocation.
//
// Complexity: O(1).
func (p *Problem) TermSpins(t int) []int {
	lo, hi := p.TermOff[t], p.TermOff[t+1]
	return p.Terms[lo:hi]
}

// NewProblem validates shapes, builds TermOff in O(T), and builds the
// inverted index Inc in a single O(L) pass over Terms.
//
// Contract:
//   - n ≥ 0; every entry of terms lies in [0, n).
//   - Σ arity[t] == len(terms); len(arity) == len(c).
//
// Complexity: O(T + L).
func NewProblem(n int, arity []int, terms []int, c []float64) (*Problem, error) {
	tcount := len(arity)
	if tcount != len(c) {
		return nil, ErrDimensionMismatch
	}

	termOff := make([]int, tcount+1)
	for t := 0; t < tcount; t++ {
		if arity[t] < 1 {
			return nil, ErrDimensionMismatch
		}
		termOff[t+1] = termOff[t] + arity[t]
	}
	if termOff[tcount] != len(terms) {
		return nil, ErrDimensionMismatch
	}

	inc := make([][]int, n)
	for t := 0; t < tcount; t++ {
		lo, hi := termOff[t], termOff[t+1]
		for _, spin := range terms[lo:hi] {
			if spin < 0 || spin >= n {
				return nil, ErrSpinOutOfRange
			}
			inc[spin] = append(inc[spin], t)
		}
	}

	return &Problem{
		N:       n,
		Arity:   arity,
		Terms:   terms,
		C:       c,
		TermOff: termOff,
		Inc:     inc,
	}, nil
}

// ValidateState reports whether every entry of state is exactly ±1 and its
// length matches the problem's spin count.
//
// Complexity: O(n).
func ValidateState(p *Problem, state []int8) error {
	if len(state) != p.N {
		return ErrDimensionMismatch
	}
	for _, s := range state {
		if s != 1 && s != -1 {
			return ErrInvalidSpin
		}
	}

	return nil
}
