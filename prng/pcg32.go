package prng

import "time"

// pcgMultiplier is the canonical 64-bit LCG multiplier used by pcg_basic.c.
const pcgMultiplier uint64 = 6364136223846793005

// pcgDefaultSeq is the sequence (stream) constant applied when callers do
// not select one explicitly; it mirrors the single-stream usage in
// original_source/qubovert/sim/src/simulate_quso.c's `pcg32_srandom_r(&rng,
// seed, 54u)` call (54 is an arbitrary fixed stream id there; we use 1 as
// our own fixed stream id, any odd-derived constant is equally valid).
const pcgDefaultSeq uint64 = 1

// PCG32 is a minimal PCG (permuted congruential generator) with 64 bits of
// state and 32 bits of output. Zero value is invalid; construct with New
// or NewWithSeq.
type PCG32 struct {
	state uint64
	inc   uint64 // always odd; selects the generator's output sequence
}

// New returns a PCG32 seeded deterministically from seed when seed ≥ 0.
// When seed < 0, the generator is seeded from a wall-clock source and the
// resulting stream is explicitly non-reproducible.
//
// Complexity: O(1).
func New(seed int64) *PCG32 {
	if seed < 0 {
		return NewWithSeq(uint64(time.Now().UnixNano()), pcgDefaultSeq)
	}

	return NewWithSeq(uint64(seed), pcgDefaultSeq)
}

// NewWithSeq constructs a PCG32 from an explicit (initstate, initseq) pair,
// following pcg_basic.c's pcg32_srandom_r: the sequence constant selects
// one of 2^63 independent streams for a given initstate.
//
// Complexity: O(1).
func NewWithSeq(initstate, initseq uint64) *PCG32 {
	g := &PCG32{state: 0, inc: (initseq << 1) | 1}
	g.next()
	g.state += initstate
	g.next()

	return g
}

// next advances the internal LCG state and returns the permuted 32-bit
// output. This is the pcg32_random_r step: xorshift-high then
// rotate-variable, using the top bits of the pre-advance state as the
// rotation amount.
//
// Complexity: O(1).
func (g *PCG32) next() uint32 {
	old := g.state
	g.state = old*pcgMultiplier + g.inc

	xorshifted := uint32(((old >> 18) ^ old) >> 27)
	rot := uint32(old >> 59)

	return (xorshifted >> rot) | (xorshifted << ((-rot) & 31))
}

// Uint32 returns the next raw 32-bit draw from the stream.
//
// Complexity: O(1).
func (g *PCG32) Uint32() uint32 {
	return g.next()
}

// Uniform01 returns a deterministic double in [0, 1), using the full 32
// bits of one draw.
//
// Complexity: O(1).
func (g *PCG32) Uniform01() float64 {
	return float64(g.next()) / 4294967296.0 // 2^32
}

// UniformBounded returns an unbiased integer in [0, n) using the modulo
// rejection of pcg32_boundedrand_r: draws below 2^32 mod n are rejected, so
// the accepted range is the largest multiple of n that fits in 32 bits and
// r % n is uniform over it. For n ≤ 0 it returns 0 without drawing (no valid range to
// sample); callers are expected not to invoke this on an empty spin set,
// since a sweep over zero spins is a no-op and never calls it.
//
// Complexity: O(1) amortized; rejection loops terminate with probability 1
// and in practice almost always on the first draw.
func (g *PCG32) UniformBounded(n int) int {
	if n <= 0 {
		return 0
	}
	bound := uint32(n)
	// threshold is (2^32 mod bound), computed without overflow as the
	// two's-complement negation trick from pcg32_boundedrand_r.
	threshold := -bound % bound

	for {
		r := g.next()
		if r >= threshold {
			return int(r % bound)
		}
	}
}
