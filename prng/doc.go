// Package prng provides the deterministic pseudo-random source shared by
// every annealing kernel in this module.
//
// Contract:
//   - New(seed) with seed ≥ 0 produces a byte-reproducible stream; seed < 0
//     seeds from a wall-clock source and is explicitly non-reproducible.
//   - Uniform01 draws a double in [0, 1) using at least 32 random bits.
//   - UniformBounded draws an unbiased integer in [0, n) via rejection
//     sampling rather than a biased floor-multiply.
//
// Algorithm: PCG32 (O'Neill, pcg-random.org), a minimal 64-bit-state,
// 32-bit-output permuted linear congruential generator. We hand-roll it
// rather than reach for `math/rand` because callers need a self-contained,
// documented, counter/increment pair independent of any host PRNG. The
// constants and permutation below are the canonical ones
// from pcg_basic.c, the same generator family the original qubovert C core
// wraps (original_source/qubovert/sim/src/random.h).
//
// A *PCG32 is single-owner: nothing in this module shares one PRNG across
// concurrent callers, so this type does no internal locking.
package prng
