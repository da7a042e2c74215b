// Package puso implements the flattened term model and the on-demand
// Metropolis spin-flip kernel for Polynomial Unconstrained Spin
// Optimization:
//
//	E(s) = Σ_t c_t · ∏_{k ∈ term_t} s_k
//
// Unlike quso, there is no incremental ΔE cache: a single flip can change
// the delta-energy of every spin sharing any term with the flipped spin,
// and terms may have arbitrary arity, so the bookkeeping to maintain a
// cache would outweigh the savings for typical sparse PUSO instances.
// Instead, Problem derives an inverted index (spin → terms
// containing it) once, and each ΔE is recomputed on demand in
// O(Σ arity of incident terms).
//
// Grounded on original_source/qubovert/sim/src/anneal_puso.c's
// `puso_subgraph_value`/`subgraphs` construction.
package puso
