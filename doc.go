// Package annealcore implements simulated annealing over quadratic and
// polynomial unconstrained spin optimization problems (QUSO/PUSO).
//
// Under the hood, everything is organized under five subpackages:
//
//	prng/        — PCG32, the core's self-contained deterministic PRNG
//	quso/        — CSR adjacency model, incremental ΔE cache, Metropolis kernel
//	puso/        — flattened term model, inverted index, on-demand ΔE kernel
//	anneal/      — multi-trial Anneal driver and single-state Simulate driver
//	spinbuilder/ — deterministic topology constructors for both models
//
// Determinism is the core discipline throughout: a non-negative seed
// reproduces byte-identical output across runs; a negative seed opts out
// by time-seeding the PRNG.
package annealcore
