// Package quso implements the CSR-style adjacency model, the incremental
// ΔE cache, and the Metropolis spin-flip kernel for Quadratic Unconstrained
// Spin Optimization:
//
//	E(s) = Σ_i h_i s_i  +  Σ_{(i,j)} J_ij s_i s_j
//
// Problem arrays are supplied flat (h, deg, nbr, J) exactly as the original
// qubovert C core lays them out (original_source/qubovert/sim/src/
// anneal_quso.c); Problem derives the row-offset index in O(n) so every
// per-spin neighbor scan is O(degree) rather than O(n) or O(edges).
//
// The package never allocates inside the sweep loop: NewProblem, NewCache
// and the Cache.Verify diagnostic are the only allocating calls;
// ComputeAll, OnFlip and Sweep touch only pre-allocated slices.
package quso
