// Package anneal provides the driver loops that run the quso and puso
// Metropolis kernels across a temperature schedule: Anneal repeats M
// independent trials of a full schedule sweep and reports final states
// and energies; Simulate advances a single caller-owned state through
// (temperature, sweep-count) pairs in place. Options is a plain
// configuration struct with a DefaultOptions constructor; a zero Options
// is rejected (ErrEmptySchedule) rather than filled in with defaults.
package anneal
