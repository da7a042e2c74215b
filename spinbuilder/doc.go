// Package spinbuilder assembles quso.Problem and puso.Problem instances
// for common topologies: chain, cycle, complete graph, grid lattice,
// Erdős–Rényi sparse, stub-matched regular, and random term sets.
//
// The functional-options shape (BuilderOption/builderConfig) and the
// Constructor-closure/single-entry-point dispatch (BuildQUSO/BuildPUSO)
// generalize a mutate-a-graph-incrementally builder convention to
// returning an immutable CSR-encoded spin problem in one shot.
package spinbuilder
