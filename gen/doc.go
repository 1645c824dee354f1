// Package gen builds small deterministic graphs for tests, benchmarks
// and demos: cycles, cliques, edgeless blocks, and seeded sparse random
// graphs.
//
// Determinism: same parameters and seed produce identical graphs. Node
// labels are always the dense block 0..n-1, the shape the solvers expect
// from instance files.
//
// Validation: constructors return sentinel errors (ErrTooFewNodes,
// ErrBadProbability) instead of panicking.
package gen
