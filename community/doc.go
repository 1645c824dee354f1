// Package community groups graph nodes into densely connected clusters,
// the splitting signal the partitioner uses before it resorts to blind
// bisection.
//
// What
//
//   - Detector is the pluggable interface: Detect(ctx, g) returns a
//     partition of g's nodes into one or more communities.
//   - Louvain maximises modularity through gonum's hierarchical
//     implementation, seeded for reproducible runs.
//   - Greedy is the pure-Go fallback: single-level local moves that
//     accept only strict modularity gains, for graphs where Louvain
//     finds no structure worth the setup cost.
//
// Determinism
//
//   - Louvain feeds a fixed PCG stream to gonum, so one seed yields one
//     partition for a given graph and gonum release.
//   - Greedy scans nodes and candidate communities in ascending order
//     and moves only on strict improvement, which pins every tie.
//   - Output is canonical: each community ascending, communities ordered
//     by their smallest member.
//
// Edge cases
//
//	A graph with no edges has no community structure to find; both
//	detectors return the whole node set as a single community and leave
//	the caller to split by other means. An empty graph yields an empty
//	partition.
//
// Errors
//
//   - ErrGraphNil for a nil graph; the context error when cancelled.
package community
