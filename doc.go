// Package indset approximates Maximum Independent Set on graphs by
// wrapping an expensive stochastic oracle in the machinery that makes it
// usable: hard wall-clock deadlines, parallel multi-attempt orchestration,
// divide-and-conquer partitioning for graphs too large to solve directly,
// and a resumable benchmark driver with a ratio-aware persistence policy.
//
// What lives where:
//
//	core/      NodeID, simple undirected Graph, relabeling primitives
//	repair/    greedy conflict repair: any node subset → independent set
//	oracle/    the oracle contract plus a built-in seeded annealing oracle
//	community/ community detection: Louvain (gonum) + greedy modularity
//	partition/ recursive splitting into bounded, dense-relabeled pieces
//	solve/     Direct (attempt orchestration) and Large (split & stitch)
//	deadline/  hard-deadline execution, subprocess-isolated
//	bench/     per-instance benchmark state machine, CSV store, artifacts
//	dimacs/    DIMACS-style instance reader
//	config/    one immutable knob bundle for every component
//	gen/       deterministic graph generators for fixtures and benchmarks
//	ctxlog/    slog loggers carried through context
//
// The solvers never promise optimality: they promise a valid independent
// set, the best one found within the configured attempt and time budgets.
//
//	go get github.com/katalvlaran/indset
package indset
