// Package oracle defines the stochastic-oracle contract the solvers
// consume, plus a built-in implementation.
//
// The contract
//
//	Solve(ctx, g, attempt) -> (nodes, error)
//
// An oracle proposes a candidate node subset for g. The candidate is NOT
// required to be independent; conflict repair downstream makes it
// feasible. Oracles may fail; the orchestrator demotes any error to a
// failed attempt. The attempt index selects the parameter regime: even
// attempts use the oracle's deterministic schedule, odd attempts its
// randomized one, so a round of attempts mixes exploitation and
// exploration.
//
// Annealer
//
//	The built-in oracle is a seeded, layered annealing sampler over the
//	penalized objective |S| - Penalty*conflicts(S). Per attempt it runs
//	Shots restarts of MaxIter sweeps; each sweep walks the Reps schedule
//	layers, where beta acts as the inverse temperature and gamma damps
//	downhill acceptance. OptLevel picks the restart construction (0:
//	uniform, ≥1: degree-biased toward low-degree nodes) and BondDim sets
//	the tabu tenure that keeps recently flipped nodes frozen. Identical
//	(seed, attempt) inputs reproduce identical candidates.
package oracle
