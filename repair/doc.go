// Package repair turns any node subset into an independent set by greedy
// conflict removal: while any adjacent pair remains inside the working
// set, the member participating in the most conflicts is removed.
//
// What
//
//   - Repair(g, candidate, opts...) returns a subset of candidate with no
//     adjacent pair, maximal with respect to the greedy removal order
//     (not necessarily a maximum independent set).
//   - Ties on the conflict count break toward the lowest NodeID, so the
//     result is fully deterministic for a given graph and candidate.
//   - Duplicates in the candidate collapse; IDs absent from the graph are
//     dropped.
//
// Why
//
//	Stochastic oracles emit nearly-independent sets; a cheap deterministic
//	repair step converts them into feasible solutions. The same step
//	stitches partition pieces back together, where cross-piece edges make
//	the raw union infeasible.
//
// Termination
//
//	Each iteration removes exactly one node, so the loop runs at most
//	|candidate| times. Empty input returns an empty set, no error.
//
// Complexity (k = |candidate|, working-set degree sum D)
//
//   - Time: O(k · D) worst case; Memory: O(k).
//
// Errors
//
//   - ErrGraphNil for a nil graph; the context error when cancelled.
package repair
