// Package solve orchestrates independent-set search: fan out stochastic
// oracle attempts, repair every candidate, keep the biggest survivor.
//
// What
//
//   - Direct(ctx, g, orc, cfg) launches cfg.MaxAttempts oracle calls
//     over an errgroup bounded to cfg.MaxWorkers, repairs each
//     candidate, and returns the strictly largest repaired set. Equal
//     sizes keep the first candidate observed, in completion order.
//   - Large(ctx, g, orc, cfg) handles graphs beyond
//     cfg.MaxSubgraphSize: partition into dense-labeled pieces, run
//     Direct on each piece sequentially, map local winners back to
//     original labels, union them, and repair the union once. Edges
//     crossing piece boundaries make the raw union infeasible, which is
//     exactly what the final repair absorbs.
//
// Failure model
//
//	A failed attempt is logged and dropped; siblings keep running. A
//	round where every attempt fails returns the empty Result, not an
//	error: "no solution" is an answer. Only invalid inputs and context
//	cancellation surface as errors.
//
// Determinism
//
//	None across attempts beyond the selection rule. With MaxWorkers=1
//	attempts complete in launch order, which pins tie-breaking for
//	tests.
package solve
