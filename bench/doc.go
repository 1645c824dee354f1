// Package bench runs the benchmark harness: walk an instance
// directory, solve each graph under a deadline chain, and persist every
// strict improvement.
//
// What
//
//   - Driver.Run processes *.gph instances in name order. Per instance
//     it follows a fixed path: resume check, size gate, direct attempt
//     under the primary deadline, divide-and-conquer fallback under the
//     longer deadline, evaluation against the best known size, and a
//     conditional persist.
//   - Store keeps one CSV row per instance (size, ratio, timing,
//     timeout flags) and rewrites the file on every accepted
//     improvement, so a killed run loses at most the in-flight
//     instance.
//   - OptimalSize probes <name>.opt.sol, <name>.bst.sol, <name>.sol
//     for the externally known best, in either assignment (x#i 0|1) or
//     index-list form. No file means no baseline: the ratio of every
//     achieved size is then 0 and nothing persists.
//   - WriteSolution emits the achieved set in the assignment format, a
//     header plus one x#i line per node, readable by OptimalSize.
//
// Resumability
//
//	Instances recorded at or above Config.ResumeRatio are skipped
//	outright; the rest re-run and compete against their stored ratio.
//	Only a strictly better ratio with a non-zero size touches disk.
//
// Failure model
//
//	A timed-out direct attempt falls through to the fallback, a
//	timed-out fallback scores zero, and an unreadable instance is
//	logged and skipped. Nothing per-instance aborts the run; only
//	context cancellation and store setup errors do.
package bench
