// Package partition recursively splits a graph into pieces no larger
// than a size bound, the preprocessing step that makes huge instances
// digestible for the per-piece solver.
//
// What
//
//   - Split(g, maxSize, opts...) returns pieces whose node sets are
//     pairwise disjoint and together cover g exactly. Each piece
//     carries its induced subgraph relabeled to a dense 0..k-1 block
//     plus the bijection back to original labels.
//   - A graph already within bound comes back as the sole piece.
//   - Splitting first asks a community detector for structure; a failed
//     primary detector falls through to the secondary, and a result
//     that is not a strictly shrinking partition falls through to
//     deterministic bisection of the ascending node list.
//
// Termination
//
//	Bisection halves a graph of n >= 2 nodes into strictly smaller
//	parts, and every detector result is validated for strict shrinkage
//	before recursion, so depth is bounded by log2(n) in the worst case
//	and the recursion always bottoms out. Detector output is never
//	trusted for correctness, only for quality: an invalid partition
//	(overlap, missing nodes, no progress) silently degrades to
//	bisection.
//
// Errors
//
//   - ErrGraphNil for a nil graph, ErrMaxSize for a bound below 1, and
//     the context error when cancelled mid-recursion. Detector failures
//     are absorbed by the fallback chain and never surface.
package partition
