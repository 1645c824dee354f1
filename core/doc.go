// Package core provides the graph model shared by every indset component:
// an opaque integer NodeID and a thread-safe simple undirected Graph.
//
// What
//
//   - NodeID: a single opaque integer identifier. Benchmark instances use
//     dense 0..n-1 labels; arbitrary non-negative labels are accepted at
//     the top level and made dense again at relabeling boundaries.
//   - Graph: loop-free, symmetric adjacency over a finite NodeID set.
//     Duplicate edges collapse silently (simple graph); self-loops are
//     rejected with ErrSelfLoop.
//   - Subgraph: induced subgraph keeping original labels.
//   - Relabel: dense 0..n-1 copy plus the total bijection back to the
//     original labels, the contract every partition piece relies on.
//
// Determinism
//
//	Nodes, Neighbors and Edges return ascending order, so every consumer
//	(repair sweeps, bisection, artifact emission) is reproducible without
//	extra sorting.
//
// Concurrency
//
//	All methods are safe for concurrent use. Solvers treat a Graph as
//	read-only once shared; the RWMutex makes that convention safe rather
//	than load-bearing.
//
// Complexity (n = |nodes|, m = |edges|)
//
//   - AddNode/AddEdge/HasNode/HasEdge/Degree: O(1) expected
//   - Nodes: O(n log n); Neighbors: O(deg log deg); Edges: O(n log n + m)
//   - Clone/Subgraph/Relabel: O(n + m)
package core
