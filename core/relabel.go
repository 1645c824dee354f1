package core

// Subgraph returns the subgraph induced by nodes, keeping original labels.
// IDs absent from g are ignored, matching the tolerant behavior expected
// by repair and partitioning. Duplicates collapse.
func (g *Graph) Subgraph(nodes []NodeID) *Graph {
	keep := make(map[NodeID]struct{}, len(nodes))
	g.mu.RLock()
	for _, id := range nodes {
		if _, ok := g.adj[id]; ok {
			keep[id] = struct{}{}
		}
	}
	sub := &Graph{adj: make(map[NodeID]map[NodeID]struct{}, len(keep))}
	for id := range keep {
		row := make(map[NodeID]struct{})
		for nbr := range g.adj[id] {
			if _, ok := keep[nbr]; ok {
				row[nbr] = struct{}{}
			}
		}
		sub.adj[id] = row
		sub.edges += len(row)
	}
	g.mu.RUnlock()
	// each undirected edge was counted from both endpoints
	sub.edges /= 2
	return sub
}

// Relabel returns a copy of g with nodes renamed to the dense block
// 0..n-1 following ascending original order, plus the bijection back:
// originalOf[local] is the original label of local index local.
//
// This is the boundary contract for partition pieces: solvers see dense
// indices, stitching maps them back through originalOf.
func (g *Graph) Relabel() (*Graph, []NodeID) {
	originalOf := g.Nodes()
	localOf := make(map[NodeID]NodeID, len(originalOf))
	for local, orig := range originalOf {
		localOf[orig] = NodeID(local)
	}

	dense := NewGraph()
	_ = dense.AddNodeRange(len(originalOf))
	g.mu.RLock()
	for _, orig := range originalOf {
		for nbr := range g.adj[orig] {
			if orig < nbr {
				_ = dense.AddEdge(localOf[orig], localOf[nbr])
			}
		}
	}
	g.mu.RUnlock()
	return dense, originalOf
}
