package core

import (
	"sort"
	"sync"
)

// Graph is a simple undirected graph over NodeIDs.
// The zero value is not usable; construct with NewGraph.
type Graph struct {
	mu    sync.RWMutex
	adj   map[NodeID]map[NodeID]struct{}
	edges int
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{adj: make(map[NodeID]map[NodeID]struct{})}
}

// AddNode inserts id if absent. Idempotent.
func (g *Graph) AddNode(id NodeID) {
	g.mu.Lock()
	g.ensure(id)
	g.mu.Unlock()
}

// AddNodeRange inserts nodes 0..n-1, the dense label block instance
// headers declare. Existing nodes are kept.
func (g *Graph) AddNodeRange(n int) error {
	if n < 0 {
		return ErrNegativeCount
	}
	g.mu.Lock()
	for i := 0; i < n; i++ {
		g.ensure(NodeID(i))
	}
	g.mu.Unlock()
	return nil
}

// AddEdge inserts the undirected edge {u,v}, creating missing endpoints.
// Duplicate edges are a no-op; u == v returns ErrSelfLoop.
func (g *Graph) AddEdge(u, v NodeID) error {
	if u == v {
		return ErrSelfLoop
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensure(u)
	g.ensure(v)
	if _, dup := g.adj[u][v]; dup {
		return nil
	}
	g.adj[u][v] = struct{}{}
	g.adj[v][u] = struct{}{}
	g.edges++
	return nil
}

// HasNode reports whether id exists.
func (g *Graph) HasNode(id NodeID) bool {
	g.mu.RLock()
	_, ok := g.adj[id]
	g.mu.RUnlock()
	return ok
}

// HasEdge reports whether the undirected edge {u,v} exists.
func (g *Graph) HasEdge(u, v NodeID) bool {
	g.mu.RLock()
	_, ok := g.adj[u][v]
	g.mu.RUnlock()
	return ok
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	n := len(g.adj)
	g.mu.RUnlock()
	return n
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	m := g.edges
	g.mu.RUnlock()
	return m
}

// Degree returns the number of neighbors of id, 0 if id is absent.
func (g *Graph) Degree(id NodeID) int {
	g.mu.RLock()
	d := len(g.adj[id])
	g.mu.RUnlock()
	return d
}

// Nodes returns all node IDs in ascending order.
func (g *Graph) Nodes() []NodeID {
	g.mu.RLock()
	out := make([]NodeID, 0, len(g.adj))
	for id := range g.adj {
		out = append(out, id)
	}
	g.mu.RUnlock()
	SortNodeIDs(out)
	return out
}

// Neighbors returns the neighbors of id in ascending order.
// An absent id yields an empty slice.
func (g *Graph) Neighbors(id NodeID) []NodeID {
	g.mu.RLock()
	out := make([]NodeID, 0, len(g.adj[id]))
	for nbr := range g.adj[id] {
		out = append(out, nbr)
	}
	g.mu.RUnlock()
	SortNodeIDs(out)
	return out
}

// Edges returns every undirected edge exactly once as {u,v} with u < v,
// in lexicographic order.
func (g *Graph) Edges() [][2]NodeID {
	nodes := g.Nodes()
	g.mu.RLock()
	out := make([][2]NodeID, 0, g.edges)
	for _, u := range nodes {
		row := make([]NodeID, 0, len(g.adj[u]))
		for v := range g.adj[u] {
			if u < v {
				row = append(row, v)
			}
		}
		SortNodeIDs(row)
		for _, v := range row {
			out = append(out, [2]NodeID{u, v})
		}
	}
	g.mu.RUnlock()
	return out
}

// Clone returns a deep copy of g.
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()
	c := &Graph{adj: make(map[NodeID]map[NodeID]struct{}, len(g.adj)), edges: g.edges}
	for id, row := range g.adj {
		cr := make(map[NodeID]struct{}, len(row))
		for nbr := range row {
			cr[nbr] = struct{}{}
		}
		c.adj[id] = cr
	}
	return c
}

// ensure inserts id without locking; callers hold g.mu.
func (g *Graph) ensure(id NodeID) {
	if _, ok := g.adj[id]; !ok {
		g.adj[id] = make(map[NodeID]struct{})
	}
}

// SortNodeIDs sorts ids in ascending order, in place.
func SortNodeIDs(ids []NodeID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
