package partition

import (
	"fmt"

	"github.com/katalvlaran/indset/core"
)

// Split partitions g into pieces of at most maxSize nodes.
//
// The pieces' original node sets are pairwise disjoint and union to
// exactly g's node set. Community detection steers the cuts where it
// finds structure; bisection of the ascending node list forces progress
// everywhere else, so the call terminates on any input including
// cliques and edgeless graphs.
func Split(g *core.Graph, maxSize int, opts ...Option) ([]Piece, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if maxSize < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrMaxSize, maxSize)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var out []Piece
	if err := split(g, maxSize, o, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// split walks one recursion level: emit a leaf, or cut and descend.
func split(g *core.Graph, maxSize int, o Options, out *[]Piece) error {
	if err := o.Ctx.Err(); err != nil {
		return err
	}

	if g.NodeCount() <= maxSize {
		sub, originalOf := g.Relabel()
		*out = append(*out, Piece{Sub: sub, OriginalOf: originalOf})
		return nil
	}

	parts, err := cut(g, o)
	if err != nil {
		return err
	}
	for _, part := range parts {
		if len(part) == 0 {
			continue
		}
		if err := split(g.Subgraph(part), maxSize, o, out); err != nil {
			return err
		}
	}
	return nil
}

// cut produces the next level's node sets: detector chain first,
// bisection whenever detection fails or fails to shrink the graph.
func cut(g *core.Graph, o Options) ([][]core.NodeID, error) {
	parts, err := o.Detector.Detect(o.Ctx, g)
	if err != nil {
		if ctxErr := o.Ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		parts, err = o.Fallback.Detect(o.Ctx, g)
	}
	if err != nil {
		if ctxErr := o.Ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return halves(g), nil
	}
	if !shrinks(parts, g) {
		return halves(g), nil
	}
	return parts, nil
}

// halves bisects the ascending node list at the midpoint. For n >= 2
// both halves are strictly smaller, the property the recursion leans on.
func halves(g *core.Graph) [][]core.NodeID {
	nodes := g.Nodes()
	mid := len(nodes) / 2
	return [][]core.NodeID{nodes[:mid], nodes[mid:]}
}

// shrinks verifies a detector result is a true partition of g into at
// least two non-empty parts, which implies every part is strictly
// smaller than g. Detectors are pluggable and possibly heuristic, so
// their output buys progress only after this check.
func shrinks(parts [][]core.NodeID, g *core.Graph) bool {
	nonEmpty := 0
	seen := make(map[core.NodeID]struct{}, g.NodeCount())
	for _, part := range parts {
		if len(part) > 0 {
			nonEmpty++
		}
		for _, id := range part {
			if !g.HasNode(id) {
				return false
			}
			if _, dup := seen[id]; dup {
				return false
			}
			seen[id] = struct{}{}
		}
	}
	return nonEmpty >= 2 && len(seen) == g.NodeCount()
}
