package repair

import (
	"github.com/katalvlaran/indset/core"
)

// Repair returns an independent subset of candidate, ascending.
//
// Loop invariant: the working set only shrinks, by exactly one node per
// iteration, always the member with the most conflicts, lowest NodeID on
// ties.
// Returns ErrGraphNil for a nil graph and the context error on
// cancellation; otherwise never fails.
func Repair(g *core.Graph, candidate []core.NodeID, opts ...Option) ([]core.NodeID, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Dedupe and drop IDs the graph does not know.
	current := make(map[core.NodeID]struct{}, len(candidate))
	for _, id := range candidate {
		if g.HasNode(id) {
			current[id] = struct{}{}
		}
	}

	for {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		counts := conflictCounts(g, current)
		if len(counts) == 0 {
			break
		}

		worst := pickWorst(counts)
		delete(current, worst)
		o.OnRemove(worst, counts[worst])
	}

	out := make([]core.NodeID, 0, len(current))
	for id := range current {
		out = append(out, id)
	}
	core.SortNodeIDs(out)
	return out, nil
}

// conflictCounts maps each conflicted member of current to the number of
// adjacent pairs it participates in. Empty map means current is
// independent.
func conflictCounts(g *core.Graph, current map[core.NodeID]struct{}) map[core.NodeID]int {
	counts := make(map[core.NodeID]int)
	for u := range current {
		for _, v := range g.Neighbors(u) {
			if u < v {
				if _, in := current[v]; in {
					counts[u]++
					counts[v]++
				}
			}
		}
	}
	return counts
}

// pickWorst selects the node with the largest conflict count, breaking
// ties toward the lowest NodeID.
func pickWorst(counts map[core.NodeID]int) core.NodeID {
	first := true
	var worst core.NodeID
	var max int
	for id, c := range counts {
		if first || c > max || (c == max && id < worst) {
			worst, max, first = id, c, false
		}
	}
	return worst
}
