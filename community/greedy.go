package community

import (
	"context"
	"sort"

	"github.com/katalvlaran/indset/core"
)

// Greedy detects communities by single-level greedy modularity moves:
// every node starts alone, then repeated ascending sweeps relocate each
// node to whichever neighbouring community yields the largest strictly
// positive modularity gain. Sweeps stop at the first fixed point or
// after maxPasses.
//
// It trades Louvain's hierarchy for a dependency-free, fully ordered
// scan, which is all the partitioner needs from a fallback.
type Greedy struct {
	resolution float64
	maxPasses  int
}

// NewGreedy returns a Greedy detector at DefaultResolution.
func NewGreedy() *Greedy {
	return &Greedy{resolution: DefaultResolution, maxPasses: DefaultMaxPasses}
}

// Name implements Detector.
func (d *Greedy) Name() string { return "greedy" }

// Detect implements Detector.
func (d *Greedy) Detect(ctx context.Context, g *core.Graph) ([][]core.NodeID, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	nodes := g.Nodes()
	if len(nodes) == 0 {
		return nil, nil
	}
	if g.EdgeCount() == 0 {
		return [][]core.NodeID{nodes}, nil
	}

	n := len(nodes)
	index := make(map[core.NodeID]int, n)
	for i, id := range nodes {
		index[id] = i
	}

	// adjacency and degrees over dense indices
	nbrs := make([][]int, n)
	degree := make([]float64, n)
	for i, id := range nodes {
		row := g.Neighbors(id)
		nbrs[i] = make([]int, len(row))
		for j, v := range row {
			nbrs[i][j] = index[v]
		}
		degree[i] = float64(len(row))
	}

	m := float64(g.EdgeCount())
	comm := make([]int, n)
	commDegree := make([]float64, n)
	for i := range nodes {
		comm[i] = i
		commDegree[i] = degree[i]
	}

	edgesTo := make(map[int]float64, 8)
	candidates := make([]int, 0, 8)

	for pass := 0; pass < d.maxPasses; pass++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		moved := false
		for i := 0; i < n; i++ {
			cur := comm[i]

			clear(edgesTo)
			candidates = candidates[:0]
			for _, j := range nbrs[i] {
				c := comm[j]
				if _, seen := edgesTo[c]; !seen && c != cur {
					candidates = append(candidates, c)
				}
				edgesTo[c]++
			}
			if len(candidates) == 0 {
				continue
			}
			// ascending candidate order pins tie-breaks under strict >
			sort.Ints(candidates)

			ki := degree[i]
			sumCur := commDegree[cur] - ki
			best, bestGain := cur, 0.0
			for _, c := range candidates {
				gain := (edgesTo[c]-edgesTo[cur])/m -
					d.resolution*ki*(commDegree[c]-sumCur)/(2*m*m)
				if gain > bestGain {
					best, bestGain = c, gain
				}
			}
			if best != cur {
				commDegree[cur] -= ki
				commDegree[best] += ki
				comm[i] = best
				moved = true
			}
		}
		if !moved {
			break
		}
	}

	grouped := make(map[int][]core.NodeID, 8)
	for i, id := range nodes {
		grouped[comm[i]] = append(grouped[comm[i]], id)
	}
	parts := make([][]core.NodeID, 0, len(grouped))
	for _, p := range grouped {
		parts = append(parts, p)
	}
	return canonicalize(parts), nil
}
