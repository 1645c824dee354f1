package oracle

import (
	"context"
	"math"
	"math/rand/v2"

	"github.com/katalvlaran/indset/config"
	"github.com/katalvlaran/indset/core"
)

// Annealer is the built-in stochastic oracle: a seeded multi-restart
// annealer over the penalized independent-set objective. See the package
// doc for the knob semantics. Safe for concurrent Solve calls; each call
// derives its own random stream from (Seed, attempt).
type Annealer struct {
	reps     int
	penalty  float64
	maxIter  int
	shots    int
	optLevel int
	bondDim  int
	seed     uint64
}

// NewAnnealer builds an Annealer from the shared configuration.
func NewAnnealer(cfg config.Config) *Annealer {
	return &Annealer{
		reps:     cfg.Reps,
		penalty:  cfg.Penalty,
		maxIter:  cfg.MaxIter,
		shots:    cfg.Shots,
		optLevel: cfg.OptLevel,
		bondDim:  cfg.BondDim,
		seed:     cfg.Seed,
	}
}

// Name implements Oracle.
func (a *Annealer) Name() string { return "anneal" }

// Solve implements Oracle. The candidate maximizes the penalized
// objective over all states visited by Shots annealing restarts; it may
// still contain conflicts when the penalty trade-off favors them.
func (a *Annealer) Solve(ctx context.Context, g *core.Graph, attempt int) ([]core.NodeID, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	nodes := g.Nodes()
	n := len(nodes)
	if n == 0 {
		return []core.NodeID{}, nil
	}

	// Dense view: adj[i] lists local neighbor indices of nodes[i].
	local := make(map[core.NodeID]int, n)
	for i, id := range nodes {
		local[id] = i
	}
	adj := make([][]int, n)
	for i, id := range nodes {
		nbrs := g.Neighbors(id)
		row := make([]int, 0, len(nbrs))
		for _, nbr := range nbrs {
			row = append(row, local[nbr])
		}
		adj[i] = row
	}

	rng := rand.New(rand.NewPCG(a.seed, uint64(attempt)+0x9e3779b97f4a7c15))
	betas, gammas := a.schedule(attempt, rng)
	// a tenure beyond n/2 would freeze small graphs solid
	tenure := a.bondDim
	if limit := n / 2; tenure > limit {
		tenure = limit
	}

	in := make([]bool, n)
	best := make([]bool, n)
	bestScore := math.Inf(-1)
	tabuUntil := make([]int, n)
	step := 0

	for shot := 0; shot < a.shots; shot++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		size, conflicts := a.restart(g, nodes, adj, in, rng)
		score := float64(size) - a.penalty*float64(conflicts)
		if score > bestScore {
			bestScore = score
			copy(best, in)
		}

		for iter := 0; iter < a.maxIter; iter++ {
			for layer := 0; layer < a.reps; layer++ {
				beta, gamma := betas[layer], gammas[layer]
				for k := 0; k < n; k++ {
					v := rng.IntN(n)
					if tabuUntil[v] > step {
						step++
						continue
					}
					nbrIn := 0
					for _, w := range adj[v] {
						if in[w] {
							nbrIn++
						}
					}
					var delta float64
					if in[v] {
						delta = -1 + a.penalty*float64(nbrIn)
					} else {
						delta = 1 - a.penalty*float64(nbrIn)
					}
					if delta >= 0 || rng.Float64() < gamma*math.Exp(delta*beta) {
						if in[v] {
							size--
							conflicts -= nbrIn
						} else {
							size++
							conflicts += nbrIn
						}
						in[v] = !in[v]
						tabuUntil[v] = step + tenure
						score = float64(size) - a.penalty*float64(conflicts)
						if score > bestScore {
							bestScore = score
							copy(best, in)
						}
					}
					step++
				}
			}
		}
	}

	out := make([]core.NodeID, 0, n)
	for i, id := range nodes {
		if best[i] {
			out = append(out, id)
		}
	}
	return out, nil
}

// restart fills in with a fresh start state and returns its size and
// conflict count. OptLevel 0 tosses a fair coin per node; OptLevel ≥ 1
// biases inclusion toward low-degree nodes.
func (a *Annealer) restart(g *core.Graph, nodes []core.NodeID, adj [][]int, in []bool, rng *rand.Rand) (size, conflicts int) {
	for i := range in {
		p := 0.5
		if a.optLevel >= 1 {
			p = 1.0 / float64(1+g.Degree(nodes[i]))
		}
		in[i] = rng.Float64() < p
		if in[i] {
			size++
		}
	}
	for i := range in {
		if !in[i] {
			continue
		}
		for _, w := range adj[i] {
			if i < w && in[w] {
				conflicts++
			}
		}
	}
	return size, conflicts
}

// schedule returns per-layer (beta, gamma) pairs. Even attempts use the
// fixed linear ramps betas 0.2→0.8 and gammas 0.8→0.2; odd attempts draw
// both uniformly from [0.1, 1.0).
func (a *Annealer) schedule(attempt int, rng *rand.Rand) (betas, gammas []float64) {
	betas = make([]float64, a.reps)
	gammas = make([]float64, a.reps)
	if attempt%2 == 0 {
		for i := range betas {
			betas[i] = linspace(0.2, 0.8, a.reps, i)
			gammas[i] = linspace(0.8, 0.2, a.reps, i)
		}
		return betas, gammas
	}
	for i := range betas {
		betas[i] = 0.1 + 0.9*rng.Float64()
		gammas[i] = 0.1 + 0.9*rng.Float64()
	}
	return betas, gammas
}

// linspace returns element i of an n-point linear ramp from lo to hi.
func linspace(lo, hi float64, n, i int) float64 {
	if n <= 1 {
		return lo
	}
	return lo + (hi-lo)*float64(i)/float64(n-1)
}
