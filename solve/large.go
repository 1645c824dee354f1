package solve

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/indset/config"
	"github.com/katalvlaran/indset/core"
	"github.com/katalvlaran/indset/ctxlog"
	"github.com/katalvlaran/indset/oracle"
	"github.com/katalvlaran/indset/partition"
	"github.com/katalvlaran/indset/repair"
)

// Large solves graphs of any size by divide and conquer: graphs within
// cfg.MaxSubgraphSize delegate straight to Direct, anything bigger is
// partitioned, solved piece by piece, and stitched back together.
//
// Pieces are solved sequentially; their winners, mapped back to
// original labels, are unioned and repaired once, because edges between
// pieces can make the raw union infeasible. A piece whose round fails
// entirely contributes nothing and does not abort the rest.
//
// Extra popts are forwarded to the partitioner after its context
// binding, so callers can swap the detector chain.
func Large(ctx context.Context, g *core.Graph, orc oracle.Oracle, cfg config.Config, popts ...partition.Option) (Result, error) {
	if g == nil {
		return Result{}, ErrGraphNil
	}
	if orc == nil {
		return Result{}, ErrOracleNil
	}

	n := g.NodeCount()
	if n <= cfg.MaxSubgraphSize {
		return Direct(ctx, g, orc, cfg)
	}

	log := ctxlog.FromContext(ctx)
	log.Info("splitting oversized graph",
		slog.Int("nodes", n),
		slog.Int("edges", g.EdgeCount()),
		slog.Int("max_piece", cfg.MaxSubgraphSize))

	opts := append([]partition.Option{partition.WithContext(ctx)}, popts...)
	pieces, err := partition.Split(g, cfg.MaxSubgraphSize, opts...)
	if err != nil {
		return Result{}, err
	}

	sizes := make([]int, len(pieces))
	for i, p := range pieces {
		sizes[i] = p.Sub.NodeCount()
	}
	log.Info("split complete", slog.Int("pieces", len(pieces)), slog.Any("sizes", sizes))

	sub := cfg
	if sub.MaxAttempts < 1 {
		sub.MaxAttempts = 1
	}

	union := make([]core.NodeID, 0, n/2)
	out := empty(0)
	for i, piece := range pieces {
		res, err := Direct(ctx, piece.Sub, orc, sub)
		if err != nil {
			return Result{}, err
		}
		out.Attempts += res.Attempts
		out.Succeeded += res.Succeeded
		for _, local := range res.Nodes {
			union = append(union, piece.OriginalOf[local])
		}
		log.Debug("piece solved",
			slog.Int("piece", i+1),
			slog.Int("of", len(pieces)),
			slog.Int("nodes", piece.Sub.NodeCount()),
			slog.Int("edges", piece.Sub.EdgeCount()),
			slog.Int("size", res.Size))
	}

	valid, err := repair.Repair(g, union, repair.WithContext(ctx))
	if err != nil {
		return Result{}, err
	}
	log.Info("stitched pieces",
		slog.Int("raw", len(union)),
		slog.Int("valid", len(valid)))

	out.Nodes, out.Size = valid, len(valid)
	return out, nil
}
