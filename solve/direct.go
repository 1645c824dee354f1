package solve

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/indset/config"
	"github.com/katalvlaran/indset/core"
	"github.com/katalvlaran/indset/ctxlog"
	"github.com/katalvlaran/indset/oracle"
	"github.com/katalvlaran/indset/repair"
)

// Direct runs one round of parallel oracle attempts against g and
// returns the largest repaired candidate.
//
// Attempt failures are demoted to log lines; a round where nothing
// succeeds yields the empty Result. The only errors are nil inputs and
// context cancellation.
func Direct(ctx context.Context, g *core.Graph, orc oracle.Oracle, cfg config.Config) (Result, error) {
	if g == nil {
		return Result{}, ErrGraphNil
	}
	if orc == nil {
		return Result{}, ErrOracleNil
	}

	log := ctxlog.FromContext(ctx)
	attempts := cfg.MaxAttempts
	workers := cfg.MaxWorkers
	if workers < 1 {
		workers = 1
	}

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	// buffered to the round size so no sender ever blocks on collection
	candidates := make(chan []core.NodeID, attempts)

	for attempt := 0; attempt < attempts; attempt++ {
		eg.Go(func() error {
			raw, err := orc.Solve(gctx, g, attempt)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				log.Warn("oracle attempt failed",
					slog.String("oracle", orc.Name()),
					slog.Int("attempt", attempt),
					slog.Any("error", err))
				return nil
			}

			valid, err := repair.Repair(g, raw, repair.WithContext(gctx))
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				log.Warn("candidate repair failed",
					slog.Int("attempt", attempt),
					slog.Any("error", err))
				return nil
			}

			candidates <- valid
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return Result{}, err
	}
	close(candidates)

	// completion order decides ties: strictly larger wins, equals keep
	// the earlier arrival
	best := empty(attempts)
	for c := range candidates {
		best.Succeeded++
		if len(c) > best.Size {
			best.Nodes, best.Size = c, len(c)
		}
	}

	log.Debug("attempt round done",
		slog.Int("attempts", attempts),
		slog.Int("succeeded", best.Succeeded),
		slog.Int("size", best.Size))
	return best, nil
}
