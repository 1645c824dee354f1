package bench

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/katalvlaran/indset/config"
	"github.com/katalvlaran/indset/core"
	"github.com/katalvlaran/indset/ctxlog"
	"github.com/katalvlaran/indset/deadline"
	"github.com/katalvlaran/indset/dimacs"
)

// Driver walks an instance directory and records outcomes. One Driver
// owns one CSV; runs are resumable because the store is loaded at
// startup and rewritten after every improvement.
type Driver struct {
	cfg    config.Config
	runner deadline.Runner
}

// NewDriver wires a benchmark over the given runner.
func NewDriver(cfg config.Config, runner deadline.Runner) *Driver {
	return &Driver{cfg: cfg, runner: runner}
}

// Run executes the benchmark over every *.gph instance under
// InstanceDir in lexical order. Per-instance failures are logged and
// the run moves on; only context cancellation aborts the walk.
func (d *Driver) Run(ctx context.Context) error {
	log := ctxlog.FromContext(ctx)

	store, err := OpenStore(d.cfg.OutputCSV)
	if err != nil {
		return err
	}

	paths, err := filepath.Glob(filepath.Join(d.cfg.InstanceDir, "*.gph"))
	if err != nil {
		return fmt.Errorf("bench: list instances: %w", err)
	}
	sort.Strings(paths)
	log.Info("benchmark starting", "instances", len(paths), "csv", d.cfg.OutputCSV)

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := d.runInstance(ctx, store, path); err != nil {
			if ctx.Err() != nil {
				return err
			}
			log.Error("instance failed", "instance", filepath.Base(path), "error", err)
		}
	}
	log.Info("benchmark finished", "instances", len(paths))
	return nil
}

// runInstance takes one instance through resume check, direct solve,
// fallback, and persistence.
func (d *Driver) runInstance(ctx context.Context, store *Store, path string) error {
	log := ctxlog.FromContext(ctx)
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	oldRatio := 0.0
	if rec, ok := store.Get(name); ok {
		if rec.Ratio >= d.cfg.ResumeRatio {
			log.Info("skipping solved instance", "graph", name, "ratio", rec.Ratio)
			return nil
		}
		oldRatio = rec.Ratio
		log.Info("resuming instance", "graph", name, "ratio", rec.Ratio)
	}

	g, err := dimacs.ParseFile(path)
	if err != nil {
		return err
	}
	nodes, edges := g.NodeCount(), g.EdgeCount()
	if nodes >= d.cfg.MaxNodes {
		log.Warn("skipping oversized instance",
			"graph", name, "nodes", nodes, "max_nodes", d.cfg.MaxNodes)
		return nil
	}

	opt, err := OptimalSize(d.cfg.SolutionDir, name)
	if err != nil {
		log.Warn("optimal size unavailable", "graph", name, "error", err)
		opt = 0
	}

	var (
		size      int
		sel       []core.NodeID
		timedOut  bool
		fellBack  bool
		fbTimeout bool
	)

	start := time.Now()
	if edges > d.cfg.EdgeTrigger && nodes >= d.cfg.NodeTrigger {
		// Dense enough that the direct budget would be wasted.
		fellBack = true
		log.Info("instance exceeds direct budget, using fallback immediately",
			"graph", name, "nodes", nodes, "edges", edges)
	} else {
		resp, rerr := d.runner.Run(ctx, deadline.NewRequest(deadline.ModeDirect, g, d.cfg), d.cfg.Timeout.Std())
		switch {
		case rerr == nil:
			size, sel = resp.Size, resp.Nodes
		case errors.Is(rerr, deadline.ErrTimeout):
			timedOut = true
			fellBack = true
			start = time.Now() // the fallback gets a fresh clock
			log.Warn("direct solve timed out", "graph", name, "budget", d.cfg.Timeout.String())
		case ctx.Err() != nil:
			return ctx.Err()
		default:
			fellBack = true
			start = time.Now()
			log.Warn("direct solve failed", "graph", name, "error", rerr)
		}
	}

	if fellBack {
		resp, rerr := d.runner.Run(ctx, deadline.NewRequest(deadline.ModeLarge, g, d.cfg), d.cfg.FallbackTimeout.Std())
		switch {
		case rerr == nil:
			size, sel = resp.Size, resp.Nodes
		case errors.Is(rerr, deadline.ErrTimeout):
			fbTimeout = true
			size, sel = 0, nil
			log.Warn("fallback solve timed out", "graph", name, "budget", d.cfg.FallbackTimeout.String())
		case ctx.Err() != nil:
			return ctx.Err()
		default:
			size, sel = 0, nil
			log.Warn("fallback solve failed", "graph", name, "error", rerr)
		}
	}

	elapsed := time.Since(start).Seconds()
	ratio := 0.0
	if opt > 0 {
		ratio = float64(size) / float64(opt)
	}

	if size > 0 && ratio > oldRatio {
		if err := WriteSolution(d.cfg.GeneratedDir, name, nodes, sel, size); err != nil {
			return err
		}
		store.Upsert(Record{
			Graph:           name,
			Nodes:           nodes,
			Edges:           edges,
			OptSize:         opt,
			Size:            size,
			Ratio:           ratio,
			Time:            elapsed,
			Timeout:         timedOut,
			Fallback:        fellBack,
			FallbackTimeout: fbTimeout,
		})
		if err := store.Write(); err != nil {
			return err
		}
		log.Info("recorded result",
			"graph", name, "size", size, "opt", opt, "ratio", ratio, "seconds", elapsed)
		return nil
	}

	log.Info("keeping previous result",
		"graph", name, "size", size, "ratio", ratio, "best", oldRatio)
	return nil
}
