package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/indset/config"
	"github.com/katalvlaran/indset/ctxlog"
)

var (
	configPath string
	logLevel   string
	logJSON    bool

	// cfg is the resolved configuration every subcommand reads.
	cfg config.Config

	rootCmd = &cobra.Command{
		Use:   "indset",
		Short: "Approximate Maximum Independent Set with a timeout-guarded oracle",
		Long: `indset drives an expensive stochastic oracle against graph instances,
repairs its candidates into valid independent sets, and falls back to a
partition-and-stitch solver when an instance outgrows the direct budget.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			var err error
			if cfg, err = config.Load(configPath); err != nil {
				return err
			}
			return setupLogging()
		},
	}
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "YAML config file overlaying the defaults")
	pf.StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	pf.BoolVar(&logJSON, "log-json", false, "emit JSON logs instead of text")
}

// setupLogging installs the process-wide slog handler on stderr, so
// worker stdout stays free for the response protocol.
func setupLogging() error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return fmt.Errorf("bad --log-level %q: %w", logLevel, err)
	}
	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if logJSON {
		h = slog.NewJSONHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(h))
	return nil
}

// signalContext returns a context canceled on SIGINT or SIGTERM, with
// the default logger attached for downstream FromContext callers.
func signalContext() (context.Context, context.CancelFunc) {
	ctx := ctxlog.WithLogger(context.Background(), slog.Default())
	return signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
}
