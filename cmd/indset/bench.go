package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/indset/bench"
	"github.com/katalvlaran/indset/deadline"
)

// benchCmd runs the resumable benchmark over the instance directory.
// Solving happens in worker subprocesses so the deadlines can kill
// attempts that ignore cancellation.
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run the benchmark over every instance in the instance directory",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		ctx, stop := signalContext()
		defer stop()

		runner := deadline.NewSubprocess(workerArgs()...)
		return bench.NewDriver(cfg, runner).Run(ctx)
	},
}

// workerArgs rebuilds the hidden worker invocation, forwarding the
// logging flags so worker stderr matches the parent's output.
func workerArgs() []string {
	args := []string{"worker", "--log-level", logLevel}
	if logJSON {
		args = append(args, "--log-json")
	}
	return args
}

func init() {
	rootCmd.AddCommand(benchCmd)
}
