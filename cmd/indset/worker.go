package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/indset/deadline"
	"github.com/katalvlaran/indset/oracle"
	"github.com/katalvlaran/indset/solve"
)

// workerCmd is the subprocess half of the deadline runner: read one
// JSON request from stdin, solve it, write one JSON response to stdout,
// exit. Logs go to stderr so stdout stays parseable.
var workerCmd = &cobra.Command{
	Use:    "worker",
	Short:  "Serve one solve request over stdio (internal)",
	Hidden: true,
	Args:   cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		ctx, stop := signalContext()
		defer stop()
		return deadline.Serve(ctx, os.Stdin, os.Stdout, solveRequest)
	},
}

// solveRequest rebuilds the wire graph and dispatches on mode. The
// request's own config wins over anything loaded from flags: the parent
// already resolved it.
func solveRequest(ctx context.Context, req deadline.Request) (deadline.Response, error) {
	g, err := req.Graph()
	if err != nil {
		return deadline.Response{}, err
	}
	orc := oracle.NewAnnealer(req.Config)

	var res solve.Result
	if req.Mode == deadline.ModeLarge {
		res, err = solve.Large(ctx, g, orc, req.Config)
	} else {
		res, err = solve.Direct(ctx, g, orc, req.Config)
	}
	if err != nil {
		return deadline.Response{}, err
	}
	return deadline.Response{Size: res.Size, Nodes: res.Nodes}, nil
}

func init() {
	rootCmd.AddCommand(workerCmd)
}
