package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/indset/bench"
	"github.com/katalvlaran/indset/dimacs"
	"github.com/katalvlaran/indset/oracle"
	"github.com/katalvlaran/indset/solve"
)

var solveOut string

// solveCmd solves one instance in-process, without the hard deadlines
// the benchmark applies. Interrupts cancel cooperatively.
var solveCmd = &cobra.Command{
	Use:   "solve <instance.gph>",
	Short: "Solve one instance and print the achieved independent set",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		ctx, stop := signalContext()
		defer stop()

		g, err := dimacs.ParseFile(args[0])
		if err != nil {
			return err
		}

		res, err := solve.Large(ctx, g, oracle.NewAnnealer(cfg), cfg)
		if err != nil {
			return err
		}

		name := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
		fmt.Printf("%s: size %d after %d attempts (%d succeeded)\n",
			name, res.Size, res.Attempts, res.Succeeded)
		fmt.Println(res.Nodes)

		if solveOut != "" {
			return bench.WriteSolution(solveOut, name, g.NodeCount(), res.Nodes, res.Size)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().StringVar(&solveOut, "out", "", "directory to write a <name>.sol artifact into")
}
