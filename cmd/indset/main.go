// Command indset approximates Maximum Independent Set over DIMACS-style
// instances, driving a stochastic oracle under hard deadlines.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
