package bench

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/indset/core"
)

// WriteSolution persists an achieved set as <dir>/<name>.sol in the
// assignment format:
//
//	# Solution for model <name>
//	# Objective value = <size>
//	x#1 0
//	x#2 1
//	...
//
// One line per node index 1..numNodes, marked 1 when node index-1 is in
// the set. The directory is created if needed.
func WriteSolution(dir, name string, numNodes int, nodes []core.NodeID, size int) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("bench: solution dir: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, name+".sol"))
	if err != nil {
		return fmt.Errorf("bench: write solution: %w", err)
	}

	in := make(map[core.NodeID]struct{}, len(nodes))
	for _, id := range nodes {
		in[id] = struct{}{}
	}

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "# Solution for model %s\n", name)
	fmt.Fprintf(w, "# Objective value = %d\n", size)
	for i := 1; i <= numNodes; i++ {
		bit := 0
		if _, ok := in[core.NodeID(i-1)]; ok {
			bit = 1
		}
		fmt.Fprintf(w, "x#%d %d\n", i, bit)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("bench: write solution: %w", err)
	}
	return f.Close()
}
