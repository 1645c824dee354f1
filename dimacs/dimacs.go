package dimacs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/indset/core"
)

// Sentinel errors for instance parsing.
var (
	// ErrBadHeader is returned for a malformed `p` line.
	ErrBadHeader = errors.New("dimacs: malformed problem header")

	// ErrBadEdge is returned for a malformed `e` line.
	ErrBadEdge = errors.New("dimacs: malformed edge record")

	// ErrEdgeRange is returned when an edge endpoint is below 1 or above
	// the declared node count.
	ErrEdgeRange = errors.New("dimacs: edge endpoint out of range")
)

// Parse reads one instance from r and returns its graph with dense
// 0-based labels. See the package doc for the accepted grammar.
func Parse(r io.Reader) (*core.Graph, error) {
	g := core.NewGraph()
	declared := -1 // node count from the header, -1 until seen

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || fields[0] == "c" {
			continue
		}
		switch fields[0] {
		case "p":
			if len(fields) < 3 {
				return nil, fmt.Errorf("line %d: %w", line, ErrBadHeader)
			}
			n, err := strconv.Atoi(fields[2])
			if err != nil || n < 0 {
				return nil, fmt.Errorf("line %d: %w", line, ErrBadHeader)
			}
			declared = n
			if err = g.AddNodeRange(n); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
		case "e":
			if len(fields) < 3 {
				return nil, fmt.Errorf("line %d: %w", line, ErrBadEdge)
			}
			u, err1 := strconv.Atoi(fields[1])
			v, err2 := strconv.Atoi(fields[2])
			if err1 != nil || err2 != nil {
				return nil, fmt.Errorf("line %d: %w", line, ErrBadEdge)
			}
			if u < 1 || v < 1 || (declared >= 0 && (u > declared || v > declared)) {
				return nil, fmt.Errorf("line %d: %w", line, ErrEdgeRange)
			}
			if u == v {
				// tolerated in the wild; a loop cannot join an independent set
				continue
			}
			_ = g.AddEdge(core.NodeID(u-1), core.NodeID(v-1))
		default:
			// unknown record kinds are skipped
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dimacs: read: %w", err)
	}
	return g, nil
}

// ParseFile reads the instance at path.
func ParseFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dimacs: %w", err)
	}
	defer f.Close()
	return Parse(f)
}
