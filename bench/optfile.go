package bench

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// optCandidates orders the filenames probed for a known best solution,
// most authoritative first.
var optCandidates = []string{"%s.opt.sol", "%s.bst.sol", "%s.sol"}

// OptimalSize returns the externally known best independent-set size
// for an instance, read from the first candidate file under dir that
// yields a non-empty selection. Two formats are accepted, even mixed:
//
//	x#i 0|1    assignment lines, counting indices marked 1
//	i          bare node index per line
//
// Blank lines and lines starting with '#' or 'c' are skipped. No
// usable file means no baseline and size 0; only I/O failures error.
func OptimalSize(dir, name string) (int, error) {
	for _, pattern := range optCandidates {
		path := filepath.Join(dir, fmt.Sprintf(pattern, name))
		size, err := readSelection(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return 0, err
		}
		if size > 0 {
			return size, nil
		}
	}
	return 0, nil
}

// readSelection counts the distinct node indices a solution file
// selects.
func readSelection(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	selected := make(map[int]struct{})
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "c") {
			continue
		}
		fields := strings.Fields(line)

		switch {
		case len(fields) >= 2 && strings.HasPrefix(fields[0], "x#"):
			if fields[1] != "1" {
				continue
			}
			idx, err := strconv.Atoi(fields[0][2:])
			if err != nil {
				// tolerate junk assignments, the wild carries them
				continue
			}
			selected[idx] = struct{}{}
		case len(fields) == 1 && isDigits(fields[0]):
			idx, _ := strconv.Atoi(fields[0])
			selected[idx] = struct{}{}
		}
	}
	if err := sc.Err(); err != nil {
		return 0, fmt.Errorf("bench: read solution %s: %w", path, err)
	}
	return len(selected), nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
