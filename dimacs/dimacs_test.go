package dimacs_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/indset/core"
	"github.com/katalvlaran/indset/dimacs"
)

// TestParse_Basic checks a well-formed instance: comments, header,
// 1-based→0-based normalization, duplicate collapse, unknown records.
func TestParse_Basic(t *testing.T) {
	src := `c sample instance
p edge 5 4
e 1 2
e 2 3
e 3 4
e 4 5
e 2 1
d 1 5
`
	g, err := dimacs.Parse(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, 5, g.NodeCount())
	assert.Equal(t, 4, g.EdgeCount(), "duplicate e 2 1 collapses, d-record is skipped")
	assert.Equal(t, []core.NodeID{0, 1, 2, 3, 4}, g.Nodes())
	assert.True(t, g.HasEdge(0, 1), "endpoints are shifted to 0-based")
	assert.True(t, g.HasEdge(3, 4))
}

// TestParse_IsolatedNodes checks the header alone yields edgeless nodes.
func TestParse_IsolatedNodes(t *testing.T) {
	g, err := dimacs.Parse(strings.NewReader("p edge 3 0\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 0, g.EdgeCount())
}

// TestParse_EdgeBeforeHeader checks order tolerance.
func TestParse_EdgeBeforeHeader(t *testing.T) {
	g, err := dimacs.Parse(strings.NewReader("e 1 2\np edge 4 1\n"))
	require.NoError(t, err)
	assert.Equal(t, 4, g.NodeCount())
	assert.True(t, g.HasEdge(0, 1))
}

// TestParse_SelfLoopSkipped checks loops are dropped rather than fatal.
func TestParse_SelfLoopSkipped(t *testing.T) {
	g, err := dimacs.Parse(strings.NewReader("p edge 2 1\ne 1 1\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, g.EdgeCount())
}

// TestParse_Errors checks each malformed record maps to its sentinel.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"short header", "p edge\n", dimacs.ErrBadHeader},
		{"non-numeric header", "p edge five\n", dimacs.ErrBadHeader},
		{"short edge", "e 1\n", dimacs.ErrBadEdge},
		{"non-numeric edge", "e a b\n", dimacs.ErrBadEdge},
		{"zero endpoint", "e 0 2\n", dimacs.ErrEdgeRange},
		{"beyond declared", "p edge 3 1\ne 1 4\n", dimacs.ErrEdgeRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := dimacs.Parse(strings.NewReader(tc.src))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
