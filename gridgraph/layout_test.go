package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridgraph"
)

func TestFromLayout_RoundTrip(t *testing.T) {
	lines := []string{
		"S.#.",
		"o*x.",
		".+#.",
		"E..E",
	}
	g, err := gridgraph.FromLayout(lines)
	require.NoError(t, err)
	assert.Equal(t, lines, g.Layout())
	assert.Equal(t, 4, g.Rows)
	assert.Equal(t, "(3,0)", g.End(0).String(), "ends are placed in row-major order")
	assert.Equal(t, "(3,3)", g.End(1).String())

	c, _ := g.CellAt(2, 1)
	assert.Equal(t, gridgraph.Path, c.Role())
	assert.Equal(t, gridgraph.ShadeSecondary, c.Shade())
}

func TestFromLayout_Errors(t *testing.T) {
	cases := []struct {
		name  string
		lines []string
		err   error
	}{
		{"Empty", nil, gridgraph.ErrBadRows},
		{"NonSquare", []string{"..", "..", ".."}, gridgraph.ErrNonSquare},
		{"Jagged", []string{"..", "."}, gridgraph.ErrNonSquare},
		{"Glyph", []string{".?", ".."}, gridgraph.ErrBadGlyph},
		{"TwoStarts", []string{"S.", ".S"}, gridgraph.ErrDuplicateStart},
		{"ThreeEnds", []string{"EEE", "...", "..."}, gridgraph.ErrTooManyEnds},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.FromLayout(tc.lines)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}
