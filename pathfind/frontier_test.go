package pathfind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridgraph"
)

func cells(t *testing.T, n int) []*gridgraph.Cell {
	t.Helper()
	g, err := gridgraph.New(n, 10)
	require.NoError(t, err)
	var out []*gridgraph.Cell
	g.Each(func(c *gridgraph.Cell) { out = append(out, c) })
	return out
}

func TestFrontier_TieBreakIsInsertionOrder(t *testing.T) {
	cs := cells(t, 2)
	f := newFrontier(4)
	f.Push(cs[2], 1)
	f.Push(cs[0], 1)
	f.Push(cs[3], 0.5)
	f.Push(cs[1], 1)

	assert.Same(t, cs[3], f.Pop())
	assert.Same(t, cs[2], f.Pop())
	assert.Same(t, cs[0], f.Pop())
	assert.Same(t, cs[1], f.Pop())
	assert.Zero(t, f.Len())
}

func TestFrontier_Membership(t *testing.T) {
	cs := cells(t, 2)
	f := newFrontier(4)
	f.Push(cs[0], 3)
	f.Push(cs[1], 2)
	require.True(t, f.Contains(cs[0]))
	require.False(t, f.Contains(cs[2]))

	assert.Same(t, cs[1], f.Pop())
	assert.False(t, f.Contains(cs[1]))
	assert.True(t, f.Contains(cs[0]))
}
