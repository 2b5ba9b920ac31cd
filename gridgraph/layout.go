package gridgraph

import (
	"fmt"
	"strings"
)

// Layout glyphs, one per cell.
const (
	GlyphFree      = '.'
	GlyphBarrier   = '#'
	GlyphStart     = 'S'
	GlyphEnd       = 'E'
	GlyphOpen      = 'o'
	GlyphClosed    = 'x'
	GlyphPath      = '*'
	GlyphPathShade = '+'
)

// DefaultCellSize is the display size FromLayout assigns to cells.
const DefaultCellSize = 12

// Glyph returns the layout character for c.
func Glyph(c *Cell) byte {
	switch c.role {
	case Barrier:
		return GlyphBarrier
	case Start:
		return GlyphStart
	case End:
		return GlyphEnd
	case Open:
		return GlyphOpen
	case Closed:
		return GlyphClosed
	case Path:
		if c.shade == ShadeSecondary {
			return GlyphPathShade
		}
		return GlyphPath
	default:
		return GlyphFree
	}
}

// FromLayout builds a grid from text rows, one glyph per cell.
// 'S' and 'E' go through the input layer (SetStart, AddEnd, in row-major
// order); 'o', 'x', '*', '+' are restored as-is, without transition checks.
// Returns ErrNonSquare, ErrBadGlyph, or an input-layer error.
func FromLayout(lines []string, opts ...Option) (*Grid, error) {
	n := len(lines)
	if n == 0 {
		return nil, fmt.Errorf("%w: empty layout", ErrBadRows)
	}
	for i, line := range lines {
		if len(line) != n {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonSquare, i, len(line), n)
		}
	}
	g, err := New(n, DefaultCellSize, opts...)
	if err != nil {
		return nil, err
	}

	for r, line := range lines {
		for col := 0; col < n; col++ {
			c := g.cells[r][col]
			switch ch := line[col]; ch {
			case GlyphFree:
			case GlyphBarrier:
				c.role = Barrier
			case GlyphStart:
				err = g.SetStart(r, col)
			case GlyphEnd:
				err = g.AddEnd(r, col)
			case GlyphOpen:
				c.role = Open
			case GlyphClosed:
				c.role = Closed
			case GlyphPath:
				c.role, c.shade = Path, ShadePrimary
			case GlyphPathShade:
				c.role, c.shade = Path, ShadeSecondary
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadGlyph, ch, r, col)
			}
			if err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// Layout renders the grid as text rows, the inverse of FromLayout.
func (g *Grid) Layout() []string {
	out := make([]string, g.Rows)
	var b strings.Builder
	for r, row := range g.cells {
		b.Reset()
		for _, c := range row {
			b.WriteByte(Glyph(c))
		}
		out[r] = b.String()
	}
	return out
}
