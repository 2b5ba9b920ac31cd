// Package gridgraph provides a square board of cells that the pathfind
// engine searches. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Bounds-checked addressing
//   - Neighbor refresh from the current barrier occupancy
package gridgraph

import "fmt"

// Neighbor offsets as (dRow, dCol), in the order cells are enumerated.
// The order is part of the search's determinism.
var (
	orthogonalOffsets = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	diagonalOffsets   = [][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

// New allocates a rows×rows grid of Free cells.
// Returns ErrBadRows if rows ≤ 0 and ErrBadCellSize if cellSize ≤ 0.
// Algorithmic complexity: O(rows²) time and memory.
func New(rows, cellSize int, opts ...Option) (*Grid, error) {
	if rows <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadRows, rows)
	}
	if cellSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadCellSize, cellSize)
	}
	o := DefaultGridOptions()
	for _, opt := range opts {
		opt(&o)
	}

	cells := make([][]*Cell, rows)
	for r := 0; r < rows; r++ {
		cells[r] = make([]*Cell, rows)
		for c := 0; c < rows; c++ {
			cells[r][c] = &Cell{Row: r, Col: c}
		}
	}

	return &Grid{
		Rows:     rows,
		CellSize: cellSize,
		cells:    cells,
		conn:     Conn4,
		endSlots: o.EndSlots,
	}, nil
}

// CellSizeFor returns the cell size for a display of the given width,
// using integer division as the display does. Returns 0 when rows ≤ 0.
func CellSizeFor(width, rows int) int {
	if rows <= 0 {
		return 0
	}
	return width / rows
}

// InBounds reports whether (row,col) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Rows
}

// CellAt returns the cell at (row,col), or ErrOutOfBounds.
// Indices are never clamped.
func (g *Grid) CellAt(row, col int) (*Cell, error) {
	if !g.InBounds(row, col) {
		return nil, fmt.Errorf("%w: (%d,%d) in %d×%d grid", ErrOutOfBounds, row, col, g.Rows, g.Rows)
	}
	return g.cells[row][col], nil
}

// Owns reports whether c is one of this grid's cells.
func (g *Grid) Owns(c *Cell) bool {
	return c != nil && g.InBounds(c.Row, c.Col) && g.cells[c.Row][c.Col] == c
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(c *Cell)) {
	for _, row := range g.cells {
		for _, c := range row {
			fn(c)
		}
	}
}

// Connectivity reports the mode used by the last RefreshNeighbors call.
func (g *Grid) Connectivity() Connectivity { return g.conn }

// RefreshNeighbors rebuilds every cell's neighbor slice from the current
// barrier occupancy. A neighbor is kept iff it is in bounds and not a
// Barrier; under Conn8 diagonals follow the same rule, regardless of the
// two orthogonal cells beside the diagonal.
// Complexity: O(rows²·d) time.
func (g *Grid) RefreshNeighbors(conn Connectivity) {
	g.conn = conn
	offsets := orthogonalOffsets
	if conn == Conn8 {
		offsets = append(append([][2]int{}, orthogonalOffsets...), diagonalOffsets...)
	}

	for _, row := range g.cells {
		for _, c := range row {
			nbrs := make([]*Cell, 0, len(offsets))
			for _, d := range offsets {
				nr, nc := c.Row+d[0], c.Col+d[1]
				if !g.InBounds(nr, nc) {
					continue
				}
				n := g.cells[nr][nc]
				if n.IsBarrier() {
					continue
				}
				nbrs = append(nbrs, n)
			}
			c.neighbors = nbrs
		}
	}
}

// ResetSearchMarks turns every Open, Closed and Path cell back to Free and
// relabels the placed endpoints, leaving barriers untouched.
func (g *Grid) ResetSearchMarks() {
	g.Each(func(c *Cell) {
		switch c.role {
		case Open, Closed, Path:
			c.Reset()
		}
	})
	g.RestoreEndpoints()
}

// RestoreEndpoints relabels the placed Start and End cells, undoing the
// Open/Closed/Path marks a search leaves on them.
func (g *Grid) RestoreEndpoints() {
	if g.start != nil {
		g.start.MarkStart()
	}
	for _, e := range g.ends {
		if e != nil {
			e.MarkEnd()
		}
	}
}
