// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/gridpath.
package gridgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrBadRows indicates a grid was requested with rows ≤ 0.
	ErrBadRows = errors.New("gridgraph: rows must be positive")
	// ErrBadCellSize indicates a grid was requested with cellSize ≤ 0.
	ErrBadCellSize = errors.New("gridgraph: cell size must be positive")
	// ErrOutOfBounds indicates a cell was addressed outside [0, rows).
	ErrOutOfBounds = errors.New("gridgraph: cell index out of bounds")
	// ErrNonSquare indicates a text layout whose rows differ from its height.
	ErrNonSquare = errors.New("gridgraph: layout must be square")
	// ErrBadGlyph indicates an unknown character in a text layout.
	ErrBadGlyph = errors.New("gridgraph: unknown layout glyph")
	// ErrOccupied indicates an attempt to paint over the Start or an End cell.
	ErrOccupied = errors.New("gridgraph: cell holds an endpoint")
	// ErrDuplicateStart indicates a second Start cell was requested.
	ErrDuplicateStart = errors.New("gridgraph: start already placed")
	// ErrTooManyEnds indicates more End cells than the grid has slots for.
	ErrTooManyEnds = errors.New("gridgraph: no free end slot")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: down, up, right, left.
	Conn4 Connectivity = iota
	// Conn8 adds the diagonals: down-right, down-left, up-right, up-left.
	Conn8
)

// String implements fmt.Stringer.
func (c Connectivity) String() string {
	switch c {
	case Conn4:
		return "conn4"
	case Conn8:
		return "conn8"
	default:
		return fmt.Sprintf("Connectivity(%d)", int(c))
	}
}

// Role is the part a cell currently plays on the board.
type Role uint8

const (
	Free Role = iota
	Barrier
	Start
	End
	Open
	Closed
	Path
)

var roleNames = [...]string{"free", "barrier", "start", "end", "open", "closed", "path"}

// String implements fmt.Stringer.
func (r Role) String() string {
	if int(r) < len(roleNames) {
		return roleNames[r]
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

// CanBecome reports whether a cell in role r may move to role next.
//
// Transitions:
//
//	any                → Free, Start, End, Barrier   (input layer, relabeling)
//	any but Barrier    → Open                        (queued by a search)
//	Open               → Closed                      (expanded)
//	any but Free, Barrier → Path                     (reconstruction)
//
// Staying in the same role is always allowed.
func (r Role) CanBecome(next Role) bool {
	if next == r {
		return true
	}
	switch next {
	case Free, Start, End, Barrier:
		return true
	case Open:
		return r != Barrier
	case Closed:
		return r == Open
	case Path:
		return r != Free && r != Barrier
	}
	return false
}

// Shade tells apart the legs of a chained route once their cells are Path.
type Shade uint8

const (
	// ShadePrimary marks cells painted by odd-numbered reconstructions.
	ShadePrimary Shade = iota
	// ShadeSecondary marks cells painted by even-numbered reconstructions.
	ShadeSecondary
)

// Cell is a single addressable node of the grid graph.
// Row and Col never change after construction.
type Cell struct {
	Row, Col  int
	role      Role
	shade     Shade
	neighbors []*Cell
}

// Role returns the cell's current role.
func (c *Cell) Role() Role { return c.role }

// Shade returns the path shade; meaningful only while Role() == Path.
func (c *Cell) Shade() Shade { return c.shade }

// Neighbors returns the adjacency computed by the last Grid.RefreshNeighbors.
// The slice is owned by the cell and replaced on every refresh.
func (c *Cell) Neighbors() []*Cell { return c.neighbors }

// IsBarrier reports whether the cell blocks movement.
func (c *Cell) IsBarrier() bool { return c.role == Barrier }

// String formats the cell as "(row,col)".
func (c *Cell) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }

// Reset makes the cell Free.
func (c *Cell) Reset() { c.role = Free }

// MarkOpen records that the cell sits in a search frontier.
// It reports false, leaving the role unchanged, when the move is not allowed.
func (c *Cell) MarkOpen() bool { return c.become(Open) }

// MarkClosed records that a search has finished expanding the cell.
func (c *Cell) MarkClosed() bool { return c.become(Closed) }

// MarkPath paints the cell as part of a reconstructed route.
func (c *Cell) MarkPath(s Shade) bool {
	if !c.become(Path) {
		return false
	}
	c.shade = s
	return true
}

func (c *Cell) become(next Role) bool {
	if !c.role.CanBecome(next) {
		return false
	}
	c.role = next
	return true
}

// MarkStart relabels the cell as the Start endpoint.
func (c *Cell) MarkStart() { c.role = Start }

// MarkEnd relabels the cell as an End endpoint.
func (c *Cell) MarkEnd() { c.role = End }

// Option configures a Grid at construction.
type Option func(*GridOptions)

// GridOptions contains tunable parameters for a Grid.
type GridOptions struct {
	// EndSlots is how many End cells the input layer accepts (1 or 2).
	EndSlots int
}

// DefaultGridOptions returns GridOptions with EndSlots=2.
func DefaultGridOptions() GridOptions {
	return GridOptions{EndSlots: 2}
}

// WithEndSlots limits the grid to n End cells; values outside [1,2] are clamped.
func WithEndSlots(n int) Option {
	return func(o *GridOptions) {
		o.EndSlots = min(max(n, 1), 2)
	}
}

// Grid is a square matrix of Rows×Rows cells.
// CellSize is the display width of one cell and plays no part in searching.
type Grid struct {
	Rows     int
	CellSize int

	cells    [][]*Cell
	conn     Connectivity
	endSlots int

	start *Cell
	ends  [2]*Cell
}
