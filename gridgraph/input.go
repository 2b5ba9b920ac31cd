package gridgraph

import "fmt"

// Start returns the placed Start cell, or nil.
func (g *Grid) Start() *Cell { return g.start }

// End returns the End cell in slot i (0 or 1), or nil when the slot is empty.
func (g *Grid) End(i int) *Cell {
	if i < 0 || i >= len(g.ends) {
		return nil
	}
	return g.ends[i]
}

// Ends returns the placed End cells in slot order.
func (g *Grid) Ends() []*Cell {
	out := make([]*Cell, 0, len(g.ends))
	for _, e := range g.ends {
		if e != nil {
			out = append(out, e)
		}
	}
	return out
}

// EndSlots reports how many End cells the grid accepts.
func (g *Grid) EndSlots() int { return g.endSlots }

func (g *Grid) isEndpoint(c *Cell) bool {
	return c == g.start || c == g.ends[0] || c == g.ends[1]
}

// SetStart places the Start on (row,col).
// Returns ErrDuplicateStart if a Start exists, ErrOccupied if the cell is an End.
func (g *Grid) SetStart(row, col int) error {
	c, err := g.CellAt(row, col)
	if err != nil {
		return err
	}
	if g.start != nil {
		return fmt.Errorf("%w: at %v", ErrDuplicateStart, g.start)
	}
	if g.isEndpoint(c) {
		return fmt.Errorf("%w: %v", ErrOccupied, c)
	}
	g.start = c
	c.MarkStart()
	return nil
}

// AddEnd places an End on (row,col) in the first empty slot.
// Returns ErrTooManyEnds when every slot is taken, ErrOccupied if the cell
// already holds an endpoint.
func (g *Grid) AddEnd(row, col int) error {
	c, err := g.CellAt(row, col)
	if err != nil {
		return err
	}
	if g.isEndpoint(c) {
		return fmt.Errorf("%w: %v", ErrOccupied, c)
	}
	for i := 0; i < g.endSlots; i++ {
		if g.ends[i] == nil {
			g.ends[i] = c
			c.MarkEnd()
			return nil
		}
	}
	return fmt.Errorf("%w: %d slot(s)", ErrTooManyEnds, g.endSlots)
}

// SetBarrier makes (row,col) a Barrier. Endpoints cannot be covered.
func (g *Grid) SetBarrier(row, col int) error {
	c, err := g.CellAt(row, col)
	if err != nil {
		return err
	}
	if g.isEndpoint(c) {
		return fmt.Errorf("%w: %v", ErrOccupied, c)
	}
	c.role = Barrier
	return nil
}

// Paint applies one primary-button press to (row,col): the first press
// places the Start, the next ones fill the End slots, and later presses
// raise barriers. Pressing an endpoint again does nothing.
func (g *Grid) Paint(row, col int) error {
	c, err := g.CellAt(row, col)
	if err != nil {
		return err
	}
	if g.isEndpoint(c) {
		return nil
	}
	if g.start == nil {
		return g.SetStart(row, col)
	}
	for i := 0; i < g.endSlots; i++ {
		if g.ends[i] == nil {
			return g.AddEnd(row, col)
		}
	}
	return g.SetBarrier(row, col)
}

// Erase applies one secondary-button press to (row,col): the cell becomes
// Free and, if it was an endpoint, its slot is emptied.
func (g *Grid) Erase(row, col int) error {
	c, err := g.CellAt(row, col)
	if err != nil {
		return err
	}
	c.Reset()
	switch c {
	case g.start:
		g.start = nil
	case g.ends[0]:
		g.ends[0] = nil
	case g.ends[1]:
		g.ends[1] = nil
	}
	return nil
}

// Clear frees every cell and forgets all endpoints.
func (g *Grid) Clear() {
	g.Each(func(c *Cell) {
		c.Reset()
		c.neighbors = nil
	})
	g.start = nil
	g.ends = [2]*Cell{}
}
