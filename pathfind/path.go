package pathfind

import (
	"slices"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// ReconstructPath walks cameFrom back from goal, marking every predecessor
// as Path in the primary shade and calling onStep (if non-nil) after each
// mark. The goal itself keeps its role.
//
// It returns the route ordered start→goal, goal included. A goal with no
// predecessor yields a single-cell slice; a nil goal yields nil.
func ReconstructPath(cameFrom map[*gridgraph.Cell]*gridgraph.Cell, goal *gridgraph.Cell, onStep func()) []*gridgraph.Cell {
	return reconstruct(cameFrom, goal, gridgraph.ShadePrimary, onStep)
}

// Painter reconstructs routes with alternating shades: odd calls paint in
// ShadePrimary, even calls in ShadeSecondary. One Painter per session keeps
// successive legs visually distinct.
type Painter struct {
	calls int
}

// Reconstruct is ReconstructPath with the shade picked by call parity.
func (p *Painter) Reconstruct(cameFrom map[*gridgraph.Cell]*gridgraph.Cell, goal *gridgraph.Cell, onStep func()) []*gridgraph.Cell {
	p.calls++
	shade := gridgraph.ShadePrimary
	if p.calls%2 == 0 {
		shade = gridgraph.ShadeSecondary
	}
	return reconstruct(cameFrom, goal, shade, onStep)
}

// Calls reports how many routes this Painter has reconstructed.
func (p *Painter) Calls() int { return p.calls }

func reconstruct(cameFrom map[*gridgraph.Cell]*gridgraph.Cell, goal *gridgraph.Cell, shade gridgraph.Shade, onStep func()) []*gridgraph.Cell {
	if goal == nil {
		return nil
	}
	route := []*gridgraph.Cell{goal}
	for cur := goal; ; {
		prev, ok := cameFrom[cur]
		if !ok {
			break
		}
		prev.MarkPath(shade)
		if onStep != nil {
			onStep()
		}
		route = append(route, prev)
		cur = prev
	}
	slices.Reverse(route)

	return route
}
