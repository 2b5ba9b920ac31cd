package pathfind

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Euclidean is the straight-line distance between two cells measured in
// (row, col) grid units.
func Euclidean(from, goal *gridgraph.Cell) float64 {
	return planar.Distance(point(from), point(goal))
}

// Zero turns AStar into Dijkstra; handy for comparisons.
func Zero(_, _ *gridgraph.Cell) float64 { return 0 }

func point(c *gridgraph.Cell) orb.Point {
	return orb.Point{float64(c.Row), float64(c.Col)}
}
