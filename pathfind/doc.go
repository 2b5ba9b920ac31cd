// Package pathfind runs best-first searches over a gridgraph.Grid and turns
// the resulting predecessor map into a painted route.
//
// Two modes share one engine:
//
//   - Dijkstra expands cells in order of g (hops from the start). Paired
//     with 4-connectivity it returns a shortest route.
//   - AStar orders the frontier by f = g + h, where h is the straight-line
//     distance to the goal. Paired with 8-connectivity and unit diagonal
//     cost, h may overestimate, so the route is not guaranteed minimal.
//
// Frontier ties are broken by insertion order: the entry pushed first wins.
// A cell that has been expanded is never relaxed again. When a queued cell
// gets a better g only g and its predecessor change; its frontier entry keeps
// the key it was pushed with, so under AStar it may be expanded later than
// its current f would suggest.
//
// Visual side effects are part of the contract: every newly queued cell is
// marked Open, every expanded cell other than the start is marked Closed,
// and the optional OnStep hook runs once per expansion so a caller can
// record or draw the grid.
//
// Complexity:
//
//   - Time:  O(V log V) with V = rows², each cell enters the heap at most once.
//   - Space: O(V) for g, the predecessor map and the frontier.
//
// Errors (sentinel):
//
//   - ErrNilGrid          if the grid pointer is nil.
//   - ErrInvalidEndpoints if start or goal is missing, a barrier, foreign to
//     the grid, or the two coincide.
//   - ErrOptionViolation  if an Option was given an invalid value.
//
// Example:
//
//	g.RefreshNeighbors(pathfind.AStar.Connectivity())
//	res, err := pathfind.Search(g, g.Start(), g.End(0), pathfind.WithMode(pathfind.AStar))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if res.Outcome == pathfind.Found {
//	    route := pathfind.ReconstructPath(res.CameFrom, g.End(0), nil)
//	    fmt.Println(len(route)-1, "steps")
//	}
package pathfind
