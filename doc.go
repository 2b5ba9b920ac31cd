// Package gridpath is a step-traced pathfinding toolkit for square grids.
//
// 🚀 What is gridpath?
//
//	A small set of packages that paint a grid, search it and show every step:
//		• gridgraph: cells, roles, neighbor refresh, text layouts, regions
//		• pathfind:  Dijkstra (4-connected) and A* (8-connected) over one engine
//		• session:   single and chained start→end1→end2 runs with reports
//		• render:    text frames, frame recorder, paced terminal output
//		• api:       gin HTTP surface for running searches remotely
//		• config:    .env + environment settings
//
// Under the hood a search is a best-first loop with FIFO tie-breaking and
// a hook after each expansion; the hook is how frames are captured.
//
// Quick ASCII example:
//
//	S . . # .        S * o # .
//	. # . # .        x # * # o
//	. # . . .   →    o # o * o
//	. . . # .        . . o # *
//	. . # . E        . . # o E
//
// is A* with diagonal moves: '*' is the route, 'x' expanded, 'o' queued.
//
//	go run ./cmd/gridpath demo -layout maze.txt -mode astar
package gridpath
