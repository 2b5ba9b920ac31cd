// Package gridgraph treats a square board of cells as a graph, the shape
// the search engine in package pathfind walks over.
//
// What:
//
//   - Grid owns a rows×rows matrix of *Cell values, each with an immutable
//     (Row, Col) identity and a mutable Role (Free, Barrier, Start, End,
//     Open, Closed, Path).
//   - RefreshNeighbors rebuilds every cell's adjacency from the current
//     barrier occupancy, using Conn4 (down, up, right, left) or Conn8
//     (the same four, then down-right, down-left, up-right, up-left).
//   - An input layer (SetStart, AddEnd, SetBarrier, Paint, Erase, Clear)
//     mutates roles before a search, keeping one Start and at most two Ends.
//   - FromLayout / Layout convert to and from a compact text form.
//   - Regions and HopDistance answer reachability questions over the
//     current neighbor lists.
//
// Why:
//
//   - Neighbor slices are rebuilt, not patched, so a refresh is the single
//     point where barrier changes become visible to a search.
//   - Diagonals are taken whenever the diagonal cell itself is free; there is
//     no corner-cutting prevention.
//
// Complexity:
//
//   - New, RefreshNeighbors, Clear, Layout: O(rows²) time.
//   - Regions, HopDistance:                  O(rows²·d), d = 4 or 8.
//   - CellAt, SetStart, AddEnd, Paint, Erase: O(1).
//
// Errors:
//
//   - ErrBadRows, ErrBadCellSize: invalid construction parameters.
//   - ErrOutOfBounds: a cell was addressed outside [0, rows).
//   - ErrNonSquare, ErrBadGlyph: malformed text layouts.
//   - ErrOccupied, ErrDuplicateStart, ErrTooManyEnds: input-layer violations.
package gridgraph
