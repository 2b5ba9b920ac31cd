package gridgraph

// Regions finds all contiguous regions of non-barrier cells, following the
// neighbor lists built by the last RefreshNeighbors. Regions are returned in
// the row-major order of their first cell; cells inside a region are in
// breadth-first discovery order.
//
// Time:   O(rows²·d), where d = 4 or 8.
// Memory: O(rows²) for visited flags and output.
func (g *Grid) Regions() [][]*Cell {
	seen := make(map[*Cell]bool, g.Rows*g.Rows)
	var regions [][]*Cell

	g.Each(func(c *Cell) {
		if c.IsBarrier() || seen[c] {
			return
		}
		// BFS to collect the region
		queue := []*Cell{c}
		seen[c] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, n := range queue[qi].neighbors {
				if !seen[n] {
					seen[n] = true
					queue = append(queue, n)
				}
			}
		}
		regions = append(regions, queue)
	})

	return regions
}

// HopDistance returns the fewest unit steps from a to b over the current
// neighbor lists, or ok=false when b is unreachable. It is a plain
// breadth-first walk and serves as the reference every weighted search is
// checked against.
//
// Time: O(rows²·d). Memory: O(rows²).
func (g *Grid) HopDistance(a, b *Cell) (steps int, ok bool) {
	if a == nil || b == nil {
		return 0, false
	}
	depth := map[*Cell]int{a: 0}
	queue := []*Cell{a}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if u == b {
			return depth[u], true
		}
		for _, n := range u.neighbors {
			if _, seen := depth[n]; !seen {
				depth[n] = depth[u] + 1
				queue = append(queue, n)
			}
		}
	}
	return 0, false
}

// SameRegion reports whether b can be reached from a over the current
// neighbor lists.
func (g *Grid) SameRegion(a, b *Cell) bool {
	_, ok := g.HopDistance(a, b)
	return ok
}
