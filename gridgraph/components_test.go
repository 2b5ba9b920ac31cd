// File: gridgraph/components_test.go
package gridgraph

import (
	"sort"
	"testing"
)

func mustLayout(t *testing.T, lines ...string) *Grid {
	t.Helper()
	g, err := FromLayout(lines)
	if err != nil {
		t.Fatalf("FromLayout failed: %v", err)
	}
	return g
}

// TestRegions_Simple4 tests Regions on a 4×4 grid split by a wall
// under orthogonal connectivity.
//
//	. . # .
//	. . # .
//	# # # .
//	. # . .
//
// Expected: 3 regions of sizes 1, 4 and 5.
func TestRegions_Simple4(t *testing.T) {
	g := mustLayout(t,
		"..#.",
		"..#.",
		"###.",
		".#..",
	)
	g.RefreshNeighbors(Conn4)

	regions := g.Regions()
	if len(regions) != 3 {
		t.Fatalf("got %d regions; want 3", len(regions))
	}
	sizes := []int{len(regions[0]), len(regions[1]), len(regions[2])}
	sort.Ints(sizes)
	if sizes[0] != 1 || sizes[1] != 4 || sizes[2] != 5 {
		t.Errorf("region sizes = %v; want [1 4 5]", sizes)
	}
}

// TestRegions_Diagonal8 checks that Conn8 joins cells touching at corners,
// even through a barrier "pinch".
//
//	. # .
//	# . #
//	. # .
//
// With Conn8 all 5 free cells form one region; with Conn4 they are 5 regions.
func TestRegions_Diagonal8(t *testing.T) {
	g := mustLayout(t,
		".#.",
		"#.#",
		".#.",
	)
	g.RefreshNeighbors(Conn8)
	if regions := g.Regions(); len(regions) != 1 || len(regions[0]) != 5 {
		t.Errorf("Conn8: got %d regions; want one of size 5", len(regions))
	}
	g.RefreshNeighbors(Conn4)
	if regions := g.Regions(); len(regions) != 5 {
		t.Errorf("Conn4: got %d regions; want 5", len(regions))
	}
}

// TestRegions_AllBarrier tests the degenerate all-barrier grid.
func TestRegions_AllBarrier(t *testing.T) {
	g := mustLayout(t, "##", "##")
	g.RefreshNeighbors(Conn4)
	if regions := g.Regions(); len(regions) != 0 {
		t.Errorf("got %d regions; want 0", len(regions))
	}
}

// TestHopDistance compares against hand-counted detours.
//
//	S . . .
//	# # # .
//	. . . .
//	E # # #
func TestHopDistance(t *testing.T) {
	g := mustLayout(t,
		"S...",
		"###.",
		"....",
		"E###",
	)
	g.RefreshNeighbors(Conn4)
	if d, ok := g.HopDistance(g.Start(), g.End(0)); !ok || d != 9 {
		t.Errorf("Conn4 HopDistance = %d,%v; want 9,true", d, ok)
	}

	g.RefreshNeighbors(Conn8)
	// (0,0)→(0,1)→(0,2)→(1,3)→(2,2)→(2,1)→(3,0)
	if d, ok := g.HopDistance(g.Start(), g.End(0)); !ok || d != 6 {
		t.Errorf("Conn8 HopDistance = %d,%v; want 6,true", d, ok)
	}
	if !g.SameRegion(g.Start(), g.End(0)) {
		t.Error("SameRegion = false; want true")
	}
}

// TestHopDistance_Unreachable ensures enclosed cells report ok=false.
func TestHopDistance_Unreachable(t *testing.T) {
	g := mustLayout(t,
		"S..",
		"..#",
		".#E",
	)
	g.RefreshNeighbors(Conn4)
	if _, ok := g.HopDistance(g.Start(), g.End(0)); ok {
		t.Error("enclosed end reported reachable under Conn4")
	}
	g.RefreshNeighbors(Conn8)
	if d, ok := g.HopDistance(g.Start(), g.End(0)); !ok || d != 2 {
		t.Errorf("Conn8 HopDistance = %d,%v; want 2,true", d, ok)
	}
}
