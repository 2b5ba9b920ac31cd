package pathfind

import (
	"container/heap"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// entry is one queued cell. seq is the insertion counter used as tie-break.
// key is fixed at push time.
type entry struct {
	cell *gridgraph.Cell
	key  float64
	seq  uint64
}

// entryHeap is a min-heap ordered by (key, seq).
type entryHeap []*entry

func (h entryHeap) Len() int { return len(h) }

func (h entryHeap) Less(i, j int) bool {
	if h[i].key != h[j].key {
		return h[i].key < h[j].key
	}
	return h[i].seq < h[j].seq
}

func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap) Push(x interface{}) { *h = append(*h, x.(*entry)) }

func (h *entryHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return e
}

// frontier is the open set: a heap plus a membership index so that
// Contains is O(1).
type frontier struct {
	items  entryHeap
	byCell map[*gridgraph.Cell]*entry
	seq    uint64
}

func newFrontier(capacity int) *frontier {
	return &frontier{
		items:  make(entryHeap, 0, capacity),
		byCell: make(map[*gridgraph.Cell]*entry, capacity),
	}
}

func (f *frontier) Len() int { return f.items.Len() }

func (f *frontier) Contains(c *gridgraph.Cell) bool {
	_, ok := f.byCell[c]
	return ok
}

// Push queues c with the next insertion sequence number.
func (f *frontier) Push(c *gridgraph.Cell, key float64) {
	e := &entry{cell: c, key: key, seq: f.seq}
	f.seq++
	f.byCell[c] = e
	heap.Push(&f.items, e)
}

// Pop removes and returns the cell with the smallest (key, seq).
func (f *frontier) Pop() *gridgraph.Cell {
	e := heap.Pop(&f.items).(*entry)
	delete(f.byCell, e.cell)

	return e.cell
}
