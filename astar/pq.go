package astar

import (
	"container/heap"

	"github.com/katalvlaran/pathgrid/grid"
)

// frontierItem pairs a queued cell with its insertion sequence number and
// current heap position. The sequence number survives score updates, so a
// cell improved in place keeps its original queueing order among equal
// f-scores.
type frontierItem struct {
	cell  *grid.Cell
	seq   uint64 // monotonic insertion order, breaks f-score ties FIFO
	index int    // position in the heap, maintained by Swap
}

// frontier is the open set: an indexed min-heap on (f-score, seq) plus a
// membership map for O(1) "already queued?" checks and true decrease-key
// via heap.Fix instead of duplicate pushes. Indexing keeps at most one
// entry per cell alive, so stale-entry skips are never needed.
type frontier struct {
	heap    frontierHeap
	members map[*grid.Cell]*frontierItem
	nextSeq uint64
}

// newFrontier returns an empty frontier sized for roughly n queued cells.
func newFrontier(n int) *frontier {
	return &frontier{
		heap:    make(frontierHeap, 0, n),
		members: make(map[*grid.Cell]*frontierItem, n),
	}
}

// push queues a cell under the next insertion sequence number. The cell's
// f-score must be set before pushing.
func (f *frontier) push(c *grid.Cell) {
	item := &frontierItem{cell: c, seq: f.nextSeq}
	f.nextSeq++
	f.members[c] = item
	heap.Push(&f.heap, item)
}

// pop removes and returns the queued cell with the lowest (f-score, seq).
func (f *frontier) pop() *grid.Cell {
	item := heap.Pop(&f.heap).(*frontierItem)
	delete(f.members, item.cell)
	return item.cell
}

// contains reports whether the cell is currently queued.
func (f *frontier) contains(c *grid.Cell) bool {
	_, ok := f.members[c]
	return ok
}

// fix restores heap order after the cell's f-score improved in place.
func (f *frontier) fix(c *grid.Cell) {
	if item, ok := f.members[c]; ok {
		heap.Fix(&f.heap, item.index)
	}
}

// empty reports whether no cells remain queued.
func (f *frontier) empty() bool { return len(f.heap) == 0 }

// frontierHeap implements heap.Interface over *frontierItem, ordered by
// f-score ascending with insertion sequence as the tie-break.
type frontierHeap []*frontierItem

// Len returns the number of queued items.
func (h frontierHeap) Len() int { return len(h) }

// Less orders by f-score, then by insertion sequence among equal scores.
func (h frontierHeap) Less(i, j int) bool {
	fi, fj := h[i].cell.FScore(), h[j].cell.FScore()
	if fi != fj {
		return fi < fj
	}
	return h[i].seq < h[j].seq
}

// Swap exchanges two items and keeps their heap indices current.
func (h frontierHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

// Push appends a new item; called by heap.Push with a *frontierItem.
func (h *frontierHeap) Push(x interface{}) {
	item := x.(*frontierItem)
	item.index = len(*h)
	*h = append(*h, item)
}

// Pop removes and returns the last item; called by heap.Pop after the
// minimum has been swapped to the tail.
func (h *frontierHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil // release the reference for the garbage collector
	item.index = -1
	*h = old[:n-1]
	return item
}
