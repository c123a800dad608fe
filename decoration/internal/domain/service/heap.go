package service

import "container/heap"

// heapItemKind tags a heapItem as a LocalSet cursor or an ending
// decoration — a closed sum type dispatched on the tag, never on virtual
// methods.
type heapItemKind int

const (
	localSetItem heapItemKind = iota
	endItem
)

// heapItem is one entry in the spans builder's min-heap: either a LocalSet
// cursor (heapPos is its current decoration's absolute From) or an active
// decoration that is ending (heapPos is its absolute To, endID names which
// active entry to remove). Ties break on bias ascending.
type heapItem struct {
	kind    heapItemKind
	heapPos int
	bias    int

	cursor *LocalSet
	iter   *Iterator

	endID int
}

// itemHeap is a binary min-heap over heapItem, ordered by (heapPos, bias).
type itemHeap []heapItem

func (h itemHeap) Len() int { return len(h) }

func (h itemHeap) Less(i, j int) bool {
	if h[i].heapPos != h[j].heapPos {
		return h[i].heapPos < h[j].heapPos
	}
	return h[i].bias < h[j].bias
}

func (h itemHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *itemHeap) Push(x any) { *h = append(*h, x.(heapItem)) }

func (h *itemHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

var _ heap.Interface = (*itemHeap)(nil)

// addIterToHeap pulls LocalSet cursors from it (skipping subtrees entirely
// before skip) and pushes each one onto h, keyed by its current decoration.
// It keeps pulling — queuing every non-leaf node's own Local before
// descending further — until it reaches a terminal (childless) node: a
// node with both a Local and Children must have its Local queued alongside
// its children's, not returned to the caller on its own, or positions held
// only by its children would be missing from the heap while that node's
// Local is the sole entry in flight. It is a no-op once the iterator is
// exhausted.
func addIterToHeap(h *itemHeap, it *Iterator, skip int) {
	for {
		ls, terminal, ok := it.Next(skip)
		if !ok {
			return
		}
		d := ls.Current()
		heap.Push(h, heapItem{
			kind:    localSetItem,
			heapPos: ls.Offset + d.From,
			bias:    d.Desc.Bias,
			cursor:  &ls,
			iter:    it,
		})
		if terminal {
			return
		}
	}
}
