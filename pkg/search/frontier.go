package search

import "container/heap"

// Frontier is a priority collection of nodes ordered by ascending FCost.
// Ties break by insertion order, so a fixed input sequence always pops
// in the same order.
type Frontier[S State[S, M], M any] struct {
	entries frontierHeap[S, M]
	nextSeq uint64
}

// NewFrontier creates an empty frontier.
func NewFrontier[S State[S, M], M any]() *Frontier[S, M] {
	return &Frontier[S, M]{}
}

// Push inserts a node.
func (f *Frontier[S, M]) Push(node *Node[S, M]) {
	heap.Push(&f.entries, frontierEntry[S, M]{node: node, seq: f.nextSeq})
	f.nextSeq++
}

// Pop extracts the node with the lowest FCost. It returns ErrExhausted
// when the frontier is empty.
func (f *Frontier[S, M]) Pop() (*Node[S, M], error) {
	if len(f.entries) == 0 {
		return nil, ErrExhausted
	}
	entry := heap.Pop(&f.entries).(frontierEntry[S, M])
	return entry.node, nil
}

// Peek returns the node Pop would extract next without removing it.
func (f *Frontier[S, M]) Peek() (*Node[S, M], error) {
	if len(f.entries) == 0 {
		return nil, ErrExhausted
	}
	return f.entries[0].node, nil
}

// Len returns the number of queued nodes.
func (f *Frontier[S, M]) Len() int { return len(f.entries) }

// Empty reports whether the frontier holds no nodes.
func (f *Frontier[S, M]) Empty() bool { return len(f.entries) == 0 }

// Clear removes all queued nodes.
func (f *Frontier[S, M]) Clear() {
	f.entries = f.entries[:0]
}

type frontierEntry[S State[S, M], M any] struct {
	node *Node[S, M]
	seq  uint64
}

type frontierHeap[S State[S, M], M any] []frontierEntry[S, M]

func (h frontierHeap[S, M]) Len() int { return len(h) }

func (h frontierHeap[S, M]) Less(i, j int) bool {
	if h[i].node.FCost() != h[j].node.FCost() {
		return h[i].node.FCost() < h[j].node.FCost()
	}
	return h[i].seq < h[j].seq
}

func (h frontierHeap[S, M]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *frontierHeap[S, M]) Push(x any) {
	*h = append(*h, x.(frontierEntry[S, M]))
}

func (h *frontierHeap[S, M]) Pop() any {
	old := *h
	n := len(old)
	entry := old[n-1]
	old[n-1] = frontierEntry[S, M]{}
	*h = old[:n-1]
	return entry
}
