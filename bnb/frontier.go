package bnb

import "container/heap"

// choice is one include decision in a persistent, parent-linked list.
// Siblings share their common prefix, so recording a decision is O(1).
type choice struct {
	rank int // index into the ranked item slice
	next *choice
}

// node is the engine's view of a Node: the public state plus the include
// decisions that lead to it and an insertion sequence for stable ordering.
type node struct {
	Node
	taken *choice
	seq   uint64
}

// frontier is the container of pending nodes. The engine owns it for the
// duration of one search; the concrete order is chosen by Strategy.
type frontier interface {
	Push(n *node)
	Pop() *node
	Len() int
}

// newFrontier returns the container implementing s.
func newFrontier(s Strategy, hint int) frontier {
	switch s {
	case BreadthFirst:
		return &fifoFrontier{buf: make([]*node, 0, hint)}
	case DepthFirst:
		return &lifoFrontier{buf: make([]*node, 0, hint)}
	default:
		h := make(nodeHeap, 0, hint)
		return &bestFirstFrontier{h: h}
	}
}

// fifoFrontier is a slice-backed queue. The consumed prefix is reclaimed
// once it grows past half of the buffer.
type fifoFrontier struct {
	buf  []*node
	head int
}

func (q *fifoFrontier) Push(n *node) { q.buf = append(q.buf, n) }

func (q *fifoFrontier) Pop() *node {
	n := q.buf[q.head]
	q.buf[q.head] = nil
	q.head++
	if q.head > len(q.buf)/2 {
		q.buf = append(q.buf[:0], q.buf[q.head:]...)
		q.head = 0
	}

	return n
}

func (q *fifoFrontier) Len() int { return len(q.buf) - q.head }

// lifoFrontier is a slice-backed stack.
type lifoFrontier struct {
	buf []*node
}

func (s *lifoFrontier) Push(n *node) { s.buf = append(s.buf, n) }

func (s *lifoFrontier) Pop() *node {
	last := len(s.buf) - 1
	n := s.buf[last]
	s.buf[last] = nil
	s.buf = s.buf[:last]

	return n
}

func (s *lifoFrontier) Len() int { return len(s.buf) }

// bestFirstFrontier pops the node with the largest bound.
type bestFirstFrontier struct {
	h nodeHeap
}

func (b *bestFirstFrontier) Push(n *node) { heap.Push(&b.h, n) }
func (b *bestFirstFrontier) Pop() *node   { return heap.Pop(&b.h).(*node) }
func (b *bestFirstFrontier) Len() int     { return b.h.Len() }

// nodeHeap is a max-heap of *node ordered by Bound. Ties prefer the deeper
// node (it is closer to a complete solution), then the earlier insertion.
type nodeHeap []*node

// Len returns the number of items in the heap.
func (h nodeHeap) Len() int { return len(h) }

// Less reports whether h[i] must be popped before h[j].
func (h nodeHeap) Less(i, j int) bool {
	a, b := h[i], h[j]
	if a.Bound != b.Bound {
		return a.Bound > b.Bound
	}
	if a.Level != b.Level {
		return a.Level > b.Level
	}

	return a.seq < b.seq
}

// Swap swaps two elements in the heap.
func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push adds x onto the heap. Called by heap.Push; x must be *node.
func (h *nodeHeap) Push(x any) { *h = append(*h, x.(*node)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return item
}
