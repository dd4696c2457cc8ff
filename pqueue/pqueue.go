package pqueue

import "container/heap"

// Item pairs a node with the cost used to order it in a MinQueue.
type Item[T comparable] struct {
	// Node is the queued value.
	Node T

	// Cost orders the queue; smaller surfaces first.
	Cost int64
}

// MinQueue is a cost-ordered min-priority queue of nodes.
// The zero value is an empty queue ready for use.
type MinQueue[T comparable] struct {
	h costHeap[T]
}

// New returns an empty MinQueue.
func New[T comparable]() *MinQueue[T] {
	return &MinQueue[T]{}
}

// Len reports the number of queued items, stale duplicates included.
func (q *MinQueue[T]) Len() int { return len(q.h) }

// Push queues node at the given cost. Duplicate nodes are allowed.
// Complexity: O(log n).
func (q *MinQueue[T]) Push(node T, cost int64) {
	heap.Push(&q.h, Item[T]{Node: node, Cost: cost})
}

// Pop removes and returns the cheapest item. The second return is false
// when the queue is empty.
// Complexity: O(log n).
func (q *MinQueue[T]) Pop() (Item[T], bool) {
	if len(q.h) == 0 {
		var zero Item[T]

		return zero, false
	}

	return heap.Pop(&q.h).(Item[T]), true
}

// Peek returns the cheapest item without removing it. The second return
// is false when the queue is empty.
func (q *MinQueue[T]) Peek() (Item[T], bool) {
	if len(q.h) == 0 {
		var zero Item[T]

		return zero, false
	}

	return q.h[0], true
}

// costHeap implements heap.Interface ordered by Item.Cost ascending.
// Node identity never participates in the ordering.
type costHeap[T comparable] []Item[T]

// Len returns the number of items in the heap.
func (h costHeap[T]) Len() int { return len(h) }

// Less defines the comparison: smaller cost means higher priority.
func (h costHeap[T]) Less(i, j int) bool { return h[i].Cost < h[j].Cost }

// Swap swaps two elements in the heap.
func (h costHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push adds x onto the heap. Called by heap.Push; x must be an Item[T].
func (h *costHeap[T]) Push(x interface{}) { *h = append(*h, x.(Item[T])) }

// Pop removes and returns the last element. Called by heap.Pop.
func (h *costHeap[T]) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
