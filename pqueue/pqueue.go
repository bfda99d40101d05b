package pqueue

import (
	"github.com/katalvlaran/lvlmerge/heap"
	"github.com/katalvlaran/lvlmerge/order"
)

// ErrEmptyQueue is returned by First and Dequeue on an empty queue.
// It aliases heap.ErrEmptyHeap so the empty-structure failure keeps one
// identity whether a caller holds the heap or its adapter.
var ErrEmptyQueue = heap.ErrEmptyHeap

// Queue is a min-priority queue over a caller-supplied total order,
// backed by a maxiphobic heap. Duplicates and stale entries are kept
// verbatim; priority only decides pop order, never identity.
type Queue[T any] struct {
	h *heap.Heap[T]
}

// New creates an empty queue ordered by cmp.
// Complexity: O(1).
func New[T any](cmp order.Comparator[T]) *Queue[T] {
	return &Queue[T]{h: heap.New(cmp)}
}

// NewFrom creates a queue holding elems, ordered by cmp, in O(n).
func NewFrom[T any](cmp order.Comparator[T], elems ...T) *Queue[T] {
	return &Queue[T]{h: heap.NewFrom(cmp, elems...)}
}

// Comparator returns the total order this queue was constructed with.
func (q *Queue[T]) Comparator() order.Comparator[T] {
	return q.h.Comparator()
}

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool {
	return q.h.IsEmpty()
}

// Size returns the number of enqueued elements, duplicates included.
func (q *Queue[T]) Size() int {
	return q.h.Size()
}

// Clear removes every element.
func (q *Queue[T]) Clear() {
	q.h.Clear()
}

// Enqueue adds element to the queue. Equal-priority and duplicate
// elements are all retained.
// Complexity: O(log n).
func (q *Queue[T]) Enqueue(element T) {
	q.h.Insert(element)
}

// First returns the highest-priority element without removing it.
// Returns ErrEmptyQueue on an empty queue.
// Complexity: O(1).
func (q *Queue[T]) First() (T, error) {
	return q.h.Minimum()
}

// Dequeue removes the highest-priority element.
// Returns ErrEmptyQueue on an empty queue.
// Complexity: O(log n).
func (q *Queue[T]) Dequeue() error {
	return q.h.DeleteMinimum()
}
