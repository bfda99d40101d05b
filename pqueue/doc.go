// Package pqueue adapts the maxiphobic heap into a priority queue with
// the classic enqueue / first / dequeue surface.
//
// What
//
//   - Queue[T]: Enqueue inserts, First peeks the highest-priority
//     (smallest) element, Dequeue removes it.
//   - Arbitrary duplicate and equal-priority elements are accepted with
//     no deduplication; a Queue never merges, updates, or drops entries
//     on its own.
//
// Why
//
//   - Lazy-deletion algorithms (see the dijkstra package) deliberately
//     enqueue superseded candidates and discard them after popping. The
//     adapter's only job is to keep the cheapest entry on top and stay
//     out of the way.
//
// Complexity (n = queue length)
//
//   - First, Size, IsEmpty, Clear: O(1)
//   - Enqueue, Dequeue:            O(log n)
//
// Errors
//
//   - ErrEmptyQueue from First and Dequeue on an empty queue. It is the
//     same error value as heap.ErrEmptyHeap, so either sentinel matches
//     with errors.Is.
//
// Queues are exclusively owned by their creator and are not safe for
// concurrent use.
package pqueue
