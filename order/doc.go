// Package order defines caller-supplied total orders over arbitrary
// element types, consumed by heap, pqueue, and the algorithms built on
// them.
//
// What
//
//   - Comparator[T]: a three-way comparison function (negative, zero,
//     positive) establishing a total order over T.
//   - Natural[T]: the built-in order of any cmp.Ordered type.
//   - Reversed(c): the inverse of an existing comparator.
//   - By(key, c): orders elements by a derived key.
//
// Why
//
//   - Mergeable heaps and priority queues are parametric in their order;
//     the order travels with the structure, never with the element type.
//   - Equal elements are legal everywhere: a comparator returning zero
//     never causes deduplication downstream.
//
// Determinism
//
//	A Comparator must be a pure function of its two arguments. All
//	structural tie-breaking (equal elements, equal priorities) is decided
//	by the consuming structure, not by the comparator.
//
// Complexity
//
//   - All constructors are O(1); the returned comparators add one
//     function call over the wrapped comparison.
package order
