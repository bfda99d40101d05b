// Package heap implements a maxiphobic heap: a binary-tree mergeable
// min-heap first described by Chris Okasaki, with logarithmic insert and
// delete-minimum and linear-time bulk construction.
//
// What
//
//   - Heap[T]: a mergeable priority structure over a caller-supplied
//     order.Comparator[T].
//   - Meld is the primitive operation; Insert and DeleteMinimum are both
//     one meld.
//   - NewFrom builds a heap of n elements in O(n) by pairwise melding
//     singletons through a FIFO queue of subtrees.
//
// Why
//
//   - Melding two heaps is O(log n), which array binary heaps cannot
//     offer; algorithms that combine priority structures (or tolerate
//     duplicate entries, as lazy-deletion Dijkstra does) get it for free.
//   - The merge rule is a two-liner: the smaller root wins, the heaviest
//     of the three leftover subtrees is adopted unchanged, and the two
//     lighter ones meld recursively.
//
// Structure invariants
//
//	Every node stores the size of its subtree:
//	  weight(n) == 1 + weight(n.left) + weight(n.right)
//	and the min-heap property holds:
//	  n.element ≤ n.left.element, n.element ≤ n.right.element.
//	The maxiphobic ("biggest-avoiding") merge keeps the heaviest candidate
//	subtree out of the recursion, so the recursive meld always works on at
//	most 2/3 of the combined weight, bounding its depth logarithmically.
//
// Determinism
//
//	When two roots compare equal, the first meld operand wins. When
//	candidate subtrees tie on weight, the earlier candidate keeps its
//	slot (only strictly heavier subtrees are promoted). A fixed insert
//	sequence therefore always produces the same tree.
//
// Complexity (n = element count)
//
//   - Size, IsEmpty, Clear, Minimum: O(1)
//   - Insert, DeleteMinimum, Meld:   O(log n)
//   - NewFrom, Clone:                O(n)
//
// Errors
//
//   - ErrEmptyHeap from Minimum and DeleteMinimum on an empty heap.
//
// Heaps are exclusively owned by their creator and are not safe for
// concurrent use.
package heap
