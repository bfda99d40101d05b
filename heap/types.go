package heap

import "errors"

// ErrEmptyHeap is returned by Minimum and DeleteMinimum on an empty heap.
var ErrEmptyHeap = errors.New("heap: empty heap")

// node is one vertex of the owned heap tree.
//
// weight is the node count of the subtree rooted here:
//
//	weight == 1 + weight(left) + weight(right)
//
// and the element is ≤ the elements of both children (min-heap property).
type node[T any] struct {
	element T
	weight  int
	left    *node[T]
	right   *node[T]
}

// singleton returns a one-node subtree holding element.
func singleton[T any](element T) *node[T] {
	return &node[T]{element: element, weight: 1}
}

// weight reports the subtree size of n, zero for nil.
func weight[T any](n *node[T]) int {
	if n == nil {
		return 0
	}

	return n.weight
}
