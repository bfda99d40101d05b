package heap

import "github.com/katalvlaran/lvlmerge/order"

// Heap is a maxiphobic mergeable min-heap over a caller-supplied total
// order. The zero value is not usable; construct with New or NewFrom.
type Heap[T any] struct {
	cmp  order.Comparator[T] // total order over elements
	root *node[T]            // nil when empty
}

// New creates an empty heap ordered by cmp.
// Complexity: O(1).
func New[T any](cmp order.Comparator[T]) *Heap[T] {
	return &Heap[T]{cmp: cmp}
}

// NewFrom creates a heap holding elems, ordered by cmp.
//
// Construction is O(n), not O(n log n): each element becomes a singleton
// subtree, and subtrees are repeatedly dequeued in pairs from a FIFO
// queue, melded, and enqueued again until one tree remains. Pairing
// round k melds trees of size ~2^k, so the total meld work telescopes
// to O(n).
func NewFrom[T any](cmp order.Comparator[T], elems ...T) *Heap[T] {
	h := New(cmp)
	if len(elems) == 0 {
		return h
	}

	queue := make([]*node[T], 0, len(elems))
	for _, e := range elems {
		queue = append(queue, singleton(e))
	}
	for len(queue) > 1 {
		first, second := queue[0], queue[1]
		queue = queue[2:]
		queue = append(queue, h.merge(first, second))
	}
	h.root = queue[0]

	return h
}

// Comparator returns the total order this heap was constructed with.
// Complexity: O(1).
func (h *Heap[T]) Comparator() order.Comparator[T] {
	return h.cmp
}

// IsEmpty reports whether the heap holds no elements.
// Complexity: O(1).
func (h *Heap[T]) IsEmpty() bool {
	return h.root == nil
}

// Size returns the number of elements in the heap.
// Complexity: O(1), read from the root's subtree weight.
func (h *Heap[T]) Size() int {
	return weight(h.root)
}

// Clear removes every element, dropping the whole owned tree.
// Complexity: O(1).
func (h *Heap[T]) Clear() {
	h.root = nil
}

// Insert adds element to the heap by melding the current tree with a
// fresh singleton.
// Complexity: O(log n).
func (h *Heap[T]) Insert(element T) {
	h.root = h.merge(h.root, singleton(element))
}

// Minimum returns the smallest element without removing it.
// Returns ErrEmptyHeap on an empty heap.
// Complexity: O(1).
func (h *Heap[T]) Minimum() (T, error) {
	if h.root == nil {
		var zero T
		return zero, ErrEmptyHeap
	}

	return h.root.element, nil
}

// DeleteMinimum removes the smallest element by melding the root's two
// children. Returns ErrEmptyHeap on an empty heap.
// Complexity: O(log n).
func (h *Heap[T]) DeleteMinimum() error {
	if h.root == nil {
		return ErrEmptyHeap
	}
	h.root = h.merge(h.root.left, h.root.right)

	return nil
}

// Meld moves every element of other into h, leaving other empty.
// Both heaps must order elements compatibly; h's comparator governs the
// merged tree. Melding a heap with itself or with nil is a no-op.
// Complexity: O(log n).
func (h *Heap[T]) Meld(other *Heap[T]) {
	if other == nil || other == h {
		return
	}
	h.root = h.merge(h.root, other.root)
	other.root = nil
}

// Clone returns a deep copy of the heap sharing no nodes with h.
// Complexity: O(n).
func (h *Heap[T]) Clone() *Heap[T] {
	return &Heap[T]{cmp: h.cmp, root: clone(h.root)}
}

// merge implements the maxiphobic meld of two subtrees.
//
// The root with the smaller element wins (the first operand on ties) and
// absorbs the combined weight. Of the three candidate subtrees — the
// winner's two children and the loser as a whole — the heaviest is
// adopted unchanged as the left child, keeping it out of the recursion;
// the two lighter candidates meld recursively into the right child. The
// recursion therefore acts on at most 2/3 of the combined weight, so its
// depth is O(log n).
func (h *Heap[T]) merge(a, b *node[T]) *node[T] {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}

	// Smaller root wins; on equal elements the first operand stays.
	if h.cmp(a.element, b.element) > 0 {
		a, b = b, a
	}
	a.weight += b.weight

	// Candidates: winner's children and the loser's whole subtree.
	// Promote only strictly heavier candidates so ties keep their slot.
	heavy, second, third := a.left, a.right, b
	if weight(second) > weight(heavy) {
		heavy, second = second, heavy
	}
	if weight(third) > weight(heavy) {
		heavy, third = third, heavy
	}

	a.left = heavy
	a.right = h.merge(second, third)

	return a
}

// clone deep-copies a subtree.
func clone[T any](n *node[T]) *node[T] {
	if n == nil {
		return nil
	}

	return &node[T]{
		element: n.element,
		weight:  n.weight,
		left:    clone(n.left),
		right:   clone(n.right),
	}
}
