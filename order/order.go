package order

import "cmp"

// Comparator establishes a total order over T.
// It returns a negative value if a precedes b, zero if they are
// equivalent, and a positive value if a follows b.
type Comparator[T any] func(a, b T) int

// Natural returns the Comparator induced by the built-in ordering of T.
func Natural[T cmp.Ordered]() Comparator[T] {
	return func(a, b T) int { return cmp.Compare(a, b) }
}

// Reversed returns a Comparator with the inverse order of c.
func Reversed[T any](c Comparator[T]) Comparator[T] {
	return func(a, b T) int { return c(b, a) }
}

// By returns a Comparator over T that orders elements by the key
// extracted with key, compared under c.
func By[T, K any](key func(T) K, c Comparator[K]) Comparator[T] {
	return func(a, b T) int { return c(key(a), key(b)) }
}

// Min returns the smaller of a and b under c; a is returned on ties.
func Min[T any](c Comparator[T], a, b T) T {
	if c(b, a) < 0 {
		return b
	}

	return a
}

// Max returns the larger of a and b under c; a is returned on ties.
func Max[T any](c Comparator[T], a, b T) T {
	if c(b, a) > 0 {
		return b
	}

	return a
}
