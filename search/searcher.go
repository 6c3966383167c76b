package search

import "cmp"

// Searcher finds x in s and returns its index or NotFound. Implementations hold
// no state, so a single value may be shared across goroutines as long as each
// call is given its own slice (or slices nobody is writing to).
type Searcher[T any] interface {
	Search(s []T, x T) int
}

// LinearSearcher adapts Linear. It accepts unsorted input.
type LinearSearcher[T comparable] struct{}

func (LinearSearcher[T]) Search(s []T, x T) int {
	return Linear(s, x)
}

// IterativeBinarySearcher adapts BinaryIterative. Input must be sorted ascending.
type IterativeBinarySearcher[T cmp.Ordered] struct{}

func (IterativeBinarySearcher[T]) Search(s []T, x T) int {
	return BinaryIterative(s, x)
}

// RecursiveBinarySearcher adapts BinaryRecursive over the whole slice, hiding
// the explicit bounds. Input must be sorted ascending.
type RecursiveBinarySearcher[T cmp.Ordered] struct{}

func (RecursiveBinarySearcher[T]) Search(s []T, x T) int {
	return BinaryRecursive(s, 0, len(s)-1, x)
}

var (
	_ Searcher[int] = LinearSearcher[int]{}
	_ Searcher[int] = IterativeBinarySearcher[int]{}
	_ Searcher[int] = RecursiveBinarySearcher[int]{}
)
