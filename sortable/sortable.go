package sortable

import (
	"github.com/amp-labs/amp-algorithms/compare"
)

// Sortable is a Comparable type that also knows how to order itself.
type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// Ascending returns an Ordering producing increasing order by LessThan.
func Ascending[T Sortable[T]]() compare.Ordering[T] {
	return func(a, b T) bool {
		return b.LessThan(a)
	}
}

// Descending returns an Ordering producing decreasing order by LessThan.
func Descending[T Sortable[T]]() compare.Ordering[T] {
	return func(a, b T) bool {
		return a.LessThan(b)
	}
}

// Compare is a three-way comparison derived from LessThan and Equals:
// negative when a < b, zero when equal, positive otherwise.
func Compare[T Sortable[T]](a, b T) int {
	switch {
	case a.Equals(b):
		return 0
	case a.LessThan(b):
		return -1
	default:
		return 1
	}
}
