package compare

import (
	"cmp"
	"sync"

	"facette.io/natsort"
	"github.com/emirpasic/gods/utils"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Ordering is a strict ordering predicate used to parameterize sort direction.
// It reports whether a should move relative to b: for insertion sort, whether a
// must shift right past b; for selection sort, whether b should replace a as the
// best candidate seen so far.
//
// An Ordering must be strict (never true for equal elements), consistent and
// transitive. The sorts don't enforce this: a broken predicate produces an
// unspecified order but never a crash.
type Ordering[T any] func(a, b T) bool

// Ascending reports whether a > b, which yields increasing order.
func Ascending[T cmp.Ordered](a, b T) bool {
	return a > b
}

// Descending reports whether a < b, which yields decreasing order.
func Descending[T cmp.Ordered](a, b T) bool {
	return a < b
}

// Reverse returns the mirror ordering, obtained by swapping the arguments.
func (o Ordering[T]) Reverse() Ordering[T] {
	return func(a, b T) bool {
		return o(b, a)
	}
}

// FromCompare builds an ascending Ordering from a three-way comparison such as
// cmp.Compare or strings.Compare.
func FromCompare[T any](compare func(a, b T) int) Ordering[T] {
	return func(a, b T) bool {
		return compare(a, b) > 0
	}
}

// FromComparator adapts a gods comparator (as used by gods trees, heaps and maps)
// into an ascending Ordering.
//
// Example:
//
//	order := compare.FromComparator[int](utils.IntComparator)
func FromComparator[T any](comparator utils.Comparator) Ordering[T] {
	return func(a, b T) bool {
		return comparator(a, b) > 0
	}
}

// NaturalAscending orders strings naturally, treating embedded digit runs as
// numbers: "file2" sorts before "file10".
func NaturalAscending(a, b string) bool {
	// natsort.Compare is not strict (it holds for equal strings).
	return a != b && natsort.Compare(b, a)
}

// NaturalDescending is the mirror of NaturalAscending.
func NaturalDescending(a, b string) bool {
	return a != b && natsort.Compare(a, b)
}

// Collated returns a locale-aware ascending Ordering for strings.
//
// A collate.Collator keeps internal buffers, so the returned predicate draws one
// from a pool per comparison. The predicate itself may be shared by goroutines.
//
// Example:
//
//	order := compare.Collated(language.German, collate.IgnoreCase)
func Collated(tag language.Tag, opts ...collate.Option) Ordering[string] {
	collators := &sync.Pool{
		New: func() any {
			return collate.New(tag, opts...)
		},
	}

	return func(a, b string) bool {
		collator := collators.Get().(*collate.Collator) //nolint:forcetypeassert
		defer collators.Put(collator)

		return collator.CompareString(a, b) > 0
	}
}
