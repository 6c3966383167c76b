package sorting

import (
	"cmp"
	"fmt"

	"github.com/amp-labs/amp-algorithms/compare"
	"github.com/amp-labs/amp-algorithms/errors"
	"github.com/amp-labs/amp-algorithms/sequence"
)

// Insertion sorts v in ascending order using insertion sort.
func Insertion[T cmp.Ordered](v []T) ([]T, error) {
	return InsertionFunc(v, compare.Ascending[T])
}

// InsertionFunc sorts v in place using insertion sort and returns it.
//
// v[0] starts as a sorted prefix of length one. Each following element is lifted
// out and the prefix elements for which shouldMoveLeft(prefixElement, value)
// holds are shifted one slot right to open its position. Since equal elements
// never satisfy a strict ordering they are never shifted past each other, which
// keeps the sort stable.
func InsertionFunc[T any](v []T, shouldMoveLeft compare.Ordering[T]) ([]T, error) {
	if shouldMoveLeft == nil {
		return v, fmt.Errorf("insertion sort: %w", errors.ErrNilOrdering)
	}

	seq := sequence.Of(v)

	for i := 1; i < seq.Len(); i++ {
		if err := insert(seq, i, shouldMoveLeft); err != nil {
			return v, fmt.Errorf("insertion sort: %w", err)
		}
	}

	return v, nil
}

// insert moves seq[i] into its place within the sorted prefix seq[0:i].
func insert[T any](seq sequence.Sequence[T], i int, shouldMoveLeft compare.Ordering[T]) error {
	value, err := seq.At(i)
	if err != nil {
		return err
	}

	j := i

	for j > 0 {
		prev, err := seq.At(j - 1)
		if err != nil {
			return err
		}

		if !shouldMoveLeft(prev, value) {
			break
		}

		if err := seq.Set(j, prev); err != nil {
			return err
		}

		j--
	}

	return seq.Set(j, value)
}
