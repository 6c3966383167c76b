package sorting

import (
	"cmp"
	"fmt"

	"github.com/amp-labs/amp-algorithms/compare"
	"github.com/amp-labs/amp-algorithms/errors"
	"github.com/amp-labs/amp-algorithms/sequence"
)

// Selection sorts v in ascending order using selection sort.
func Selection[T cmp.Ordered](v []T) ([]T, error) {
	return SelectionFunc(v, compare.Ascending[T])
}

// SelectionFunc sorts v in place using selection sort and returns it.
//
// For every start index the unsorted suffix is scanned for the best element,
// where a candidate replaces the best so far when shouldSelect(best, candidate)
// holds, and that element is swapped to the start index. The swap can carry an
// element past an equal one, so the sort is not stable.
func SelectionFunc[T any](v []T, shouldSelect compare.Ordering[T]) ([]T, error) {
	if shouldSelect == nil {
		return v, fmt.Errorf("selection sort: %w", errors.ErrNilOrdering)
	}

	seq := sequence.Of(v)

	for start := 0; start < seq.Len()-1; start++ {
		best, err := selectBest(seq, start, shouldSelect)
		if err != nil {
			return v, fmt.Errorf("selection sort: %w", err)
		}

		if best == start {
			continue
		}

		if err := seq.Swap(start, best); err != nil {
			return v, fmt.Errorf("selection sort: %w", err)
		}
	}

	return v, nil
}

// selectBest returns the index of the best element of seq[start:].
func selectBest[T any](seq sequence.Sequence[T], start int, shouldSelect compare.Ordering[T]) (int, error) {
	bestIndex := start

	best, err := seq.At(bestIndex)
	if err != nil {
		return 0, err
	}

	for current := start + 1; current < seq.Len(); current++ {
		candidate, err := seq.At(current)
		if err != nil {
			return 0, err
		}

		if shouldSelect(best, candidate) {
			bestIndex, best = current, candidate
		}
	}

	return bestIndex, nil
}
