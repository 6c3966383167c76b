// Package verify checks the results of searches and sorts against their
// contracts. It is meant for tests and for callers plugging in their own
// orderings who want to confirm the output really is ordered.
package verify

import (
	stderrors "errors"
	"fmt"

	"github.com/amp-labs/amp-algorithms/compare"
	"github.com/amp-labs/amp-algorithms/errors"
	"github.com/amp-labs/amp-algorithms/search"
)

var (
	// ErrNotSorted is wrapped by every ordering violation reported by Sorted.
	ErrNotSorted = stderrors.New("not sorted")

	// ErrNotPermutation is returned when two slices hold different multisets.
	ErrNotPermutation = stderrors.New("not a permutation")

	// ErrWrongIndex is returned when a search result contradicts the slice contents.
	ErrWrongIndex = stderrors.New("wrong search result")
)

// Sorted reports every adjacent pair of v that is out of order, that is every i
// where order(v[i], v[i+1]) holds. For a transitive order this is equivalent to
// checking all pairs i < j. All violations are joined into the returned error.
func Sorted[T any](v []T, order compare.Ordering[T]) error {
	if order == nil {
		return errors.ErrNilOrdering
	}

	var violations errors.Collection

	for i := 0; i+1 < len(v); i++ {
		if order(v[i], v[i+1]) {
			violations.Add(fmt.Errorf("%w: %v at %d precedes %v at %d", ErrNotSorted, v[i], i, v[i+1], i+1))
		}
	}

	return violations.GetError()
}

// Permutation reports whether got holds exactly the elements of want, with the
// same multiplicities, in any order.
func Permutation[T comparable](want, got []T) error {
	if len(want) != len(got) {
		return fmt.Errorf("%w: length %d, expected %d", ErrNotPermutation, len(got), len(want))
	}

	counts := make(map[T]int, len(want))

	for _, v := range want {
		counts[v]++
	}

	for _, v := range got {
		counts[v]--
	}

	var mismatches errors.Collection

	for v, n := range counts {
		switch {
		case n > 0:
			mismatches.Add(fmt.Errorf("%w: %v missing %d time(s)", ErrNotPermutation, v, n))
		case n < 0:
			mismatches.Add(fmt.Errorf("%w: %v extra %d time(s)", ErrNotPermutation, v, -n))
		}
	}

	return mismatches.GetError()
}

// Found checks a search result: idx must be search.NotFound exactly when x does
// not occur in s, and otherwise must point at an element equal to x.
func Found[T comparable](s []T, x T, idx int) error {
	present := search.Linear(s, x) != search.NotFound

	switch {
	case idx == search.NotFound && present:
		return fmt.Errorf("%w: %v is present but was not found", ErrWrongIndex, x)
	case idx == search.NotFound:
		return nil
	case idx < 0 || idx >= len(s):
		return fmt.Errorf("%w: index %d: %w", ErrWrongIndex, idx, errors.ErrIndexOutOfRange)
	case s[idx] != x:
		return fmt.Errorf("%w: index %d holds %v, not %v", ErrWrongIndex, idx, s[idx], x)
	default:
		return nil
	}
}
