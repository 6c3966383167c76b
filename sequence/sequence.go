// Package sequence provides a bounds-checked view over a caller-owned slice.
//
// Indexing a plain slice out of range panics. The algorithms in this module
// prefer to report such a fault as an ordinary error wrapping
// [errors.ErrIndexOutOfRange], so every element access made through a
// Sequence is checked against [0, Len()).
package sequence

import (
	"fmt"

	"github.com/amp-labs/amp-algorithms/errors"
)

// Sequence is a fixed-length, index-addressable view over a slice. It does not
// copy the slice: writes through Set and Swap are visible to the caller, and the
// caller keeps ownership of the backing array.
type Sequence[T any] struct {
	items []T
}

// Of wraps the given slice. A nil slice yields an empty sequence.
func Of[T any](items []T) Sequence[T] {
	return Sequence[T]{items: items}
}

// Len returns the number of elements in the sequence.
func (s Sequence[T]) Len() int {
	return len(s.items)
}

// Slice returns the wrapped slice.
func (s Sequence[T]) Slice() []T {
	return s.items
}

// At returns the element at index i.
//
//nolint:ireturn
func (s Sequence[T]) At(i int) (T, error) {
	if err := s.check(i); err != nil {
		var zero T

		return zero, err
	}

	return s.items[i], nil
}

// Set stores value at index i.
func (s Sequence[T]) Set(i int, value T) error {
	if err := s.check(i); err != nil {
		return err
	}

	s.items[i] = value

	return nil
}

// Swap exchanges the elements at indices i and j. Neither element is touched
// unless both indices are valid.
func (s Sequence[T]) Swap(i, j int) error {
	if err := s.check(i); err != nil {
		return err
	}

	if err := s.check(j); err != nil {
		return err
	}

	s.items[i], s.items[j] = s.items[j], s.items[i]

	return nil
}

func (s Sequence[T]) check(i int) error {
	if i < 0 || i >= len(s.items) {
		return fmt.Errorf("%w: index %d, length %d", errors.ErrIndexOutOfRange, i, len(s.items))
	}

	return nil
}
