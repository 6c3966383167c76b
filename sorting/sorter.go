package sorting

import (
	"cmp"

	"github.com/amp-labs/amp-algorithms/compare"
)

// Sorter sorts a slice in place and returns it.
type Sorter[T any] interface {
	Sort(v []T) ([]T, error)
}

// InsertionSorter runs InsertionFunc with Order.
type InsertionSorter[T any] struct {
	Order compare.Ordering[T]
}

// NewInsertionSorter returns an ascending InsertionSorter.
func NewInsertionSorter[T cmp.Ordered]() InsertionSorter[T] {
	return InsertionSorter[T]{Order: compare.Ascending[T]}
}

func (s InsertionSorter[T]) Sort(v []T) ([]T, error) {
	return InsertionFunc(v, s.Order)
}

// SelectionSorter runs SelectionFunc with Order.
type SelectionSorter[T any] struct {
	Order compare.Ordering[T]
}

// NewSelectionSorter returns an ascending SelectionSorter.
func NewSelectionSorter[T cmp.Ordered]() SelectionSorter[T] {
	return SelectionSorter[T]{Order: compare.Ascending[T]}
}

func (s SelectionSorter[T]) Sort(v []T) ([]T, error) {
	return SelectionFunc(v, s.Order)
}

var (
	_ Sorter[int] = InsertionSorter[int]{}
	_ Sorter[int] = SelectionSorter[int]{}
)
