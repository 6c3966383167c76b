// Package search finds the index of a target value in a slice.
//
// Every function returns a non-negative index on success and [NotFound] when
// the target is absent or the slice is nil or empty; a miss is never an error.
//
// [Linear] makes no assumption about element order. The binary searches require
// the slice to be sorted ascending (by the natural order of T, or by the supplied
// comparison for the Func variants) and, when the target occurs more than once,
// return the index of some matching element, not necessarily the first.
//
// [Searcher] puts all three algorithms behind one signature so callers can swap
// them freely:
//
//	var s search.Searcher[int] = search.IterativeBinarySearcher[int]{}
//	idx := s.Search([]int{1, 2, 3, 5, 8}, 8) // 4
package search

// NotFound is the index returned when the target does not occur in the slice.
const NotFound = -1
