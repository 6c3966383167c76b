// Package sorting implements insertion sort and selection sort over slices.
//
// Both algorithms sort in place: the slice passed in is reordered and the same
// slice is returned. Direction is controlled by a [compare.Ordering]; the plain
// variants ([Insertion], [Selection]) default to [compare.Ascending] and the Func
// variants accept any strict ordering:
//
//	v := []int{5, 3, 8, 1, 2}
//	sorting.InsertionFunc(v, compare.Descending[int]) // v is now [8 5 3 2 1]
//
// Element access goes through a bounds-checked [sequence.Sequence], so an
// indexing fault surfaces as an error wrapping errors.ErrIndexOutOfRange instead
// of a panic.
//
// Insertion sort is stable and runs in O(n) on sorted input, O(n²) otherwise.
// Selection sort always performs O(n²) comparisons and at most n-1 swaps, and is
// not stable.
//
// Calls on distinct slices may run concurrently and may share one ordering, as
// long as the ordering is itself safe for concurrent use. All orderings in the
// compare and sortable packages are.
package sorting
