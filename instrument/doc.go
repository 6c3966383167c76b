// Package instrument wraps orderings and comparisons so the work done by a
// search or sort can be observed: counted in-process, exported to Prometheus or
// logged at debug level.
//
// Counting is the usual way to see textbook complexity bounds in practice:
//
//	order, counter := instrument.Counting(compare.Ascending[int])
//	sorting.SelectionFunc(v, order)
//	counter.Count() // n(n-1)/2 for selection sort, whatever the input
//
// The wrappers add no behaviour of their own: the wrapped predicate's result is
// always returned unchanged.
package instrument
