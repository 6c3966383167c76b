package instrument

import (
	"github.com/amp-labs/amp-algorithms/compare"
	"go.uber.org/atomic"
)

// Counter tallies comparisons. It is safe for concurrent use, so one Counter may
// be shared by predicates running on different goroutines.
type Counter struct {
	n atomic.Int64
}

// Count returns the number of comparisons recorded so far.
func (c *Counter) Count() int64 {
	return c.n.Load()
}

// Reset zeroes the counter and returns the previous count.
func (c *Counter) Reset() int64 {
	return c.n.Swap(0)
}

func (c *Counter) inc() {
	c.n.Inc()
}

// Counting wraps order so every evaluation is recorded on the returned Counter.
func Counting[T any](order compare.Ordering[T]) (compare.Ordering[T], *Counter) {
	counter := &Counter{}

	return func(a, b T) bool {
		counter.inc()

		return order(a, b)
	}, counter
}

// CountingCompare is Counting for three-way comparisons, as taken by the search
// package's Func variants.
func CountingCompare[T any](compareFn func(a, b T) int) (func(a, b T) int, *Counter) {
	counter := &Counter{}

	return func(a, b T) int {
		counter.inc()

		return compareFn(a, b)
	}, counter
}
