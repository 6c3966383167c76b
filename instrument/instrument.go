package instrument

import (
	"context"

	"github.com/amp-labs/amp-algorithms/compare"
	"github.com/amp-labs/amp-algorithms/logger"
)

// Observed wraps order so every evaluation increments the
// algorithm_comparisons_total counter under the given algorithm label.
func Observed[T any](algorithm string, order compare.Ordering[T]) compare.Ordering[T] {
	counter := comparisonsTotal.WithLabelValues(algorithm)

	return func(a, b T) bool {
		counter.Inc()

		return order(a, b)
	}
}

// ObservedCompare is Observed for three-way comparisons.
func ObservedCompare[T any](algorithm string, compareFn func(a, b T) int) func(a, b T) int {
	counter := comparisonsTotal.WithLabelValues(algorithm)

	return func(a, b T) int {
		counter.Inc()

		return compareFn(a, b)
	}
}

// Logged wraps order so every evaluation is logged at debug level, with its
// operands and result, on the logger obtained from ctx.
func Logged[T any](ctx context.Context, algorithm string, order compare.Ordering[T]) compare.Ordering[T] {
	log := logger.Get(logger.With(ctx, "algorithm", algorithm))

	return func(a, b T) bool {
		moved := order(a, b)

		log.Debug("comparison", "a", a, "b", b, "moved", moved)

		return moved
	}
}
