package instrument

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// comparisonsTotal counts comparisons made through Observed and ObservedCompare.
//
// Labels:
//   - algorithm: the name the caller passed in, e.g. "insertion" or "binary_iterative".
//     Keep the set of names small and fixed; every distinct value is a new time series.
//
// Usage example in dashboards:
//   - rate(algorithm_comparisons_total[5m]) by (algorithm)
var comparisonsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
	Name: "algorithm_comparisons_total",
	Help: "The total number of element comparisons made by searching and sorting algorithms",
}, []string{"algorithm"})
