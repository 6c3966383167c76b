package search

// Linear scans s from index 0 and returns the index of the first element equal
// to x, or NotFound. It runs in O(len(s)) and stops at the first match.
func Linear[T comparable](s []T, x T) int {
	for i, v := range s {
		if v == x {
			return i
		}
	}

	return NotFound
}

// LinearFunc returns the index of the first element for which match reports
// true, or NotFound. A nil match finds nothing.
func LinearFunc[T any](s []T, match func(T) bool) int {
	if match == nil {
		return NotFound
	}

	for i, v := range s {
		if match(v) {
			return i
		}
	}

	return NotFound
}
