package search

import "cmp"

// BinaryIterative searches the ascending slice s for x using a closed window
// [low, high] that halves on every probe, so it runs in O(log len(s)).
//
// Elements are compared with == and <, so a NaN target is never found, exactly
// as with Linear.
func BinaryIterative[T cmp.Ordered](s []T, x T) int {
	low, high := 0, len(s)-1

	for low <= high {
		// Avoids the overflow of (low+high)/2.
		mid := low + (high-low)/2

		switch {
		case s[mid] == x:
			return mid
		case x < s[mid]:
			high = mid - 1
		default:
			low = mid + 1
		}
	}

	return NotFound
}

// BinaryIterativeFunc is BinaryIterative with a caller-supplied three-way
// comparison. compare(element, target) must be negative when element sorts
// before target, zero when they are equal and positive otherwise, and s must be
// sorted consistently with it.
func BinaryIterativeFunc[T any](s []T, x T, compare func(a, b T) int) int {
	low, high := 0, len(s)-1

	for low <= high {
		mid := low + (high-low)/2

		switch c := compare(s[mid], x); {
		case c == 0:
			return mid
		case c > 0:
			high = mid - 1
		default:
			low = mid + 1
		}
	}

	return NotFound
}

// BinaryRecursive searches s[low:high+1] for x. It applies the same narrowing
// rule as BinaryIterative and always returns the same index for the same window.
//
// Bounds are clamped to the slice, so BinaryRecursive(s, 0, len(s)-1, x) is the
// whole-slice search and out-of-range bounds never panic.
func BinaryRecursive[T cmp.Ordered](s []T, low, high int, x T) int {
	return binaryRecursive(s, max(low, 0), min(high, len(s)-1), x)
}

// binaryRecursive expects low and high to already lie within s. Recursion depth
// is O(log len(s)).
func binaryRecursive[T cmp.Ordered](s []T, low, high int, x T) int {
	if low > high {
		return NotFound
	}

	mid := low + (high-low)/2

	if s[mid] == x {
		return mid
	}

	if x < s[mid] {
		return binaryRecursive(s, low, mid-1, x)
	}

	return binaryRecursive(s, mid+1, high, x)
}

// BinaryRecursiveFunc is BinaryRecursive with a caller-supplied three-way
// comparison, with the same contract as in BinaryIterativeFunc.
func BinaryRecursiveFunc[T any](s []T, low, high int, x T, compare func(a, b T) int) int {
	return binaryRecursiveFunc(s, max(low, 0), min(high, len(s)-1), x, compare)
}

func binaryRecursiveFunc[T any](s []T, low, high int, x T, compare func(a, b T) int) int {
	if low > high {
		return NotFound
	}

	mid := low + (high-low)/2

	c := compare(s[mid], x)
	if c == 0 {
		return mid
	}

	if c > 0 {
		return binaryRecursiveFunc(s, low, mid-1, x, compare)
	}

	return binaryRecursiveFunc(s, mid+1, high, x, compare)
}
