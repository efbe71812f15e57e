package spectrum

import "sort"

// NearestIndex returns the index of the sample in values closest to target.
// values must be sorted ascending. Returns -1 for an empty slice.
func NearestIndex(values []float64, target float64) int {
	n := len(values)
	if n == 0 {
		return -1
	}

	i := sort.SearchFloat64s(values, target)
	if i == 0 {
		return 0
	}

	if i == n {
		return n - 1
	}

	// values[i-1] < target <= values[i]; pick the closer neighbor,
	// preferring the lower index on exact ties.
	if target-values[i-1] <= values[i]-target {
		return i - 1
	}

	return i
}

// NearestIndexFrom returns the index of the sample in values closest to
// target, narrowing the binary search using hint as a starting point. The
// hint only bounds the searched segment; the result is identical to
// NearestIndex for any in-range hint.
func NearestIndexFrom(values []float64, target float64, hint int) int {
	n := len(values)
	if n == 0 {
		return -1
	}

	if hint < 0 || hint >= n {
		return NearestIndex(values, target)
	}

	var lo, sub int
	if values[hint] <= target {
		lo = hint
		sub = NearestIndex(values[hint:], target)
	} else {
		sub = NearestIndex(values[:hint+1], target)
	}

	return lo + sub
}
