// Package spectrum provides the shared numeric primitives for working with
// profile mass spectra: paired m/z and intensity arrays with strictly
// ascending m/z values and parallel indexing.
//
// All functions treat their input slices as read-only and are safe for
// concurrent use on independent inputs.
package spectrum

import "math"

// Default tolerances for IsClose. These match the conventional relative and
// absolute tolerances used when comparing profile intensities, where values
// span many orders of magnitude.
const (
	DefaultRelTol = 1e-5
	DefaultAbsTol = 1e-8
)

// IsCloseTol reports whether x and y are equal within the given relative and
// absolute tolerances: |x-y| <= atol + rtol*|y|.
//
// Note the asymmetry: the relative term scales with y, so the comparison is
// anchored on the second argument.
func IsCloseTol(x, y, rtol, atol float64) bool {
	return math.Abs(x-y) <= atol+rtol*math.Abs(y)
}

// IsClose reports whether x and y are equal within the default tolerances.
func IsClose(x, y float64) bool {
	return IsCloseTol(x, y, DefaultRelTol, DefaultAbsTol)
}

// AboutZero reports whether x is indistinguishable from zero within the
// default tolerances. It is used throughout the peak estimators to guard
// divisions and to detect degenerate inputs.
func AboutZero(x float64) bool {
	return IsClose(x, 0)
}
