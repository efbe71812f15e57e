package peakstat

// Area integrates the intensity over the index range [start, stop] by the
// trapezoidal rule. The caller must ensure 0 <= start < stop < len(mz); no
// bounds validation is performed.
func Area(mz, intensity []float64, start, stop int) float64 {
	var area float64

	for i := start + 1; i <= stop; i++ {
		dx := mz[i] - mz[i-1]
		area += intensity[i-1]*dx + (intensity[i]-intensity[i-1])*dx/2
	}

	return area
}
