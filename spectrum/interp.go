package spectrum

// Interp evaluates the piecewise-linear function defined by the sample points
// (x, y) at each abscissa in xs, writing the results into a new slice. x must
// be sorted ascending and len(x) == len(y). Abscissas outside the sampled
// range clamp to the first or last ordinate.
func Interp(xs, x, y []float64) []float64 {
	out := make([]float64, len(xs))
	if len(x) == 0 {
		return out
	}

	for i, xv := range xs {
		out[i] = interpAt(xv, x, y)
	}

	return out
}

func interpAt(xv float64, x, y []float64) float64 {
	n := len(x)
	if xv <= x[0] {
		return y[0]
	}

	if xv >= x[n-1] {
		return y[n-1]
	}

	j := NearestIndex(x, xv)
	if x[j] > xv {
		j--
	}

	dx := x[j+1] - x[j]
	if dx == 0 {
		return y[j]
	}

	return y[j] + (y[j+1]-y[j])*(xv-x[j])/dx
}
