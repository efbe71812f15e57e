package filters

import (
	"fmt"

	"github.com/cwbudde/algo-peaks/fit"
)

// SavitzkyGolay smooths the intensity array with a Savitzky-Golay filter: a
// least-squares polynomial of order PolyOrder is fitted over each window of
// WindowLength samples, and the center sample is replaced by the fit (or its
// Deriv-th derivative). Negative results are clipped to zero and zero-valued
// samples are dropped from both arrays, so the output may be shorter than
// the input.
//
// A zero value uses the defaults: window length 5, order 3, no derivative.
type SavitzkyGolay struct {
	WindowLength int
	PolyOrder    int
	Deriv        int
}

// Filter implements [Filter]. Invalid parameter combinations (window not
// exceeding order+1 after normalization) pass the arrays through unchanged.
func (f SavitzkyGolay) Filter(mz, intensity []float64) ([]float64, []float64) {
	if len(intensity) == 0 {
		return mz, intensity
	}

	kernel, err := f.kernel()
	if err != nil {
		return mz, intensity
	}

	smoothed, err := correlateSame(intensity, kernel)
	if err != nil {
		return mz, intensity
	}

	outMZ := make([]float64, 0, len(mz))
	outIntensity := make([]float64, 0, len(intensity))

	for i, v := range smoothed {
		if v > 0 {
			outMZ = append(outMZ, mz[i])
			outIntensity = append(outIntensity, v)
		}
	}

	return outMZ, outIntensity
}

// kernel derives the correlation kernel: the contribution of each window
// sample to the Deriv-th coefficient of the least-squares polynomial over
// symmetric integer offsets, scaled by Deriv factorial. Fitting is linear in
// the ordinates, so one unit-impulse fit per tap recovers the full kernel.
func (f SavitzkyGolay) kernel() ([]float64, error) {
	window := f.WindowLength
	if window <= 0 {
		window = 5
	}

	if window%2 == 0 {
		window++
	}

	order := f.PolyOrder
	if order <= 0 {
		order = 3
	}

	deriv := f.Deriv
	if deriv < 0 || deriv > order {
		return nil, fmt.Errorf("filters: derivative %d out of range for order %d", f.Deriv, order)
	}

	if window < order+2 {
		return nil, fmt.Errorf("filters: window %d too short for order %d", window, order)
	}

	half := window / 2

	offsets := make([]float64, window)
	for i := range offsets {
		offsets[i] = float64(i - half)
	}

	impulse := make([]float64, window)
	kernel := make([]float64, window)

	scale := 1.0
	for k := 2; k <= deriv; k++ {
		scale *= float64(k)
	}

	for i := range window {
		impulse[i] = 1

		coeffs, _, err := fit.LeastSquares(offsets, impulse, order+1)
		if err != nil {
			return nil, err
		}

		kernel[i] = coeffs[deriv] * scale
		impulse[i] = 0
	}

	return kernel, nil
}
