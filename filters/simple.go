package filters

import (
	"sort"

	"github.com/cwbudde/algo-peaks/spectrum"
)

// MedianIntensity zeroes every intensity below the median intensity.
type MedianIntensity struct{}

// Filter implements [Filter].
func (MedianIntensity) Filter(mz, intensity []float64) ([]float64, []float64) {
	if len(intensity) == 0 {
		return mz, intensity
	}

	m := median(intensity)

	out := make([]float64, len(intensity))
	for i, v := range intensity {
		if v >= m {
			out[i] = v
		}
	}

	return mz, out
}

// MeanBelowMean zeroes every intensity below the mean of the intensities
// that lie below the overall mean. This suppresses the broad low-level
// baseline while keeping moderate signal intact.
type MeanBelowMean struct{}

// Filter implements [Filter].
func (MeanBelowMean) Filter(mz, intensity []float64) ([]float64, []float64) {
	if len(intensity) == 0 {
		return mz, intensity
	}

	mean := meanOf(intensity)

	var (
		sum   float64
		count int
	)

	for _, v := range intensity {
		if v < mean {
			sum += v
			count++
		}
	}

	threshold := mean
	if count > 0 {
		threshold = sum / float64(count)
	}

	out := make([]float64, len(intensity))
	for i, v := range intensity {
		if v >= threshold {
			out[i] = v
		}
	}

	return mz, out
}

// NPercentOfMax zeroes every intensity below the given fraction of the
// maximum intensity.
type NPercentOfMax struct {
	Percent float64
}

// Filter implements [Filter].
func (f NPercentOfMax) Filter(mz, intensity []float64) ([]float64, []float64) {
	if len(intensity) == 0 {
		return mz, intensity
	}

	p := f.Percent
	if p <= 0 {
		p = 0.001
	}

	maxVal := maxOf(intensity)
	if maxVal <= 0 {
		return mz, intensity
	}

	out := make([]float64, len(intensity))
	for i, v := range intensity {
		if v/maxVal >= p {
			out[i] = v
		}
	}

	return mz, out
}

// ConstantThreshold drops every sample whose intensity does not exceed the
// threshold. Unlike the masking filters it removes samples from both arrays.
type ConstantThreshold struct {
	Threshold float64
}

// Filter implements [Filter].
func (f ConstantThreshold) Filter(mz, intensity []float64) ([]float64, []float64) {
	outMZ := make([]float64, 0, len(mz))
	outIntensity := make([]float64, 0, len(intensity))

	for i, v := range intensity {
		if v > f.Threshold {
			outMZ = append(outMZ, mz[i])
			outIntensity = append(outIntensity, v)
		}
	}

	return outMZ, outIntensity
}

// MaximumScaler rescales the intensities so the maximum does not exceed the
// threshold. Spectra already within range pass through unchanged.
type MaximumScaler struct {
	Threshold float64
}

// Filter implements [Filter].
func (f MaximumScaler) Filter(mz, intensity []float64) ([]float64, []float64) {
	if len(intensity) == 0 {
		return mz, intensity
	}

	maxVal := maxOf(intensity)
	if maxVal <= f.Threshold {
		return mz, intensity
	}

	scale := f.Threshold / maxVal

	out := make([]float64, len(intensity))
	for i, v := range intensity {
		out[i] = v * scale
	}

	return mz, out
}

// LinearResampling reinterpolates the spectrum onto a uniform m/z grid with
// the given spacing, spanning the input m/z range.
type LinearResampling struct {
	Spacing float64
}

// Filter implements [Filter].
func (f LinearResampling) Filter(mz, intensity []float64) ([]float64, []float64) {
	if len(mz) == 0 || f.Spacing <= 0 {
		return mz, intensity
	}

	lo := mz[0]
	hi := mz[len(mz)-1]

	count := int((hi-lo)/f.Spacing) + 1

	grid := make([]float64, count)
	for i := range grid {
		grid[i] = lo + float64(i)*f.Spacing
	}

	return grid, spectrum.Interp(grid, mz, intensity)
}

func median(values []float64) float64 {
	cp := make([]float64, len(values))
	copy(cp, values)
	sort.Float64s(cp)

	n := len(cp)
	if n%2 == 1 {
		return cp[n/2]
	}

	return (cp[n/2-1] + cp[n/2]) / 2
}

func meanOf(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}

func maxOf(values []float64) float64 {
	maxVal := values[0]
	for _, v := range values[1:] {
		if v > maxVal {
			maxVal = v
		}
	}

	return maxVal
}
