package filters

import "math"

// FTICRBaseline removes the noise baseline characteristic of FTICR spectra.
// The m/z range is divided into regions of RegionWidth; within each region,
// windows of WindowLength m/z are tiled and the noise floor is estimated as
// the mean of the per-window minimum intensities. Scale times that floor is
// subtracted from every intensity in the region, clipping at zero.
//
// A zero value uses the defaults: window length 1.0 m/z, region width 10
// m/z, scale 5.
type FTICRBaseline struct {
	WindowLength float64
	RegionWidth  float64
	Scale        float64
}

// Filter implements [Filter].
func (f FTICRBaseline) Filter(mz, intensity []float64) ([]float64, []float64) {
	if len(mz) == 0 {
		return mz, intensity
	}

	windowLength := f.WindowLength
	if windowLength <= 0 {
		windowLength = 1
	}

	regionWidth := f.RegionWidth
	if regionWidth <= 0 {
		regionWidth = 10
	}

	scale := f.Scale
	if scale <= 0 {
		scale = 5
	}

	out := make([]float64, len(intensity))
	copy(out, intensity)

	for start := 0; start < len(mz); {
		end := regionEnd(mz, start, regionWidth)

		floor := noiseFloor(mz, intensity, start, end, windowLength)

		for i := start; i < end; i++ {
			out[i] -= scale * floor
			if out[i] < 0 {
				out[i] = 0
			}
		}

		start = end
	}

	return mz, out
}

// regionEnd returns the exclusive end index of the region beginning at start
// and spanning width m/z units.
func regionEnd(mz []float64, start int, width float64) int {
	limit := mz[start] + width

	end := start + 1
	for end < len(mz) && mz[end] < limit {
		end++
	}

	return end
}

// noiseFloor estimates the noise level over [start, end) as the mean of the
// minimum intensity in each tiled window. Windows that contain only zero
// intensities are ignored, so fully blanked stretches do not drag the
// estimate down.
func noiseFloor(mz, intensity []float64, start, end int, windowLength float64) float64 {
	var (
		sum   float64
		count int
	)

	for i := start; i < end; {
		limit := mz[i] + windowLength

		minVal := math.Inf(1)
		for ; i < end && mz[i] < limit; i++ {
			if intensity[i] < minVal {
				minVal = intensity[i]
			}
		}

		if !math.IsInf(minVal, 1) && minVal > 0 {
			sum += minVal
			count++
		}
	}

	if count == 0 {
		return 0
	}

	return sum / float64(count)
}
