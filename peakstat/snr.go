package peakstat

import "github.com/cwbudde/algo-peaks/spectrum"

// bothZeroSNR is reported when the noise floors on both sides of the apex
// are about zero: the peak is effectively noiseless and the ratio saturates.
const bothZeroSNR = 100

// SignalToNoise estimates the signal-to-noise ratio of a peak by scanning
// outward from the apex at index for the local intensity minima bracketing
// it. The target value is divided by the more conservative (larger) of the
// two noise floors; a floor that degenerates to zero falls back to the other
// side, and 100 is reported when both sides do.
//
// Returns 0 when target is about zero or index touches either array edge.
func SignalToNoise(target float64, intensity []float64, index int) float64 {
	size := len(intensity) - 1

	if spectrum.AboutZero(target) {
		return 0
	}

	if index <= 0 || index >= size {
		return 0
	}

	left := intensity[0]

	for i := index; i > 0; i-- {
		if intensity[i+1] >= intensity[i] && intensity[i-1] > intensity[i] {
			left = intensity[i]
			break
		}
	}

	right := intensity[size]

	for i := index; i < size; i++ {
		if intensity[i+1] >= intensity[i] && intensity[i-1] > intensity[i] {
			right = intensity[i]
			break
		}
	}

	if spectrum.AboutZero(left) {
		if spectrum.AboutZero(right) {
			return bothZeroSNR
		}

		return target / right
	}

	if right < left && !spectrum.AboutZero(right) {
		return target / right
	}

	return target / left
}
