package peakstat

import (
	"math"

	"github.com/cwbudde/algo-peaks/spectrum"
)

// lineSearchIterations caps each direction of the center line search, bounding
// the fit to at most ~100 cost evaluations.
const lineSearchIterations = 50

// LorentzianFit refines the peak center position to sub-sample accuracy by
// minimizing the sum of squared residuals between the observed intensities
// and a Lorentzian profile
//
//	amplitude / (1 + (2*(x-center)/fwhm)^2)
//
// with the amplitude fixed at the apex intensity and the width fixed at the
// supplied FWHM estimate. Only the center is optimized, by a greedy
// bidirectional line search stepping 1/100th of the local sample spacing.
//
// A boundary apex leaves no room to fit: index < 1 returns the apex position
// unchanged and an apex at the last index returns the last position. An
// about-zero fwhm also returns the apex position unchanged, since the model
// is undefined there.
func LorentzianFit(mz, intensity []float64, index int, fwhm float64) float64 {
	if index < 1 {
		return mz[index]
	}

	if index >= len(mz)-1 {
		return mz[len(mz)-1]
	}

	amplitude := intensity[index]
	vo := mz[index]
	step := math.Abs((vo - mz[index+1]) / 100)

	if spectrum.AboutZero(fwhm) {
		return vo
	}

	lo := spectrum.NearestIndexFrom(mz, vo-fwhm, index) + 1
	hi := spectrum.NearestIndexFrom(mz, vo+fwhm, index) - 1

	if lo < 0 {
		lo = 0
	}

	if hi > len(mz)-1 {
		hi = len(mz) - 1
	}

	current := lorentzianResidual(mz, intensity, amplitude, fwhm, vo, lo, hi)

	for range lineSearchIterations {
		last := current
		vo += step

		current = lorentzianResidual(mz, intensity, amplitude, fwhm, vo, lo, hi)
		if current > last {
			break
		}
	}

	vo -= step
	current = lorentzianResidual(mz, intensity, amplitude, fwhm, vo, lo, hi)

	for range lineSearchIterations {
		last := current
		vo -= step

		current = lorentzianResidual(mz, intensity, amplitude, fwhm, vo, lo, hi)
		if current > last {
			break
		}
	}

	return vo + step
}

// lorentzianResidual accumulates the squared residuals of the Lorentzian
// model against the observed intensities over the index window [lo, hi].
func lorentzianResidual(mz, intensity []float64, amplitude, fwhm, vo float64, lo, hi int) float64 {
	var sum float64

	for i := lo; i <= hi; i++ {
		u := 2 * (mz[i] - vo) / fwhm
		d := amplitude/(1+u*u) - intensity[i]
		sum += d * d
	}

	return sum
}
