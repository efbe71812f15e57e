package peakstat

import (
	"math"

	"github.com/cwbudde/algo-peaks/spectrum"
)

// Descriptor holds the full set of fitted descriptors for one peak.
//
// MZ is the Lorentzian-refined center position; Index and Intensity refer to
// the apex sample the descriptors were computed from. A zero width or area
// indicates the corresponding measurement could not be made (boundary apex,
// about-zero intensity, degenerate fit).
type Descriptor struct {
	MZ                 float64
	Intensity          float64
	SignalToNoise      float64
	FullWidthAtHalfMax float64
	LeftWidth          float64
	RightWidth         float64
	Index              int
	Area               float64
}

// Describe computes every descriptor for the peak whose apex is at index:
// signal-to-noise, full width at half maximum with per-side half-widths, the
// refined center position, and the peak area integrated over the
// FWHM-bounded window around the refined center.
func Describe(mz, intensity []float64, index int) Descriptor {
	d := Descriptor{Index: index}
	if index < 0 || index >= len(mz) {
		return d
	}

	apexMZ := mz[index]
	d.MZ = apexMZ
	d.Intensity = intensity[index]
	d.SignalToNoise = SignalToNoise(d.Intensity, intensity, index)

	width, left, right := WidthBounds(mz, intensity, index, d.SignalToNoise)
	d.FullWidthAtHalfMax = width

	if spectrum.AboutZero(left) {
		d.LeftWidth = width / 2
	} else {
		d.LeftWidth = math.Abs(apexMZ - left)
	}

	if spectrum.AboutZero(right) {
		d.RightWidth = width / 2
	} else {
		d.RightWidth = math.Abs(right - apexMZ)
	}

	d.MZ = LorentzianFit(mz, intensity, index, width)

	if width > 0 {
		lo := spectrum.NearestIndexFrom(mz, d.MZ-width, index)
		hi := spectrum.NearestIndexFrom(mz, d.MZ+width, index)

		if lo < hi {
			d.Area = Area(mz, intensity, lo, hi)
		}
	}

	return d
}
