package peakstat

import (
	"math"

	"github.com/cwbudde/algo-peaks/fit"
	"github.com/cwbudde/algo-peaks/spectrum"
)

const (
	// maxScanWindow is the hard half-window, in m/z units, beyond which the
	// half-maximum scan stops. It guards against runaway scans across sparse
	// or irregular sampling.
	maxScanWindow = 5.0

	// cleanSNR is the signal-to-noise ratio above which a local intensity dip
	// during the scan is trusted as real structure rather than noise.
	cleanSNR = 4.0

	// minFitStretch is the minimum number of contiguous samples between apex
	// and stop required for the regression fallback.
	minFitStretch = 3
)

// FullWidthAtHalfMax measures the full width at half maximum of the peak
// whose apex is at index. signalToNoise, when known, relaxes the scan's
// noise heuristics: with a ratio of 4 or more, local dips are treated as
// genuine structure instead of stopping the scan.
//
// Returns 0 when the apex intensity is about zero, the apex touches either
// array edge, or a degenerate (constant-intensity) stretch makes the edge
// regression impossible.
func FullWidthAtHalfMax(mz, intensity []float64, index int, signalToNoise float64) float64 {
	width, _, _ := WidthBounds(mz, intensity, index, signalToNoise)
	return width
}

// WidthBounds is FullWidthAtHalfMax exposing the half-maximum crossing
// positions on each side of the apex. A side that did not resolve reports 0,
// in which case the width assumes peak symmetry and doubles the other side's
// half-width.
func WidthBounds(mz, intensity []float64, index int, signalToNoise float64) (width, left, right float64) {
	if index < 1 || index > len(mz)-2 {
		return 0, 0, 0
	}

	peak := intensity[index]
	if spectrum.AboutZero(peak) {
		return 0, 0, 0
	}

	half := peak / 2
	mass := mz[index]

	left, ok := halfMaxCrossing(mz, intensity, index, half, signalToNoise, -1)
	if !ok {
		return 0, 0, 0
	}

	right, ok = halfMaxCrossing(mz, intensity, index, half, signalToNoise, +1)
	if !ok {
		return 0, 0, 0
	}

	switch {
	case spectrum.AboutZero(left):
		width = 2 * math.Abs(mass-right)
	case spectrum.AboutZero(right):
		width = 2 * math.Abs(mass-left)
	default:
		width = math.Abs(right - left)
	}

	return width, left, right
}

// halfMaxCrossing scans outward from the apex in the given direction
// (-1 toward index 0, +1 toward the end) for the half-maximum crossing. It
// returns the crossing position, or 0 if the scan ran off the array without
// stopping. ok is false only for the degenerate constant-intensity
// regression stretch, which invalidates the whole measurement.
func halfMaxCrossing(mz, intensity []float64, apex int, half, signalToNoise float64, dir int) (pos float64, ok bool) {
	n := len(mz)
	mass := mz[apex]

	for i := apex; i >= 0 && i < n; i += dir {
		y1 := intensity[i]
		x1 := mz[i]

		below := y1 < half
		clamped := math.Abs(mass-x1) > maxScanWindow
		dip := outwardDip(intensity, i, dir, y1) && signalToNoise < cleanSNR

		if !below && !clamped && !dip {
			continue
		}

		// Inward neighbor, toward the apex.
		y2 := intensity[i-dir]
		x2 := mz[i-dir]

		if below && !spectrum.AboutZero(y2-y1) {
			return x1 - (x1-x2)*(half-y1)/(y2-y1), true
		}

		return refineStop(mz, intensity, apex, i, half, x1)
	}

	return 0, true
}

// outwardDip reports whether both samples outward of i have higher intensity
// than the current one. Positions past the array edge count as dips, so a
// scan that reaches the edge always stops there.
func outwardDip(intensity []float64, i, dir int, y1 float64) bool {
	first := i + dir
	second := i + 2*dir

	if first >= 0 && first < len(intensity) && intensity[first] <= y1 {
		return false
	}

	if second >= 0 && second < len(intensity) && intensity[second] <= y1 {
		return false
	}

	return true
}

// refineStop handles a scan stopped by the window clamp or the noise dip
// while intensity is still at or above half maximum. The stop position is the
// first estimate; when the stretch back to the apex is long enough, a
// degree-1 fit of position against intensity (axes deliberately swapped, so
// the fit can be evaluated at the half-maximum ordinate) refines it.
func refineStop(mz, intensity []float64, apex, stop int, half, first float64) (float64, bool) {
	points := stop - apex
	if points < 0 {
		points = -points
	}
	points++

	if points < minFitStretch {
		return first, true
	}

	xs := make([]float64, 0, points)
	ys := make([]float64, 0, points)

	step := 1
	if stop < apex {
		step = -1
	}

	identical := true

	for i := apex; ; i += step {
		xs = append(xs, intensity[i])
		ys = append(ys, mz[i])

		if intensity[i] != intensity[apex] {
			identical = false
		}

		if i == stop {
			break
		}
	}

	if identical {
		return 0, false
	}

	coeffs, _, err := fit.PolyFit(xs, ys, 2)
	if err != nil {
		// Degenerate abscissas; keep the unrefined stop position.
		return first, true
	}

	return fit.Eval(coeffs, half), true
}
