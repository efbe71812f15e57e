package peakstat

import (
	"math"
	"testing"
)

func TestDescribe(t *testing.T) {
	mz, intensity := lorentzianProfile(99, 0.01, 201, 100, 0.5, 1000)
	apex := apexIndex(intensity)

	d := Describe(mz, intensity, apex)

	if d.Index != apex {
		t.Errorf("Index = %d, want %d", d.Index, apex)
	}

	if math.Abs(d.MZ-100) > 0.001 {
		t.Errorf("MZ = %g, want ~100", d.MZ)
	}

	if math.Abs(d.Intensity-1000) > 1e-9 {
		t.Errorf("Intensity = %g, want 1000", d.Intensity)
	}

	if d.SignalToNoise <= 0 {
		t.Errorf("SignalToNoise = %g, want > 0", d.SignalToNoise)
	}

	// Half-max crossings sit 0.25 m/z out on each side; interpolation on the
	// 0.01-spaced grid resolves them to well under one sample.
	if math.Abs(d.FullWidthAtHalfMax-0.5) > 0.01 {
		t.Errorf("FullWidthAtHalfMax = %g, want ~0.5", d.FullWidthAtHalfMax)
	}

	if math.Abs(d.LeftWidth+d.RightWidth-d.FullWidthAtHalfMax) > 1e-9 {
		t.Errorf("LeftWidth %g + RightWidth %g != width %g", d.LeftWidth, d.RightWidth, d.FullWidthAtHalfMax)
	}

	if d.Area <= 0 {
		t.Errorf("Area = %g, want > 0", d.Area)
	}
}

func TestDescribeOutOfRange(t *testing.T) {
	mz := []float64{1, 2, 3}
	intensity := []float64{1, 5, 1}

	d := Describe(mz, intensity, -1)
	if d.MZ != 0 || d.FullWidthAtHalfMax != 0 {
		t.Errorf("out-of-range apex produced %+v", d)
	}
}

func TestDescribeIdempotent(t *testing.T) {
	mz, intensity := lorentzianProfile(99, 0.01, 201, 100.002, 0.3, 500)
	apex := apexIndex(intensity)

	first := Describe(mz, intensity, apex)
	second := Describe(mz, intensity, apex)

	if first != second {
		t.Errorf("results differ between identical calls:\n%+v\n%+v", first, second)
	}
}
