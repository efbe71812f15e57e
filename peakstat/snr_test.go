package peakstat

import (
	"math"
	"testing"
)

func TestSignalToNoiseBoundaries(t *testing.T) {
	intensity := []float64{1, 5, 10, 5, 1}

	if got := SignalToNoise(10, intensity, 0); got != 0 {
		t.Errorf("index 0: got %g, want 0", got)
	}

	if got := SignalToNoise(10, intensity, len(intensity)-1); got != 0 {
		t.Errorf("last index: got %g, want 0", got)
	}

	if got := SignalToNoise(0, intensity, 2); got != 0 {
		t.Errorf("zero target: got %g, want 0", got)
	}
}

func TestSignalToNoiseBracketingMinima(t *testing.T) {
	// Local minima at index 1 (value 1) and index 7 (value 1).
	intensity := []float64{3, 1, 2, 5, 10, 5, 2, 1, 3}

	got := SignalToNoise(10, intensity, 4)
	if math.Abs(got-10) > 1e-12 {
		t.Errorf("got %g, want 10", got)
	}
}

func TestSignalToNoisePrefersSmallerRightFloor(t *testing.T) {
	// Left floor 2, right floor 1: the smaller nonzero right floor is used.
	intensity := []float64{5, 2, 4, 10, 4, 1, 3}

	got := SignalToNoise(10, intensity, 3)
	if math.Abs(got-10) > 1e-12 {
		t.Errorf("got %g, want 10", got)
	}
}

func TestSignalToNoiseZeroLeftFloor(t *testing.T) {
	// Left minimum is exactly zero, right floor is 2.
	intensity := []float64{2, 0, 1, 10, 6, 2, 3}

	got := SignalToNoise(10, intensity, 3)
	if math.Abs(got-5) > 1e-12 {
		t.Errorf("got %g, want 5", got)
	}
}

func TestSignalToNoiseBothFloorsZero(t *testing.T) {
	intensity := []float64{1, 0, 10, 0, 1}

	got := SignalToNoise(10, intensity, 2)
	if got != 100 {
		t.Errorf("got %g, want 100", got)
	}
}

func TestSignalToNoiseMonotoneFlanks(t *testing.T) {
	// No interior minima: the array edges serve as noise floors.
	intensity := []float64{1, 2, 5, 10, 5, 2, 1}

	got := SignalToNoise(10, intensity, 3)
	if math.Abs(got-10) > 1e-12 {
		t.Errorf("got %g, want 10", got)
	}
}
