package fit

import (
	"errors"
	"math"
	"testing"
)

const tolerance = 1e-8

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestPolyFitLinear(t *testing.T) {
	x := []float64{0, 1, 2, 3}
	y := []float64{1, 3, 5, 7} // y = 2x + 1

	coeffs, residual, err := PolyFit(x, y, 2)
	if err != nil {
		t.Fatalf("PolyFit: %v", err)
	}

	if len(coeffs) != 2 {
		t.Fatalf("got %d coefficients, want 2", len(coeffs))
	}

	if !almostEqual(coeffs[0], 1, tolerance) || !almostEqual(coeffs[1], 2, tolerance) {
		t.Errorf("coefficients = %v, want [1 2]", coeffs)
	}

	if !almostEqual(residual, 0, tolerance) {
		t.Errorf("residual = %g, want 0", residual)
	}
}

func TestPolyFitQuadratic(t *testing.T) {
	x := []float64{-2, -1, 0, 1, 2}
	y := make([]float64, len(x))

	for i, v := range x {
		y[i] = v * v
	}

	coeffs, _, err := PolyFit(x, y, 3)
	if err != nil {
		t.Fatalf("PolyFit: %v", err)
	}

	want := []float64{0, 0, 1}
	for i := range want {
		if !almostEqual(coeffs[i], want[i], tolerance) {
			t.Errorf("coefficients = %v, want %v", coeffs, want)
			break
		}
	}
}

func TestLeastSquaresLinear(t *testing.T) {
	x := []float64{0, 1, 2, 3}
	y := []float64{1, 3, 5, 7}

	coeffs, residual, err := LeastSquares(x, y, 2)
	if err != nil {
		t.Fatalf("LeastSquares: %v", err)
	}

	if !almostEqual(coeffs[0], 1, tolerance) || !almostEqual(coeffs[1], 2, tolerance) {
		t.Errorf("coefficients = %v, want [1 2]", coeffs)
	}

	if !almostEqual(residual, 0, tolerance) {
		t.Errorf("residual = %g, want 0", residual)
	}
}

func TestLeastSquaresOverdetermined(t *testing.T) {
	// Points off the line: the least-squares slope/intercept are known.
	x := []float64{0, 1, 2}
	y := []float64{0, 1, 4}

	coeffs, _, err := LeastSquares(x, y, 2)
	if err != nil {
		t.Fatalf("LeastSquares: %v", err)
	}

	// Closed form: slope = 2, intercept = -1/3.
	if !almostEqual(coeffs[0], -1.0/3.0, tolerance) || !almostEqual(coeffs[1], 2, tolerance) {
		t.Errorf("coefficients = %v, want [-1/3 2]", coeffs)
	}
}

func TestWeightedPolyFitZeroWeight(t *testing.T) {
	// The zero-weighted outlier must not influence the fit.
	x := []float64{0, 1, 2, 3}
	y := []float64{1, 3, 5, 100}
	w := []float64{1, 1, 1, 0}

	coeffs, _, err := WeightedPolyFit(x, y, w, 2)
	if err != nil {
		t.Fatalf("WeightedPolyFit: %v", err)
	}

	if !almostEqual(coeffs[0], 1, 1e-6) || !almostEqual(coeffs[1], 2, 1e-6) {
		t.Errorf("coefficients = %v, want [1 2]", coeffs)
	}
}

func TestPolyFitSingular(t *testing.T) {
	x := []float64{1, 1, 1, 1}
	y := []float64{2, 2, 2, 2}

	_, _, err := PolyFit(x, y, 2)
	if !errors.Is(err, ErrSingular) {
		t.Errorf("err = %v, want ErrSingular", err)
	}
}

func TestPolyFitTooFewPoints(t *testing.T) {
	_, _, err := PolyFit([]float64{0, 1}, []float64{0, 1}, 2)
	if !errors.Is(err, ErrTooFewPoints) {
		t.Errorf("err = %v, want ErrTooFewPoints", err)
	}
}

func TestPolyFitLengthMismatch(t *testing.T) {
	_, _, err := PolyFit([]float64{0, 1, 2}, []float64{0, 1}, 1)
	if !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("err = %v, want ErrLengthMismatch", err)
	}
}

func TestEval(t *testing.T) {
	// 1 + 2x + 3x^2 at x = 2.
	got := Eval([]float64{1, 2, 3}, 2)
	if !almostEqual(got, 17, tolerance) {
		t.Errorf("Eval = %g, want 17", got)
	}

	if got := Eval(nil, 5); got != 0 {
		t.Errorf("Eval(nil) = %g, want 0", got)
	}
}
