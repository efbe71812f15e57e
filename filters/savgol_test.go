package filters

import (
	"math"
	"testing"
)

func TestSavitzkyGolayKernel(t *testing.T) {
	kernel, err := SavitzkyGolay{WindowLength: 5, PolyOrder: 3}.kernel()
	if err != nil {
		t.Fatalf("kernel: %v", err)
	}

	// Classic window-5 cubic smoothing taps: (-3, 12, 17, 12, -3)/35.
	want := []float64{-3.0 / 35, 12.0 / 35, 17.0 / 35, 12.0 / 35, -3.0 / 35}

	for i := range want {
		if math.Abs(kernel[i]-want[i]) > 1e-12 {
			t.Errorf("kernel = %v, want %v", kernel, want)
			break
		}
	}
}

func TestSavitzkyGolayPreservesCubic(t *testing.T) {
	n := 20

	mz := make([]float64, n)
	intensity := make([]float64, n)
	for i := range n {
		x := float64(i)
		mz[i] = x
		intensity[i] = (x + 5) * (x + 5) * (x + 5)
	}

	outMZ, outIntensity := SavitzkyGolay{}.Filter(mz, intensity)

	if len(outMZ) != n {
		t.Fatalf("len = %d, want %d", len(outMZ), n)
	}

	// A cubic is reproduced exactly away from the replicated edges.
	for i := 2; i < n-2; i++ {
		if math.Abs(outIntensity[i]-intensity[i]) > 1e-6 {
			t.Errorf("out[%d] = %g, want %g", i, outIntensity[i], intensity[i])
		}
	}
}

func TestSavitzkyGolayFirstDerivative(t *testing.T) {
	n := 20

	mz := make([]float64, n)
	intensity := make([]float64, n)
	for i := range n {
		x := float64(i)
		mz[i] = x
		intensity[i] = x * x
	}

	kernel, err := SavitzkyGolay{WindowLength: 5, PolyOrder: 3, Deriv: 1}.kernel()
	if err != nil {
		t.Fatalf("kernel: %v", err)
	}

	deriv, err := correlateSame(intensity, kernel)
	if err != nil {
		t.Fatalf("correlateSame: %v", err)
	}

	// d/dx x^2 = 2x on the unit-spaced grid, exact away from the edges.
	for i := 2; i < n-2; i++ {
		if math.Abs(deriv[i]-2*mz[i]) > 1e-9 {
			t.Errorf("deriv[%d] = %g, want %g", i, deriv[i], 2*mz[i])
		}
	}
}

func TestSavitzkyGolayInvalidWindow(t *testing.T) {
	mz := []float64{1, 2, 3}
	intensity := []float64{1, 2, 1}

	outMZ, outIntensity := SavitzkyGolay{WindowLength: 3, PolyOrder: 3}.Filter(mz, intensity)

	if &outMZ[0] != &mz[0] || &outIntensity[0] != &intensity[0] {
		t.Error("invalid window should pass arrays through unchanged")
	}
}
