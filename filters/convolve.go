package filters

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// fftThreshold is the kernel length above which smoothing switches from the
// direct sliding-window loop to a padded FFT convolution.
const fftThreshold = 64

// correlateSame cross-correlates signal with kernel and returns the centered
// portion with the same length as signal. The signal is edge-replicated by
// half the kernel length so the output has no ramp-in at the boundaries.
func correlateSame(signal, kernel []float64) ([]float64, error) {
	if len(signal) == 0 || len(kernel) == 0 {
		return nil, fmt.Errorf("filters: empty convolution input")
	}

	m := len(kernel)
	half := (m - 1) / 2

	padded := make([]float64, len(signal)+2*half)
	for i := range half {
		padded[i] = signal[0]
		padded[len(padded)-1-i] = signal[len(signal)-1]
	}
	copy(padded[half:], signal)

	if m <= fftThreshold {
		return correlateDirect(padded, kernel, len(signal)), nil
	}

	// Convolution with the reversed kernel is correlation.
	rev := make([]float64, m)
	for i, v := range kernel {
		rev[m-1-i] = v
	}

	full, err := convolveFFT(padded, rev)
	if err != nil {
		return nil, err
	}

	return full[m-1 : m-1+len(signal)], nil
}

// correlateDirect slides the kernel across the padded signal, vectorizing
// each window product through an elementwise multiply block.
func correlateDirect(padded, kernel []float64, outLen int) []float64 {
	m := len(kernel)
	out := make([]float64, outLen)
	prod := make([]float64, m)

	for i := range out {
		vecmath.MulBlock(prod, kernel, padded[i:i+m])

		var sum float64
		for _, v := range prod {
			sum += v
		}

		out[i] = sum
	}

	return out
}

// convolveFFT performs linear convolution through a single zero-padded FFT.
// Smoothing kernels are short relative to the spectra they are applied to,
// so one padded transform beats block processing here.
func convolveFFT(a, b []float64) ([]float64, error) {
	outLen := len(a) + len(b) - 1
	size := nextPowerOf2(outLen)

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("filters: fft plan: %w", err)
	}

	fa := make([]complex128, size)
	for i, v := range a {
		fa[i] = complex(v, 0)
	}

	fb := make([]complex128, size)
	for i, v := range b {
		fb[i] = complex(v, 0)
	}

	if err := plan.Forward(fa, fa); err != nil {
		return nil, fmt.Errorf("filters: forward fft: %w", err)
	}

	if err := plan.Forward(fb, fb); err != nil {
		return nil, fmt.Errorf("filters: forward fft: %w", err)
	}

	for i := range fa {
		fa[i] *= fb[i]
	}

	if err := plan.Inverse(fa, fa); err != nil {
		return nil, fmt.Errorf("filters: inverse fft: %w", err)
	}

	out := make([]float64, outLen)
	for i := range out {
		out[i] = real(fa[i])
	}

	return out, nil
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
