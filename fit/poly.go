// Package fit provides weighted polynomial least-squares regression over
// small point sets, solved through the normal equations.
//
// It backs the half-maximum edge extrapolation in package peakstat and the
// Savitzky-Golay kernel construction in package filters, and is usable
// standalone for any low-degree fit over a handful of samples.
package fit

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by the regression functions.
var (
	// ErrSingular indicates that the normal-equations matrix could not be
	// inverted. This typically means the abscissas are degenerate (too many
	// repeated values for the requested term count).
	ErrSingular = errors.New("fit: singular normal equations")

	// ErrTooFewPoints indicates that the sample count is insufficient for
	// the requested number of terms.
	ErrTooFewPoints = errors.New("fit: too few points for term count")

	// ErrLengthMismatch indicates input slices of differing lengths.
	ErrLengthMismatch = errors.New("fit: input length mismatch")
)

// PolyFit fits a polynomial with nterms coefficients (degree nterms-1) to
// the sample points (x, y) with uniform weights, returning the coefficients
// in ascending power order.
//
// For historical compatibility the solve runs over nterms+1 power rows and
// delivers the first nterms entries of the solution vector, so the fit
// behaves like a degree-nterms solve truncated by one term. New code wanting
// a conventional fit should use [LeastSquares].
//
// The second return value is the accumulated signed residual sum
// sum(y[i] - fit(x[i])) over the delivered coefficients. Despite its
// historical use as a fit-quality scalar it is not a mean-squared error:
// positive and negative residuals cancel. It is preserved in this form for
// compatibility with existing callers.
func PolyFit(x, y []float64, nterms int) ([]float64, float64, error) {
	return WeightedPolyFit(x, y, uniformWeights(len(x)), nterms)
}

// WeightedPolyFit is [PolyFit] with per-point weights w.
//
// The design matrix has nterms+1 rows: row 0 is the weight vector and each
// subsequent row is the previous row multiplied elementwise by x. The
// solution vector solves (A*At)^-1 * A * (w*y); its first nterms entries are
// returned. A singular normal-equations matrix yields ErrSingular rather
// than NaN coefficients.
func WeightedPolyFit(x, y, w []float64, nterms int) ([]float64, float64, error) {
	if nterms < 1 {
		return nil, 0, fmt.Errorf("fit: invalid term count %d", nterms)
	}

	if len(x) <= nterms {
		return nil, 0, fmt.Errorf("%w: %d points, %d terms", ErrTooFewPoints, len(x), nterms)
	}

	b, err := solveNormal(x, y, w, nterms+1)
	if err != nil {
		return nil, 0, err
	}

	coeffs := b[:nterms]

	return coeffs, signedResidual(coeffs, x, y), nil
}

// LeastSquares fits a conventional least-squares polynomial with nterms
// coefficients (degree nterms-1) to the sample points (x, y) with uniform
// weights. Unlike [PolyFit] the solve runs over exactly nterms power rows.
func LeastSquares(x, y []float64, nterms int) ([]float64, float64, error) {
	if nterms < 1 {
		return nil, 0, fmt.Errorf("fit: invalid term count %d", nterms)
	}

	if len(x) < nterms {
		return nil, 0, fmt.Errorf("%w: %d points, %d terms", ErrTooFewPoints, len(x), nterms)
	}

	coeffs, err := solveNormal(x, y, uniformWeights(len(x)), nterms)
	if err != nil {
		return nil, 0, err
	}

	return coeffs, signedResidual(coeffs, x, y), nil
}

// Eval evaluates a polynomial with ascending-power coefficients at x using
// Horner's method.
func Eval(coeffs []float64, x float64) float64 {
	var v float64
	for i := len(coeffs) - 1; i >= 0; i-- {
		v = v*x + coeffs[i]
	}

	return v
}

// solveNormal builds the rows x n weighted power design matrix and solves
// the normal equations for the full solution vector.
func solveNormal(x, y, w []float64, rows int) ([]float64, error) {
	n := len(x)
	if len(y) != n || len(w) != n {
		return nil, ErrLengthMismatch
	}

	// Design matrix: a[0] = w, a[j] = a[j-1] .* x.
	a := make([][]float64, rows)
	a[0] = w

	for j := 1; j < rows; j++ {
		a[j] = make([]float64, n)
		vecmath.MulBlock(a[j], a[j-1], x)
	}

	// Normal-equations matrix Z = A * At (symmetric).
	z := make([][]float64, rows)
	for j := range z {
		z[j] = make([]float64, rows)
	}

	for j := range rows {
		for k := j; k < rows; k++ {
			var sum float64
			for i := range n {
				sum += a[j][i] * a[k][i]
			}

			z[j][k] = sum
			z[k][j] = sum
		}
	}

	inv, err := invert(z)
	if err != nil {
		return nil, err
	}

	// Right-hand side v = A * (w .* y).
	wy := make([]float64, n)
	vecmath.MulBlock(wy, w, y)

	v := make([]float64, rows)
	for j := range v {
		var sum float64
		for i := range n {
			sum += a[j][i] * wy[i]
		}

		v[j] = sum
	}

	b := make([]float64, rows)
	for j := range b {
		for k := range rows {
			b[j] += inv[j][k] * v[k]
		}
	}

	return b, nil
}

func signedResidual(coeffs, x, y []float64) float64 {
	var residual float64
	for i := range x {
		residual += y[i] - Eval(coeffs, x[i])
	}

	return residual
}

func uniformWeights(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 1
	}

	return w
}

const pivotEpsilon = 1e-300

// invert performs Gauss-Jordan elimination with partial pivoting on a square
// matrix, returning its inverse. The input is not modified.
func invert(m [][]float64) ([][]float64, error) {
	n := len(m)

	// Augmented working copy [m | I].
	work := make([][]float64, n)
	for i := range work {
		work[i] = make([]float64, 2*n)
		copy(work[i], m[i])
		work[i][n+i] = 1
	}

	for col := range n {
		pivot := col
		for r := col + 1; r < n; r++ {
			if abs(work[r][col]) > abs(work[pivot][col]) {
				pivot = r
			}
		}

		if abs(work[pivot][col]) < pivotEpsilon {
			return nil, ErrSingular
		}

		work[col], work[pivot] = work[pivot], work[col]

		p := work[col][col]
		for c := col; c < 2*n; c++ {
			work[col][c] /= p
		}

		for r := range n {
			if r == col {
				continue
			}

			f := work[r][col]
			if f == 0 {
				continue
			}

			for c := col; c < 2*n; c++ {
				work[r][c] -= f * work[col][c]
			}
		}
	}

	inv := make([][]float64, n)
	for i := range inv {
		inv[i] = make([]float64, n)
		copy(inv[i], work[i][n:])
	}

	return inv, nil
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}

	return v
}
