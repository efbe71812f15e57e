// Package peakstat computes quantitative descriptors of isolated peaks in a
// profile mass spectrum: signal-to-noise ratio, full width at half maximum,
// sub-sample peak center via Lorentzian fitting, and integrated peak area.
//
// All functions operate on paired m/z and intensity slices of equal length,
// with m/z strictly ascending, and identify a peak by the index of its apex
// sample. They are pure computations: no state is retained between calls and
// concurrent use on independent inputs is safe.
//
// Boundary conditions (apex at an array edge, about-zero apex intensity,
// degenerate regression input) return 0 rather than an error, matching
// long-standing spectrometry tooling behavior. Callers that need to
// distinguish "zero width" from "could not compute" should use [Describe],
// which reports the full descriptor set in one call, or check the boundary
// conditions themselves before calling.
package peakstat
