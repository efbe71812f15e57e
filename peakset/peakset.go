// Package peakset holds collections of fitted peaks ordered by m/z and
// provides tolerance-bounded search over them.
package peakset

import "sort"

// FittedPeak is one centroided peak with its fitted descriptors.
type FittedPeak struct {
	MZ                 float64
	Intensity          float64
	SignalToNoise      float64
	FullWidthAtHalfMax float64
	LeftWidth          float64
	RightWidth         float64
	Area               float64
	Index              int
}

// Set is an immutable collection of fitted peaks sorted by ascending m/z.
type Set struct {
	peaks []FittedPeak
}

// New builds a Set from the given peaks. The input is copied and sorted by
// m/z; the caller's slice is not retained.
func New(peaks []FittedPeak) *Set {
	cp := make([]FittedPeak, len(peaks))
	copy(cp, peaks)

	sort.Slice(cp, func(i, j int) bool { return cp[i].MZ < cp[j].MZ })

	return &Set{peaks: cp}
}

// Len returns the number of peaks in the set.
func (s *Set) Len() int {
	return len(s.peaks)
}

// Peak returns the i-th peak in m/z order.
func (s *Set) Peak(i int) FittedPeak {
	return s.peaks[i]
}

// All returns a copy of the peaks in m/z order.
func (s *Set) All() []FittedPeak {
	out := make([]FittedPeak, len(s.peaks))
	copy(out, s.peaks)

	return out
}

// Nearest returns the peak whose m/z is closest to mz. ok is false for an
// empty set.
func (s *Set) Nearest(mz float64) (peak FittedPeak, ok bool) {
	i := s.nearestIndex(mz)
	if i < 0 {
		return FittedPeak{}, false
	}

	return s.peaks[i], true
}

// Has reports whether the set contains a peak within tol m/z units of mz.
func (s *Set) Has(mz, tol float64) bool {
	i := s.nearestIndex(mz)
	if i < 0 {
		return false
	}

	d := s.peaks[i].MZ - mz
	if d < 0 {
		d = -d
	}

	return d <= tol
}

// Between returns the peaks with lo <= m/z <= hi in ascending order. The
// returned slice shares backing storage with the set; callers must not
// modify it.
func (s *Set) Between(lo, hi float64) []FittedPeak {
	start := sort.Search(len(s.peaks), func(i int) bool { return s.peaks[i].MZ >= lo })
	end := sort.Search(len(s.peaks), func(i int) bool { return s.peaks[i].MZ > hi })

	return s.peaks[start:end]
}

func (s *Set) nearestIndex(mz float64) int {
	n := len(s.peaks)
	if n == 0 {
		return -1
	}

	i := sort.Search(n, func(i int) bool { return s.peaks[i].MZ >= mz })
	if i == 0 {
		return 0
	}

	if i == n {
		return n - 1
	}

	if mz-s.peaks[i-1].MZ <= s.peaks[i].MZ-mz {
		return i - 1
	}

	return i
}
