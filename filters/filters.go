// Package filters provides composable preprocessing filters over raw profile
// spectra, plus a named registry so pipelines can be configured by string.
//
// A filter maps a paired (m/z, intensity) array set to a new pair. Filters
// never modify their inputs; those that only rescale or mask intensities
// return the m/z slice unchanged.
//
// The registered names mirror long-standing spectrometry tooling:
//
//	median, mean_below_mean, savitsky_golay, tenth_percent_of_max,
//	one_percent_of_max, over_10, over_100, extreme_scale_limiter,
//	linear_resampling, fticr_baseline
package filters

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownFilter is returned when a name has no registered filter.
var ErrUnknownFilter = errors.New("filters: unknown filter")

// Filter transforms a paired m/z and intensity array set.
type Filter interface {
	Filter(mz, intensity []float64) (outMZ, outIntensity []float64)
}

// Func adapts a plain function to the Filter interface.
type Func func(mz, intensity []float64) ([]float64, []float64)

// Filter calls f.
func (f Func) Filter(mz, intensity []float64) ([]float64, []float64) {
	return f(mz, intensity)
}

var (
	registryMu sync.RWMutex
	registry   = map[string]Filter{}
)

// Register associates a filter with a name, replacing any previous entry.
func Register(name string, f Filter) {
	registryMu.Lock()
	defer registryMu.Unlock()

	registry[name] = f
}

// ByName returns the filter registered under name.
func ByName(name string) (Filter, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	f, ok := registry[name]

	return f, ok
}

// Names returns the registered filter names in sorted order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Transform applies the given filters to the arrays in order and returns the
// final pair. With no filters it returns the inputs unchanged.
func Transform(mz, intensity []float64, fs ...Filter) ([]float64, []float64) {
	for _, f := range fs {
		mz, intensity = f.Filter(mz, intensity)
	}

	return mz, intensity
}

// TransformNamed applies the registered filters identified by names in order.
func TransformNamed(mz, intensity []float64, names ...string) ([]float64, []float64, error) {
	for _, name := range names {
		f, ok := ByName(name)
		if !ok {
			return nil, nil, fmt.Errorf("%w: %q", ErrUnknownFilter, name)
		}

		mz, intensity = f.Filter(mz, intensity)
	}

	return mz, intensity, nil
}

func init() {
	Register("median", MedianIntensity{})
	Register("mean_below_mean", MeanBelowMean{})
	Register("savitsky_golay", SavitzkyGolay{})
	Register("tenth_percent_of_max", NPercentOfMax{Percent: 0.001})
	Register("one_percent_of_max", NPercentOfMax{Percent: 0.01})
	Register("over_10", ConstantThreshold{Threshold: 10})
	Register("over_100", ConstantThreshold{Threshold: 100})
	Register("extreme_scale_limiter", MaximumScaler{Threshold: 30e3})
	Register("linear_resampling", LinearResampling{Spacing: 0.01})
	Register("fticr_baseline", FTICRBaseline{})
}
