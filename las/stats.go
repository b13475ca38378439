package las

import (
	"math"

	"github.com/petralog/lascore/internal/util"
)

// Statistics are descriptive statistics over a series' values. All
// fields are nil for an empty series: a curve declared in the header
// but never logged is a valid, common case and must not abort a
// caller's pipeline.
type Statistics struct {
	Min  *float64
	Max  *float64
	Mean *float64
	// Std is the population standard deviation (divide by N, not
	// N-1), matching simple descriptive-statistics convention.
	Std *float64
}

// Statistics computes descriptive statistics over the series' values.
func (s *Series) Statistics() Statistics {
	return Describe(s.Values)
}

// Describe computes min, max, arithmetic mean and population standard
// deviation over values. An empty input yields all-nil fields, never
// an error.
func Describe(values []float64) Statistics {
	if len(values) == 0 {
		return Statistics{}
	}

	min, max := values[0], values[0]
	sum := 0.0
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
		sum += v
	}
	mean := sum / float64(len(values))

	sumSq := 0.0
	for _, v := range values {
		diff := v - mean
		sumSq += diff * diff
	}
	std := math.Sqrt(sumSq / float64(len(values)))

	return Statistics{
		Min:  util.Ptr(min),
		Max:  util.Ptr(max),
		Mean: util.Ptr(mean),
		Std:  util.Ptr(std),
	}
}
