// Package demandseries holds the historical demand series type consumed by
// the forecasting engine along with helpers for generating synthetic series.
package demandseries

import (
	"math/rand/v2"
	"time"

	"gonum.org/v1/gonum/floats"
)

// MonthsPerYear is the nominal series length, one observation per calendar
// month over a trailing year.
const MonthsPerYear = 12

// Series is an ordered sequence of non-negative monthly demand observations.
// Order is chronological and significant.
type Series []float64

// New returns a Series copied from the input values.
func New(values []float64) Series {
	s := make(Series, len(values))
	copy(s, values)
	return s
}

// Copy returns an independent copy of the series.
func (s Series) Copy() Series {
	out := make(Series, len(s))
	copy(out, s)
	return out
}

// Total returns the sum of all observations.
func (s Series) Total() float64 {
	return floats.Sum(s)
}

// AllZero reports whether every observation is zero. An empty series counts
// as all zero.
func (s Series) AllZero() bool {
	for _, v := range s {
		if v != 0 {
			return false
		}
	}
	return true
}

// Truncate returns the first n observations in order, or the series itself
// if it is already no longer than n.
func (s Series) Truncate(n int) Series {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// MonthLabels returns n month names starting from the given month, wrapping
// across the year boundary.
func MonthLabels(start time.Month, n int) []string {
	labels := make([]string, 0, n)
	for i := 0; i < n; i++ {
		m := time.Month((int(start)-1+i)%MonthsPerYear + 1)
		labels = append(labels, m.String())
	}
	return labels
}

// GenerateConstY returns a series of n equal values.
func GenerateConstY(n int, val float64) Series {
	y := make(Series, 0, n)
	for i := 0; i < n; i++ {
		y = append(y, val)
	}
	return y
}

// GenerateLinearY returns a series starting at start and growing by step per
// period.
func GenerateLinearY(n int, start, step float64) Series {
	y := make(Series, 0, n)
	for i := 0; i < n; i++ {
		y = append(y, start+step*float64(i))
	}
	return y
}

// GenerateNoisyLinearY returns a linear series with gaussian noise of the
// given scale, clamped at zero to keep demand non-negative.
func GenerateNoisyLinearY(n int, start, step, noiseScale float64) Series {
	y := make(Series, 0, n)
	for i := 0; i < n; i++ {
		v := start + step*float64(i) + rand.NormFloat64()*noiseScale
		if v < 0 {
			v = 0
		}
		y = append(y, v)
	}
	return y
}
