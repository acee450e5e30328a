// Package reduce provides the statistics applied to one target's collected
// round results.
//
// Every function takes a non-empty slice and returns a derived value. The
// slice belongs to the reducer: functions that need an ordering (Median,
// ExclAvg) sort it in place, since the orchestrator hands each sequence to
// exactly one reducer and discards it afterwards.
package reduce

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// Func reduces one target's round results to a statistic.
type Func[T, R any] func([]T) R

// Number covers the result types the arithmetic reducers accept.
// time.Duration satisfies it through ~int64.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Extremes pairs the smallest and largest observed result.
type Extremes[T any] struct {
	Min T `json:"min" yaml:"min"`
	Max T `json:"max" yaml:"max"`
}

// Spread pairs an average with a deviation measure.
type Spread[T any] struct {
	Avg T       `json:"avg" yaml:"avg"`
	Dev float64 `json:"dev" yaml:"dev"`
}

// Max returns the largest element.
func Max[T cmp.Ordered](s []T) T {
	return slices.Max(s)
}

// Min returns the smallest element.
func Min[T cmp.Ordered](s []T) T {
	return slices.Min(s)
}

// MinMax returns the smallest and largest element in one pass.
func MinMax[T cmp.Ordered](s []T) Extremes[T] {
	ext := Extremes[T]{Min: s[0], Max: s[0]}
	for _, v := range s[1:] {
		if v < ext.Min {
			ext.Min = v
		}
		if v > ext.Max {
			ext.Max = v
		}
	}
	return ext
}

// Sum returns the total of all elements.
func Sum[T Number](s []T) T {
	var total T
	for _, v := range s {
		total += v
	}
	return total
}

// Avg returns the arithmetic mean. Division follows T, so integer result
// types truncate.
func Avg[T Number](s []T) T {
	return Sum(s) / T(len(s))
}

// Median sorts the slice and returns the element at index len/2. For an
// even count that is the upper of the two middle elements, never their
// average.
func Median[T cmp.Ordered](s []T) T {
	slices.Sort(s)
	return s[len(s)/2]
}

// Stddev returns the population standard deviation. Deviations are taken
// against the truncated Avg, and squared in float64 so that nanosecond
// counts cannot overflow.
func Stddev[T Number](s []T) float64 {
	mean := Avg(s)
	var acc float64
	for _, v := range s {
		d := float64(v) - float64(mean)
		acc += d * d
	}
	return math.Sqrt(acc / float64(len(s)))
}

// NSD returns the standard deviation normalized by the average
// (coefficient of variation).
func NSD[T Number](s []T) float64 {
	return Stddev(s) / float64(Avg(s))
}

// AvgStddev combines Avg and Stddev.
func AvgStddev[T Number](s []T) Spread[T] {
	return Spread[T]{Avg: Avg(s), Dev: Stddev(s)}
}

// AvgNSD combines Avg and NSD.
func AvgNSD[T Number](s []T) Spread[T] {
	return Spread[T]{Avg: Avg(s), Dev: NSD(s)}
}

// ExclAvg returns a reducer averaging the sequence with the n smallest and
// n largest elements removed. When 2n leaves nothing to average it falls
// back to Median. A negative n panics at construction time, before any
// timing runs.
func ExclAvg[T Number](n int) Func[T, T] {
	if n < 0 {
		panic(fmt.Sprintf("reduce: ExclAvg trim count must be non-negative, got %d", n))
	}
	return func(s []T) T {
		if 2*n >= len(s) {
			return Median(s)
		}
		slices.Sort(s)
		return Avg(s[n : len(s)-n])
	}
}

// Full returns a copy of the sequence, for callers wanting the raw data.
func Full[T any](s []T) []T {
	return slices.Clone(s)
}
