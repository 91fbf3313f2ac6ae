package stats

import (
	"math"
	"sort"
)

// Mean returns the arithmetic mean, or 0 for an empty slice.
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range data {
		sum += v
	}
	return sum / float64(len(data))
}

// MeanStd computes the mean and the population standard deviation (divide by
// N, the same denominator convention as the mean). A single element yields
// std = 0.
func MeanStd(data []float64) (float64, float64) {
	if len(data) == 0 {
		return 0, 0
	}
	mean := Mean(data)
	if len(data) == 1 {
		return mean, 0
	}
	varSum := 0.0
	for _, v := range data {
		d := v - mean
		varSum += d * d
	}
	return mean, math.Sqrt(varSum / float64(len(data)))
}

// MinMax returns the smallest and largest value. Both are 0 for an empty
// slice.
func MinMax(data []float64) (float64, float64) {
	if len(data) == 0 {
		return 0, 0
	}
	min, max := data[0], data[0]
	for _, v := range data[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// Sorted returns an ascending copy of data, leaving the input untouched.
func Sorted(data []float64) []float64 {
	out := make([]float64, len(data))
	copy(out, data)
	sort.Float64s(out)
	return out
}

// Percentile computes the q-th percentile (0..100) of ascending-sorted data
// using linear interpolation between the two nearest ranks.
func Percentile(sorted []float64, q float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return sorted[0]
	}
	rank := q / 100 * float64(n-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo < 0 {
		lo = 0
	}
	if hi > n-1 {
		hi = n - 1
	}
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

// Skewness computes the third standardized central moment. Returns 0 when the
// standard deviation is 0 (the distribution is a point mass).
func Skewness(data []float64, mean, std float64) float64 {
	if len(data) == 0 || std == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range data {
		d := v - mean
		sum += d * d * d
	}
	return sum / float64(len(data)) / (std * std * std)
}

// ExcessKurtosis computes the fourth standardized central moment minus 3, so
// a normal distribution scores 0. Returns 0 when the standard deviation is 0.
func ExcessKurtosis(data []float64, mean, std float64) float64 {
	if len(data) == 0 || std == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range data {
		d := v - mean
		sum += d * d * d * d
	}
	return sum/float64(len(data))/(std*std*std*std) - 3
}
