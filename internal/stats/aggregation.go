package stats

import "math"

// Sum returns the sum of a slice of float64 values
func Sum(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum
}

// Mean calculates the arithmetic mean of a slice of float64 values
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return Sum(values) / float64(len(values))
}

// WeightedMean calculates the weighted mean. Missing weights default
// to 1; a zero total weight falls back to the plain mean.
func WeightedMean(values, weights []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	var sumWeighted, sumWeights float64
	for i, v := range values {
		w := 1.0
		if i < len(weights) {
			w = weights[i]
		}
		sumWeighted += v * w
		sumWeights += w
	}

	if sumWeights == 0 {
		return Mean(values)
	}

	return sumWeighted / sumWeights
}

// Variance calculates the population variance
func Variance(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}

	mean := Mean(values)
	var sumSquaredDiff float64
	for _, v := range values {
		diff := v - mean
		sumSquaredDiff += diff * diff
	}

	return sumSquaredDiff / float64(len(values))
}

// StdDev calculates the population standard deviation
func StdDev(values []float64) float64 {
	return math.Sqrt(Variance(values))
}

// Min returns the smallest value, or 0 for an empty slice
func Min(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	min := values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// Max returns the largest value, or 0 for an empty slice
func Max(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}
