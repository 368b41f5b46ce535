package stats

import "math"

// ShannonEntropyNats calculates the Shannon entropy of a distribution
// in nats (log base e). Values are frequency counts or probabilities;
// they are normalized internally. Zero-count categories contribute
// nothing.
func ShannonEntropyNats(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sum := Sum(values)
	if sum == 0 {
		return 0
	}

	var entropy float64
	for _, v := range values {
		if v > 0 {
			p := v / sum
			entropy -= p * math.Log(p)
		}
	}

	return entropy
}
