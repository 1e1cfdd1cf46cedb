// Package floatutils provides utilities for working with floats
package floatutils

// MaxSlice gets the maximum value and the indices of the maximum
// values in a slice of float64. MaxSlice panics on an empty slice.
func MaxSlice(values []float64) (max float64, indices []int) {
	max, indices = values[0], []int{0}

	for i, value := range values {
		if value > max {
			max = value
			indices = []int{i}
		} else if value == max && i != 0 {
			indices = append(indices, i)
		}
	}
	return
}

// ArgMax returns the index of the maximum value in a slice of float64.
// Ties are broken by the first index holding the maximum, so ArgMax is
// deterministic for a given slice.
func ArgMax(values []float64) int {
	_, indices := MaxSlice(values)
	return indices[0]
}

// Max calculates and returns the maximum float64 in a list
func Max(floats ...float64) float64 {
	max := floats[0]
	for _, val := range floats {
		if val > max {
			max = val
		}
	}
	return max
}
