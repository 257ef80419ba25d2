package core

import "math"

const defaultEpsilon = 1e-12

// ClampMax caps value at ceiling. There is no lower bound.
func ClampMax(value, ceiling float64) float64 {
	if value >= ceiling {
		return ceiling
	}

	return value
}

// NearlyEqual reports whether a and b are equal within eps, using a relative
// comparison once the magnitudes exceed one.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// IsFinite reports whether x is neither NaN nor an infinity.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// NonFinite returns the indices of all NaN or infinite samples in x.
func NonFinite(x []float64) []int {
	var idx []int
	for i, v := range x {
		if !IsFinite(v) {
			idx = append(idx, i)
		}
	}

	return idx
}

// SameLength reports whether all series have the length of the first one.
func SameLength(series ...[]float64) bool {
	if len(series) == 0 {
		return true
	}

	n := len(series[0])
	for _, s := range series[1:] {
		if len(s) != n {
			return false
		}
	}

	return true
}
