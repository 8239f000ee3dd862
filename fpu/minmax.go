package fpu

import (
	"math"
)

// IsNaN returns true if x is a NaN.
func IsNaN(x float64) bool {
	return x != x
}

// Min returns the smallest element of l, or NaN if any element is a
// NaN. The fold aborts on the first NaN seen instead of relying on
// comparison semantics to carry it through. An empty l fails with
// ErrEmptyReduction.
func Min(l []float64) (float64, error) {
	if len(l) == 0 {
		return 0, ErrEmptyReduction
	}
	m := l[0]
	if IsNaN(m) {
		return math.NaN(), nil
	}
	for _, x := range l[1:] {
		if IsNaN(x) {
			return math.NaN(), nil
		}
		if x < m {
			m = x
		}
	}
	return m, nil
}

// Max returns the largest element of l, or NaN if any element is a
// NaN. An empty l fails with ErrEmptyReduction.
func Max(l []float64) (float64, error) {
	if len(l) == 0 {
		return 0, ErrEmptyReduction
	}
	m := l[0]
	if IsNaN(m) {
		return math.NaN(), nil
	}
	for _, x := range l[1:] {
		if IsNaN(x) {
			return math.NaN(), nil
		}
		if x > m {
			m = x
		}
	}
	return m, nil
}
