// Package check provides the scalar predicates used to validate risk score
// arguments before they reach a calculator.
//
// Every function is total: it always returns a definite answer and has no
// side effects, so callers may use them from any goroutine.
//
// # NaN
//
// DoubleInRange is written as !(x < min || x > max). Both comparisons are
// false for NaN, so NaN is reported as in range. Scores validated by the
// ClinRisk routines depend on this form, so it is kept as is.
// DoubleInRangeStrict is the opt-in alternative that rejects NaN.
package check

import "math"

// IsValidBoolean reports whether v is exactly 0 or 1.
func IsValidBoolean(v int) bool {
	return v == 0 || v == 1
}

// DoubleInRange reports whether min <= x <= max. NaN is always in range.
func DoubleInRange(x, min, max float64) bool {
	return !(x < min || x > max)
}

// DoubleInRangeStrict is DoubleInRange with NaN treated as out of range.
func DoubleInRangeStrict(x, min, max float64) bool {
	if math.IsNaN(x) {
		return false
	}
	return DoubleInRange(x, min, max)
}

// IntInRange reports whether min <= x <= max.
func IntInRange(x, min, max int) bool {
	return !(x < min || x > max)
}
