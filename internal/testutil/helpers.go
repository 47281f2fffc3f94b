// Package testutil provides reusable test helper functions for timeline
// and easing tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	// ExactTolerance covers values that differ only by floating rounding.
	ExactTolerance = 1e-12

	// QuadTolerance is the accepted quadrature error for the default
	// integration step of 0.01.
	QuadTolerance = 1e-3
)

// AssertRelativeError verifies that actual is within tolerance of
// expected, relative to the magnitude of expected. Falls back to absolute
// comparison when expected is 0.
func AssertRelativeError(t *testing.T, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()

	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}

	relErr := math.Abs(actual-expected) / math.Abs(expected)
	if relErr > tolerance {
		return assert.Fail(t, "relative error too large",
			"expected %v, got %v (relative error %v > %v)", expected, actual, relErr, tolerance)
	}

	return true
}

// AssertMonotonic verifies that a slice is non-decreasing.
func AssertMonotonic(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()

	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return assert.Fail(t, "slice not monotonic",
				"s[%d]=%f < s[%d]=%f", i, s[i], i-1, s[i-1])
		}
	}

	return true
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()

	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}

	return true
}

// LeftRiemann is an independent reference implementation of the
// fixed-step left-endpoint quadrature, for cross-checking cached query
// paths without going through the code under test.
func LeftRiemann(f func(float64) float64, a, b, step float64) float64 {
	if b <= a {
		return 0
	}

	var sum float64

	t := a
	for t+step < b {
		sum += f(t) * step
		t += step
	}

	return sum + f(t)*(b-t)
}
