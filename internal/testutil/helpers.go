// Package testutil provides reusable test helper functions for motion tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance = 1e-6
	AngleTolerance   = 1e-4
	CoarseTolerance  = 1e-2
)

// AssertInDeltaSlice verifies that two slices match element-wise within
// tolerance.
func AssertInDeltaSlice(t *testing.T, want, got []float64, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Len(t, got, len(want), msgAndArgs...) {
		return false
	}
	for i := range want {
		if !assert.InDelta(t, want[i], got[i], tolerance,
			"mismatch at i=%d: got %f, want %f", i, got[i], want[i]) {
			return false
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

// AssertNoSignFlip verifies that a trace approaches target from one side
// without ever crossing it, the signature of a critically damped or
// overdamped system.
func AssertNoSignFlip(t *testing.T, trace []float64, target float64, msgAndArgs ...any) bool {
	t.Helper()
	if len(trace) == 0 {
		return true
	}
	sign := math.Signbit(target - trace[0])
	for i, v := range trace {
		if v == target {
			continue
		}
		if math.Signbit(target-v) != sign {
			return assert.Fail(t, "trace crossed target",
				"trace[%d]=%f overshot target %f", i, v, target)
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [min, max].
func AssertAllInRange(t *testing.T, s []float64, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, "value out of range",
				"s[%d]=%f is outside range [%f, %f]", i, v, minVal, maxVal)
		}
	}
	return true
}
