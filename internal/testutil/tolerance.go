package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RelDiff returns |got/want - 1|.
func RelDiff(got, want float64) float64 {
	return math.Abs(got/want - 1)
}

// RequireRelNear fails t if got differs from want by more than tol
// (relative tolerance).
func RequireRelNear(t *testing.T, got, want, tol float64) {
	t.Helper()
	if d := RelDiff(got, want); !(d <= tol) {
		t.Fatalf("got %v, want %v (rel diff %v > tol %v)", got, want, d, tol)
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxRelDiff returns the maximum relative difference between two slices.
// Returns an error if the slices differ in length.
func MaxRelDiff(got, want []float64) (float64, error) {
	if len(got) != len(want) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(got), len(want))
	}
	maxDiff := 0.0
	for i := range got {
		d := RelDiff(got[i], want[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
