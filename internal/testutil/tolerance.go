package testutil

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

// RequireClose fails t unless got and want agree within absTol or relTol.
func RequireClose(t *testing.T, name string, got, want, absTol, relTol float64) {
	t.Helper()
	if !scalar.EqualWithinAbsOrRel(got, want, absTol, relTol) {
		t.Fatalf("%s: got %v, want %v (diff %v)", name, got, want, math.Abs(got-want))
	}
}

// RequireSliceClose fails t if got and want differ in length or if any
// element pair is outside absTol and relTol.
func RequireSliceClose(t *testing.T, got, want []float64, absTol, relTol float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if !scalar.EqualWithinAbsOrRel(got[i], want[i], absTol, relTol) {
			t.Fatalf("index %d: got %v, want %v (diff %v)", i, got[i], want[i], math.Abs(got[i]-want[i]))
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data ...float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}
