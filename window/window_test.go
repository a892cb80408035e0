package window

import (
	"math"
	"testing"
)

const tolerance = 1e-12

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestGenerate_Rectangular(t *testing.T) {
	coeffs := Generate(TypeRectangular, 8)
	for i, c := range coeffs {
		if c != 1 {
			t.Errorf("index %d: got %g, want 1", i, c)
		}
	}
}

func TestGenerate_HannSymmetric(t *testing.T) {
	coeffs := Generate(TypeHann, 9)

	if !almostEqual(coeffs[0], 0, tolerance) {
		t.Errorf("first: got %g, want 0", coeffs[0])
	}
	if !almostEqual(coeffs[8], 0, tolerance) {
		t.Errorf("last: got %g, want 0", coeffs[8])
	}
	if !almostEqual(coeffs[4], 1, tolerance) {
		t.Errorf("center: got %g, want 1", coeffs[4])
	}

	// Symmetry.
	for i := 0; i < 4; i++ {
		if !almostEqual(coeffs[i], coeffs[8-i], tolerance) {
			t.Errorf("symmetry at %d: %g vs %g", i, coeffs[i], coeffs[8-i])
		}
	}
}

func TestGenerate_HannPeriodic(t *testing.T) {
	coeffs := Generate(TypeHann, 8, WithPeriodic())

	if !almostEqual(coeffs[0], 0, tolerance) {
		t.Errorf("first: got %g, want 0", coeffs[0])
	}
	if !almostEqual(coeffs[4], 1, tolerance) {
		t.Errorf("midpoint: got %g, want 1", coeffs[4])
	}
	// Periodic form does not return to zero at the last sample.
	if coeffs[7] == 0 {
		t.Error("periodic last sample must be nonzero")
	}
}

func TestGenerate_HammingEndpoints(t *testing.T) {
	coeffs := Generate(TypeHamming, 11)
	if !almostEqual(coeffs[0], 0.08, tolerance) {
		t.Errorf("first: got %g, want 0.08", coeffs[0])
	}
	if !almostEqual(coeffs[10], 0.08, tolerance) {
		t.Errorf("last: got %g, want 0.08", coeffs[10])
	}
}

func TestGenerate_Degenerate(t *testing.T) {
	if got := Generate(TypeHann, 0); got != nil {
		t.Errorf("length 0: got %v, want nil", got)
	}
	got := Generate(TypeHann, 1)
	if len(got) != 1 || got[0] != 1 {
		t.Errorf("length 1: got %v, want [1]", got)
	}
}

func TestApplyCoefficients(t *testing.T) {
	samples := []float64{1, 2, 3}
	coeffs := []float64{2, 0.5, 1}

	out, err := ApplyCoefficients(samples, coeffs)
	if err != nil {
		t.Fatalf("ApplyCoefficients: %v", err)
	}
	want := []float64{2, 1, 3}
	for i := range want {
		if !almostEqual(out[i], want[i], tolerance) {
			t.Errorf("index %d: got %g, want %g", i, out[i], want[i])
		}
	}

	if _, err := ApplyCoefficients(samples, coeffs[:2]); err == nil {
		t.Error("length mismatch: expected error")
	}
}

func TestParseType(t *testing.T) {
	cases := map[string]Type{
		"":            TypeRectangular,
		"rect":        TypeRectangular,
		"rectangular": TypeRectangular,
		"hann":        TypeHann,
		"hamming":     TypeHamming,
		"blackman":    TypeBlackman,
	}
	for name, want := range cases {
		got, err := ParseType(name)
		if err != nil {
			t.Fatalf("ParseType(%q): %v", name, err)
		}
		if got != want {
			t.Errorf("ParseType(%q): got %v, want %v", name, got, want)
		}
	}

	if _, err := ParseType("kaiser"); err == nil {
		t.Error("unknown window: expected error")
	}
}

func TestCoherentGain(t *testing.T) {
	if got := CoherentGain(Generate(TypeRectangular, 16)); !almostEqual(got, 1, tolerance) {
		t.Errorf("rectangular gain: got %g, want 1", got)
	}
	// Periodic Hann has exact coherent gain 0.5.
	if got := CoherentGain(Generate(TypeHann, 16, WithPeriodic())); !almostEqual(got, 0.5, 1e-9) {
		t.Errorf("hann gain: got %g, want 0.5", got)
	}
	if got := CoherentGain(nil); got != 0 {
		t.Errorf("empty: got %g, want 0", got)
	}
}
