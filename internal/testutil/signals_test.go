package testutil

import (
	"math"
	"testing"
)

func TestDeterministicSine(t *testing.T) {
	s := DeterministicSine(10, 150, 1.0, 150)
	if len(s) != 150 {
		t.Fatalf("len = %d, want 150", len(s))
	}
	// First sample of a sine at phase 0 should be 0.
	if math.Abs(s[0]) > 1e-15 {
		t.Fatalf("s[0] = %v, want 0", s[0])
	}
	// All values in [-1, 1].
	for i, v := range s {
		if v < -1 || v > 1 {
			t.Fatalf("s[%d] = %v out of range", i, v)
		}
	}
}

func TestDeterministicSineReproducible(t *testing.T) {
	a := DeterministicSine(7, 150, 0.5, 100)
	b := DeterministicSine(7, 150, 0.5, 100)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("non-deterministic at index %d", i)
		}
	}
}

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)
	if len(a) != 64 {
		t.Fatalf("len = %d, want 64", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise not deterministic at index %d", i)
		}
	}
}

func TestDeterministicNoiseDifferentSeeds(t *testing.T) {
	a := DeterministicNoise(1, 1.0, 16)
	b := DeterministicNoise(2, 1.0, 16)
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestDC(t *testing.T) {
	d := DC(0.5, 4)
	for i, v := range d {
		if v != 0.5 {
			t.Fatalf("DC[%d] = %v, want 0.5", i, v)
		}
	}
}

func TestRamp(t *testing.T) {
	s := make([]float64, 10)
	Ramp(s, 4, 2, 0, 1)

	want := []float64{0, 0, 0, 0, 0.5, 1, 1, 1, 1, 1}
	RequireSliceNearlyEqual(t, s, want, 1e-15)
}

func TestPulse(t *testing.T) {
	s := DC(0.2, 8)
	Pulse(s, 2, 3, 1)

	want := []float64{0.2, 0.2, 1.2, 1.2, 1.2, 0.2, 0.2, 0.2}
	RequireSliceNearlyEqual(t, s, want, 1e-15)
}

func TestPulseClipped(t *testing.T) {
	s := make([]float64, 4)
	Pulse(s, 2, 10, 1)

	want := []float64{0, 0, 1, 1}
	RequireSliceNearlyEqual(t, s, want, 1e-15)
}
