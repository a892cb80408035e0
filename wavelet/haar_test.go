package wavelet

import (
	"math"
	"testing"
)

const tolerance = 1e-12

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// naiveHaar is the direct O(n*s) reference implementation.
func naiveHaar(signal []float64, scale int) []float64 {
	out := make([]float64, len(signal))
	half := scale / 2
	norm := 1 / math.Sqrt(float64(scale))
	for i := 0; i+scale <= len(signal); i++ {
		var lead, trail float64
		for j := i; j < i+half; j++ {
			lead += signal[j]
		}
		for j := i + half; j < i+scale; j++ {
			trail += signal[j]
		}
		out[i] = (trail - lead) * norm
	}
	return out
}

func TestHaar_ZeroSignal(t *testing.T) {
	signal := make([]float64, 100)
	out, err := Haar(signal, 20)
	if err != nil {
		t.Fatalf("Haar: %v", err)
	}
	for i, v := range out {
		if v != 0 {
			t.Errorf("index %d: got %g, want 0", i, v)
		}
	}
}

func TestHaar_StepResponse(t *testing.T) {
	// Upward unit step at sample 50.
	signal := make([]float64, 100)
	for i := 50; i < 100; i++ {
		signal[i] = 1
	}

	const scale = 20
	out, err := Haar(signal, scale)
	if err != nil {
		t.Fatalf("Haar: %v", err)
	}

	// Maximum response when the half-window boundary aligns with the step:
	// window [40, 60), lead sum 0, trail sum 10.
	peakPos := 50 - scale/2
	want := 10 / math.Sqrt(scale)
	if !almostEqual(out[peakPos], want, tolerance) {
		t.Errorf("peak: got %g, want %g", out[peakPos], want)
	}

	// Response must be positive for an upward step.
	if out[peakPos] <= 0 {
		t.Errorf("step response sign: got %g, want > 0", out[peakPos])
	}

	// Far from the step the response is zero.
	if !almostEqual(out[0], 0, tolerance) {
		t.Errorf("flat region: got %g, want 0", out[0])
	}
}

func TestHaar_MatchesNaive(t *testing.T) {
	signal := make([]float64, 257)
	for i := range signal {
		signal[i] = math.Sin(0.1*float64(i)) + 0.25*math.Cos(0.37*float64(i))
	}

	for _, scale := range []int{2, 4, 20, 64} {
		got, err := Haar(signal, scale)
		if err != nil {
			t.Fatalf("scale %d: %v", scale, err)
		}
		want := naiveHaar(signal, scale)
		for i := range got {
			if !almostEqual(got[i], want[i], 1e-9) {
				t.Fatalf("scale %d, index %d: got %g, want %g", scale, i, got[i], want[i])
			}
		}
	}
}

func TestHaar_TailIsZero(t *testing.T) {
	signal := make([]float64, 50)
	for i := range signal {
		signal[i] = 1 + float64(i)
	}

	out, err := Haar(signal, 16)
	if err != nil {
		t.Fatalf("Haar: %v", err)
	}
	for i := len(signal) - 15; i < len(signal); i++ {
		if out[i] != 0 {
			t.Errorf("tail index %d: got %g, want 0", i, out[i])
		}
	}
}

func TestHaar_Errors(t *testing.T) {
	if _, err := Haar(nil, 20); err == nil {
		t.Error("empty signal: expected error")
	}
	if _, err := Haar(make([]float64, 10), 1); err == nil {
		t.Error("scale < 2: expected error")
	}
	if _, err := Haar(make([]float64, 10), 11); err == nil {
		t.Error("scale > length: expected error")
	}
	if err := HaarInto(make([]float64, 9), make([]float64, 10), 4); err == nil {
		t.Error("dst length mismatch: expected error")
	}
}
