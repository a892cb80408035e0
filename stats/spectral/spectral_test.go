package spectral

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestCalculate_Empty(t *testing.T) {
	s := Calculate(nil, 150)
	if s.BinCount != 0 || s.Sum != 0 || s.Centroid != 0 {
		t.Errorf("empty spectrum: got %+v, want zero stats", s)
	}
}

func TestCalculate_SingleBin(t *testing.T) {
	s := Calculate([]float64{2}, 150)
	if s.BinCount != 1 {
		t.Errorf("BinCount: got %d, want 1", s.BinCount)
	}
	if s.DC != 2 || s.Energy != 4 || s.Power != 4 {
		t.Errorf("single bin: got DC=%g Energy=%g Power=%g", s.DC, s.Energy, s.Power)
	}
}

func TestCalculate_SingleTone(t *testing.T) {
	// 9 one-sided bins correspond to a 16-point FFT, bin width rate/16.
	// All energy in bin 3.
	mag := make([]float64, 9)
	mag[3] = 1

	const rate = 150.0
	s := Calculate(mag, rate)

	wantFreq := 3 * rate / 16
	if !almostEqual(s.Centroid, wantFreq, tolerance) {
		t.Errorf("Centroid: got %g, want %g", s.Centroid, wantFreq)
	}
	if !almostEqual(s.Spread, 0, tolerance) {
		t.Errorf("Spread: got %g, want 0", s.Spread)
	}
	if !almostEqual(s.Rolloff, wantFreq, tolerance) {
		t.Errorf("Rolloff: got %g, want %g", s.Rolloff, wantFreq)
	}
	if s.MaxBin != 3 {
		t.Errorf("MaxBin: got %d, want 3", s.MaxBin)
	}
	if !almostEqual(s.Energy, 1, tolerance) {
		t.Errorf("Energy: got %g, want 1", s.Energy)
	}
}

func TestCalculate_FlatSpectrum(t *testing.T) {
	mag := []float64{1, 1, 1, 1, 1}

	const rate = 100.0
	s := Calculate(mag, rate)

	if !almostEqual(s.Average, 1, tolerance) {
		t.Errorf("Average: got %g, want 1", s.Average)
	}
	if !almostEqual(s.Range, 0, tolerance) {
		t.Errorf("Range: got %g, want 0", s.Range)
	}
	// Centroid of a flat spectrum sits mid-band: mean of bin frequencies.
	wantCentroid := (0 + 12.5 + 25 + 37.5 + 50) / 5
	if !almostEqual(s.Centroid, wantCentroid, tolerance) {
		t.Errorf("Centroid: got %g, want %g", s.Centroid, wantCentroid)
	}
}

func TestCalculateFromComplex(t *testing.T) {
	spectrum := []complex128{complex(3, 4), complex(0, 1)}
	s := CalculateFromComplex(spectrum, 100)
	if !almostEqual(s.DC, 5, tolerance) {
		t.Errorf("DC: got %g, want 5", s.DC)
	}
	if !almostEqual(s.Sum, 6, tolerance) {
		t.Errorf("Sum: got %g, want 6", s.Sum)
	}
}
