// Package spectral computes magnitude-spectrum statistics for windowed gaze
// signals. The input is a one-sided linear magnitude spectrum, bins 0 (DC)
// through Nyquist, so the frequency of bin i is
//
//	f_i = i * sampleRate / (2 * (len(magnitude) - 1))
package spectral

import (
	"math"
	"math/cmplx"
)

// Stats holds frequency-domain descriptors of a magnitude spectrum.
type Stats struct {
	BinCount int
	DC       float64 // bin 0 magnitude
	Sum      float64 // sum of magnitudes
	Max      float64
	MaxBin   int
	Min      float64
	MinBin   int
	Average  float64
	Range    float64
	Energy   float64 // sum of squared magnitudes
	Power    float64
	Centroid float64 // spectral centroid (Hz)
	Spread   float64 // spectral spread around the centroid (Hz)
	Rolloff  float64 // frequency below which 85% of the energy lies (Hz)
}

func binFreq(i int, sampleRate float64, binCount int) float64 {
	return float64(i) * sampleRate / float64(2*(binCount-1))
}

// Calculate computes all descriptors from a one-sided linear magnitude
// spectrum (NOT dB).
func Calculate(magnitude []float64, sampleRate float64) Stats {
	n := len(magnitude)
	if n == 0 {
		return Stats{}
	}

	if n == 1 {
		v := magnitude[0]
		return Stats{
			BinCount: 1,
			DC:       v,
			Sum:      v,
			Max:      v,
			Min:      v,
			Average:  v,
			Energy:   v * v,
			Power:    v * v,
		}
	}

	var s Stats
	s.BinCount = n
	s.DC = magnitude[0]
	s.Min = magnitude[0]
	s.Max = magnitude[0]

	for i, v := range magnitude {
		s.Sum += v
		s.Energy += v * v
		if v > s.Max {
			s.Max = v
			s.MaxBin = i
		}
		if v < s.Min {
			s.Min = v
			s.MinBin = i
		}
	}

	s.Average = s.Sum / float64(n)
	s.Range = s.Max - s.Min
	s.Power = s.Energy / float64(n)

	s.Centroid = centroid(magnitude, sampleRate, s.Sum)
	s.Spread = spread(magnitude, sampleRate, s.Centroid, s.Sum)
	s.Rolloff = rolloff(magnitude, sampleRate, 0.85, s.Energy)

	return s
}

// CalculateFromComplex converts a complex spectrum to magnitudes and
// delegates to [Calculate].
func CalculateFromComplex(spectrum []complex128, sampleRate float64) Stats {
	mag := make([]float64, len(spectrum))
	for i, c := range spectrum {
		mag[i] = cmplx.Abs(c)
	}
	return Calculate(mag, sampleRate)
}

// Centroid returns the spectral centroid in Hz.
//
//	centroid = sum(f_i * |X_i|) / sum(|X_i|)
func Centroid(magnitude []float64, sampleRate float64) float64 {
	if len(magnitude) < 2 {
		return 0
	}
	sum := 0.0
	for _, v := range magnitude {
		sum += v
	}
	return centroid(magnitude, sampleRate, sum)
}

func centroid(magnitude []float64, sampleRate, sumMag float64) float64 {
	n := len(magnitude)
	if n < 2 || sumMag == 0 {
		return 0
	}
	weightedSum := 0.0
	for i, v := range magnitude {
		weightedSum += binFreq(i, sampleRate, n) * v
	}
	return weightedSum / sumMag
}

func spread(magnitude []float64, sampleRate, cent, sumMag float64) float64 {
	n := len(magnitude)
	if n < 2 || sumMag == 0 {
		return 0
	}
	weightedSqSum := 0.0
	for i, v := range magnitude {
		diff := binFreq(i, sampleRate, n) - cent
		weightedSqSum += diff * diff * v
	}
	spreadSq := weightedSqSum / sumMag
	if spreadSq <= 0 {
		return 0
	}
	return math.Sqrt(spreadSq)
}

func rolloff(magnitude []float64, sampleRate, fraction, energy float64) float64 {
	n := len(magnitude)
	if n < 2 || energy == 0 {
		return 0
	}
	target := fraction * energy
	cum := 0.0
	for i, v := range magnitude {
		cum += v * v
		if cum >= target {
			return binFreq(i, sampleRate, n)
		}
	}
	return binFreq(n-1, sampleRate, n)
}
