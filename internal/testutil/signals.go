package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ramp writes a linear transition into signal: the value stays at from
// before start, climbs over width samples, and holds at to afterwards.
// Models a saccadic gaze shift between two fixation plateaus.
func Ramp(signal []float64, start, width int, from, to float64) {
	for i := range signal {
		switch {
		case i < start:
			signal[i] = from
		case i < start+width:
			signal[i] = from + (to-from)*float64(i-start+1)/float64(width)
		default:
			signal[i] = to
		}
	}
}

// Pulse adds a rectangular excursion of the given height to signal over
// [start, start+width). Models a blink artifact on the vertical channel.
func Pulse(signal []float64, start, width int, height float64) {
	for i := start; i < start+width && i < len(signal); i++ {
		signal[i] += height
	}
}
