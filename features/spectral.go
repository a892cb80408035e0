package features

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/ltkhiem/rckit/gazepoint"
	"github.com/ltkhiem/rckit/stats/spectral"
	"github.com/ltkhiem/rckit/window"
)

// SpectralConfig controls the frequency-domain window features. Windowing
// follows WindowConfig; each window is tapered, zero-padded to FFTSize
// and transformed.
type SpectralConfig struct {
	WindowConfig
	// WindowType is the taper applied before the transform.
	WindowType window.Type
	// FFTSize is the transform length. Zero selects the next power of
	// two at or above the window length.
	FFTSize int
}

// DefaultSpectralConfig returns Hann-tapered spectra over the default
// windowing.
func DefaultSpectralConfig() SpectralConfig {
	return SpectralConfig{
		WindowConfig: DefaultWindowConfig(),
		WindowType:   window.TypeHann,
	}
}

// SpectralFeatures holds the per-column spectrum statistics of one window.
type SpectralFeatures struct {
	Sample int
	Index  int
	Start  int
	End    int
	Stats  map[string]spectral.Stats
}

// ExtractSpectral computes magnitude-spectrum statistics for each window
// of each recording over the given columns.
func ExtractSpectral(recs []*gazepoint.Recording, columns []string, cfg SpectralConfig) ([]SpectralFeatures, error) {
	plans := map[int]*algofft.Plan[complex128]{}

	var out []SpectralFeatures
	for sample, rec := range recs {
		series := make(map[string][]float64, len(columns))
		for _, col := range columns {
			data, err := rec.Float(col)
			if err != nil {
				return nil, fmt.Errorf("features: recording %d: %w", sample, err)
			}
			series[col] = data
		}

		for idx, span := range Windows(rec.Len(), cfg.WindowConfig) {
			stats := make(map[string]spectral.Stats, len(columns))
			for _, col := range columns {
				st, err := windowSpectrum(series[col][span[0]:span[1]], cfg, plans)
				if err != nil {
					return nil, err
				}
				stats[col] = st
			}
			out = append(out, SpectralFeatures{
				Sample: sample,
				Index:  idx,
				Start:  span[0],
				End:    span[1],
				Stats:  stats,
			})
		}
	}

	return out, nil
}

func windowSpectrum(signal []float64, cfg SpectralConfig, plans map[int]*algofft.Plan[complex128]) (spectral.Stats, error) {
	fftSize := cfg.FFTSize
	if fftSize <= 0 {
		fftSize = nextPowerOf2(len(signal))
	}
	if fftSize < len(signal) {
		return spectral.Stats{}, fmt.Errorf("features: fft size %d shorter than window %d", fftSize, len(signal))
	}

	coeffs := window.Generate(cfg.WindowType, len(signal))

	inData := make([]complex128, fftSize)
	for i, v := range signal {
		inData[i] = complex(v*coeffs[i], 0)
	}

	plan, ok := plans[fftSize]
	if !ok {
		var err error
		plan, err = algofft.NewPlan64(fftSize)
		if err != nil {
			return spectral.Stats{}, fmt.Errorf("features: fft plan: %w", err)
		}
		plans[fftSize] = plan
	}

	spectrum := make([]complex128, fftSize)
	if err := plan.Forward(spectrum, inData); err != nil {
		return spectral.Stats{}, fmt.Errorf("features: fft: %w", err)
	}

	binCount := fftSize/2 + 1
	re := make([]float64, binCount)
	im := make([]float64, binCount)
	for i := 0; i < binCount; i++ {
		re[i] = real(spectrum[i])
		im[i] = imag(spectrum[i])
	}
	mag := make([]float64, binCount)
	vecmath.Magnitude(mag, re, im)

	return spectral.Calculate(mag, cfg.SampleRate), nil
}

func nextPowerOf2(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}
	return size
}
