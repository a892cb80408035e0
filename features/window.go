package features

import (
	"errors"
	"fmt"
	"math"

	"github.com/ltkhiem/rckit/gazepoint"
)

// ErrUnknownExtractor is returned when a requested extractor name has no
// registered implementation.
var ErrUnknownExtractor = errors.New("unknown extractor")

// WindowConfig controls how a gaze signal is sliced and which time-series
// extractors run on each window. Size and Shift are in seconds.
type WindowConfig struct {
	Size       float64
	Shift      float64
	SampleRate float64
	// IncludeTail emits a final shorter window when the signal does not
	// divide evenly.
	IncludeTail bool
	// Extractors names the per-window statistics to compute. Empty means
	// all registered extractors.
	Extractors []string
	// AutocorrLag is the sample lag of the autocorrelation extractor.
	AutocorrLag int
}

// DefaultWindowConfig returns one-second windows with half-second overlap
// at the tracker rate.
func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Size:        1,
		Shift:       0.5,
		SampleRate:  150,
		AutocorrLag: 1,
	}
}

// WindowFeatures holds the extracted values of one window. Start and End
// are the half-open sample bounds within the source recording, Sample the
// recording's position in the input list, Index the window's position in
// the recording. Values is keyed "COLUMN_extractor".
type WindowFeatures struct {
	Sample int
	Index  int
	Start  int
	End    int
	Values map[string]float64
}

type extractorFunc func(x []float64, cfg WindowConfig) float64

var extractorRegistry = map[string]extractorFunc{
	"abs_energy": func(x []float64, _ WindowConfig) float64 {
		var sum float64
		for _, v := range x {
			sum += v * v
		}
		return sum
	},
	"mean": func(x []float64, _ WindowConfig) float64 {
		return sliceMean(x)
	},
	"std": func(x []float64, _ WindowConfig) float64 {
		m := sliceMean(x)
		var sum float64
		for _, v := range x {
			d := v - m
			sum += d * d
		}
		return math.Sqrt(sum / float64(len(x)))
	},
	"min": func(x []float64, _ WindowConfig) float64 {
		min := x[0]
		for _, v := range x[1:] {
			if v < min {
				min = v
			}
		}
		return min
	},
	"max": func(x []float64, _ WindowConfig) float64 {
		max := x[0]
		for _, v := range x[1:] {
			if v > max {
				max = v
			}
		}
		return max
	},
	"autocorrelation": autocorrelation,
}

// autocorrelation at the configured lag, normalised by the window
// variance. Degenerate windows yield NaN, matching the convention of
// common time-series feature libraries.
func autocorrelation(x []float64, cfg WindowConfig) float64 {
	lag := cfg.AutocorrLag
	n := len(x)
	if lag >= n {
		return math.NaN()
	}

	m := sliceMean(x)
	var variance float64
	for _, v := range x {
		d := v - m
		variance += d * d
	}
	variance /= float64(n)
	if variance == 0 {
		return math.NaN()
	}

	var sum float64
	for i := 0; i+lag < n; i++ {
		sum += (x[i] - m) * (x[i+lag] - m)
	}
	return sum / (float64(n-lag) * variance)
}

// ExtractorNames lists the registered extractors.
func ExtractorNames() []string {
	names := make([]string, 0, len(extractorRegistry))
	for name := range extractorRegistry {
		names = append(names, name)
	}
	return names
}

func resolveExtractors(names []string) (map[string]extractorFunc, error) {
	if len(names) == 0 {
		return extractorRegistry, nil
	}
	out := make(map[string]extractorFunc, len(names))
	for _, name := range names {
		fn, ok := extractorRegistry[name]
		if !ok {
			return nil, fmt.Errorf("features: %w: %q", ErrUnknownExtractor, name)
		}
		out[name] = fn
	}
	return out, nil
}

// Windows returns the half-open sample spans of a signal of length n under
// cfg. Spans step by Shift and are Size long; with IncludeTail a final
// shorter span covers the remainder.
func Windows(n int, cfg WindowConfig) [][2]int {
	wsz := int(cfg.Size * cfg.SampleRate)
	wsh := int(cfg.Shift * cfg.SampleRate)
	if wsz <= 0 || wsh <= 0 {
		return nil
	}

	var spans [][2]int
	i := 0
	for ; i+wsz <= n; i += wsh {
		spans = append(spans, [2]int{i, i + wsz})
	}
	if cfg.IncludeTail && i < n {
		spans = append(spans, [2]int{i, n})
	}
	return spans
}

// Extract slices each recording into windows and computes the configured
// extractors over the given columns. Results come back in recording and
// window order.
func Extract(recs []*gazepoint.Recording, columns []string, cfg WindowConfig) ([]WindowFeatures, error) {
	extractors, err := resolveExtractors(cfg.Extractors)
	if err != nil {
		return nil, err
	}

	var out []WindowFeatures
	for sample, rec := range recs {
		series := make(map[string][]float64, len(columns))
		for _, col := range columns {
			data, err := rec.Float(col)
			if err != nil {
				return nil, fmt.Errorf("features: recording %d: %w", sample, err)
			}
			series[col] = data
		}

		for idx, span := range Windows(rec.Len(), cfg) {
			values := make(map[string]float64, len(columns)*len(extractors))
			for _, col := range columns {
				window := series[col][span[0]:span[1]]
				for name, fn := range extractors {
					values[col+"_"+name] = fn(window, cfg)
				}
			}
			out = append(out, WindowFeatures{
				Sample: sample,
				Index:  idx,
				Start:  span[0],
				End:    span[1],
				Values: values,
			})
		}
	}

	return out, nil
}

func sliceMean(x []float64) float64 {
	var sum float64
	for _, v := range x {
		sum += v
	}
	return sum / float64(len(x))
}
