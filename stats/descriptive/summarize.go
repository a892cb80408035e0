package descriptive

import "fmt"

// Extractor selects which summary families are applied to vector-valued
// features.
type Extractor int

const (
	// ExtractAll applies both the bag-of-features and histogram summaries.
	ExtractAll Extractor = iota
	// ExtractBOF applies only the bag-of-features summary.
	ExtractBOF
	// ExtractHist applies only the histogram summary.
	ExtractHist
)

func (e Extractor) needsBins() bool { return e == ExtractAll || e == ExtractHist }

// Summarize flattens a feature map into scalars. Scalar entries (float64 or
// int) pass through unchanged; vector entries ([]float64) are replaced by
// their summary statistics, keyed "<name>_<stat>". bins supplies histogram
// edges per vector feature and is required unless the extractor is
// ExtractBOF. Features named in ignore are dropped.
func Summarize(feats map[string]any, extractor Extractor, bins map[string][]float64, ignore []string) (map[string]float64, error) {
	if extractor.needsBins() && bins == nil {
		return nil, fmt.Errorf("descriptive: histogram bins required for extractor %d", extractor)
	}

	skip := make(map[string]bool, len(ignore))
	for _, name := range ignore {
		skip[name] = true
	}

	out := make(map[string]float64, len(feats))

	for name, value := range feats {
		if skip[name] {
			continue
		}

		switch v := value.(type) {
		case float64:
			out[name] = v
		case int:
			out[name] = float64(v)
		case []float64:
			if extractor == ExtractAll || extractor == ExtractBOF {
				for stat, sv := range BagOfFeatures(v) {
					out[name+"_"+stat] = sv
				}
			}
			if extractor.needsBins() {
				edges, ok := bins[name]
				if !ok {
					return nil, fmt.Errorf("descriptive: no histogram bins for feature %q", name)
				}
				hist, err := Histogram(v, edges)
				if err != nil {
					return nil, fmt.Errorf("descriptive: feature %q: %w", name, err)
				}
				for stat, sv := range hist {
					out[name+"_"+stat] = sv
				}
			}
		case []int:
			out[name] = float64(len(v))
		default:
			return nil, fmt.Errorf("descriptive: feature %q has unsupported type %T", name, value)
		}
	}

	return out, nil
}

// BulkSummarize summarizes every trial of a subject. Histogram bin edges are
// estimated per feature from the values pooled across all trials (with Tukey
// fence outlier removal) so bins are comparable between trials. It returns
// the summarized trials and the edges used.
func BulkSummarize(trials []map[string]any, extractor Extractor, nbins int, ignore []string) ([]map[string]float64, map[string][]float64, error) {
	var bins map[string][]float64

	if extractor.needsBins() {
		pooled := make(map[string][]float64)
		for _, trial := range trials {
			for name, value := range trial {
				if v, ok := value.([]float64); ok {
					pooled[name] = append(pooled[name], sanitize(v)...)
				}
			}
		}

		bins = make(map[string][]float64, len(pooled))
		for name, values := range pooled {
			edges, err := FenceBins(values, nbins)
			if err != nil {
				return nil, nil, fmt.Errorf("descriptive: feature %q: %w", name, err)
			}
			bins[name] = edges
		}
	}

	out := make([]map[string]float64, 0, len(trials))
	for i, trial := range trials {
		summary, err := Summarize(trial, extractor, bins, ignore)
		if err != nil {
			return nil, nil, fmt.Errorf("descriptive: trial %d: %w", i, err)
		}
		out = append(out, summary)
	}

	return out, bins, nil
}
