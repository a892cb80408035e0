// Package descriptive provides the summary statistics used to flatten
// distribution-valued eye-movement features into fixed-size vectors.
package descriptive

import (
	"fmt"
	"math"
	"sort"
)

// Moments returns the mean, population variance, skewness, and excess
// kurtosis of the data using Welford's online algorithm for numerical
// stability on higher-order moments.
func Moments(data []float64) (mean, variance, skewness, kurtosis float64) {
	n := len(data)
	if n == 0 {
		return 0, 0, 0, 0
	}

	var m2, m3, m4 float64

	for i, x := range data {
		ni := float64(i + 1)
		delta := x - mean
		deltaN := delta / ni
		deltaN2 := deltaN * deltaN
		term1 := delta * deltaN * float64(i)

		// M4 must be updated before M3, and M3 before M2.
		m4 += term1*deltaN2*(ni*ni-3*ni+3) + 6*deltaN2*m2 - 4*deltaN*m3
		m3 += term1*deltaN*(float64(i)-1) - 3*deltaN*m2
		m2 += term1
		mean += deltaN
	}

	nf := float64(n)

	variance = m2 / nf
	if variance > 0 {
		skewness = (m3 / nf) / (variance * math.Sqrt(variance))
		kurtosis = (m4/nf)/(variance*variance) - 3
	}

	return mean, variance, skewness, kurtosis
}

// Percentile returns the p-th percentile (0..100) of the data using linear
// interpolation between closest ranks.
func Percentile(data []float64, p float64) float64 {
	if len(data) == 0 {
		return 0
	}

	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)

	return percentileSorted(sorted, p)
}

func percentileSorted(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}

	rank := p / 100 * float64(n-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo < 0 {
		lo = 0
	}
	if hi > n-1 {
		hi = n - 1
	}
	if lo == hi {
		return sorted[lo]
	}

	frac := rank - float64(lo)

	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

// IQR returns the interquartile range (Q3 - Q1) of the data.
func IQR(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}

	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)

	return percentileSorted(sorted, 75) - percentileSorted(sorted, 25)
}

// sanitize replaces unusable inputs with the neutral vector the summary
// layer expects: empty or NaN-containing data collapses to [0], and +Inf
// values are flushed to zero.
func sanitize(data []float64) []float64 {
	if len(data) == 0 {
		return []float64{0}
	}

	clean := data
	copied := false

	for i, v := range data {
		if math.IsNaN(v) {
			return []float64{0}
		}
		if math.IsInf(v, 1) {
			if !copied {
				clean = make([]float64, len(data))
				copy(clean, data)
				copied = true
			}
			clean[i] = 0
		}
	}

	return clean
}

// BagOfFeatures computes the bag-of-features summary of a distribution:
// trimmed extrema at the 10th/90th order statistic, standard deviation,
// mean, positions of the trimmed extrema, trimmed range, IQR, excess
// kurtosis, and skewness. Keys match the historical feature names.
func BagOfFeatures(data []float64) map[string]float64 {
	a := sanitize(data)

	sorted := make([]float64, len(a))
	copy(sorted, a)
	sort.Float64s(sorted)

	n := len(a)
	tmax := sorted[n*90/100]
	tmin := sorted[n*10/100]

	argmin, argmax := 0, 0
	for i, v := range a {
		if v == tmin {
			argmin = i
			break
		}
	}
	for i, v := range a {
		if v == tmax {
			argmax = i
			break
		}
	}

	mean, variance, skewness, kurtosis := Moments(a)

	return map[string]float64{
		"tr_max":   tmax,
		"tr_min":   tmin,
		"std":      math.Sqrt(variance),
		"mean":     mean,
		"argmin":   float64(argmin),
		"argmax":   float64(argmax),
		"tr_range": tmax - tmin,
		"iqr":      percentileSorted(sorted, 75) - percentileSorted(sorted, 25),
		"kurtosis": kurtosis,
		"skewness": skewness,
	}
}

// Histogram counts data into the bins described by edges (len(edges)-1 bins,
// final bin closed on the right) and returns them keyed bin_0..bin_{n-1}.
func Histogram(data []float64, edges []float64) (map[string]float64, error) {
	if len(edges) < 2 {
		return nil, fmt.Errorf("descriptive: need at least 2 bin edges, have %d", len(edges))
	}

	a := sanitize(data)
	counts := make([]float64, len(edges)-1)

	for _, v := range a {
		if v < edges[0] || v > edges[len(edges)-1] {
			continue
		}

		// Right-open bins, except the last which includes its upper edge.
		idx := sort.SearchFloat64s(edges[1:], v)
		if idx > len(counts)-1 {
			idx = len(counts) - 1
		}
		if v == edges[idx+1] && idx < len(counts)-1 {
			idx++
		}
		counts[idx]++
	}

	feats := make(map[string]float64, len(counts))
	for i, c := range counts {
		feats[fmt.Sprintf("bin_%d", i)] = c
	}

	return feats, nil
}

// FenceBins estimates equal-width histogram bin edges for the data after
// removing outliers beyond the Tukey fences (1.5 * IQR past the quartiles).
// Returns nbins+1 edges.
func FenceBins(data []float64, nbins int) ([]float64, error) {
	if nbins <= 0 {
		return nil, fmt.Errorf("descriptive: bin count must be > 0: %d", nbins)
	}

	a := sanitize(data)

	sorted := make([]float64, len(a))
	copy(sorted, a)
	sort.Float64s(sorted)

	q1 := percentileSorted(sorted, 25)
	q3 := percentileSorted(sorted, 75)
	iqr := q3 - q1
	lower := q1 - 1.5*iqr
	upper := q3 + 1.5*iqr

	var kept []float64
	for _, v := range a {
		if v > lower && v < upper {
			kept = append(kept, v)
		}
	}
	if len(kept) == 0 {
		kept = []float64{0}
	}

	min, max := kept[0], kept[0]
	for _, v := range kept[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if min == max {
		// Degenerate range, mirror the numpy convention of +/- 0.5.
		min -= 0.5
		max += 0.5
	}

	edges := make([]float64, nbins+1)
	width := (max - min) / float64(nbins)
	for i := range edges {
		edges[i] = min + float64(i)*width
	}
	edges[nbins] = max

	return edges, nil
}
