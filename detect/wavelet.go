package detect

import (
	"errors"
	"fmt"
	"math"

	"github.com/ltkhiem/rckit/wavelet"
)

var errEmptySignal = errors.New("detect: signals must not be empty")

// ByWavelet detects ocular events in a two-channel eye movement signal.
// vertical and horizontal are the EOG channels, equal in length. Blinks are
// found first on the vertical channel, saccades next on both channels
// outside blink intervals, fixations last in the remaining quiet intervals;
// the mask records that precedence per sample.
//
// A signal shorter than one wavelet support yields empty Events.
func ByWavelet(vertical, horizontal []float64, opts ...Option) (Events, error) {
	cfg := applyOptions(opts)

	n := len(vertical)
	if n == 0 {
		return Events{}, errEmptySignal
	}
	if len(horizontal) != n {
		return Events{}, fmt.Errorf("detect: channel lengths differ: vertical %d, horizontal %d", n, len(horizontal))
	}

	mask := make([]EventKind, n)
	if n < cfg.WaveletScale {
		return Events{Mask: mask}, nil
	}

	wv, err := wavelet.Haar(vertical, cfg.WaveletScale)
	if err != nil {
		return Events{}, fmt.Errorf("detect: vertical channel: %w", err)
	}
	wh, err := wavelet.Haar(horizontal, cfg.WaveletScale)
	if err != nil {
		return Events{}, fmt.Errorf("detect: horizontal channel: %w", err)
	}

	blinks := detectBlinks(wv, mask, cfg)
	saccades := detectSaccades(wv, wh, vertical, horizontal, mask, cfg)
	fixations := detectFixations(vertical, horizontal, mask, cfg)

	return Events{
		Fixations: fixations,
		Saccades:  saccades,
		Blinks:    blinks,
		Mask:      mask,
	}, nil
}

// detectBlinks scans the vertical wavelet response for blink signatures: a
// positive response peak (eyelid closing) followed within BlinkMaxGap by a
// second peak (reopening). The pair is expanded outward to cover the whole
// excursion above the saccade threshold.
func detectBlinks(w []float64, mask []EventKind, cfg Config) []Blink {
	cond := make([]bool, len(w))
	for i, v := range w {
		cond[i] = math.Abs(v) >= cfg.BlinkMagnitude
	}
	segs := runs(cond)

	var blinks []Blink
	for p := 0; p+1 < len(segs); p++ {
		if w[segs[p].start] <= 0 {
			continue
		}

		gap := segs[p+1].start - segs[p].end + 1
		if gap > cfg.BlinkMaxGap {
			continue
		}

		start := segs[p].start
		for start > 0 && math.Abs(w[start-1]) >= cfg.SaccadeMagnitude {
			start--
		}
		end := segs[p+1].end
		for end+1 < len(w) && math.Abs(w[end+1]) >= cfg.SaccadeMagnitude {
			end++
		}

		fill(mask, span{start, end}, KindBlink)
		blinks = append(blinks, Blink{
			Duration: float64(end-start+1) / cfg.SampleRate,
			Onset:    float64(start) / cfg.SampleRate,
		})

		// The paired segment belongs to this blink.
		p++
	}

	return blinks
}

// detectSaccades marks threshold crossings of saccadic length on either
// channel, then reads the merged intervals back off the mask so movements
// with both vertical and horizontal components become one saccade.
func detectSaccades(wv, wh, vertical, horizontal []float64, mask []EventKind, cfg Config) []Saccade {
	cond := make([]bool, len(mask))

	for _, w := range [2][]float64{wv, wh} {
		for i, v := range w {
			cond[i] = math.Abs(v) >= cfg.SaccadeMagnitude && mask[i] == KindNone
		}
		for _, s := range runs(cond) {
			if s.length() >= cfg.SaccadeMinDuration && s.length() <= cfg.SaccadeMaxDuration {
				fill(mask, s, KindSaccade)
			}
		}
	}

	var saccades []Saccade
	for _, s := range maskRuns(mask, KindSaccade) {
		dx := horizontal[s.end] - horizontal[s.start]
		dy := vertical[s.end] - vertical[s.start]

		saccades = append(saccades, Saccade{
			StartX:    horizontal[s.start],
			StartY:    vertical[s.start],
			EndX:      horizontal[s.end],
			EndY:      vertical[s.end],
			Duration:  float64(s.length()) / cfg.SampleRate,
			Onset:     float64(s.start) / cfg.SampleRate,
			Magnitude: math.Hypot(dx, dy),
			Direction: direction(dx, dy),
		})
	}

	return saccades
}

// detectFixations applies a dispersion test to the intervals left unmasked
// by the blink and saccade passes. Each quiet interval holds at most one
// fixation: a minimum-length window slides forward until dispersion drops
// below threshold, then grows until it rises again.
func detectFixations(vertical, horizontal []float64, mask []EventKind, cfg Config) []Fixation {
	minLen := cfg.FixationMinDuration

	var fixations []Fixation

	record := func(start, end int) {
		fill(mask, span{start, end}, KindFixation)
		fixations = append(fixations, Fixation{
			X:        mean(horizontal[start : end+1]),
			Y:        mean(vertical[start : end+1]),
			Duration: float64(end-start+1) / cfg.SampleRate,
			Onset:    float64(start) / cfg.SampleRate,
		})
	}

	for _, seg := range maskRuns(mask, KindNone) {
		if seg.length() < minLen {
			continue
		}

		ws := seg.start
		we := ws + minLen // exclusive window end
		found := false

		for we <= seg.end {
			d := dispersion(vertical[ws:we]) + dispersion(horizontal[ws:we])

			if d > cfg.FixationDispersion {
				if found {
					record(ws, we-1)
					break
				}
				ws++
				we = ws + minLen
			} else {
				if found && we == seg.end {
					record(ws, we)
					break
				}
				found = true
			}

			we++
		}
	}

	return fixations
}

func dispersion(x []float64) float64 {
	min, max := x[0], x[0]
	for _, v := range x[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return max - min
}

func mean(x []float64) float64 {
	var sum float64
	for _, v := range x {
		sum += v
	}
	return sum / float64(len(x))
}

// direction maps a displacement to its screen-convention angle in degrees:
// 0 = rightward, counter-clockwise, y growing downward.
func direction(dx, dy float64) float64 {
	deg := -math.Atan2(dy, dx) * 180 / math.Pi
	return math.Mod(deg+360, 360)
}
