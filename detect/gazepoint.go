package detect

import (
	"fmt"
	"math"

	"github.com/ltkhiem/rckit/gazepoint"
)

// ByGazepoint detects ocular events from the annotations of the Gazepoint
// on-device filter. Fixations come from the FPOG columns: samples sharing
// an FPOGID form one fixation candidate, positioned at the mean of its
// valid (FPOGV == 1) samples, with the tracker-accumulated FPOGD as its
// duration. Candidates shorter than MinFixationMS or centred off screen
// (outside [0,1]²) are dropped. Blinks are recovered from the BKID/BKDUR
// columns when present, and saccades are derived as the transitions
// between consecutive fixations.
//
// Onsets are relative to the first sample of the recording. The sample
// mask is not populated by this detector.
func ByGazepoint(rec *gazepoint.Recording, opts ...Option) (Events, error) {
	cfg := applyOptions(opts)

	if rec.Len() == 0 {
		return Events{}, nil
	}

	times, err := rec.Float(gazepoint.ColTime)
	if err != nil {
		return Events{}, fmt.Errorf("detect: %w", err)
	}
	sessionStart := times[0]

	fixations, err := gazepointFixations(rec, times, sessionStart, cfg)
	if err != nil {
		return Events{}, err
	}

	blinks, err := gazepointBlinks(rec, times, sessionStart)
	if err != nil {
		return Events{}, err
	}

	return Events{
		Fixations: fixations,
		Saccades:  transitionSaccades(fixations),
		Blinks:    blinks,
	}, nil
}

func gazepointFixations(rec *gazepoint.Recording, times []float64, sessionStart float64, cfg Config) ([]Fixation, error) {
	ids, err := rec.Float(gazepoint.ColFPOGID)
	if err != nil {
		return nil, fmt.Errorf("detect: %w", err)
	}
	xs, err := rec.Float(gazepoint.ColFPOGX)
	if err != nil {
		return nil, fmt.Errorf("detect: %w", err)
	}
	ys, err := rec.Float(gazepoint.ColFPOGY)
	if err != nil {
		return nil, fmt.Errorf("detect: %w", err)
	}
	durs, err := rec.Float(gazepoint.ColFPOGD)
	if err != nil {
		return nil, fmt.Errorf("detect: %w", err)
	}
	valids, err := rec.Float(gazepoint.ColFPOGV)
	if err != nil {
		return nil, fmt.Errorf("detect: %w", err)
	}

	var fixations []Fixation

	n := rec.Len()
	for i := 0; i < n; {
		id := ids[i]

		var sumX, sumY, dur float64
		var count int
		onset := -1.0

		j := i
		for ; j < n && ids[j] == id; j++ {
			if valids[j] != 1 {
				continue
			}
			sumX += xs[j]
			sumY += ys[j]
			count++
			dur = durs[j]
			if onset < 0 {
				onset = times[j] - sessionStart
			}
		}
		i = j

		if count == 0 {
			continue
		}
		if cfg.MinFixationMS > 0 && dur*1000 <= cfg.MinFixationMS {
			continue
		}

		x := sumX / float64(count)
		y := sumY / float64(count)
		if x < 0 || x > 1 || y < 0 || y > 1 {
			// Off-screen fixation.
			continue
		}

		fixations = append(fixations, Fixation{X: x, Y: y, Duration: dur, Onset: onset})
	}

	return fixations, nil
}

func gazepointBlinks(rec *gazepoint.Recording, times []float64, sessionStart float64) ([]Blink, error) {
	if !rec.HasColumn(gazepoint.ColBKID) || !rec.HasColumn(gazepoint.ColBKDur) {
		return nil, nil
	}

	ids, err := rec.Float(gazepoint.ColBKID)
	if err != nil {
		return nil, fmt.Errorf("detect: %w", err)
	}
	durs, err := rec.Float(gazepoint.ColBKDur)
	if err != nil {
		return nil, fmt.Errorf("detect: %w", err)
	}

	var blinks []Blink

	n := rec.Len()
	for i := 0; i < n; {
		id := ids[i]
		j := i
		for ; j < n && ids[j] == id; j++ {
		}

		if id != 0 {
			// Prefer the tracker-reported duration; fall back to the
			// timestamp span of the annotated run.
			dur := durs[j-1]
			if dur <= 0 {
				dur = times[j-1] - times[i]
			}
			blinks = append(blinks, Blink{Duration: dur, Onset: times[i] - sessionStart})
		}

		i = j
	}

	return blinks, nil
}

// transitionSaccades derives saccades from the gaps between consecutive
// fixations.
func transitionSaccades(fixations []Fixation) []Saccade {
	if len(fixations) < 2 {
		return nil
	}

	saccades := make([]Saccade, 0, len(fixations)-1)
	for k := 1; k < len(fixations); k++ {
		prev, cur := fixations[k-1], fixations[k]

		onset := prev.Onset + prev.Duration
		dur := cur.Onset - onset
		if dur < 0 {
			dur = 0
		}

		dx := cur.X - prev.X
		dy := cur.Y - prev.Y

		saccades = append(saccades, Saccade{
			StartX:    prev.X,
			StartY:    prev.Y,
			EndX:      cur.X,
			EndY:      cur.Y,
			Duration:  dur,
			Onset:     onset,
			Magnitude: math.Hypot(dx, dy),
			Direction: direction(dx, dy),
		})
	}

	return saccades
}
