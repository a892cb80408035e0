// Package interp repairs dropout gaps in gaze signals. Gazepoint marks
// samples invalid when the gaze point leaves the screen or the eyes close;
// detectors downstream expect a continuous signal, so invalid runs are
// reconstructed from the valid samples around them.
package interp

import (
	"errors"
	"fmt"
)

var errEmptySignal = errors.New("interp: signal must not be empty")

// Interpolator provides configurable fractional interpolation.
// Order 1 is linear, order 3 is Hermite-style 4-point cubic.
type Interpolator struct {
	order int
}

// NewInterpolator creates an interpolator of the given order.
func NewInterpolator(order int) *Interpolator {
	return &Interpolator{order: order}
}

// Interpolate interpolates around frac in [0,1].
// For order 1, samples must contain at least 2 values.
// For order 3, samples must contain at least 4 values and interpolates
// between samples[1] and samples[2].
func (l *Interpolator) Interpolate(samples []float64, frac float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	if l.order == 3 {
		if len(samples) >= 4 {
			return Hermite4(frac, samples[0], samples[1], samples[2], samples[3])
		}
	}
	if len(samples) < 2 {
		return samples[0]
	}
	return samples[0] + frac*(samples[1]-samples[0])
}

// Hermite4 computes cubic 4-point interpolation.
// It interpolates from x0 to x1 using neighbor points xm1 and x2.
func Hermite4(t, xm1, x0, x1, x2 float64) float64 {
	c0 := x0
	c1 := 0.5 * (x1 - xm1)
	c2 := xm1 - 2.5*x0 + 2*x1 - 0.5*x2
	c3 := 0.5*(x2-xm1) + 1.5*(x0-x1)
	return ((c3*t+c2)*t+c1)*t + c0
}

// FillGaps returns a copy of signal with invalid runs replaced by
// interpolated values. valid[i] marks whether signal[i] is trustworthy.
// Interior gaps are bridged with the configured order; leading and trailing
// gaps are held at the nearest valid value. An all-invalid signal is
// returned unchanged.
func FillGaps(signal []float64, valid []bool, order int) ([]float64, error) {
	if len(signal) == 0 {
		return nil, errEmptySignal
	}
	if len(valid) != len(signal) {
		return nil, fmt.Errorf("interp: valid length %d does not match signal length %d", len(valid), len(signal))
	}

	out := make([]float64, len(signal))
	copy(out, signal)

	first, last := -1, -1
	for i, v := range valid {
		if v {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	if first < 0 {
		return out, nil
	}

	// Leading and trailing holds.
	for i := 0; i < first; i++ {
		out[i] = signal[first]
	}
	for i := last + 1; i < len(out); i++ {
		out[i] = signal[last]
	}

	li := NewInterpolator(order)

	i := first
	for i <= last {
		if valid[i] {
			i++
			continue
		}

		// Gap [gapStart, gapEnd] bounded by valid samples prev and next.
		gapStart := i
		gapEnd := i
		for gapEnd+1 <= last && !valid[gapEnd+1] {
			gapEnd++
		}
		prev := gapStart - 1
		next := gapEnd + 1

		span := float64(next - prev)
		stencil := gapStencil(signal, valid, prev, next, order)
		for j := gapStart; j <= gapEnd; j++ {
			frac := float64(j-prev) / span
			out[j] = li.Interpolate(stencil, frac)
		}

		i = next
	}

	return out, nil
}

// gapStencil assembles the sample stencil bridging a gap. Hermite4 assumes
// equally spaced points, so the cubic path samples one gap-span beyond each
// edge; where no valid sample exists there, the edge is mirror-extrapolated,
// which keeps straight segments exact.
func gapStencil(signal []float64, valid []bool, prev, next, order int) []float64 {
	if order != 3 {
		return []float64{signal[prev], signal[next]}
	}

	span := next - prev

	xm1 := 2*signal[prev] - signal[next]
	if b := prev - span; b >= 0 && valid[b] {
		xm1 = signal[b]
	}

	x2 := 2*signal[next] - signal[prev]
	if a := next + span; a < len(signal) && valid[a] {
		x2 = signal[a]
	}

	return []float64{xm1, signal[prev], signal[next], x2}
}
