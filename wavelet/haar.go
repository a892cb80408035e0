package wavelet

import (
	"errors"
	"fmt"
	"math"
)

var errEmptySignal = errors.New("wavelet: signal must not be empty")

func validateScale(scale, n int) error {
	if scale < 2 {
		return fmt.Errorf("wavelet: scale must be >= 2: %d", scale)
	}
	if scale > n {
		return fmt.Errorf("wavelet: scale %d exceeds signal length %d", scale, n)
	}
	return nil
}

// Haar computes the Haar wavelet response of signal at the given scale.
// The result has the same length as the input; positions within one wavelet
// support of the end are zero.
func Haar(signal []float64, scale int) ([]float64, error) {
	if len(signal) == 0 {
		return nil, errEmptySignal
	}

	out := make([]float64, len(signal))
	if err := HaarInto(out, signal, scale); err != nil {
		return nil, err
	}

	return out, nil
}

// HaarInto computes the Haar wavelet response into dst, which must have the
// same length as signal. This is the zero-allocation path for callers that
// reuse buffers across channels.
func HaarInto(dst, signal []float64, scale int) error {
	n := len(signal)
	if n == 0 {
		return errEmptySignal
	}

	if len(dst) != n {
		return fmt.Errorf("wavelet: dst length %d does not match signal length %d", len(dst), n)
	}

	if err := validateScale(scale, n); err != nil {
		return err
	}

	half := scale / 2
	norm := 1 / math.Sqrt(float64(scale))

	// prefix[i] = sum of signal[0:i]
	prefix := make([]float64, n+1)
	for i, x := range signal {
		prefix[i+1] = prefix[i] + x
	}

	last := n - scale
	for i := 0; i <= last; i++ {
		lead := prefix[i+half] - prefix[i]
		trail := prefix[i+scale] - prefix[i+half]
		dst[i] = (trail - lead) * norm
	}

	for i := last + 1; i < n; i++ {
		dst[i] = 0
	}

	return nil
}
