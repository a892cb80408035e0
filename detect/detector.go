package detect

import (
	"errors"
	"fmt"
	"strings"
)

// Method selects the event detection algorithm.
type Method int

const (
	// MethodGazepoint trusts the on-device fixation filter of the
	// Gazepoint tracker and reads events from its annotation columns.
	MethodGazepoint Method = iota
	// MethodWavelet runs the continuous wavelet transform detector on
	// raw vertical and horizontal gaze traces.
	MethodWavelet
)

// ErrUnknownMethod is returned by ParseMethod for unrecognized names.
var ErrUnknownMethod = errors.New("unknown detection method")

func (m Method) String() string {
	switch m {
	case MethodGazepoint:
		return "gazepoint"
	case MethodWavelet:
		return "wavelet"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod maps a method name to its Method value. Matching is
// case-insensitive.
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "gazepoint":
		return MethodGazepoint, nil
	case "wavelet", "cwt":
		return MethodWavelet, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
	}
}
