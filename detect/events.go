package detect

// EventKind labels each sample of a recording with the ocular event it
// belongs to. Detection order fixes the precedence: blink > saccade >
// fixation.
type EventKind uint8

const (
	KindNone EventKind = iota
	KindBlink
	KindSaccade
	KindFixation
)

func (k EventKind) String() string {
	switch k {
	case KindBlink:
		return "blink"
	case KindSaccade:
		return "saccade"
	case KindFixation:
		return "fixation"
	default:
		return "none"
	}
}

// Fixation is a stable gaze interval. X and Y are the mean signal values
// over the interval (horizontal and vertical channel, or screen-normalised
// gaze coordinates for the Gazepoint detector). Duration and Onset are in
// seconds.
type Fixation struct {
	X        float64
	Y        float64
	Duration float64
	Onset    float64
}

// Saccade is a rapid gaze shift. Start/End hold the channel values at the
// interval boundaries, Magnitude the Euclidean displacement, Direction the
// movement angle in degrees (0 = rightward, counter-clockwise on screen
// coordinates, in [0, 360)).
type Saccade struct {
	StartX    float64
	StartY    float64
	EndX      float64
	EndY      float64
	Duration  float64
	Onset     float64
	Magnitude float64
	Direction float64
}

// Blink is an eyelid closure. Duration and Onset are in seconds.
type Blink struct {
	Duration float64
	Onset    float64
}

// Events is the result of a detection pass. Mask has one entry per input
// sample for the wavelet detector; the Gazepoint detector works on the
// tracker's own annotations and leaves it nil.
type Events struct {
	Fixations []Fixation
	Saccades  []Saccade
	Blinks    []Blink
	Mask      []EventKind
}
