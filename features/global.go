package features

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/ltkhiem/rckit/detect"
)

// Default screen resolution used to convert normalised gaze displacements
// into pixels.
const (
	DefaultScreenWidth  = 1920
	DefaultScreenHeight = 1080
)

// GlobalOption configures Global.
type GlobalOption func(*globalConfig)

type globalConfig struct {
	screenW float64
	screenH float64
	norm    float64
	hasNorm bool
}

// WithScreenSize sets the screen resolution in pixels for distance and
// velocity features.
func WithScreenSize(width, height float64) GlobalOption {
	return func(c *globalConfig) {
		if width > 0 && height > 0 {
			c.screenW = width
			c.screenH = height
		}
	}
}

// WithNorm adds count features normalised by the given value, typically
// the trial duration or the number of words read.
func WithNorm(value float64) GlobalOption {
	return func(c *globalConfig) {
		if value != 0 {
			c.norm = value
			c.hasNorm = true
		}
	}
}

// Global computes trial-level features from detected events. Vector-valued
// features hold one entry per event, scalar features one number; the
// result feeds directly into descriptive.Summarize.
//
// A trial without events of some kind gets a neutral placeholder event so
// downstream statistics stay defined; the count features nfx and nbk are
// taken before that substitution.
func Global(events detect.Events, opts ...GlobalOption) map[string]any {
	cfg := globalConfig{screenW: DefaultScreenWidth, screenH: DefaultScreenHeight}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	nfx := len(events.Fixations)
	nbk := len(events.Blinks)

	fixations, saccades, blinks := handleNull(events)

	fxdur := make([]float64, len(fixations))
	for i, f := range fixations {
		fxdur[i] = f.Duration
	}

	scdur := make([]float64, len(saccades))
	scdir := make([]float64, len(saccades))
	dxPix := make([]float64, len(saccades))
	dyPix := make([]float64, len(saccades))
	for i, s := range saccades {
		scdur[i] = s.Duration
		scdir[i] = s.Direction
		dxPix[i] = (s.EndX - s.StartX) * cfg.screenW
		dyPix[i] = (s.EndY - s.StartY) * cfg.screenH
	}

	bkdur := make([]float64, len(blinks))
	for i, b := range blinks {
		bkdur[i] = b.Duration
	}

	dist := make([]float64, len(saccades))
	vecmath.Magnitude(dist, dxPix, dyPix)

	distH := make([]float64, len(saccades))
	distV := make([]float64, len(saccades))
	velo := make([]float64, len(saccades))
	veloH := make([]float64, len(saccades))
	veloV := make([]float64, len(saccades))
	for i := range saccades {
		distH[i] = math.Abs(dxPix[i])
		distV[i] = math.Abs(dyPix[i])
		velo[i] = dist[i] / scdur[i]
		veloH[i] = distH[i] / scdur[i]
		veloV[i] = distV[i] / scdur[i]
	}

	regrID, nregr := regressions(scdir)

	feats := map[string]any{
		"nfx":       nfx,
		"nbk":       nbk,
		"fxdur":     fxdur,
		"scdur":     scdur,
		"bkdur":     bkdur,
		"scdir":     scdir,
		"dist":      dist,
		"dist_h":    distH,
		"dist_v":    distV,
		"velo":      velo,
		"velo_h":    veloH,
		"velo_v":    veloV,
		"regr_id":   regrID,
		"nregr":     nregr,
		"regr_rate": float64(nregr) / float64(len(fixations)),
	}

	if cfg.hasNorm {
		feats["nfx_norm"] = float64(nfx) / cfg.norm
		feats["nbk_norm"] = float64(nbk) / cfg.norm
		feats["nregr_norm"] = float64(nregr) / cfg.norm
	}

	return feats
}

// handleNull substitutes a neutral event for each empty list. The
// placeholder saccade and fixation carry a unit duration so velocity and
// rate features stay finite.
func handleNull(events detect.Events) ([]detect.Fixation, []detect.Saccade, []detect.Blink) {
	fixations := events.Fixations
	if len(fixations) == 0 {
		fixations = []detect.Fixation{{Duration: 1}}
	}
	saccades := events.Saccades
	if len(saccades) == 0 {
		saccades = []detect.Saccade{{Duration: 1}}
	}
	blinks := events.Blinks
	if len(blinks) == 0 {
		blinks = []detect.Blink{{}}
	}
	return fixations, saccades, blinks
}

// regressions returns the indices of saccades pointing against the reading
// direction, i.e. with a leftward component.
func regressions(scdir []float64) ([]int, int) {
	var idx []int
	for i, dir := range scdir {
		if dir > 90 && dir < 270 {
			idx = append(idx, i)
		}
	}
	return idx, len(idx)
}
