// Package features turns detected ocular events and raw gaze traces into
// feature vectors for reading activity classification.
//
// Three families are provided. Global features describe a whole trial
// through its event statistics (counts, durations, movement magnitudes,
// velocities, regressions). Window features slice the raw gaze signal
// into fixed-size windows and apply time-series extractors per window.
// Spectral features transform windows into the frequency domain and
// summarize their power distribution.
package features
