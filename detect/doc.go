// Package detect finds ocular events — fixations, saccades, and blinks —
// in eye-tracking recordings.
//
// Two detectors are provided. ByWavelet reproduces the wavelet-transform
// analysis of Bulling, Ward, Gellersen & Tröster, "Eye movement analysis
// for activity recognition using electrooculography" (IEEE TPAMI 33(4),
// 2011) over a two-channel EOG signal. ByGazepoint trusts the annotations
// of the Gazepoint on-device filter (FPOG*, BK* columns) instead.
package detect
