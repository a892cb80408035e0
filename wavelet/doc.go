// Package wavelet provides the continuous wavelet transform used by the
// ocular movement detector.
//
// Only the Haar mother wavelet is implemented. At integer scale s the
// response at sample i is the difference between the trailing and leading
// half-window sums, normalised by sqrt(s):
//
//	w[i] = (sum(x[i+s/2 : i+s]) - sum(x[i : i+s/2])) / sqrt(s)
//
// so an upward step in the signal produces a positive peak at its onset.
// The transform is computed in O(n) via a prefix-sum table.
package wavelet
