// Package gazepoint reads and writes eye-tracking recordings exported by
// Gazepoint trackers: tab-separated tables with one row per sample and the
// columns the on-device filter emits (TIME, FPOG*, BPOG*, BK*, USER, ...).
//
// A session may be split across numbered block files; Load reassembles the
// series, and Epoch cuts recordings into annotation-delimited segments using
// the USER marker column.
package gazepoint
