package features

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ltkhiem/rckit/gazepoint"
	"github.com/ltkhiem/rckit/internal/testutil"
)

func recordingWithX(t *testing.T, values []float64) *gazepoint.Recording {
	t.Helper()

	rows := make([][]string, len(values))
	for i, v := range values {
		rows[i] = []string{strconv.FormatFloat(v, 'g', -1, 64)}
	}
	rec, err := gazepoint.NewRecording([]string{"FPOGX"}, rows)
	require.NoError(t, err)
	return rec
}

func TestWindows(t *testing.T) {
	cfg := WindowConfig{Size: 1, Shift: 0.5, SampleRate: 10}

	got := Windows(20, cfg)
	want := [][2]int{{0, 10}, {5, 15}, {10, 20}}
	assert.Equal(t, want, got)
}

func TestWindows_Tail(t *testing.T) {
	cfg := WindowConfig{Size: 1, Shift: 0.5, SampleRate: 10}

	assert.Equal(t, [][2]int{{0, 10}, {5, 15}, {10, 20}}, Windows(23, cfg))

	cfg.IncludeTail = true
	assert.Equal(t, [][2]int{{0, 10}, {5, 15}, {10, 20}, {15, 23}}, Windows(23, cfg))
}

func TestWindows_TooShort(t *testing.T) {
	cfg := WindowConfig{Size: 1, Shift: 0.5, SampleRate: 10}
	assert.Nil(t, Windows(5, cfg))

	cfg.IncludeTail = true
	assert.Equal(t, [][2]int{{0, 5}}, Windows(5, cfg))
}

func TestExtract(t *testing.T) {
	// Alternating signal: window statistics are known in closed form.
	values := make([]float64, 20)
	for i := range values {
		values[i] = float64(i % 2)
	}
	rec := recordingWithX(t, values)

	cfg := WindowConfig{
		Size:        1,
		Shift:       0.5,
		SampleRate:  10,
		Extractors:  []string{"abs_energy", "mean", "min", "max", "autocorrelation"},
		AutocorrLag: 1,
	}

	feats, err := Extract([]*gazepoint.Recording{rec}, []string{"FPOGX"}, cfg)
	require.NoError(t, err)
	require.Len(t, feats, 3)

	first := feats[0]
	assert.Equal(t, 0, first.Sample)
	assert.Equal(t, 0, first.Index)
	assert.Equal(t, 0, first.Start)
	assert.Equal(t, 10, first.End)

	assert.InDelta(t, 5, first.Values["FPOGX_abs_energy"], 1e-12)
	assert.InDelta(t, 0.5, first.Values["FPOGX_mean"], 1e-12)
	assert.InDelta(t, 0, first.Values["FPOGX_min"], 1e-12)
	assert.InDelta(t, 1, first.Values["FPOGX_max"], 1e-12)
	// Perfectly alternating values anti-correlate at lag 1.
	assert.InDelta(t, -1, first.Values["FPOGX_autocorrelation"], 1e-12)
}

func TestExtract_DefaultExtractors(t *testing.T) {
	rec := recordingWithX(t, testutil.DC(0.5, 10))

	cfg := WindowConfig{Size: 1, Shift: 1, SampleRate: 10, AutocorrLag: 1}

	feats, err := Extract([]*gazepoint.Recording{rec}, []string{"FPOGX"}, cfg)
	require.NoError(t, err)
	require.Len(t, feats, 1)

	values := feats[0].Values
	assert.Len(t, values, len(ExtractorNames()))
	assert.InDelta(t, 0.5, values["FPOGX_mean"], 1e-12)
	assert.InDelta(t, 0, values["FPOGX_std"], 1e-12)
	// Zero variance makes the autocorrelation undefined.
	assert.True(t, math.IsNaN(values["FPOGX_autocorrelation"]))
}

func TestExtract_UnknownExtractor(t *testing.T) {
	rec := recordingWithX(t, testutil.DC(0, 10))

	cfg := WindowConfig{Size: 1, Shift: 1, SampleRate: 10, Extractors: []string{"entropy"}}

	_, err := Extract([]*gazepoint.Recording{rec}, []string{"FPOGX"}, cfg)
	assert.ErrorIs(t, err, ErrUnknownExtractor)
}

func TestExtract_MissingColumn(t *testing.T) {
	rec := recordingWithX(t, testutil.DC(0, 10))

	cfg := WindowConfig{Size: 1, Shift: 1, SampleRate: 10}

	_, err := Extract([]*gazepoint.Recording{rec}, []string{"FPOGY"}, cfg)
	assert.Error(t, err)
}
