package gazepoint

import (
	"errors"
	"fmt"
	"strconv"
)

// Column names used by most of the toolkit. Gazepoint exports more; the
// Recording keeps whatever the file contains.
const (
	ColTime  = "TIME"
	ColFPOGX = "FPOGX"
	ColFPOGY = "FPOGY"
	ColFPOGD = "FPOGD"
	ColFPOGID = "FPOGID"
	ColFPOGV = "FPOGV"
	ColBKID  = "BKID"
	ColBKDur = "BKDUR"
	ColUser  = "USER"
)

var errNoSamples = errors.New("gazepoint: recording has no samples")

// ColumnError reports a missing or unparsable column.
type ColumnError struct {
	Column string
	Row    int // 1-based data row, 0 when the column is absent
	Err    error
}

func (e *ColumnError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("gazepoint: column %q, row %d: %v", e.Column, e.Row, e.Err)
	}
	return fmt.Sprintf("gazepoint: column %q: %v", e.Column, e.Err)
}

func (e *ColumnError) Unwrap() error { return e.Err }

var errMissingColumn = errors.New("column not present")

// Recording is one eye-tracking session (or a segment of one): an ordered
// table of samples under a fixed header.
type Recording struct {
	columns []string
	index   map[string]int
	rows    [][]string

	floats map[string][]float64 // parse cache
}

// NewRecording builds a Recording from a header and data rows. Every row
// must match the header width.
func NewRecording(columns []string, rows [][]string) (*Recording, error) {
	if len(columns) == 0 {
		return nil, errors.New("gazepoint: header must not be empty")
	}

	index := make(map[string]int, len(columns))
	for i, name := range columns {
		if _, dup := index[name]; dup {
			return nil, fmt.Errorf("gazepoint: duplicate column %q", name)
		}
		index[name] = i
	}

	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("gazepoint: row %d has %d fields, header has %d", i+1, len(row), len(columns))
		}
	}

	return &Recording{
		columns: columns,
		index:   index,
		rows:    rows,
		floats:  make(map[string][]float64),
	}, nil
}

// Columns returns the header in file order.
func (r *Recording) Columns() []string {
	out := make([]string, len(r.columns))
	copy(out, r.columns)
	return out
}

// Len returns the number of samples.
func (r *Recording) Len() int { return len(r.rows) }

// HasColumn reports whether the recording contains the named column.
func (r *Recording) HasColumn(name string) bool {
	_, ok := r.index[name]
	return ok
}

// Strings returns the raw cell values of a column.
func (r *Recording) Strings(name string) ([]string, error) {
	col, ok := r.index[name]
	if !ok {
		return nil, &ColumnError{Column: name, Err: errMissingColumn}
	}

	out := make([]string, len(r.rows))
	for i, row := range r.rows {
		out[i] = row[col]
	}
	return out, nil
}

// Float parses a column as float64 values. Results are cached, so repeated
// detector passes over the same column parse once.
func (r *Recording) Float(name string) ([]float64, error) {
	if cached, ok := r.floats[name]; ok {
		return cached, nil
	}

	col, ok := r.index[name]
	if !ok {
		return nil, &ColumnError{Column: name, Err: errMissingColumn}
	}

	out := make([]float64, len(r.rows))
	for i, row := range r.rows {
		v, err := strconv.ParseFloat(row[col], 64)
		if err != nil {
			return nil, &ColumnError{Column: name, Row: i + 1, Err: err}
		}
		out[i] = v
	}

	r.floats[name] = out
	return out, nil
}

// SetFloats overwrites a column with new values, one per sample. The cells
// are rewritten in place, so recordings sharing rows through Slice see the
// change too.
func (r *Recording) SetFloats(name string, values []float64) error {
	col, ok := r.index[name]
	if !ok {
		return &ColumnError{Column: name, Err: errMissingColumn}
	}
	if len(values) != len(r.rows) {
		return fmt.Errorf("gazepoint: %d values for %d samples", len(values), len(r.rows))
	}

	for i, row := range r.rows {
		row[col] = strconv.FormatFloat(values[i], 'g', -1, 64)
	}

	r.floats[name] = values
	return nil
}

// Slice returns the half-open sample range [start, end) as a new Recording
// sharing the underlying rows.
func (r *Recording) Slice(start, end int) (*Recording, error) {
	if start < 0 || end > len(r.rows) || start > end {
		return nil, fmt.Errorf("gazepoint: slice [%d:%d) out of range for %d samples", start, end, len(r.rows))
	}

	return &Recording{
		columns: r.columns,
		index:   r.index,
		rows:    r.rows[start:end],
		floats:  make(map[string][]float64),
	}, nil
}

// Duration returns the span of the TIME column in seconds.
func (r *Recording) Duration() (float64, error) {
	times, err := r.Float(ColTime)
	if err != nil {
		return 0, err
	}
	if len(times) == 0 {
		return 0, errNoSamples
	}
	return times[len(times)-1] - times[0], nil
}

// SampleRate estimates the sampling rate in Hz from the TIME column.
func (r *Recording) SampleRate() (float64, error) {
	times, err := r.Float(ColTime)
	if err != nil {
		return 0, err
	}
	if len(times) < 2 {
		return 0, errNoSamples
	}

	span := times[len(times)-1] - times[0]
	if span <= 0 {
		return 0, fmt.Errorf("gazepoint: TIME column is not increasing (span %g)", span)
	}

	return float64(len(times)-1) / span, nil
}
