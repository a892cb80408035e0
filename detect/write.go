package detect

import (
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/google/renameio/v2"
)

// WriteEvents writes the detected events into dir as three tab-separated
// tables: fixations.tsv, saccades.tsv and blinks.tsv. Each file is
// written atomically. Empty event lists still produce a header-only
// file so downstream consumers always find the full set.
func WriteEvents(dir string, events Events) error {
	if err := writeFixations(filepath.Join(dir, "fixations.tsv"), events.Fixations); err != nil {
		return err
	}
	if err := writeSaccades(filepath.Join(dir, "saccades.tsv"), events.Saccades); err != nil {
		return err
	}
	return writeBlinks(filepath.Join(dir, "blinks.tsv"), events.Blinks)
}

func writeFixations(path string, fixations []Fixation) error {
	rows := make([][]string, 0, len(fixations)+1)
	rows = append(rows, []string{"X", "Y", "DURATION", "ONSET"})
	for _, f := range fixations {
		rows = append(rows, []string{
			ftoa(f.X), ftoa(f.Y), ftoa(f.Duration), ftoa(f.Onset),
		})
	}
	return writeTable(path, rows)
}

func writeSaccades(path string, saccades []Saccade) error {
	rows := make([][]string, 0, len(saccades)+1)
	rows = append(rows, []string{
		"START_X", "START_Y", "END_X", "END_Y",
		"DURATION", "ONSET", "MAGNITUDE", "DIRECTION",
	})
	for _, s := range saccades {
		rows = append(rows, []string{
			ftoa(s.StartX), ftoa(s.StartY), ftoa(s.EndX), ftoa(s.EndY),
			ftoa(s.Duration), ftoa(s.Onset), ftoa(s.Magnitude), ftoa(s.Direction),
		})
	}
	return writeTable(path, rows)
}

func writeBlinks(path string, blinks []Blink) error {
	rows := make([][]string, 0, len(blinks)+1)
	rows = append(rows, []string{"DURATION", "ONSET"})
	for _, b := range blinks {
		rows = append(rows, []string{ftoa(b.Duration), ftoa(b.Onset)})
	}
	return writeTable(path, rows)
}

func writeTable(path string, rows [][]string) error {
	pending, err := renameio.NewPendingFile(path)
	if err != nil {
		return fmt.Errorf("detect: create pending file: %w", err)
	}
	defer pending.Cleanup() //nolint:errcheck // no-op after a successful replace

	w := csv.NewWriter(pending)
	w.Comma = '\t'

	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("detect: write %s: %w", path, err)
	}

	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("detect: replace %s: %w", path, err)
	}

	return nil
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
