package gazepoint

import (
	"encoding/csv"
	"fmt"

	"github.com/google/renameio/v2"
)

// WriteTSV writes a recording to path as a tab-separated table. The write
// is atomic and durable: data goes to a temp file which is fsynced and
// renamed over the destination, so a crash never leaves a partial file.
func WriteTSV(path string, rec *Recording) error {
	pending, err := renameio.NewPendingFile(path)
	if err != nil {
		return fmt.Errorf("gazepoint: create pending file: %w", err)
	}
	defer pending.Cleanup() //nolint:errcheck // no-op after a successful replace

	w := csv.NewWriter(pending)
	w.Comma = '\t'

	if err := w.Write(rec.columns); err != nil {
		return fmt.Errorf("gazepoint: write header: %w", err)
	}
	for i, row := range rec.rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("gazepoint: write row %d: %w", i+1, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("gazepoint: flush: %w", err)
	}

	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("gazepoint: replace %s: %w", path, err)
	}

	return nil
}
