package gazepoint

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LoadOption configures Load.
type LoadOption func(*loadConfig)

type loadConfig struct {
	delimiter rune
	blocks    int
}

func defaultLoadConfig() loadConfig {
	return loadConfig{delimiter: '\t'}
}

// WithDelimiter overrides the field delimiter (default tab).
func WithDelimiter(d rune) LoadOption {
	return func(c *loadConfig) {
		if d != 0 {
			c.delimiter = d
		}
	}
}

// WithBlocks loads a numbered series of block files instead of a single
// file. The name format must contain one %d placeholder; blocks are
// numbered 0..n-1.
func WithBlocks(n int) LoadOption {
	return func(c *loadConfig) {
		if n > 0 {
			c.blocks = n
		}
	}
}

// Load reads eye-tracking data from a directory of file(s). Without
// WithBlocks it loads the single file named by nameFormat; with it, one
// recording per block, in block order.
func Load(dataPath, nameFormat string, opts ...LoadOption) ([]*Recording, error) {
	cfg := defaultLoadConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.blocks == 0 {
		rec, err := loadFile(filepath.Join(dataPath, nameFormat), cfg.delimiter)
		if err != nil {
			return nil, err
		}
		return []*Recording{rec}, nil
	}

	recs := make([]*Recording, 0, cfg.blocks)
	for b := 0; b < cfg.blocks; b++ {
		path := filepath.Join(dataPath, fmt.Sprintf(nameFormat, b))
		rec, err := loadFile(path, cfg.delimiter)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", b, err)
		}
		recs = append(recs, rec)
	}

	return recs, nil
}

// LoadAndEpoch loads recordings and cuts them into annotation-delimited
// segments in one step.
func LoadAndEpoch(dataPath, nameFormat, annotation string, opts ...LoadOption) ([]*Recording, error) {
	recs, err := Load(dataPath, nameFormat, opts...)
	if err != nil {
		return nil, err
	}
	return Epoch(recs, annotation)
}

func loadFile(path string, delimiter rune) (*Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gazepoint: %w", err)
	}
	defer f.Close()

	rec, err := Read(f, delimiter)
	if err != nil {
		return nil, fmt.Errorf("gazepoint: %s: %w", path, err)
	}
	return rec, nil
}

// Read parses a delimited recording from r. The first row is the header.
func Read(r io.Reader, delimiter rune) (*Recording, error) {
	cr := csv.NewReader(r)
	cr.Comma = delimiter
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty file")
	}
	if err != nil {
		return nil, err
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows [][]string
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// csv errors carry the offending line number.
			return nil, err
		}
		rows = append(rows, row)
	}

	return NewRecording(header, rows)
}
