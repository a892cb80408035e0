// Package config loads the processing pipeline configuration from a file
// and the environment.
//
// Settings come from three layers, later layers overriding earlier ones:
// built-in defaults, an optional JSON or YAML file, and environment
// variables prefixed RCKIT_ (a .env file is honoured when present).
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	kjson "github.com/knadh/koanf/parsers/json"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "RCKIT_"

// Config is the root configuration of the toolkit.
type Config struct {
	Dataset   Dataset   `koanf:"dataset" validate:"required"`
	Screen    Screen    `koanf:"screen" validate:"required"`
	Sampling  Sampling  `koanf:"sampling" validate:"required"`
	Detection Detection `koanf:"detection" validate:"required"`
}

// Dataset describes how recordings are laid out on disk.
type Dataset struct {
	// Root is the directory holding the recording files.
	Root string `koanf:"root"`
	// NameFormat is the file name pattern of block files; it must
	// contain one %d verb for the block number.
	NameFormat string `koanf:"nameformat" validate:"required"`
	// Blocks is the number of recording blocks per session.
	Blocks int `koanf:"blocks" validate:"gt=0"`
	// Delimiter separates fields in the recording files.
	Delimiter string `koanf:"delimiter" validate:"required,len=1"`
	// Conditions lists the annotation labels of interest.
	Conditions []string `koanf:"conditions" validate:"required,min=1"`
}

// Screen holds the stimulus display resolution in pixels.
type Screen struct {
	Width  float64 `koanf:"width" validate:"gt=0"`
	Height float64 `koanf:"height" validate:"gt=0"`
}

// Sampling holds the sample rates of the two signal sources.
type Sampling struct {
	// Tracker is the video eye tracker rate in Hz.
	Tracker float64 `koanf:"tracker" validate:"gt=0"`
	// EOG is the electrooculography rate in Hz.
	EOG float64 `koanf:"eog" validate:"gt=0"`
}

// Detection holds event detection settings.
type Detection struct {
	// Method selects the detector, "gazepoint" or "wavelet".
	Method string `koanf:"method" validate:"oneof=gazepoint wavelet"`
	// MinFixationMS is the minimum accepted fixation duration in
	// milliseconds.
	MinFixationMS float64 `koanf:"minfixationms" validate:"gte=0"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Dataset: Dataset{
			NameFormat: "block_%d.tsv",
			Blocks:     4,
			Delimiter:  "\t",
			Conditions: []string{"reading", "scanning", "skimming", "proof_reading"},
		},
		Screen: Screen{
			Width:  1920,
			Height: 1080,
		},
		Sampling: Sampling{
			Tracker: 150,
			EOG:     1000,
		},
		Detection: Detection{
			Method:        "gazepoint",
			MinFixationMS: 200,
		},
	}
}

// Load builds the configuration from defaults, the optional file at path
// and RCKIT_ environment variables, then validates the result. An empty
// path skips the file layer.
func Load(path string) (Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return Config{}, fmt.Errorf("config: defaults: %w", err)
	}

	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return Config{}, err
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	// RCKIT_DATASET_BLOCKS=6 maps to dataset.blocks. Field names within
	// a block are single words, so only the first underscore nests.
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		return strings.Replace(key, "_", ".", 1)
	}), nil)
	if err != nil {
		return Config{}, fmt.Errorf("config: environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("config: validate: %w", err)
	}

	return cfg, nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return kjson.Parser(), nil
	case ".yaml", ".yml":
		return kyaml.Parser(), nil
	default:
		return nil, fmt.Errorf("config: unsupported file extension %q", ext)
	}
}
