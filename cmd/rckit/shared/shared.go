// Package shared provides the CLI flag definitions common to the rckit
// commands and helpers to merge flag values into the configuration.
package shared

import (
	"github.com/urfave/cli/v2"

	"github.com/ltkhiem/rckit/config"
	"github.com/ltkhiem/rckit/detect"
	"github.com/ltkhiem/rckit/gazepoint"
)

const categoryDataset = "dataset"

// ConfigFlag is the name of the flag selecting the configuration file.
const ConfigFlag = "config"

// DataFlag is the name of the flag pointing at the recording directory.
const DataFlag = "data"

// FormatFlag is the name of the flag with the block file name pattern.
const FormatFlag = "format"

// BlocksFlag is the name of the flag with the number of blocks.
const BlocksFlag = "blocks"

// AnnotationFlag is the name of the flag selecting the condition label.
const AnnotationFlag = "annotation"

// OutFlag is the name of the flag with the output directory.
const OutFlag = "out"

// VerboseFlag is the name of the flag enabling debug logging.
const VerboseFlag = "verbose"

// PrettyFlag is the name of the flag enabling console log output.
const PrettyFlag = "pretty"

// GetCommonFlags returns the flags shared by all commands.
func GetCommonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    ConfigFlag,
			Aliases: []string{"c"},
			Usage:   "Path to a JSON or YAML configuration file",
		},
		&cli.StringFlag{
			Name:     DataFlag,
			Aliases:  []string{"d"},
			Usage:    "Directory holding the recording files",
			Category: categoryDataset,
		},
		&cli.StringFlag{
			Name:     FormatFlag,
			Aliases:  []string{"f"},
			Usage:    "Block file name pattern with one %d verb",
			Category: categoryDataset,
		},
		&cli.IntFlag{
			Name:     BlocksFlag,
			Aliases:  []string{"b"},
			Usage:    "Number of recording blocks per session",
			Category: categoryDataset,
		},
		&cli.BoolFlag{
			Name:    VerboseFlag,
			Aliases: []string{"v"},
			Usage:   "Enable debug logging",
		},
		&cli.BoolFlag{
			Name:  PrettyFlag,
			Usage: "Human-readable log output",
		},
	}
}

// LoadConfig reads the configuration file named by the config flag and
// overlays the dataset flags that were set on the command line.
func LoadConfig(cCtx *cli.Context) (config.Config, error) {
	cfg, err := config.Load(cCtx.String(ConfigFlag))
	if err != nil {
		return config.Config{}, err
	}

	if v := cCtx.String(DataFlag); v != "" {
		cfg.Dataset.Root = v
	}
	if v := cCtx.String(FormatFlag); v != "" {
		cfg.Dataset.NameFormat = v
	}
	if v := cCtx.Int(BlocksFlag); v > 0 {
		cfg.Dataset.Blocks = v
	}

	return cfg, nil
}

// LogLevel maps the verbose flag to a log level name.
func LogLevel(cCtx *cli.Context) string {
	if cCtx.Bool(VerboseFlag) {
		return "debug"
	}
	return ""
}

// LoadSession loads the session blocks and, when the annotation flag is
// set, keeps only the matching condition segments.
func LoadSession(cCtx *cli.Context, cfg config.Config) ([]*gazepoint.Recording, error) {
	opts := []gazepoint.LoadOption{
		gazepoint.WithBlocks(cfg.Dataset.Blocks),
		gazepoint.WithDelimiter(rune(cfg.Dataset.Delimiter[0])),
	}

	if annotation := cCtx.String(AnnotationFlag); annotation != "" {
		return gazepoint.LoadAndEpoch(cfg.Dataset.Root, cfg.Dataset.NameFormat, annotation, opts...)
	}
	return gazepoint.Load(cfg.Dataset.Root, cfg.Dataset.NameFormat, opts...)
}

// RunDetection dispatches to the configured detector. The wavelet method
// reads the gaze position traces at the recording's own sample rate,
// falling back to the configured tracker rate.
func RunDetection(rec *gazepoint.Recording, method detect.Method, cfg config.Config) (detect.Events, error) {
	switch method {
	case detect.MethodWavelet:
		horizontal, err := rec.Float(gazepoint.ColFPOGX)
		if err != nil {
			return detect.Events{}, err
		}
		vertical, err := rec.Float(gazepoint.ColFPOGY)
		if err != nil {
			return detect.Events{}, err
		}

		rate, err := rec.SampleRate()
		if err != nil {
			rate = cfg.Sampling.Tracker
		}
		return detect.ByWavelet(vertical, horizontal, detect.WithSampleRate(rate))
	default:
		return detect.ByGazepoint(rec, detect.WithMinFixationMS(cfg.Detection.MinFixationMS))
	}
}
