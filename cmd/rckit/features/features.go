// Package features provides the features command, turning a recording
// session into trial-level feature vectors.
package features

import (
	"encoding/json"
	"fmt"

	"github.com/google/renameio/v2"
	"github.com/urfave/cli/v2"

	"github.com/ltkhiem/rckit/cmd/rckit/shared"
	rcdetect "github.com/ltkhiem/rckit/detect"
	"github.com/ltkhiem/rckit/features"
	"github.com/ltkhiem/rckit/internal/log"
	"github.com/ltkhiem/rckit/stats/descriptive"
)

const (
	extractorFlag = "extractor"
	binsFlag      = "bins"
)

// GetCommand returns the CLI command for feature extraction.
func GetCommand() *cli.Command {
	return &cli.Command{
		Name:  "features",
		Usage: "Extract global eye movement features per segment",
		Flags: getFlags(),
		Action: func(cCtx *cli.Context) error {
			log.Configure(log.Config{
				Level:  shared.LogLevel(cCtx),
				Pretty: cCtx.Bool(shared.PrettyFlag),
			})
			logger := log.WithComponent("features")

			cfg, err := shared.LoadConfig(cCtx)
			if err != nil {
				return err
			}
			method, err := rcdetect.ParseMethod(cfg.Detection.Method)
			if err != nil {
				return err
			}
			extractor, err := parseExtractor(cCtx.String(extractorFlag))
			if err != nil {
				return err
			}

			recs, err := shared.LoadSession(cCtx, cfg)
			if err != nil {
				return err
			}

			trials := make([]map[string]any, 0, len(recs))
			for i, rec := range recs {
				events, err := shared.RunDetection(rec, method, cfg)
				if err != nil {
					return fmt.Errorf("segment %d: %w", i, err)
				}
				trials = append(trials, features.Global(events,
					features.WithScreenSize(cfg.Screen.Width, cfg.Screen.Height)))
			}
			logger.Info().Int("segments", len(trials)).Msg("global features computed")

			// Saccade indices are per-trial positions, not distributions.
			summaries, _, err := descriptive.BulkSummarize(trials, extractor, cCtx.Int(binsFlag), []string{"regr_id"})
			if err != nil {
				return err
			}

			out := cCtx.String(shared.OutFlag)
			if err := writeJSON(out, summaries); err != nil {
				return err
			}
			logger.Info().Str("path", out).Msg("features written")
			return nil
		},
	}
}

func getFlags() []cli.Flag {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:  extractorFlag,
			Usage: "Summary family: all, bof or hist",
			Value: "all",
		},
		&cli.IntFlag{
			Name:  binsFlag,
			Usage: "Number of histogram bins",
			Value: 16,
		},
		&cli.StringFlag{
			Name:    shared.AnnotationFlag,
			Aliases: []string{"a"},
			Usage:   "Keep only segments whose marker contains this label",
		},
		&cli.StringFlag{
			Name:    shared.OutFlag,
			Aliases: []string{"o"},
			Usage:   "Output JSON file",
			Value:   "features.json",
		},
	}

	flags = append(flags, shared.GetCommonFlags()...)
	return flags
}

func parseExtractor(name string) (descriptive.Extractor, error) {
	switch name {
	case "all":
		return descriptive.ExtractAll, nil
	case "bof":
		return descriptive.ExtractBOF, nil
	case "hist":
		return descriptive.ExtractHist, nil
	default:
		return 0, fmt.Errorf("unknown extractor %q", name)
	}
}

func writeJSON(path string, summaries []map[string]float64) error {
	data, err := json.MarshalIndent(summaries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode features: %w", err)
	}
	if err := renameio.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
