// Package detect provides the detect command, running ocular event
// detection over a recording session and writing event tables.
package detect

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/ltkhiem/rckit/cmd/rckit/shared"
	rcdetect "github.com/ltkhiem/rckit/detect"
	"github.com/ltkhiem/rckit/gazepoint"
	"github.com/ltkhiem/rckit/internal/log"
	"github.com/ltkhiem/rckit/interp"
)

const (
	methodFlag = "method"
	repairFlag = "repair"
	orderFlag  = "order"
)

// GetCommand returns the CLI command for event detection.
func GetCommand() *cli.Command {
	return &cli.Command{
		Name:  "detect",
		Usage: "Detect fixations, saccades and blinks",
		Flags: getFlags(),
		Action: func(cCtx *cli.Context) error {
			log.Configure(log.Config{
				Level:  shared.LogLevel(cCtx),
				Pretty: cCtx.Bool(shared.PrettyFlag),
			})
			logger := log.WithComponent("detect")

			cfg, err := shared.LoadConfig(cCtx)
			if err != nil {
				return err
			}

			if v := cCtx.String(methodFlag); v != "" {
				cfg.Detection.Method = v
			}
			method, err := rcdetect.ParseMethod(cfg.Detection.Method)
			if err != nil {
				return err
			}

			recs, err := shared.LoadSession(cCtx, cfg)
			if err != nil {
				return err
			}
			logger.Info().Int("segments", len(recs)).Str("method", method.String()).Msg("session loaded")

			if cCtx.Bool(repairFlag) {
				order := cCtx.Int(orderFlag)
				for i, rec := range recs {
					if err := repairGaps(rec, order); err != nil {
						return fmt.Errorf("segment %d: repair: %w", i, err)
					}
				}
				logger.Debug().Int("order", order).Msg("gaps repaired")
			}

			outDir := cCtx.String(shared.OutFlag)
			for i, rec := range recs {
				events, err := shared.RunDetection(rec, method, cfg)
				if err != nil {
					return fmt.Errorf("segment %d: %w", i, err)
				}

				dir := filepath.Join(outDir, fmt.Sprintf("segment_%03d", i))
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("segment %d: %w", i, err)
				}
				if err := rcdetect.WriteEvents(dir, events); err != nil {
					return fmt.Errorf("segment %d: %w", i, err)
				}

				logger.Info().
					Int("segment", i).
					Int("fixations", len(events.Fixations)).
					Int("saccades", len(events.Saccades)).
					Int("blinks", len(events.Blinks)).
					Msg("events written")
			}

			return nil
		},
	}
}

func getFlags() []cli.Flag {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:    methodFlag,
			Aliases: []string{"m"},
			Usage:   "Detection method (gazepoint or wavelet)",
		},
		&cli.BoolFlag{
			Name:  repairFlag,
			Usage: "Interpolate gaze positions over invalid samples",
		},
		&cli.IntFlag{
			Name:  orderFlag,
			Usage: "Interpolation order for --repair (1 or 3)",
			Value: 1,
		},
		&cli.StringFlag{
			Name:    shared.AnnotationFlag,
			Aliases: []string{"a"},
			Usage:   "Keep only segments whose marker contains this label",
		},
		&cli.StringFlag{
			Name:    shared.OutFlag,
			Aliases: []string{"o"},
			Usage:   "Directory for the event tables",
			Value:   "events",
		},
	}

	flags = append(flags, shared.GetCommonFlags()...)
	return flags
}

// repairGaps interpolates the gaze position columns across invalid
// samples, as flagged by FPOGV.
func repairGaps(rec *gazepoint.Recording, order int) error {
	validity, err := rec.Float(gazepoint.ColFPOGV)
	if err != nil {
		return err
	}
	valid := make([]bool, len(validity))
	for i, v := range validity {
		valid[i] = v == 1
	}

	for _, col := range []string{gazepoint.ColFPOGX, gazepoint.ColFPOGY} {
		signal, err := rec.Float(col)
		if err != nil {
			return err
		}
		filled, err := interp.FillGaps(signal, valid, order)
		if err != nil {
			return err
		}
		if err := rec.SetFloats(col, filled); err != nil {
			return err
		}
	}

	return nil
}
