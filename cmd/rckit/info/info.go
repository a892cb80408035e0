// Package info provides the info command, a quick structural summary of a
// recording session.
package info

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/ltkhiem/rckit/cmd/rckit/shared"
	"github.com/ltkhiem/rckit/gazepoint"
)

// Columns the detectors depend on; their absence limits what the other
// commands can do with the session.
var keyColumns = []string{
	gazepoint.ColTime,
	gazepoint.ColFPOGX,
	gazepoint.ColFPOGY,
	gazepoint.ColFPOGID,
	gazepoint.ColFPOGV,
	gazepoint.ColUser,
}

// GetCommand returns the CLI command printing session information.
func GetCommand() *cli.Command {
	return &cli.Command{
		Name:  "info",
		Usage: "Summarize the blocks of a recording session",
		Flags: shared.GetCommonFlags(),
		Action: func(cCtx *cli.Context) error {
			cfg, err := shared.LoadConfig(cCtx)
			if err != nil {
				return err
			}

			recs, err := gazepoint.Load(cfg.Dataset.Root, cfg.Dataset.NameFormat,
				gazepoint.WithBlocks(cfg.Dataset.Blocks),
				gazepoint.WithDelimiter(rune(cfg.Dataset.Delimiter[0])))
			if err != nil {
				return fmt.Errorf("load session: %w", err)
			}

			printSummary(recs)
			warnMissingColumns(recs)
			return nil
		},
	}
}

func printSummary(recs []*gazepoint.Recording) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "BLOCK\tSAMPLES\tDURATION\tRATE\tCOLUMNS")

	for i, rec := range recs {
		duration := "-"
		if d, err := rec.Duration(); err == nil {
			duration = fmt.Sprintf("%.1fs", d)
		}
		rate := "-"
		if r, err := rec.SampleRate(); err == nil {
			rate = fmt.Sprintf("%.1fHz", r)
		}
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%d\n", i, rec.Len(), duration, rate, len(rec.Columns()))
	}

	w.Flush()
}

func warnMissingColumns(recs []*gazepoint.Recording) {
	for i, rec := range recs {
		var missing []string
		for _, col := range keyColumns {
			if !rec.HasColumn(col) {
				missing = append(missing, col)
			}
		}
		if len(missing) > 0 {
			color.Yellow("block %d: missing columns: %s", i, strings.Join(missing, ", "))
		}
	}
}
