// Command rckit inspects Gazepoint eye-tracking recordings, detects
// ocular events and extracts reading activity features.
package main

import (
	"os"

	"github.com/fatih/color"
	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v2"

	detectcmd "github.com/ltkhiem/rckit/cmd/rckit/detect"
	featurescmd "github.com/ltkhiem/rckit/cmd/rckit/features"
	infocmd "github.com/ltkhiem/rckit/cmd/rckit/info"
)

func main() {
	app := &cli.App{
		Name:  "rckit",
		Usage: "reading comprehension toolkit for eye-tracking data",
		Commands: []*cli.Command{
			infocmd.GetCommand(),
			detectcmd.GetCommand(),
			featurescmd.GetCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		color.Red("Error: %s", err)
		os.Exit(1)
	}
}
