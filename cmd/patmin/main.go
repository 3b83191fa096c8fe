// Command patmin mines linguistic patterns from short Russian corpora:
// frequent lemma n-grams, recurring clause structures, example sentences
// and dependency-tree renderings.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "patmin",
		Usage: "mine lemma n-grams and clause structures from a Russian corpus",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML config file",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "enable debug logging",
			},
		},
		Commands: []*cli.Command{
			analyzeCommand(),
			serveCommand(),
			exploreCommand(),
			versionCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "patmin: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(c *cli.Context) zerolog.Logger {
	level := zerolog.InfoLevel
	if c.Bool("verbose") {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		Level(level).
		With().Timestamp().Logger()
}
