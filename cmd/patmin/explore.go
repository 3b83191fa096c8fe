package main

import (
	"fmt"
	"path/filepath"

	"github.com/korpuslab/patmin/corpus"
	"github.com/korpuslab/patmin/explore"
	"github.com/korpuslab/patmin/locate"
	"github.com/korpuslab/patmin/pipeline"

	"github.com/urfave/cli/v2"
)

func exploreCommand() *cli.Command {
	return &cli.Command{
		Name:      "explore",
		Usage:     "analyze a corpus, then browse the results interactively",
		ArgsUsage: "<corpus.csv|corpus.tsv|corpus.txt>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "column",
				Usage: "spreadsheet column holding the sentences",
			},
			&cli.StringFlag{
				Name:  "annotations",
				Usage: "pre-annotated corpus JSON; skips the annotation service",
			},
		},
		Action: runExplore,
	}
}

func runExplore(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one corpus file, got %d arguments", c.NArg())
	}
	path := c.Args().First()

	conf, err := loadConfig(c)
	if err != nil {
		return err
	}
	if col := c.String("column"); col != "" {
		conf.Column = col
	}

	sentences, err := corpus.Load(path, conf.Column)
	if err != nil {
		return err
	}

	p, closeCache, err := buildProvider(c.Context, conf, c.String("annotations"))
	if err != nil {
		return err
	}
	defer closeCache()

	analyzer := pipeline.NewAnalyzer(p, analyzerOptions(conf, newLogger(c), nil))
	rep, err := analyzer.Run(c.Context, filepath.Base(path), sentences)
	if err != nil {
		return err
	}

	locator := locate.New(p, conf.Exclusions())
	return explore.NewHandler(rep, locator, sentences).Run(c.Context)
}
