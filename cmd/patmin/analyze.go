package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/korpuslab/patmin/corpus"
	"github.com/korpuslab/patmin/pipeline"
	"github.com/korpuslab/patmin/render"
	"github.com/korpuslab/patmin/report"

	"github.com/gosuri/uiprogress"
	"github.com/urfave/cli/v2"
)

func analyzeCommand() *cli.Command {
	return &cli.Command{
		Name:      "analyze",
		Usage:     "run the full analysis over a corpus file",
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
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "directory to write report.txt and tree renderings to",
			},
			&cli.BoolFlag{
				Name:  "color",
				Usage: "colorize terminal output",
			},
			&cli.BoolFlag{
				Name:  "no-progress",
				Usage: "disable the progress bar",
			},
		},
		Action: runAnalyze,
	}
}

func runAnalyze(c *cli.Context) error {
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

	progress := !c.Bool("no-progress")
	onStage := func(string) {}
	if progress {
		uiprogress.Start()
		bar := uiprogress.AddBar(len(pipeline.Stages))
		bar.AppendCompleted()
		bar.PrependElapsed()
		onStage = func(string) { bar.Incr() }
	}

	analyzer := pipeline.NewAnalyzer(p, analyzerOptions(conf, newLogger(c), onStage))
	rep, err := analyzer.Run(c.Context, filepath.Base(path), sentences)
	if progress {
		uiprogress.Stop()
	}
	if err != nil {
		return err
	}

	r := render.NewRenderer()
	r.HasColor = c.Bool("color")
	r.Report(os.Stdout, rep)

	if out := c.String("out"); out != "" {
		return writeReport(out, rep)
	}

	return nil
}

// writeReport exports the plain-text report and one HTML file per
// dependency-tree rendering.
func writeReport(dir string, rep *report.Report) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, "report.txt"))
	if err != nil {
		return err
	}
	render.NewRenderer().Report(f, rep)
	if err := f.Close(); err != nil {
		return err
	}

	for _, tree := range rep.Trees {
		target := filepath.Join(dir, tree.Label+".html")
		if err := os.WriteFile(target, []byte(tree.HTML), 0644); err != nil {
			return fmt.Errorf("failed to write tree %s: %w", tree.Label, err)
		}
	}

	fmt.Printf("Report written to %s (%d tree renderings)\n", dir, len(rep.Trees))
	return nil
}
