// Package pipeline runs the full analysis over a loaded corpus: sentence
// filtering, size statistics, n-gram and clause-structure mining, example
// location and dependency-tree rendering. A run either completes every
// stage or fails as a whole; no partial reports are produced.
package pipeline

import (
	"context"
	"fmt"
	"sync"

	"github.com/korpuslab/patmin/filter"
	"github.com/korpuslab/patmin/locate"
	"github.com/korpuslab/patmin/ngram"
	"github.com/korpuslab/patmin/provider"
	"github.com/korpuslab/patmin/report"
	"github.com/korpuslab/patmin/stat"
	"github.com/korpuslab/patmin/stoplist"
	"github.com/korpuslab/patmin/structure"
	"github.com/rs/zerolog"
)

// Stages lists the pipeline stages in execution order. Progress displays
// index into this list.
var Stages = []string{
	"warm",
	"filter",
	"stats",
	"bigrams",
	"trigrams",
	"structures",
	"trees",
}

// AnalysisError wraps the failure of one stage. The whole run is
// discarded when any stage fails.
type AnalysisError struct {
	Stage string
	Err   error
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("analysis failed at stage %s: %v", e.Stage, e.Err)
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}

// Options configures one Analyzer.
type Options struct {
	// Exclude is the lemma exclusion set applied by the n-gram miner and
	// the example locator.
	Exclude stoplist.Set

	// ExcludeLabels is the set of dependency labels dropped from clause
	// signatures.
	ExcludeLabels stoplist.Set

	TopNgrams     int
	TopStructures int

	// Workers bounds the parallel parse warm-up. Zero disables it.
	Workers int

	Logger zerolog.Logger

	// OnStage, when set, is called with each stage name just before the
	// stage runs.
	OnStage func(stage string)
}

type Analyzer struct {
	provider   provider.Provider
	filter     *filter.Filter
	stats      *stat.Handler
	ngrams     *ngram.Miner
	structures *structure.Miner
	locator    *locate.Locator
	opts       Options
}

func NewAnalyzer(p provider.Provider, opts Options) *Analyzer {
	return &Analyzer{
		provider:   p,
		filter:     filter.New(p),
		stats:      stat.NewHandler(p),
		ngrams:     ngram.NewMiner(p, opts.Exclude),
		structures: structure.NewMiner(p, opts.ExcludeLabels),
		locator:    locate.New(p, opts.Exclude),
		opts:       opts,
	}
}

// Run analyzes the corpus and assembles the report. Cancellation is
// honored between stages: a stage that has started runs to completion.
func (a *Analyzer) Run(ctx context.Context, source string, sentences []string) (*report.Report, error) {
	log := a.opts.Logger.With().Str("source", source).Logger()
	log.Info().Int("rows", len(sentences)).Msg("analysis started")

	if err := a.stage(ctx, "warm"); err != nil {
		return nil, err
	}
	a.warm(ctx, sentences)

	if err := a.stage(ctx, "filter"); err != nil {
		return nil, err
	}
	kept, err := a.filter.Apply(ctx, sentences)
	if err != nil {
		return nil, &AnalysisError{Stage: "filter", Err: err}
	}
	log.Debug().Int("kept", len(kept)).Int("dropped", len(sentences)-len(kept)).Msg("sentences filtered")

	if err := a.stage(ctx, "stats"); err != nil {
		return nil, err
	}
	stats, err := a.stats.Aggregate(ctx, kept)
	if err != nil {
		return nil, &AnalysisError{Stage: "stats", Err: err}
	}

	if err := a.stage(ctx, "bigrams"); err != nil {
		return nil, err
	}
	bigrams, err := a.mineNgrams(ctx, kept, 2)
	if err != nil {
		return nil, &AnalysisError{Stage: "bigrams", Err: err}
	}

	if err := a.stage(ctx, "trigrams"); err != nil {
		return nil, err
	}
	trigrams, err := a.mineNgrams(ctx, kept, 3)
	if err != nil {
		return nil, &AnalysisError{Stage: "trigrams", Err: err}
	}

	if err := a.stage(ctx, "structures"); err != nil {
		return nil, err
	}
	structures, err := a.structures.Top(ctx, kept, a.opts.TopStructures)
	if err != nil {
		return nil, &AnalysisError{Stage: "structures", Err: err}
	}
	log.Debug().
		Int("bigrams", len(bigrams)).
		Int("trigrams", len(trigrams)).
		Int("structures", len(structures)).
		Msg("mining finished")

	if err := a.stage(ctx, "trees"); err != nil {
		return nil, err
	}
	trees, err := a.renderTrees(ctx, bigrams, trigrams, structures)
	if err != nil {
		return nil, &AnalysisError{Stage: "trees", Err: err}
	}

	rep := report.Assemble(source, stats, bigrams, trigrams, structures, trees)
	log.Info().Msg("analysis finished")

	return rep, nil
}

// stage checks for cancellation and announces the stage about to run.
func (a *Analyzer) stage(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return &AnalysisError{Stage: name, Err: err}
	}

	a.opts.Logger.Debug().Str("stage", name).Msg("stage started")
	if a.opts.OnStage != nil {
		a.opts.OnStage(name)
	}

	return nil
}

// warm parses every sentence with bounded parallelism so a caching
// provider is populated before the sequential stages run. Failures here
// are ignored; the stages surface them with proper context.
func (a *Analyzer) warm(ctx context.Context, sentences []string) {
	if a.opts.Workers <= 0 {
		return
	}

	sem := make(chan struct{}, a.opts.Workers)
	var wg sync.WaitGroup
	for _, text := range sentences {
		wg.Add(1)
		sem <- struct{}{}
		go func(text string) {
			defer wg.Done()
			defer func() { <-sem }()

			if _, err := a.provider.Parse(ctx, text); err != nil {
				a.opts.Logger.Debug().Err(err).Msg("warm-up parse failed")
			}
		}(text)
	}
	wg.Wait()
}

// mineNgrams extracts the top n-grams and locates a full example sentence
// for each.
func (a *Analyzer) mineNgrams(ctx context.Context, sentences []string, n int) ([]report.NgramEntry, error) {
	records, err := a.ngrams.Extract(ctx, sentences, n, a.opts.TopNgrams)
	if err != nil {
		return nil, err
	}

	entries := make([]report.NgramEntry, len(records))
	for i, rec := range records {
		full, found, err := a.locator.FirstWithNgram(ctx, sentences, rec.Lemmas)
		if err != nil {
			return nil, err
		}

		entries[i] = report.NgramEntry{Record: rec}
		if found {
			entries[i].FullExample = full
		}
	}

	return entries, nil
}

// renderTrees collects dependency-tree renderings for every located
// n-gram example and every mined structure. Entries without a rendering
// are omitted.
func (a *Analyzer) renderTrees(ctx context.Context, bigrams, trigrams []report.NgramEntry, structures []structure.Record) ([]report.TreeRendering, error) {
	trees := []report.TreeRendering{}

	add := func(label, text string) error {
		html, err := a.provider.Render(ctx, text)
		if err != nil {
			return err
		}

		if html != "" {
			trees = append(trees, report.TreeRendering{Label: label, HTML: html})
		}

		return nil
	}

	for i, e := range bigrams {
		if e.FullExample == "" {
			continue
		}
		if err := add(report.TreeLabel("bigram", i+1), e.FullExample); err != nil {
			return nil, err
		}
	}

	for i, e := range trigrams {
		if e.FullExample == "" {
			continue
		}
		if err := add(report.TreeLabel("trigram", i+1), e.FullExample); err != nil {
			return nil, err
		}
	}

	for i, rec := range structures {
		if err := add(report.TreeLabel("struct", i+1), rec.Sentence); err != nil {
			return nil, err
		}
	}

	return trees, nil
}
