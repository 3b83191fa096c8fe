// Package ngram extracts the most frequent contiguous lemma n-grams from
// a corpus of sentences.
package ngram

import (
	"context"
	"strings"

	"github.com/korpuslab/patmin/freq"
	"github.com/korpuslab/patmin/provider"
	"github.com/korpuslab/patmin/sentence"
	"github.com/korpuslab/patmin/stoplist"
)

// Record is one mined n-gram: its case-folded lemma sequence, the number
// of windows it occurred in, and the surface form of its first occurrence.
type Record struct {
	Lemmas  []string `json:"lemmas"`
	Count   int      `json:"count"`
	Example string   `json:"example"`
}

// Key returns the canonical identity of the record's lemma sequence.
func (r Record) Key() string {
	return strings.Join(r.Lemmas, " ")
}

type Miner struct {
	provider provider.Provider
	exclude  stoplist.Set
}

func NewMiner(p provider.Provider, exclude stoplist.Set) *Miner {
	return &Miner{provider: p, exclude: exclude}
}

type example struct {
	lemmas  []string
	surface string
}

// Extract returns at most topK n-gram records ordered by descending count;
// equal counts rank by first occurrence in corpus order. An empty corpus
// yields an empty result.
func (m *Miner) Extract(ctx context.Context, sentences []string, n, topK int) ([]Record, error) {
	counter := freq.NewCounter[example]()

	for _, text := range sentences {
		parse, err := m.provider.Parse(ctx, text)
		if err != nil {
			return nil, err
		}

		lemmas, surfaces := m.filtered(parse.Tokens)

		for i := 0; i+n <= len(lemmas); i++ {
			window := lemmas[i : i+n]

			// Removing excluded tokens shifts adjacency, so each fresh
			// window must be re-validated against the exclusion set to
			// avoid bridging across an excluded word's former position.
			if m.anyExcluded(window) {
				continue
			}

			key := strings.Join(window, " ")
			counter.Add(key, example{
				lemmas:  append([]string(nil), window...),
				surface: strings.Join(surfaces[i:i+n], " "),
			})
		}
	}

	entries := counter.Top(topK)
	records := make([]Record, len(entries))
	for i, e := range entries {
		records[i] = Record{
			Lemmas:  e.Value.lemmas,
			Count:   e.Count,
			Example: e.Value.surface,
		}
	}

	return records, nil
}

// Lemmas returns the filtered, case-folded lemma sequence of one parsed
// sentence: alphabetic tokens whose lemma is not excluded. The locator
// scans the same sequence.
func Lemmas(tokens []sentence.Token, exclude stoplist.Set) []string {
	lemmas := []string{}
	for _, t := range tokens {
		if !t.IsAlpha {
			continue
		}

		lemma := strings.ToLower(t.Lemma)
		if exclude.Has(lemma) {
			continue
		}

		lemmas = append(lemmas, lemma)
	}

	return lemmas
}

func (m *Miner) filtered(tokens []sentence.Token) (lemmas, surfaces []string) {
	for _, t := range tokens {
		if !t.IsAlpha {
			continue
		}

		lemma := strings.ToLower(t.Lemma)
		if m.exclude.Has(lemma) {
			continue
		}

		lemmas = append(lemmas, lemma)
		surfaces = append(surfaces, strings.ToLower(t.Text))
	}

	return lemmas, surfaces
}

func (m *Miner) anyExcluded(window []string) bool {
	for _, lemma := range window {
		if m.exclude.Has(lemma) {
			return true
		}
	}

	return false
}
