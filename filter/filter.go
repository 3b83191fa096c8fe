// Package filter decides which cleaned strings qualify as analyzable
// sentences.
package filter

import (
	"context"

	"github.com/korpuslab/patmin/provider"
	"github.com/korpuslab/patmin/sentence"
)

// minWords is the minimum number of non-punctuation, non-whitespace
// tokens a real sentence must have.
const minWords = 3

type Filter struct {
	provider provider.Provider
}

func New(p provider.Provider) *Filter {
	return &Filter{provider: p}
}

// IsRealSentence reports whether text parses into at least three words,
// one of which is a verb.
func (f *Filter) IsRealSentence(ctx context.Context, text string) (bool, error) {
	parse, err := f.provider.Parse(ctx, text)
	if err != nil {
		return false, err
	}

	words := parse.Words()
	if len(words) < minWords {
		return false, nil
	}

	for _, w := range words {
		if w.Pos == sentence.VerbPos {
			return true, nil
		}
	}

	return false, nil
}

// Apply returns the subset of sentences that qualify, preserving corpus
// order.
func (f *Filter) Apply(ctx context.Context, sentences []string) ([]string, error) {
	kept := []string{}
	for _, s := range sentences {
		ok, err := f.IsRealSentence(ctx, s)
		if err != nil {
			return nil, err
		}

		if ok {
			kept = append(kept, s)
		}
	}

	return kept, nil
}
