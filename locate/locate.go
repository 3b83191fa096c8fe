// Package locate re-finds full example sentences for mined lemma
// n-grams.
package locate

import (
	"context"

	"github.com/korpuslab/patmin/clean"
	"github.com/korpuslab/patmin/ngram"
	"github.com/korpuslab/patmin/provider"
	"github.com/korpuslab/patmin/stoplist"
)

type Locator struct {
	provider provider.Provider
	exclude  stoplist.Set
}

func New(p provider.Provider, exclude stoplist.Set) *Locator {
	return &Locator{provider: p, exclude: exclude}
}

// FirstWithNgram returns the first sentence, in corpus order, whose
// filtered lemma sequence contains lemmaKey contiguously. The returned
// text is the original sentence as it appears in the corpus. A false
// result is an expected outcome, not an error: callers simply omit the
// full example.
func (l *Locator) FirstWithNgram(ctx context.Context, sentences []string, lemmaKey []string) (string, bool, error) {
	n := len(lemmaKey)
	if n == 0 {
		return "", false, nil
	}

	for _, text := range sentences {
		stripped := clean.StandardCodes(text)

		parse, err := l.provider.Parse(ctx, stripped)
		if err != nil {
			return "", false, err
		}

		lemmas := ngram.Lemmas(parse.Tokens, l.exclude)
		for i := 0; i+n <= len(lemmas); i++ {
			if equal(lemmas[i:i+n], lemmaKey) {
				return text, true, nil
			}
		}
	}

	return "", false, nil
}

func equal(a, b []string) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
