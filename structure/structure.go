// Package structure mines recurring clause signatures: the root's
// dependency label plus the labels of its immediate arguments. The
// signature is a coarse syntactic fingerprint, cheap to compute yet
// discriminative enough to surface recurring report-writing idioms.
package structure

import (
	"context"
	"strings"

	"github.com/korpuslab/patmin/clean"
	"github.com/korpuslab/patmin/freq"
	"github.com/korpuslab/patmin/provider"
	"github.com/korpuslab/patmin/sentence"
	"github.com/korpuslab/patmin/stoplist"
)

// minLabels is the minimum signature length; shorter candidates are
// dropped, never recorded.
const minLabels = 2

// Signature is an ordered tuple of dependency labels: the root's own
// label followed by the labels of its direct arguments in sentence order.
type Signature []string

// Key returns the canonical string form, labels joined with "+".
func (s Signature) Key() string {
	return strings.Join(s, "+")
}

// Record is one mined clause signature with its frequency and the first
// sentence (and full parse) that produced it.
type Record struct {
	Signature Signature         `json:"signature"`
	Count     int               `json:"count"`
	Sentence  string            `json:"sentence"`
	Parse     sentence.Sentence `json:"parse"`
}

type Miner struct {
	provider      provider.Provider
	excludeLabels stoplist.Set
}

func NewMiner(p provider.Provider, excludeLabels stoplist.Set) *Miner {
	return &Miner{provider: p, excludeLabels: excludeLabels}
}

type example struct {
	signature Signature
	sentence  string
	parse     sentence.Sentence
}

// Top returns at most topN signatures ordered by descending count, ties
// broken by first occurrence in corpus order. Regulatory-standard phrases
// are stripped from each sentence before parsing so boilerplate does not
// distort the clause shape; the retained example is the stripped text.
func (m *Miner) Top(ctx context.Context, sentences []string, topN int) ([]Record, error) {
	counter := freq.NewCounter[example]()

	for _, text := range sentences {
		stripped := clean.StandardCodes(text)

		parse, err := m.provider.Parse(ctx, stripped)
		if err != nil {
			return nil, err
		}

		// coordinated clauses can carry several roots; each one is an
		// independent clause candidate
		for _, root := range parse.Roots() {
			sig := m.signature(parse, root)
			if len(sig) < minLabels {
				continue
			}

			counter.Add(sig.Key(), example{
				signature: sig,
				sentence:  stripped,
				parse:     parse,
			})
		}
	}

	entries := counter.Top(topN)
	records := make([]Record, len(entries))
	for i, e := range entries {
		records[i] = Record{
			Signature: e.Value.signature,
			Count:     e.Count,
			Sentence:  e.Value.sentence,
			Parse:     e.Value.parse,
		}
	}

	return records, nil
}

func (m *Miner) signature(parse sentence.Sentence, root sentence.Token) Signature {
	sig := Signature{root.Dep}

	for _, child := range parse.Children(root) {
		if m.excludeLabels.Has(child.Dep) {
			continue
		}

		sig = append(sig, child.Dep)
	}

	return sig
}
