// Package report assembles the outputs of the miners into a single
// result structure. It performs no linguistic analysis of its own and
// never mutates the records it is given.
package report

import (
	"fmt"

	"github.com/korpuslab/patmin/ngram"
	"github.com/korpuslab/patmin/stat"
	"github.com/korpuslab/patmin/structure"
)

// NgramEntry is one reported n-gram: the mined record plus, when the
// locator found one, the full sentence containing it.
type NgramEntry struct {
	ngram.Record

	// FullExample is empty when no containing sentence was located.
	FullExample string `json:"full_example,omitempty"`
}

// TreeRendering is one dependency-tree rendering, keyed by a stable label
// such as "bigram_1" or "struct_2".
type TreeRendering struct {
	Label string `json:"label"`
	HTML  string `json:"html"`
}

// Report is the complete outcome of one analysis pass.
type Report struct {
	Source     string             `json:"source"`
	Stats      stat.Stats         `json:"stats"`
	Bigrams    []NgramEntry       `json:"bigrams"`
	Trigrams   []NgramEntry       `json:"trigrams"`
	Structures []structure.Record `json:"structures"`
	Trees      []TreeRendering    `json:"trees"`
}

// TreeLabel builds the stable rendering key for the given kind
// ("bigram", "trigram", "struct") and 1-based rank.
func TreeLabel(kind string, rank int) string {
	return fmt.Sprintf("%s_%d", kind, rank)
}

// Assemble combines precomputed results into a Report. Slices are stored
// as given; callers must not modify them afterwards.
func Assemble(source string, stats stat.Stats, bigrams, trigrams []NgramEntry, structures []structure.Record, trees []TreeRendering) *Report {
	return &Report{
		Source:     source,
		Stats:      stats,
		Bigrams:    bigrams,
		Trigrams:   trigrams,
		Structures: structures,
		Trees:      trees,
	}
}

// Tree returns the rendering stored under label, if any.
func (r *Report) Tree(label string) (TreeRendering, bool) {
	for _, tr := range r.Trees {
		if tr.Label == label {
			return tr, true
		}
	}

	return TreeRendering{}, false
}
