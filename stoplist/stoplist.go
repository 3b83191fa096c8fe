// Package stoplist holds the fixed vocabularies that the miners consult:
// the lemma exclusion set and the set of dependency labels dropped from
// clause signatures.
package stoplist

import "strings"

// Set is an immutable collection of case-folded strings. Membership tests
// fold their argument, so callers may pass surface forms directly.
type Set struct {
	words map[string]struct{}
}

// New builds a Set from the given words. The words are case-folded once at
// construction; the Set is never mutated afterwards.
func New(words ...string) Set {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[strings.ToLower(w)] = struct{}{}
	}

	return Set{words: m}
}

// Has reports whether the case-folded form of word is in the set.
func (s Set) Has(word string) bool {
	_, ok := s.words[strings.ToLower(word)]
	return ok
}

// Len returns the number of entries.
func (s Set) Len() int {
	return len(s.words)
}

// Words returns a copy of the entries, for diagnostics.
func (s Set) Words() []string {
	out := make([]string, 0, len(s.words))
	for w := range s.words {
		out = append(out, w)
	}

	return out
}

// Russian is the default lemma exclusion set: prepositions, conjunctions
// and regulatory-standard boilerplate common in Russian technical reports.
func Russian() Set {
	return New(
		// prepositions
		"в", "на", "с", "по", "из", "у", "к", "от", "до", "за", "о", "об", "со", "изо",
		// conjunctions
		"и", "а", "но", "или", "либо", "что", "чтобы", "как", "потому", "также",
		// standards boilerplate
		"гост", "р", "стандарт", "iso", "ту", "ост", "снип", "сп", "гн", "рд", "санпин",
	)
}

// SignatureLabels is the set of dependency labels excluded from clause
// signatures: determiners, case markers and punctuation carry no clause
// shape information.
func SignatureLabels() Set {
	return New("det", "case", "punct")
}
