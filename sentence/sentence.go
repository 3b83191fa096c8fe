package sentence

import "sort"

// RootDep is the dependency label the annotation provider assigns to the
// token at the top of a sentence's dependency tree.
const RootDep = "ROOT"

// VerbPos is the coarse part-of-speech tag for verbs.
const VerbPos = "VERB"

// Token represents a word of a sentence, with POS and dependency metadata.
type Token struct {
	// The unmodified word
	Text string `json:"text"`

	// The lemma of the word
	Lemma string `json:"lemma"`

	// Coarse part-of-speech tag (NOUN, VERB, ...)
	Pos string `json:"pos"`

	// Dependency label relative to the head (nsubj, obj, ROOT, ...)
	Dep string `json:"dep"`

	// The index of the word in the sentence, starting at 0.
	Index int `json:"index"`

	// Head is the Index of the dependency head of this token.
	// The root token points at itself.
	Head int `json:"head"`

	IsPunct bool `json:"is_punct"`
	IsSpace bool `json:"is_space"`
	IsAlpha bool `json:"is_alpha"`
}

// IsRoot reports whether the token is marked as a sentence root.
func (t Token) IsRoot() bool {
	return t.Dep == RootDep
}

// Sentence is the full dependency parse of one sentence.
type Sentence struct {
	Text   string  `json:"text"`
	Tokens []Token `json:"tokens"`
}

// Words returns the tokens that are neither punctuation nor whitespace, in
// sentence order.
func (s Sentence) Words() []Token {
	words := []Token{}
	for _, t := range s.Tokens {
		if t.IsPunct || t.IsSpace {
			continue
		}
		words = append(words, t)
	}

	return words
}

// Roots returns the non-punctuation root tokens of the sentence. A sentence
// normally has exactly one, but coordinated clauses can carry several.
func (s Sentence) Roots() []Token {
	roots := []Token{}
	for _, t := range s.Tokens {
		if t.IsRoot() && !t.IsPunct {
			roots = append(roots, t)
		}
	}

	return roots
}

// Children returns the direct dependents of head, excluding punctuation and
// whitespace tokens, ordered by their position in the sentence. The order
// holds even when the provider delivers the token slice out of position.
func (s Sentence) Children(head Token) []Token {
	children := []Token{}
	for _, t := range s.Tokens {
		if t.Index == head.Index {
			continue
		}

		if t.Head != head.Index {
			continue
		}

		if t.IsPunct || t.IsSpace {
			continue
		}

		children = append(children, t)
	}

	sort.Slice(children, func(i, j int) bool {
		return children[i].Index < children[j].Index
	})

	return children
}

// HeadOf returns the head token of t within the sentence.
func (s Sentence) HeadOf(t Token) Token {
	if t.Head < 0 || t.Head >= len(s.Tokens) {
		return t
	}

	return s.Tokens[t.Head]
}
