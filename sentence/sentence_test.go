package sentence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testParse() Sentence {
	// "Оператор открывает клапан ." with the verb as root.
	return Sentence{
		Text: "Оператор открывает клапан.",
		Tokens: []Token{
			{Text: "Оператор", Lemma: "оператор", Pos: "NOUN", Dep: "nsubj", Index: 0, Head: 1, IsAlpha: true},
			{Text: "открывает", Lemma: "открывать", Pos: "VERB", Dep: RootDep, Index: 1, Head: 1, IsAlpha: true},
			{Text: "клапан", Lemma: "клапан", Pos: "NOUN", Dep: "obj", Index: 2, Head: 1, IsAlpha: true},
			{Text: ".", Lemma: ".", Pos: "PUNCT", Dep: "punct", Index: 3, Head: 1, IsPunct: true},
		},
	}
}

func TestWordsExcludesPunct(t *testing.T) {
	s := testParse()
	words := s.Words()
	assert.Len(t, words, 3)
	for _, w := range words {
		assert.False(t, w.IsPunct)
	}
}

func TestRoots(t *testing.T) {
	s := testParse()
	roots := s.Roots()
	assert.Len(t, roots, 1)
	assert.Equal(t, "открывает", roots[0].Text)
}

func TestRootsSkipsPunctRoot(t *testing.T) {
	s := Sentence{Tokens: []Token{
		{Text: "?", Dep: RootDep, Index: 0, Head: 0, IsPunct: true},
	}}
	assert.Empty(t, s.Roots())
}

func TestChildrenOrderedAndFiltered(t *testing.T) {
	s := testParse()
	children := s.Children(s.Tokens[1])

	assert.Len(t, children, 2)
	assert.Equal(t, "Оператор", children[0].Text)
	assert.Equal(t, "клапан", children[1].Text)
}

func TestChildrenSortsUnorderedTokens(t *testing.T) {
	// token slice delivered out of sentence order
	s := Sentence{Tokens: []Token{
		{Text: "клапан", Dep: "obj", Index: 2, Head: 1, IsAlpha: true},
		{Text: "открывает", Dep: RootDep, Index: 1, Head: 1, IsAlpha: true},
		{Text: "Оператор", Dep: "nsubj", Index: 0, Head: 1, IsAlpha: true},
	}}

	children := s.Children(s.Tokens[1])
	assert.Len(t, children, 2)
	assert.Equal(t, "Оператор", children[0].Text)
	assert.Equal(t, "клапан", children[1].Text)
}

func TestHeadOf(t *testing.T) {
	s := testParse()
	assert.Equal(t, "открывает", s.HeadOf(s.Tokens[0]).Text)
	// the root heads itself
	assert.Equal(t, "открывает", s.HeadOf(s.Tokens[1]).Text)
}
