package locate

import (
	"context"
	"testing"

	"github.com/korpuslab/patmin/ngram"
	"github.com/korpuslab/patmin/provider"
	"github.com/korpuslab/patmin/sentence"
	"github.com/korpuslab/patmin/stoplist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tok(i int, text, lemma, pos, dep string, head int) sentence.Token {
	return sentence.Token{
		Text: text, Lemma: lemma, Pos: pos, Dep: dep,
		Index: i, Head: head,
		IsPunct: pos == "PUNCT",
		IsAlpha: pos != "PUNCT",
	}
}

func svo(text, subj, subjLemma, verb, verbLemma, obj, objLemma string) sentence.Sentence {
	return sentence.Sentence{
		Text: text,
		Tokens: []sentence.Token{
			tok(0, subj, subjLemma, "NOUN", "nsubj", 1),
			tok(1, verb, verbLemma, "VERB", sentence.RootDep, 1),
			tok(2, obj, objLemma, "NOUN", "obj", 1),
			tok(3, ".", ".", "PUNCT", "punct", 1),
		},
	}
}

func fixtures() *provider.Static {
	return provider.NewStatic([]sentence.Sentence{
		svo("Оператор открывает клапан.", "Оператор", "оператор", "открывает", "открывать", "клапан", "клапан"),
		svo("Инженер проверяет насос.", "Инженер", "инженер", "проверяет", "проверять", "насос", "насос"),
		// the stripped form of the standard-code sentence
		{
			Text: "регулирует процесс.",
			Tokens: []sentence.Token{
				tok(0, "регулирует", "регулировать", "VERB", sentence.RootDep, 0),
				tok(1, "процесс", "процесс", "NOUN", "obj", 0),
				tok(2, ".", ".", "PUNCT", "punct", 0),
			},
		},
	})
}

var corpus = []string{
	"Оператор открывает клапан.",
	"Инженер проверяет насос.",
	"ГОСТ Р 57528-2016 регулирует процесс.",
}

func TestFirstWithNgram(t *testing.T) {
	l := New(fixtures(), stoplist.Russian())

	text, ok, err := l.FirstWithNgram(context.Background(), corpus, []string{"проверять", "насос"})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Инженер проверяет насос.", text)
}

func TestFirstWithNgramReturnsOriginalText(t *testing.T) {
	l := New(fixtures(), stoplist.Russian())

	// matching happens on the stripped parse; the caller still gets the
	// sentence as it appears in the corpus
	text, ok, err := l.FirstWithNgram(context.Background(), corpus, []string{"регулировать", "процесс"})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "ГОСТ Р 57528-2016 регулирует процесс.", text)
}

func TestFirstWithNgramNotFound(t *testing.T) {
	l := New(fixtures(), stoplist.Russian())

	_, ok, err := l.FirstWithNgram(context.Background(), corpus, []string{"оператор", "насос"})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRoundTripWithMiner(t *testing.T) {
	// every record the miner returns must be locatable in the same corpus
	p := fixtures()
	m := ngram.NewMiner(p, stoplist.Russian())
	l := New(p, stoplist.Russian())

	minedOn := corpus[:2] // n-gram mining never strips standard codes
	records, err := m.Extract(context.Background(), minedOn, 2, 10)
	require.NoError(t, err)
	require.NotEmpty(t, records)

	for _, r := range records {
		_, ok, err := l.FirstWithNgram(context.Background(), minedOn, r.Lemmas)
		require.NoError(t, err)
		assert.True(t, ok, "record %v not found", r.Lemmas)
	}
}

func TestEmptyKey(t *testing.T) {
	l := New(fixtures(), stoplist.Russian())

	_, ok, err := l.FirstWithNgram(context.Background(), corpus, nil)
	require.NoError(t, err)
	assert.False(t, ok)
}
