package stat

import (
	"context"
	"testing"

	"github.com/korpuslab/patmin/provider"
	"github.com/korpuslab/patmin/sentence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtures() *provider.Static {
	return provider.NewStatic([]sentence.Sentence{
		{
			Text: "Оператор открывает клапан.",
			Tokens: []sentence.Token{
				{Text: "Оператор", Lemma: "оператор", Pos: "NOUN", Dep: "nsubj", Index: 0, Head: 1, IsAlpha: true},
				{Text: "открывает", Lemma: "открывать", Pos: "VERB", Dep: sentence.RootDep, Index: 1, Head: 1, IsAlpha: true},
				{Text: "клапан", Lemma: "клапан", Pos: "NOUN", Dep: "obj", Index: 2, Head: 1, IsAlpha: true},
				{Text: ".", Lemma: ".", Pos: "PUNCT", Dep: "punct", Index: 3, Head: 1, IsPunct: true},
			},
		},
		{
			Text: "Да.",
			Tokens: []sentence.Token{
				{Text: "Да", Lemma: "да", Pos: "PART", Dep: sentence.RootDep, Index: 0, Head: 0, IsAlpha: true},
				{Text: ".", Lemma: ".", Pos: "PUNCT", Dep: "punct", Index: 1, Head: 0, IsPunct: true},
			},
		},
	})
}

func TestAggregate(t *testing.T) {
	h := NewHandler(fixtures())

	stats, err := h.Aggregate(context.Background(), []string{
		"Оператор открывает клапан.",
		"Да.",
	})
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Rows)
	assert.Equal(t, 4, stats.WordSum) // punctuation excluded
	assert.Equal(t, 26+3, stats.CharSum)
	assert.InDelta(t, 2.0, stats.WordMean, 1e-9)
	assert.InDelta(t, 14.5, stats.CharMean, 1e-9)
}

func TestAggregateEmpty(t *testing.T) {
	h := NewHandler(fixtures())

	stats, err := h.Aggregate(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, Stats{}, stats)
}
