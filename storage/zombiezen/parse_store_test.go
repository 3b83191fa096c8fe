package zombiezen

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/korpuslab/patmin/sentence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := Open(ctx, filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	defer store.Close()

	_, ok, err := store.Get(ctx, "нет такого предложения")
	require.NoError(t, err)
	assert.False(t, ok)

	parse := sentence.Sentence{
		Text: "Инженер проверяет насос.",
		Tokens: []sentence.Token{
			{Text: "Инженер", Lemma: "инженер", Pos: "NOUN", Dep: "nsubj", Index: 0, Head: 1, IsAlpha: true},
			{Text: "проверяет", Lemma: "проверять", Pos: "VERB", Dep: sentence.RootDep, Index: 1, Head: 1, IsAlpha: true},
			{Text: "насос", Lemma: "насос", Pos: "NOUN", Dep: "obj", Index: 2, Head: 1, IsAlpha: true},
			{Text: ".", Lemma: ".", Pos: "PUNCT", Dep: "punct", Index: 3, Head: 1, IsPunct: true},
		},
	}

	require.NoError(t, store.Put(ctx, parse.Text, parse))

	got, ok, err := store.Get(ctx, parse.Text)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, parse, got)
}

func TestParseStorePutIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store, err := Open(ctx, filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	defer store.Close()
	parse := sentence.Sentence{Text: "Клапан закрыт.", Tokens: []sentence.Token{
		{Text: "Клапан", Lemma: "клапан", Pos: "NOUN", Dep: "nsubj", Index: 0, Head: 1, IsAlpha: true},
		{Text: "закрыт", Lemma: "закрыть", Pos: "VERB", Dep: sentence.RootDep, Index: 1, Head: 1, IsAlpha: true},
	}}

	require.NoError(t, store.Put(ctx, parse.Text, parse))
	require.NoError(t, store.Put(ctx, parse.Text, parse))

	got, ok, err := store.Get(ctx, parse.Text)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Len(t, got.Tokens, 2)
}
