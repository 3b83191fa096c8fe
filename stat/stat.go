// Package stat computes corpus-level size statistics.
package stat

import (
	"context"
	"unicode/utf8"

	"github.com/korpuslab/patmin/provider"
)

type Stats struct {
	Rows     int     `json:"rows"`
	WordSum  int     `json:"word_sum"`
	CharSum  int     `json:"char_sum"`
	WordMean float64 `json:"word_mean"`
	CharMean float64 `json:"char_mean"`
}

type Handler struct {
	provider provider.Provider
}

func NewHandler(p provider.Provider) *Handler {
	return &Handler{provider: p}
}

// Aggregate computes row, word and character totals and means over the
// sentences. Word counts exclude punctuation and whitespace tokens;
// character counts are rune counts of the raw text. An empty corpus
// yields zero stats.
func (h *Handler) Aggregate(ctx context.Context, sentences []string) (Stats, error) {
	stats := Stats{Rows: len(sentences)}

	for _, text := range sentences {
		parse, err := h.provider.Parse(ctx, text)
		if err != nil {
			return Stats{}, err
		}

		stats.WordSum += len(parse.Words())
		stats.CharSum += utf8.RuneCountInString(text)
	}

	if stats.Rows > 0 {
		stats.WordMean = float64(stats.WordSum) / float64(stats.Rows)
		stats.CharMean = float64(stats.CharSum) / float64(stats.Rows)
	}

	return stats, nil
}
