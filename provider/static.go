package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/korpuslab/patmin/sentence"
)

// Static serves parses from a fixed in-memory table keyed by exact
// sentence text. It backs offline runs over pre-annotated corpora and the
// test suites.
type Static struct {
	parses map[string]sentence.Sentence
	htmls  map[string]string
}

var _ Provider = (*Static)(nil)

func NewStatic(parses []sentence.Sentence) *Static {
	m := make(map[string]sentence.Sentence, len(parses))
	for _, p := range parses {
		m[p.Text] = p
	}

	return &Static{parses: m, htmls: map[string]string{}}
}

// LoadStatic reads pre-annotated parses from a JSON file: an array of
// sentences, each {"text": ..., "tokens": [...]}.
func LoadStatic(path string) (*Static, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var parses []sentence.Sentence
	if err := json.Unmarshal(data, &parses); err != nil {
		return nil, fmt.Errorf("failed to decode pre-annotated corpus %s: %w", path, err)
	}

	return NewStatic(parses), nil
}

// SetRendering stores a rendering returned by Render for text.
func (s *Static) SetRendering(text, html string) {
	s.htmls[text] = html
}

func (s *Static) Parse(ctx context.Context, text string) (sentence.Sentence, error) {
	p, ok := s.parses[text]
	if !ok {
		return sentence.Sentence{}, fmt.Errorf("no annotation available for %q", text)
	}

	return p, nil
}

// Render returns the stored rendering for text, or an empty string when
// none exists.
func (s *Static) Render(ctx context.Context, text string) (string, error) {
	return s.htmls[text], nil
}
