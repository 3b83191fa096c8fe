// Package explore is the interactive shell over a finished analysis. It
// lets the user page through the mined results and look up full example
// sentences for arbitrary lemma sequences without re-running the
// pipeline.
package explore

import (
	"context"
	"fmt"
	"strings"

	"github.com/korpuslab/patmin/locate"
	"github.com/korpuslab/patmin/report"
	"github.com/korpuslab/patmin/structure"

	"github.com/c-bata/go-prompt"
)

var commands = []prompt.Suggest{
	{Text: "stats", Description: "corpus size statistics"},
	{Text: "bigrams", Description: "top lemma bigrams"},
	{Text: "trigrams", Description: "top lemma trigrams"},
	{Text: "structs", Description: "top clause structures"},
	{Text: "find", Description: "find <lemma...>: first sentence with the lemma sequence"},
	{Text: "quit", Description: "leave the shell"},
}

type Handler struct {
	Report    *report.Report
	Locator   *locate.Locator
	Sentences []string
}

func NewHandler(rep *report.Report, loc *locate.Locator, sentences []string) *Handler {
	return &Handler{
		Report:    rep,
		Locator:   loc,
		Sentences: sentences,
	}
}

func (h *Handler) Run(ctx context.Context) error {
	fmt.Println("🔎 stats, bigrams, trigrams, structs, find <lemma...>, quit")

	history := []string{}

	for {
		in := prompt.Input("      ◆ ", h.completer,
			prompt.OptionTitle("patmin explore"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
		)

		fields := strings.Fields(in)
		if len(fields) == 0 {
			continue
		}
		history = append(history, in)

		switch fields[0] {
		case "quit":
			return nil
		case "stats":
			h.stats()
		case "bigrams":
			h.ngrams(h.Report.Bigrams)
		case "trigrams":
			h.ngrams(h.Report.Trigrams)
		case "structs":
			h.structs()
		case "find":
			if err := h.find(ctx, fields[1:]); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
		default:
			fmt.Printf("Unknown command %q\n", fields[0])
		}
	}
}

func (h *Handler) completer(in prompt.Document) []prompt.Suggest {
	before := in.TextBeforeCursor()
	if before == "" {
		return nil
	}

	// after "find " suggest the mined lemmas
	if strings.HasPrefix(before, "find ") {
		s := []prompt.Suggest{}
		word := in.GetWordBeforeCursor()
		for _, e := range append(h.Report.Bigrams, h.Report.Trigrams...) {
			for _, lemma := range e.Lemmas {
				if strings.HasPrefix(lemma, word) {
					s = append(s, prompt.Suggest{Text: lemma, Description: e.Key()})
				}
			}
		}
		return s
	}

	return prompt.FilterHasPrefix(commands, in.GetWordBeforeCursor(), true)
}

func (h *Handler) stats() {
	st := h.Report.Stats
	fmt.Printf("Rows: %d\n", st.Rows)
	fmt.Printf("Total words: %d\n", st.WordSum)
	fmt.Printf("Total characters: %d\n", st.CharSum)
	fmt.Printf("Mean words per row: %.0f\n", st.WordMean)
	fmt.Printf("Mean characters per row: %.0f\n", st.CharMean)
}

func (h *Handler) ngrams(entries []report.NgramEntry) {
	if len(entries) == 0 {
		fmt.Println("Nothing mined.")
		return
	}

	for idx, e := range entries {
		fmt.Printf("  %d. %s — %d (example: %s)\n", idx+1, e.Key(), e.Count, e.Example)
		if e.FullExample != "" {
			fmt.Printf("     ▶ %s\n", e.FullExample)
		}
	}
}

func (h *Handler) structs() {
	if len(h.Report.Structures) == 0 {
		fmt.Println("No syntactic structures found.")
		return
	}

	for idx, rec := range h.Report.Structures {
		fmt.Printf("#%d (seen %d×): %s\n", idx+1, rec.Count, rec.Signature.Key())
		fmt.Printf("%s\n", rec.Sentence)
		for _, row := range structure.Breakdown(rec.Parse) {
			fmt.Printf("%-15s %-5s %-10s → %s\n", row.Text, row.Pos, row.Dep, row.Head)
		}
	}
}

func (h *Handler) find(ctx context.Context, lemmas []string) error {
	if len(lemmas) == 0 {
		fmt.Println("Usage: find <lemma...>")
		return nil
	}

	for i, l := range lemmas {
		lemmas[i] = strings.ToLower(l)
	}

	text, found, err := h.Locator.FirstWithNgram(ctx, h.Sentences, lemmas)
	if err != nil {
		return err
	}
	if !found {
		fmt.Printf("No sentence contains %q\n", strings.Join(lemmas, " "))
		return nil
	}

	fmt.Printf("▶ %s\n", text)
	return nil
}
