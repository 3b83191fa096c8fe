// Package render writes analysis reports as text for terminal display and
// export.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/korpuslab/patmin/report"
	"github.com/korpuslab/patmin/structure"
)

var (
	Yellow256 = "\033[1;38;5;130m"
	Grey256   = "\033[1;38;5;145m"
	Green256  = "\033[1;38;5;70m"
	Off       = "\033[0m"
)

type Renderer struct {
	HasColor bool
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Report writes the full textual report to w: corpus statistics, top
// bigrams and trigrams with located full examples, and top clause
// structures with per-token morphological breakdowns.
func (r *Renderer) Report(w io.Writer, rep *report.Report) {
	fmt.Fprintf(w, "File: %s\n", rep.Source)
	fmt.Fprintf(w, "Rows: %d\n", rep.Stats.Rows)
	fmt.Fprintf(w, "Total words: %d\n", rep.Stats.WordSum)
	fmt.Fprintf(w, "Total characters: %d\n", rep.Stats.CharSum)
	fmt.Fprintf(w, "Mean words per row: %.0f\n", rep.Stats.WordMean)
	fmt.Fprintf(w, "Mean characters per row: %.0f\n", rep.Stats.CharMean)

	r.ngramSection(w, "Top bigrams:", rep.Bigrams)
	r.ngramSection(w, "Top trigrams:", rep.Trigrams)

	if len(rep.Structures) == 0 {
		fmt.Fprintf(w, "\nNo syntactic structures found.\n")
		return
	}

	fmt.Fprintf(w, "\nTop syntactic structures:\n")
	for idx, rec := range rep.Structures {
		fmt.Fprintf(w, "\n#%d (seen %d×): %s\n", idx+1, rec.Count, r.heading(rec.Signature.Key()))
		fmt.Fprintf(w, "%s\n", rec.Sentence)
		fmt.Fprintf(w, "Breakdown:\n")
		for _, row := range structure.Breakdown(rec.Parse) {
			fmt.Fprintf(w, "%-15s %-5s %-10s → %s\n", row.Text, row.Pos, row.Dep, row.Head)
		}
	}
}

func (r *Renderer) ngramSection(w io.Writer, title string, entries []report.NgramEntry) {
	fmt.Fprintf(w, "\n%s\n", title)
	for idx, e := range entries {
		fmt.Fprintf(w, "  %d. %s — %d (example: %s)\n", idx+1, r.heading(strings.Join(e.Lemmas, " ")), e.Count, e.Example)
		if e.FullExample != "" {
			fmt.Fprintf(w, "     ▶ full example: %s\n", e.FullExample)
		}
	}
}

func (r *Renderer) heading(s string) string {
	if !r.HasColor {
		return s
	}

	return Yellow256 + s + Off
}
