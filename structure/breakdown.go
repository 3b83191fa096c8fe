package structure

import "github.com/korpuslab/patmin/sentence"

// BreakdownRow is the morphological breakdown of one token: its surface
// form, part of speech, dependency label and the surface form of its head.
type BreakdownRow struct {
	Text string `json:"text"`
	Pos  string `json:"pos"`
	Dep  string `json:"dep"`
	Head string `json:"head"`
}

// Breakdown returns one row per non-punctuation token of the parse, in
// sentence order.
func Breakdown(parse sentence.Sentence) []BreakdownRow {
	rows := []BreakdownRow{}
	for _, t := range parse.Tokens {
		if t.IsPunct {
			continue
		}

		rows = append(rows, BreakdownRow{
			Text: t.Text,
			Pos:  t.Pos,
			Dep:  t.Dep,
			Head: parse.HeadOf(t).Text,
		})
	}

	return rows
}
