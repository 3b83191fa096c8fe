// Package clean normalizes raw spreadsheet cells into plain sentences and
// strips regulatory-standard codes before syntactic analysis.
package clean

import (
	"regexp"
	"strings"
)

var (
	urlRe         = regexp.MustCompile(`\(?\b(?:https?://|www\.)\S+\b\)?`)
	hyperlinkRe   = regexp.MustCompile(`=HYPERLINK\("[^"]+","([^"]+)"\)`)
	emptyParensRe = regexp.MustCompile(`\(\s*\)`)

	parensRe       = regexp.MustCompile(`\([^)]*\)`)
	squareRe       = regexp.MustCompile(`\[[^\]]*\]`)
	strayBracketRe = regexp.MustCompile(`[()\[\]]`)
	spaceRe        = regexp.MustCompile(`\s+`)

	// Matches the literal "гост", optionally followed by 1-2 short letter
	// words and a 4-6 digit code, optionally followed by a dash and a 2-4
	// digit year. Go's \b is ASCII-only, so word boundaries around the
	// Cyrillic literal are expressed as captured non-letter delimiters.
	standardRe = regexp.MustCompile(`(?i)(^|[^\p{L}\p{N}])гост(?:\s*[а-яa-z]*\s*\d{4,6}(?:\s*[–-]\s*\d{2,4})?)?($|[^\p{L}\p{N}])`)
)

// Links removes URLs and unwraps spreadsheet HYPERLINK formulas, keeping
// the link title.
func Links(text string) string {
	text = urlRe.ReplaceAllString(text, "")
	text = hyperlinkRe.ReplaceAllString(text, "$1")
	return strings.TrimSpace(emptyParensRe.ReplaceAllString(text, ""))
}

// Brackets removes parenthesized and bracketed spans, drops stray brackets
// and collapses the remaining whitespace.
func Brackets(text string) string {
	text = parensRe.ReplaceAllString(text, "")
	text = squareRe.ReplaceAllString(text, "")
	text = strayBracketRe.ReplaceAllString(text, "")
	return strings.TrimSpace(spaceRe.ReplaceAllString(text, " "))
}

// StandardCodes removes regulatory-standard phrases such as
// "ГОСТ Р 57528-2016" (and the bare word "ГОСТ") from the sentence, so
// institutional boilerplate does not distort its clause shape. The
// captured delimiter consumes the character after a match, so adjacent
// codes need another pass; replacement repeats until no match remains.
func StandardCodes(text string) string {
	for {
		replaced := standardRe.ReplaceAllString(text, "$1$2")
		if replaced == text {
			return strings.TrimSpace(replaced)
		}
		text = replaced
	}
}
