// Package corpus loads the ordered list of sentences to analyze from an
// exported spreadsheet column (CSV/TSV) or a plain text file, and applies
// the row-level cleanup the miners expect.
package corpus

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/korpuslab/patmin/clean"
)

// DefaultColumn is the spreadsheet column holding the Russian context
// sentences.
const DefaultColumn = "context_ru"

// Load reads sentences from path. CSV and TSV files are read by column
// name; any other file is read one sentence per line.
func Load(path, column string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FromCSV(f, column, ',')
	case ".tsv":
		return FromCSV(f, column, '\t')
	default:
		return FromLines(f)
	}
}

// FromCSV reads the named column of a delimited file. The first record is
// the header. If column is empty, DefaultColumn is used.
func FromCSV(r io.Reader, column string, comma rune) ([]string, error) {
	if column == "" {
		column = DefaultColumn
	}

	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}

	col := -1
	for i, name := range header {
		if strings.TrimSpace(name) == column {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, fmt.Errorf("column %q not found in header %v", column, header)
	}

	sentences := []string{}
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if col >= len(record) {
			continue
		}

		if s, ok := cleanRow(record[col]); ok {
			sentences = append(sentences, s)
		}
	}

	return sentences, nil
}

// FromLines reads one sentence per line.
func FromLines(r io.Reader) ([]string, error) {
	sentences := []string{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if s, ok := cleanRow(scanner.Text()); ok {
			sentences = append(sentences, s)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return sentences, nil
}

// cleanRow normalizes one raw cell into a plain sentence. Empty rows and
// dash placeholders are dropped.
func cleanRow(raw string) (string, bool) {
	switch strings.TrimSpace(raw) {
	case "", "-", "—", "–":
		return "", false
	}

	s := clean.Links(raw)
	s = clean.Brackets(s)
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}

	return s, true
}
