// Package aliases builds the static ingredient alias table and flat word
// list from a line-delimited synonym file. One line is one synonym group:
// the first comma-separated token names the canonical ingredient, every
// token (first included) becomes an alias for it
package aliases

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"

	"munchmates/internal/core/normalize"
	perr "munchmates/internal/platform/errors"
)

// maxLineSize raises the scanner limit well past any plausible synonym line
const maxLineSize = 1 << 20

// Table holds the two accumulators filled by one pass over the input
type Table struct {
	// Aliases maps squashed alias key to the canonical form of its line.
	// A key repeated across lines keeps the last line's canonical, last
	// write wins
	Aliases map[string]string

	// Words is every whitespace-split sub-word of every token, in file
	// order, duplicates kept. Never nil so an empty table marshals to []
	Words []string
}

// New returns an empty Table ready to accumulate lines
func New() *Table {
	return &Table{
		Aliases: make(map[string]string),
		Words:   []string{},
	}
}

// Build consumes r line by line and returns the populated table.
// A line that is not valid UTF-8 aborts the build
func Build(r io.Reader) (*Table, error) {
	t := New()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineSize)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		if err := t.AddLine(sc.Text()); err != nil {
			return nil, perr.Wrapf(err, perr.CodeOf(err), "line %d", lineNo)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeIO, "read input")
	}
	return t, nil
}

// AddLine folds one synonym group into the accumulators.
// The whole line is NFKC-normalized first, then trimmed and split on commas.
// The canonical form is the lowercased, whitespace-collapsed first token;
// it is not trimmed again, so a first token with inner padding keeps a
// single edge space exactly as the collapse produces it
func (t *Table) AddLine(line string) error {
	if !utf8.ValidString(line) {
		return perr.Decodef("input is not valid UTF-8")
	}
	tokens := strings.Split(strings.TrimSpace(normalize.NFKC(line)), ",")
	canonical := normalize.Collapse(strings.ToLower(tokens[0]))
	for _, tok := range tokens {
		tok = strings.ToLower(strings.TrimSpace(tok))
		t.Aliases[normalize.Squash(tok)] = canonical
		t.Words = append(t.Words, strings.Fields(tok)...)
	}
	return nil
}

// Lookup resolves a raw alias through the same key construction the build
// uses. Handy for round-trip checks; the table itself never mutates after
// the build
func (t *Table) Lookup(alias string) (string, bool) {
	key := normalize.Squash(strings.ToLower(strings.TrimSpace(normalize.NFKC(alias))))
	c, ok := t.Aliases[key]
	return c, ok
}
