// Package normalize provides the deterministic text primitives used by the
// alias pipeline
// 1 Unicode NFKC normalization (compatibility composition)
// 2 Whitespace collapse runs become a single ASCII space
// 3 Whitespace squash runs are deleted outright
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// pool of fresh transformer chains
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(norm.NFKC)
	},
}

// NFKC returns s in Unicode compatibility composition form.
// Ligatures, fullwidth forms and other compatibility variants fold to their
// composed equivalents
func NFKC(s string) string {
	if s == "" {
		return ""
	}
	tr := chainPool.Get().(transform.Transformer)
	ns, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		// norm.NFKC does not fail on valid UTF-8 input
		return s
	}
	return ns
}

// Collapse converts every run of whitespace runes to a single ASCII space.
// Edges are NOT trimmed: a leading or trailing run survives as one space.
// Canonical forms are derived from untrimmed first tokens, so Collapse must
// not strip
func Collapse(s string) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	inWS := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			inWS = true
			continue
		}
		if inWS {
			b.WriteByte(' ')
			inWS = false
		}
		b.WriteRune(r)
	}
	if inWS {
		b.WriteByte(' ')
	}
	return b.String()
}

// Squash deletes every whitespace rune from s
func Squash(s string) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
