package infltable

import (
	"testing"
	"unicode"
	"unicode/utf8"

	"github.com/scharney/wiktextract/pkg/collab"
)

// fuzzClassify is a tiny, deterministic stand-in for a caller's real script
// classifier: good enough to exercise splitCellText's branches without
// depending on any language-specific collaborator.
func fuzzClassify(s string) collab.DescClass {
	for _, r := range s {
		if unicode.Is(unicode.Cyrillic, r) {
			return collab.ClassOther
		}
	}
	return collab.ClassRomanization
}

// FuzzSplitCellText guards the C8 splitter (spec.md §4.9) against panics
// and malformed UTF-8 output across arbitrary cell text, including
// unbalanced parentheses, stray separators, and superscript-leading runes.
func FuzzSplitCellText(f *testing.F) {
	f.Add("стол, стола, стол, stola, stola, stola")
	f.Add("")
	f.Add("(")
	f.Add(")")
	f.Add("a; b • c\nd or e")
	f.Add("¹gehe")
	f.Add("a + b, c")
	f.Add("trailing/")
	f.Add("((()))")

	f.Fuzz(func(t *testing.T, s string) {
		if !utf8.ValidString(s) {
			return
		}
		alts := splitCellText(s, fuzzClassify)
		for i, a := range alts {
			if !utf8.ValidString(a.native) || !utf8.ValidString(a.roman) {
				t.Fatalf("alt %d not valid UTF-8: %+v", i, a)
			}
		}
	})
}
