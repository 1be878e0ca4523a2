package infltable

import (
	"strings"

	"github.com/scharney/wiktextract/internal/charclass"
	"github.com/scharney/wiktextract/pkg/collab"
)

// cellAlt is one (native, romanisation) alternative extracted from a data
// cell by C8 (spec.md §4.9).
type cellAlt struct {
	native string
	roman  string
}

// baseCellSeparators are the split points used for every cell (spec.md §4.9
// step 3); "," and "/" are added per cell, and at each position the longest
// matching separator is taken.
var baseCellSeparators = []string{";", "•", "\n", " or "}

// normalizeCellWhitespace collapses tabs and carriage returns to spaces
// (spec.md §4.9 step 1), leaving newlines alone since they are themselves a
// separator candidate.
func normalizeCellWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\t", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}

// splitCellAlternatives implements C8 steps 1-4 (spec.md §4.9): it returns
// the raw alternative substrings, honoring balanced parentheses.
func splitCellAlternatives(raw string) []string {
	text := normalizeCellWhitespace(raw)
	if text == "" {
		return []string{""}
	}

	runes := []rune(text)
	if charclass.IsSuperscriptLike(runes[0]) {
		return []string{text}
	}

	seps := append([]string(nil), baseCellSeparators...)
	if !strings.Contains(text, " + ") {
		seps = append(seps, ",")
	}
	if !strings.HasSuffix(text, "/") {
		seps = append(seps, "/")
	}

	return splitBalanced(text, seps)
}

// splitBalanced splits text on any of seps, trying the longest separator
// match at each position, while never splitting inside balanced
// parentheses (spec.md §4.9 step 4).
func splitBalanced(text string, seps []string) []string {
	var parts []string
	depth := 0
	last := 0
	runes := []rune(text)

	i := 0
	for i < len(runes) {
		switch runes[i] {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		}
		if depth == 0 {
			if sep, ok := matchSeparator(runes, i, seps); ok {
				parts = append(parts, strings.TrimSpace(string(runes[last:i])))
				i += len([]rune(sep))
				last = i
				continue
			}
		}
		i++
	}
	parts = append(parts, strings.TrimSpace(string(runes[last:])))

	out := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{""}
	}
	return out
}

func matchSeparator(runes []rune, pos int, seps []string) (string, bool) {
	var best string
	for _, sep := range seps {
		sr := []rune(sep)
		if pos+len(sr) > len(runes) {
			continue
		}
		if string(runes[pos:pos+len(sr)]) == sep && len(sep) > len(best) {
			best = sep
		}
	}
	if best == "" {
		return "", false
	}
	return best, true
}

// classifyInput strips superscript/modifier-letter-small runes and a
// trailing "^..." footnote annotation before handing text to Classify, so a
// footnote ref embedded in a native form (e.g. "стол¹" or "форма^rare")
// doesn't throw off the native/romanisation split (spec.md §4.9 step 5).
func classifyInput(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if !charclass.IsSuperscriptLike(r) {
			sb.WriteRune(r)
		}
	}
	s = sb.String()
	if i := strings.IndexByte(s, '^'); i >= 0 {
		s = s[:i]
	}
	return s
}

// pairRomanization implements C8 step 5 (spec.md §4.9): if alts has even
// length and splits cleanly into an all-"other" first half and an all
// romanisation/english second half, pair them elementwise; otherwise each
// alternative stands alone with no romanisation.
func pairRomanization(alts []string, classify collab.Classify) []cellAlt {
	n := len(alts)
	if n > 0 && n%2 == 0 && classify != nil {
		half := n / 2
		firstAllOther := true
		for i := 0; i < half && firstAllOther; i++ {
			if classify(classifyInput(alts[i])) != collab.ClassOther {
				firstAllOther = false
			}
		}
		secondAllRoman := true
		for i := half; i < n && secondAllRoman; i++ {
			c := classify(classifyInput(alts[i]))
			if c != collab.ClassRomanization && c != collab.ClassEnglish {
				secondAllRoman = false
			}
		}
		if firstAllOther && secondAllRoman {
			out := make([]cellAlt, half)
			for i := 0; i < half; i++ {
				out[i] = cellAlt{native: alts[i], roman: alts[half+i]}
			}
			return out
		}
	}
	out := make([]cellAlt, n)
	for i, a := range alts {
		out[i] = cellAlt{native: a}
	}
	return out
}

// splitCellText runs the full C8 pipeline (spec.md §4.9 steps 1-5).
func splitCellText(raw string, classify collab.Classify) []cellAlt {
	return pairRomanization(splitCellAlternatives(raw), classify)
}
