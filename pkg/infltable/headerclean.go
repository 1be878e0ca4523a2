package infltable

import (
	"strings"

	"github.com/scharney/wiktextract/internal/charclass"
	"github.com/scharney/wiktextract/pkg/ruledata"
	"github.com/scharney/wiktextract/pkg/tags"
)

// headerCleanResult is C4's output (spec.md §4.4).
type headerCleanResult struct {
	text      string
	refs      []string
	noteDefs  [][2]string
	localTags tags.Set
}

// nonHeaderPrefixes are sentence-like openers that mean "this cell is a
// note, not a header label" (spec.md §4.4 fourth bullet).
var nonHeaderPrefixes = []string{"Note:", "Notes:", "*", "see ", "Use ", "Only used"}

// cleanHeader implements C4 (spec.md §4.4). skipParen controls whether a
// trailing "(...)" annotation is stripped: true for header cells, false for
// the data-cell re-clean (spec.md §4.8c), which leaves trailing
// parenthetical content in place for the later inline-tag/romanisation
// detection step to consume.
func cleanHeader(raw string, skipParen bool) headerCleanResult {
	text := strings.TrimSpace(raw)

	for _, p := range nonHeaderPrefixes {
		if strings.HasPrefix(text, p) {
			return headerCleanResult{}
		}
	}

	var res headerCleanResult

	// Trailing decoration characters, stripped repeatedly.
	for {
		trimmed := strings.TrimRight(text, "➤,•")
		if trimmed == text {
			break
		}
		text = strings.TrimSpace(trimmed)
	}

	// Literal ʳᵃʳᵉ / ᵛᵒˢ suffixes, checked before the generic single-rune
	// superscript loop below (SUPPLEMENTED FEATURES item 3): each is itself
	// a run of small-modifier-letter runes that the generic loop would
	// otherwise consume one character at a time.
	switch {
	case strings.HasSuffix(text, "ʳᵃʳᵉ"):
		text = strings.TrimSuffix(text, "ʳᵃʳᵉ")
		res.localTags = res.localTags.Union(tags.New("rare"))
	case strings.HasSuffix(text, "ᵛᵒˢ"):
		text = strings.TrimSuffix(text, "ᵛᵒˢ")
		res.localTags = res.localTags.Union(tags.New("formal"))
	}
	text = strings.TrimRight(text, " ")

	// "^X" / "^(...)" footnote annotation.
	text = stripCaretAnnotation(&res, text)

	// Trailing superscript run: a ref marker, or a footnote definition when
	// the run follows "⁾" ("body⁾¹", see stripTrailingSuperscript). A
	// leading run is always recorded as a ref marker; a leading marker
	// followed by "⁾", a space or ":" is not recognised as a definition.
	text = stripTrailingSuperscript(&res, text)
	text = stripLeadingSuperscript(&res, text)

	// Trailing "*" or "(*)" ref-marker.
	switch {
	case strings.HasSuffix(text, "(*)"):
		text = strings.TrimSpace(strings.TrimSuffix(text, "(*)"))
		res.refs = append(res.refs, "*")
	case strings.HasSuffix(text, "*"):
		text = strings.TrimSpace(strings.TrimSuffix(text, "*"))
		res.refs = append(res.refs, "*")
	}

	// Trailing "(...)" annotation, stripped only when text isn't itself a
	// recognised header key (spec.md §4.4 first bullet), and only when the
	// caller wants it stripped at all.
	if skipParen && !ruledata.IsKnownHeader(text) {
		if i := strings.LastIndexByte(text, '('); i >= 0 && strings.HasSuffix(text, ")") {
			text = strings.TrimSpace(text[:i])
		}
	}

	res.text = text
	return res
}

// stripCaretAnnotation strips a trailing "^X" or "^(...)" footnote
// annotation, mapping recognised bodies to local tags and passing the rest
// through as a ref marker (spec.md §4.4 second bullet). A bare "^" with
// nothing following it is left untouched.
func stripCaretAnnotation(res *headerCleanResult, text string) string {
	i := strings.LastIndexByte(text, '^')
	if i < 0 {
		return text
	}
	marker := text[i+1:]
	marker = strings.TrimPrefix(marker, "(")
	marker = strings.TrimSuffix(marker, ")")
	switch marker {
	case "":
		return text
	case "rare":
		res.localTags = res.localTags.Union(tags.New("rare"))
	case "vos":
		res.localTags = res.localTags.Union(tags.New("formal"))
	case "tú":
		res.localTags = res.localTags.Union(tags.New("informal"))
	default:
		res.refs = append(res.refs, marker)
	}
	return strings.TrimSpace(text[:i])
}

// stripTrailingSuperscript removes a trailing run of superscript/small
// modifier-letter runes from text; the run stops at a "⁾". If the text
// before the run ends in "⁾", the cell is a footnote definition: the run
// and the text before "⁾" go to noteDefs as [marker, body] and the cleaned
// text is empty. Otherwise the run is recorded as a ref marker.
func stripTrailingSuperscript(res *headerCleanResult, text string) string {
	runes := []rune(text)
	end := len(runes)
	start := end
	for start > 0 && charclass.IsSuperscriptLike(runes[start-1]) && runes[start-1] != '⁾' {
		start--
	}
	if start == end {
		return text
	}
	marker := string(runes[start:end])
	rest := strings.TrimSpace(string(runes[:start]))
	switch {
	case strings.HasSuffix(rest, "⁾"):
		body := strings.TrimSpace(strings.TrimSuffix(rest, "⁾"))
		res.noteDefs = append(res.noteDefs, [2]string{marker, body})
		return ""
	default:
		res.refs = append(res.refs, marker)
		return rest
	}
}

// stripLeadingSuperscript removes a leading run of superscript/small
// modifier-letter runes, recording it as a ref marker (spec.md §4.4 third
// bullet, "leading superscripts similarly").
func stripLeadingSuperscript(res *headerCleanResult, text string) string {
	runes := []rune(text)
	start := 0
	for start < len(runes) && charclass.IsSuperscriptLike(runes[start]) {
		start++
	}
	if start == 0 {
		return text
	}
	res.refs = append(res.refs, string(runes[:start]))
	return strings.TrimSpace(string(runes[start:]))
}
