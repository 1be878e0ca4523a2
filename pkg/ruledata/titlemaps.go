package ruledata

import (
	"regexp"
	"strings"

	"github.com/scharney/wiktextract/pkg/tags"
)

// TitleGlobal maps whole-word substrings of a table title to tags added to
// *every* emitted form (spec.md §4.3 step 3, "TITLE_GLOBAL").
var TitleGlobal = map[string]tags.Set{
	"possessive":              tags.FromFields("possessive"),
	"negative":                tags.FromFields("negative"),
	"future":                  tags.FromFields("future"),
	"pf":                      tags.FromFields("perfective"),
	"impf":                    tags.FromFields("imperfective"),
	"comparative":             tags.FromFields("comparative"),
	"superlative":             tags.FromFields("superlative"),
	"combined forms":          tags.FromFields("combined-form"),
	"mutation":                tags.FromFields("mutation"),
	"definite article":        tags.FromFields("definite"),
	"indefinite article":      tags.FromFields("indefinite"),
	"pre-reform":              tags.FromFields("dated"),
	"personal pronouns":       tags.FromFields("personal pronoun"),
	"composed forms of":       tags.FromFields("multiword-construction"),
	"subordinate-clause forms of": tags.FromFields("subordinate-clause"),
	"western lombard":         tags.FromFields("Western-Lombard"),
	"eastern lombard":         tags.FromFields("Eastern-Lombard"),
}

// TitleWord maps whole-word substrings of a table title to word-tags
// (spec.md §4.3 step 3, "TITLE_WORD").
var TitleWord = map[string]tags.Set{
	"strong":          tags.FromFields("strong"),
	"weak":            tags.FromFields("weak"),
	"countable":       tags.FromFields("countable"),
	"uncountable":     tags.FromFields("uncountable"),
	"inanimate":       tags.FromFields("inanimate"),
	"animate":         tags.FromFields("animate"),
	"transitive":      tags.FromFields("transitive"),
	"intransitive":    tags.FromFields("intransitive"),
	"ditransitive":    tags.FromFields("ditransitive"),
	"ambitransitive":  tags.FromFields("ambitransitive"),
	"proper noun":     tags.FromFields("proper-noun"),
	"no plural":       tags.FromFields("no-plural"),
	"imperfective":    tags.FromFields("imperfective"),
	"perfective":      tags.FromFields("perfective"),
	"no supine stem":  tags.FromFields("no-supine"),
	"no perfect stem": tags.FromFields("no-perfect"),
	"deponent":        tags.FromFields("deponent"),
	"no short forms":  tags.FromFields("no-short-form"),
	"1st declension":  tags.FromFields("declension-1"),
	"2nd declension":  tags.FromFields("declension-2"),
	"3rd declension":  tags.FromFields("declension-3"),
	"4th declension":  tags.FromFields("declension-4"),
	"5th declension":  tags.FromFields("declension-5"),
	"first declension":  tags.FromFields("declension-1"),
	"second declension": tags.FromFields("declension-2"),
	"third declension":  tags.FromFields("declension-3"),
	"1st conjugation": tags.FromFields("conjugation-1"),
	"2nd conjugation": tags.FromFields("conjugation-2"),
	"3rd conjugation": tags.FromFields("conjugation-3"),
	"first conjugation":  tags.FromFields("conjugation-1"),
	"second conjugation": tags.FromFields("conjugation-2"),
	"third conjugation":  tags.FromFields("conjugation-3"),
	"auxiliary sein":  tags.FromFields("auxiliary"),
}

// TitleElements maps a parenthesised, comma-split title element to
// word-tags (spec.md §4.3 step 5, "title_elements").
var TitleElements = map[string]tags.Set{
	"weak":      tags.FromFields("weak"),
	"strong":    tags.FromFields("strong"),
	"masculine": tags.FromFields("masculine"),
	"feminine":  tags.FromFields("feminine"),
	"neuter":    tags.FromFields("neuter"),
	"singular":  tags.FromFields("singular"),
	"plural":    tags.FromFields("plural"),
}

// TitleElemStart maps the *start* of a parenthesised, comma-split title
// element to tags applied to an extra-forms entry whose form is the
// remainder of the element (spec.md §4.3 step 5, "title_elemstart").
var TitleElemStart = map[string]tags.Set{
	"auxiliary":     tags.FromFields("auxiliary"),
	"Kotus type":    tags.FromFields("class"),
	"class":         tags.FromFields("class"),
	"short class":   tags.FromFields("class"),
	"type":          tags.FromFields("class"),
	"strong class":  tags.FromFields("class"),
	"weak class":    tags.FromFields("class"),
	"accent paradigm": tags.FromFields("accent-paradigm"),
}

func init() {
	for k, s := range TitleGlobal {
		validateSet(k, s)
	}
	for k, s := range TitleWord {
		validateSet(k, s)
	}
	for k, s := range TitleElements {
		validateSet(k, s)
	}
	for k, s := range TitleElemStart {
		validateSet(k, s)
	}
}

// titleGlobalRe / titleWordRe are whole-word, case-insensitive alternations
// over the map keys (spec.md §4.3 step 3: "whole-word regex,
// case-insensitive"), compiled once at init.
var (
	titleGlobalRe = compileWholeWordAlternation(keysOf(TitleGlobal))
	titleWordRe   = compileWholeWordAlternation(keysOf(TitleWord))
	// titleElemStartRe anchors at the start of a (already-trimmed) title
	// element, spec.md §4.3 step 5.
	titleElemStartRe = regexp.MustCompile(`^(` + strings.Join(escapeAll(keysOf(TitleElemStart)), "|") + `) `)
	// classDescriptorRe recognises a bare class descriptor anywhere in the
	// title (spec.md §4.3 step 4): "<x>-type", "accent-<x>", "<x>-stem", or
	// "<x> gradation".
	classDescriptorRe = regexp.MustCompile(`\b(\w+-type|accent-\w+|\w+-stem|\S+ gradation)\b`)
	// portugueseVerbClassRe recognises the Portuguese "-<ending> verb"
	// class pattern (spec.md §4.3 step 6).
	portugueseVerbClassRe = regexp.MustCompile(`\b(Portuguese) (-\S* verb)\b`)
)

func keysOf(m map[string]tags.Set) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func escapeAll(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = regexp.QuoteMeta(s)
	}
	return out
}

func compileWholeWordAlternation(keys []string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)(^|\b)(` + strings.Join(escapeAll(keys), "|") + `)($|\b)`)
}

// MatchTitleGlobal returns the lower-cased matched keys of TitleGlobal
// found in title, in order of appearance.
func MatchTitleGlobal(title string) []string { return matchAlternation(titleGlobalRe, title) }

// MatchTitleWord returns the lower-cased matched keys of TitleWord found in
// title, in order of appearance.
func MatchTitleWord(title string) []string { return matchAlternation(titleWordRe, title) }

func matchAlternation(re *regexp.Regexp, text string) []string {
	matches := re.FindAllStringSubmatch(text, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, strings.ToLower(m[2]))
	}
	return out
}

// ClassDescriptor returns the first class-descriptor substring in title, if
// any (spec.md §4.3 step 4).
func ClassDescriptor(title string) (string, bool) {
	m := classDescriptorRe.FindStringSubmatch(title)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// PortugueseVerbClass returns the "-<ending> verb" class descriptor from a
// Portuguese title, if any (spec.md §4.3 step 6).
func PortugueseVerbClass(title string) (string, bool) {
	m := portugueseVerbClassRe.FindStringSubmatch(title)
	if m == nil {
		return "", false
	}
	return m[2], true
}

// TitleElemStartMatch returns the tag set and remainder for a title element
// that begins with one of TitleElemStart's keys (spec.md §4.3 step 5).
func TitleElemStartMatch(elem string) (tags.Set, string, bool) {
	m := titleElemStartRe.FindStringSubmatch(elem)
	if m == nil {
		return tags.Set{}, "", false
	}
	return TitleElemStart[m[1]], elem[len(m[0]):], true
}
