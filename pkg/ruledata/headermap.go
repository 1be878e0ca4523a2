package ruledata

import (
	"strings"

	"github.com/scharney/wiktextract/pkg/tags"
)

// HeaderMap is the static mapping from normalised header-cell text to a
// HeaderValue (spec.md §4.2 / C2). It is read-only after init (spec.md §5).
//
// This is a representative, hand-grounded subset of the original
// wiktextract infl_map (which runs to hundreds of entries pulled from live
// Wiktionary table headers across dozens of languages); spec.md's size
// budget explicitly excludes this table from the core's line count because
// it is data, not algorithm. The shapes below cover every construct the
// evaluator (pkg/infltable/headereval.go) must support: plain leaves,
// alternative leaves, language-conditional leaves, the reset marker, and
// the "whole column is headers" wildcard.
var HeaderMap = map[string]HeaderValue{
	// Persons (used directly, e.g. a "1st person" column header).
	"1st person": Plain("first-person"),
	"2nd person": Plain("second-person"),
	"3rd person": Plain("third-person"),

	// Numbers.
	"Singular":   Plain("singular"),
	"Plural":     Plain("plural"),
	"Dual":       Plain("dual"),
	"Collective": Plain("collective"),

	// Genders.
	"Masculine": Plain("masculine"),
	"Feminine":  Plain("feminine"),
	"Neuter":    Plain("neuter"),
	"Common":    Plain("common"),

	// Combined gender headers, as seen when a table splits genders across
	// two columns that together cover all the language's genders (spec.md
	// §8 scenario 5).
	"Masculine/Feminine": Alts("masculine", "feminine"),
	"Masculine/Neuter":   Alts("masculine", "neuter"),

	// Cases.
	"Nominative":    Plain("nominative"),
	"Genitive":      Plain("genitive"),
	"Dative":        Plain("dative"),
	"Accusative":    Plain("accusative"),
	"Instrumental":  Plain("instrumental"),
	"Prepositional": Plain("prepositional"),
	"Locative":      Plain("locative"),
	"Vocative":      Plain("vocative"),
	"Partitive":     Plain("partitive"),

	"Dative plural":     Plain("dative plural"),
	"Genitive singular":  Plain("genitive singular"),

	// Moods / tenses (German scenario from spec.md §8 #1: "Präsens" is a
	// row header meaning present + indicative).
	"Präsens":    Plain("present indicative"),
	"Präteritum": Plain("past indicative"),
	"Imperativ":  Plain("imperative"),
	"Konjunktiv I":  Plain("subjunctive"),
	"Konjunktiv II": Plain("subjunctive past"),
	"Present":    Plain("present"),
	"Past":       Plain("past"),
	"Future":     Plain("future"),
	"Indicative": Plain("indicative"),
	"Imperative": Plain("imperative"),
	"Subjunctive": Plain("subjunctive"),
	"Conditional": Plain("conditional"),

	// Voice / aspect.
	"Active":  Plain("active"),
	"Passive": Plain("passive"),

	// Non-finite forms.
	"Infinitive": Plain("infinitive"),
	"Participle": Plain("participle"),
	"Gerund":     Plain("gerund"),

	// Header meaning "no constraint, just a row/column separator". An
	// empty plain tag set here is intentionally different from an
	// unrecognised header: it is *recognised* as carrying no tags.
	"—": Plain(""),
	"-": Plain(""),

	// Reset-marker example: a header whose own meaning also means "start a
	// fresh column-header stack from here" (spec.md §4.5, §8 scenario 2).
	// Modelled on tables that introduce an entirely new paradigm mid-table
	// (e.g. a "Nominal forms" divider row in a verb table).
	"Nominal forms": Plain("! detail"),

	// Wildcard marker example: a header meaning "the rest of this column is
	// itself all headers" (spec.md §4.5), seen in tables that use a
	// right-hand column purely for footnote keys.
	"Key": Plain("*"),

	// Conditional example grounded on the source's German-pronoun handling:
	// a bare "du" header means second-person singular in most languages,
	// but in a language that has already accumulated an "informal" tag on
	// the row (e.g. a table distinguishing tu/vos forms) it should not
	// duplicate the politeness distinction.
	"du": Cond(
		Condition{If: []tags.Tag{"informal"}},
		Plain("second-person singular"),
		Plain("second-person singular informal"),
	),

	// Russian-specific conditional: "он" (he) only carries gender when the
	// table is explicitly Russian (other Slavic languages reuse the same
	// header text for a gender-neutral third person).
	"он": Cond(
		Condition{Lang: []string{"Russian"}},
		Plain("third-person singular masculine"),
		Plain("third-person singular"),
	),
}

func init() {
	for key, v := range HeaderMap {
		validateHeaderValue(key, v)
	}
}

// LookupPlain reports whether text is a HeaderMap key whose value is a bare
// Plain leaf (not an alternatives list or a conditional), returning its tag
// set (spec.md §4.3 step 2: title-parser whole-title shortcut). Tries text
// as given, then matches its lowercased form against the lowercased keys.
func LookupPlain(text string) (tags.Set, bool) {
	if v, ok := HeaderMap[text]; ok {
		if p, ok := v.(plainValue); ok {
			return p.set, true
		}
		return tags.Set{}, false
	}
	lower := strings.ToLower(text)
	for key, v := range HeaderMap {
		if strings.ToLower(key) != lower {
			continue
		}
		if p, ok := v.(plainValue); ok {
			return p.set, true
		}
	}
	return tags.Set{}, false
}

// IsKnownHeader reports whether text is an exact key in HeaderMap (spec.md
// §4.4: "if the text is not a known header key", used by the header cleaner
// to decide whether a trailing parenthetical is decoration or meaningful).
func IsKnownHeader(text string) bool {
	_, ok := HeaderMap[text]
	return ok
}

// validateHeaderValue walks v and panics if it references an unknown tag
// (spec.md §7 kind 3: programmer error, caught at load time).
func validateHeaderValue(key string, v HeaderValue) {
	switch n := v.(type) {
	case plainValue:
		validateSet(key, n.set)
	case altsValue:
		for _, s := range n.sets {
			validateSet(key, s)
		}
	case condValue:
		validateHeaderValue(key, n.then)
		if n.els != nil {
			validateHeaderValue(key, n.els)
		}
		for _, t := range n.cond.If {
			tags.MustValid(t)
		}
	default:
		panic("ruledata: header map entry " + key + " has unknown HeaderValue shape")
	}
}

func validateSet(key string, s tags.Set) {
	for _, t := range s.Tags() {
		if t == "!" || t == "*" {
			continue // sentinel markers, not catalogue tags
		}
		tags.MustValid(t)
	}
}
