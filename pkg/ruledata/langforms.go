package ruledata

import (
	"regexp"

	"github.com/scharney/wiktextract/pkg/tags"
)

// FormRewrite strips a leading pronoun (or other fixed prefix) from a form
// string and replaces it with tags that already say the same thing
// structurally, so the emitted form is just the inflected word (spec.md
// §4.9's "language-specific post-processing", grounded on the source's
// lang_specific_data pronoun-stripping tables for languages that spell
// person/number out in the cell text itself, e.g. German "ich gehe").
type FormRewrite struct {
	Match *regexp.Regexp
	Add   tags.Set
}

// LangFormRewrites maps a language name to the ordered list of rewrites
// tried against every form of that language's table (spec.md §4.9, C9).
// Entries are data, not algorithm; this is a representative subset in which
// every entry strips a leading pronoun.
var LangFormRewrites = map[string][]FormRewrite{
	"German": {
		{Match: regexp.MustCompile(`^ich `), Add: tags.FromFields("first-person singular")},
		{Match: regexp.MustCompile(`^du `), Add: tags.FromFields("second-person singular")},
		{Match: regexp.MustCompile(`^er/sie/es `), Add: tags.FromFields("third-person singular")},
		{Match: regexp.MustCompile(`^wir `), Add: tags.FromFields("first-person plural")},
		{Match: regexp.MustCompile(`^ihr `), Add: tags.FromFields("second-person plural")},
		{Match: regexp.MustCompile(`^sie `), Add: tags.FromFields("third-person plural")},
	},
	"French": {
		{Match: regexp.MustCompile(`^je `), Add: tags.FromFields("first-person singular")},
		{Match: regexp.MustCompile(`^tu `), Add: tags.FromFields("second-person singular")},
		{Match: regexp.MustCompile(`^il/elle `), Add: tags.FromFields("third-person singular")},
		{Match: regexp.MustCompile(`^nous `), Add: tags.FromFields("first-person plural")},
		{Match: regexp.MustCompile(`^vous `), Add: tags.FromFields("second-person plural")},
		{Match: regexp.MustCompile(`^ils/elles `), Add: tags.FromFields("third-person plural")},
	},
	"Spanish": {
		{Match: regexp.MustCompile(`^yo `), Add: tags.FromFields("first-person singular")},
		{Match: regexp.MustCompile(`^tú `), Add: tags.FromFields("second-person singular informal")},
		{Match: regexp.MustCompile(`^vos `), Add: tags.FromFields("second-person singular informal")},
		{Match: regexp.MustCompile(`^él/ella/usted `), Add: tags.FromFields("third-person singular")},
		{Match: regexp.MustCompile(`^nosotros `), Add: tags.FromFields("first-person plural")},
		{Match: regexp.MustCompile(`^vosotros `), Add: tags.FromFields("second-person plural informal")},
		{Match: regexp.MustCompile(`^ellos/ellas/ustedes `), Add: tags.FromFields("third-person plural")},
	},
}

// ApplyFormRewrites tries every rewrite registered for lang against form in
// order, applying the first match (spec.md §4.9). Returns the form with the
// matched text cut out and the tags to add; ok is false if nothing matched.
func ApplyFormRewrites(lang, form string) (newForm string, add tags.Set, ok bool) {
	for _, r := range LangFormRewrites[lang] {
		if loc := r.Match.FindStringIndex(form); loc != nil {
			return form[:loc[0]] + form[loc[1]:], r.Add, true
		}
	}
	return form, tags.Set{}, false
}

func init() {
	for lang, rewrites := range LangFormRewrites {
		for _, r := range rewrites {
			validateSet(lang, r.Add)
		}
	}
}
