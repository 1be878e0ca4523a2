package infltable

import "golang.org/x/text/language"

// Context is the immutable extraction context for one table (spec.md §3
// "Extraction context"). The core compares Language as an opaque string
// throughout, exactly as the header-map conditionals and C9 lookups expect;
// LanguageTag is an additional, optional accessor for callers that want
// canonical BCP 47 matching across several source languages.
type Context struct {
	Language     string
	PartOfSpeech string
	Headword     string
	Source       string
}

// LanguageTag best-effort parses Language as a BCP 47 tag. It does not
// affect any core comparison, which always uses the raw Language string.
func (c Context) LanguageTag() (language.Tag, error) {
	return language.Parse(c.Language)
}
