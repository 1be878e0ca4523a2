// Package collab defines the external-collaborator contracts the inflection
// interpreter depends on (spec.md §6). The core never implements wiki/HTML
// rendering, script classification, or language-specific morphology itself;
// it calls back into these hooks, which the caller supplies.
package collab

import (
	"context"

	"github.com/scharney/wiktextract/pkg/tags"
)

// DescClass classifies a piece of cell text for the C8 splitter's
// romanisation-pairing heuristic and inline-parenthesis handling (spec.md
// §4.8c, §4.9).
type DescClass string

const (
	ClassTags          DescClass = "tags"
	ClassRomanization  DescClass = "romanization"
	ClassEnglish       DescClass = "english"
	ClassOther         DescClass = "other"
)

// Classify labels text as one of the DescClass values. Required: without it
// the splitter cannot decide whether a cell is "native / romanisation"
// pairs or a flat list of alternatives.
type Classify func(text string) DescClass

// DecodeTags parses a comma/semicolon-separated list of tag words (as found
// inside inline parentheses in a data cell) into alternative tag sets plus
// any topic words it could not map to a tag (spec.md §4.8c).
type DecodeTags func(text string) (alternatives []tags.Set, topics []string)

// ParseHeadFinalTags extracts a trailing morpheme from a non-finite verb
// form in a language-specific way (spec.md §4.8 step 2). Optional: a caller
// with no such morphology service supplies NoHeadFinalTags.
type ParseHeadFinalTags func(ctx context.Context, lang, form string) (newForm string, extra tags.Set)

// Debug is the diagnostic sink for soft/data errors (spec.md §7 kind 1).
type Debug func(format string, args ...any)

// Collaborators bundles every hook the driver (C10) may call during one
// table traversal. WithDefaults fills ParseHeadFinalTags and Debug with
// no-ops; Classify and DecodeTags have no default, and the driver skips
// the steps that use them when they are nil.
type Collaborators struct {
	Classify           Classify
	DecodeTags         DecodeTags
	ParseHeadFinalTags ParseHeadFinalTags
	Debug              Debug
}

// NoHeadFinalTags is a ParseHeadFinalTags that performs no extraction,
// useful for callers whose part-of-speech coverage never reaches the
// non-finite verb branch.
func NoHeadFinalTags(_ context.Context, _, form string) (string, tags.Set) {
	return form, tags.Set{}
}

// DiscardDebug is a Debug sink that drops every message.
func DiscardDebug(string, ...any) {}

// WithDefaults fills unset optional hooks on c and returns the result.
// Classify and DecodeTags are left nil if unset; callers must supply them
// (see Collaborators doc).
func WithDefaults(c Collaborators) Collaborators {
	if c.ParseHeadFinalTags == nil {
		c.ParseHeadFinalTags = NoHeadFinalTags
	}
	if c.Debug == nil {
		c.Debug = DiscardDebug
	}
	return c
}
