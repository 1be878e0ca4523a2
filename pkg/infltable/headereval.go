package infltable

import (
	"regexp"
	"strings"

	"github.com/scharney/wiktextract/pkg/collab"
	"github.com/scharney/wiktextract/pkg/ruledata"
	"github.com/scharney/wiktextract/pkg/tags"
)

// parenSuffixRe matches a trailing parenthetical for the first retry stage
// of the normalisation fallback (SUPPLEMENTED FEATURES item 1).
var parenSuffixRe = regexp.MustCompile(`\s*\([^()]*\)\s*$`)

// resolveHeader implements C5 (spec.md §4.5): look up text in the header
// map, falling back to the longest header_start_map prefix, then
// recursively resolve any conditional to its leaf alternatives. Returns the
// resolved alternatives and whether text was recognised at all.
func resolveHeader(lang, text string, tags0 tags.Set, dbg collab.Debug) ([]tags.Set, bool) {
	if v, ok := ruledata.HeaderMap[text]; ok {
		return ruledata.ResolveValue(v, lang, tags0, reportFn(dbg)), true
	}
	if v, ok := ruledata.LongestPrefixMatch(text); ok {
		return ruledata.ResolveValue(v, lang, tags0, reportFn(dbg)), true
	}
	return nil, false
}

// resolveHeaderWithFallback is resolveHeader plus the multi-stage
// normalisation retries the original source performs before giving up on a
// header cell (SUPPLEMENTED FEATURES item 1): strip a trailing
// parenthetical, then collapse ", "-joined fragments to a single space.
func resolveHeaderWithFallback(lang, text string, tags0 tags.Set, dbg collab.Debug) ([]tags.Set, bool) {
	if sets, ok := resolveHeader(lang, text, tags0, dbg); ok {
		return sets, true
	}
	if stripped := strings.TrimSpace(parenSuffixRe.ReplaceAllString(text, "")); stripped != text && stripped != "" {
		if sets, ok := resolveHeader(lang, stripped, tags0, dbg); ok {
			return sets, true
		}
	}
	if collapsed := strings.ReplaceAll(text, ", ", " "); collapsed != text {
		if sets, ok := resolveHeader(lang, collapsed, tags0, dbg); ok {
			return sets, true
		}
	}
	return nil, false
}

func reportFn(dbg collab.Debug) ruledata.Report {
	if dbg == nil {
		return nil
	}
	return ruledata.Report(dbg)
}

// hasResetMarker reports whether any alternative in sets carries the reset
// marker (spec.md §4.5).
func hasResetMarker(sets []tags.Set) bool {
	for _, s := range sets {
		if s.Contains(tags.Tag("!")) {
			return true
		}
	}
	return false
}

// hasHeaderWildcard reports whether any alternative in sets carries the
// "entire column is headers" marker (spec.md §4.5).
func hasHeaderWildcard(sets []tags.Set) bool {
	for _, s := range sets {
		if s.Contains(tags.Tag("*")) {
			return true
		}
	}
	return false
}

// stripMarkers removes the sentinel "!" and "*" tags from every set in
// sets, producing the tag-sets actually pushed onto a HeaderSpan or
// attributed to a form (spec.md §4.6: "after the driver filters out empty /
// reset / inherit-excluded tag-sets").
func stripMarkers(sets []tags.Set) []tags.Set {
	out := make([]tags.Set, 0, len(sets))
	for _, s := range sets {
		out = append(out, s.Without("!", "*"))
	}
	return out
}

// filterNoInherit drops any set in sets that contains a no-inherit tag
// (spec.md §4.8c: "Filter out tag-sets containing any no-inherit tag before
// pushing a HeaderSpan").
func filterNoInherit(sets []tags.Set) []tags.Set {
	out := make([]tags.Set, 0, len(sets))
	for _, s := range sets {
		skip := false
		for _, t := range s.Tags() {
			if tags.NoInherit(t) {
				skip = true
				break
			}
		}
		if !skip {
			out = append(out, s)
		}
	}
	return out
}

// nonEmpty reports whether sets contains at least one non-empty TagSet.
func nonEmpty(sets []tags.Set) bool {
	for _, s := range sets {
		if !s.Empty() {
			return true
		}
	}
	return false
}
