package infltable

import (
	"context"

	"github.com/scharney/wiktextract/pkg/collab"
	"github.com/scharney/wiktextract/pkg/ruledata"
	"github.com/scharney/wiktextract/pkg/tags"
)

// mergeColumnIntoRow merges col's tags into base, deferring to row tags for
// the mood category: a column tag in mood is skipped if base already has a
// mood tag (spec.md §4.8, "Tag composition per emitted form" preamble).
func mergeColumnIntoRow(base tags.Set, col tags.Set) tags.Set {
	rowHasMood := base.HasCategory(tags.CategoryMood)
	for _, t := range col.Tags() {
		if cat, ok := tags.CategoryOf(t); ok && cat == tags.CategoryMood && rowHasMood {
			continue
		}
		base = base.Union(tags.New(t))
	}
	return base
}

// postProcessForm runs C9 and the remaining per-emitted-form rules (spec.md
// §4.8 "Tag composition per emitted form", steps 1-8; §4.10 for C9 itself).
func postProcessForm(pctx context.Context, ec Context, form string, set tags.Set, collabs collab.Collaborators) (string, tags.Set) {
	// 1. Per-language form rewrite: adjust form text, append its tags.
	if newForm, add, ok := ruledata.ApplyFormRewrites(ec.Language, form); ok {
		form = newForm
		set = set.Union(add)
	}

	// 2. Head-final tag parsing for non-finite verb forms.
	if ec.PartOfSpeech == "verb" && set.HasCategory(tags.CategoryNonFinite) && collabs.ParseHeadFinalTags != nil {
		newForm, extra := collabs.ParseHeadFinalTags(pctx, ec.Language, form)
		form = newForm
		set = set.Union(extra)
	}

	// 3. Russian animacy pruning.
	if ec.Language == "Russian" {
		hasAnimacy := set.ContainsAny("animate", "inanimate")
		hasNeuterOrFeminine := set.ContainsAny("neuter", "feminine")
		if hasAnimacy && hasNeuterOrFeminine && !set.Contains("masculine") && !set.Contains("plural") {
			set = set.Without("animate", "inanimate")
		}
	}

	// 4. A specific-person tag alongside "personal" but not "pronoun" drops
	// "personal" (it is implied by the person tag already).
	if set.ContainsAny("first-person", "second-person", "third-person") && set.Contains("personal") && !set.Contains("pronoun") {
		set = set.Without("personal")
	}

	// 5. "impersonal" drops every person/number tag.
	if set.Contains("impersonal") {
		set = set.Without("first-person", "second-person", "third-person", "singular", "plural")
	}

	// 6. A verb's "positive" drops "negative" (if present) then itself.
	if ec.PartOfSpeech == "verb" && set.Contains("positive") {
		set = set.Without("negative", "positive")
	}

	// 7. "dummy-mood" is never emitted.
	set = set.Without("dummy-mood")

	// 8. Per-language tag-remap table, applied to a fixed point.
	set = ruledata.ApplyTagRewrites(ec.Language, set)

	return form, set
}
