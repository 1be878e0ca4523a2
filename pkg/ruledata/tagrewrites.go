package ruledata

import "github.com/scharney/wiktextract/pkg/tags"

// TagRewrite replaces an exact combination of tags with a different
// combination, applied to a form's computed tag set during C9
// post-processing (spec.md §4.9, grounded on the source's
// lang_tag_mappings: a list of [from-combination, to-combination] pairs,
// e.g. Armenian's "possessive singular" meaning something different from
// the combination's literal reading elsewhere).
type TagRewrite struct {
	From tags.Set
	To   tags.Set
}

// LangTagRewrites maps a language name to the ordered list of tag rewrites
// applied to that language's computed tag sets (spec.md §4.9, C9). Rewrites
// run to a fixed point: each pass attempts every rewrite in order, and
// passes repeat until none apply (spec.md §4.9 "post-processing loop").
var LangTagRewrites = map[string][]TagRewrite{
	"Armenian": {
		{From: tags.FromFields("possessive singular"), To: tags.FromFields("possessive possessive-single")},
		{From: tags.FromFields("possessive plural"), To: tags.FromFields("possessive possessive-many")},
	},
}

func init() {
	for lang, rewrites := range LangTagRewrites {
		for _, r := range rewrites {
			validateSet(lang, r.From)
			validateSet(lang, r.To)
		}
	}
}

// ApplyTagRewrites repeatedly applies lang's rewrites to s until a pass
// makes no change, then returns the resulting set (spec.md §4.9).
func ApplyTagRewrites(lang string, s tags.Set) tags.Set {
	rewrites := LangTagRewrites[lang]
	if len(rewrites) == 0 {
		return s
	}
	for {
		changed := false
		for _, r := range rewrites {
			if s.ContainsAll(r.From.Tags()...) {
				s = s.Without(r.From.Tags()...).Union(r.To)
				changed = true
			}
		}
		if !changed {
			return s
		}
	}
}
