package ruledata

import "github.com/scharney/wiktextract/pkg/tags"

// HeaderValue is the tagged variant spec.md §9 calls for:
//
//	HeaderValue = Plain(TagSet) | Alts(list<TagSet>) | Cond{lang?, if?, then, else?}
//
// The original Python source relies on isinstance checks over str/list/dict;
// here it is a closed Go sum type (an unexported marker method on an
// exported interface) so every header-map entry is statically one of the
// three shapes and the evaluator's switch is exhaustive.
type HeaderValue interface {
	headerValue()
}

// plainValue is a leaf: the header always resolves to exactly this tag set.
type plainValue struct{ set tags.Set }

func (plainValue) headerValue() {}

// Plain builds a leaf HeaderValue from a space-separated tag expression.
func Plain(expr string) HeaderValue { return plainValue{set: tags.FromFields(expr)} }

// altsValue is a leaf: the header resolves to one of several alternative
// tag sets (spec.md §3 "Alternative tag-sets").
type altsValue struct{ sets []tags.Set }

func (altsValue) headerValue() {}

// Alts builds an alternatives HeaderValue from several tag expressions.
func Alts(exprs ...string) HeaderValue {
	sets := make([]tags.Set, len(exprs))
	for i, e := range exprs {
		sets[i] = tags.FromFields(e)
	}
	return altsValue{sets: sets}
}

// Condition is the predicate half of a Cond node (spec.md §4.2).
type Condition struct {
	// Lang restricts the condition to these languages; empty means "any".
	Lang []string
	// If lists tags that must (conjunctive) or may (disjunctive, when Any
	// is set) already be present in tags0 for the condition to hold.
	If  []tags.Tag
	Any bool // true => "if" is disjunctive ("any: ..." in the source)
}

// condValue is a conditional node: evaluate Cond against (language, tags0)
// and recurse into Then or Else.
type condValue struct {
	cond Condition
	then HeaderValue
	els  HeaderValue // nil means "no else" (spec.md §4.2: missing else -> empty tag-set)
}

func (condValue) headerValue() {}

// Cond builds a conditional HeaderValue. els may be nil.
func Cond(cond Condition, then HeaderValue, els HeaderValue) HeaderValue {
	return condValue{cond: cond, then: then, els: els}
}

// evalCondition evaluates cond against (lang, tags0), following spec.md
// §4.2's rules: Lang is a membership test (true if empty); If is
// conjunctive unless Any is set, in which case it is disjunctive.
func evalCondition(cond Condition, lang string, tags0 tags.Set) bool {
	if len(cond.Lang) > 0 {
		matched := false
		for _, l := range cond.Lang {
			if l == lang {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	if len(cond.If) == 0 {
		return true
	}
	if cond.Any {
		return tags0.ContainsAny(cond.If...)
	}
	return tags0.ContainsAll(cond.If...)
}
