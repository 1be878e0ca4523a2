package ruledata

import "github.com/scharney/wiktextract/pkg/tags"

// Report receives a diagnostic message when a conditional node has no
// applicable else-branch (spec.md §4.2: "Missing else with a false
// condition yields the empty tag-set (and a diagnostic)"). May be nil.
type Report func(format string, args ...any)

// ResolveValue evaluates v against (lang, tags0), recursing through
// conditional nodes until a leaf is reached, and returns every alternative
// tag set the leaf describes (spec.md §4.5 steps 2-4). Recursion is finite
// because each condValue strictly reduces to its Then or Else child.
func ResolveValue(v HeaderValue, lang string, tags0 tags.Set, report Report) []tags.Set {
	for {
		switch n := v.(type) {
		case plainValue:
			return []tags.Set{n.set}
		case altsValue:
			return append([]tags.Set(nil), n.sets...)
		case condValue:
			if evalCondition(n.cond, lang, tags0) {
				v = n.then
				continue
			}
			if n.els == nil {
				if report != nil {
					report("header map: conditional with no matching else branch (lang=%s)", lang)
				}
				return []tags.Set{{}}
			}
			v = n.els
			continue
		default:
			// Unreachable: HeaderValue is a closed sum type (headerValue()
			// is unexported), but fail loudly rather than silently drop
			// data per spec.md §7 kind 3.
			panic("ruledata: unknown HeaderValue implementation")
		}
	}
}
