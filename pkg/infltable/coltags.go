package infltable

import "github.com/scharney/wiktextract/pkg/tags"

// composeColumnTags implements C7 (spec.md §4.7): for the window
// [start, start+colspan) it walks stack in reverse insertion order and
// folds matching spans' tag-sets into a running alternatives accumulator,
// honoring the five stop rules. Returns a non-empty slice of alternative
// TagSets; {()} (one empty Set) means "no constraint".
func composeColumnTags(stack *headerSpanStack, start, colspan int, markUsed bool, cellText string) []tags.Set {
	_ = cellText // diagnostic only, per spec.md §4.7

	var coltags []tags.Set
	used := make(map[[2]int]bool)

	for i := len(stack.spans) - 1; i >= 0; i-- {
		h := stack.spans[i]

		key := [2]int{h.columnStart, h.colspan}
		if used[key] {
			continue
		}

		var candidate []tags.Set
		switch {
		case h.covers(start, colspan), h.encloses(start, colspan):
			// h matches the window exactly, or h is a wider ancestor whose
			// tags inherit down to this narrower window.
			candidate = h.tagSets
		case isAmbiguousSplit(stack, h, start, colspan):
			candidate = []tags.Set{{}}
		case h.overlaps(start, colspan):
			continue // partial overlap outside the window: ignore
		default:
			continue
		}

		used[key] = true
		if markUsed {
			h.used = true
		}

		if len(coltags) == 0 {
			coltags = append([]tags.Set(nil), candidate...)
			continue
		}

		newCats := categoriesOf(candidate)
		curCats := categoriesOf(coltags)

		if newCats[tags.CategoryDetail] {
			if len(curCats) == 0 {
				coltags = crossProduct(coltags, candidate)
			}
			break // stop rule 1
		}
		if newCats[tags.CategoryNonFinite] && intersectsAny(curCats,
			tags.CategoryMood, tags.CategoryTense, tags.CategoryNonFinite,
			tags.CategoryPerson, tags.CategoryNumber) {
			break // stop rule 2
		}
		if newCats[tags.CategoryMood] && curCats[tags.CategoryMood] {
			break // stop rule 3
		}
		if newCats[tags.CategoryNumber] && curCats[tags.CategoryNumber] {
			break // stop rule 4
		}
		if curCats[tags.CategoryNumber] && newCats[tags.CategoryGender] {
			break // stop rule 5
		}

		coltags = crossProduct(coltags, candidate)
	}

	if len(coltags) == 0 {
		return []tags.Set{{}}
	}
	return coltags
}

// isAmbiguousSplit implements the split gender/number special case (spec.md
// §4.7 second bullet): h is strictly contained by the window, every other
// span on h's row that is also contained by the window carries only tags in
// {gender, number, case}, and the row has no such span outside the window.
func isAmbiguousSplit(stack *headerSpanStack, h *headerSpan, start, colspan int) bool {
	if h.covers(start, colspan) || !h.containedBy(start, colspan) {
		return false
	}
	allowed := map[tags.Category]bool{
		tags.CategoryGender: true, tags.CategoryNumber: true, tags.CategoryCase: true,
	}
	for _, other := range stack.spans {
		if other.rowIndex != h.rowIndex {
			continue
		}
		cats := categoriesOf(other.tagSets)
		withinWindow := other.containedBy(start, colspan)
		if withinWindow {
			for c := range cats {
				if !allowed[c] {
					return false
				}
			}
			continue
		}
		if other.overlaps(start, colspan) {
			continue
		}
		for c := range cats {
			if allowed[c] {
				return false
			}
		}
	}
	return true
}

func categoriesOf(sets []tags.Set) map[tags.Category]bool {
	out := make(map[tags.Category]bool)
	for _, s := range sets {
		for c := range s.Categories() {
			out[c] = true
		}
	}
	return out
}

func intersectsAny(have map[tags.Category]bool, cats ...tags.Category) bool {
	for _, c := range cats {
		if have[c] {
			return true
		}
	}
	return false
}

// crossProduct multiplies two alternative lists together, collapsing
// duplicate resulting sets (spec.md §4.7: "cross-product by category:
// alternatives that differ in only one category collapse; otherwise
// multiply out").
func crossProduct(a, b []tags.Set) []tags.Set {
	seen := make(map[string]bool, len(a)*len(b))
	out := make([]tags.Set, 0, len(a)*len(b))
	for _, x := range a {
		for _, y := range b {
			merged := x.Union(y)
			if seen[merged.Key()] {
				continue
			}
			seen[merged.Key()] = true
			out = append(out, merged)
		}
	}
	return out
}
