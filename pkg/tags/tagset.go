package tags

import (
	"sort"
	"strings"
)

// Set is a canonically-sorted, de-duplicated collection of Tag. Two Sets
// with the same members always compare equal via Key(), which is what lets
// a Set be used as a map key for the "alternatives" representation in
// spec.md §3 ("Alternative tag-sets" = set of Sets).
type Set struct {
	sorted []Tag
}

// New builds a Set from individual tags, sorting and de-duplicating them.
func New(ts ...Tag) Set {
	if len(ts) == 0 {
		return Set{}
	}
	cp := append([]Tag(nil), ts...)
	sort.Slice(cp, func(i, j int) bool { return cp[i] < cp[j] })
	out := cp[:1]
	for _, t := range cp[1:] {
		if t != out[len(out)-1] {
			out = append(out, t)
		}
	}
	return Set{sorted: out}
}

// FromFields splits a whitespace-separated tag expression into a Set, the
// form header-map leaf strings and rewrite-rule sources are written in
// (spec.md §4.2, §4.5 step 3).
func FromFields(expr string) Set {
	return New(toTags(strings.Fields(expr))...)
}

func toTags(fields []string) []Tag {
	out := make([]Tag, len(fields))
	for i, f := range fields {
		out[i] = Tag(f)
	}
	return out
}

// Tags returns the sorted tag slice. Callers must not mutate the result.
func (s Set) Tags() []Tag { return s.sorted }

// Len reports the number of tags in s.
func (s Set) Len() int { return len(s.sorted) }

// Contains reports whether t is a member of s.
func (s Set) Contains(t Tag) bool {
	i := sort.Search(len(s.sorted), func(i int) bool { return s.sorted[i] >= t })
	return i < len(s.sorted) && s.sorted[i] == t
}

// ContainsAny reports whether s contains at least one of ts.
func (s Set) ContainsAny(ts ...Tag) bool {
	for _, t := range ts {
		if s.Contains(t) {
			return true
		}
	}
	return false
}

// ContainsAll reports whether s contains every tag in ts.
func (s Set) ContainsAll(ts ...Tag) bool {
	for _, t := range ts {
		if !s.Contains(t) {
			return false
		}
	}
	return true
}

// HasCategory reports whether any tag in s belongs to cat.
func (s Set) HasCategory(cat Category) bool {
	for _, t := range s.sorted {
		if c, ok := CategoryOf(t); ok && c == cat {
			return true
		}
	}
	return false
}

// Categories returns the distinct categories represented in s.
func (s Set) Categories() map[Category]bool {
	out := make(map[Category]bool, len(s.sorted))
	for _, t := range s.sorted {
		if c, ok := CategoryOf(t); ok {
			out[c] = true
		}
	}
	return out
}

// Union returns a new Set containing the members of s and other.
func (s Set) Union(other Set) Set {
	return New(append(append([]Tag(nil), s.sorted...), other.sorted...)...)
}

// Without returns a new Set with every tag in drop removed.
func (s Set) Without(drop ...Tag) Set {
	dropSet := make(map[Tag]bool, len(drop))
	for _, t := range drop {
		dropSet[t] = true
	}
	out := make([]Tag, 0, len(s.sorted))
	for _, t := range s.sorted {
		if !dropSet[t] {
			out = append(out, t)
		}
	}
	return Set{sorted: out}
}

// WithoutCategory returns a new Set with every tag in cat removed.
func (s Set) WithoutCategory(cat Category) Set {
	out := make([]Tag, 0, len(s.sorted))
	for _, t := range s.sorted {
		if c, ok := CategoryOf(t); ok && c == cat {
			continue
		}
		out = append(out, t)
	}
	return Set{sorted: out}
}

// Key returns a canonical string usable as a map key / equality witness.
func (s Set) Key() string {
	strs := make([]string, len(s.sorted))
	for i, t := range s.sorted {
		strs[i] = string(t)
	}
	return strings.Join(strs, " ")
}

// String renders the set as a space-joined tag expression.
func (s Set) String() string { return s.Key() }

// Equal reports structural equality between s and other.
func (s Set) Equal(other Set) bool { return s.Key() == other.Key() }

// Empty reports whether s has no members.
func (s Set) Empty() bool { return len(s.sorted) == 0 }

// AltSet is an ordered, de-duplicated collection of alternative Sets
// (spec.md §3 "Alternative tag-sets"). An empty AltSet means "unrecognised".
type AltSet struct {
	order []Set
	seen  map[string]bool
}

// Add appends s to the alternatives if not already present, preserving
// first-seen order (needed for deterministic iteration in the composer).
func (a *AltSet) Add(s Set) {
	if a.seen == nil {
		a.seen = make(map[string]bool)
	}
	if a.seen[s.Key()] {
		return
	}
	a.seen[s.Key()] = true
	a.order = append(a.order, s)
}

// All returns the alternatives in insertion order.
func (a AltSet) All() []Set { return a.order }

// Len reports the number of distinct alternatives.
func (a AltSet) Len() int { return len(a.order) }

// NewAltSet builds an AltSet from the given sets.
func NewAltSet(sets ...Set) AltSet {
	var a AltSet
	for _, s := range sets {
		a.Add(s)
	}
	return a
}
