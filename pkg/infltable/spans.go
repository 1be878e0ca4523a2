package infltable

import "github.com/scharney/wiktextract/pkg/tags"

// headerSpan records one header cell's effective coverage and resolved tag
// alternatives (spec.md §3 "HeaderSpan"). Unexported: pure bookkeeping
// internal to one table traversal (SPEC_FULL.md §3).
type headerSpan struct {
	columnStart int
	colspan     int
	rowIndex    int
	tagSets     []tags.Set
	text        string
	used        bool
}

// covers reports whether s occupies exactly the window [start, start+span).
func (s *headerSpan) covers(start, span int) bool {
	return s.columnStart == start && s.colspan == span
}

// containedBy reports whether s's column window is entirely inside
// [start, start+span).
func (s *headerSpan) containedBy(start, span int) bool {
	return s.columnStart >= start && s.columnStart+s.colspan <= start+span
}

// encloses reports whether [start, start+span) is entirely inside s's
// column window: s is a wider ancestor header whose meaning inherits down
// to a narrower descendant window (spec.md §4.7 first bullet's "is
// contained by it", read from the querying window's point of view).
func (s *headerSpan) encloses(start, span int) bool {
	return s.columnStart <= start && start+span <= s.columnStart+s.colspan
}

// overlaps reports whether s's window intersects [start, start+span) at all.
func (s *headerSpan) overlaps(start, span int) bool {
	return s.columnStart < start+span && start < s.columnStart+s.colspan
}

// headerSpanStack is the append-ordered sequence of headerSpans for the
// current table (spec.md §3 "HeaderSpanStack"). Invariant: row_index is
// non-decreasing across the sequence. Entirely cleared on a reset trigger.
type headerSpanStack struct {
	spans []*headerSpan
}

// push appends a new span. Callers must have already filtered out empty,
// reset, and no-inherit tag-sets (spec.md §4.6).
func (h *headerSpanStack) push(s *headerSpan) {
	h.spans = append(h.spans, s)
}

// reset clears the stack entirely (spec.md §4.5/§4.6: reset marker).
func (h *headerSpanStack) reset() {
	h.spans = nil
}

// len reports the number of spans currently on the stack.
func (h *headerSpanStack) len() int { return len(h.spans) }

// widenLeftmost widens s's colspan to width when it is narrower; a nil s is
// ignored (spec.md §4.8d "column-0 widening"). The caller decides whether
// the row qualifies for widening.
func widenLeftmost(s *headerSpan, width int) {
	if s == nil {
		return
	}
	if s.colspan < width {
		s.colspan = width
	}
}
