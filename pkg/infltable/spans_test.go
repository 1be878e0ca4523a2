package infltable

import "testing"

func TestHeaderSpanCovers(t *testing.T) {
	s := &headerSpan{columnStart: 2, colspan: 3}
	if !s.covers(2, 3) {
		t.Fatal("expected covers(2,3) to be true")
	}
	if s.covers(2, 2) || s.covers(1, 3) {
		t.Fatal("covers should require exact match")
	}
}

func TestHeaderSpanContainedBy(t *testing.T) {
	s := &headerSpan{columnStart: 2, colspan: 2}
	if !s.containedBy(1, 4) {
		t.Fatal("expected [2,4) to be contained by [1,5)")
	}
	if s.containedBy(3, 2) {
		t.Fatal("did not expect [2,4) to be contained by [3,5)")
	}
}

func TestHeaderSpanOverlaps(t *testing.T) {
	s := &headerSpan{columnStart: 2, colspan: 2}
	if !s.overlaps(3, 2) {
		t.Fatal("expected [2,4) to overlap [3,5)")
	}
	if s.overlaps(4, 2) {
		t.Fatal("did not expect [2,4) to overlap [4,6)")
	}
}

func TestHeaderSpanStackPushAndReset(t *testing.T) {
	var stack headerSpanStack
	stack.push(&headerSpan{columnStart: 0, colspan: 1})
	stack.push(&headerSpan{columnStart: 1, colspan: 1})
	if stack.len() != 2 {
		t.Fatalf("len() = %d, want 2", stack.len())
	}
	stack.reset()
	if stack.len() != 0 {
		t.Fatalf("len() after reset = %d, want 0", stack.len())
	}
}

func TestWidenLeftmost(t *testing.T) {
	s := &headerSpan{columnStart: 0, colspan: 1}
	widenLeftmost(s, 3)
	if s.colspan != 3 {
		t.Fatalf("colspan = %d, want 3", s.colspan)
	}
	widenLeftmost(s, 2) // narrower width must not shrink it back
	if s.colspan != 3 {
		t.Fatalf("colspan = %d after narrower widen, want unchanged 3", s.colspan)
	}
	widenLeftmost(nil, 5) // must not panic
}
