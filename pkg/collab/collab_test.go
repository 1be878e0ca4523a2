package collab

import (
	"context"
	"testing"
)

func TestNoHeadFinalTagsIsNoop(t *testing.T) {
	form, extra := NoHeadFinalTags(context.Background(), "German", "zu gehen")
	if form != "zu gehen" {
		t.Errorf("form = %q, want unchanged", form)
	}
	if !extra.Empty() {
		t.Errorf("extra = %v, want empty", extra)
	}
}

func TestWithDefaultsFillsOptionalHooks(t *testing.T) {
	c := WithDefaults(Collaborators{})
	if c.ParseHeadFinalTags == nil {
		t.Fatal("expected ParseHeadFinalTags to be filled")
	}
	if c.Debug == nil {
		t.Fatal("expected Debug to be filled")
	}
	// Should not panic.
	c.Debug("some %s", "message")
}

func TestWithDefaultsPreservesSuppliedHooks(t *testing.T) {
	c := WithDefaults(Collaborators{
		Classify: func(string) DescClass { return ClassOther },
	})
	if c.Classify == nil || c.Classify("x") != ClassOther {
		t.Fatal("expected supplied Classify to be preserved")
	}
}
