package ruledata

import (
	"testing"

	"github.com/scharney/wiktextract/pkg/tags"
)

func TestApplyTagRewritesArmenianSingular(t *testing.T) {
	in := tags.FromFields("possessive singular")
	got := ApplyTagRewrites("Armenian", in)
	want := tags.FromFields("possessive possessive-single")
	if !got.Equal(want) {
		t.Fatalf("ApplyTagRewrites = %v, want %v", got, want)
	}
}

func TestApplyTagRewritesArmenianPlural(t *testing.T) {
	in := tags.FromFields("possessive plural")
	got := ApplyTagRewrites("Armenian", in)
	want := tags.FromFields("possessive possessive-many")
	if !got.Equal(want) {
		t.Fatalf("ApplyTagRewrites = %v, want %v", got, want)
	}
}

func TestApplyTagRewritesNoMatchLeavesSetUnchanged(t *testing.T) {
	in := tags.FromFields("nominative singular")
	got := ApplyTagRewrites("Armenian", in)
	if !got.Equal(in) {
		t.Fatalf("ApplyTagRewrites changed an unrelated set: %v", got)
	}
}

func TestApplyTagRewritesUnknownLanguageIsNoop(t *testing.T) {
	in := tags.FromFields("possessive singular")
	got := ApplyTagRewrites("Polish", in)
	if !got.Equal(in) {
		t.Fatalf("expected no rewrite for unregistered language, got %v", got)
	}
}
