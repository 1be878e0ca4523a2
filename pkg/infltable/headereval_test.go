package infltable

import (
	"testing"

	"github.com/scharney/wiktextract/pkg/tags"
)

func TestResolveHeaderExactMatch(t *testing.T) {
	sets, ok := resolveHeader("German", "Singular", tags.Set{}, nil)
	if !ok {
		t.Fatal("expected Singular to resolve")
	}
	if len(sets) != 1 || !sets[0].Equal(tags.FromFields("singular")) {
		t.Fatalf("sets = %v", sets)
	}
}

func TestResolveHeaderPrefixFallback(t *testing.T) {
	sets, ok := resolveHeader("German", "Dative something", tags.Set{}, nil)
	if !ok {
		t.Fatal("expected a longest-prefix match")
	}
	if !sets[0].Equal(tags.FromFields("dative")) {
		t.Fatalf("sets = %v", sets)
	}
}

func TestResolveHeaderUnrecognized(t *testing.T) {
	_, ok := resolveHeader("German", "totally unknown header text", tags.Set{}, nil)
	if ok {
		t.Fatal("did not expect a match")
	}
}

func TestResolveHeaderWithFallbackStripsTrailingParenthetical(t *testing.T) {
	sets, ok := resolveHeaderWithFallback("German", "Singular (archaic)", tags.Set{}, nil)
	if !ok {
		t.Fatal("expected the fallback to strip the parenthetical and match")
	}
	if !sets[0].Equal(tags.FromFields("singular")) {
		t.Fatalf("sets = %v", sets)
	}
}

func TestResolveHeaderWithFallbackCollapsesCommaSpace(t *testing.T) {
	sets, ok := resolveHeaderWithFallback("German", "Dative, plural", tags.Set{}, nil)
	if !ok {
		t.Fatal("expected the fallback to collapse ', ' and match")
	}
	if !sets[0].Equal(tags.FromFields("dative plural")) {
		t.Fatalf("sets = %v", sets)
	}
}

func TestHasResetMarkerAndWildcard(t *testing.T) {
	sets, ok := resolveHeader("x", "Nominal forms", tags.Set{}, nil)
	if !ok || !hasResetMarker(sets) {
		t.Fatalf("expected Nominal forms to carry the reset marker: %v %v", sets, ok)
	}

	sets, ok = resolveHeader("x", "Key", tags.Set{}, nil)
	if !ok || !hasHeaderWildcard(sets) {
		t.Fatalf("expected Key to carry the wildcard marker: %v %v", sets, ok)
	}
}

func TestStripMarkersRemovesSentinels(t *testing.T) {
	sets := stripMarkers([]tags.Set{tags.FromFields("! detail"), tags.FromFields("present")})
	if sets[0].Contains("!") || !sets[0].Contains("detail") {
		t.Fatalf("sets[0] = %v", sets[0])
	}
	if !sets[1].Equal(tags.FromFields("present")) {
		t.Fatalf("sets[1] = %v", sets[1])
	}
}

func TestFilterNoInheritDropsInfinitiveVariants(t *testing.T) {
	in := []tags.Set{tags.FromFields("infinitive-i"), tags.FromFields("infinitive")}
	out := filterNoInherit(in)
	if len(out) != 1 || !out[0].Equal(tags.FromFields("infinitive")) {
		t.Fatalf("filterNoInherit = %v", out)
	}
}

func TestNonEmpty(t *testing.T) {
	if nonEmpty([]tags.Set{{}, {}}) {
		t.Fatal("expected nonEmpty to be false for all-empty sets")
	}
	if !nonEmpty([]tags.Set{{}, tags.FromFields("present")}) {
		t.Fatal("expected nonEmpty to be true when one set carries a tag")
	}
}
