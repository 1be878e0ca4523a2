package infltable

import "testing"

func TestNormalizeTitleStripsMarkupAndCollapsesWhitespace(t *testing.T) {
	got := normalizeTitle("Conjugation of <b>essere</b>\n\t (Italian)")
	if got != "Conjugation of essere (Italian)" {
		t.Fatalf("normalizeTitle = %q", got)
	}
}

func TestParseTitlePlainShortcut(t *testing.T) {
	res := parseTitle("Singular", "x")
	if !res.globalTags.Contains("singular") {
		t.Fatalf("globalTags = %v, want singular", res.globalTags)
	}
	if !res.wordTags.Empty() || len(res.extraForms) != 0 {
		t.Fatalf("expected a pure plain shortcut, got %+v", res)
	}
}

func TestParseTitleGlobalAndWordMatches(t *testing.T) {
	res := parseTitle("Comparative and superlative forms of a strong adjective", "x")
	if !res.globalTags.Contains("comparative") || !res.globalTags.Contains("superlative") {
		t.Fatalf("globalTags = %v", res.globalTags)
	}
	if !res.wordTags.Contains("strong") {
		t.Fatalf("wordTags = %v, want strong", res.wordTags)
	}
}

func TestParseTitleParenthesizedElements(t *testing.T) {
	res := parseTitle("Declension of talo (weak, singular)", "x")
	if !res.wordTags.Contains("weak") || !res.wordTags.Contains("singular") {
		t.Fatalf("wordTags = %v", res.wordTags)
	}
}

func TestParseTitleElemStartExtraForm(t *testing.T) {
	res := parseTitle("Declension of koira (class 9)", "x")
	if len(res.extraForms) != 1 {
		t.Fatalf("extraForms = %+v, want exactly one", res.extraForms)
	}
	if res.extraForms[0].Form != "9" {
		t.Fatalf("extraForms[0].Form = %q, want %q", res.extraForms[0].Form, "9")
	}
	found := false
	for _, tg := range res.extraForms[0].Tags {
		if tg == "class" {
			found = true
		}
	}
	if !found {
		t.Fatalf("extraForms[0].Tags = %v, want class", res.extraForms[0].Tags)
	}
}

func TestParseTitlePortugueseVerbClassNoParens(t *testing.T) {
	res := parseTitle("Conjugation of falar, a Portuguese -ar verb ", "x")
	if len(res.extraForms) != 1 || res.extraForms[0].Form != "-ar verb" {
		t.Fatalf("extraForms = %+v", res.extraForms)
	}
}
