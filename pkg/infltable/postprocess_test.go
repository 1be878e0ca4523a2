package infltable

import (
	"context"
	"testing"

	"github.com/scharney/wiktextract/pkg/collab"
	"github.com/scharney/wiktextract/pkg/tags"
)

func TestMergeColumnIntoRowMoodDefersToRow(t *testing.T) {
	base := tags.FromFields("indicative singular")
	col := tags.FromFields("subjunctive")
	got := mergeColumnIntoRow(base, col)
	if !got.Contains("indicative") || got.Contains("subjunctive") {
		t.Fatalf("got = %v, want row mood to win", got)
	}
}

func TestMergeColumnIntoRowNoRowMoodTakesColumn(t *testing.T) {
	base := tags.FromFields("singular")
	col := tags.FromFields("subjunctive")
	got := mergeColumnIntoRow(base, col)
	if !got.Contains("subjunctive") {
		t.Fatalf("got = %v, want subjunctive merged in", got)
	}
}

func TestPostProcessFormRussianAnimacyPruning(t *testing.T) {
	ec := Context{Language: "Russian", PartOfSpeech: "noun"}
	set := tags.FromFields("accusative singular animate neuter")
	_, got := postProcessForm(context.Background(), ec, "окно", set, collab.WithDefaults(collab.Collaborators{}))
	if got.Contains("animate") {
		t.Fatalf("expected animate dropped, got %v", got)
	}
}

func TestPostProcessFormRussianAnimacyKeptWithMasculine(t *testing.T) {
	ec := Context{Language: "Russian", PartOfSpeech: "noun"}
	set := tags.FromFields("accusative singular animate masculine")
	_, got := postProcessForm(context.Background(), ec, "кота", set, collab.WithDefaults(collab.Collaborators{}))
	if !got.Contains("animate") {
		t.Fatalf("expected animate kept with masculine, got %v", got)
	}
}

func TestPostProcessFormPersonalDroppedWithSpecificPerson(t *testing.T) {
	ec := Context{Language: "x", PartOfSpeech: "pronoun"}
	set := tags.FromFields("first-person singular personal")
	_, got := postProcessForm(context.Background(), ec, "I", set, collab.WithDefaults(collab.Collaborators{}))
	if got.Contains("personal") {
		t.Fatalf("expected personal dropped, got %v", got)
	}
}

func TestPostProcessFormImpersonalDropsPersonNumber(t *testing.T) {
	ec := Context{Language: "x", PartOfSpeech: "verb"}
	set := tags.FromFields("impersonal third-person singular present")
	_, got := postProcessForm(context.Background(), ec, "regnet", set, collab.WithDefaults(collab.Collaborators{}))
	if got.ContainsAny("third-person", "singular") {
		t.Fatalf("expected person/number dropped, got %v", got)
	}
	if !got.Contains("impersonal") || !got.Contains("present") {
		t.Fatalf("expected impersonal and present kept, got %v", got)
	}
}

func TestPostProcessFormVerbPositiveDropsNegative(t *testing.T) {
	ec := Context{Language: "x", PartOfSpeech: "verb"}
	set := tags.FromFields("positive negative present")
	_, got := postProcessForm(context.Background(), ec, "go", set, collab.WithDefaults(collab.Collaborators{}))
	if got.ContainsAny("positive", "negative") {
		t.Fatalf("expected both positive and negative dropped, got %v", got)
	}
}

func TestPostProcessFormDummyMoodAlwaysDropped(t *testing.T) {
	ec := Context{Language: "x", PartOfSpeech: "verb"}
	set := tags.FromFields("dummy-mood present")
	_, got := postProcessForm(context.Background(), ec, "go", set, collab.WithDefaults(collab.Collaborators{}))
	if got.Contains("dummy-mood") {
		t.Fatalf("expected dummy-mood dropped, got %v", got)
	}
}

func TestPostProcessFormAppliesLanguageFormRewrite(t *testing.T) {
	ec := Context{Language: "German", PartOfSpeech: "verb"}
	form, got := postProcessForm(context.Background(), ec, "ich gehe", tags.Set{}, collab.WithDefaults(collab.Collaborators{}))
	if form != "gehe" {
		t.Fatalf("form = %q, want %q", form, "gehe")
	}
	if !got.Contains("first-person") || !got.Contains("singular") {
		t.Fatalf("got = %v, want first-person singular added", got)
	}
}

func TestPostProcessFormAppliesTagRewriteFixedPoint(t *testing.T) {
	ec := Context{Language: "Armenian", PartOfSpeech: "noun"}
	_, got := postProcessForm(context.Background(), ec, "x", tags.FromFields("possessive singular"), collab.WithDefaults(collab.Collaborators{}))
	want := tags.FromFields("possessive possessive-single")
	if !got.Equal(want) {
		t.Fatalf("got = %v, want %v", got, want)
	}
}
