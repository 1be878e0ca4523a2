package infltable

import (
	"reflect"
	"testing"

	"github.com/scharney/wiktextract/pkg/collab"
)

func TestSplitCellAlternativesSemicolon(t *testing.T) {
	got := splitCellAlternatives("eat; ate")
	if !reflect.DeepEqual(got, []string{"eat", "ate"}) {
		t.Fatalf("got %v", got)
	}
}

func TestSplitCellAlternativesComma(t *testing.T) {
	got := splitCellAlternatives("eat, ate")
	if !reflect.DeepEqual(got, []string{"eat", "ate"}) {
		t.Fatalf("got %v", got)
	}
}

func TestSplitCellAlternativesCommaSuppressedByPlusJoin(t *testing.T) {
	got := splitCellAlternatives("would + have, eaten")
	// The " + " marker suppresses comma-splitting, so this stays one piece.
	if len(got) != 1 {
		t.Fatalf("got %v, want a single alternative", got)
	}
}

func TestSplitCellAlternativesRespectsParens(t *testing.T) {
	got := splitCellAlternatives("eat (present, simple), ate")
	if !reflect.DeepEqual(got, []string{"eat (present, simple)", "ate"}) {
		t.Fatalf("got %v", got)
	}
}

func TestSplitCellAlternativesSlashSuppressedAtEnd(t *testing.T) {
	got := splitCellAlternatives("he/she/it/")
	if len(got) != 1 || got[0] != "he/she/it/" {
		t.Fatalf("got %v, want unsplit trailing-slash text", got)
	}
}

func TestSplitCellAlternativesSlashSplitsNormally(t *testing.T) {
	got := splitCellAlternatives("he/she")
	if !reflect.DeepEqual(got, []string{"he", "she"}) {
		t.Fatalf("got %v", got)
	}
}

func TestSplitCellAlternativesEmpty(t *testing.T) {
	got := splitCellAlternatives("")
	if !reflect.DeepEqual(got, []string{""}) {
		t.Fatalf("got %v", got)
	}
}

func TestPairRomanizationPairsEvenSplit(t *testing.T) {
	classify := func(s string) collab.DescClass {
		switch s {
		case "吃", "吃了":
			return collab.ClassOther
		default:
			return collab.ClassRomanization
		}
	}
	alts := []string{"吃", "吃了", "chī", "chīle"}
	got := pairRomanization(alts, classify)
	if len(got) != 2 {
		t.Fatalf("got %v, want 2 pairs", got)
	}
	if got[0].native != "吃" || got[0].roman != "chī" {
		t.Fatalf("got[0] = %+v", got[0])
	}
	if got[1].native != "吃了" || got[1].roman != "chīle" {
		t.Fatalf("got[1] = %+v", got[1])
	}
}

func TestPairRomanizationFallsBackWhenUnclassifiable(t *testing.T) {
	classify := func(string) collab.DescClass { return collab.ClassOther }
	alts := []string{"a", "b"}
	got := pairRomanization(alts, classify)
	if len(got) != 2 || got[0].roman != "" || got[1].roman != "" {
		t.Fatalf("got %+v, want no pairing", got)
	}
}

func TestSplitCellTextFullPipeline(t *testing.T) {
	classify := func(s string) collab.DescClass { return collab.ClassOther }
	got := splitCellText("eat; ate", classify)
	if len(got) != 2 || got[0].native != "eat" || got[1].native != "ate" {
		t.Fatalf("got %+v", got)
	}
}

func TestPairRomanizationIgnoresFootnoteMarkersWhenClassifying(t *testing.T) {
	// "стол¹" carries a superscript footnote ref; without stripping it
	// before classifying, a naive classifier keyed on exact native forms
	// would fail to recognise it and the pairing would collapse.
	classify := func(s string) collab.DescClass {
		switch s {
		case "стол", "стола":
			return collab.ClassOther
		default:
			return collab.ClassRomanization
		}
	}
	alts := []string{"стол¹", "стола^rare", "stol", "stola"}
	got := pairRomanization(alts, classify)
	if len(got) != 2 {
		t.Fatalf("got %v, want 2 pairs", got)
	}
	if got[0].native != "стол¹" || got[0].roman != "stol" {
		t.Fatalf("got[0] = %+v, want native to keep its footnote marker but still pair", got[0])
	}
	if got[1].native != "стола^rare" || got[1].roman != "stola" {
		t.Fatalf("got[1] = %+v, want native to keep its caret annotation but still pair", got[1])
	}
}

func TestClassifyInputStripsSuperscriptAndCaretSuffix(t *testing.T) {
	if got := classifyInput("стол¹"); got != "стол" {
		t.Fatalf("got %q, want %q", got, "стол")
	}
	if got := classifyInput("форма^rare"); got != "форма" {
		t.Fatalf("got %q, want %q", got, "форма")
	}
	if got := classifyInput("plain"); got != "plain" {
		t.Fatalf("got %q, want unchanged %q", got, "plain")
	}
}
