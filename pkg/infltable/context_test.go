package infltable

import "testing"

func TestContextLanguageTagParsesBCP47(t *testing.T) {
	c := Context{Language: "de", PartOfSpeech: "verb"}
	tag, err := c.LanguageTag()
	if err != nil {
		t.Fatalf("LanguageTag() error = %v", err)
	}
	if tag.String() != "de" {
		t.Fatalf("LanguageTag() = %v, want de", tag)
	}
}

func TestContextLanguageTagRejectsNonBCP47Name(t *testing.T) {
	// A multi-word language name, as the core itself always compares
	// verbatim, is not valid BCP 47 syntax.
	c := Context{Language: "Ancient Greek"}
	if _, err := c.LanguageTag(); err == nil {
		t.Fatal("expected an error parsing a non-BCP-47 language name")
	}
}
