package ruledata

// IgnoredColValues is the set of cell texts that carry no information and
// should be skipped outright regardless of header/data role (spec.md §4.6,
// "cells whose entire text is a dash-like placeholder or a bare separator
// character"). The dash inventory below covers every dash/hyphen code point
// Wiktionary tables are observed to use as a placeholder, not just ASCII
// hyphen-minus, plus the two bare separator characters "/" and "?".
var IgnoredColValues = map[string]bool{
	"-": true, // U+002D HYPHEN-MINUS
	"֊":  true, // U+058A ARMENIAN HYPHEN
	"᠆":  true, // U+1806 MONGOLIAN TODO SOFT HYPHEN
	"‐":  true, // U+2010 HYPHEN
	"‑":  true, // U+2011 NON-BREAKING HYPHEN
	"‒":  true, // U+2012 FIGURE DASH
	"–":  true, // U+2013 EN DASH
	"—":  true, // U+2014 EM DASH
	"―":  true, // U+2015 HORIZONTAL BAR
	"−":  true, // U+2212 MINUS SIGN
	"⸺":  true, // U+2E3A TWO-EM DASH
	"⸻":  true, // U+2E3B THREE-EM DASH
	"﹘":  true, // U+FE58 SMALL EM DASH
	"﹣":  true, // U+FE63 SMALL HYPHEN-MINUS
	"－": true, // U+FF0D FULLWIDTH HYPHEN-MINUS
	"/":  true,
	"?":  true,
}

// IsIgnoredColValue reports whether text is a placeholder that should be
// skipped rather than treated as header or data content.
func IsIgnoredColValue(text string) bool {
	return IgnoredColValues[text]
}
