package ruledata

import "strings"

// HeaderStartMap contains prefix-triggered header-map entries (spec.md
// §4.2's header_start_map / §4.5 step 1's "longest-prefix" fallback). Keys
// are matched against the *start* of the cleaned header text; the longest
// matching key wins.
var HeaderStartMap = map[string]HeaderValue{
	"Dative ":        Plain("dative"),
	"Genitive ":      Plain("genitive"),
	"Accusative ":    Plain("accusative"),
	"Nominative ":    Plain("nominative"),
	"Instrumental ":  Plain("instrumental"),
	"Prepositional ": Plain("prepositional"),
	"Vocative ":      Plain("vocative"),
	"Locative ":      Plain("locative"),
	"Partitive ":     Plain("partitive"),
	"Present ":       Plain("present"),
	"Past ":          Plain("past"),
	"Future ":        Plain("future"),
	"Imperative ":    Plain("imperative"),
	"Subjunctive ":   Plain("subjunctive"),
	"Conditional ":   Plain("conditional"),
	"Participle ":    Plain("participle"),
	"Gerund ":        Plain("gerund"),
	"Infinitive ":    Plain("infinitive"),
	"class ":         Plain("class"),
	"type ":          Plain("class"),
}

func init() {
	for key, v := range HeaderStartMap {
		validateHeaderValue(key, v)
	}
}

// LongestPrefixMatch returns the HeaderStartMap entry whose key is the
// longest prefix of text, and true if one was found (spec.md §4.5 step 1).
func LongestPrefixMatch(text string) (HeaderValue, bool) {
	var bestKey string
	var best HeaderValue
	found := false
	for key, v := range HeaderStartMap {
		if strings.HasPrefix(text, key) && len(key) > len(bestKey) {
			bestKey, best, found = key, v, true
		}
	}
	return best, found
}
