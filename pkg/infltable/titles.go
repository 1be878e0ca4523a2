package infltable

import (
	"html"
	"regexp"
	"strings"

	"github.com/scharney/wiktextract/pkg/ruledata"
	"github.com/scharney/wiktextract/pkg/tags"
)

// titleResult is the (global_tags, word_tags, extra_forms) triple C3
// returns for one title line (spec.md §4.3).
type titleResult struct {
	globalTags tags.Set
	wordTags   tags.Set
	extraForms []FormRecord
}

var (
	markupTagRe  = regexp.MustCompile(`<[^>]*>`)
	whitespaceRe = regexp.MustCompile(`\s+`)
	parenGroupRe = regexp.MustCompile(`\(([^()]*)\)`)
)

// normalizeTitle implements spec.md §4.3 step 1.
func normalizeTitle(title string) string {
	t := html.UnescapeString(title)
	t = markupTagRe.ReplaceAllString(t, "")
	t = whitespaceRe.ReplaceAllString(t, " ")
	return strings.TrimSpace(t)
}

// parseTitle implements C3 (spec.md §4.3) for one title line.
func parseTitle(title, source string) titleResult {
	text := normalizeTitle(title)

	if set, ok := ruledata.LookupPlain(text); ok {
		return titleResult{globalTags: set}
	}

	var res titleResult
	globalMatches := ruledata.MatchTitleGlobal(text)
	for _, m := range globalMatches {
		res.globalTags = res.globalTags.Union(ruledata.TitleGlobal[m])
	}
	wordMatches := ruledata.MatchTitleWord(text)
	for _, m := range wordMatches {
		res.wordTags = res.wordTags.Union(ruledata.TitleWord[m])
	}

	if cd, ok := ruledata.ClassDescriptor(text); ok {
		res.extraForms = append(res.extraForms, newRecord(cd, tags.New("class"), source+" title", "", ""))
	}

	groups := parenGroupRe.FindAllStringSubmatch(text, -1)
	if len(groups) > 0 {
		for _, g := range groups {
			for _, elem := range strings.Split(g[1], ",") {
				elem = strings.TrimSpace(elem)
				if elem == "" {
					continue
				}
				if set, ok := ruledata.TitleElements[strings.ToLower(elem)]; ok {
					res.wordTags = res.wordTags.Union(set)
					continue
				}
				if set, remainder, ok := ruledata.TitleElemStartMatch(elem); ok {
					res.extraForms = append(res.extraForms,
						newRecord(strings.TrimSpace(remainder), set, source+" title", "", ""))
				}
			}
		}
		return res
	}

	// Step 6: no parentheses — treat "-stem" components and the
	// Portuguese "<lang> -<ending> verb" pattern as class extras. A
	// component only counts here if the WHOLE comma-split part ends in
	// "-stem"; "2nd-stem class" does not, even though it contains
	// "-stem", so it is left to step 4's whole-title scan.
	for _, part := range strings.Split(text, ",") {
		part = strings.TrimSpace(part)
		if set, ok := ruledata.TitleElements[strings.ToLower(part)]; ok {
			res.wordTags = res.wordTags.Union(set)
			continue
		}
		if strings.HasSuffix(part, "-stem") {
			res.extraForms = append(res.extraForms, newRecord(part, tags.New("class"), source+" title", "", ""))
		}
	}
	if ending, ok := ruledata.PortugueseVerbClass(text); ok {
		res.extraForms = append(res.extraForms, newRecord(ending, tags.New("class"), source+" title", "", ""))
	}

	return res
}
