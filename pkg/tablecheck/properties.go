package tablecheck

import (
	"fmt"
	"sort"
	"strings"

	"github.com/scharney/wiktextract/pkg/infltable"
	"github.com/scharney/wiktextract/pkg/tags"
)

func init() {
	Register(Check{Name: "tags-catalogued", Priority: 10, Run: checkTagsCatalogued})
	Register(Check{Name: "tags-sorted", Priority: 20, Run: checkTagsSorted})
	Register(Check{Name: "forms-non-empty", Priority: 30, Run: checkFormsNonEmpty})
	Register(Check{Name: "no-duplicate-records", Priority: 40, Run: checkNoDuplicates})
	Register(Check{Name: "positive-negative-exclusive", Priority: 50, Run: checkPositiveNegativeExclusive})
}

// RunAll runs every registered check against recs in priority order and
// returns their outcomes (spec.md §8 "Testable properties").
func RunAll(recs []infltable.FormRecord) []CheckResult {
	checks := ListSorted()
	out := make([]CheckResult, 0, len(checks))
	for _, c := range checks {
		out = append(out, c.Run(recs))
	}
	return out
}

// checkTagsCatalogued verifies every emitted tag is in the tag catalogue
// (spec.md §8: "Tag validity").
func checkTagsCatalogued(recs []infltable.FormRecord) CheckResult {
	for i, r := range recs {
		for _, t := range r.Tags {
			if _, ok := tags.CategoryOf(t); !ok && !tags.IsReset(t) && !tags.IsHeaderWildcard(t) {
				return CheckResult{Name: "tags-catalogued", Status: Fail,
					Message: fmt.Sprintf("record %d (%q) carries uncatalogued tag %q", i, r.Form, t)}
			}
		}
	}
	return CheckResult{Name: "tags-catalogued", Status: Pass, Message: fmt.Sprintf("%d records checked", len(recs))}
}

// checkTagsSorted verifies every record's Tags slice is lexically sorted
// (spec.md §8: "Sortedness").
func checkTagsSorted(recs []infltable.FormRecord) CheckResult {
	for i, r := range recs {
		if !sort.SliceIsSorted(r.Tags, func(a, b int) bool { return r.Tags[a] < r.Tags[b] }) {
			return CheckResult{Name: "tags-sorted", Status: Fail,
				Message: fmt.Sprintf("record %d (%q) has unsorted tags %v", i, r.Form, r.Tags)}
		}
	}
	return CheckResult{Name: "tags-sorted", Status: Pass, Message: fmt.Sprintf("%d records checked", len(recs))}
}

// checkFormsNonEmpty verifies every emitted record has a non-blank form
// (spec.md §8: "Non-empty form").
func checkFormsNonEmpty(recs []infltable.FormRecord) CheckResult {
	for i, r := range recs {
		if strings.TrimSpace(r.Form) == "" {
			return CheckResult{Name: "forms-non-empty", Status: Fail,
				Message: fmt.Sprintf("record %d has an empty form", i)}
		}
	}
	return CheckResult{Name: "forms-non-empty", Status: Pass, Message: fmt.Sprintf("%d records checked", len(recs))}
}

// checkNoDuplicates verifies recs carries no two records with the same
// (form, tags, roman, ipa) structural key (spec.md §8: "Deduplication" — a
// post-hoc guard for callers who build their own record slice outside
// infltable.Extract's own dedupeRecords pass).
func checkNoDuplicates(recs []infltable.FormRecord) CheckResult {
	seen := make(map[string]bool, len(recs))
	for i, r := range recs {
		set := tags.New(r.Tags...)
		key := r.Form + "\x00" + set.Key() + "\x00" + r.Roman + "\x00" + r.IPA
		if seen[key] {
			return CheckResult{Name: "no-duplicate-records", Status: Fail,
				Message: fmt.Sprintf("record %d (%q) duplicates an earlier record", i, r.Form)}
		}
		seen[key] = true
	}
	return CheckResult{Name: "no-duplicate-records", Status: Pass, Message: fmt.Sprintf("%d records checked", len(recs))}
}

// checkPositiveNegativeExclusive verifies post-processing's mutual-exclusion
// invariant held: no surviving record carries both "positive" and
// "negative" (spec.md §8: "Category exclusivity").
func checkPositiveNegativeExclusive(recs []infltable.FormRecord) CheckResult {
	for i, r := range recs {
		set := tags.New(r.Tags...)
		if set.Contains("positive") && set.Contains("negative") {
			return CheckResult{Name: "positive-negative-exclusive", Status: Fail,
				Message: fmt.Sprintf("record %d (%q) carries both positive and negative", i, r.Form)}
		}
	}
	return CheckResult{Name: "positive-negative-exclusive", Status: Pass, Message: fmt.Sprintf("%d records checked", len(recs))}
}
