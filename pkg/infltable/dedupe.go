package infltable

import "github.com/scharney/wiktextract/pkg/tags"

// dedupeRecords suppresses structurally identical records, plus a record
// that differs from an already-emitted, non-dated record only by carrying
// an extra "dated" tag (spec.md §4.8 step 6, §8 "Deduplication").
func dedupeRecords(records []FormRecord) []FormRecord {
	seenFull := make(map[string]bool, len(records))
	seenBare := make(map[string]bool, len(records))
	out := make([]FormRecord, 0, len(records))

	for _, r := range records {
		full := r.key()
		if seenFull[full] {
			continue
		}
		set := tags.New(r.Tags...)
		if set.Contains("dated") {
			bare := bareKey(r, set.Without("dated"))
			if seenBare[bare] {
				continue
			}
		}
		seenFull[full] = true
		if !set.Contains("dated") {
			seenBare[full] = true
		}
		out = append(out, r)
	}
	return out
}

func bareKey(r FormRecord, set tags.Set) string {
	return r.Form + "\x00" + set.Key() + "\x00" + r.Roman + "\x00" + r.IPA
}
