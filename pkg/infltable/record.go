package infltable

import (
	"sort"

	"github.com/scharney/wiktextract/pkg/tags"
)

// FormRecord is one emitted inflected form (spec.md §3 "FormRecord").
type FormRecord struct {
	Form  string
	Tags  []tags.Tag
	Source string
	Roman string
	IPA   string
}

// newRecord builds a FormRecord from a tag set, sorting the tags and
// trimming roman/ipa to empty when unset.
func newRecord(form string, set tags.Set, source, roman, ipa string) FormRecord {
	ts := append([]tags.Tag(nil), set.Tags()...)
	sort.Slice(ts, func(i, j int) bool { return ts[i] < ts[j] })
	return FormRecord{Form: form, Tags: ts, Source: source, Roman: roman, IPA: ipa}
}

// key returns a structural-equality witness for deduplication (spec.md §8
// "Deduplication").
func (r FormRecord) key() string {
	s := tags.New(r.Tags...)
	return r.Form + "\x00" + s.Key() + "\x00" + r.Roman + "\x00" + r.IPA
}
