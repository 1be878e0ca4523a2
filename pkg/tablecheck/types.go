// Package tablecheck runs post-extraction sanity checks over a batch of
// infltable.FormRecord values, adapted from the teacher's CSV glossary-check
// registry (pkg/checks/types.go, registry.go): the same Status/CheckResult
// vocabulary and priority-ordered registry, retargeted from "one glossary
// file's bytes" to "one table's extracted records" (spec.md §8, "Testable
// properties").
package tablecheck

import "github.com/scharney/wiktextract/pkg/infltable"

// Status is the per-check outcome category.
type Status string

const (
	Pass  Status = "PASS"
	Warn  Status = "WARN"
	Fail  Status = "FAIL"
)

// CheckResult is a single check's outcome.
type CheckResult struct {
	Name    string
	Status  Status
	Message string
}

// CheckFunc inspects a batch of records and returns one outcome.
type CheckFunc func(recs []infltable.FormRecord) CheckResult

// Check is a named, priority-ordered CheckFunc (spec.md §8 property checks
// run in a fixed, predictable order — lower Priority first).
type Check struct {
	Name     string
	Priority int
	Run      CheckFunc
}
