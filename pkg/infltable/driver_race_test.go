package infltable

import (
	"context"
	"sync"
	"testing"

	"github.com/scharney/wiktextract/internal/infltest"
	"github.com/scharney/wiktextract/pkg/collab"
	"github.com/scharney/wiktextract/pkg/table"
)

// TestExtractConcurrentCallsAreIndependent runs Extract over many goroutines
// sharing nothing but the read-only ruledata tables (spec.md §5: "the core
// keeps no mutable package-level state; every call is independent"). Run
// with -race to confirm no hidden shared mutable state.
func TestExtractConcurrentCallsAreIndependent(t *testing.T) {
	const goroutines = 32

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()

			b := infltest.NewBuilder()
			rows := [][]table.Cell{
				b.Row(b.Hdr("—", 1, 1), b.Hdr("Singular", 1, 1), b.Hdr("Plural", 1, 1)),
				b.Row(b.Hdr("Präsens", 1, 1), b.Data("ich gehe", 1, 1), b.Data("wir gehen", 1, 1)),
			}
			ec := Context{Language: "German", PartOfSpeech: "verb", Source: "de-verb"}
			recs, err := Extract(context.Background(), ec, nil, rows, collab.Collaborators{})
			if err != nil {
				t.Errorf("Extract returned error: %v", err)
				return
			}
			if len(recs) == 0 {
				t.Error("Extract returned no records")
			}
		}()
	}
	wg.Wait()
}
