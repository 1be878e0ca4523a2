// Command inflectdemo demonstrates the caller side of pkg/infltable: it
// parses a literal HTML inflection table into the table.Cell grid the core
// expects, supplies minimal collaborator hooks, and prints the extracted
// form records plus their tablecheck results (spec.md §1, §6 — HTML/wiki
// parsing and collaborator implementations are explicitly out of the
// core's scope).
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"unicode"

	"github.com/scharney/wiktextract/pkg/collab"
	"github.com/scharney/wiktextract/pkg/infltable"
	"github.com/scharney/wiktextract/pkg/ruledata"
	"github.com/scharney/wiktextract/pkg/tablecheck"
	"github.com/scharney/wiktextract/pkg/tags"
)

func main() {
	var (
		path = flag.String("html", "", "path to an HTML file containing one <table>; defaults to a bundled German verb fixture")
		lang = flag.String("lang", "German", "table language, compared as an opaque string against header-map conditionals")
		pos  = flag.String("pos", "verb", "part of speech")
		src  = flag.String("source", "inflectdemo", "source label recorded on every emitted record")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	var input *os.File
	if *path == "" {
		f, err := os.CreateTemp("", "inflectdemo-*.html")
		if err != nil {
			logger.Error("create fixture temp file", "error", err)
			os.Exit(1)
		}
		defer os.Remove(f.Name())
		if _, err := f.WriteString(sampleFixture); err != nil {
			logger.Error("write fixture temp file", "error", err)
			os.Exit(1)
		}
		if _, err := f.Seek(0, 0); err != nil {
			logger.Error("rewind fixture temp file", "error", err)
			os.Exit(1)
		}
		input = f
		logger.Info("no -html given, using bundled fixture")
	} else {
		f, err := os.Open(*path)
		if err != nil {
			logger.Error("open html file", "path", *path, "error", err)
			os.Exit(1)
		}
		defer f.Close()
		input = f
	}

	titles, rows, err := buildGrid(input)
	if err != nil {
		logger.Error("parse html table", "error", err)
		os.Exit(1)
	}
	logger.Info("parsed table", "rows", len(rows), "titles", titles)

	ec := infltable.Context{Language: *lang, PartOfSpeech: *pos, Source: *src}
	collabs := collab.Collaborators{
		Classify:   classifyText,
		DecodeTags: decodeTags,
		Debug:      func(format string, args ...any) { logger.Debug(fmt.Sprintf(format, args...)) },
	}

	recs, err := infltable.Extract(context.Background(), ec, titles, rows, collabs)
	if err != nil {
		logger.Error("extract", "error", err)
		os.Exit(1)
	}

	for _, r := range recs {
		fmt.Printf("%-20s %v\n", r.Form, r.Tags)
	}

	for _, result := range tablecheck.RunAll(recs) {
		fmt.Printf("[%s] %s: %s\n", result.Status, result.Name, result.Message)
	}
}

// classifyText is a minimal collab.Classify: text containing any non-ASCII
// letter (Cyrillic, Greek, CJK, but also accented Latin) reads as "other"
// (native script), otherwise anything with spaces or digits reads as
// English gloss text, and the rest reads as a romanisation. Real deployments plug in a per-language script detector; this is
// the smallest thing that exercises the C8 splitter's pairing branch.
func classifyText(text string) collab.DescClass {
	text = strings.TrimSpace(text)
	if text == "" {
		return collab.ClassOther
	}
	hasSpace, hasNonLatin, hasDigit := false, false, false
	for _, r := range text {
		switch {
		case unicode.IsSpace(r):
			hasSpace = true
		case unicode.IsDigit(r):
			hasDigit = true
		case r > unicode.MaxASCII && unicode.IsLetter(r):
			hasNonLatin = true
		}
	}
	switch {
	case hasNonLatin:
		return collab.ClassOther
	case hasSpace || hasDigit:
		return collab.ClassEnglish
	default:
		return collab.ClassRomanization
	}
}

// decodeTags implements collab.DecodeTags using the whole-title lookup the
// core's title parser (C3) uses, ruledata.LookupPlain, reused here for
// inline parenthetical tag words (spec.md §4.8c):
// each comma/semicolon-separated word either resolves to a tag or is kept
// as a topic string.
func decodeTags(text string) (alternatives []tags.Set, topics []string) {
	var acc tags.Set
	for _, field := range strings.FieldsFunc(text, func(r rune) bool { return r == ',' || r == ';' }) {
		word := strings.TrimSpace(field)
		if word == "" {
			continue
		}
		if set, ok := ruledata.LookupPlain(word); ok {
			acc = acc.Union(set)
			continue
		}
		topics = append(topics, word)
	}
	return []tags.Set{acc}, topics
}

const sampleFixture = `<!doctype html>
<html><body>
<table>
<caption>2nd-stem class, auxiliary sein</caption>
<tr><th>—</th><th>Singular</th><th>Plural</th></tr>
<tr><th>Präsens</th><td>ich gehe</td><td>wir gehen</td></tr>
</table>
</body></html>
`
