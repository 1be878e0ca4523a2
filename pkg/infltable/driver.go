package infltable

import (
	"context"
	"regexp"
	"sort"
	"strings"

	"github.com/scharney/wiktextract/internal/charclass"
	"github.com/scharney/wiktextract/pkg/collab"
	"github.com/scharney/wiktextract/pkg/ruledata"
	"github.com/scharney/wiktextract/pkg/table"
	"github.com/scharney/wiktextract/pkg/tags"
)

var (
	ipaRe      = regexp.MustCompile(`/[^/]*/`)
	dataSkipRe = regexp.MustCompile(`^(# |\(see )`)

	dropFormValues = map[string]bool{
		"":               true,
		"not used":       true,
		"not applicable": true,
		"unchanged":      true,
	}
)

// Extract runs the C3-C10 pipeline over one table's titles and pre-expanded
// cell grid (spec.md §4.8, §6). It returns (nil, ErrUnparsed) if the grid
// cannot be classified as a simple table (spec.md §7 kind 2); otherwise it
// never fails, reporting soft/data problems through collab.Debug and a
// sentinel "error-unrecognized-form" record (spec.md §7 kind 1).
func Extract(pctx context.Context, ec Context, titles []string, rows [][]table.Cell, collabs collab.Collaborators) ([]FormRecord, error) {
	collabs = collab.WithDefaults(collabs)

	if !hasStructure(rows) {
		return nil, ErrUnparsed
	}

	d := &driverState{
		pctx:    pctx,
		ec:      ec,
		collabs: collabs,
		seenID:  make(map[table.ID]bool),
	}

	var wordTags tags.Set
	for _, title := range titles {
		tr := parseTitle(title, ec.Source)
		d.globalTags = d.globalTags.Union(tr.globalTags)
		wordTags = wordTags.Union(tr.wordTags)
		d.ret = append(d.ret, tr.extraForms...)
	}

	for _, row := range rows {
		d.processRow(row)
	}

	d.postProcessGermanicNoun()

	if !wordTags.Empty() {
		sorted := append([]tags.Tag(nil), wordTags.Tags()...)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
		words := make([]string, len(sorted))
		for i, t := range sorted {
			words[i] = string(t)
		}
		d.ret = append(d.ret, newRecord(strings.Join(words, " "), tags.New("word-tags"), ec.Source+" title", "", ""))
	}

	return dedupeRecords(d.ret), nil
}

// hasStructure reports whether rows contains at least one non-empty header
// cell and at least one non-empty data cell (spec.md §7 kind 2).
func hasStructure(rows [][]table.Cell) bool {
	hasHeader, hasData := false, false
	for _, row := range rows {
		for _, c := range row {
			if c.Text == "" {
				continue
			}
			if c.IsHeader {
				hasHeader = true
			} else {
				hasData = true
			}
		}
	}
	return hasHeader && hasData
}

// driverState holds the mutable, table-scoped state C10 accumulates during
// a single traversal (spec.md §5: scoped to one table, released on return).
type driverState struct {
	pctx       context.Context
	ec         Context
	collabs    collab.Collaborators
	globalTags tags.Set
	hdrspans   headerSpanStack
	colHasText []bool
	colsHeader []bool // columns where a "*" header marker made the whole column headers
	seenID     map[table.ID]bool
	ret        []FormRecord
	rowIndex   int
}

func (d *driverState) ensureWidth(n int) {
	for len(d.colHasText) < n {
		d.colHasText = append(d.colHasText, false)
	}
	for len(d.colsHeader) < n {
		d.colsHeader = append(d.colsHeader, false)
	}
}

func rowHasAnyText(row []table.Cell) bool {
	for _, c := range row {
		if c.Text != "" {
			return true
		}
	}
	return false
}

// allSameCell reports whether every physical cell in row is the same
// logical title cell repeated across the row's width (e.g. a single wide
// cell a grid-builder expanded via one ID per column), matching the
// original's `all(x.is_title == row[0].is_title and x.text == row[0].text
// for x in row)` check exactly, empty cells included.
func allSameCell(row []table.Cell) bool {
	first := row[0]
	for _, c := range row {
		if c.Text != first.Text || c.IsHeader != first.IsHeader {
			return false
		}
	}
	return true
}

// isTitleRow reports whether row is a full-row title banner rather than a
// real header/data row: every cell is the same header cell, its text is
// non-empty, not a known header label or header-prefix match, and doesn't
// start with a superscript ref marker.
func isTitleRow(row []table.Cell) bool {
	if !allSameCell(row) {
		return false
	}
	first := row[0]
	if !first.IsHeader || first.Text == "" {
		return false
	}
	if runes := []rune(first.Text); charclass.IsSuperscriptLike(runes[0]) {
		return false
	}
	if ruledata.IsKnownHeader(first.Text) {
		return false
	}
	if _, ok := ruledata.LongestPrefixMatch(first.Text); ok {
		return false
	}
	return true
}

// processRow implements spec.md §4.8 step 3.
func (d *driverState) processRow(row []table.Cell) {
	if len(row) == 0 || !rowHasAnyText(row) {
		return
	}
	d.ensureWidth(len(row))

	if isTitleRow(row) {
		text := row[0].Text
		if !strings.HasPrefix(text, "Note:") && !strings.HasPrefix(text, "Notes:") {
			tr := parseTitle(text, d.ec.Source)
			d.globalTags = d.globalTags.Union(tr.globalTags)
			d.ret = append(d.ret, tr.extraForms...)
		}
		return
	}

	rowtags := tags.NewAltSet(tags.Set{})
	haveText := false
	var col0Span *headerSpan
	lastDataEnd := -1

	j := 0
	for j < len(row) {
		cell := row[j]
		colspan := cell.Colspan
		if colspan < 1 {
			colspan = 1
		}
		if colspan > len(row)-j {
			colspan = len(row) - j
		}

		if d.seenID[cell.ID] {
			j += colspan
			continue
		}
		d.seenID[cell.ID] = true

		isHeader := cell.IsHeader || (j < len(d.colsHeader) && d.colsHeader[j])

		if isHeader {
			d.processHeaderCell(cell, j, colspan, &rowtags, &haveText, &col0Span)
		} else if cell.Text != "" {
			if d.processDataCell(cell, j, colspan, rowtags) {
				haveText = true
				lastDataEnd = j + colspan
			}
		}

		j += colspan
	}

	if col0Span != nil && lastDataEnd <= col0Span.columnStart+col0Span.colspan {
		widenLeftmost(col0Span, len(row))
	}

	d.rowIndex++
}

// processHeaderCell implements the header-cell branch of spec.md §4.8c.
func (d *driverState) processHeaderCell(cell table.Cell, j, colspan int, rowtags *tags.AltSet, haveText *bool, col0Span **headerSpan) {
	clean := cleanHeader(cell.Text, true)
	if clean.text == "" {
		// Resolved Open Question: an empty/ignored header contributes
		// nothing at all, not even a col_has_text update (see DESIGN.md).
		return
	}
	if ruledata.IsIgnoredColValue(clean.text) {
		// An ignored value the header map cannot resolve is skipped the
		// same way, instead of emitting the unrecognised-header sentinel.
		if _, ok := resolveHeaderWithFallback(d.ec.Language, clean.text, tags.Set{}, nil); !ok {
			return
		}
	}

	d.ensureWidth(j + colspan)
	for k := j; k < j+colspan; k++ {
		d.colHasText[k] = true
	}

	if silent, ok := resolveHeader(d.ec.Language, clean.text, tags.Set{}, nil); ok && hasResetMarker(silent) {
		d.hdrspans.reset()
	}

	if *haveText {
		*rowtags = tags.NewAltSet(tags.Set{})
	}

	newRowTags := tags.AltSet{}
	var colCandidates []tags.Set
	colSeen := make(map[string]bool)

	for _, rt := range rowtags.All() {
		for _, ct := range composeColumnTags(&d.hdrspans, j, colspan, false, clean.text) {
			tags0 := rt.Union(ct).Union(d.globalTags)
			resolved, ok := resolveHeaderWithFallback(d.ec.Language, clean.text, tags0, d.collabs.Debug)
			if !ok {
				d.collabs.Debug("unrecognized header %q (lang=%s)", clean.text, d.ec.Language)
				d.ret = append(d.ret, newRecord(errorUnrecognizedForm, tags.Set{}, d.ec.Source, "", ""))
				continue
			}
			if hasHeaderWildcard(resolved) {
				for k := j; k < j+colspan; k++ {
					d.colsHeader[k] = true
				}
			}
			for _, leaf := range stripMarkers(resolved) {
				merged := leaf.Union(clean.localTags)
				newRowTags.Add(rt.Union(merged))
				if key := merged.Key(); !colSeen[key] {
					colSeen[key] = true
					colCandidates = append(colCandidates, merged)
				}
			}
		}
	}
	*rowtags = newRowTags

	pushable := filterNoInherit(colCandidates)
	if nonEmpty(pushable) {
		span := &headerSpan{columnStart: j, colspan: colspan, rowIndex: d.rowIndex, tagSets: pushable, text: clean.text}
		d.hdrspans.push(span)
		if j == 0 {
			*col0Span = span
		}
	}

	*haveText = true
}

// processDataCell implements the data-cell branch of spec.md §4.8c. Returns
// whether it produced at least one record (used for "have_text").
func (d *driverState) processDataCell(cell table.Cell, j, colspan int, rowtags tags.AltSet) bool {
	text := strings.TrimSpace(cell.Text)
	if ruledata.IsIgnoredColValue(text) || dataSkipRe.MatchString(text) {
		return false
	}
	if j == 0 && !d.colHasText[0] {
		return false
	}

	colTagSets := composeColumnTags(&d.hdrspans, j, colspan, true, text)
	alts := splitCellText(cell.Text, d.collabs.Classify)

	produced := false
	for _, alt := range alts {
		form, extraTags, roman, ipa, ok := d.refineAlt(alt)
		if !ok {
			continue
		}
		for _, rt := range rowtags.All() {
			for _, ct := range colTagSets {
				set := d.globalTags.Union(extraTags).Union(rt)
				set = mergeColumnIntoRow(set, ct)
				finalForm, finalSet := postProcessForm(d.pctx, d.ec, form, set, d.collabs)
				d.ret = append(d.ret, newRecord(finalForm, finalSet, d.ec.Source, roman, ipa))
				produced = true
			}
		}
	}
	return produced
}

// refineAlt implements the per-alternative refinement loop of spec.md
// §4.8c's data-cell branch: re-cleaning, IPA extraction, whitespace
// normalisation, and inline-parenthesis tag/romanisation detection.
func (d *driverState) refineAlt(alt cellAlt) (form string, extraTags tags.Set, roman string, ipa string, ok bool) {
	clean := cleanHeader(alt.native, false)
	text := clean.text
	if text == "" {
		text = strings.TrimSpace(alt.native)
	}

	if m := ipaRe.FindString(text); m != "" {
		ipa = strings.Trim(m, "/")
		text = strings.TrimSpace(ipaRe.ReplaceAllString(text, ""))
	}

	text = whitespaceRe.ReplaceAllString(text, " ")
	text = strings.TrimPrefix(text, "*")
	text = strings.TrimPrefix(text, "Main:")
	text = strings.TrimSpace(text)

	roman = alt.roman
	extraTags = clean.localTags

	for _, g := range parenGroupRe.FindAllStringSubmatch(text, -1) {
		content := strings.TrimSpace(g[1])
		if content == "" {
			continue
		}
		if d.collabs.Classify == nil {
			continue
		}
		switch d.collabs.Classify(content) {
		case collab.ClassTags:
			if d.collabs.DecodeTags != nil {
				decoded, _ := d.collabs.DecodeTags(content)
				for _, s := range decoded {
					extraTags = extraTags.Union(s)
				}
			}
			text = strings.TrimSpace(strings.Replace(text, g[0], "", 1))
		case collab.ClassRomanization, collab.ClassEnglish:
			if roman == "" {
				roman = content
				text = strings.TrimSpace(strings.Replace(text, g[0], "", 1))
			}
		}
	}

	text = strings.Trim(text, " ,")
	if dropFormValues[strings.ToLower(text)] {
		return "", tags.Set{}, "", "", false
	}

	return text, extraTags, roman, ipa, true
}

// postProcessGermanicNoun implements spec.md §4.8 step 4.
func (d *driverState) postProcessGermanicNoun() {
	hasNoun := false
	for _, r := range d.ret {
		for _, t := range r.Tags {
			if t == "noun" {
				hasNoun = true
			}
		}
	}
	if !hasNoun {
		return
	}
	out := d.ret[:0]
	for _, r := range d.ret {
		set := tags.New(r.Tags...).Without("noun")
		if isOnlyArticle(set) {
			continue
		}
		r.Tags = set.Tags()
		out = append(out, r)
	}
	d.ret = out
}

func isOnlyArticle(set tags.Set) bool {
	if set.Empty() {
		return false
	}
	for _, t := range set.Tags() {
		if t != "definite" && t != "indefinite" {
			return false
		}
	}
	return true
}
