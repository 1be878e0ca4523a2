package main

import (
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/scharney/wiktextract/pkg/table"
)

// buildGrid walks the first <table> element found in r and returns its
// titles (any <caption> text) plus the table.Cell grid the core expects:
// one list entry per physical position, so a cell is repeated once per
// column its colspan covers and once per row its rowspan covers, every
// copy sharing the originating cell's table.ID (spec.md §3
// "pre-expanded cell grid" — the caller-side job spec.md §1 places out of
// scope for the core; internal/infltest.Repeat documents the same
// rowspan-repeat contract for test fixtures). Grounded on other_examples'
// html2csv Parse walking <tr>/<th>/<td> with golang.org/x/net/html,
// extended here to preserve spans instead of flattening to plain strings.
func buildGrid(r io.Reader) (titles []string, rows [][]table.Cell, err error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, nil, err
	}

	tableNode := findFirst(doc, "table")
	if tableNode == nil {
		return nil, nil, nil
	}
	if cap := findFirst(tableNode, "caption"); cap != nil {
		if text := strings.TrimSpace(textOf(cap)); text != "" {
			titles = append(titles, text)
		}
	}

	var trNodes []*html.Node
	walk(tableNode, func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "tr" {
			trNodes = append(trNodes, n)
		}
	})

	// pending holds the rowspan continuations still owed to later rows,
	// keyed by the column they occupy: the grid format wants the SAME
	// cell (same table.ID) re-emitted once per row it spans, not elided
	// (internal/infltest.Repeat documents the same contract for tests).
	ids := table.NewIDGenerator()
	pending := map[int]pendingCell{}

	for _, tr := range trNodes {
		var row []table.Cell
		col := 0
		next := map[int]pendingCell{}
		children := childElements(tr, "td", "th")

		for _, c := range children {
			for {
				p, ok := pending[col]
				if !ok {
					break
				}
				for k := 0; k < p.cell.Colspan; k++ {
					row = append(row, p.cell)
				}
				if p.rowsLeft > 1 {
					next[col] = pendingCell{cell: p.cell, rowsLeft: p.rowsLeft - 1}
				}
				delete(pending, col)
				col += p.cell.Colspan
			}

			colspan := attrInt(c, "colspan", 1)
			rowspan := attrInt(c, "rowspan", 1)
			cell := table.NewCell(ids.Next(), textOf(c), c.Data == "th", col, colspan, rowspan)
			for k := 0; k < colspan; k++ {
				row = append(row, cell)
			}
			if rowspan > 1 {
				next[col] = pendingCell{cell: cell, rowsLeft: rowspan - 1}
			}
			col += colspan
		}
		for p, ok := pending[col]; ok; p, ok = pending[col] {
			for k := 0; k < p.cell.Colspan; k++ {
				row = append(row, p.cell)
			}
			if p.rowsLeft > 1 {
				next[col] = pendingCell{cell: p.cell, rowsLeft: p.rowsLeft - 1}
			}
			delete(pending, col)
			col += p.cell.Colspan
		}

		rows = append(rows, row)
		pending = next
	}

	return titles, rows, nil
}

type pendingCell struct {
	cell     table.Cell
	rowsLeft int
}

func childElements(n *html.Node, tags ...string) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		for _, tag := range tags {
			if c.Data == tag {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

func attrInt(n *html.Node, key string, def int) int {
	for _, a := range n.Attr {
		if a.Key == key {
			if v, err := strconv.Atoi(strings.TrimSpace(a.Val)); err == nil && v > 0 {
				return v
			}
		}
	}
	return def
}

func findFirst(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func walk(n *html.Node, visit func(*html.Node)) {
	visit(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, visit)
	}
}

func textOf(n *html.Node) string {
	var sb strings.Builder
	walk(n, func(c *html.Node) {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	})
	return sb.String()
}
