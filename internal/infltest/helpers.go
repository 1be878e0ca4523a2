// Package infltest provides small grid-builder helpers for table-driven
// tests in pkg/infltable, mirroring the teacher's internal/checkstest
// result-builder helpers but for table.Cell grids.
package infltest

import "github.com/scharney/wiktextract/pkg/table"

// Builder holds a shared ID generator so that Hdr/Data calls on the same
// Builder hand out distinct cell IDs; the caller assembles the grid from
// the rows Row returns.
type Builder struct {
	gen *table.IDGenerator
}

// NewBuilder returns a Builder ready to produce rows for one table.
func NewBuilder() *Builder {
	return &Builder{gen: table.NewIDGenerator()}
}

// Row builds one physical row from the given cells.
func (b *Builder) Row(cells ...table.Cell) []table.Cell {
	return cells
}

// Hdr builds a header cell with the given colspan/rowspan.
func (b *Builder) Hdr(text string, colspan, rowspan int) table.Cell {
	return table.NewCell(b.gen.Next(), text, true, 0, colspan, rowspan)
}

// Data builds a data cell with the given colspan/rowspan.
func (b *Builder) Data(text string, colspan, rowspan int) table.Cell {
	return table.NewCell(b.gen.Next(), text, false, 0, colspan, rowspan)
}

// Repeat returns n copies of cell, sharing its ID, for filling in the
// physical positions a rowspan covers in the rows below its first
// occurrence (the grid format expects the same ID repeated, not elided).
func Repeat(cell table.Cell, n int) []table.Cell {
	out := make([]table.Cell, n)
	for i := range out {
		out[i] = cell
	}
	return out
}
