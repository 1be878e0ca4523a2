// Package table holds the pre-parsed grid representation the inflection
// interpreter consumes: the result of some other component already having
// walked wiki/HTML table markup and expanded row/column spans (spec.md §1,
// §6 — out of scope for this module).
package table

// ID identifies one logical cell across the physical grid positions its
// rowspan/colspan cause it to occupy. Two Cells built from the same span
// must share the same ID so the driver can tell "first row of this cell"
// from "a later row the same rowspan still covers" (spec.md §9 design note:
// "use an identity mechanism ... rather than structural equality", since Go
// values copied into a [][]Cell grid don't retain pointer identity the way
// the source's `id(cell)` does).
type ID uint64

// Cell is one position in the row/column grid (spec.md §3).
//
// Invariants (enforced by NewCell): Text is trimmed; IsHeader is false when
// Text is empty; Colspan and Rowspan are >= 1.
type Cell struct {
	ID          ID
	Text        string
	IsHeader    bool
	ColumnStart int
	Colspan     int
	Rowspan     int
}

// NewCell builds a Cell, trimming text and normalising the
// empty-text/IsHeader invariant. Panics on a non-positive span, a
// programmer error per spec.md §7 kind 3.
func NewCell(id ID, text string, isHeader bool, columnStart, colspan, rowspan int) Cell {
	if colspan < 1 || rowspan < 1 {
		panic("table: colspan and rowspan must be >= 1")
	}
	text = trimSpace(text)
	return Cell{
		ID:          id,
		Text:        text,
		IsHeader:    isHeader && text != "",
		ColumnStart: columnStart,
		Colspan:     colspan,
		Rowspan:     rowspan,
	}
}

func trimSpace(s string) string {
	i, j := 0, len(s)
	for i < j && isSpaceByte(s[i]) {
		i++
	}
	for j > i && isSpaceByte(s[j-1]) {
		j--
	}
	return s[i:j]
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f'
}

// Row is one physical row of the grid, left to right, with spanned
// positions repeating the owning Cell (identified by its shared ID).
type Row []Cell

// Grid is an ordered sequence of Rows forming one table.
type Grid []Row

// Width returns the number of physical columns in row, i.e. len(row).
func (r Row) Width() int { return len(r) }

// IDGenerator is a simple monotonic ID allocator for callers building grids
// by hand (tests, the demo HTML-to-grid adapter). Production callers that
// already have a stable identity for spanned cells may assign IDs directly.
type IDGenerator struct{ next ID }

// Next returns the next unused ID.
func (g *IDGenerator) Next() ID {
	g.next++
	return g.next
}

// NewIDGenerator returns a fresh monotonic ID allocator starting at 1.
func NewIDGenerator() *IDGenerator { return &IDGenerator{} }
