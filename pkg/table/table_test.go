package table

import "testing"

func TestNewCellTrimsAndNormalizes(t *testing.T) {
	c := NewCell(1, "  Present  ", true, 0, 1, 1)
	if c.Text != "Present" {
		t.Errorf("Text = %q, want %q", c.Text, "Present")
	}
	if !c.IsHeader {
		t.Error("expected IsHeader true for non-empty header cell")
	}
}

func TestNewCellEmptyTextClearsIsHeader(t *testing.T) {
	c := NewCell(1, "   ", true, 0, 1, 1)
	if c.IsHeader {
		t.Error("expected IsHeader false when Text is empty")
	}
	if c.Text != "" {
		t.Errorf("Text = %q, want empty", c.Text)
	}
}

func TestNewCellPanicsOnBadSpan(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for colspan 0")
		}
	}()
	NewCell(1, "x", false, 0, 0, 1)
}

func TestIDGeneratorMonotonic(t *testing.T) {
	g := NewIDGenerator()
	a := g.Next()
	b := g.Next()
	if a == 0 || b <= a {
		t.Fatalf("expected strictly increasing non-zero IDs, got %d then %d", a, b)
	}
}

func TestRowWidth(t *testing.T) {
	r := Row{NewCell(1, "a", false, 0, 1, 1), NewCell(2, "b", false, 1, 1, 1)}
	if r.Width() != 2 {
		t.Errorf("Width() = %d, want 2", r.Width())
	}
}
