package tags

import "testing"

func TestSetDedupAndSort(t *testing.T) {
	s := New("plural", "singular", "plural")
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	if s.Key() != "plural singular" {
		t.Fatalf("Key() = %q, want %q", s.Key(), "plural singular")
	}
}

func TestFromFields(t *testing.T) {
	s := FromFields("singular  present indicative")
	want := New("present", "indicative", "singular")
	if !s.Equal(want) {
		t.Fatalf("FromFields = %v, want %v", s, want)
	}
}

func TestContains(t *testing.T) {
	s := New("plural", "feminine")
	if !s.Contains("plural") {
		t.Fatal("expected Contains(plural)")
	}
	if s.Contains("singular") {
		t.Fatal("did not expect Contains(singular)")
	}
	if !s.ContainsAny("singular", "plural") {
		t.Fatal("expected ContainsAny to find plural")
	}
	if !s.ContainsAll("plural", "feminine") {
		t.Fatal("expected ContainsAll to match")
	}
	if s.ContainsAll("plural", "masculine") {
		t.Fatal("did not expect ContainsAll to match masculine")
	}
}

func TestHasCategory(t *testing.T) {
	s := New("plural", "present")
	if !s.HasCategory(CategoryNumber) {
		t.Fatal("expected HasCategory(number)")
	}
	if s.HasCategory(CategoryGender) {
		t.Fatal("did not expect HasCategory(gender)")
	}
}

func TestUnionWithoutWithoutCategory(t *testing.T) {
	a := New("plural", "present")
	b := New("feminine")
	u := a.Union(b)
	if u.Len() != 3 {
		t.Fatalf("Union len = %d, want 3", u.Len())
	}

	w := u.Without("present")
	if w.Contains("present") || w.Len() != 2 {
		t.Fatalf("Without(present) = %v", w)
	}

	wc := u.WithoutCategory(CategoryNumber)
	if wc.Contains("plural") {
		t.Fatalf("WithoutCategory(number) kept plural: %v", wc)
	}
}

func TestSetEqualAndEmpty(t *testing.T) {
	a := New("plural", "feminine")
	b := New("feminine", "plural")
	if !a.Equal(b) {
		t.Fatal("expected a.Equal(b) regardless of construction order")
	}
	if !(Set{}).Empty() {
		t.Fatal("zero Set should be Empty")
	}
	if a.Empty() {
		t.Fatal("non-empty Set reported Empty")
	}
}

func TestAltSetDedupOrder(t *testing.T) {
	var a AltSet
	a.Add(New("plural"))
	a.Add(New("singular"))
	a.Add(New("plural")) // duplicate, ignored

	all := a.All()
	if len(all) != 2 {
		t.Fatalf("AltSet.Len() = %d, want 2", len(all))
	}
	if all[0].Key() != "plural" || all[1].Key() != "singular" {
		t.Fatalf("unexpected order: %v", all)
	}
}

func TestNoInheritAndMarkers(t *testing.T) {
	if !NoInherit("infinitive-i") {
		t.Fatal("expected infinitive-i to be noinherit")
	}
	if NoInherit("infinitive") {
		t.Fatal("did not expect infinitive to be noinherit")
	}
	if !IsReset("!") || !IsHeaderWildcard("*") {
		t.Fatal("expected ! and * to be recognised as markers")
	}
}

func TestMustValidPanicsOnUnknownTag(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected MustValid to panic on an unknown tag")
		}
	}()
	MustValid("not-a-real-tag")
}
