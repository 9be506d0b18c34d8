package pagemap

import "testing"

func TestMapSetLookup(t *testing.T) {
	var m Map
	tests := []struct {
		r  rune
		id uint16
	}{
		{'A', 1},
		{'é', 2},
		{'Ж', 3},
		{'ガ', 4},
		{'（', 5},
	}
	for _, tt := range tests {
		if !m.Set(tt.r, tt.id) {
			t.Fatalf("Set(%q) rejected a BMP code point", tt.r)
		}
	}
	for _, tt := range tests {
		if got := m.Lookup(tt.r); got != tt.id {
			t.Fatalf("Lookup(%q) = %d, want %d", tt.r, got, tt.id)
		}
	}
	if got := m.Lookup('B'); got != 0 {
		t.Fatalf("Lookup of unset code point on populated page = %d, want 0", got)
	}
	if got := m.Lookup('한'); got != 0 {
		t.Fatalf("Lookup on unallocated page = %d, want 0", got)
	}
	if m.Len() != len(tests) {
		t.Fatalf("Len() = %d, want %d", m.Len(), len(tests))
	}
}

func TestMapPagesAreShared(t *testing.T) {
	var m Map
	m.Set('а', 1) // U+0430
	m.Set('я', 2) // U+044F
	m.Set('Ѣ', 3) // U+0462
	if m.NumPages() != 1 {
		t.Fatalf("Cyrillic letters should share one page, have %d", m.NumPages())
	}
	m.Set('α', 4) // U+03B1
	if m.NumPages() != 2 {
		t.Fatalf("expected 2 pages, have %d", m.NumPages())
	}
}

func TestMapOutsideBMP(t *testing.T) {
	var m Map
	if m.Set('😀', 1) {
		t.Fatalf("expected Set to reject a code point outside the BMP")
	}
	if m.Lookup('😀') != 0 || m.Lookup(-1) != 0 {
		t.Fatalf("expected lookups outside the BMP to be absent")
	}
}

func TestMapClear(t *testing.T) {
	var m Map
	m.Set('x', 7)
	m.Set('x', 0)
	if m.Lookup('x') != 0 {
		t.Fatalf("expected cleared mapping")
	}
	if m.Set('ß', 0); m.NumPages() != 1 {
		t.Fatalf("clearing an absent code point must not allocate a page")
	}
}
